package readability_test

import (
	"testing"

	"github.com/erayd/readable"
	"github.com/erayd/readable/goquery"
	"github.com/erayd/readable/mock"
	"github.com/erayd/readable/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articlePage = `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/home">Home Nav Link</a><a href="/about">About Nav Link</a></nav>
<article>
<p>This is the main article content that should be preserved in the output of the extractor.</p>
<p>A second paragraph keeps the article long enough for the cleaner to consider it the main content.</p>
</article>
<footer><p>Footer copyright text 2024</p></footer>
</body>
</html>`

func TestExtractor_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	ext := readability.NewExtractor(goquery.NewExtractor())
	_, err := ext.Extract("  ", readable.ExtractOptions{})

	require.Error(t, err)
	assert.Equal(t, readable.EINVALID, readable.ErrorCode(err))
}

func TestExtractor_PassesCleanedArticle(t *testing.T) {
	t.Parallel()

	var got string
	var gotOpts readable.ExtractOptions
	next := &mock.Extractor{
		ExtractFn: func(html string, opts readable.ExtractOptions) (*readable.Content, error) {
			got, gotOpts = html, opts
			return readable.NewContent(nil), nil
		},
	}

	ext := readability.NewExtractor(next)
	_, err := ext.Extract(articlePage, readable.ExtractOptions{Container: "/html/body/div"})

	require.NoError(t, err)
	assert.Contains(t, got, "main article content")
	assert.NotContains(t, got, "Home Nav Link")
	assert.NotContains(t, got, "Footer copyright text")
	assert.Equal(t, "/html/body/div", gotOpts.Container)
}

func TestExtractor_ExtractsRuns(t *testing.T) {
	t.Parallel()

	ext := readability.NewExtractor(goquery.NewExtractor())
	c, err := ext.Extract(articlePage, readable.ExtractOptions{})

	require.NoError(t, err)
	var text string
	for _, r := range c.All() {
		text += r.Text
	}
	assert.Contains(t, text, "main article content")
	assert.NotContains(t, text, "Nav Link")
}
