package trafilatura_test

import (
	"testing"

	"github.com/erayd/readable"
	"github.com/erayd/readable/goquery"
	"github.com/erayd/readable/mock"
	"github.com/erayd/readable/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const docPage = `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/">Home</a><a href="/docs">Docs</a></nav>
<article>
<h1>Documentation</h1>
<p>This is important documentation content that should be extracted from the page.</p>
<p>Another paragraph explains how the documented feature behaves in more detail for readers.</p>
</article>
<aside>Sidebar content</aside>
<footer>Copyright 2024</footer>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor(goquery.NewExtractor())
		_, err := ext.Extract("", readable.ExtractOptions{})

		require.Error(t, err)
		assert.Equal(t, readable.EINVALID, readable.ErrorCode(err))
	})

	t.Run("passes main content to next extractor", func(t *testing.T) {
		t.Parallel()

		var got string
		next := &mock.Extractor{
			ExtractFn: func(html string, opts readable.ExtractOptions) (*readable.Content, error) {
				got = html
				return readable.NewContent(nil), nil
			},
		}

		ext := trafilatura.NewExtractor(next)
		_, err := ext.Extract(docPage, readable.ExtractOptions{})

		require.NoError(t, err)
		assert.Contains(t, got, "important documentation content")
		assert.NotContains(t, got, "Copyright 2024")
	})

	t.Run("propagates next extractor errors", func(t *testing.T) {
		t.Parallel()

		next := &mock.Extractor{
			ExtractFn: func(html string, opts readable.ExtractOptions) (*readable.Content, error) {
				return nil, readable.Errorf(readable.ENOCONTAINER, "no container")
			},
		}

		ext := trafilatura.NewExtractor(next)
		_, err := ext.Extract(docPage, readable.ExtractOptions{Container: "/nope"})

		assert.Equal(t, readable.ENOCONTAINER, readable.ErrorCode(err))
	})
}
