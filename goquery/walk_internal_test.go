package goquery

import (
	"strings"
	"testing"

	"github.com/antchfx/htmlquery"
	"github.com/erayd/readable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestStyleWalk(t *testing.T) {
	t.Parallel()

	t.Run("new style discards gathered breaks", func(t *testing.T) {
		t.Parallel()

		var w styleWalk
		w.step(ancestor{tag: "span"})
		w.step(ancestor{tag: "em"})

		assert.Equal(t, readable.FormatItalic, w.flags)
		assert.True(t, w.sawNewStyle)
		assert.False(t, w.done)
	})

	t.Run("ancestor below container keeps its break", func(t *testing.T) {
		t.Parallel()

		var w styleWalk
		w.step(ancestor{tag: "em"})
		w.step(ancestor{tag: "p", last: true})

		assert.Equal(t, readable.FormatItalic|readable.FormatBreak, w.flags)
		assert.True(t, w.done)
	})

	t.Run("section anchor adds no break", func(t *testing.T) {
		t.Parallel()

		var w styleWalk
		w.step(ancestor{tag: "p", section: true, last: true})

		assert.Equal(t, readable.FormatNone, w.flags)
	})

	t.Run("steps after the last ancestor are ignored", func(t *testing.T) {
		t.Parallel()

		var w styleWalk
		w.step(ancestor{tag: "div", last: true})
		w.step(ancestor{tag: "b"})

		assert.Equal(t, readable.FormatBreak, w.flags)
	})

	t.Run("inline style attribute", func(t *testing.T) {
		t.Parallel()

		var w styleWalk
		w.step(ancestor{tag: "div", style: "font-style: Italic; text-align: center", last: true})

		assert.Equal(t, readable.FormatBreak|readable.FormatItalic|readable.FormatCenter, w.flags)
	})
}

func TestInlineStyle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, readable.FormatNone, inlineStyle(""))
	assert.Equal(t, readable.FormatBold|readable.FormatStrike, inlineStyle("font-weight:bold;text-decoration:line-through"))
	assert.Equal(t, readable.FormatUnderline, inlineStyle("TEXT-DECORATION: UNDERLINE"))
	assert.Equal(t, readable.FormatNone, inlineStyle("text-align: left; color: center"))
}

func TestCoarsen(t *testing.T) {
	t.Parallel()

	t.Run("dominant group wins outright", func(t *testing.T) {
		t.Parallel()

		got := coarsen(map[string]int{
			"/html/body/div/p":     4,
			"/html/body/div/div/p": 40,
		})

		assert.Equal(t, "/html/body/div/div/p", got)
	})

	t.Run("siblings merge into their parent", func(t *testing.T) {
		t.Parallel()

		got := coarsen(map[string]int{
			"/html/body/div/p[1]": 10,
			"/html/body/div/p[2]": 10,
			"/html/body/aside":    5,
		})

		assert.Equal(t, "/html/body/div", got)
	})

	t.Run("single group", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "/html/body/p", coarsen(map[string]int{"/html/body/p": 3}))
	})
}

func TestWithin(t *testing.T) {
	t.Parallel()

	assert.True(t, within("/a/b/c", "/a/b"))
	assert.True(t, within("/a/b", "/a/b"))
	assert.False(t, within("/a/bc", "/a/b"))
	assert.True(t, within("/x", "/"))
	assert.Equal(t, "/a", parentPath("/a/b[2]"))
	assert.Equal(t, "/", parentPath("/a"))
}

func TestCountWords(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 4, countWords("don't stop-gap 'quoted' 42 x"))
	assert.Equal(t, 0, countWords(" -- 12 ... "))

	words, ok := qualifies("one two three four five six")
	assert.Equal(t, 6, words)
	assert.True(t, ok)

	_, ok = qualifies("a b c d e f g h")
	assert.False(t, ok)
}

func TestNodePath(t *testing.T) {
	t.Parallel()

	doc, err := html.Parse(strings.NewReader(`<html><body><div><p>a</p><p>b</p></div></body></html>`))
	require.NoError(t, err)

	p := htmlquery.FindOne(doc, "//div/p[2]")
	require.NotNil(t, p)
	assert.Equal(t, "/html/body/div/p[2]", nodePath(p))

	div := htmlquery.FindOne(doc, "//div")
	assert.Equal(t, "/html/body/div", nodePath(div))
}

func TestIsManualBreak(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"-----", "***", " ~~~ ", "=-=-=-", "......"} {
		assert.True(t, isManualBreak(text), text)
	}
	for _, text := range []string{"--", "...", "a---", "Chapter one", ""} {
		assert.False(t, isManualBreak(text), text)
	}
}

func TestCollapseSpace(t *testing.T) {
	t.Parallel()

	assert.Equal(t, " a b ", collapseSpace("\n  a \t\n b  "))
}
