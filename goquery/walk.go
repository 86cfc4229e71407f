package goquery

import (
	"regexp"
	"strings"

	"github.com/erayd/readable"
	"golang.org/x/net/html"
)

var centeredRe = regexp.MustCompile(`text-align:[^;]*center`)

// tagStyles maps inline elements to the style they apply.
var tagStyles = map[string]readable.Format{
	"em":     readable.FormatItalic,
	"i":      readable.FormatItalic,
	"strong": readable.FormatBold,
	"b":      readable.FormatBold,
	"u":      readable.FormatUnderline,
	"ins":    readable.FormatUnderline,
	"a":      readable.FormatUnderline,
	"s":      readable.FormatStrike,
	"strike": readable.FormatStrike,
	"del":    readable.FormatStrike,
	"center": readable.FormatCenter,
}

// ancestor describes one element visited while walking up from a text node.
type ancestor struct {
	tag   string
	style string

	// section is set when the element is the active section anchor.
	section bool

	// last is set when the element is a direct child of the container.
	last bool
}

// styleWalk accumulates format flags over the ancestors of a text node,
// innermost first.
//
// An ancestor that introduces a style bit not seen before discards every
// non-style bit gathered so far, so the break implied by an enclosing block
// never leaks into a nested inline span. The ancestor directly below the
// container ends the walk and is exempt from that reset.
type styleWalk struct {
	flags       readable.Format
	sawNewStyle bool
	done        bool
}

func (w *styleWalk) step(a ancestor) {
	if w.done {
		return
	}

	before := w.flags
	if style, ok := tagStyles[a.tag]; ok {
		w.flags |= style
	} else {
		if !a.section {
			w.flags |= readable.FormatBreak
		}
		w.flags |= inlineStyle(a.style)
	}
	w.sawNewStyle = w.flags&readable.FormatStyleMask&^before != 0

	if a.last {
		w.done = true
		return
	}
	if w.sawNewStyle {
		w.flags &= readable.FormatStyleMask
	}
}

// inlineStyle returns the styles declared by a style attribute.
func inlineStyle(css string) readable.Format {
	if css == "" {
		return readable.FormatNone
	}
	css = strings.ToLower(css)

	var f readable.Format
	if strings.Contains(css, "italic") {
		f |= readable.FormatItalic
	}
	if strings.Contains(css, "bold") {
		f |= readable.FormatBold
	}
	if strings.Contains(css, "underline") {
		f |= readable.FormatUnderline
	}
	if strings.Contains(css, "line-through") {
		f |= readable.FormatStrike
	}
	if centeredRe.MatchString(css) {
		f |= readable.FormatCenter
	}
	return f
}

// walkStyles resolves the format of a text node from its ancestors below
// container. It returns the flags and the outermost ancestor visited, or nil
// if the text node is a direct child of container.
func walkStyles(text, container, section *html.Node) (readable.Format, *html.Node) {
	var w styleWalk
	var last *html.Node
	for n := text.Parent; n != nil && n != container && n.Type == html.ElementNode && !w.done; n = n.Parent {
		w.step(ancestor{
			tag:     n.Data,
			style:   attr(n, "style"),
			section: n == section,
			last:    n.Parent == container,
		})
		last = n
	}
	return w.flags, last
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
