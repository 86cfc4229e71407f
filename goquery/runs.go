package goquery

import (
	"strings"
	"unicode"

	"github.com/dlclark/regexp2"
	"github.com/erayd/readable"
	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// manualBreakRe matches decorative separators typed as text:
//   - one non-word, non-period symbol repeated at least three times
//   - two different non-word symbols alternating at least three times,
//     optionally closed with the first symbol again
//   - five or more periods
var manualBreakRe = regexp2.MustCompile(
	`^\s*(?:([^\w\s.])\1{2,}|([^\w\s])(?!\2)([^\w\s])(?:\2\3){2,}\2?|\.{5,})\s*$`,
	regexp2.None,
)

// isManualBreak reports whether text is a decorative section separator.
func isManualBreak(text string) bool {
	ok, err := manualBreakRe.MatchString(text)
	return err == nil && ok
}

// skipped lists elements whose subtrees never hold readable text.
var skipped = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
}

// textNode is a text node together with the structural flags carried onto
// it by preceding <br> and <hr> elements.
type textNode struct {
	node  *html.Node
	carry readable.Format
}

// collectText returns the text nodes below container in document order.
func collectText(container *html.Node) []textNode {
	var texts []textNode
	carry := readable.FormatNone

	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.TextNode:
				texts = append(texts, textNode{node: c, carry: carry})
				carry = readable.FormatNone
			case html.ElementNode:
				switch c.Data {
				case "hr":
					carry |= readable.FormatRule
				case "br":
					if carry&readable.FormatNewline != 0 {
						carry = carry&^readable.FormatNewline | readable.FormatBreak
					} else {
						carry |= readable.FormatNewline
					}
				}
				if !skipped[c.Data] {
					visit(c)
				}
			}
		}
	}
	visit(container)

	return texts
}

// commonAncestor returns the closest element at or below container that
// contains every text node. Inline style elements are never chosen, so
// their style survives the ancestor walk.
func commonAncestor(container *html.Node, texts []textNode) *html.Node {
	anc := texts[0].node.Parent
	for _, t := range texts[1:] {
		for anc != container && !contains(anc, t.node) {
			anc = anc.Parent
		}
	}
	for anc != container {
		if _, ok := tagStyles[anc.Data]; !ok {
			break
		}
		anc = anc.Parent
	}
	return anc
}

func contains(ancestor, n *html.Node) bool {
	for ; n != nil; n = n.Parent {
		if n == ancestor {
			return true
		}
	}
	return false
}

// runBuffer owns the runs produced by an extraction. Runs are addressed by
// index so that earlier runs can be consulted while later ones are built.
type runBuffer struct {
	runs []readable.Run
}

func (b *runBuffer) append(r readable.Run) int {
	b.runs = append(b.runs, r)
	return len(b.runs) - 1
}

func (b *runBuffer) at(i int) readable.Run {
	return b.runs[i]
}

func (b *runBuffer) set(i int, r readable.Run) {
	b.runs[i] = r
}

func (b *runBuffer) len() int {
	return len(b.runs)
}

// extractRuns converts the text below container into styled runs.
func extractRuns(container *html.Node) ([]readable.Run, error) {
	texts := collectText(container)
	if len(texts) == 0 {
		return nil, readable.Errorf(readable.ENOTEXT, "no text available")
	}
	container = commonAncestor(container, texts)

	var (
		buf     runBuffer
		section *html.Node
		prev    = -1
		fold    readable.Format
	)
	for _, t := range texts {
		raw := t.node.Data

		// Whitespace has nothing to style, so it continues the previous style.
		if strings.TrimSpace(raw) == "" {
			style := readable.FormatNone
			if prev >= 0 {
				style = buf.at(prev).Format.Style()
			}
			buf.append(readable.Run{Format: style | readable.FormatWhitespace, Text: raw})
			continue
		}

		// A typed separator becomes a rule; its carried flags move to the
		// next styled run.
		if isManualBreak(raw) {
			fold |= t.carry
			buf.append(readable.Run{Format: readable.FormatRule})
			continue
		}

		format, outer := walkStyles(t.node, container, section)
		format |= t.carry | fold
		fold = readable.FormatNone
		if format&readable.FormatBreak != 0 && outer != nil && outer != section {
			section = outer
		}
		prev = buf.append(readable.Run{Format: format, Text: raw})
	}

	// Leading whitespace is dropped, text is collapsed and composed.
	runs := make([]readable.Run, 0, buf.len())
	for i := 0; i < buf.len(); i++ {
		r := buf.at(i)
		if len(runs) == 0 && r.Format&readable.FormatWhitespace != 0 {
			continue
		}
		r.Text = norm.NFC.String(collapseSpace(r.Text))
		buf.set(i, r)
		runs = append(runs, r)
	}
	if len(runs) == 0 {
		return nil, readable.Errorf(readable.ENOTEXT, "no text available")
	}

	return readable.Normalize(runs), nil
}

// collapseSpace replaces every run of whitespace with a single space.
func collapseSpace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !space {
				b.WriteByte(' ')
			}
			space = true
			continue
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}
