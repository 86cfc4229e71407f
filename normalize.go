package readable

import (
	"strings"
	"unicode"
)

// isBoundary reports whether r may sit at the edge of a style span without
// belonging to it.
func isBoundary(r rune) bool {
	switch r {
	case '.', ',', ';', ':', '!', '?', '…':
		return true
	}
	return unicode.IsSpace(r)
}

// Normalize moves whitespace and punctuation at style boundaries outside of
// the styled span. When a style ends, trailing boundary characters of the
// previous run move to the front of the current run. When a style starts,
// leading boundary characters of the current run move to the end of the
// previous run. Runs carrying structural flags are not normalized against
// the run before them, but as the lookback they may give up trailing
// boundary text to the run after them.
//
// Normalize does not modify its argument and is idempotent.
func Normalize(runs []Run) []Run {
	out := make([]Run, len(runs))
	copy(out, runs)

	mode := FormatNone
	for i := range out {
		cur := &out[i]
		if i > 0 && !cur.Format.Structural() {
			prev := &out[i-1]

			if removed := FormatStyleMask & (mode &^ cur.Format); removed != 0 {
				body := strings.TrimRightFunc(prev.Text, isBoundary)
				if tail := prev.Text[len(body):]; tail != "" {
					prev.Text = body
					cur.Text = tail + cur.Text
				}
			}

			if added := FormatStyleMask & (cur.Format &^ mode); added != 0 {
				body := strings.TrimLeftFunc(cur.Text, isBoundary)
				if head := cur.Text[:len(cur.Text)-len(body)]; head != "" {
					cur.Text = body
					prev.Text += head
				}
			}
		}
		mode = cur.Format
	}
	return out
}
