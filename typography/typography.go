// Package typography rewrites plain punctuation in rendered paragraphs into
// typographic forms: curly quotes, apostrophes, ellipses and em-dashes, with
// the surrounding whitespace tidied.
package typography

import "github.com/dlclark/regexp2"

// substitution is one rewrite step.
type substitution struct {
	re   *regexp2.Regexp
	repl string
}

func sub(pattern, repl string) substitution {
	return substitution{re: regexp2.MustCompile(pattern, regexp2.None), repl: repl}
}

// pipeline is applied in order. Whitespace is collapsed first so that the
// positional patterns further down see a single space at most; quote pairs
// are matched before the remaining single quotes become closing quotes.
var pipeline = []substitution{
	// collapse whitespace
	sub(`\s+`, " "),

	// double quotes
	sub(`["“”]+`, `"`),
	sub(`"(.+?)"`, "“$1”"),
	sub(`^"`, "“"),

	// single quotes and apostrophes
	sub(`['‘’]+`, "'"),
	sub(`(?<=\w)'(?=\w)`, "’"),
	sub(`(?<=s)'(?=[\s,.;:\-—?!”)*_~<]|$)`, "’"),
	sub(`'(.+?)'`, "‘$1’"),

	// ellipses
	sub(`(?<=[^.]|^)\s*(?:\.(\s*)){3,5}(?=[^.]|$)`, "… "),

	// em-dashes
	sub(`(?<!-)\s*-{2,3}(?!-)\s*`, "—"),
	sub(`(?<=\w)\s+-\s+(?=\w)`, "—"),

	// whitespace around punctuation
	sub(`\s+([.,;:!?…])`, "$1"),
	sub(`(?<=\w)\(\s+`, " ("),
	sub(`([;:!?)…]|[.,](?!\d))\s*(?=\w)`, "$1 "),
	sub(`(?<=\b\p{L})\. (?=\p{L}\.)`, "."),
	sub(`(?<=\w)\s*/\s*(?=\w)`, " / "),

	// wrapping whitespace
	sub(`^\s*(.+?)\s*$`, "$1"),
}

// Apply returns paragraph with the typography pipeline applied.
func Apply(paragraph string) string {
	for _, s := range pipeline {
		out, err := s.re.Replace(paragraph, s.repl, -1, -1)
		if err != nil {
			continue
		}
		paragraph = out
	}
	return paragraph
}
