package readable

import "strings"

// Format is a set of flags describing how a run of text is laid out and
// styled. The numeric values are part of the stored content format and
// must not change.
type Format uint16

// Format flags.
const (
	FormatNone       Format = 0
	FormatBreak      Format = 1 << 0
	FormatItalic     Format = 1 << 1
	FormatBold       Format = 1 << 2
	FormatUnderline  Format = 1 << 3
	FormatStrike     Format = 1 << 4
	FormatCenter     Format = 1 << 5
	FormatNewline    Format = 1 << 6
	FormatRule       Format = 1 << 7
	FormatWhitespace Format = 1 << 8
)

// Format masks.
const (
	// FormatStyleMask covers the flags that affect character rendering.
	FormatStyleMask = FormatItalic | FormatBold | FormatUnderline | FormatStrike | FormatCenter

	// FormatStructureMask covers the flags that affect paragraph layout.
	FormatStructureMask = FormatBreak | FormatNewline | FormatRule

	// FormatAll covers every defined flag.
	FormatAll = FormatStyleMask | FormatStructureMask | FormatWhitespace
)

var formatNames = []struct {
	flag Format
	name string
}{
	{FormatBreak, "break"},
	{FormatItalic, "italic"},
	{FormatBold, "bold"},
	{FormatUnderline, "underline"},
	{FormatStrike, "strike"},
	{FormatCenter, "center"},
	{FormatNewline, "newline"},
	{FormatRule, "rule"},
	{FormatWhitespace, "whitespace"},
}

// Has reports whether every flag in mask is set.
func (f Format) Has(mask Format) bool {
	return f&mask == mask
}

// Style returns only the style flags of f.
func (f Format) Style() Format {
	return f & FormatStyleMask
}

// Structural reports whether f carries any structural flag.
func (f Format) Structural() bool {
	return f&FormatStructureMask != 0
}

// String returns the flag names joined with "|", or "none".
func (f Format) String() string {
	if f == FormatNone {
		return "none"
	}
	var names []string
	for _, fn := range formatNames {
		if f&fn.flag != 0 {
			names = append(names, fn.name)
		}
	}
	return strings.Join(names, "|")
}

// Run is a contiguous span of text sharing one set of format flags.
type Run struct {
	Format Format
	Text   string
}
