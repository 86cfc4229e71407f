package readable

import (
	"bytes"
	"encoding/json"
	"iter"
	"slices"
)

// Content is the result of an extraction: an ordered, read-only sequence of
// runs. Order defines reading order and paragraph boundaries.
//
// Content serializes to JSON as an array of [flags, text] pairs. The same
// encoding is used for the stored cache entries, so it must stay stable.
type Content struct {
	runs []Run
}

// NewContent returns Content holding a copy of runs.
func NewContent(runs []Run) *Content {
	return &Content{runs: slices.Clone(runs)}
}

// Len returns the number of runs.
func (c *Content) Len() int {
	if c == nil {
		return 0
	}
	return len(c.runs)
}

// At returns the run at index i.
func (c *Content) At(i int) Run {
	return c.runs[i]
}

// Runs returns a copy of the runs.
func (c *Content) Runs() []Run {
	if c == nil {
		return nil
	}
	return slices.Clone(c.runs)
}

// All iterates over the runs in order.
func (c *Content) All() iter.Seq2[int, Run] {
	return func(yield func(int, Run) bool) {
		if c == nil {
			return
		}
		for i, r := range c.runs {
			if !yield(i, r) {
				return
			}
		}
	}
}

// Equal reports whether c and other hold the same runs in the same order.
func (c *Content) Equal(other *Content) bool {
	return slices.Equal(c.Runs(), other.Runs())
}

// MarshalJSON encodes the content as an array of [flags, text] pairs.
func (c *Content) MarshalJSON() ([]byte, error) {
	pairs := make([][2]any, 0, c.Len())
	for _, r := range c.All() {
		pairs = append(pairs, [2]any{uint16(r.Format), r.Text})
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(pairs); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UnmarshalJSON decodes an array of [flags, text] pairs. Malformed input is
// reported as EDECODE.
func (c *Content) UnmarshalJSON(data []byte) error {
	var pairs []json.RawMessage
	if err := json.Unmarshal(data, &pairs); err != nil || pairs == nil {
		return Errorf(EDECODE, "content must be a JSON array of [flags, text] pairs")
	}

	runs := make([]Run, 0, len(pairs))
	for i, raw := range pairs {
		var pair []json.RawMessage
		if err := json.Unmarshal(raw, &pair); err != nil || len(pair) != 2 {
			return Errorf(EDECODE, "run %d: expected a [flags, text] pair", i)
		}

		var flags uint16
		if err := json.Unmarshal(pair[0], &flags); err != nil {
			return Errorf(EDECODE, "run %d: flags must be a small non-negative integer", i)
		}
		if Format(flags)&^FormatAll != 0 {
			return Errorf(EDECODE, "run %d: unknown format flags %#x", i, flags)
		}

		if !bytes.HasPrefix(bytes.TrimSpace(pair[1]), []byte(`"`)) {
			return Errorf(EDECODE, "run %d: text must be a string", i)
		}
		var text string
		if err := json.Unmarshal(pair[1], &text); err != nil {
			return Errorf(EDECODE, "run %d: text must be a string", i)
		}

		runs = append(runs, Run{Format: Format(flags), Text: text})
	}

	c.runs = runs
	return nil
}

// DecodeContent parses stored or transported content JSON.
func DecodeContent(data []byte) (*Content, error) {
	var c Content
	if err := c.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return &c, nil
}
