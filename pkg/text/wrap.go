package text

import (
	"strings"

	"github.com/arthur-debert/sugary/pkg/errors"
	"github.com/arthur-debert/sugary/pkg/logging"
)

// Default break-point tolerances.
const (
	DefaultMaxConstrict = 20
	DefaultMaxExpand    = 20
)

// WrapSpec bounds how far a break may move from the nominal column count
// to land on a space: up to MaxConstrict columns to the left, or up to
// MaxExpand columns to the right.
type WrapSpec struct {
	Columns      int `koanf:"columns" toml:"columns"`
	MaxConstrict int `koanf:"max_constrict" toml:"max_constrict"`
	MaxExpand    int `koanf:"max_expand" toml:"max_expand"`
}

// Columns returns a spec for n columns with the default tolerances.
func Columns(n int) WrapSpec {
	return WrapSpec{Columns: n, MaxConstrict: DefaultMaxConstrict, MaxExpand: DefaultMaxExpand}
}

// Validate rejects a non-positive column count and negative tolerances.
func (w WrapSpec) Validate() error {
	if w.Columns <= 0 {
		return errors.InvalidWidth("columns", w.Columns)
	}
	if w.MaxConstrict < 0 {
		return errors.InvalidWidth("max_constrict", w.MaxConstrict).
			WithDetail("reason", "tolerance must not be negative")
	}
	if w.MaxExpand < 0 {
		return errors.InvalidWidth("max_expand", w.MaxExpand).
			WithDetail("reason", "tolerance must not be negative")
	}
	return nil
}

// Line is one wrapped row.
type Line struct {
	// Text is the row with its control runs spliced back in.
	Text string
	// Width is the visible width of Text.
	Width int
	// DroppedSpace is set when the break ending this row consumed a space.
	DroppedSpace bool
}

// CutText wraps s into rows of about spec.Columns visible columns.
//
// Newlines are hard breaks: each segment between them is wrapped on its own
// and an empty segment yields an empty row. Inside a segment a row ends on
// the space nearest the nominal column, searching left first within
// MaxConstrict and then right within MaxExpand; that one space is dropped.
// A word with no space in reach is cut at exactly spec.Columns.
func CutText(s string, spec WrapSpec) ([]string, error) {
	lines, err := Wrap(s, spec)
	if err != nil {
		return nil, err
	}
	rows := make([]string, len(lines))
	for i, line := range lines {
		rows[i] = line.Text
	}
	return rows, nil
}

// Wrap is CutText returning the measured rows.
func Wrap(s string, spec WrapSpec) ([]Line, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	var lines []Line
	hardBreaks := 0
	for _, segment := range strings.Split(s, "\n") {
		t := Parse(segment)
		spans := breakSpans(t.runes, spec)
		for _, sp := range spans[:len(spans)-1] {
			if sp.next == sp.to {
				hardBreaks++
			}
		}
		lines = append(lines, t.render(spans)...)
	}

	if hardBreaks > 0 {
		logger := logging.GetLogger("text.wrap")
		logger.Trace().
			Int("columns", spec.Columns).
			Int("hardBreaks", hardBreaks).
			Msg("Words cut mid-word")
	}
	return lines, nil
}

// span is one row of a segment: visible runes [from, to), with the next row
// starting at next (to+1 when a space was dropped).
type span struct {
	from, to, next int
}

func breakSpans(v []rune, spec WrapSpec) []span {
	var spans []span
	n := len(v)
	start := 0
	for n-start > spec.Columns {
		brk := findBreak(v, start, spec)
		next := brk
		if v[brk] == ' ' {
			next = brk + 1
		}
		spans = append(spans, span{from: start, to: brk, next: next})
		start = next
	}
	return append(spans, span{from: start, to: n, next: n})
}

// findBreak returns the index the row starting at start ends on. A space
// there is dropped; any other rune begins the next row.
func findBreak(v []rune, start int, spec WrapSpec) int {
	nominal := start + spec.Columns
	if v[nominal] == ' ' {
		return nominal
	}

	lo := max(nominal-spec.MaxConstrict, start+1)
	for i := nominal - 1; i >= lo; i-- {
		if v[i] == ' ' {
			return i
		}
	}

	hi := min(nominal+spec.MaxExpand, len(v)-1)
	for i := nominal + 1; i <= hi; i++ {
		if v[i] == ' ' {
			return i
		}
	}

	return nominal
}

// render splices the control channel into each span. A row owns the marks
// positioned before its successor's first rune, so a run sitting in front
// of a dropped space closes the earlier row. The last row takes the rest.
func (t Text) render(spans []span) []Line {
	lines := make([]Line, 0, len(spans))
	m := 0
	for k, sp := range spans {
		var b strings.Builder
		m = t.spliceRange(&b, sp.from, sp.to, m)

		limit := sp.next
		if k == len(spans)-1 {
			limit = len(t.runes) + 1
		}
		for m < len(t.marks) && t.marks[m].At < limit {
			b.WriteString(t.marks[m].Seq)
			m++
		}

		lines = append(lines, Line{
			Text:         b.String(),
			Width:        sp.to - sp.from,
			DroppedSpace: sp.next > sp.to,
		})
	}
	return lines
}
