// Package text measures and wraps strings that carry terminal control
// sequences.
//
// A string is split into two channels: the visible runes, which are the
// only thing counted as width, and the control runs, each recorded as a
// Mark positioned in front of the visible rune it precedes. Layout decisions
// are made on the visible channel alone and the marks are spliced back when
// rows are rendered, so control runs of any length never shift a break.
//
// Every rune counts as one column.
package text

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Mark is a control run spliced in front of visible rune At. At equal to
// the visible length places the run after the last rune.
type Mark struct {
	At  int
	Seq string
}

// Text is the two-channel form of a string.
type Text struct {
	runes []rune
	marks []Mark
}

// Parse splits s into its visible and control channels. Marks come out
// ordered by position.
//
// Escape sequences are tokenized by ansi.DecodeSequence: CSI, OSC and the
// other string sequences, two-byte escapes, and a lone or unterminated ESC
// at the end of s all become marks. Every other token is kept as visible
// runes, one column each.
func Parse(s string) Text {
	var t Text
	var state byte
	for len(s) > 0 {
		seq, _, n, newState := ansi.DecodeSequence(s, state, nil)
		state = newState
		if seq != "" && seq[0] == ansi.ESC {
			t.marks = append(t.marks, Mark{At: len(t.runes), Seq: seq})
		} else {
			t.runes = append(t.runes, []rune(s[:n])...)
		}
		s = s[n:]
	}
	return t
}

// Width is the visible width.
func (t Text) Width() int {
	return len(t.runes)
}

// Visible returns the visible channel as a string.
func (t Text) Visible() string {
	return string(t.runes)
}

// Marks returns a copy of the control channel.
func (t Text) Marks() []Mark {
	marks := make([]Mark, len(t.marks))
	copy(marks, t.marks)
	return marks
}

// String splices the control runs back into the visible runes. For valid
// UTF-8 input s, Parse(s).String() == s.
func (t Text) String() string {
	var b strings.Builder
	m := t.spliceRange(&b, 0, len(t.runes), 0)
	for ; m < len(t.marks); m++ {
		b.WriteString(t.marks[m].Seq)
	}
	return b.String()
}

// spliceRange writes runes [from, to) preceded by their marks, starting the
// mark scan at index m, and returns the index of the first mark not yet
// written.
func (t Text) spliceRange(b *strings.Builder, from, to, m int) int {
	for i := from; i < to; i++ {
		for m < len(t.marks) && t.marks[m].At <= i {
			b.WriteString(t.marks[m].Seq)
			m++
		}
		b.WriteRune(t.runes[i])
	}
	return m
}

// Width returns the visible width of s.
func Width(s string) int {
	return Parse(s).Width()
}

// Strip removes every control run from s.
func Strip(s string) string {
	return Parse(s).Visible()
}
