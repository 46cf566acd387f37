package text_test

import (
	"testing"

	"github.com/arthur-debert/sugary/pkg/style"
	"github.com/arthur-debert/sugary/pkg/text"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

const (
	green = "\x1b[32m"
	red   = "\x1b[31m"
	reset = "\x1b[0m"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		visible string
		marks   []text.Mark
	}{
		{
			name:    "plain text",
			input:   "hello",
			visible: "hello",
			marks:   []text.Mark{},
		},
		{
			name:    "styled word",
			input:   "a " + green + "b" + reset + " c",
			visible: "a b c",
			marks:   []text.Mark{{At: 2, Seq: green}, {At: 3, Seq: reset}},
		},
		{
			name:    "trailing control run",
			input:   "ab" + reset,
			visible: "ab",
			marks:   []text.Mark{{At: 2, Seq: reset}},
		},
		{
			name:    "adjacent runs share a position",
			input:   "\x1b[1m\x1b[42m\x1b[31mx" + reset,
			visible: "x",
			marks: []text.Mark{
				{At: 0, Seq: "\x1b[1m"},
				{At: 0, Seq: "\x1b[42m"},
				{At: 0, Seq: "\x1b[31m"},
				{At: 1, Seq: reset},
			},
		},
		{
			name:    "multi-parameter sequence",
			input:   "\x1b[1;38;5;208mhot",
			visible: "hot",
			marks:   []text.Mark{{At: 0, Seq: "\x1b[1;38;5;208m"}},
		},
		{
			name:    "lone escape at end",
			input:   "ab\x1b",
			visible: "ab",
			marks:   []text.Mark{{At: 2, Seq: "\x1b"}},
		},
		{
			name:    "unterminated sequence runs to end",
			input:   "ab\x1b[31",
			visible: "ab",
			marks:   []text.Mark{{At: 2, Seq: "\x1b[31"}},
		},
		{
			name:    "two character escape",
			input:   "\x1bMup",
			visible: "up",
			marks:   []text.Mark{{At: 0, Seq: "\x1bM"}},
		},
		{
			name:    "escape with a final byte",
			input:   "\x1bay",
			visible: "y",
			marks:   []text.Mark{{At: 0, Seq: "\x1ba"}},
		},
		{
			name:    "hyperlink string sequences",
			input:   "\x1b]8;;https://example.com\x1b\\link\x1b]8;;\x1b\\",
			visible: "link",
			marks: []text.Mark{
				{At: 0, Seq: "\x1b]8;;https://example.com\x1b\\"},
				{At: 4, Seq: "\x1b]8;;\x1b\\"},
			},
		},
		{
			name:    "tabs stay visible",
			input:   "a\tb",
			visible: "a\tb",
			marks:   []text.Mark{},
		},
		{
			name:    "combining marks count per rune",
			input:   "e\u0301" + red + "x",
			visible: "e\u0301x",
			marks:   []text.Mark{{At: 2, Seq: red}},
		},
		{
			name:    "multibyte runes count once",
			input:   "╭─" + red + "é" + reset,
			visible: "╭─é",
			marks:   []text.Mark{{At: 2, Seq: red}, {At: 3, Seq: reset}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := text.Parse(tt.input)
			assert.Equal(t, tt.visible, parsed.Visible())
			assert.Equal(t, tt.marks, parsed.Marks())
			assert.Equal(t, len([]rune(tt.visible)), parsed.Width())
			assert.Equal(t, tt.input, parsed.String(), "splicing must restore the input")
		})
	}
}

func TestMarksReturnsCopy(t *testing.T) {
	parsed := text.Parse(red + "x")
	marks := parsed.Marks()
	marks[0].Seq = "changed"
	assert.Equal(t, red, parsed.Marks()[0].Seq)
}

func TestWidthIgnoresControlRuns(t *testing.T) {
	styled := style.Render("colorful", style.Spec{Foreground: "green", Background: "light_blue", Style: "bold"})

	assert.Equal(t, 8, text.Width(styled))
	assert.Equal(t, "colorful", text.Strip(styled))
	assert.Equal(t, 0, text.Width(""))
}

// The SGR runs emitted by the style registry must be read the same way an
// independent ANSI parser reads them.
func TestStripAgreesWithANSIParser(t *testing.T) {
	corpus := []string{
		"",
		"plain words only",
		style.Render("red", style.Spec{Foreground: "red"}) + " and " + style.Bold("bold"),
		"I don't think you know why this texts are so " +
			style.Render("colorful", style.Spec{Foreground: "green", Background: "light_blue"}) +
			", good luck on finding out " + style.Color("LOL", "red"),
		"\x1b[1;38;5;208mextended\x1b[0m colors",
	}

	for _, s := range corpus {
		assert.Equal(t, ansi.Strip(s), text.Strip(s), "input %q", s)
		assert.Equal(t, ansi.StringWidth(s), text.Width(s), "input %q", s)
	}
}
