package layout

import (
	"strings"

	"github.com/arthur-debert/sugary/pkg/style"
	"github.com/arthur-debert/sugary/pkg/text"
)

const (
	// RuleWidth is the length of a horizontal line.
	RuleWidth = 58
	// Underline is repeated under a heading.
	Underline = "="
)

var headingStyle = style.Spec{Style: "underline"}

// Heading returns s underlined, followed by a row of Underline as wide as
// the visible part of s.
func (r *Renderer) Heading(s string) string {
	return r.styler.Render(s, headingStyle) + "\n" + strings.Repeat(Underline, text.Width(s))
}

// HorizontalLine returns RuleWidth dashes.
func HorizontalLine() string {
	return strings.Repeat(Fill, RuleWidth)
}

// MakeHeading renders a heading with the default renderer.
func MakeHeading(s string) string {
	return Default().Heading(s)
}

// MakeHorizontalLine is HorizontalLine.
func MakeHorizontalLine() string {
	return HorizontalLine()
}
