package style

import (
	"strings"
	"sync"
)

// Spec names the foreground color, background color and effect to apply.
// Empty fields apply nothing.
type Spec struct {
	Foreground string `koanf:"foreground" toml:"foreground,omitempty"`
	Background string `koanf:"background" toml:"background,omitempty"`
	Style      string `koanf:"style" toml:"style,omitempty"`
}

// IsZero reports whether the spec names nothing.
func (s Spec) IsZero() bool {
	return s.Foreground == "" && s.Background == "" && s.Style == ""
}

// Styler wraps text with the fragments of its registry.
type Styler struct {
	codes *Registry
}

// NewStyler returns a styler over codes; nil selects Default().
func NewStyler(codes *Registry) *Styler {
	if codes == nil {
		codes = Default()
	}
	return &Styler{codes: codes}
}

// Registry returns the code table the styler resolves names against.
func (s *Styler) Registry() *Registry {
	return s.codes
}

// Render prefixes text with the effect, background and foreground
// fragments, in that order, and closes it with a single reset. Text comes
// back unchanged when no name resolves.
func (s *Styler) Render(text string, spec Spec) string {
	prefix := s.codes.Resolve(Effect, spec.Style) +
		s.codes.Resolve(Background, spec.Background) +
		s.codes.Resolve(Foreground, spec.Foreground)
	if prefix == "" {
		return text
	}

	var b strings.Builder
	b.Grow(len(prefix) + len(text) + len(s.codes.Reset()))
	b.WriteString(prefix)
	b.WriteString(text)
	b.WriteString(s.codes.Reset())
	return b.String()
}

var defaultStyler = sync.OnceValue(func() *Styler { return NewStyler(Default()) })

// Render styles text with the default registry.
func Render(text string, spec Spec) string {
	return defaultStyler().Render(text, spec)
}

// Bold is shorthand for Render(text, Spec{Style: "bold"}).
func Bold(text string) string {
	return Render(text, Spec{Style: "bold"})
}

// Underline is shorthand for Render(text, Spec{Style: "underline"}).
func Underline(text string) string {
	return Render(text, Spec{Style: "underline"})
}

// Color is shorthand for a foreground-only spec.
func Color(text, fg string) string {
	return Render(text, Spec{Foreground: fg})
}
