// Package check is a small fluent assertion DSL that prints a colored line
// per check:
//
//	suite := check.New("imp.go")
//	suite.About("settings has one entry").Expect(len(settings)).ToBe(1)
//
// A strict suite (the default) stops at its first failure: it prints a
// notice, records ErrStrictFailure and skips every later check. Deciding
// what to do with that failure, such as exiting, is up to the caller.
package check

import (
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/arthur-debert/sugary/pkg/errors"
	"github.com/arthur-debert/sugary/pkg/layout"
	"github.com/arthur-debert/sugary/pkg/logging"
	"github.com/arthur-debert/sugary/pkg/style"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// Output markers.
const (
	PassMark = "S"
	FailMark = "F"
)

var (
	passStyle   = style.Spec{Foreground: "green"}
	failStyle   = style.Spec{Foreground: "red"}
	descStyle   = style.Spec{Style: "bold"}
	strictStyle = style.Spec{Foreground: "red"}
)

// Suite is a titled group of checks. It is not safe for concurrent use.
type Suite struct {
	title    string
	strict   bool
	out      io.Writer
	renderer *layout.Renderer

	passed int
	failed int
	err    error
}

// Option configures a Suite.
type Option func(*Suite)

// WithStrict sets whether the first failure stops the suite.
func WithStrict(strict bool) Option {
	return func(s *Suite) { s.strict = strict }
}

// WithOutput sets where check lines are written.
func WithOutput(w io.Writer) Option {
	return func(s *Suite) { s.out = w }
}

// WithRenderer sets the renderer used for headings and marks.
func WithRenderer(r *layout.Renderer) Option {
	return func(s *Suite) { s.renderer = r }
}

// New starts a suite and prints its heading.
func New(title string, opts ...Option) *Suite {
	s := &Suite{
		title:  title,
		strict: true,
		out:    os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.renderer == nil {
		s.renderer = layout.Default()
	}

	s.printf("\n%s\n", s.renderer.Heading(fmt.Sprintf("Start Test: `%s` | strict = %t", title, s.strict)))
	return s
}

// About names the next check.
func (s *Suite) About(desc string) *Expectation {
	return &Expectation{suite: s, desc: desc}
}

// Err returns the strict failure, if any.
func (s *Suite) Err() error {
	return s.err
}

// Passed returns the number of passing checks.
func (s *Suite) Passed() int {
	return s.passed
}

// Failed returns the number of failing checks.
func (s *Suite) Failed() int {
	return s.failed
}

// Summary returns a one-line tally such as "imp.go: 3 passed, 1 failed".
func (s *Suite) Summary() string {
	return fmt.Sprintf("%s: %d passed, %d failed", s.title, s.passed, s.failed)
}

func (s *Suite) record(desc string, ok bool) bool {
	if s.err != nil {
		logger := s.logger()
		logger.Debug().Str("suite", s.title).Str("check", desc).Msg("Skipped after strict failure")
		return false
	}

	styler := s.renderer.Styler()
	if ok {
		s.passed++
		s.printf("[ %s ] %s\n", styler.Render(PassMark, passStyle), styler.Render(desc, descStyle))
		return true
	}

	s.failed++
	s.printf("[ %s ] %s\n", styler.Render(FailMark, failStyle), styler.Render(desc, descStyle))
	logger := s.logger()
	logger.Debug().Str("suite", s.title).Str("check", desc).Msg("Check failed")

	if s.strict {
		s.printf("%s\n", styler.Render("This is a strict test. Exit.", strictStyle))
		s.err = errors.Newf(errors.ErrStrictFailure, "strict suite %q failed at %q", s.title, desc).
			WithDetails(map[string]interface{}{"suite": s.title, "check": desc})
	}
	return false
}

func (s *Suite) logger() zerolog.Logger {
	return logging.GetLogger("check")
}

func (s *Suite) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

// Expectation is a named check waiting for its actual value.
type Expectation struct {
	suite *Suite
	desc  string
}

// Expect supplies the actual value.
func (e *Expectation) Expect(actual interface{}) *Comparison {
	return &Comparison{suite: e.suite, desc: e.desc, actual: actual}
}

// Comparison finishes a check against an expected value. Each method
// prints the result line and reports whether the check passed.
type Comparison struct {
	suite  *Suite
	desc   string
	actual interface{}
}

// EqualTo passes when actual and expected are deeply equal.
func (c *Comparison) EqualTo(expected interface{}) bool {
	return c.suite.record(c.desc, assert.ObjectsAreEqual(expected, c.actual))
}

// NotEqualTo passes when actual and expected differ.
func (c *Comparison) NotEqualTo(expected interface{}) bool {
	return c.suite.record(c.desc, !assert.ObjectsAreEqual(expected, c.actual))
}

// ToBe passes when actual and expected are the same thing: the same
// reference for pointers, maps, slices, channels and funcs, or equal
// comparable values.
func (c *Comparison) ToBe(expected interface{}) bool {
	return c.suite.record(c.desc, identical(c.actual, expected))
}

// NotToBe passes when ToBe would fail.
func (c *Comparison) NotToBe(expected interface{}) bool {
	return c.suite.record(c.desc, !identical(c.actual, expected))
}

func identical(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}

	switch va.Kind() {
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	}

	// Value.Comparable also looks inside interface fields
	if !va.Comparable() || !vb.Comparable() {
		return false
	}
	return a == b
}
