package check_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arthur-debert/sugary/pkg/check"
	"github.com/arthur-debert/sugary/pkg/errors"
	"github.com/arthur-debert/sugary/pkg/layout"
	"github.com/arthur-debert/sugary/pkg/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSuite(t *testing.T, title string, strict bool) (*check.Suite, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	suite := check.New(title,
		check.WithStrict(strict),
		check.WithOutput(&buf),
		check.WithRenderer(layout.NewRenderer(style.NewStyler(style.Plain()))),
	)
	return suite, &buf
}

func TestNewPrintsHeading(t *testing.T) {
	_, buf := newSuite(t, "Sanity Check", false)

	heading := "Start Test: `Sanity Check` | strict = false"
	assert.Equal(t, "\n"+heading+"\n"+strings.Repeat("=", len(heading))+"\n", buf.String())
}

type holder struct{ V interface{} }

func TestComparisons(t *testing.T) {
	shared := []int{1, 2, 3}
	ptr := &struct{ n int }{1}

	tests := []struct {
		name  string
		check func(c *check.Comparison) bool
		given interface{}
		want  bool
	}{
		{"equal ints", func(c *check.Comparison) bool { return c.EqualTo(1) }, 1, true},
		{"unequal ints", func(c *check.Comparison) bool { return c.EqualTo(3) }, 2, false},
		{"equal slices by value", func(c *check.Comparison) bool { return c.EqualTo([]int{1, 2, 3}) }, []int{1, 2, 3}, true},
		{"equal maps by value", func(c *check.Comparison) bool {
			return c.EqualTo([]map[string]int{{"test": 1}})
		}, []map[string]int{{"test": 1}}, true},
		{"not equal", func(c *check.Comparison) bool { return c.NotEqualTo("b") }, "a", true},
		{"not equal fails on equal", func(c *check.Comparison) bool { return c.NotEqualTo("a") }, "a", false},
		{"same string value", func(c *check.Comparison) bool { return c.ToBe("Sky") }, "Sky", true},
		{"different strings", func(c *check.Comparison) bool { return c.ToBe("blue") }, "Sky", false},
		{"same slice", func(c *check.Comparison) bool { return c.ToBe(shared) }, shared, true},
		{"copied slice is another thing", func(c *check.Comparison) bool { return c.ToBe([]int{1, 2, 3}) }, shared, false},
		{"same pointer", func(c *check.Comparison) bool { return c.ToBe(ptr) }, ptr, true},
		{"equal pointee is another thing", func(c *check.Comparison) bool {
			return c.ToBe(&struct{ n int }{1})
		}, ptr, false},
		{"different types", func(c *check.Comparison) bool { return c.ToBe(int64(1)) }, 1, false},
		{"nil and nil", func(c *check.Comparison) bool { return c.ToBe(nil) }, nil, true},
		{"nil and value", func(c *check.Comparison) bool { return c.ToBe(nil) }, 0, false},
		{"not to be", func(c *check.Comparison) bool { return c.NotToBe("b") }, "a", true},
		{"comparable holders", func(c *check.Comparison) bool { return c.ToBe(holder{7}) }, holder{7}, true},
		{"holders of slices are never identical", func(c *check.Comparison) bool {
			return c.ToBe(holder{[]int{1}})
		}, holder{[]int{1}}, false},
		{"holders of maps are never identical", func(c *check.Comparison) bool {
			return c.NotToBe(holder{map[string]int{"a": 1}})
		}, holder{map[string]int{"a": 1}}, true},
		{"holders of slices are still equal", func(c *check.Comparison) bool {
			return c.EqualTo(holder{[]int{1}})
		}, holder{[]int{1}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suite, _ := newSuite(t, "comparisons", false)
			got := tt.check(suite.About(tt.name).Expect(tt.given))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResultLines(t *testing.T) {
	suite, buf := newSuite(t, "lines", false)
	buf.Reset()

	suite.About("is 1 equal to 1").Expect(1).EqualTo(1)
	suite.About("sky same as blue").Expect("Sky").ToBe("blue")

	assert.Equal(t, "[ S ] is 1 equal to 1\n[ F ] sky same as blue\n", buf.String())
	assert.Equal(t, 1, suite.Passed())
	assert.Equal(t, 1, suite.Failed())
	assert.NoError(t, suite.Err())
	assert.Equal(t, "lines: 1 passed, 1 failed", suite.Summary())
}

func TestColoredMarks(t *testing.T) {
	var buf bytes.Buffer
	suite := check.New("colors", check.WithOutput(&buf), check.WithStrict(false))
	buf.Reset()

	suite.About("passes").Expect(true).EqualTo(true)
	suite.About("fails").Expect(true).EqualTo(false)

	out := buf.String()
	assert.Contains(t, out, "[ "+style.Color("S", "green")+" ] "+style.Bold("passes"))
	assert.Contains(t, out, "[ "+style.Color("F", "red")+" ] "+style.Bold("fails"))
}

func TestStrictSuiteStopsAtFirstFailure(t *testing.T) {
	suite, buf := newSuite(t, "Test a", true)
	buf.Reset()

	assert.True(t, suite.About("is 1 equal to 1").Expect(1).EqualTo(1))
	assert.False(t, suite.About("Must be wrong").Expect(2).ToBe(3))
	assert.False(t, suite.About("never printed").Expect(1).EqualTo(1))

	assert.Equal(t,
		"[ S ] is 1 equal to 1\n[ F ] Must be wrong\nThis is a strict test. Exit.\n",
		buf.String())

	err := suite.Err()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrStrictFailure))
	assert.Equal(t, "Must be wrong", errors.GetErrorDetails(err)["check"])
	assert.Equal(t, 1, suite.Passed())
	assert.Equal(t, 1, suite.Failed())
}

func TestNonStrictSuiteKeepsGoing(t *testing.T) {
	suite, _ := newSuite(t, "Sanity Check", false)

	suite.About("is `a` and `b` not the same").Expect("a").NotToBe("b")
	suite.About("sky same as blue").Expect("Sky").ToBe("blue")
	suite.About("still running").Expect(2).EqualTo(2)

	assert.Equal(t, 2, suite.Passed())
	assert.Equal(t, 1, suite.Failed())
	assert.NoError(t, suite.Err())
}
