package sugary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/sugary/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleCmd(t *testing.T) {
	isolate(t)

	out, err := run(t, "", "style", "--color", "always", "--fg", "green", "--bg", "light_blue", "--style", "bold", "so", "colorful")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[1m\x1b[104m\x1b[32mso colorful\x1b[0m\n", out)

	_, err = run(t, "", "style")
	assert.Error(t, err, "text is required")
}

func TestWrapCmd(t *testing.T) {
	sample := "This is a a long text.\n This is a really long text. This is a really really long text"

	t.Run("from arguments", func(t *testing.T) {
		isolate(t)

		out, err := run(t, "", "wrap", "--columns", "20", sample)
		require.NoError(t, err)
		assert.Equal(t, strings.Join([]string{
			"This is a a long",
			"text.",
			" This is a really",
			"long text. This is a",
			"really really long",
			"text",
		}, "\n")+"\n", out)
	})

	t.Run("from stdin", func(t *testing.T) {
		isolate(t)

		out, err := run(t, "abcd efgh\n", "wrap", "-c", "4")
		require.NoError(t, err)
		assert.Equal(t, "abcd\nefgh\n", out)
	})

	t.Run("columns from config", func(t *testing.T) {
		isolate(t)
		t.Setenv("SUGARY_WRAP__COLUMNS", "4")

		out, err := run(t, "", "wrap", "abcd", "efgh")
		require.NoError(t, err)
		assert.Equal(t, "abcd\nefgh\n", out)
	})

	t.Run("tolerances override config", func(t *testing.T) {
		isolate(t)

		out, err := run(t, "", "wrap", "-c", "10", "--max-constrict", "3", "--max-expand", "3", "abcdefghijklmnopqrstuvwxyz")
		require.NoError(t, err)
		assert.Equal(t, "abcdefghij\nklmnopqrst\nuvwxyz\n", out)
	})

	t.Run("invalid columns", func(t *testing.T) {
		isolate(t)

		_, err := run(t, "", "wrap", "-c", "-3", "text")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidWidth))
	})
}

func TestBillboardCmd(t *testing.T) {
	t.Run("plain panel", func(t *testing.T) {
		isolate(t)

		out, err := run(t, "", "billboard", " T ", "hello", "--width", "20")
		require.NoError(t, err)
		assert.Equal(t, strings.Join([]string{
			"╭-- T " + strings.Repeat("-", 13) + "+",
			"| hello",
			"╰" + strings.Repeat("-", 18) + "+",
		}, "\n")+"\n", out)
	})

	t.Run("body from stdin and width from config", func(t *testing.T) {
		isolate(t)
		t.Setenv("SUGARY_BILLBOARD__WIDTH", "12")

		out, err := run(t, "one two three\n", "billboard", "x")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
		assert.Equal(t, []string{"| one two", "| three"}, lines[1:len(lines)-1])
		assert.Equal(t, "╰----------+", lines[len(lines)-1])
	})

	t.Run("title style flags", func(t *testing.T) {
		isolate(t)

		out, err := run(t, "", "billboard", "--color", "always", "--title-fg", "cyan", "hi", "body")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "╭--\x1b[1m\x1b[36mhi\x1b[0m-"), out)
	})

	t.Run("zero width", func(t *testing.T) {
		isolate(t)

		_, err := run(t, "", "billboard", "-w", "0", "x", "y")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidWidth))
	})
}

func TestPresetCmds(t *testing.T) {
	isolate(t)

	tests := []struct {
		command string
		title   string
	}{
		{"warning", "╭-- WARNING -"},
		{"error", "╭-- ERROR -"},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			out, err := run(t, "", tt.command, "disk", "is", "full")
			require.NoError(t, err)

			lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
			require.Len(t, lines, 3)
			assert.True(t, strings.HasPrefix(lines[0], tt.title), lines[0])
			assert.Equal(t, "| disk is full", lines[1])
			assert.Equal(t, 50, len([]rune(lines[2])))
		})
	}
}

func TestHeadingAndRuleCmds(t *testing.T) {
	isolate(t)

	out, err := run(t, "", "heading", "Start", "here")
	require.NoError(t, err)
	assert.Equal(t, "Start here\n==========\n", out)

	out, err = run(t, "", "rule")
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("-", 58)+"\n", out)
}

func TestNamesCmd(t *testing.T) {
	isolate(t)

	out, err := run(t, "", "names")
	require.NoError(t, err)

	assert.Contains(t, out, "foreground:\n")
	assert.Contains(t, out, "background:\n")
	assert.Contains(t, out, "style:\n")
	assert.Contains(t, out, "  light_blue\n")
	assert.Contains(t, out, "  underline\n")
}

func TestDemoCmd(t *testing.T) {
	isolate(t)

	out, err := run(t, "", "demo")
	require.NoError(t, err)

	assert.Contains(t, out, "Start Test: `Sanity Check` | strict = false")
	assert.Contains(t, out, "[ F ] sky same as blue")
	assert.Contains(t, out, "Sanity Check: 3 passed, 1 failed")
	assert.Contains(t, out, "Start Test: `Renderers` | strict = true")
	assert.Contains(t, out, "Renderers: 10 passed, 0 failed")
	assert.Contains(t, out, "╭-- test ")
	assert.NotContains(t, out, "This is a strict test. Exit.")
}

func TestConfigCmd(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[wrap]\ncolumns = 33\n"), 0644))

	out, err := run(t, "", "config", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "# user file: "+path)
	assert.Contains(t, out, "columns = 33")
	assert.Contains(t, out, "width = 50")

	_, err = run(t, "", "config", "--config", filepath.Join(home, "missing.toml"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestHousekeepingCmds(t *testing.T) {
	isolate(t)

	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "sugary version dev")

	out, err = run(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "sugary")

	_, err = run(t, "", "completion", "tcsh")
	assert.Error(t, err)

	out, err = run(t, "", "man")
	require.NoError(t, err)
	assert.Contains(t, out, "SUGARY")

	dir := t.TempDir()
	_, err = run(t, "", "man", "--dir", dir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "sugary.1"))
}
