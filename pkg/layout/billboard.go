package layout

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/sugary/pkg/errors"
	"github.com/arthur-debert/sugary/pkg/style"
	"github.com/arthur-debert/sugary/pkg/text"
)

// Border pieces.
const (
	TopLeft    = "╭"
	BottomLeft = "╰"
	TitleLead  = "--"
	Fill       = "-"
	Corner     = "+"
	BodyPrefix = "| "
)

const (
	// MinWidth fits "╭--+" and a one-column body.
	MinWidth = 4
	// PresetWidth is the width of warning and error panels.
	PresetWidth = 50
)

// Panel title styles.
var (
	DefaultTitleStyle = style.Spec{Style: "bold"}
	WarningTitleStyle = style.Spec{Foreground: "yellow", Style: "bold"}
	ErrorTitleStyle   = style.Spec{Foreground: "red", Style: "bold"}
)

// Billboard is one panel to render.
type Billboard struct {
	Title      string
	Body       string
	Width      int
	TitleStyle style.Spec
}

// NewBillboard returns a billboard with the default bold title.
func NewBillboard(title, body string, width int) Billboard {
	return Billboard{Title: title, Body: body, Width: width, TitleStyle: DefaultTitleStyle}
}

// Billboard renders b. Every border line is b.Width columns wide and body
// rows never exceed it. A title too long for the border gets no fill, and
// widths under MinWidth are drawn at MinWidth. Lines are joined with "\n"
// without a trailing newline.
func (r *Renderer) Billboard(b Billboard) (string, error) {
	if b.Width <= 0 {
		return "", errors.InvalidWidth("width", b.Width)
	}
	width := max(b.Width, MinWidth)

	rows, err := text.CutText(b.Body, text.WrapSpec{
		Columns:      width - text.Width(BodyPrefix),
		MaxConstrict: width,
		MaxExpand:    0,
	})
	if err != nil {
		return "", err
	}

	fill := max(width-text.Width(TopLeft+TitleLead+Corner)-text.Width(b.Title), 0)

	var sb strings.Builder
	sb.WriteString(TopLeft + TitleLead)
	sb.WriteString(r.styler.Render(b.Title, b.TitleStyle))
	sb.WriteString(strings.Repeat(Fill, fill))
	sb.WriteString(Corner + "\n")
	reset := r.styler.Registry().Reset()
	var open []string
	for _, row := range rows {
		sb.WriteString(BodyPrefix)
		sb.WriteString(strings.Join(open, ""))
		sb.WriteString(row)
		if reset != "" {
			open = openRuns(open, row, reset)
			if len(open) > 0 {
				sb.WriteString(reset)
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString(BottomLeft)
	sb.WriteString(strings.Repeat(Fill, width-text.Width(BottomLeft+Corner)))
	sb.WriteString(Corner)

	logger := r.logger()
	logger.Trace().
		Int("width", width).
		Int("rows", len(rows)).
		Msg("Rendered billboard")

	return sb.String(), nil
}

// openRuns returns the control runs still in effect after row, given the
// runs open before it. A reset closes everything opened so far. Rows that
// end inside a styled run are closed with a reset and the runs reopened on
// the next row, so styling never reaches the border.
func openRuns(open []string, row, reset string) []string {
	for _, m := range text.Parse(row).Marks() {
		if m.Seq == reset {
			open = open[:0]
			continue
		}
		open = append(open, m.Seq)
	}
	return open
}

// Warning renders body in a PresetWidth panel titled WARNING.
func (r *Renderer) Warning(body string) string {
	return r.preset(" WARNING ", body, WarningTitleStyle)
}

// Error renders body in a PresetWidth panel titled ERROR.
func (r *Renderer) Error(body string) string {
	return r.preset(" ERROR ", body, ErrorTitleStyle)
}

func (r *Renderer) preset(title, body string, titleStyle style.Spec) string {
	// PresetWidth is positive, so rendering cannot fail
	out, _ := r.Billboard(Billboard{Title: title, Body: body, Width: PresetWidth, TitleStyle: titleStyle})
	return out
}

// Fatal writes an error panel for desc to w. Exiting is left to the caller.
func (r *Renderer) Fatal(w io.Writer, desc string) {
	_, _ = fmt.Fprintln(w, r.Error(desc))
}

// MakeBillboard renders a panel with the default renderer.
func MakeBillboard(title, body string, width int, titleStyle style.Spec) (string, error) {
	return Default().Billboard(Billboard{Title: title, Body: body, Width: width, TitleStyle: titleStyle})
}

// MakeWarning renders a warning panel with the default renderer.
func MakeWarning(body string) string {
	return Default().Warning(body)
}

// MakeError renders an error panel with the default renderer.
func MakeError(body string) string {
	return Default().Error(body)
}

// Fatal writes an error panel with the default renderer.
func Fatal(w io.Writer, desc string) {
	Default().Fatal(w, desc)
}
