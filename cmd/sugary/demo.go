package sugary

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/sugary/pkg/check"
	"github.com/arthur-debert/sugary/pkg/layout"
	"github.com/arthur-debert/sugary/pkg/style"
	"github.com/arthur-debert/sugary/pkg/text"
)

const demoText = "This is a a long text. This is a really long text. This is a really really long text"

// runDemo prints a tour of the renderers followed by two check suites. The
// first is not strict and shows what a failing check looks like; the second
// is strict and its failure is returned.
func runDemo(w io.Writer, r *layout.Renderer) error {
	s := r.Styler()

	fmt.Fprintln(w, r.Heading("Styles"))
	fmt.Fprintln(w, s.Render("This is stylized text with red foreground, green background, and bold font",
		style.Spec{Foreground: "red", Background: "green", Style: "bold"}))
	fmt.Fprintln(w, s.Render("This is stylized text with black foreground, white background, and blink font",
		style.Spec{Foreground: "black", Background: "white", Style: "blink"}))
	fmt.Fprintln(w, s.Render("This is stylized text without any flavour", style.Spec{}))
	fmt.Fprintln(w, s.Render("This is bold text", style.Spec{Style: "bold"}))

	fmt.Fprintln(w, layout.HorizontalLine())
	fmt.Fprintln(w, r.Heading("Wrapping"))
	fmt.Fprintf(w, "text to be cut: '%s'\n", demoText)
	rows, err := text.CutText(demoText, text.Columns(20))
	if err != nil {
		return err
	}
	for _, row := range rows {
		fmt.Fprintln(w, row)
	}

	fmt.Fprintln(w, layout.HorizontalLine())
	fmt.Fprintln(w, r.Heading("Billboards"))
	panels := []layout.Billboard{
		layout.NewBillboard(" test ", "This is a really good section", 25),
		layout.NewBillboard(" Dear madam, ",
			"I don't think you know why this texts are so "+
				s.Render("colorful", style.Spec{Foreground: "green", Background: "light_blue"})+
				", good luck on finding out "+s.Render("LOL", style.Spec{Foreground: "red"}),
			75),
	}
	for _, b := range panels {
		out, err := r.Billboard(b)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, out)
	}
	fmt.Fprintln(w, r.Warning("Configuration file not found, using defaults"))
	fmt.Fprintln(w, r.Error("GOD IS DEAD"))

	sanity := check.New("Sanity Check", check.WithStrict(false), check.WithOutput(w), check.WithRenderer(r))
	sanity.About("is 1 equal to 1").Expect(1).EqualTo(1)
	sanity.About("is `a` and `b` not the same").Expect("a").NotToBe("b")
	sanity.About("is list of dictionary the same").
		Expect([]map[string]int{{"test": 1}}).
		EqualTo([]map[string]int{{"test": 1}})
	sanity.About("sky same as blue").Expect("Sky").ToBe("blue")
	fmt.Fprintln(w, sanity.Summary())

	return selfCheck(w, r)
}

// selfCheck runs a strict suite over the renderers' documented behavior.
func selfCheck(w io.Writer, r *layout.Renderer) error {
	suite := check.New("Renderers", check.WithOutput(w), check.WithRenderer(r))

	rows, err := text.CutText("This is a a long text.\n This is a really long text. This is a really really long text", text.Columns(20))
	suite.About("wrapping the sample succeeds").Expect(err).ToBe(nil)
	suite.About("sample wraps into six rows").Expect(rows).EqualTo([]string{
		"This is a a long",
		"text.",
		" This is a really",
		"long text. This is a",
		"really really long",
		"text",
	})

	styler := r.Styler()
	red := style.Spec{Foreground: "red"}
	fg, reset := styler.Registry().Resolve(style.Foreground, "red"), styler.Registry().Reset()
	suite.About("nested styling is not collapsed").
		Expect(styler.Render(styler.Render("x", red), red)).ToBe(fg + fg + "x" + reset + reset)
	suite.About("unknown names style nothing").
		Expect(styler.Render("x", style.Spec{Foreground: "not-a-color"})).ToBe("x")

	panel, err := r.Billboard(layout.NewBillboard(" T ", "hello", 20))
	if !suite.About("billboard renders").Expect(err).ToBe(nil) {
		return suite.Err()
	}
	lines := strings.Split(panel, "\n")
	suite.About("billboard has top, body and bottom").Expect(len(lines)).ToBe(3)
	suite.About("top and bottom borders are equally wide").
		Expect(text.Width(lines[0])).ToBe(text.Width(lines[len(lines)-1]))
	suite.About("body rows start with the prefix").
		Expect(strings.HasPrefix(lines[1], layout.BodyPrefix)).ToBe(true)

	heading := strings.Split(r.Heading("Sanity"), "\n")
	suite.About("heading underline matches the text").
		Expect(heading[1]).ToBe(strings.Repeat(layout.Underline, len("Sanity")))
	suite.About("rule is as wide as documented").
		Expect(text.Width(layout.HorizontalLine())).ToBe(layout.RuleWidth)

	fmt.Fprintln(w, suite.Summary())
	return suite.Err()
}
