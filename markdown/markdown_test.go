package markdown

import (
	"strings"
	"testing"

	"github.com/linguista/linguista/format"
)

func TestRender_GFM(t *testing.T) {
	out, err := Render("**bold** and ~~gone~~\n\n> quoted")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"<strong>bold</strong>", "<del>gone</del>", "<blockquote>"} {
		if !strings.Contains(out, want) {
			t.Fatalf("html=%q, missing %q", out, want)
		}
	}
}

func TestRender_DropsRawHTMLAndKeepsLineBreaks(t *testing.T) {
	out, err := Render("roses are red\nviolets are blue <script>x</script>")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(out, "<script>") {
		t.Fatalf("raw html leaked: %q", out)
	}
	if !strings.Contains(out, "<br") {
		t.Fatalf("expected hard wrap in %q", out)
	}
}

func TestInspect_Counts(t *testing.T) {
	src := strings.Join([]string{
		"# Title",
		"",
		"Some *soft* and **loud** `code` ~~old~~ <https://example.com>.",
		"",
		"> a quote",
		"",
		"- one",
		"- two",
		"",
		"1. first",
	}, "\n")
	got := Inspect(src)
	want := Outline{
		Emphasis: 1, Strong: 1, Strikethrough: 1, Code: 1,
		Blockquotes: 1, ListItems: 2, OrderedItems: 1, Headings: 1, Links: 1,
	}
	got.Words = 0
	if got != want {
		t.Fatalf("outline=%+v, want %+v", got, want)
	}
}

// Engine output must parse as the construct its rule names.
func TestInspect_EngineOutput(t *testing.T) {
	const text = "hola mundo\nadi\u00f3s"
	cases := []struct {
		rule  string
		sel   format.Selection
		check func(Outline) bool
	}{
		{rule: format.RuleBold, sel: format.Selection{Start: 0, End: 4}, check: func(o Outline) bool { return o.Strong == 1 }},
		{rule: format.RuleItalic, sel: format.Selection{Start: 5, End: 10}, check: func(o Outline) bool { return o.Emphasis == 1 }},
		{rule: format.RuleStrikethrough, sel: format.Selection{Start: 0, End: 4}, check: func(o Outline) bool { return o.Strikethrough == 1 }},
		{rule: format.RuleCode, sel: format.Selection{Start: 11, End: 16}, check: func(o Outline) bool { return o.Code == 1 }},
		{rule: format.RuleQuote, sel: format.Selection{Start: 0, End: 16}, check: func(o Outline) bool { return o.Blockquotes == 1 }},
		{rule: format.RuleBullet, sel: format.Selection{Start: 0, End: 16}, check: func(o Outline) bool { return o.ListItems == 2 }},
		{rule: format.RuleNumbered, sel: format.Selection{Start: 0, End: 16}, check: func(o Outline) bool { return o.OrderedItems == 2 }},
	}
	for _, tc := range cases {
		t.Run(tc.rule, func(t *testing.T) {
			res, err := format.Apply(text, tc.sel, tc.rule)
			if err != nil {
				t.Fatalf("apply: %v", err)
			}
			if o := Inspect(res.Text); !tc.check(o) {
				t.Fatalf("outline of %q = %+v", res.Text, o)
			}
		})
	}
}

func TestText_Layout(t *testing.T) {
	src := "Para *one* here\nline two\n\n> quoted **text**\n\n- a\n- b\n\n3. c\n4. d"
	want := strings.Join([]string{
		"Para one here",
		"line two",
		"",
		"│ quoted text",
		"",
		"• a",
		"• b",
		"",
		"3. c",
		"4. d",
	}, "\n")
	if got := Text(src); got != want {
		t.Fatalf("text=\n%s\nwant\n%s", got, want)
	}
}

func TestText_Empty(t *testing.T) {
	if got := Text(""); got != "" {
		t.Fatalf("text=%q, want empty", got)
	}
}
