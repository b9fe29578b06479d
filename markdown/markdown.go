// Package markdown previews composed posts. It parses CommonMark with the
// GFM extensions (strikethrough, tables, task lists) through goldmark and
// offers three views: HTML, a plain-text layout for terminals, and an
// outline of the formatting present.
package markdown

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	// Poems rely on line breaks inside a paragraph.
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// Render converts src to HTML. Raw HTML in src is omitted.
func Render(src string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}

func parse(src []byte) ast.Node {
	return md.Parser().Parse(text.NewReader(src))
}

// Outline counts formatting constructs in a document.
type Outline struct {
	Emphasis      int
	Strong        int
	Strikethrough int
	Code          int
	Blockquotes   int
	ListItems     int
	OrderedItems  int
	Headings      int
	Links         int
	Words         int
}

// Inspect parses src and returns its Outline.
func Inspect(src string) Outline {
	source := []byte(src)
	var o Outline
	_ = ast.Walk(parse(source), func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Emphasis:
			if n.Level >= 2 {
				o.Strong++
			} else {
				o.Emphasis++
			}
		case *east.Strikethrough:
			o.Strikethrough++
		case *ast.CodeSpan:
			o.Code++
		case *ast.Blockquote:
			o.Blockquotes++
		case *ast.ListItem:
			if l, ok := n.Parent().(*ast.List); ok && l.IsOrdered() {
				o.OrderedItems++
			} else {
				o.ListItems++
			}
		case *ast.Heading:
			o.Headings++
		case *ast.Link, *ast.AutoLink:
			o.Links++
		case *ast.Text:
			o.Words += len(strings.Fields(string(n.Segment.Value(source))))
		}
		return ast.WalkContinue, nil
	})
	return o
}

// Text lays src out as plain text for a terminal preview: markers are
// dropped, quotes are ruled with "│ ", bullets become "• " and ordered items
// keep their numbers. Line breaks inside paragraphs are kept.
func Text(src string) string {
	source := []byte(src)
	var lines []string
	writeBlocks(parse(source), source, &lines)
	return strings.Join(lines, "\n")
}

func writeBlocks(parent ast.Node, src []byte, lines *[]string) {
	top := parent.Kind() == ast.KindDocument
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		if top && len(*lines) > 0 {
			*lines = append(*lines, "")
		}
		switch n := n.(type) {
		case *ast.Blockquote:
			var inner []string
			writeBlocks(n, src, &inner)
			for _, l := range inner {
				*lines = append(*lines, "│ "+l)
			}
		case *ast.List:
			num := n.Start
			for item := n.FirstChild(); item != nil; item = item.NextSibling() {
				marker := "• "
				if n.IsOrdered() {
					marker = strconv.Itoa(num) + ". "
					num++
				}
				var inner []string
				writeBlocks(item, src, &inner)
				indent := strings.Repeat(" ", len([]rune(marker)))
				for i, l := range inner {
					if i == 0 {
						*lines = append(*lines, marker+l)
					} else {
						*lines = append(*lines, indent+l)
					}
				}
			}
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			segs := n.Lines()
			for i := 0; i < segs.Len(); i++ {
				seg := segs.At(i)
				*lines = append(*lines, "    "+strings.TrimRight(string(seg.Value(src)), "\n"))
			}
		case *ast.ThematicBreak:
			*lines = append(*lines, "───")
		default:
			if n.HasChildren() && n.FirstChild().Type() == ast.TypeInline {
				var sb strings.Builder
				writeInline(n, src, &sb)
				*lines = append(*lines, strings.Split(sb.String(), "\n")...)
				continue
			}
			writeBlocks(n, src, lines)
		}
	}
}

func writeInline(parent ast.Node, src []byte, sb *strings.Builder) {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch n := n.(type) {
		case *ast.Text:
			sb.Write(n.Segment.Value(src))
			if n.SoftLineBreak() || n.HardLineBreak() {
				sb.WriteByte('\n')
			}
		case *ast.String:
			sb.Write(n.Value)
		case *ast.AutoLink:
			sb.Write(n.URL(src))
		case *ast.RawHTML:
		default:
			writeInline(n, src, sb)
		}
	}
}
