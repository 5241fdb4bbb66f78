// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// markdown is the shared goldmark instance. Only its parser is used; the
// Typst output is produced by renderNode below, not a goldmark renderer.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.Table, extension.Strikethrough),
)

// typstSpecial lists characters with meaning in Typst markup. They are
// backslash-escaped in prose so that literal input text (including unmatched
// emphasis markers) survives as literal output.
const typstSpecial = "#$\\{}[]_*\"`"

// escapeTypst escapes Typst special characters in prose text.
func escapeTypst(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(typstSpecial, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// escapeString escapes a value for a double-quoted Typst string.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

// renderBody converts a Markdown fragment into Typst markup.
func renderBody(source []byte) string {
	doc := markdown.Parser().Parse(text.NewReader(source))
	var b strings.Builder
	for c := doc.FirstChild(); c != nil; c = c.NextSibling() {
		b.WriteString(renderNode(c, source, 0))
	}
	return strings.TrimSpace(b.String())
}

// renderInline converts a single line of Markdown (a heading title) into
// Typst inline markup with no paragraph break.
func renderInline(line string) string {
	return renderBody([]byte(line))
}

func renderChildren(n ast.Node, source []byte, depth int) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		b.WriteString(renderNode(c, source, depth))
	}
	return b.String()
}

// renderNode emits Typst markup for one AST node. Translation is purely
// syntactic: whatever goldmark left as literal text (for example unmatched
// emphasis markers) is escaped and emitted as-is.
func renderNode(n ast.Node, source []byte, depth int) string {
	switch n := n.(type) {
	case *ast.Paragraph:
		return renderChildren(n, source, depth) + "\n\n"
	case *ast.TextBlock:
		return renderChildren(n, source, depth)
	case *ast.Text:
		s := escapeTypst(string(n.Segment.Value(source)))
		switch {
		case n.HardLineBreak():
			s += " \\\n"
		case n.SoftLineBreak():
			s += "\n"
		}
		return s
	case *ast.String:
		return escapeTypst(string(n.Value))
	case *ast.Emphasis:
		inner := renderChildren(n, source, depth)
		if n.Level == 2 {
			return "*" + inner + "*"
		}
		return "_" + inner + "_"
	case *ast.CodeSpan:
		// Code spans are verbatim; no escaping.
		return "`" + rawText(n, source) + "`"
	case *ast.Link:
		return fmt.Sprintf("#link(\"%s\")[%s]", escapeString(string(n.Destination)), renderChildren(n, source, depth))
	case *ast.AutoLink:
		return fmt.Sprintf("#link(\"%s\")", escapeString(string(n.URL(source))))
	case *ast.Image:
		url := escapeString(string(n.Destination))
		if alt := rawText(n, source); alt != "" {
			return fmt.Sprintf("#figure(image(\"%s\"), caption: \"%s\")", url, escapeString(alt))
		}
		return fmt.Sprintf("#image(\"%s\")", url)
	case *ast.Blockquote:
		return "#quote[" + strings.TrimSpace(renderChildren(n, source, depth)) + "]\n\n"
	case *ast.FencedCodeBlock:
		return "```" + string(n.Language(source)) + "\n" + blockLines(n, source) + "```\n\n"
	case *ast.CodeBlock:
		return "```\n" + blockLines(n, source) + "```\n\n"
	case *ast.Heading:
		return strings.Repeat("=", n.Level) + " " + renderChildren(n, source, depth) + "\n\n"
	case *ast.ThematicBreak:
		return "#line(length: 100%)\n\n"
	case *ast.List:
		return renderList(n, source, depth) + "\n\n"
	case *east.Table:
		return renderTable(n, source)
	case *east.Strikethrough:
		return "#strike[" + renderChildren(n, source, depth) + "]"
	default:
		return renderChildren(n, source, depth)
	}
}

// renderList emits one "- " (or "+ " for ordered) line per item, indenting
// nested lists two spaces per level.
func renderList(n *ast.List, source []byte, depth int) string {
	marker := "-"
	if n.IsOrdered() {
		marker = "+"
	}
	indent := strings.Repeat("  ", depth)

	var lines []string
	for item := n.FirstChild(); item != nil; item = item.NextSibling() {
		var content strings.Builder
		var nested []string
		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			if sub, ok := c.(*ast.List); ok {
				nested = append(nested, renderList(sub, source, depth+1))
				continue
			}
			content.WriteString(renderNode(c, source, depth))
		}
		lines = append(lines, indent+marker+" "+strings.TrimSpace(content.String()))
		lines = append(lines, nested...)
	}
	return strings.Join(lines, "\n")
}

// renderTable emits a #table call with one bracketed cell per table cell and
// bold header cells. Short rows are padded with empty cells so column
// alignment survives ragged input.
func renderTable(n *east.Table, source []byte) string {
	var header []string
	var rows [][]string
	cols := 0
	for row := n.FirstChild(); row != nil; row = row.NextSibling() {
		var current []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			current = append(current, strings.TrimSpace(renderChildren(cell, source, 0)))
		}
		if cols < len(current) {
			cols = len(current)
		}
		if _, ok := row.(*east.TableHeader); ok {
			header = current
		} else {
			rows = append(rows, current)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "#table(\n  columns: %d,\n", cols)
	for i := 0; i < cols; i++ {
		h := ""
		if i < len(header) {
			h = header[i]
		}
		fmt.Fprintf(&b, "  [*%s*],\n", h)
	}
	for _, row := range rows {
		for i := 0; i < cols; i++ {
			c := ""
			if i < len(row) {
				c = row[i]
			}
			fmt.Fprintf(&b, "  [%s],\n", c)
		}
	}
	b.WriteString(")\n\n")
	return b.String()
}

// rawText concatenates the unescaped text content of a node's subtree.
func rawText(n ast.Node, source []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Text:
			b.Write(c.Segment.Value(source))
		case *ast.String:
			b.Write(c.Value)
		default:
			b.WriteString(rawText(c, source))
		}
	}
	return b.String()
}

// blockLines returns the verbatim source lines of a code block.
func blockLines(n ast.Node, source []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(source))
	}
	return b.String()
}
