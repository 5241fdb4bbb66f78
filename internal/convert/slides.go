// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cavenditti/quickslides/pkg/types"
)

// headingPattern matches H1/H2 lines that open a new slide.
var headingPattern = regexp.MustCompile(`^(#{1,2})\s+(.*)$`)

// defaultRatio is the slide aspect ratio used when neither front matter nor
// overrides supply one.
const defaultRatio = "16-9"

// slide is one segment of the document: a level-1 section or a level-2
// content slide, with the raw Markdown that followed its heading.
type slide struct {
	level int
	title string
	body  string
}

// Convert transforms Markdown text into a Typst slide deck. Override fields
// take precedence over front-matter values; fields supplied by neither are
// left out of the emitted header. Convert never fails: malformed front matter
// and unmatched emphasis markers degrade to literal text.
func Convert(markdownText string, overrides types.Meta) string {
	meta, body := extractFrontMatter([]byte(markdownText))
	meta = meta.Merge(overrides)

	slides := splitSlides(string(body))
	rendered := make([]string, 0, len(slides))
	for _, s := range slides {
		rendered = append(rendered, renderSlide(s))
	}

	out := renderHeader(meta) + strings.Join(rendered, "\n\n")
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out
}

// renderHeader emits the typslides preamble, the front slide, and the table
// of contents. Every metadata field is optional and omitted when empty; an
// all-empty front slide is omitted entirely.
func renderHeader(meta types.Meta) string {
	var b strings.Builder
	b.WriteString("#import \"typslides/lib.typ\": *\n\n")

	b.WriteString("#show: typslides.with(\n")
	if meta.Logo != "" {
		fmt.Fprintf(&b, "  logo: image(\"%s\", width: 13.75em, height: 13.5em),\n", escapeString(meta.Logo))
	}
	if meta.LogoAlt != "" {
		fmt.Fprintf(&b, "  logo-alt: image(\"%s\", width: 50em, height: 50em),\n", escapeString(meta.LogoAlt))
	}
	if meta.WebsiteURL != "" {
		fmt.Fprintf(&b, "  website-url: \"%s\",\n", escapeString(meta.WebsiteURL))
	}
	if meta.Email != "" {
		fmt.Fprintf(&b, "  email: \"%s\",\n", escapeString(meta.Email))
	}
	ratio := meta.Ratio
	if ratio == "" {
		ratio = defaultRatio
	}
	fmt.Fprintf(&b, "  ratio: \"%s\",\n", escapeString(ratio))
	b.WriteString(")\n\n")

	if fields := frontSlideFields(meta); len(fields) > 0 {
		b.WriteString("#front-slide(\n")
		for _, f := range fields {
			fmt.Fprintf(&b, "  %s: \"%s\",\n", f.name, escapeString(f.value))
		}
		b.WriteString(")\n\n")
	}

	b.WriteString("#table-of-contents()\n\n")
	return b.String()
}

type headerField struct {
	name  string
	value string
}

func frontSlideFields(meta types.Meta) []headerField {
	var fields []headerField
	add := func(name, value string) {
		if value != "" {
			fields = append(fields, headerField{name, value})
		}
	}
	add("title", meta.Title)
	add("subtitle", meta.Subtitle)
	add("authors", meta.Author)
	add("info", meta.Info)
	return fields
}

// splitSlides scans the body line by line, opening a new slide at each H1 or
// H2 heading. Lines before the first heading belong to no slide and are
// dropped.
func splitSlides(body string) []slide {
	var slides []slide
	var current slide
	var lines []string
	open := false

	flush := func() {
		if open {
			current.body = strings.Join(lines, "\n")
			slides = append(slides, current)
		}
		lines = nil
	}

	for _, line := range strings.Split(body, "\n") {
		if m := headingPattern.FindStringSubmatch(line); m != nil {
			flush()
			current = slide{level: len(m[1]), title: strings.TrimSpace(m[2])}
			open = true
			continue
		}
		lines = append(lines, line)
	}
	flush()
	return slides
}

// renderSlide emits Typst for one slide. H1 headings become sections, with a
// content slide added when body text follows; H2 headings become content
// slides. Inline styling inside the heading is itself translated.
func renderSlide(s slide) string {
	body := renderBody([]byte(s.body))

	if s.level == 1 {
		out := "#section[" + renderInline(s.title) + "]"
		if body != "" {
			out += "\n\n" + contentSlide(s.title, body)
		}
		return out
	}
	return contentSlide(s.title, body)
}

// contentSlide wraps a rendered body in a #slide call. The title lands in a
// Typst string, so it stays as the raw heading text.
func contentSlide(title, body string) string {
	return fmt.Sprintf("#slide(title: \"%s\")[\n%s\n]", escapeString(title), indentLines(body, "  "))
}

// indentLines prefixes each non-empty line with indent.
func indentLines(text, indent string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = indent + line
		}
	}
	return strings.Join(lines, "\n")
}
