// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package quickslides converts Markdown documents with front-matter metadata
// into Typst slide-deck markup. Level-1 headings become section slides,
// level-2 headings become content slides, and inline Markdown styling is
// translated into the equivalent Typst constructs.
package quickslides

import (
	"github.com/cavenditti/quickslides/internal/convert"
	"github.com/cavenditti/quickslides/pkg/types"
)

// Meta holds presentation metadata. See types.Meta.
type Meta = types.Meta

// Convert transforms Markdown text into Typst slide-deck markup. Override
// fields take precedence over the document's front matter; fields supplied by
// neither are omitted from the emitted header. Convert is pure and never
// fails: malformed front matter and unmatched emphasis markers degrade to
// literal text.
func Convert(markdown string, overrides Meta) string {
	return convert.Convert(markdown, overrides)
}
