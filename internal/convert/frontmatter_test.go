// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cavenditti/quickslides/pkg/types"
)

func TestExtractFrontMatter(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		wantMeta types.Meta
		wantBody string
	}{
		{
			name: "complete front matter",
			source: "---\n" +
				"title: My Talk\n" +
				"subtitle: On Slides\n" +
				"author: Jane Doe\n" +
				"date: 2026-01-05\n" +
				"---\n" +
				"# Intro\n",
			wantMeta: types.Meta{
				Title:    "My Talk",
				Subtitle: "On Slides",
				Author:   "Jane Doe",
				Info:     "2026-01-05",
			},
			wantBody: "# Intro",
		},
		{
			name:     "no front matter",
			source:   "# Intro\nbody text\n",
			wantMeta: types.Meta{},
			wantBody: "# Intro\nbody text",
		},
		{
			name:     "missing closing delimiter degrades to body",
			source:   "---\ntitle: Unclosed\n# Intro\n",
			wantMeta: types.Meta{},
			wantBody: "---\ntitle: Unclosed\n# Intro",
		},
		{
			name:     "invalid yaml degrades to body",
			source:   "---\ntitle: [broken\n---\n# Intro\n",
			wantMeta: types.Meta{},
			wantBody: "---\ntitle: [broken\n---\n# Intro",
		},
		{
			name:     "date wins over info",
			source:   "---\ndate: 2026-02-02\ninfo: ignored\n---\nbody\n",
			wantMeta: types.Meta{Info: "2026-02-02"},
			wantBody: "body",
		},
		{
			name:     "info used when date absent",
			source:   "---\ninfo: Conference 2026\n---\nbody\n",
			wantMeta: types.Meta{Info: "Conference 2026"},
			wantBody: "body",
		},
		{
			name: "template keys",
			source: "---\n" +
				"logo: img/logo.svg\n" +
				"logo-alt: img/alt.svg\n" +
				"website-url: https://example.com\n" +
				"email: jane@example.com\n" +
				"ratio: 4-3\n" +
				"---\n",
			wantMeta: types.Meta{
				Logo:       "img/logo.svg",
				LogoAlt:    "img/alt.svg",
				WebsiteURL: "https://example.com",
				Email:      "jane@example.com",
				Ratio:      "4-3",
			},
			wantBody: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, body := extractFrontMatter([]byte(tt.source))

			assert.Equal(t, tt.wantMeta, meta)
			assert.Equal(t, tt.wantBody, string(trimNewlines(body)))
		})
	}
}

// trimNewlines strips leading and trailing newlines so assertions do not
// depend on how the front-matter scanner handles the delimiter's own line
// endings.
func trimNewlines(b []byte) []byte {
	start, end := 0, len(b)
	for start < end && (b[start] == '\n' || b[start] == '\r') {
		start++
	}
	for end > start && (b[end-1] == '\n' || b[end-1] == '\r') {
		end--
	}
	return b[start:end]
}
