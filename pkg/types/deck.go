// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConversionStatus indicates the outcome of a Markdown-to-Typst conversion.
type ConversionStatus string

const (
	ConversionDone   ConversionStatus = "converted"
	ConversionFailed ConversionStatus = "failed"
)

// Meta holds presentation metadata for a slide deck. Values come from the
// document's front matter, with CLI overrides taking precedence. Empty fields
// are left out of the emitted Typst header entirely.
type Meta struct {
	// Title is the presentation title on the front slide.
	Title string `json:"title" yaml:"title"`

	// Subtitle is the presentation subtitle.
	Subtitle string `json:"subtitle" yaml:"subtitle"`

	// Author is the presenter line shown under the title.
	Author string `json:"author" yaml:"author"`

	// Info is the free-form info line on the front slide, typically a date.
	Info string `json:"info" yaml:"info"`

	// Logo is an image path for the template's primary logo.
	Logo string `json:"logo,omitempty" yaml:"logo,omitempty"`

	// LogoAlt is an image path for the template's alternate logo.
	LogoAlt string `json:"logo_alt,omitempty" yaml:"logo-alt,omitempty"`

	// WebsiteURL is shown in the template footer.
	WebsiteURL string `json:"website_url,omitempty" yaml:"website-url,omitempty"`

	// Email is shown in the template footer.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`

	// Ratio is the slide aspect ratio (default "16-9").
	Ratio string `json:"ratio,omitempty" yaml:"ratio,omitempty"`
}

// Merge returns a copy of m with every non-empty field of override replacing
// the corresponding field of m.
func (m Meta) Merge(override Meta) Meta {
	out := m
	if override.Title != "" {
		out.Title = override.Title
	}
	if override.Subtitle != "" {
		out.Subtitle = override.Subtitle
	}
	if override.Author != "" {
		out.Author = override.Author
	}
	if override.Info != "" {
		out.Info = override.Info
	}
	if override.Logo != "" {
		out.Logo = override.Logo
	}
	if override.LogoAlt != "" {
		out.LogoAlt = override.LogoAlt
	}
	if override.WebsiteURL != "" {
		out.WebsiteURL = override.WebsiteURL
	}
	if override.Email != "" {
		out.Email = override.Email
	}
	if override.Ratio != "" {
		out.Ratio = override.Ratio
	}
	return out
}

// ConvertConfig holds defaults for the conversion pipeline.
type ConvertConfig struct {
	// SlidesDir is the directory scanned for Markdown decks in batch mode.
	SlidesDir string `json:"slides_dir" yaml:"slides_dir"`

	// TypstBin is the typst compiler binary name or path.
	TypstBin string `json:"typst_bin" yaml:"typst_bin"`
}
