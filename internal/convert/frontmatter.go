// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"

	"github.com/adrg/frontmatter"
	"go.yaml.in/yaml/v3"

	"github.com/cavenditti/quickslides/pkg/types"
)

// yamlFormat recognizes "---" delimited blocks decoded with the yaml/v3
// unmarshaler.
var yamlFormat = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// metaEnvelope is the raw front-matter shape. Date and Info both feed the
// front-slide info line; date wins when both are present.
type metaEnvelope struct {
	Title      string `yaml:"title"`
	Subtitle   string `yaml:"subtitle"`
	Author     string `yaml:"author"`
	Date       string `yaml:"date"`
	Info       string `yaml:"info"`
	Logo       string `yaml:"logo"`
	LogoAlt    string `yaml:"logo-alt"`
	WebsiteURL string `yaml:"website-url"`
	Email      string `yaml:"email"`
	Ratio      string `yaml:"ratio"`
}

// extractFrontMatter splits source into deck metadata and the Markdown body.
// Malformed front matter (missing closing delimiter, invalid YAML) is not an
// error: the whole input comes back as body with empty metadata, so the block
// renders as ordinary text.
func extractFrontMatter(source []byte) (types.Meta, []byte) {
	var env metaEnvelope
	body, err := frontmatter.Parse(bytes.NewReader(source), &env, yamlFormat)
	if err != nil {
		return types.Meta{}, source
	}

	info := env.Date
	if info == "" {
		info = env.Info
	}

	return types.Meta{
		Title:      env.Title,
		Subtitle:   env.Subtitle,
		Author:     env.Author,
		Info:       info,
		Logo:       env.Logo,
		LogoAlt:    env.LogoAlt,
		WebsiteURL: env.WebsiteURL,
		Email:      env.Email,
		Ratio:      env.Ratio,
	}, body
}
