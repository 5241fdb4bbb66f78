// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package quickslides_test

import (
	"strings"
	"testing"

	"github.com/cavenditti/quickslides"
)

func TestConvert(t *testing.T) {
	input := "---\ntitle: Demo\n---\n# Intro\n## Points\n- first\n- second\n"

	out := quickslides.Convert(input, quickslides.Meta{Author: "Jane"})

	for _, want := range []string{
		`title: "Demo"`,
		`authors: "Jane"`,
		"#section[Intro]",
		"#slide(title: \"Points\")[\n  - first\n  - second\n]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q, got:\n%s", want, out)
		}
	}

	if out != quickslides.Convert(input, quickslides.Meta{Author: "Jane"}) {
		t.Error("conversion must be deterministic")
	}
}
