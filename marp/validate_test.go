package marp

import (
	"os"
	"path/filepath"
	"testing"
)

func findingRules(findings []Finding) []string {
	rules := make([]string, 0, len(findings))
	for _, f := range findings {
		rules = append(rules, f.Rule)
	}
	return rules
}

func hasRule(findings []Finding, rule string) bool {
	for _, f := range findings {
		if f.Rule == rule {
			return true
		}
	}
	return false
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		markdown  string
		wantValid bool
		wantRule  string
	}{
		{
			name:      "well-formed single slide",
			markdown:  "---\nmarp: true\n---\n# Hi",
			wantValid: true,
		},
		{
			name:      "well-formed multi slide",
			markdown:  "---\nmarp: true\ntheme: gaia\n---\n# One\n\n---\n\n# Two",
			wantValid: true,
		},
		{
			name:     "empty document",
			markdown: "",
			wantRule: "empty-document",
		},
		{
			name:     "whitespace only",
			markdown: "   \n\t\n",
			wantRule: "empty-document",
		},
		{
			name:     "no front matter",
			markdown: "# Just markdown",
			wantRule: "missing-front-matter",
		},
		{
			name:     "missing marp directive",
			markdown: "---\ntheme: gaia\n---\n# Hi",
			wantRule: "marp-directive",
		},
		{
			name:     "marp directive false",
			markdown: "---\nmarp: false\n---\n# Hi",
			wantRule: "marp-directive",
		},
		{
			name:     "broken yaml",
			markdown: "---\nmarp: [unclosed\n---\n# Hi",
			wantRule: "front-matter-syntax",
		},
		{
			name:     "no slide content",
			markdown: "---\nmarp: true\n---",
			wantRule: "no-slides",
		},
		{
			name:     "unknown theme in front matter",
			markdown: "---\nmarp: true\ntheme: nonexistent\n---\n# Hi",
			wantRule: "unknown-theme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t, "marp")
			runner := NewRunner(cfg)

			findings := runner.Validate(tt.markdown)

			if tt.wantValid {
				if len(findings) != 0 {
					t.Errorf("expected no findings, got %v", findingRules(findings))
				}
				return
			}

			if len(findings) == 0 {
				t.Fatal("expected findings, got none")
			}
			if !hasRule(findings, tt.wantRule) {
				t.Errorf("expected rule %q in %v", tt.wantRule, findingRules(findings))
			}
		})
	}
}

func TestValidateCustomThemeAccepted(t *testing.T) {
	cfg := testConfig(t, "marp")
	runner := NewRunner(cfg)

	themePath := filepath.Join(cfg.ThemeDir(), "corp.css")
	if err := os.WriteFile(themePath, []byte("/* @theme corporate */"), 0600); err != nil {
		t.Fatalf("failed to write theme: %v", err)
	}

	findings := runner.Validate("---\nmarp: true\ntheme: corporate\n---\n# Hi")
	if len(findings) != 0 {
		t.Errorf("expected no findings, got %v", findingRules(findings))
	}
}
