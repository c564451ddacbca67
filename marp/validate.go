package marp

import (
	"fmt"
	"strings"
)

// Finding is one structural problem detected in a Marp document.
type Finding struct {
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Validate runs structural checks over a Marp document and returns the list
// of findings; an empty list means the document is valid. Malformed input is
// reported, never raised, and no child process is spawned.
func (r *Runner) Validate(markdown string) []Finding {
	if strings.TrimSpace(markdown) == "" {
		return []Finding{{
			Rule:    "empty-document",
			Message: "document is empty",
		}}
	}

	var findings []Finding

	front, body, hasFront := SplitFrontMatter(markdown)
	if !hasFront {
		findings = append(findings, Finding{
			Rule:    "missing-front-matter",
			Message: "document does not start with a YAML front-matter block (--- ... ---)",
		})
	} else {
		fm, err := ParseFrontMatter(front)
		switch {
		case err != nil:
			findings = append(findings, Finding{
				Rule:    "front-matter-syntax",
				Message: fmt.Sprintf("front matter is not valid YAML: %v", err),
			})
		case !fm.Marp:
			findings = append(findings, Finding{
				Rule:    "marp-directive",
				Message: "front matter is missing the 'marp: true' directive",
			})
		}

		if err == nil && fm.Theme != "" {
			if _, themeErr := r.ResolveTheme(fm.Theme); themeErr != nil {
				toolErr := AsToolError(themeErr)
				// Filesystem trouble listing themes is not the document's fault.
				if toolErr.Code == CodeInvalidArguments {
					findings = append(findings, Finding{
						Rule:    "unknown-theme",
						Message: toolErr.Message,
					})
				}
			}
		}
	}

	if strings.TrimSpace(body) == "" {
		findings = append(findings, Finding{
			Rule:    "no-slides",
			Message: "document has no slide content after the front matter",
		})
	}

	if findings == nil {
		findings = []Finding{}
	}
	return findings
}
