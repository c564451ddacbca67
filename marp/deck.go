package marp

import (
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
	"gopkg.in/yaml.v3"
)

// FrontMatter is the parsed YAML block that opens a Marp document.
type FrontMatter struct {
	Marp  bool   `yaml:"marp"`
	Theme string `yaml:"theme"`
	Title string `yaml:"title"`
}

// DeckInfo summarizes the structure of a deck body without rendering it.
type DeckInfo struct {
	Slides int
	Title  string
}

// SplitFrontMatter separates the leading YAML front-matter block from the
// slide body. ok is false when the document doesn't open with a front-matter
// fence.
func SplitFrontMatter(doc string) (front, body string, ok bool) {
	normalized := strings.ReplaceAll(doc, "\r\n", "\n")
	if !strings.HasPrefix(normalized, "---\n") {
		return "", normalized, false
	}

	rest := normalized[len("---\n"):]
	end := strings.Index(rest, "\n---\n")
	if end < 0 {
		if strings.HasSuffix(rest, "\n---") {
			return rest[:len(rest)-len("\n---")], "", true
		}
		return "", normalized, false
	}

	front = rest[:end]
	body = rest[end+len("\n---\n"):]
	return front, body, true
}

// ParseFrontMatter decodes the YAML block into the directives Marp cares
// about. Unknown keys are ignored.
func ParseFrontMatter(front string) (*FrontMatter, error) {
	var fm FrontMatter
	if err := yaml.Unmarshal([]byte(front), &fm); err != nil {
		return nil, err
	}
	return &fm, nil
}

// InspectDeck parses the slide body and reports slide count and title.
// Marp starts a new slide at every thematic break, so an n-break body has
// n+1 slides. An empty body has zero.
func InspectDeck(body string) DeckInfo {
	info := DeckInfo{}
	if strings.TrimSpace(body) == "" {
		return info
	}

	p := parser.NewWithExtensions(parser.CommonExtensions)
	doc := markdown.Parse([]byte(body), p)

	breaks := 0
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}

		switch n := node.(type) {
		case *ast.HorizontalRule:
			breaks++
		case *ast.Heading:
			if info.Title == "" {
				info.Title = headingText(n)
			}
			return ast.SkipChildren
		}

		return ast.GoToNext
	})

	info.Slides = breaks + 1
	return info
}

func headingText(h *ast.Heading) string {
	var b strings.Builder
	ast.WalkFunc(h, func(node ast.Node, entering bool) ast.WalkStatus {
		if entering {
			if t, ok := node.(*ast.Text); ok {
				b.Write(t.Literal)
			}
		}
		return ast.GoToNext
	})
	return strings.TrimSpace(b.String())
}
