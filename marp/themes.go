package marp

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/sahilm/fuzzy"
	"marpmcp/config"
)

// Theme describes one theme Marp can render with, either a bundled one or a
// custom CSS file discovered in the configured theme directory.
type Theme struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Path        string `json:"path,omitempty"`
	Builtin     bool   `json:"builtin"`
}

// themeDirective matches the Marp theme declaration inside a CSS comment,
// e.g. /* @theme my-theme */
var themeDirective = regexp.MustCompile(`/\*\s*@theme\s+([A-Za-z0-9_-]+)\s*\*/`)

func builtinThemes() []Theme {
	return []Theme{
		{Name: "default", Description: "Default Marp theme", Builtin: true},
		{Name: "gaia", Description: "Gaia theme - gorgeous and modern", Builtin: true},
		{Name: "uncover", Description: "Uncover theme - clean and minimal", Builtin: true},
	}
}

// Themes lists builtin themes merged with custom CSS themes found in the
// theme directory. No child process is involved. A missing theme directory
// is not an error; it just contributes nothing.
func (r *Runner) Themes(includeBuiltin bool) ([]Theme, error) {
	themes := []Theme{}
	if includeBuiltin {
		themes = append(themes, builtinThemes()...)
	}

	custom, err := r.customThemes()
	if err != nil {
		return nil, err
	}

	return append(themes, custom...), nil
}

func (r *Runner) customThemes() ([]Theme, error) {
	themeDir := r.cfg.ThemeDir()
	if themeDir == "" || !config.FileExists(themeDir) {
		return nil, nil
	}

	entries, err := os.ReadDir(themeDir)
	if err != nil {
		return nil, Errorf(CodeFilesystem, "failed to read theme directory %s: %v", themeDir, err)
	}

	var themes []Theme
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".css") {
			continue
		}

		path := filepath.Join(themeDir, entry.Name())
		themes = append(themes, Theme{
			Name: themeNameFromCSS(path),
			Path: path,
		})
	}

	return themes, nil
}

// themeNameFromCSS extracts the name from the @theme directive, falling back
// to the file stem for CSS files that never declare one.
func themeNameFromCSS(path string) string {
	data, err := os.ReadFile(path)
	if err == nil {
		if m := themeDirective.FindSubmatch(data); m != nil {
			return string(m[1])
		}
	}
	return strings.TrimSuffix(filepath.Base(path), ".css")
}

// ResolveTheme turns a requested theme into the value handed to --theme.
// Paths are validated fail-fast so a missing CSS file surfaces as a clear
// argument error instead of a Marp stderr dump. Unresolvable names get a
// fuzzy suggestion when a known theme is close.
func (r *Runner) ResolveTheme(theme string) (string, error) {
	if theme == "" {
		return "", nil
	}

	if strings.ContainsRune(theme, os.PathSeparator) || strings.HasSuffix(theme, ".css") {
		path := config.ExpandPath(theme)
		if !config.FileExists(path) {
			return "", Errorf(CodeInvalidArguments, "theme CSS file not found: %s", path)
		}
		return path, nil
	}

	known, err := r.Themes(true)
	if err != nil {
		return "", err
	}

	names := make([]string, 0, len(known))
	for _, t := range known {
		if t.Name == theme {
			// Custom themes are passed by path so Marp can load the CSS.
			if t.Path != "" {
				return t.Path, nil
			}
			return t.Name, nil
		}
		names = append(names, t.Name)
	}

	matches := fuzzy.Find(theme, names)
	if len(matches) > 0 {
		return "", Errorf(CodeInvalidArguments,
			"unknown theme %q (did you mean %q?)", theme, matches[0].Str)
	}

	return "", Errorf(CodeInvalidArguments, "unknown theme %q", theme)
}
