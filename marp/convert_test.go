package marp

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"marpmcp/config"
)

func TestConvertArgs(t *testing.T) {
	tests := []struct {
		name     string
		theme    string
		flags    []string
		expected []string
	}{
		{
			name:     "minimal",
			expected: []string{"/tmp/in.md", "-o", "/tmp/out.html"},
		},
		{
			name:     "with theme",
			theme:    "gaia",
			expected: []string{"/tmp/in.md", "-o", "/tmp/out.html", "--theme", "gaia"},
		},
		{
			name:     "theme and flags keep order",
			theme:    "gaia",
			flags:    []string{"--allow-local-files", "--html"},
			expected: []string{"/tmp/in.md", "-o", "/tmp/out.html", "--theme", "gaia", "--allow-local-files", "--html"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := convertArgs("/tmp/in.md", "/tmp/out.html", tt.theme, tt.flags)
			if !reflect.DeepEqual(args, tt.expected) {
				t.Errorf("args = %v, want %v", args, tt.expected)
			}
		})
	}
}

func TestOptionsFlags(t *testing.T) {
	opts := OptionsFromMap(map[string]any{
		"allow_local_files": true,
		"pdf_outlines":      true,
		"ignored_key":       "whatever",
	})

	expected := []string{"--allow-local-files", "--pdf-outlines"}
	if !reflect.DeepEqual(opts.Flags(), expected) {
		t.Errorf("flags = %v, want %v", opts.Flags(), expected)
	}

	if flags := OptionsFromMap(nil).Flags(); len(flags) != 0 {
		t.Errorf("expected no flags for nil map, got %v", flags)
	}
}

func TestConvert(t *testing.T) {
	markdown := "---\nmarp: true\n---\n# Hi"

	tests := []struct {
		name     string
		script   string
		req      ConvertRequest
		wantCode ErrorCode
		validate func(t *testing.T, artifact *Artifact)
	}{
		{
			name:   "html with builtin theme",
			script: stubConvert,
			req:    ConvertRequest{Markdown: markdown, Format: FormatHTML, Theme: "gaia"},
			validate: func(t *testing.T, artifact *Artifact) {
				if !strings.HasSuffix(artifact.Path, ".html") {
					t.Errorf("path %q does not end in .html", artifact.Path)
				}
				data, err := os.ReadFile(artifact.Path)
				if err != nil {
					t.Fatalf("artifact missing after convert: %v", err)
				}
				if string(data) != markdown {
					t.Error("artifact content mismatch")
				}
				if artifact.Size != int64(len(markdown)) {
					t.Errorf("size = %d, want %d", artifact.Size, len(markdown))
				}
			},
		},
		{
			name:   "pdf extension",
			script: stubConvert,
			req:    ConvertRequest{Markdown: markdown, Format: FormatPDF},
			validate: func(t *testing.T, artifact *Artifact) {
				if !strings.HasSuffix(artifact.Path, ".pdf") {
					t.Errorf("path %q does not end in .pdf", artifact.Path)
				}
			},
		},
		{
			name:     "empty markdown rejected before spawn",
			script:   stubFail,
			req:      ConvertRequest{Markdown: "   \n", Format: FormatHTML},
			wantCode: CodeInvalidArguments,
		},
		{
			name:     "unknown theme rejected before spawn",
			script:   stubFail,
			req:      ConvertRequest{Markdown: markdown, Format: FormatHTML, Theme: "no-such-theme"},
			wantCode: CodeInvalidArguments,
		},
		{
			name:     "renderer failure surfaces stderr",
			script:   stubFail,
			req:      ConvertRequest{Markdown: markdown, Format: FormatHTML},
			wantCode: CodeToolFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t, writeStub(t, tt.script))
			runner := NewRunner(cfg)

			artifact, err := runner.Convert(context.Background(), tt.req)

			// Temp files must be gone on every exit path.
			assertTempDirEmpty(t)

			if tt.wantCode != "" {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if code := AsToolError(err).Code; code != tt.wantCode {
					t.Errorf("code = %s, want %s", code, tt.wantCode)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, artifact)
			}
		})
	}
}

func TestConvertAllowLocalFilesFromConfig(t *testing.T) {
	// The stub records its arguments so the flag injection is observable.
	script := `#!/bin/sh
echo "$@" > "$MARP_ARGS_FILE"
out=""
prev=""
for a in "$@"; do
	if [ "$prev" = "-o" ]; then out="$a"; fi
	prev="$a"
done
[ -n "$out" ] && : > "$out"
exit 0
`
	argsFile := filepath.Join(t.TempDir(), "args.txt")
	t.Setenv("MARP_ARGS_FILE", argsFile)

	cfg := testConfig(t, writeStub(t, script))
	cfg.AllowLocalFiles = true
	runner := NewRunner(cfg)

	_, err := runner.Convert(context.Background(), ConvertRequest{
		Markdown: "---\nmarp: true\n---\n# Hi",
		Format:   FormatHTML,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	recorded, err := os.ReadFile(argsFile)
	if err != nil {
		t.Fatalf("stub never ran: %v", err)
	}
	if !strings.Contains(string(recorded), "--allow-local-files") {
		t.Errorf("expected --allow-local-files in args, got %q", recorded)
	}
}

func TestConvertNoOutputIsToolFailed(t *testing.T) {
	// Exits cleanly without writing the output artifact.
	cfg := testConfig(t, writeStub(t, "#!/bin/sh\nexit 0\n"))
	runner := NewRunner(cfg)

	_, err := runner.Convert(context.Background(), ConvertRequest{
		Markdown: "---\nmarp: true\n---\n# Hi",
		Format:   FormatHTML,
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if code := AsToolError(err).Code; code != CodeToolFailed {
		t.Errorf("code = %s, want %s", code, CodeToolFailed)
	}
}

func TestConvertUnstatableOutputIsFilesystem(t *testing.T) {
	cfg := testConfig(t, writeStub(t, stubConvert))

	// A regular file in the output path makes the stat fail with ENOTDIR,
	// which is a filesystem problem, not a renderer one.
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0600); err != nil {
		t.Fatalf("failed to write blocker: %v", err)
	}
	cfg.OutputDirectory = filepath.Join(blocker, "decks")
	runner := NewRunner(cfg)

	_, err := runner.Convert(context.Background(), ConvertRequest{
		Markdown: "---\nmarp: true\n---\n# Hi",
		Format:   FormatHTML,
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if code := AsToolError(err).Code; code != CodeFilesystem {
		t.Errorf("code = %s, want %s", code, CodeFilesystem)
	}
}

func assertTempDirEmpty(t *testing.T) {
	t.Helper()

	entries, err := os.ReadDir(config.GetTempDir())
	if err != nil {
		if os.IsNotExist(err) {
			return
		}
		t.Fatalf("failed to read temp dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("temp dir not empty after call: %d entries", len(entries))
	}
}
