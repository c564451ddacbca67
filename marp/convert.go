package marp

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"marpmcp/config"
)

// Options are the whitelisted pass-through flags for the Marp CLI.
type Options struct {
	AllowLocalFiles bool
	HTML            bool
	PDFNotes        bool
	PDFOutlines     bool
}

// OptionsFromMap reads the options mapping of a tool request. Unknown keys
// are ignored rather than rejected.
func OptionsFromMap(m map[string]any) Options {
	var opts Options
	if m == nil {
		return opts
	}

	if v, ok := m["allow_local_files"].(bool); ok {
		opts.AllowLocalFiles = v
	}
	if v, ok := m["html"].(bool); ok {
		opts.HTML = v
	}
	if v, ok := m["pdf_notes"].(bool); ok {
		opts.PDFNotes = v
	}
	if v, ok := m["pdf_outlines"].(bool); ok {
		opts.PDFOutlines = v
	}

	return opts
}

// Flags renders the options as CLI flags in a deterministic order.
func (o Options) Flags() []string {
	var flags []string
	if o.AllowLocalFiles {
		flags = append(flags, "--allow-local-files")
	}
	if o.HTML {
		flags = append(flags, "--html")
	}
	if o.PDFNotes {
		flags = append(flags, "--pdf-notes")
	}
	if o.PDFOutlines {
		flags = append(flags, "--pdf-outlines")
	}
	return flags
}

// ConvertRequest carries the parameters of one marp_convert call.
type ConvertRequest struct {
	Markdown string
	Format   Format
	Theme    string
	Options  Options
}

// Artifact is a rendered presentation on disk.
type Artifact struct {
	Path   string
	Format Format
	Size   int64
}

// convertArgs assembles the Marp command line: input, output, theme flag when
// a theme was resolved, then the pass-through flags verbatim.
func convertArgs(inputPath, outputPath, theme string, flags []string) []string {
	args := []string{inputPath, "-o", outputPath}
	if theme != "" {
		args = append(args, "--theme", theme)
	}
	return append(args, flags...)
}

// Convert renders markdown into the requested format. The input lives in a
// scoped temp file for the duration of the call; the artifact is written to
// the configured output directory and survives the call.
func (r *Runner) Convert(ctx context.Context, req ConvertRequest) (*Artifact, error) {
	if strings.TrimSpace(req.Markdown) == "" {
		return nil, Errorf(CodeInvalidArguments, "markdown must not be empty")
	}

	theme, err := r.ResolveTheme(req.Theme)
	if err != nil {
		return nil, err
	}

	job, err := NewJob(req.Markdown)
	if err != nil {
		return nil, err
	}
	defer job.Cleanup()

	opts := req.Options
	if r.cfg.AllowLocalFiles {
		opts.AllowLocalFiles = true
	}

	outputPath := filepath.Join(r.cfg.OutputDir(), job.OutputName(req.Format))
	args := convertArgs(job.InputPath, outputPath, theme, opts.Flags())

	if _, err := r.Run(ctx, args); err != nil {
		return nil, err
	}

	info, statErr := os.Stat(outputPath)
	if statErr != nil {
		if os.IsNotExist(statErr) {
			return nil, Errorf(CodeToolFailed, "Marp CLI exited cleanly but produced no output at %s", outputPath)
		}
		return nil, Errorf(CodeFilesystem, "failed to stat output %s: %v", outputPath, statErr)
	}

	if config.DebugLog != nil {
		config.DebugLog.Printf("[marp] Convert: wrote %s (%d bytes)", outputPath, info.Size())
	}

	return &Artifact{
		Path:   outputPath,
		Format: req.Format,
		Size:   info.Size(),
	}, nil
}
