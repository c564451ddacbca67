package marp

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"marpmcp/config"
)

// PreviewRequest carries the parameters of one marp_preview call.
// SlideNumber is 1-indexed; zero means the first slide.
type PreviewRequest struct {
	Markdown    string
	Theme       string
	SlideNumber int
}

// PreviewResult is a single rendered slide plus the deck metadata gathered
// while slicing it.
type PreviewResult struct {
	Artifact    Artifact
	SlideNumber int
	SlideCount  int
	Title       string
	Theme       string
}

// Preview renders exactly one slide as a PNG. Marp's per-slide image mode
// (--images) writes one numbered image per slide into the job directory; the
// requested slide is copied out and the rest vanish with the job cleanup.
func (r *Runner) Preview(ctx context.Context, req PreviewRequest) (*PreviewResult, error) {
	if strings.TrimSpace(req.Markdown) == "" {
		return nil, Errorf(CodeInvalidArguments, "markdown must not be empty")
	}

	slide := req.SlideNumber
	if slide == 0 {
		slide = 1
	}
	if slide < 1 {
		return nil, Errorf(CodeInvalidArguments, "slide_number must be 1 or greater, got %d", slide)
	}

	_, body, _ := SplitFrontMatter(req.Markdown)
	info := InspectDeck(body)
	if info.Slides > 0 && slide > info.Slides {
		return nil, Errorf(CodeInvalidArguments,
			"slide_number %d is out of range: deck has %d slide(s)", slide, info.Slides)
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

	opts := Options{AllowLocalFiles: r.cfg.AllowLocalFiles}
	args := []string{job.InputPath, "-o", job.Path("slide.png"), "--images", "png"}
	if theme != "" {
		args = append(args, "--theme", theme)
	}
	args = append(args, opts.Flags()...)

	if _, err := r.Run(ctx, args); err != nil {
		return nil, err
	}

	// Marp numbers per-slide images slide.001.png, slide.002.png, ...
	// A single-slide deck may come back unnumbered.
	rendered := job.Path(fmt.Sprintf("slide.%03d.png", slide))
	if !config.FileExists(rendered) {
		if slide == 1 && config.FileExists(job.Path("slide.png")) {
			rendered = job.Path("slide.png")
		} else {
			return nil, Errorf(CodeToolFailed, "Marp CLI produced no image for slide %d", slide)
		}
	}

	data, err := os.ReadFile(rendered)
	if err != nil {
		return nil, Errorf(CodeFilesystem, "failed to read rendered slide: %v", err)
	}

	outputPath := filepath.Join(r.cfg.OutputDir(), fmt.Sprintf("%s-slide%d.png", job.ID, slide))
	if err := os.WriteFile(outputPath, data, 0600); err != nil {
		return nil, Errorf(CodeFilesystem, "failed to write preview artifact: %v", err)
	}

	if config.DebugLog != nil {
		config.DebugLog.Printf("[marp] Preview: slide %d/%d -> %s", slide, info.Slides, outputPath)
	}

	return &PreviewResult{
		Artifact: Artifact{
			Path:   outputPath,
			Format: FormatPNG,
			Size:   int64(len(data)),
		},
		SlideNumber: slide,
		SlideCount:  info.Slides,
		Title:       info.Title,
		Theme:       req.Theme,
	}, nil
}
