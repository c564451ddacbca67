package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"marpmcp/marp"
)

// Handlers bind the MCP tool surface to the Marp runner. Each handler is
// stateless; everything needed for one call lives in the request.
type Handlers struct {
	runner *marp.Runner
}

func (h *Handlers) Convert(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	markdown, err := req.RequireString("markdown")
	if err != nil || strings.TrimSpace(markdown) == "" {
		return errorResult(marp.Errorf(marp.CodeInvalidArguments,
			"markdown is required and must not be empty")), nil
	}

	format, err := marp.ParseFormat(req.GetString("output_format", "html"))
	if err != nil {
		return errorResult(err), nil
	}

	var opts marp.Options
	if raw, ok := req.GetArguments()["options"].(map[string]any); ok {
		opts = marp.OptionsFromMap(raw)
	}

	artifact, err := h.runner.Convert(ctx, marp.ConvertRequest{
		Markdown: markdown,
		Format:   format,
		Theme:    req.GetString("theme", ""),
		Options:  opts,
	})
	if err != nil {
		return errorResult(err), nil
	}

	summary := fmt.Sprintf("Generated %s presentation: %s (%d bytes)",
		strings.ToUpper(format.String()), artifact.Path, artifact.Size)

	if format.IsImage() {
		return imageResult(summary, artifact)
	}

	// HTML is returned inline so clients without filesystem access to this
	// host can still use the rendered document.
	if format == marp.FormatHTML {
		data, err := os.ReadFile(artifact.Path)
		if err != nil {
			return errorResult(marp.Errorf(marp.CodeFilesystem,
				"failed to read artifact %s: %v", artifact.Path, err)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s\n\n%s", summary, data)), nil
	}

	return mcp.NewToolResultText(summary), nil
}

func (h *Handlers) GetThemes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	includeBuiltin := req.GetBool("include_builtin", true)

	themes, err := h.runner.Themes(includeBuiltin)
	if err != nil {
		return errorResult(err), nil
	}

	encoded, err := json.MarshalIndent(themes, "", "  ")
	if err != nil {
		return errorResult(err), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Available Marp themes:\n%s", encoded)), nil
}

func (h *Handlers) Validate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	markdown, err := req.RequireString("markdown")
	if err != nil {
		return errorResult(marp.Errorf(marp.CodeInvalidArguments, "markdown is required")), nil
	}

	findings := h.runner.Validate(markdown)
	if len(findings) == 0 {
		return mcp.NewToolResultText("Document is valid Marp markdown."), nil
	}

	encoded, err := json.MarshalIndent(findings, "", "  ")
	if err != nil {
		return errorResult(err), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Found %d issue(s):\n%s", len(findings), encoded)), nil
}

func (h *Handlers) Preview(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	markdown, err := req.RequireString("markdown")
	if err != nil || strings.TrimSpace(markdown) == "" {
		return errorResult(marp.Errorf(marp.CodeInvalidArguments,
			"markdown is required and must not be empty")), nil
	}

	result, err := h.runner.Preview(ctx, marp.PreviewRequest{
		Markdown:    markdown,
		Theme:       req.GetString("theme", ""),
		SlideNumber: req.GetInt("slide_number", 0),
	})
	if err != nil {
		return errorResult(err), nil
	}

	var summary strings.Builder
	fmt.Fprintf(&summary, "Preview of slide %d/%d: %s",
		result.SlideNumber, result.SlideCount, result.Artifact.Path)
	if result.Title != "" {
		fmt.Fprintf(&summary, "\nDeck title: %s", result.Title)
	}
	if result.Theme != "" {
		fmt.Fprintf(&summary, "\nTheme: %s", result.Theme)
	}

	return imageResult(summary.String(), &result.Artifact)
}

// imageResult attaches the artifact bytes as inline image content so callers
// can display the slide without touching the filesystem.
func imageResult(summary string, artifact *marp.Artifact) (*mcp.CallToolResult, error) {
	data, err := os.ReadFile(artifact.Path)
	if err != nil {
		return errorResult(marp.Errorf(marp.CodeFilesystem,
			"failed to read artifact %s: %v", artifact.Path, err)), nil
	}

	encoded := base64.StdEncoding.EncodeToString(data)
	return mcp.NewToolResultImage(summary, encoded, artifact.Format.MIMEType()), nil
}

// errorResult converts any invocation failure into a structured error tool
// result. Nothing propagates past the protocol boundary as a transport fault.
func errorResult(err error) *mcp.CallToolResult {
	toolErr := marp.AsToolError(err)

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", toolErr.Code, toolErr.Message)
	if toolErr.ExitCode != 0 {
		fmt.Fprintf(&b, " (exit code %d)", toolErr.ExitCode)
	}
	if stderr := strings.TrimSpace(toolErr.Stderr); stderr != "" && stderr != toolErr.Message {
		b.WriteString("\n")
		b.WriteString(stderr)
	}

	return mcp.NewToolResultError(b.String())
}
