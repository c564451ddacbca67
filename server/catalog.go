package server

import (
	"github.com/mark3labs/mcp-go/mcp"
)

func convertTool() mcp.Tool {
	return mcp.NewTool("marp_convert",
		mcp.WithDescription("Convert Markdown to presentation slides using Marp"),
		mcp.WithTitleAnnotation("Marp Convert"),
		mcp.WithString("markdown",
			mcp.Required(),
			mcp.Description("Markdown content with Marp directives"),
		),
		mcp.WithString("output_format",
			mcp.Description("Output format for the presentation"),
			mcp.Enum("html", "pdf", "pptx", "png", "jpeg"),
			mcp.DefaultString("html"),
		),
		mcp.WithString("theme",
			mcp.Description("Theme name (default, gaia, uncover), a custom theme name, or a path to custom CSS"),
		),
		mcp.WithObject("options",
			mcp.Description("Additional Marp CLI options"),
			mcp.Properties(map[string]any{
				"allow_local_files": map[string]any{"type": "boolean"},
				"html":              map[string]any{"type": "boolean"},
				"pdf_notes":         map[string]any{"type": "boolean"},
				"pdf_outlines":      map[string]any{"type": "boolean"},
			}),
		),
	)
}

func getThemesTool() mcp.Tool {
	return mcp.NewTool("marp_get_themes",
		mcp.WithDescription("Get list of available Marp themes"),
		mcp.WithTitleAnnotation("Marp Themes"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithBoolean("include_builtin",
			mcp.Description("Include built-in themes in the list"),
			mcp.DefaultBool(true),
		),
	)
}

func validateTool() mcp.Tool {
	return mcp.NewTool("marp_validate",
		mcp.WithDescription("Validate Marp markdown structure and report findings"),
		mcp.WithTitleAnnotation("Marp Validate"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("markdown",
			mcp.Required(),
			mcp.Description("Markdown content to validate"),
		),
	)
}

func previewTool() mcp.Tool {
	return mcp.NewTool("marp_preview",
		mcp.WithDescription("Render a single slide of the presentation as a PNG preview"),
		mcp.WithTitleAnnotation("Marp Preview"),
		mcp.WithString("markdown",
			mcp.Required(),
			mcp.Description("Markdown content with Marp directives"),
		),
		mcp.WithString("theme",
			mcp.Description("Theme to use for the preview"),
		),
		mcp.WithNumber("slide_number",
			mcp.Description("Specific slide to preview (1-indexed)"),
			mcp.Min(1),
		),
	)
}
