package marp

// Format is a supported Marp output format.
type Format string

const (
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
	FormatPPTX Format = "pptx"
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
)

// ParseFormat validates a format string from a tool request.
// An empty string selects the HTML default.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "html":
		return FormatHTML, nil
	case "pdf":
		return FormatPDF, nil
	case "pptx":
		return FormatPPTX, nil
	case "png":
		return FormatPNG, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	default:
		return "", Errorf(CodeInvalidArguments,
			"unsupported output format %q (expected html, pdf, pptx, png or jpeg)", s)
	}
}

// Ext returns the output file extension including the dot.
func (f Format) Ext() string {
	switch f {
	case FormatHTML:
		return ".html"
	case FormatPDF:
		return ".pdf"
	case FormatPPTX:
		return ".pptx"
	case FormatPNG:
		return ".png"
	case FormatJPEG:
		return ".jpg"
	default:
		return ".html"
	}
}

// MIMEType returns the MIME type of artifacts in this format.
func (f Format) MIMEType() string {
	switch f {
	case FormatHTML:
		return "text/html"
	case FormatPDF:
		return "application/pdf"
	case FormatPPTX:
		return "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	case FormatPNG:
		return "image/png"
	case FormatJPEG:
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}

// IsImage reports whether artifacts in this format are returned inline
// as image content in addition to the file path.
func (f Format) IsImage() bool {
	return f == FormatPNG || f == FormatJPEG
}

func (f Format) String() string {
	return string(f)
}
