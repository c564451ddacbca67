package marp

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode classifies why a tool call failed. Every failure that crosses the
// protocol boundary carries exactly one of these.
type ErrorCode string

const (
	CodeUnknownTool      ErrorCode = "unknown_tool"
	CodeInvalidArguments ErrorCode = "invalid_arguments"
	CodeToolNotFound     ErrorCode = "tool_not_found"
	CodeToolFailed       ErrorCode = "tool_failed"
	CodeTimeout          ErrorCode = "timeout"
	CodeFilesystem       ErrorCode = "filesystem"
)

type ToolError struct {
	Code     ErrorCode
	Message  string
	Stderr   string
	ExitCode int
}

func (e *ToolError) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Code))
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Stderr != "" {
		b.WriteString("\n")
		b.WriteString(strings.TrimSpace(e.Stderr))
	}
	return b.String()
}

func Errorf(code ErrorCode, format string, args ...any) *ToolError {
	return &ToolError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// AsToolError extracts a ToolError from err, wrapping anything else as a
// generic tool_failed so handlers always have a code to report.
func AsToolError(err error) *ToolError {
	var toolErr *ToolError
	if errors.As(err, &toolErr) {
		return toolErr
	}
	return &ToolError{
		Code:    CodeToolFailed,
		Message: err.Error(),
	}
}
