package tools

import (
	"errors"
	"fmt"

	"github.com/roivaz/ilp-maintenance-mcp/internal/maintenance"
)

// Argument and dispatch errors are reported before any backend call.
var (
	ErrMissingArgument = errors.New("missing required argument")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnknownTool     = errors.New("unknown tool")
)

// UnknownToolError names a tool that is not in the catalogue. It matches
// ErrUnknownTool under errors.Is.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string { return "unknown tool: " + e.Name }

func (e *UnknownToolError) Is(target error) bool { return target == ErrUnknownTool }

func missingArgument(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingArgument, name)
}

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// ErrorText renders err as the text returned to the caller. Backend HTTP
// failures keep their status code and raw body.
func ErrorText(err error) string {
	var httpErr *maintenance.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Error()
	}
	var unknown *UnknownToolError
	if errors.As(err, &unknown) {
		return "Unknown tool: " + unknown.Name
	}
	return "Error: " + err.Error()
}
