package validation

import (
	"fmt"
	"strings"
)

// Issue codes.
const (
	CodeMissing      = "missing"
	CodeInvalidType  = "invalid_type"
	CodeOutOfRange   = "out_of_range"
	CodeMalformed    = "malformed"
	CodeUnrecognized = "unrecognized"
	CodeInvalid      = "invalid"
)

// Issue is a single violation of the movie schema.
type Issue struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error reports every violation found in a payload.
type Error struct {
	Issues []Issue
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		if issue.Field == "" {
			parts = append(parts, issue.Message)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return "invalid movie: " + strings.Join(parts, "; ")
}

func (e *Error) add(fieldName, code, message string) {
	e.Issues = append(e.Issues, Issue{Field: fieldName, Code: code, Message: message})
}

// codeForKeyword maps a failing JSON Schema keyword to an issue code.
func codeForKeyword(keyword string) string {
	switch keyword {
	case "type":
		return CodeInvalidType
	case "minimum", "maximum", "exclusiveMinimum", "exclusiveMaximum", "minLength", "maxLength", "minItems", "maxItems":
		return CodeOutOfRange
	case "format", "pattern":
		return CodeMalformed
	case "required":
		return CodeMissing
	case "additionalProperties":
		return CodeUnrecognized
	default:
		return CodeInvalid
	}
}
