package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType categorizes a codec compilation or rendering failure.
type ErrorType string

const (
	// ErrorTypeSyntax marks a document that is not well-formed YAML/JSON.
	ErrorTypeSyntax ErrorType = "syntax"
	// ErrorTypeStructural marks a document that decodes but violates the
	// codec document schema.
	ErrorTypeStructural ErrorType = "structural"
	// ErrorTypeMalformedGuard marks guard text matching none of the three
	// guard forms, or a range whose lower bound exceeds its upper bound.
	ErrorTypeMalformedGuard ErrorType = "malformed-guard"
	// ErrorTypeUnknownEmitter marks an emitter reference naming neither a
	// builtin nor a declared user-defined emitter.
	ErrorTypeUnknownEmitter ErrorType = "unknown-emitter"
	// ErrorTypeCycle marks a user-defined emitter definition that
	// transitively references itself.
	ErrorTypeCycle ErrorType = "cycle"
	// ErrorTypeMissingKey marks a document lacking TARGET or RULES.
	ErrorTypeMissingKey ErrorType = "missing-key"
	// ErrorTypeDuplicateTarget marks a codec added to an encoder that
	// already holds a codec for the same target.
	ErrorTypeDuplicateTarget ErrorType = "duplicate-target"
	// ErrorTypeTemplate marks a formatter template mapping with no entry
	// for a dispatch key encountered during rendering.
	ErrorTypeTemplate ErrorType = "template"
	// ErrorTypeIO marks a file access failure.
	ErrorTypeIO ErrorType = "io"
)

// Location identifies a position in a codec document for error reporting.
type Location struct {
	File string // document path, empty for in-memory documents
	Line int    // 1-based line, 0 when unknown
	Col  int    // 1-based column, 0 when unknown
}

// String returns "file:line:col" with unknown parts omitted.
func (l Location) String() string {
	if l.File == "" && l.Line == 0 {
		return "<unknown>"
	}
	file := l.File
	if file == "" {
		file = "<input>"
	}
	if l.Line == 0 {
		return file
	}
	if l.Col == 0 {
		return fmt.Sprintf("%s:%d", file, l.Line)
	}
	return fmt.Sprintf("%s:%d:%d", file, l.Line, l.Col)
}

// IsValid reports whether the location carries any position information.
func (l Location) IsValid() bool { return l.File != "" || l.Line > 0 }

// Error is a codec compilation or rendering failure with category, location,
// and an optional suggested fix.
type Error struct {
	Type       ErrorType // category of error
	Message    string    // error message
	Location   Location  // position in the codec document
	Suggestion string    // suggested fix (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s] %s", e.Type, e.Message)
	if e.Location.IsValid() {
		fmt.Fprintf(&sb, "\n  --> %s", e.Location)
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&sb, "\n  = suggestion: %s", e.Suggestion)
	}
	return sb.String()
}

// New creates an error with the given type and formatted message.
func New(t ErrorType, format string, args ...any) *Error {
	return &Error{Type: t, Message: fmt.Sprintf(format, args...)}
}

// TypeOf returns the ErrorType of err, or the empty string if err is not a
// codec error. An ErrorList reports the type of its first error.
func TypeOf(err error) ErrorType {
	var e *Error
	if errors.As(err, &e) {
		return e.Type
	}
	var el *ErrorList
	if errors.As(err, &el) && el.HasErrors() {
		return el.Errors[0].Type
	}
	return ""
}

// HasType reports whether err is, or contains, a codec error of type t.
func HasType(err error, t ErrorType) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == t
	}
	var el *ErrorList
	if errors.As(err, &el) {
		return el.HasErrorType(t)
	}
	return false
}

// IsMalformedGuard reports whether err is a malformed-guard error.
func IsMalformedGuard(err error) bool { return HasType(err, ErrorTypeMalformedGuard) }

// IsUnknownEmitter reports whether err is an unknown-emitter error.
func IsUnknownEmitter(err error) bool { return HasType(err, ErrorTypeUnknownEmitter) }

// IsCycle reports whether err is a cycle error.
func IsCycle(err error) bool { return HasType(err, ErrorTypeCycle) }

// IsMissingKey reports whether err is a missing-key error.
func IsMissingKey(err error) bool { return HasType(err, ErrorTypeMissingKey) }

// IsDuplicateTarget reports whether err is a duplicate-target error.
func IsDuplicateTarget(err error) bool { return HasType(err, ErrorTypeDuplicateTarget) }

// IsTemplate reports whether err is a formatter template configuration error.
func IsTemplate(err error) bool { return HasType(err, ErrorTypeTemplate) }

// ErrorList accumulates errors encountered while compiling one document.
type ErrorList struct {
	Errors []*Error
}

// NewErrorList creates an empty error list.
func NewErrorList() *ErrorList {
	return &ErrorList{Errors: make([]*Error, 0)}
}

// Add appends an error to the list.
func (el *ErrorList) Add(err *Error) {
	el.Errors = append(el.Errors, err)
}

// AddError creates and appends an error with the given parameters.
func (el *ErrorList) AddError(t ErrorType, message string, loc Location) {
	el.Add(&Error{Type: t, Message: message, Location: loc})
}

// AddErrorWithSuggestion creates and appends an error carrying a suggestion.
func (el *ErrorList) AddErrorWithSuggestion(t ErrorType, message string, loc Location, suggestion string) {
	el.Add(&Error{Type: t, Message: message, Location: loc, Suggestion: suggestion})
}

// HasErrors reports whether the list contains any errors.
func (el *ErrorList) HasErrors() bool { return len(el.Errors) > 0 }

// Count returns the number of errors in the list.
func (el *ErrorList) Count() int { return len(el.Errors) }

// HasErrorType reports whether the list contains an error of type t.
func (el *ErrorList) HasErrorType(t ErrorType) bool {
	for _, err := range el.Errors {
		if err.Type == t {
			return true
		}
	}
	return false
}

// ByType returns all errors of the given type.
func (el *ErrorList) ByType(t ErrorType) []*Error {
	var result []*Error
	for _, err := range el.Errors {
		if err.Type == t {
			result = append(result, err)
		}
	}
	return result
}

// Error implements the error interface.
func (el *ErrorList) Error() string {
	if !el.HasErrors() {
		return ""
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "found %d error(s):\n", el.Count())
	for i, err := range el.Errors {
		fmt.Fprintf(&sb, "\nerror %d:\n%s\n", i+1, err.Error())
	}
	return sb.String()
}

// ToError returns nil if the list is empty, otherwise the list itself.
func (el *ErrorList) ToError() error {
	if !el.HasErrors() {
		return nil
	}
	return el
}
