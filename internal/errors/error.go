package errors

import (
	"bufio"
	"errors"
	"fmt"
	"os"
)

// Category represents the type of error.
type Category string

const (
	CategoryField   Category = "field"
	CategorySchema  Category = "schema"
	CategoryConfig  Category = "config"
	CategoryPreview Category = "preview"
	CategoryPublish Category = "publish"
	CategoryCLI     Category = "cli"
)

// Location represents a position inside a definition or config file.
type Location struct {
	File   string
	Line   int
	Column int
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Line <= 0 {
		return l.File
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// FormError is a structured error with a code, location and suggestion.
type FormError struct {
	// Code is a unique error identifier (e.g., "F001").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Field is the slug of the field the error is about, if any.
	Field string

	// Location is the file position where the error occurred.
	Location *Location

	// Context contains surrounding file lines.
	Context []string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *FormError) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = fmt.Sprintf("%s (field %q)", msg, e.Field)
	}
	if e.Wrapped != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Wrapped)
	}
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, msg)
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *FormError) Unwrap() error {
	return e.Wrapped
}

// Is matches another FormError by code.
func (e *FormError) Is(target error) bool {
	t, ok := target.(*FormError)
	return ok && t.Code != "" && t.Code == e.Code
}

// WithField records the slug of the offending field.
func (e *FormError) WithField(slug string) *FormError {
	e.Field = slug
	return e
}

// WithLocation adds a file position and reads the surrounding lines.
func (e *FormError) WithLocation(file string, line, column int) *FormError {
	e.Location = &Location{File: file, Line: line, Column: column}
	e.Context = readContextLines(file, line, 3)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *FormError) WithSuggestion(s string) *FormError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *FormError) WithDetail(d string) *FormError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *FormError) Wrap(err error) *FormError {
	e.Wrapped = err
	return e
}

// readContextLines reads lines around the specified line number from a file.
func readContextLines(filename string, targetLine, contextSize int) []string {
	if filename == "" || targetLine <= 0 {
		return nil
	}
	file, err := os.Open(filename)
	if err != nil {
		return nil
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	lineNum := 0
	startLine := targetLine - contextSize/2
	endLine := targetLine + contextSize/2

	for scanner.Scan() {
		lineNum++
		if lineNum >= startLine && lineNum <= endLine {
			lines = append(lines, scanner.Text())
		}
		if lineNum > endLine {
			break
		}
	}

	return lines
}

// New creates a FormError from a registered error code.
func New(code string) *FormError {
	template, ok := registry[code]
	if !ok {
		return &FormError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &FormError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Newf creates a new FormError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *FormError {
	return &FormError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a FormError.
func FromError(err error, code string) *FormError {
	if err == nil {
		return nil
	}
	var fe *FormError
	if errors.As(err, &fe) {
		return fe
	}
	return New(code).Wrap(err)
}

// All returns every FormError reachable from err, including the members of
// an errors.Join tree, in order.
func All(err error) []*FormError {
	if err == nil {
		return nil
	}
	if fe, ok := err.(*FormError); ok {
		return []*FormError{fe}
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []*FormError
		for _, e := range joined.Unwrap() {
			out = append(out, All(e)...)
		}
		return out
	}
	var fe *FormError
	if errors.As(err, &fe) {
		return []*FormError{fe}
	}
	return nil
}
