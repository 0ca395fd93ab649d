// Package reporter defines the errors reported while turning annotated
// proto files into resource name models.
package reporter

import (
	"errors"
	"fmt"
)

// Build-time failures. Every error returned by the generator wraps exactly
// one of these; use errors.Is to test for them.
var (
	ErrMissingRequiredField   = errors.New("missing required field")
	ErrDuplicateField         = errors.New("field set more than once")
	ErrInvalidResourceType    = errors.New("invalid resource type")
	ErrNoPatternDeclared      = errors.New("no pattern declared")
	ErrInvalidResourcePattern = errors.New("invalid resource pattern")
	ErrDuplicateResourceType  = errors.New("duplicate resource type")
	ErrAmbiguousPatternPrefix = errors.New("ambiguous pattern prefix")
	ErrGoNameConflict         = errors.New("conflicting Go name")
	ErrUnknownOption          = errors.New("unknown option")
	ErrInvalidOptionValue     = errors.New("invalid option value")
)

// Source identifies the proto element that caused an error.
type Source struct {
	// File is the proto file path, e.g. "library/v1/book.proto".
	File string
	// Element is the fully-qualified name of the message or field, if any.
	Element string
}

func (s Source) String() string {
	if s.Element == "" {
		return s.File
	}
	return fmt.Sprintf("%s: %s", s.File, s.Element)
}

// ErrorWithSource is an error about a proto file that carries the element
// that caused it.
//
// The value of Error() contains both the source and the underlying error.
// The value of Unwrap() is only the underlying error.
type ErrorWithSource interface {
	error
	GetSource() Source
	Unwrap() error
}

// Error wraps err with its source.
func Error(src Source, err error) ErrorWithSource {
	return errorWithSource{src: src, underlying: err}
}

// Errorf is like Error but formats the underlying error. Use %w to wrap one
// of the sentinels of this package.
func Errorf(src Source, format string, args ...interface{}) ErrorWithSource {
	return errorWithSource{src: src, underlying: fmt.Errorf(format, args...)}
}

type errorWithSource struct {
	underlying error
	src        Source
}

func (e errorWithSource) Error() string {
	return fmt.Sprintf("%s: %v", e.src, e.underlying)
}

func (e errorWithSource) GetSource() Source {
	return e.src
}

func (e errorWithSource) Unwrap() error {
	return e.underlying
}

var _ ErrorWithSource = errorWithSource{}
