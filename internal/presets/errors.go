package presets

import (
	"errors"
	"fmt"
)

var (
	// ErrRead classifies failures to read the preset document.
	ErrRead = errors.New("read presets file")
	// ErrParse classifies malformed documents or documents without a usable presets table.
	ErrParse = errors.New("parse presets file")
	// ErrNotFound reports a preset name absent from the catalog.
	ErrNotFound = errors.New("preset not found")
)

// ReadError reports that the preset document could not be read (missing,
// permission denied, I/O fault).
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read presets file %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

func (e *ReadError) Is(target error) bool { return target == ErrRead }

// ParseError reports a document that is not well-formed or lacks the
// required presets table shape.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse presets file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }
