// Package errors provides the error types shared by the representations and
// translation passes.
//
// Every error raised while building or translating a score carries the input
// source name and the input line number of the offending element, so that
// front ends can point the user at the right place in their file.
package errors

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Sentinel errors for common cases
var (
	// ErrNotFound indicates a part, staff or voice was not found
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput indicates a malformed score or option value
	ErrInvalidInput = errors.New("invalid input")
	// ErrInternal indicates a violated structural invariant
	ErrInternal = errors.New("internal error")
	// ErrBuildPhase indicates a builder method called in the wrong phase
	ErrBuildPhase = errors.New("illegal build phase")
	// ErrUnsupported indicates a notation that has no target equivalent
	ErrUnsupported = errors.New("unsupported")
)

// InternalError reports a violated invariant the pass relies on.
type InternalError struct {
	SourceName string // Input source name, "-" for stdin
	Line       int    // Input line number of the offending element
	Message    string // Human-readable error message
	Err        error  // Underlying error, if any
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("%s:%d: internal error: %s", sourceOrUnknown(e.SourceName), e.Line, e.Message)
}

func (e *InternalError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInternal
}

// Is reports ErrInternal as a match even when an underlying error is set.
func (e *InternalError) Is(target error) bool {
	return target == ErrInternal
}

// MsrError reports malformed musical input, such as an ending placed
// after a repeat has been completed.
type MsrError struct {
	SourceName string
	Line       int
	Message    string
	Err        error
}

func (e *MsrError) Error() string {
	return fmt.Sprintf("%s:%d: %s", sourceOrUnknown(e.SourceName), e.Line, e.Message)
}

func (e *MsrError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// Is reports ErrInvalidInput as a match even when an underlying error is set.
func (e *MsrError) Is(target error) bool {
	return target == ErrInvalidInput
}

// BuildPhaseError reports a guarded builder call made in a phase that does
// not allow it.
type BuildPhaseError struct {
	SourceName string
	Line       int
	Operation  string // Builder method that was called
	Phase      string // Phase the builder was in
	Message    string
}

func (e *BuildPhaseError) Error() string {
	return fmt.Sprintf("%s:%d: %s in phase %s: %s",
		sourceOrUnknown(e.SourceName), e.Line, e.Operation, e.Phase, e.Message)
}

func (e *BuildPhaseError) Unwrap() error {
	return ErrBuildPhase
}

// Is reports ErrBuildPhase and ErrInternal as matches: a builder called out
// of phase is a violated invariant of the caller.
func (e *BuildPhaseError) Is(target error) bool {
	return target == ErrBuildPhase || target == ErrInternal
}

// ParseError represents a free-text field that could not be decoded
type ParseError struct {
	Format  string // What was being parsed (e.g., "tempo per minute", "MusicXML")
	Path    string // File path, if applicable
	Message string // Error details
	Err     error  // Underlying error, if any
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to parse %s at %s: %s", e.Format, e.Path, e.Message)
	}
	return fmt.Sprintf("failed to parse %s: %s", e.Format, e.Message)
}

func (e *ParseError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// Is reports ErrInvalidInput as a match even when an underlying error is set.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NotFoundError represents a score component that could not be located
type NotFoundError struct {
	Resource string // Type of component (e.g., "part", "staff", "voice")
	ID       string // Identifier of the component
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// UnsupportedError represents a notation the target cannot express
type UnsupportedError struct {
	Feature string
	Reason  string
}

func (e *UnsupportedError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("unsupported %s: %s", e.Feature, e.Reason)
	}
	return fmt.Sprintf("unsupported %s", e.Feature)
}

func (e *UnsupportedError) Unwrap() error {
	return ErrUnsupported
}

func sourceOrUnknown(name string) string {
	if name == "" {
		return "<unknown>"
	}
	return name
}

// NewInternal creates an InternalError
func NewInternal(sourceName string, line int, format string, args ...any) *InternalError {
	return &InternalError{
		SourceName: sourceName,
		Line:       line,
		Message:    fmt.Sprintf(format, args...),
	}
}

// NewMsr creates an MsrError
func NewMsr(sourceName string, line int, format string, args ...any) *MsrError {
	return &MsrError{
		SourceName: sourceName,
		Line:       line,
		Message:    fmt.Sprintf(format, args...),
	}
}

// NewBuildPhase creates a BuildPhaseError
func NewBuildPhase(sourceName string, line int, operation, phase, message string) *BuildPhaseError {
	return &BuildPhaseError{
		SourceName: sourceName,
		Line:       line,
		Operation:  operation,
		Phase:      phase,
		Message:    message,
	}
}

// NewParse creates a ParseError
func NewParse(format, path, message string) *ParseError {
	return &ParseError{
		Format:  format,
		Path:    path,
		Message: message,
	}
}

// NewNotFound creates a NotFoundError
func NewNotFound(resource, id string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		ID:       id,
	}
}

// NewUnsupported creates an UnsupportedError
func NewUnsupported(feature, reason string) *UnsupportedError {
	return &UnsupportedError{
		Feature: feature,
		Reason:  reason,
	}
}

// WithSource fills in the source name of the located errors in err's chain
// that have none yet, and returns err.
func WithSource(err error, sourceName string) error {
	var ie *InternalError
	if errors.As(err, &ie) && ie.SourceName == "" {
		ie.SourceName = sourceName
	}
	var me *MsrError
	if errors.As(err, &me) && me.SourceName == "" {
		me.SourceName = sourceName
	}
	var be *BuildPhaseError
	if errors.As(err, &be) && be.SourceName == "" {
		be.SourceName = sourceName
	}
	return err
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Warning is a non-fatal diagnostic. The element it refers to is still
// built.
type Warning struct {
	SourceName string `json:"source_name"`
	Line       int    `json:"line"`
	Message    string `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s:%d: warning: %s", sourceOrUnknown(w.SourceName), w.Line, w.Message)
}

// Warnings collects warnings raised during a pass. The zero value is ready
// to use and safe for concurrent use.
type Warnings struct {
	mu    sync.Mutex
	items []Warning
}

// Add records a warning.
func (ws *Warnings) Add(sourceName string, line int, format string, args ...any) Warning {
	w := Warning{
		SourceName: sourceName,
		Line:       line,
		Message:    fmt.Sprintf(format, args...),
	}
	ws.mu.Lock()
	ws.items = append(ws.items, w)
	ws.mu.Unlock()
	return w
}

// List returns a copy of the recorded warnings in insertion order.
func (ws *Warnings) List() []Warning {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	out := make([]Warning, len(ws.items))
	copy(out, ws.items)
	return out
}

// Len returns the number of recorded warnings.
func (ws *Warnings) Len() int {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return len(ws.items)
}

func (ws *Warnings) String() string {
	var b strings.Builder
	for _, w := range ws.List() {
		b.WriteString(w.String())
		b.WriteByte('\n')
	}
	return b.String()
}
