// Package errors provides the error and warning types used across the
// binding. The layer itself has no error taxonomy of substance: failures
// raised inside the embedded interpreter propagate to the host unchanged,
// wrapped only for stack capture and structured logging. The few local types
// cover host-side misuse (a proxy used before it was built) and marshaling
// problems that never reach the interpreter at all.
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Global warning handling
//
// ===========================================================================

var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		log.Printf("gokeras-warning: %v\n", w)
	}
	// zerolog sink, injected lazily to avoid an import cycle with pkg/log.
	zerologWarnFunc func(warning error)
)

// SetWarningHandler replaces the process-wide warning handler. Use it to
// silence or redirect marshaling warnings emitted while copying values back
// across the interpreter boundary.
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc installs a zerolog-backed warning sink.
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn emits a warning through the zerolog sink when one is installed,
// falling back to the plain handler otherwise.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}
	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	Interpreter-side failures
//
// ===========================================================================

// PythonError carries an exception raised inside the embedded interpreter.
// The message is whatever the wrapped library reported; the binding adds the
// host-side operation name and nothing else.
type PythonError struct {
	Op  string // host operation, e.g. "EarlyStopping", "Sequential.Fit"
	Err error  // underlying interpreter exception
}

func (e *PythonError) Error() string {
	return fmt.Sprintf("gokeras: %s: python: %v", e.Op, e.Err)
}

func (e *PythonError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject adds the structured exception context to a zerolog event.
func (e *PythonError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("op", e.Op).
		AnErr("python_error", e.Err).
		Str("type", "PythonError")
}

// NewPythonError wraps an interpreter exception with the host operation name
// and a stack trace.
func NewPythonError(op string, err error) error {
	pyErr := &PythonError{Op: op, Err: err}
	return errors.WithStack(pyErr)
}

// ===========================================================================
//
//	Host-side misuse and marshaling failures
//
// ===========================================================================

// NotBuiltError reports a method call on a proxy whose interpreter object was
// never constructed, typically a zero-value struct used without its New
// constructor.
type NotBuiltError struct {
	Proxy  string
	Method string
}

func (e *NotBuiltError) Error() string {
	return fmt.Sprintf("gokeras: %s: proxy has no interpreter object. Construct it before calling %s()", e.Proxy, e.Method)
}

// MarshalZerologObject adds the structured error context to a zerolog event.
func (e *NotBuiltError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("proxy", e.Proxy).
		Str("method", e.Method).
		Str("type", "NotBuiltError")
}

// NewNotBuiltError creates a NotBuiltError with a stack trace attached.
func NewNotBuiltError(proxy, method string) error {
	err := &NotBuiltError{Proxy: proxy, Method: method}
	return errors.WithStack(err)
}

// ConversionError reports a value that could not be carried across the
// language boundary in either direction: an unsupported Go type in a
// parameter bag, or an interpreter value of an unexpected type during
// property read-back.
type ConversionError struct {
	Op     string // operation during which conversion failed
	Key    string // bag key or attribute name, when known
	GoType string // Go-side type involved
	Reason string
}

func (e *ConversionError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("gokeras: %s: cannot convert %q (%s): %s", e.Op, e.Key, e.GoType, e.Reason)
	}
	return fmt.Sprintf("gokeras: %s: cannot convert %s: %s", e.Op, e.GoType, e.Reason)
}

// MarshalZerologObject adds the structured error context to a zerolog event.
func (e *ConversionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("op", e.Op).
		Str("key", e.Key).
		Str("go_type", e.GoType).
		Str("reason", e.Reason).
		Str("type", "ConversionError")
}

// NewConversionError creates a ConversionError with a stack trace attached.
func NewConversionError(op, key, goType, reason string) error {
	err := &ConversionError{Op: op, Key: key, GoType: goType, Reason: reason}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Warnings
//
// ===========================================================================

// DataConversionWarning is raised when a value read back from the interpreter
// was coerced to the requested Go type, e.g. an integer metric series copied
// into a float slice.
type DataConversionWarning struct {
	FromType string
	ToType   string
	Reason   string
}

func (w *DataConversionWarning) Error() string {
	return fmt.Sprintf("value converted from %s to %s. Reason: %s", w.FromType, w.ToType, w.Reason)
}

// MarshalZerologObject adds the structured warning context to a zerolog event.
func (w *DataConversionWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("from_type", w.FromType).
		Str("to_type", w.ToType).
		Str("reason", w.Reason).
		Str("type", "DataConversionWarning")
}

// NewDataConversionWarning creates a new DataConversionWarning.
func NewDataConversionWarning(from, to, reason string) *DataConversionWarning {
	return &DataConversionWarning{FromType: from, ToType: to, Reason: reason}
}

// ===========================================================================
//
//	cockroachdb/errors passthrough
//
// ===========================================================================

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain matching target's type.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap annotates err with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf annotates err with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates an error with a stack trace.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a formatted error with a stack trace.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack attaches a stack trace to err.
func WithStack(err error) error {
	return errors.WithStack(err)
}
