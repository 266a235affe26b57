// Package errors provides custom error types for the cutout CLI.
// It distinguishes between recoverable errors (can be logged and continue)
// and fatal errors (must halt execution and return).
package errors

import (
	"errors"
	"fmt"

	"github.com/imgtools/cutout/internal/i18n"
)

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityRecoverable indicates an error that can be logged and execution can continue
	SeverityRecoverable Severity = iota
	// SeverityFatal indicates an error that must halt execution
	SeverityFatal
)

// CutoutError is the base interface for all cutout errors
type CutoutError interface {
	error
	Severity() Severity
	Unwrap() error
}

// RecoverableError represents an error that can be logged and execution can continue
type RecoverableError struct {
	Op      string // Operation that failed
	Message string // Human-readable message
	Err     error  // Underlying error
}

func (e *RecoverableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *RecoverableError) Severity() Severity {
	return SeverityRecoverable
}

func (e *RecoverableError) Unwrap() error {
	return e.Err
}

// FatalError represents an error that must halt execution
type FatalError struct {
	Op      string // Operation that failed
	Message string // Human-readable message
	Err     error  // Underlying error
}

func (e *FatalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *FatalError) Severity() Severity {
	return SeverityFatal
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// NewRecoverable creates a new recoverable error
func NewRecoverable(op, message string, err error) *RecoverableError {
	return &RecoverableError{
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// NewFatal creates a new fatal error
func NewFatal(op, message string, err error) *FatalError {
	return &FatalError{
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// IsRecoverable checks if an error is recoverable
func IsRecoverable(err error) bool {
	var recErr *RecoverableError
	if errors.As(err, &recErr) {
		return true
	}

	var cutErr CutoutError
	if errors.As(err, &cutErr) {
		return cutErr.Severity() == SeverityRecoverable
	}

	return false
}

// IsFatal checks if an error is fatal
func IsFatal(err error) bool {
	var fatalErr *FatalError
	if errors.As(err, &fatalErr) {
		return true
	}

	var cutErr CutoutError
	if errors.As(err, &cutErr) {
		return cutErr.Severity() == SeverityFatal
	}

	// By default, unknown errors are treated as fatal
	return err != nil
}

// Common error constructors for specific scenarios

// ErrVenvNotFound creates a fatal error for a missing virtual environment
func ErrVenvNotFound(dir string) *FatalError {
	return NewFatal(i18n.ErrOpVenv, fmt.Sprintf(i18n.ErrMsgVenvNotFound, dir, dir), nil)
}

// ErrNoInterpreter creates a fatal error for a venv without a python binary
func ErrNoInterpreter(dir string) *FatalError {
	return NewFatal(i18n.ErrOpVenv, fmt.Sprintf(i18n.ErrMsgNoInterpreter, dir), nil)
}

// ErrScriptNotFound creates a fatal error for a missing processing program
func ErrScriptNotFound(path string) *FatalError {
	return NewFatal(i18n.ErrOpRunner, fmt.Sprintf(i18n.ErrMsgScriptNotFound, path), nil)
}

// ErrFileNotFound creates a fatal error for a missing file
func ErrFileNotFound(path string) *FatalError {
	return NewFatal(i18n.ErrOpFile, fmt.Sprintf(i18n.ErrMsgFileNotFound, path), nil)
}

// ErrNoImages creates a recoverable error for an empty input folder
func ErrNoImages(dir string) *RecoverableError {
	return NewRecoverable(i18n.ErrOpScan, fmt.Sprintf(i18n.ErrMsgNoImages, dir), nil)
}

// ErrProcessFailed creates a recoverable error for a failed processor run
func ErrProcessFailed(err error) *RecoverableError {
	return NewRecoverable(i18n.ErrOpRunner, i18n.ErrMsgProcessFailed, err)
}

// ErrDecodeImage creates a recoverable error for a single undecodable image
func ErrDecodeImage(path string, err error) *RecoverableError {
	return NewRecoverable(i18n.ErrOpImage, fmt.Sprintf(i18n.ErrMsgDecodeImage, path), err)
}
