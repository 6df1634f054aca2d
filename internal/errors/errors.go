// Package errors provides sentinel errors and custom error types for the gush application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrValidation indicates that an answer was rejected by its validator
	ErrValidation = errors.New("validation failed")

	// ErrInputExhausted indicates that all attempts for a question were used up
	ErrInputExhausted = errors.New("input attempts exhausted")

	// ErrCommandFailed indicates that a required command step failed
	ErrCommandFailed = errors.New("command failed")

	// ErrRemoteAPI indicates a failure reported by the hosting service API
	ErrRemoteAPI = errors.New("remote api error")

	// ErrNotInteractive indicates that a prompt was requested without a terminal
	ErrNotInteractive = errors.New("not an interactive terminal")

	// ErrAborted indicates that the user declined to continue
	ErrAborted = errors.New("aborted by user")
)

// ValidationError represents an answer rejected by a validator
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Is returns true if the target error is ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError creates a new ValidationError
func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

// InputExhaustedError is returned when no valid answer was given within the allowed attempts
type InputExhaustedError struct {
	Prompt   string
	Attempts int
	Last     error
}

func (e *InputExhaustedError) Error() string {
	msg := fmt.Sprintf("no valid answer for %q after %d attempt(s)", strings.TrimSpace(e.Prompt), e.Attempts)
	if e.Last != nil {
		msg += fmt.Sprintf(": %v", e.Last)
	}
	return msg
}

// Is returns true if the target error is ErrInputExhausted
func (e *InputExhaustedError) Is(target error) bool {
	return target == ErrInputExhausted
}

func (e *InputExhaustedError) Unwrap() error {
	return e.Last
}

// NewInputExhaustedError creates a new InputExhaustedError
func NewInputExhaustedError(prompt string, attempts int, last error) *InputExhaustedError {
	return &InputExhaustedError{
		Prompt:   prompt,
		Attempts: attempts,
		Last:     last,
	}
}

// CommandFailedError represents a required command step that did not succeed
type CommandFailedError struct {
	Step       string
	ExitStatus int
	Output     string
	Err        error
}

func (e *CommandFailedError) Error() string {
	msg := fmt.Sprintf("command failed: %s (exit status %d)", e.Step, e.ExitStatus)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += fmt.Sprintf("\noutput: %s", out)
	}
	return msg
}

// Is returns true if the target error is ErrCommandFailed
func (e *CommandFailedError) Is(target error) bool {
	return target == ErrCommandFailed
}

func (e *CommandFailedError) Unwrap() error {
	return e.Err
}

// NewCommandFailedError creates a new CommandFailedError
func NewCommandFailedError(step string, exitStatus int, output string, err error) *CommandFailedError {
	return &CommandFailedError{
		Step:       step,
		ExitStatus: exitStatus,
		Output:     output,
		Err:        err,
	}
}

// RemoteAPIError wraps any failure coming back from the hosting service
type RemoteAPIError struct {
	Operation string
	Err       error
}

func (e *RemoteAPIError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("remote api: %s failed", e.Operation)
	}
	return fmt.Sprintf("remote api: %s failed: %v", e.Operation, e.Err)
}

// Is returns true if the target error is ErrRemoteAPI
func (e *RemoteAPIError) Is(target error) bool {
	return target == ErrRemoteAPI
}

func (e *RemoteAPIError) Unwrap() error {
	return e.Err
}

// NewRemoteAPIError creates a new RemoteAPIError
func NewRemoteAPIError(operation string, err error) *RemoteAPIError {
	return &RemoteAPIError{
		Operation: operation,
		Err:       err,
	}
}

// StageError records the stage of a multi-step flow in which an error occurred
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError creates a new StageError
func NewStageError(stage string, err error) *StageError {
	return &StageError{Stage: stage, Err: err}
}
