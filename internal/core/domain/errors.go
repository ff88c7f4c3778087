package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrValueParse is matched by every ValueParseError.
	ErrValueParse = zerr.New("invalid parameter value")

	// ErrTaskIDParse is matched by every TaskIDParseError.
	ErrTaskIDParse = zerr.New("malformed task id")

	// ErrMissingParameter is matched by every MissingParameterError.
	ErrMissingParameter = zerr.New("missing parameter")

	// ErrDuplicateParameter is returned when a task declares two parameters with the same name.
	ErrDuplicateParameter = zerr.New("duplicate parameter")

	// ErrUnknownParameter is returned when a value is supplied for a parameter the task does not declare.
	ErrUnknownParameter = zerr.New("unknown parameter")

	// ErrKindMismatch is returned when a value does not have the kind its parameter declares.
	ErrKindMismatch = zerr.New("parameter kind mismatch")

	// ErrUnknownKind is returned when a parameter kind name is not recognized.
	ErrUnknownKind = zerr.New("unknown parameter kind")

	// ErrInvalidParameterName is returned when a parameter name cannot appear in a task id.
	ErrInvalidParameterName = zerr.New("invalid parameter name")

	// ErrInvalidTaskName is returned when a task name cannot appear in a task id.
	ErrInvalidTaskName = zerr.New("invalid task name")

	// ErrTaskAlreadyExists is returned when registering a task name twice in a catalog.
	ErrTaskAlreadyExists = zerr.New("task already exists")

	// ErrTaskNotFound is returned when a requested task is not in the catalog.
	ErrTaskNotFound = zerr.New("task not found")
)

// ValueParseError reports a raw string that does not conform to its kind's grammar.
type ValueParseError struct {
	Kind ParameterKind
	Raw  string
	err  error
}

func newValueParseError(kind ParameterKind, raw string, cause error) *ValueParseError {
	return &ValueParseError{Kind: kind, Raw: raw, err: cause}
}

func (e *ValueParseError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("invalid %s value %q: %v", e.Kind, e.Raw, e.err)
	}
	return fmt.Sprintf("invalid %s value %q", e.Kind, e.Raw)
}

// Is reports whether target is ErrValueParse.
func (e *ValueParseError) Is(target error) bool {
	return target == ErrValueParse
}

// Unwrap returns the underlying conversion error, if any.
func (e *ValueParseError) Unwrap() error {
	return e.err
}

// TaskIDParseError reports a structurally malformed task id.
type TaskIDParseError struct {
	Raw    string
	Reason string
}

// NewTaskIDParseError creates a TaskIDParseError for the given id.
func NewTaskIDParseError(raw, reason string) *TaskIDParseError {
	return &TaskIDParseError{Raw: raw, Reason: reason}
}

func (e *TaskIDParseError) Error() string {
	return fmt.Sprintf("malformed task id %q: %s", e.Raw, e.Reason)
}

// Is reports whether target is ErrTaskIDParse.
func (e *TaskIDParseError) Is(target error) bool {
	return target == ErrTaskIDParse
}

// MissingParameterError reports a declared parameter with neither a supplied value nor a default.
type MissingParameterError struct {
	Task string
	Name string
}

// NewMissingParameterError creates a MissingParameterError.
func NewMissingParameterError(task, name string) *MissingParameterError {
	return &MissingParameterError{Task: task, Name: name}
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("%s: missing value for parameter %q", e.Task, e.Name)
}

// Is reports whether target is ErrMissingParameter.
func (e *MissingParameterError) Is(target error) bool {
	return target == ErrMissingParameter
}
