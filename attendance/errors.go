package attendance

import "fmt"

// ValidationError means the caller's input was rejected before any
// write happened. Always recoverable.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func validationErrorf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// StorageError means the repository could not be read or written. The
// current operation fails; nothing is retried automatically.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ExportError means the export request was well-formed but there is
// nothing to export. Reported as a warning, not a failure of the store.
type ExportError struct {
	Reason string
}

func (e *ExportError) Error() string {
	return e.Reason
}
