package pdftree

import (
	"errors"
	"fmt"
)

// Sentinel errors for the stages of generation.
var (
	ErrDecode  = errors.New("pdftree: cannot decode tree")
	ErrInvalid = errors.New("pdftree: invalid tree")
	ErrRender  = errors.New("pdftree: cannot render document")
	ErrOutput  = errors.New("pdftree: cannot write document")
)

// Error reports a failed operation. Err wraps one of the sentinel errors
// and, when there is one, the underlying cause.
type Error struct {
	Op  string // operation name, e.g. "Generate", "GenerateFile"
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pdftree.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("pdftree.%s: unknown error", e.Op)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// newError wraps cause in kind and op. A nil cause yields kind alone.
func newError(op string, kind, cause error) *Error {
	if cause == nil {
		return &Error{Op: op, Err: kind}
	}
	return &Error{Op: op, Err: fmt.Errorf("%w: %w", kind, cause)}
}
