package nn

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrShapeMismatch      = errors.New("shape mismatch")
	ErrNotInitialized     = errors.New("layer not initialized")
	ErrAlreadyInitialized = errors.New("layer already initialized")
	ErrNotImplemented     = errors.New("not implemented")
	ErrInvalidSignal      = errors.New("invalid gradient source")
	ErrNoGradients        = errors.New("gradients not computed")
)

// ShapeError provides detailed information about a length mismatch.
//
// It unwraps to ErrShapeMismatch, so callers can test with errors.Is.
type ShapeError struct {
	Op       string // Operation that detected the mismatch (e.g., "Neuron.Activate")
	What     string // Which vector was wrong (e.g., "inputs", "targets")
	Expected int
	Actual   int
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s: expected length %d, got %d", e.Op, e.What, e.Expected, e.Actual)
}

// Unwrap returns ErrShapeMismatch.
func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}

func checkLen(op, what string, expected, actual int) error {
	if expected != actual {
		return &ShapeError{Op: op, What: what, Expected: expected, Actual: actual}
	}
	return nil
}
