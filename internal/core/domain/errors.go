package domain

import (
	"errors"
	"fmt"

	"k8s.io/apimachinery/pkg/util/validation/field"
)

// ============================================================================
// Error Categories
// ============================================================================

var (
	// ErrValidation marks client-caused, locally detectable faults.
	ErrValidation = errors.New("validation failed")
	// ErrModelInvocation marks failures of the loaded classifier artifact.
	ErrModelInvocation = errors.New("model invocation failed")
	// ErrConfiguration marks startup faults; the process must not serve.
	ErrConfiguration = errors.New("configuration error")
)

// ============================================================================
// Validation Errors
// ============================================================================

var (
	ErrEmptyBatch   = fmt.Errorf("%w: batch must contain at least one instance", ErrValidation)
	ErrInvalidDelay = fmt.Errorf("%w: delay_seconds must be a finite non-negative number", ErrValidation)
	ErrDelayTooLong = fmt.Errorf("%w: delay_seconds exceeds the configured maximum", ErrValidation)
)

// ============================================================================
// Model Invocation Errors
// ============================================================================

var (
	ErrUnknownOrdinal  = fmt.Errorf("%w: artifact returned an ordinal with no label", ErrModelInvocation)
	ErrRowCountChanged = fmt.Errorf("%w: artifact returned a different number of rows", ErrModelInvocation)
)

// ============================================================================
// Configuration Errors
// ============================================================================

var (
	ErrArtifactLoad       = fmt.Errorf("%w: model artifact could not be loaded", ErrConfiguration)
	ErrLabelTableMismatch = fmt.Errorf("%w: label table does not cover the artifact's classes", ErrConfiguration)
	ErrFingerprintSource  = fmt.Errorf("%w: fingerprint source unavailable", ErrConfiguration)
)

// ValidationError carries per-field problems of a rejected request.
type ValidationError struct {
	Errs field.ErrorList
}

func NewValidationError(errs field.ErrorList) *ValidationError {
	return &ValidationError{Errs: errs}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), e.Errs.ToAggregate().Error())
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Details returns one human readable line per offending field.
func (e *ValidationError) Details() []string {
	out := make([]string, 0, len(e.Errs))
	for _, fe := range e.Errs {
		out = append(out, fe.Error())
	}
	return out
}

// ModelInvocationError wraps a raw artifact failure. The cause is kept for
// operator logs and never returned to callers.
type ModelInvocationError struct {
	Op  string
	Err error
}

func (e *ModelInvocationError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrModelInvocation.Error(), e.Op, e.Err)
}

func (e *ModelInvocationError) Unwrap() []error {
	return []error{ErrModelInvocation, e.Err}
}
