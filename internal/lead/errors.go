package lead

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownField     = errors.New("unknown form field")
	ErrValidation       = errors.New("validation failed")
	ErrSubmission       = errors.New("submission failed")
	ErrSubmitInProgress = errors.New("submission already in progress")
)

// ValidationErrors carries the ErrorState that blocked a submit
type ValidationErrors struct {
	Errors ErrorState
}

func (e *ValidationErrors) Error() string {
	var parts []string
	for _, f := range e.Errors.Failing() {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e.Errors.Get(f)))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationErrors) Unwrap() error {
	return ErrValidation
}

// SubmissionError wraps a Gateway failure
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("submission failed: %v", e.Err)
}

// Is lets errors.Is match both ErrSubmission and the gateway cause
func (e *SubmissionError) Is(target error) bool {
	return target == ErrSubmission
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
