// internal/services/errors.go
package services

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	ErrCodeNotFound           ErrorCode = "NOT_FOUND"
	ErrCodeAccessDenied       ErrorCode = "ACCESS_DENIED"
	ErrCodeValidationFailed   ErrorCode = "VALIDATION_FAILED"
	ErrCodeAllocationConflict ErrorCode = "ALLOCATION_CONFLICT"
	ErrCodeStorageFailure     ErrorCode = "STORAGE_FAILURE"
	ErrCodeWriteConflict      ErrorCode = "WRITE_CONFLICT"
)

// PipelineError carries enough context (SKU, attempted transition) for a
// human-readable admin/supplier-facing message. No pipeline error is fatal to
// the process.
type PipelineError struct {
	Code       ErrorCode
	SKUID      string
	Transition string
	Message    string
	Err        error
}

func (e *PipelineError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.SKUID != "" {
		msg += fmt.Sprintf(" (sku=%s", e.SKUID)
		if e.Transition != "" {
			msg += fmt.Sprintf(", transition=%s", e.Transition)
		}
		msg += ")"
	}
	return msg
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

func pipelineError(code ErrorCode, skuID, transition, message string, err error) *PipelineError {
	return &PipelineError{Code: code, SKUID: skuID, Transition: transition, Message: message, Err: err}
}

func notFoundError(skuID, transition string) *PipelineError {
	return pipelineError(ErrCodeNotFound, skuID, transition, "listing not found", nil)
}

func accessDeniedError(skuID, transition string) *PipelineError {
	return pipelineError(ErrCodeAccessDenied, skuID, transition, "listing does not belong to the acting supplier", nil)
}

func validationError(skuID, transition, message string) *PipelineError {
	return pipelineError(ErrCodeValidationFailed, skuID, transition, message, nil)
}

func writeConflictError(skuID, transition string) *PipelineError {
	return pipelineError(ErrCodeWriteConflict, skuID, transition, "listing was modified concurrently, retry the transition", nil)
}

func storageError(skuID string, err error) *PipelineError {
	return pipelineError(ErrCodeStorageFailure, skuID, "", "blob store operation failed", err)
}

// CodeOf extracts the pipeline error code, or "" for other errors.
func CodeOf(err error) ErrorCode {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return ""
}
