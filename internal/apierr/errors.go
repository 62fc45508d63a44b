// Package apierr provides typed, HTTP-aware errors for the scheduling
// service. Every error kind named in spec.md §7 is a package-level value
// here; handlers convert any error surfacing from the intake coordinator to
// an HTTP response via FromError.
package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a machine-readable, HTTP-aware domain error.
type Error struct {
	Code    string
	Status  int
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap returns a copy of base with a formatted message and base itself as
// the wrapped cause, so errors.As with a *apierr.Error target still
// recovers the original Code/Status.
func Wrap(base *Error, format string, args ...any) *Error {
	return &Error{
		Code:    base.Code,
		Status:  base.Status,
		Message: fmt.Sprintf(format, args...),
		Err:     base,
	}
}

// FromError normalises any error into an *Error, defaulting to
// ErrInternal when err does not already carry one.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(ErrInternal, "%v", err)
}

// Error kinds from spec.md §7.
var (
	ErrMalformedRequest       = New("MALFORMED_REQUEST", http.StatusBadRequest, "request body is not valid JSON")
	ErrSchemaViolation        = New("SCHEMA_VIOLATION", http.StatusBadRequest, "request failed schema validation")
	ErrDuplicateCurriculum    = New("DUPLICATE_CURRICULUM_ID", http.StatusBadRequest, "duplicate curriculum_id")
	ErrDuplicateCourseID      = New("DUPLICATE_COURSE_ID", http.StatusBadRequest, "duplicate course_id")
	ErrLockConstraintConflict = New("LOCK_CONSTRAINT_CONFLICT", http.StatusBadRequest, "course_locks and constraints reference the same course_id")
	ErrInvalidPeriods         = New("INVALID_PERIODS", http.StatusBadRequest, "n_periods must be 4 or 6")
	ErrUnknownCourse          = New("UNKNOWN_COURSE", http.StatusBadRequest, "constraint or lock references an unknown course_id")
	ErrInternal               = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal error")
)

// SolverTimeout and Infeasible are not error responses: spec.md §7 has them
// surface as 200 with partial/empty solutions. No package returns these
// values: internal/solve reports a timeout through its timedOut result and
// infeasibility through the solver status. Both carry a 200 status.
var (
	ErrSolverTimeout = New("SOLVER_TIMEOUT", http.StatusOK, "solver time budget elapsed before exhausting the search")
	ErrInfeasible    = New("INFEASIBLE", http.StatusOK, "model has no feasible solution")
)
