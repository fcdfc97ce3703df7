package apperr

import "fmt"

// ValidationError is user-correctable input: bad quantity, below minimum
// order, insufficient stock, missing delivery fields. Nothing was mutated.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validation(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError covers stale references: deleted product, unknown cart item.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

func NotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

// ConflictError is a transient integrity failure that already used up its
// internal retry: order-number collision, lost stock race, bad status
// transition. The caller may resubmit.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

func Conflict(format string, args ...any) error {
	return &ConflictError{Msg: fmt.Sprintf(format, args...)}
}
