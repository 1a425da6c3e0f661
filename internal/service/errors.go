package service

import "errors"

var (
	ErrValidation           = errors.New("validation failed")
	ErrUnknownItem          = errors.New("catalog item not found")
	ErrNoPurchaseInProgress = errors.New("no purchase in progress")
	ErrNotRegistering       = errors.New("not in registration")
	ErrInvalidAdminPassword = errors.New("invalid admin password")
	ErrAdminRequired        = errors.New("admin access required")
	ErrOrderNotFound        = errors.New("order not found")
)

// FieldError is a user-input rejection tied to one form field.
// It matches ErrValidation under errors.Is.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

func (e *FieldError) Unwrap() error {
	return ErrValidation
}

func fieldError(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}
