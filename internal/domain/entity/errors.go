package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure kinds callers are expected to branch
// on. Anything else bubbling out of the repository layer is treated as
// a persistence failure.
var (
	// ErrNotFound means the referenced record id does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidCredentials covers both unknown email and wrong
	// password; callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken means a credential record already exists for the email.
	ErrEmailTaken = errors.New("email already registered")
)

// ValidationError reports a missing or malformed input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
