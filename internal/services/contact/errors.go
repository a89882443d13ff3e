package contact

import "errors"

// Validation errors for the contact form
var (
	ErrNameRequired    = errors.New("name is required")
	ErrNameTooLong     = errors.New("name cannot exceed 100 characters")
	ErrEmailRequired   = errors.New("email is required")
	ErrInvalidEmail    = errors.New("email is not a valid address")
	ErrSubjectTooLong  = errors.New("subject cannot exceed 200 characters")
	ErrMessageRequired = errors.New("message is required")
	ErrMessageTooLong  = errors.New("message cannot exceed 5000 characters")
)
