package reward

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidAmount         = errors.New("amount must be positive")
	ErrUserNotFound          = errors.New("user not found")
)
