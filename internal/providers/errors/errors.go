package errors

import "errors"

var (
	ErrNotFound = errors.New("provider profile not found")

	ErrDuplicateProfile = errors.New("provider profile already exists for user")
)
