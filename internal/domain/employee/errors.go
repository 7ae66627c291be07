package employee

import "errors"

var (
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrEmailExists          = errors.New("email already registered")
	ErrInvalidGender        = errors.New("gender must be Male or Female")
	ErrFutureDateNotAllowed = errors.New("date cannot be in the future")
	ErrProfileNotFound      = errors.New("employee profile not found")
	ErrCannotDeleteSelf     = errors.New("cannot delete your own employee record")
)
