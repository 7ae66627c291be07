package announcement

import "errors"

var (
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrAnnouncementExpired  = errors.New("announcement has expired")
	ErrDepartmentRequired   = errors.New("department is required for department audience")
)
