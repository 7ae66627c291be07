package leave

import "errors"

var (
	ErrLeaveRequestNotFound  = errors.New("leave request not found")
	ErrLeaveTypeNotFound     = errors.New("leave type not found")
	ErrInsufficientBalance   = errors.New("insufficient leave balance")
	ErrOverlappingRequest    = errors.New("leave request overlaps an existing request")
	ErrAlreadyProcessed      = errors.New("leave request already processed")
	ErrCannotCancelProcessed = errors.New("only pending requests can be cancelled")
	ErrNotRequestOwner       = errors.New("not the owner of this leave request")
)
