package helpdesk

import "errors"

var (
	ErrTicketNotFound    = errors.New("ticket not found")
	ErrTicketClosed      = errors.New("ticket is closed")
	ErrNotTicketOwner    = errors.New("not the owner of this ticket")
	ErrComplaintNotFound = errors.New("complaint not found")
	ErrInvalidTransition = errors.New("invalid ticket status transition")
)
