package leave

import "context"

// LeaveService defines business logic for leave management.
type LeaveService interface {
	// Create files a new leave request for the authenticated employee.
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveRequestResponse, error)

	// Get retrieves a single leave request.
	Get(ctx context.Context, id string) (LeaveRequestResponse, error)

	// List retrieves leave requests with filters; non-managers only see
	// their own.
	List(ctx context.Context, filter LeaveFilter) (ListLeaveResponse, error)

	// Approve marks a pending request approved (manager+).
	Approve(ctx context.Context, req DecideLeaveRequest) (LeaveRequestResponse, error)

	// Reject marks a pending request rejected (manager+).
	Reject(ctx context.Context, req DecideLeaveRequest) (LeaveRequestResponse, error)

	// Cancel withdraws the authenticated employee's own pending request.
	Cancel(ctx context.Context, id string) (LeaveRequestResponse, error)

	// ListTypes returns the configured leave types.
	ListTypes(ctx context.Context) ([]LeaveTypeResponse, error)

	// GetMyBalance returns the authenticated employee's per-type balance
	// for a year.
	GetMyBalance(ctx context.Context, year int) (BalanceResponse, error)
}
