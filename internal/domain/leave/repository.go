package leave

import (
	"context"
	"time"
)

type LeaveTypeRepository interface {
	GetByID(ctx context.Context, id string) (LeaveType, error)
	List(ctx context.Context) ([]LeaveType, error)
}

type LeaveRequestRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	Update(ctx context.Context, req LeaveRequest) error
	List(ctx context.Context, filter LeaveFilter) ([]LeaveRequest, int64, error)

	// HasOverlapping reports whether the employee already has a pending or
	// approved request intersecting [start, end].
	HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error)

	// UsedDays sums approved leave days for an employee, type and year.
	UsedDays(ctx context.Context, employeeID, leaveTypeID string, year int) (int, error)
}
