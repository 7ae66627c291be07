package leave

import "time"

// Leave request statuses
const (
	StatusPending   = "Pending"
	StatusApproved  = "Approved"
	StatusRejected  = "Rejected"
	StatusCancelled = "Cancelled"
)

// LeaveType is a category of leave with a yearly allowance in days.
type LeaveType struct {
	ID          string
	Name        string
	DaysPerYear int
	IsPaid      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LeaveRequest is one employee's request for a span of leave days.
type LeaveRequest struct {
	ID             string
	EmployeeID     string
	LeaveTypeID    string
	AppliedOn      time.Time
	StartDate      time.Time
	EndDate        time.Time
	TotalLeaveDays int
	Reason         string
	Status         string
	Remark         *string
	DecidedBy      *string
	DecidedAt      *time.Time
	AttachmentURL  *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Join fields
	EmployeeName  *string
	EmployeeEmail *string
	LeaveTypeName *string
}

// Balance is remaining allowance for one leave type in one year.
type Balance struct {
	LeaveTypeID   string `json:"leave_type_id"`
	LeaveTypeName string `json:"leave_type_name"`
	Year          int    `json:"year"`
	Allocated     int    `json:"allocated"`
	Used          int    `json:"used"`
	Remaining     int    `json:"remaining"`
}

// Overlaps reports whether the request's date span intersects [start, end].
func (r *LeaveRequest) Overlaps(start, end time.Time) bool {
	return !r.StartDate.After(end) && !r.EndDate.Before(start)
}

// WorkdaysBetween counts days in [start, end] excluding Saturdays and
// Sundays. Both bounds are inclusive.
func WorkdaysBetween(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			days++
		}
	}
	return days
}
