package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance time accounting.
type AttendanceService interface {
	// CheckIn records the authenticated employee's arrival for today.
	CheckIn(ctx context.Context, req CheckInRequest) (CheckInResponse, error)

	// CheckOut closes today's open record and computes work durations.
	CheckOut(ctx context.Context, req CheckOutRequest) (CheckOutResponse, error)

	// GetMyAttendance retrieves records for the authenticated employee.
	GetMyAttendance(ctx context.Context, filter MyAttendanceFilter) (ListAttendanceResponse, error)

	// ListAttendance retrieves records with filters (admin/manager).
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// GetSummary aggregates the authenticated employee's month.
	GetSummary(ctx context.Context, month string) (SummaryResponse, error)

	// AdjustAttendance overwrites clock data and recomputes durations (admin).
	AdjustAttendance(ctx context.Context, req AdjustAttendanceRequest) (AttendanceResponse, error)

	// CloseStaleSessions force-closes open records from previous days at the
	// configured shift end. Returns the number of records closed.
	CloseStaleSessions(ctx context.Context) (int, error)

	// MarkAbsentees writes Absent records for yesterday's no-shows.
	MarkAbsentees(ctx context.Context) (int64, error)
}
