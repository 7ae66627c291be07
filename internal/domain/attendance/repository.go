package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// CreateIfAbsent inserts a record for (employee, date) unless one already
	// exists. The insert is a single conditional statement so two concurrent
	// check-ins cannot both succeed; inserted reports whether the row was
	// written.
	CreateIfAbsent(ctx context.Context, att Attendance) (created Attendance, inserted bool, err error)

	// GetByID retrieves a record by ID; returns ErrAttendanceNotFound when missing.
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate retrieves the single record for an employee on a
	// calendar day; returns ErrAttendanceNotFound when missing.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Attendance, error)

	// Update overwrites the mutable fields of a record.
	Update(ctx context.Context, att Attendance) error

	// List retrieves records with filters and pagination (admin view).
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// ListByEmployee retrieves one employee's records.
	ListByEmployee(ctx context.Context, employeeID string, filter MyAttendanceFilter) ([]Attendance, int64, error)

	// MonthlySummary aggregates one employee's records for a month.
	MonthlySummary(ctx context.Context, employeeID string, year int, month time.Month) (MonthlySummary, error)

	// ListOpenBefore returns records with no clock-out dated strictly before
	// the given day. Used by the stale-session closer.
	ListOpenBefore(ctx context.Context, date time.Time) ([]Attendance, error)

	// MarkAbsentees inserts Absent records for active employees with no
	// record on the given day; returns the number of rows written.
	MarkAbsentees(ctx context.Context, date time.Time) (int64, error)
}
