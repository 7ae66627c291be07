package attendance

import (
	"time"
)

// Attendance statuses
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
	StatusLeave   = "Leave"
)

// Attendance is one employee's clock record for one calendar day.
// Time-of-day fields are HH:MM:SS strings in the company timezone.
// ClockOut is NULL until the employee checks out; duration fields hold
// computed values and default to "00:00:00".
type Attendance struct {
	ID               string
	EmployeeID       string
	Date             time.Time
	Status           string
	ClockIn          string
	ClockOut         *string
	Late             string
	EarlyLeaving     string
	Overtime         string
	TotalRest        string
	TotalWork        string
	ClockInIP        *string
	ClockInLocation  *string
	ClockInLatitude  *float64
	ClockInLongitude *float64
	Notes            *string
	HalfDay          bool
	CreatedBy        *string
	AdjustedBy       *string
	AdjustedAt       *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Join fields
	EmployeeName *string
}

// CheckedOut reports whether the record already has a clock-out.
func (a *Attendance) CheckedOut() bool {
	return a.ClockOut != nil && *a.ClockOut != ""
}

// MonthlySummary aggregates one employee's records for a month.
type MonthlySummary struct {
	EmployeeID    string
	Year          int
	Month         int
	DaysPresent   int
	DaysAbsent    int
	DaysOnLeave   int
	TotalLate     time.Duration
	TotalOvertime time.Duration
	TotalWork     time.Duration
}
