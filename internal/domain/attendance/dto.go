package attendance

import (
	"strings"

	"github.com/worklane/hrm-backend-go/internal/pkg/validator"
)

// ========================================
// CHECK-IN / CHECK-OUT DTOs
// ========================================

type CheckInRequest struct {
	// Status overrides the recorded status; defaults to Present. The
	// clock-in time is captured either way.
	Status    *string  `json:"status,omitempty"`
	IP        *string  `json:"ip,omitempty"`
	Location  *string  `json:"location,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Notes     *string  `json:"notes,omitempty"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && *r.Status != "" {
		validStatuses := []string{StatusPresent, StatusAbsent, StatusLeave}
		if !validator.IsInSlice(*r.Status, validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: Present, Absent, Leave",
			})
		}
	}

	if r.Latitude != nil && (*r.Latitude < -90 || *r.Latitude > 90) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && (*r.Longitude < -180 || *r.Longitude > 180) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if r.Notes != nil && len(*r.Notes) > 1000 {
		errs = append(errs, validator.ValidationError{
			Field:   "notes",
			Message: "notes must not exceed 1000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckOutRequest struct {
	Notes *string `json:"notes,omitempty"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Notes != nil && len(*r.Notes) > 1000 {
		errs = append(errs, validator.ValidationError{
			Field:   "notes",
			Message: "notes must not exceed 1000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckInResponse struct {
	Attendance  AttendanceResponse `json:"attendance"`
	CheckInTime string             `json:"check_in_time"`
	Late        string             `json:"late"`
}

type CheckOutResponse struct {
	Attendance   AttendanceResponse `json:"attendance"`
	CheckOutTime string             `json:"check_out_time"`
	TotalWork    string             `json:"total_work"`
	EarlyLeaving string             `json:"early_leaving"`
	Overtime     string             `json:"overtime"`
	LeftEarly    bool               `json:"left_early"`
}

type AttendanceResponse struct {
	ID               string   `json:"id"`
	EmployeeID       string   `json:"employee_id"`
	EmployeeName     *string  `json:"employee_name,omitempty"`
	Date             string   `json:"date"`
	Status           string   `json:"status"`
	ClockIn          string   `json:"clock_in"`
	ClockOut         string   `json:"clock_out"`
	Late             string   `json:"late"`
	EarlyLeaving     string   `json:"early_leaving"`
	Overtime         string   `json:"overtime"`
	TotalRest        string   `json:"total_rest"`
	TotalWork        string   `json:"total_work"`
	ClockInIP        *string  `json:"clock_in_ip,omitempty"`
	ClockInLocation  *string  `json:"clock_in_location,omitempty"`
	ClockInLatitude  *float64 `json:"clock_in_latitude,omitempty"`
	ClockInLongitude *float64 `json:"clock_in_longitude,omitempty"`
	Notes            *string  `json:"notes,omitempty"`
	HalfDay          bool     `json:"half_day"`
	AdjustedBy       *string  `json:"adjusted_by,omitempty"`
	AdjustedAt       *string  `json:"adjusted_at,omitempty"`
	CreatedAt        string   `json:"created_at"`
	UpdatedAt        string   `json:"updated_at"`
}

// ========================================
// LIST / FILTER DTOs
// ========================================

type AttendanceFilter struct {
	EmployeeID   *string `json:"employee_id,omitempty"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         *string `json:"date,omitempty"`       // YYYY-MM-DD
	StartDate    *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate      *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Status       *string `json:"status,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`

	SortBy    string `json:"sort_by"`    // date, employee_name, clock_in, clock_out, status
	SortOrder string `json:"sort_order"` // asc, desc
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Status != nil {
		validStatuses := []string{StatusPresent, StatusAbsent, StatusLeave}
		if !validator.IsInSlice(*f.Status, validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: Present, Absent, Leave",
			})
		}
	}

	for field, value := range map[string]*string{
		"date":       f.Date,
		"start_date": f.StartDate,
		"end_date":   f.EndDate,
	} {
		if value != nil && *value != "" {
			if _, valid := validator.IsValidDate(*value); !valid {
				errs = append(errs, validator.ValidationError{
					Field:   field,
					Message: field + " must be in YYYY-MM-DD format",
				})
			}
		}
	}

	if f.SortBy != "" {
		validSortFields := []string{"date", "employee_name", "clock_in", "clock_out", "status"}
		if !validator.IsInSlice(f.SortBy, validSortFields) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_by",
				Message: "sort_by must be one of: date, employee_name, clock_in, clock_out, status",
			})
		}
	} else {
		f.SortBy = "date"
	}

	if f.SortOrder != "" {
		if !validator.IsInSlice(strings.ToLower(f.SortOrder), []string{"asc", "desc"}) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_order",
				Message: "sort_order must be one of: asc, desc",
			})
		}
	} else {
		f.SortOrder = "desc"
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MyAttendanceFilter struct {
	Month     *string `json:"month,omitempty"`      // YYYY-MM
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Status    *string `json:"status,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *MyAttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 31
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Month != nil && *f.Month != "" {
		if !validator.IsValidMonth(*f.Month) {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month must be in YYYY-MM format",
			})
		}
	}

	if f.Status != nil {
		validStatuses := []string{StatusPresent, StatusAbsent, StatusLeave}
		if !validator.IsInSlice(*f.Status, validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: Present, Absent, Leave",
			})
		}
	}

	for field, value := range map[string]*string{
		"start_date": f.StartDate,
		"end_date":   f.EndDate,
	} {
		if value != nil && *value != "" {
			if _, valid := validator.IsValidDate(*value); !valid {
				errs = append(errs, validator.ValidationError{
					Field:   field,
					Message: field + " must be in YYYY-MM-DD format",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Attendances []AttendanceResponse `json:"attendances"`
}

// ========================================
// ADMIN ADJUSTMENT DTOs
// ========================================

// AdjustAttendanceRequest lets an admin overwrite clock data; durations are
// recomputed from the new times.
type AdjustAttendanceRequest struct {
	ID        string  `json:"-"`
	ClockIn   *string `json:"clock_in,omitempty"`  // HH:MM:SS
	ClockOut  *string `json:"clock_out,omitempty"` // HH:MM:SS
	TotalRest *string `json:"total_rest,omitempty"`
	Status    *string `json:"status,omitempty"`
	HalfDay   *bool   `json:"half_day,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

func (r *AdjustAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	for field, value := range map[string]*string{
		"clock_in":   r.ClockIn,
		"clock_out":  r.ClockOut,
		"total_rest": r.TotalRest,
	} {
		if value != nil && *value != "" {
			if !validator.IsValidClockTime(*value) {
				errs = append(errs, validator.ValidationError{
					Field:   field,
					Message: field + " must be in HH:MM:SS format",
				})
			}
		}
	}

	if r.Status != nil {
		validStatuses := []string{StatusPresent, StatusAbsent, StatusLeave}
		if !validator.IsInSlice(*r.Status, validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: Present, Absent, Leave",
			})
		}
	}

	if r.Notes != nil && len(*r.Notes) > 1000 {
		errs = append(errs, validator.ValidationError{
			Field:   "notes",
			Message: "notes must not exceed 1000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ========================================
// SUMMARY DTOs
// ========================================

type SummaryResponse struct {
	EmployeeID    string `json:"employee_id"`
	Month         string `json:"month"` // YYYY-MM
	DaysPresent   int    `json:"days_present"`
	DaysAbsent    int    `json:"days_absent"`
	DaysOnLeave   int    `json:"days_on_leave"`
	TotalLate     string `json:"total_late"`
	TotalOvertime string `json:"total_overtime"`
	TotalWork     string `json:"total_work"`
}
