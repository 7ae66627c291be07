package performance

import (
	"fmt"
	"time"

	"github.com/worklane/hrm-backend-go/internal/pkg/validator"
)

type CreateGoalRequest struct {
	EmployeeID  string  `json:"employee_id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	StartDate   string  `json:"start_date"` // YYYY-MM-DD
	EndDate     string  `json:"end_date"`   // YYYY-MM-DD
	Target      int     `json:"target"`
}

func (r *CreateGoalRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	} else if len(r.Title) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not exceed 255 characters",
		})
	}

	var start, end time.Time
	var err error
	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if start, err = time.Parse("2006-01-02", r.StartDate); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if end, err = time.Parse("2006-01-02", r.EndDate); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if r.Target <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "target",
			Message: "target must be greater than zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateGoalProgressRequest struct {
	ID       string `json:"-"`
	Achieved int    `json:"achieved"`
}

func (r *UpdateGoalProgressRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}

	if r.Achieved < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "achieved",
			Message: "achieved must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type GoalResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Title        string  `json:"title"`
	Description  *string `json:"description,omitempty"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Target       int     `json:"target"`
	Achieved     int     `json:"achieved"`
	Progress     int     `json:"progress"`
	Status       string  `json:"status"`
}

type GoalFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Status     *string `json:"status,omitempty"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
}

func (f *GoalFilter) Validate() error {
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
		validStatuses := []string{GoalNotStarted, GoalInProgress, GoalCompleted}
		if !validator.IsInSlice(*f.Status, validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: not_started, in_progress, completed",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListGoalsResponse struct {
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
	Goals      []GoalResponse `json:"goals"`
}

type CreateAppraisalRequest struct {
	EmployeeID string            `json:"employee_id"`
	Period     string            `json:"period"` // YYYY-MM
	Remarks    *string           `json:"remarks,omitempty"`
	Ratings    []IndicatorRating `json:"ratings"`
}

func (r *CreateAppraisalRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}

	if validator.IsEmpty(r.Period) {
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: "period is required",
		})
	} else if !validator.IsValidMonth(r.Period) {
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: "period must be in YYYY-MM format",
		})
	}

	if len(r.Ratings) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "ratings",
			Message: "at least one indicator rating is required",
		})
	}
	for i, rating := range r.Ratings {
		if !validator.IsValidUUID(rating.IndicatorID) {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("ratings[%d].indicator_id", i),
				Message: "indicator_id must be a valid UUID",
			})
		}
		if rating.Rating < MinRating || rating.Rating > MaxRating {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("ratings[%d].rating", i),
				Message: "rating must be between 1 and 5",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AppraisalResponse struct {
	ID           string            `json:"id"`
	EmployeeID   string            `json:"employee_id"`
	EmployeeName *string           `json:"employee_name,omitempty"`
	ReviewerID   string            `json:"reviewer_id"`
	ReviewerName *string           `json:"reviewer_name,omitempty"`
	Period       string            `json:"period"`
	Rating       int               `json:"rating"`
	Remarks      *string           `json:"remarks,omitempty"`
	Ratings      []IndicatorRating `json:"ratings"`
	CreatedAt    time.Time         `json:"created_at"`
}

type CreateIndicatorRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

func (r *CreateIndicatorRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type IndicatorResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}
