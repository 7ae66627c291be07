package helpdesk

import (
	"time"

	"github.com/worklane/hrm-backend-go/internal/pkg/validator"
)

type CreateTicketRequest struct {
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
}

func (r *CreateTicketRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Subject) {
		errs = append(errs, validator.ValidationError{
			Field:   "subject",
			Message: "subject is required",
		})
	} else if len(r.Subject) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "subject",
			Message: "subject must not exceed 255 characters",
		})
	}

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}

	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category is required",
		})
	}

	if validator.IsEmpty(r.Priority) {
		r.Priority = PriorityMedium
	} else if !validator.IsInSlice(r.Priority, []string{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}) {
		errs = append(errs, validator.ValidationError{
			Field:   "priority",
			Message: "priority must be one of: low, medium, high, urgent",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateTicketStatusRequest struct {
	ID         string  `json:"-"`
	Status     string  `json:"status"`
	AssignedTo *string `json:"assigned_to,omitempty"`
}

func (r *UpdateTicketStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}

	if !validator.IsInSlice(r.Status, []string{StatusOpen, StatusInProgress, StatusResolved, StatusClosed}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: open, in_progress, resolved, closed",
		})
	}

	if r.AssignedTo != nil && !validator.IsValidUUID(*r.AssignedTo) {
		errs = append(errs, validator.ValidationError{
			Field:   "assigned_to",
			Message: "assigned_to must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AddCommentRequest struct {
	TicketID string `json:"-"`
	Body     string `json:"body"`
}

func (r *AddCommentRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.TicketID) {
		errs = append(errs, validator.ValidationError{
			Field:   "ticket_id",
			Message: "ticket_id must be a valid UUID",
		})
	}

	if validator.IsEmpty(r.Body) {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "body is required",
		})
	} else if len(r.Body) > 2000 {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "body must not exceed 2000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateComplaintRequest struct {
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Anonymous   bool   `json:"anonymous"`
}

func (r *CreateComplaintRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Subject) {
		errs = append(errs, validator.ValidationError{
			Field:   "subject",
			Message: "subject is required",
		})
	} else if len(r.Subject) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "subject",
			Message: "subject must not exceed 255 characters",
		})
	}

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TicketResponse struct {
	ID             string     `json:"id"`
	EmployeeID     string     `json:"employee_id"`
	EmployeeName   *string    `json:"employee_name,omitempty"`
	Subject        string     `json:"subject"`
	Description    string     `json:"description"`
	Category       string     `json:"category"`
	Priority       string     `json:"priority"`
	Status         string     `json:"status"`
	AssignedTo     *string    `json:"assigned_to,omitempty"`
	AssignedToName *string    `json:"assigned_to_name,omitempty"`
	CommentCount   int        `json:"comment_count"`
	ResolvedAt     *time.Time `json:"resolved_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type CommentResponse struct {
	ID         string    `json:"id"`
	TicketID   string    `json:"ticket_id"`
	AuthorID   string    `json:"author_id"`
	AuthorName *string   `json:"author_name,omitempty"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

type ComplaintResponse struct {
	ID           string    `json:"id"`
	EmployeeID   *string   `json:"employee_id,omitempty"`
	EmployeeName *string   `json:"employee_name,omitempty"`
	Subject      string    `json:"subject"`
	Description  string    `json:"description"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type TicketFilter struct {
	Status     *string `json:"status,omitempty"`
	Priority   *string `json:"priority,omitempty"`
	Category   *string `json:"category,omitempty"`
	EmployeeID *string `json:"employee_id,omitempty"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
}

func (f *TicketFilter) Validate() error {
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

	if f.Status != nil && !validator.IsInSlice(*f.Status, []string{StatusOpen, StatusInProgress, StatusResolved, StatusClosed}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: open, in_progress, resolved, closed",
		})
	}

	if f.Priority != nil && !validator.IsInSlice(*f.Priority, []string{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}) {
		errs = append(errs, validator.ValidationError{
			Field:   "priority",
			Message: "priority must be one of: low, medium, high, urgent",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListTicketsResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
	Tickets    []TicketResponse `json:"tickets"`
}
