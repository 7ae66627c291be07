package announcement

import (
	"time"

	"github.com/worklane/hrm-backend-go/internal/pkg/validator"
)

type CreateAnnouncementRequest struct {
	Title        string  `json:"title"`
	Body         string  `json:"body"`
	Audience     string  `json:"audience"`
	DepartmentID *string `json:"department_id,omitempty"`
	ExpiresAt    *string `json:"expires_at,omitempty"` // RFC 3339
}

func (r *CreateAnnouncementRequest) Validate() error {
	var errs validator.ValidationErrors

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

	if validator.IsEmpty(r.Body) {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "body is required",
		})
	}

	if validator.IsEmpty(r.Audience) {
		r.Audience = AudienceAll
	} else if !validator.IsInSlice(r.Audience, []string{AudienceAll, AudienceDepartment}) {
		errs = append(errs, validator.ValidationError{
			Field:   "audience",
			Message: "audience must be one of: all, department",
		})
	}

	if r.Audience == AudienceDepartment {
		if r.DepartmentID == nil || !validator.IsValidUUID(*r.DepartmentID) {
			errs = append(errs, validator.ValidationError{
				Field:   "department_id",
				Message: "a valid department_id is required for department audience",
			})
		}
	}

	if r.ExpiresAt != nil {
		if _, err := time.Parse(time.RFC3339, *r.ExpiresAt); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "expires_at",
				Message: "expires_at must be in RFC 3339 format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AnnouncementResponse struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Body           string     `json:"body"`
	Audience       string     `json:"audience"`
	DepartmentID   *string    `json:"department_id,omitempty"`
	DepartmentName *string    `json:"department_name,omitempty"`
	PublishedBy    string     `json:"published_by"`
	PublisherName  *string    `json:"publisher_name,omitempty"`
	PublishedAt    time.Time  `json:"published_at"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
	Read           bool       `json:"read"`
}

type AnnouncementFilter struct {
	UnreadOnly bool `json:"unread_only"`
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
}

func (f *AnnouncementFilter) Validate() error {
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

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListAnnouncementsResponse struct {
	TotalCount    int64                  `json:"total_count"`
	UnreadCount   int64                  `json:"unread_count"`
	Page          int                    `json:"page"`
	Limit         int                    `json:"limit"`
	TotalPages    int                    `json:"total_pages"`
	Announcements []AnnouncementResponse `json:"announcements"`
}
