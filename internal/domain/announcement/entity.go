package announcement

import "time"

// Audience values for an announcement.
const (
	AudienceAll        = "all"
	AudienceDepartment = "department"
)

type Announcement struct {
	ID           string
	Title        string
	Body         string
	Audience     string
	DepartmentID *string
	PublishedBy  string
	PublishedAt  time.Time
	ExpiresAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Join fields
	PublisherName  *string
	DepartmentName *string
}

// Active reports whether the announcement is still visible at t.
func (a *Announcement) Active(t time.Time) bool {
	if a.ExpiresAt == nil {
		return true
	}
	return t.Before(*a.ExpiresAt)
}

// ReadReceipt records that an employee has seen an announcement.
type ReadReceipt struct {
	AnnouncementID string
	EmployeeID     string
	ReadAt         time.Time
}
