package announcement

import (
	"context"
	"time"
)

type AnnouncementRepository interface {
	Create(ctx context.Context, a Announcement) (Announcement, error)
	GetByID(ctx context.Context, id string) (Announcement, error)
	Delete(ctx context.Context, id string) error

	// ListForEmployee returns active announcements visible to the employee
	// (audience all, or the employee's department), newest first.
	ListForEmployee(ctx context.Context, employeeID string, filter AnnouncementFilter, now time.Time) ([]Announcement, int64, error)

	MarkRead(ctx context.Context, announcementID, employeeID string) error
	ReadIDs(ctx context.Context, employeeID string, announcementIDs []string) (map[string]bool, error)
	CountUnread(ctx context.Context, employeeID string, now time.Time) (int64, error)
}
