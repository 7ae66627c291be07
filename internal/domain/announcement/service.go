package announcement

import "context"

// AnnouncementService defines business logic for announcements.
type AnnouncementService interface {
	// Create publishes an announcement (admin/hr) and notifies
	// connected clients over SSE.
	Create(ctx context.Context, req CreateAnnouncementRequest) (AnnouncementResponse, error)

	// List returns announcements visible to the authenticated employee.
	List(ctx context.Context, filter AnnouncementFilter) (ListAnnouncementsResponse, error)

	// Get returns one announcement and marks it read for the caller.
	Get(ctx context.Context, id string) (AnnouncementResponse, error)

	// MarkRead records a read receipt without returning the body.
	MarkRead(ctx context.Context, id string) error

	// Delete removes an announcement (admin/hr).
	Delete(ctx context.Context, id string) error
}
