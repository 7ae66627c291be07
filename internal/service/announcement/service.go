package announcement

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/worklane/hrm-backend-go/internal/domain/announcement"
	"github.com/worklane/hrm-backend-go/internal/pkg/sse"
)

type AnnouncementServiceImpl struct {
	announcementRepo announcement.AnnouncementRepository
	hub              *sse.Hub
}

func NewAnnouncementService(announcementRepo announcement.AnnouncementRepository, hub *sse.Hub) announcement.AnnouncementService {
	return &AnnouncementServiceImpl{
		announcementRepo: announcementRepo,
		hub:              hub,
	}
}

// Create implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) Create(ctx context.Context, req announcement.CreateAnnouncementRequest) (announcement.AnnouncementResponse, error) {
	if err := req.Validate(); err != nil {
		return announcement.AnnouncementResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return announcement.AnnouncementResponse{}, fmt.Errorf("failed to get claims from context: %w", err)
	}
	publisherID, ok := claims["user_id"].(string)
	if !ok || publisherID == "" {
		return announcement.AnnouncementResponse{}, fmt.Errorf("user ID not found in token")
	}

	a := announcement.Announcement{
		Title:       req.Title,
		Body:        req.Body,
		Audience:    req.Audience,
		PublishedBy: publisherID,
		PublishedAt: time.Now(),
	}
	if req.Audience == announcement.AudienceDepartment {
		a.DepartmentID = req.DepartmentID
	}
	if req.ExpiresAt != nil {
		expiresAt, err := time.Parse(time.RFC3339, *req.ExpiresAt)
		if err != nil {
			return announcement.AnnouncementResponse{}, fmt.Errorf("invalid expires_at: %w", err)
		}
		a.ExpiresAt = &expiresAt
	}

	created, err := s.announcementRepo.Create(ctx, a)
	if err != nil {
		return announcement.AnnouncementResponse{}, err
	}

	// Push a lightweight notification; clients refetch the list, which
	// applies the audience filter.
	s.hub.Broadcast(sse.Event{
		Event: "announcement.created",
		Data: map[string]string{
			"id":    created.ID,
			"title": created.Title,
		},
	})

	return toAnnouncementResponse(created, false), nil
}

// List implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) List(ctx context.Context, filter announcement.AnnouncementFilter) (announcement.ListAnnouncementsResponse, error) {
	if err := filter.Validate(); err != nil {
		return announcement.ListAnnouncementsResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return announcement.ListAnnouncementsResponse{}, err
	}

	now := time.Now()

	announcements, total, err := s.announcementRepo.ListForEmployee(ctx, employeeID, filter, now)
	if err != nil {
		return announcement.ListAnnouncementsResponse{}, err
	}

	ids := make([]string, 0, len(announcements))
	for _, a := range announcements {
		ids = append(ids, a.ID)
	}
	readIDs, err := s.announcementRepo.ReadIDs(ctx, employeeID, ids)
	if err != nil {
		return announcement.ListAnnouncementsResponse{}, fmt.Errorf("failed to load read receipts: %w", err)
	}

	unread, err := s.announcementRepo.CountUnread(ctx, employeeID, now)
	if err != nil {
		return announcement.ListAnnouncementsResponse{}, fmt.Errorf("failed to count unread: %w", err)
	}

	responses := make([]announcement.AnnouncementResponse, 0, len(announcements))
	for _, a := range announcements {
		responses = append(responses, toAnnouncementResponse(a, readIDs[a.ID]))
	}

	totalPages := 0
	if filter.Limit > 0 {
		totalPages = int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	}

	return announcement.ListAnnouncementsResponse{
		TotalCount:    total,
		UnreadCount:   unread,
		Page:          filter.Page,
		Limit:         filter.Limit,
		TotalPages:    totalPages,
		Announcements: responses,
	}, nil
}

// Get implements announcement.AnnouncementService. Reading an
// announcement records the receipt.
func (s *AnnouncementServiceImpl) Get(ctx context.Context, id string) (announcement.AnnouncementResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return announcement.AnnouncementResponse{}, err
	}

	a, err := s.announcementRepo.GetByID(ctx, id)
	if err != nil {
		return announcement.AnnouncementResponse{}, err
	}

	if !a.Active(time.Now()) {
		return announcement.AnnouncementResponse{}, announcement.ErrAnnouncementExpired
	}

	if err := s.announcementRepo.MarkRead(ctx, a.ID, employeeID); err != nil {
		return announcement.AnnouncementResponse{}, fmt.Errorf("failed to mark announcement read: %w", err)
	}

	return toAnnouncementResponse(a, true), nil
}

// MarkRead implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) MarkRead(ctx context.Context, id string) error {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return err
	}

	if _, err := s.announcementRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return s.announcementRepo.MarkRead(ctx, id, employeeID)
}

// Delete implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.announcementRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.announcementRepo.Delete(ctx, id)
}

func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee ID not found in token")
	}

	return employeeID, nil
}

func toAnnouncementResponse(a announcement.Announcement, read bool) announcement.AnnouncementResponse {
	return announcement.AnnouncementResponse{
		ID:             a.ID,
		Title:          a.Title,
		Body:           a.Body,
		Audience:       a.Audience,
		DepartmentID:   a.DepartmentID,
		DepartmentName: a.DepartmentName,
		PublishedBy:    a.PublishedBy,
		PublisherName:  a.PublisherName,
		PublishedAt:    a.PublishedAt,
		ExpiresAt:      a.ExpiresAt,
		Read:           read,
	}
}
