package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/worklane/hrm-backend-go/internal/domain/announcement"
	"github.com/worklane/hrm-backend-go/internal/pkg/database"
)

type announcementRepository struct {
	db *database.DB
}

func NewAnnouncementRepository(db *database.DB) announcement.AnnouncementRepository {
	return &announcementRepository{db: db}
}

const announcementColumns = `
	a.id, a.title, a.body, a.audience, a.department_id,
	a.published_by, a.published_at, a.expires_at,
	a.created_at, a.updated_at,
	p.full_name AS publisher_name,
	d.name AS department_name`

func scanAnnouncement(row pgx.Row) (announcement.Announcement, error) {
	var ann announcement.Announcement
	err := row.Scan(
		&ann.ID, &ann.Title, &ann.Body, &ann.Audience, &ann.DepartmentID,
		&ann.PublishedBy, &ann.PublishedAt, &ann.ExpiresAt,
		&ann.CreatedAt, &ann.UpdatedAt,
		&ann.PublisherName, &ann.DepartmentName,
	)
	return ann, err
}

// Create implements announcement.AnnouncementRepository.
func (r *announcementRepository) Create(ctx context.Context, a announcement.Announcement) (announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO announcements (title, body, audience, department_id, published_by, published_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.Title, a.Body, a.Audience, a.DepartmentID, a.PublishedBy, a.PublishedAt, a.ExpiresAt,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return announcement.Announcement{}, fmt.Errorf("failed to create announcement: %w", err)
	}

	return a, nil
}

// GetByID implements announcement.AnnouncementRepository.
func (r *announcementRepository) GetByID(ctx context.Context, id string) (announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + announcementColumns + `
		FROM announcements a
		LEFT JOIN employees p ON p.id = a.published_by
		LEFT JOIN departments d ON d.id = a.department_id
		WHERE a.id = $1
	`

	ann, err := scanAnnouncement(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return announcement.Announcement{}, announcement.ErrAnnouncementNotFound
		}
		return announcement.Announcement{}, fmt.Errorf("failed to get announcement: %w", err)
	}

	return ann, nil
}

// Delete implements announcement.AnnouncementRepository.
func (r *announcementRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete announcement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return announcement.ErrAnnouncementNotFound
	}
	return nil
}

// visibleWhere restricts announcements to those the employee may see:
// audience 'all', or department audience matching the employee's
// department, and not yet expired.
const visibleWhere = `
	(a.expires_at IS NULL OR a.expires_at > $2)
	AND (
		a.audience = 'all'
		OR (a.audience = 'department' AND a.department_id = (
			SELECT department_id FROM employees WHERE id = $1
		))
	)`

// ListForEmployee implements announcement.AnnouncementRepository.
func (r *announcementRepository) ListForEmployee(ctx context.Context, employeeID string, filter announcement.AnnouncementFilter, now time.Time) ([]announcement.Announcement, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := visibleWhere
	args := []interface{}{employeeID, now}
	argIdx := 3

	if filter.UnreadOnly {
		baseWhere += fmt.Sprintf(` AND NOT EXISTS (
			SELECT 1 FROM announcement_reads ar
			WHERE ar.announcement_id = a.id AND ar.employee_id = $%d
		)`, argIdx)
		args = append(args, employeeID)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM announcements a WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count announcements: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT %s
		FROM announcements a
		LEFT JOIN employees p ON p.id = a.published_by
		LEFT JOIN departments d ON d.id = a.department_id
		WHERE %s
		ORDER BY a.published_at DESC
		LIMIT $%d OFFSET $%d
	`, announcementColumns, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query announcements: %w", err)
	}
	defer rows.Close()

	var announcements []announcement.Announcement
	for rows.Next() {
		ann, err := scanAnnouncement(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan announcement: %w", err)
		}
		announcements = append(announcements, ann)
	}

	return announcements, total, nil
}

// MarkRead implements announcement.AnnouncementRepository.
func (r *announcementRepository) MarkRead(ctx context.Context, announcementID, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO announcement_reads (announcement_id, employee_id, read_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (announcement_id, employee_id) DO NOTHING
	`

	if _, err := q.Exec(ctx, query, announcementID, employeeID); err != nil {
		return fmt.Errorf("failed to mark announcement read: %w", err)
	}
	return nil
}

// ReadIDs implements announcement.AnnouncementRepository.
func (r *announcementRepository) ReadIDs(ctx context.Context, employeeID string, announcementIDs []string) (map[string]bool, error) {
	read := make(map[string]bool, len(announcementIDs))
	if len(announcementIDs) == 0 {
		return read, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT announcement_id
		FROM announcement_reads
		WHERE employee_id = $1
		  AND announcement_id = ANY($2)
	`

	rows, err := q.Query(ctx, query, employeeID, announcementIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query read receipts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan read receipt: %w", err)
		}
		read[id] = true
	}

	return read, nil
}

// CountUnread implements announcement.AnnouncementRepository.
func (r *announcementRepository) CountUnread(ctx context.Context, employeeID string, now time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM announcements a
		WHERE ` + visibleWhere + `
		  AND NOT EXISTS (
			SELECT 1 FROM announcement_reads ar
			WHERE ar.announcement_id = a.id AND ar.employee_id = $1
		  )
	`

	var unread int64
	if err := q.QueryRow(ctx, query, employeeID, now).Scan(&unread); err != nil {
		return 0, fmt.Errorf("failed to count unread announcements: %w", err)
	}

	return unread, nil
}
