package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/worklane/hrm-backend-go/internal/domain/helpdesk"
	"github.com/worklane/hrm-backend-go/internal/pkg/database"
)

type ticketRepository struct {
	db *database.DB
}

func NewTicketRepository(db *database.DB) helpdesk.TicketRepository {
	return &ticketRepository{db: db}
}

const ticketColumns = `
	t.id, t.employee_id, t.subject, t.description, t.category, t.priority, t.status,
	t.assigned_to, t.resolved_at, t.created_at, t.updated_at,
	e.full_name AS employee_name,
	h.full_name AS assigned_to_name,
	(SELECT COUNT(*) FROM ticket_comments c WHERE c.ticket_id = t.id) AS comment_count`

func scanTicket(row pgx.Row) (helpdesk.Ticket, error) {
	var t helpdesk.Ticket
	err := row.Scan(
		&t.ID, &t.EmployeeID, &t.Subject, &t.Description, &t.Category, &t.Priority, &t.Status,
		&t.AssignedTo, &t.ResolvedAt, &t.CreatedAt, &t.UpdatedAt,
		&t.EmployeeName, &t.AssignedToName, &t.CommentCount,
	)
	return t, err
}

// Create implements helpdesk.TicketRepository.
func (r *ticketRepository) Create(ctx context.Context, t helpdesk.Ticket) (helpdesk.Ticket, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tickets (employee_id, subject, description, category, priority, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		t.EmployeeID, t.Subject, t.Description, t.Category, t.Priority, t.Status,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return helpdesk.Ticket{}, fmt.Errorf("failed to create ticket: %w", err)
	}

	return t, nil
}

// GetByID implements helpdesk.TicketRepository.
func (r *ticketRepository) GetByID(ctx context.Context, id string) (helpdesk.Ticket, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + ticketColumns + `
		FROM tickets t
		LEFT JOIN employees e ON e.id = t.employee_id
		LEFT JOIN employees h ON h.id = t.assigned_to
		WHERE t.id = $1
	`

	t, err := scanTicket(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return helpdesk.Ticket{}, helpdesk.ErrTicketNotFound
		}
		return helpdesk.Ticket{}, fmt.Errorf("failed to get ticket: %w", err)
	}

	return t, nil
}

// Update implements helpdesk.TicketRepository.
func (r *ticketRepository) Update(ctx context.Context, t helpdesk.Ticket) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tickets SET
			status = $1,
			priority = $2,
			assigned_to = $3,
			resolved_at = $4,
			updated_at = NOW()
		WHERE id = $5
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		t.Status, t.Priority, t.AssignedTo, t.ResolvedAt, t.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return helpdesk.ErrTicketNotFound
		}
		return fmt.Errorf("failed to update ticket: %w", err)
	}

	return nil
}

func (r *ticketRepository) listTickets(ctx context.Context, baseWhere string, args []interface{}, argIdx int, filter helpdesk.TicketFilter) ([]helpdesk.Ticket, int64, error) {
	q := GetQuerier(ctx, r.db)

	countQuery := "SELECT COUNT(*) FROM tickets t WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT %s
		FROM tickets t
		LEFT JOIN employees e ON e.id = t.employee_id
		LEFT JOIN employees h ON h.id = t.assigned_to
		WHERE %s
		ORDER BY t.created_at DESC
		LIMIT $%d OFFSET $%d
	`, ticketColumns, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query tickets: %w", err)
	}
	defer rows.Close()

	var tickets []helpdesk.Ticket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan ticket: %w", err)
		}
		tickets = append(tickets, t)
	}

	return tickets, total, nil
}

func ticketFilterWhere(filter helpdesk.TicketFilter, baseWhere string, args []interface{}, argIdx int) (string, []interface{}, int) {
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND t.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Priority != nil && *filter.Priority != "" {
		baseWhere += fmt.Sprintf(" AND t.priority = $%d", argIdx)
		args = append(args, *filter.Priority)
		argIdx++
	}
	if filter.Category != nil && *filter.Category != "" {
		baseWhere += fmt.Sprintf(" AND t.category = $%d", argIdx)
		args = append(args, *filter.Category)
		argIdx++
	}
	return baseWhere, args, argIdx
}

// List implements helpdesk.TicketRepository.
func (r *ticketRepository) List(ctx context.Context, filter helpdesk.TicketFilter) ([]helpdesk.Ticket, int64, error) {
	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND t.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	baseWhere, args, argIdx = ticketFilterWhere(filter, baseWhere, args, argIdx)

	return r.listTickets(ctx, baseWhere, args, argIdx, filter)
}

// ListByEmployee implements helpdesk.TicketRepository.
func (r *ticketRepository) ListByEmployee(ctx context.Context, employeeID string, filter helpdesk.TicketFilter) ([]helpdesk.Ticket, int64, error) {
	baseWhere := "t.employee_id = $1"
	args := []interface{}{employeeID}
	argIdx := 2

	baseWhere, args, argIdx = ticketFilterWhere(filter, baseWhere, args, argIdx)

	return r.listTickets(ctx, baseWhere, args, argIdx, filter)
}

// AddComment implements helpdesk.TicketRepository.
func (r *ticketRepository) AddComment(ctx context.Context, c helpdesk.Comment) (helpdesk.Comment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO ticket_comments (ticket_id, author_id, body)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, c.TicketID, c.AuthorID, c.Body).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return helpdesk.Comment{}, fmt.Errorf("failed to add comment: %w", err)
	}

	return c, nil
}

// ListComments implements helpdesk.TicketRepository.
func (r *ticketRepository) ListComments(ctx context.Context, ticketID string) ([]helpdesk.Comment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT c.id, c.ticket_id, c.author_id, c.body, c.created_at,
			   e.full_name AS author_name
		FROM ticket_comments c
		LEFT JOIN employees e ON e.id = c.author_id
		WHERE c.ticket_id = $1
		ORDER BY c.created_at ASC
	`

	rows, err := q.Query(ctx, query, ticketID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	var comments []helpdesk.Comment
	for rows.Next() {
		var c helpdesk.Comment
		if err := rows.Scan(&c.ID, &c.TicketID, &c.AuthorID, &c.Body, &c.CreatedAt, &c.AuthorName); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}

	return comments, nil
}

type complaintRepository struct {
	db *database.DB
}

func NewComplaintRepository(db *database.DB) helpdesk.ComplaintRepository {
	return &complaintRepository{db: db}
}

// Create implements helpdesk.ComplaintRepository.
func (r *complaintRepository) Create(ctx context.Context, c helpdesk.Complaint) (helpdesk.Complaint, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO complaints (employee_id, subject, description, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, c.EmployeeID, c.Subject, c.Description, c.Status).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return helpdesk.Complaint{}, fmt.Errorf("failed to create complaint: %w", err)
	}

	return c, nil
}

// GetByID implements helpdesk.ComplaintRepository.
func (r *complaintRepository) GetByID(ctx context.Context, id string) (helpdesk.Complaint, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT c.id, c.employee_id, c.subject, c.description, c.status,
			   c.created_at, c.updated_at,
			   e.full_name AS employee_name
		FROM complaints c
		LEFT JOIN employees e ON e.id = c.employee_id
		WHERE c.id = $1
	`

	var c helpdesk.Complaint
	err := q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.EmployeeID, &c.Subject, &c.Description, &c.Status,
		&c.CreatedAt, &c.UpdatedAt, &c.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return helpdesk.Complaint{}, helpdesk.ErrComplaintNotFound
		}
		return helpdesk.Complaint{}, fmt.Errorf("failed to get complaint: %w", err)
	}

	return c, nil
}

// UpdateStatus implements helpdesk.ComplaintRepository.
func (r *complaintRepository) UpdateStatus(ctx context.Context, id, status string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE complaints SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update complaint: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return helpdesk.ErrComplaintNotFound
	}
	return nil
}

// List implements helpdesk.ComplaintRepository.
func (r *complaintRepository) List(ctx context.Context) ([]helpdesk.Complaint, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT c.id, c.employee_id, c.subject, c.description, c.status,
			   c.created_at, c.updated_at,
			   e.full_name AS employee_name
		FROM complaints c
		LEFT JOIN employees e ON e.id = c.employee_id
		ORDER BY c.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query complaints: %w", err)
	}
	defer rows.Close()

	var complaints []helpdesk.Complaint
	for rows.Next() {
		var c helpdesk.Complaint
		err := rows.Scan(
			&c.ID, &c.EmployeeID, &c.Subject, &c.Description, &c.Status,
			&c.CreatedAt, &c.UpdatedAt, &c.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan complaint: %w", err)
		}
		complaints = append(complaints, c)
	}

	return complaints, nil
}
