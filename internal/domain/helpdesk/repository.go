package helpdesk

import "context"

type TicketRepository interface {
	Create(ctx context.Context, t Ticket) (Ticket, error)
	GetByID(ctx context.Context, id string) (Ticket, error)
	Update(ctx context.Context, t Ticket) error
	List(ctx context.Context, filter TicketFilter) ([]Ticket, int64, error)
	ListByEmployee(ctx context.Context, employeeID string, filter TicketFilter) ([]Ticket, int64, error)

	AddComment(ctx context.Context, c Comment) (Comment, error)
	ListComments(ctx context.Context, ticketID string) ([]Comment, error)
}

type ComplaintRepository interface {
	Create(ctx context.Context, c Complaint) (Complaint, error)
	GetByID(ctx context.Context, id string) (Complaint, error)
	UpdateStatus(ctx context.Context, id, status string) error
	List(ctx context.Context) ([]Complaint, error)
}
