package helpdesk

import "context"

// HelpdeskService defines business logic for tickets and complaints.
type HelpdeskService interface {
	// Tickets
	CreateTicket(ctx context.Context, req CreateTicketRequest) (TicketResponse, error)
	GetTicket(ctx context.Context, id string) (TicketResponse, error)
	ListTickets(ctx context.Context, filter TicketFilter) (ListTicketsResponse, error)
	GetMyTickets(ctx context.Context, filter TicketFilter) (ListTicketsResponse, error)
	UpdateTicketStatus(ctx context.Context, req UpdateTicketStatusRequest) (TicketResponse, error)

	// Comments
	AddComment(ctx context.Context, req AddCommentRequest) (CommentResponse, error)
	ListComments(ctx context.Context, ticketID string) ([]CommentResponse, error)

	// Complaints
	CreateComplaint(ctx context.Context, req CreateComplaintRequest) (ComplaintResponse, error)
	ListComplaints(ctx context.Context) ([]ComplaintResponse, error)
	ResolveComplaint(ctx context.Context, id string) error
}
