package helpdesk

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/worklane/hrm-backend-go/internal/domain/helpdesk"
	"github.com/worklane/hrm-backend-go/internal/domain/user"
)

// validTransitions lists the allowed ticket status changes. Closed is
// terminal; resolved tickets can be reopened.
var validTransitions = map[string][]string{
	helpdesk.StatusOpen:       {helpdesk.StatusInProgress, helpdesk.StatusResolved, helpdesk.StatusClosed},
	helpdesk.StatusInProgress: {helpdesk.StatusResolved, helpdesk.StatusClosed},
	helpdesk.StatusResolved:   {helpdesk.StatusOpen, helpdesk.StatusClosed},
	helpdesk.StatusClosed:     {},
}

type HelpdeskServiceImpl struct {
	ticketRepo    helpdesk.TicketRepository
	complaintRepo helpdesk.ComplaintRepository
}

func NewHelpdeskService(ticketRepo helpdesk.TicketRepository, complaintRepo helpdesk.ComplaintRepository) helpdesk.HelpdeskService {
	return &HelpdeskServiceImpl{
		ticketRepo:    ticketRepo,
		complaintRepo: complaintRepo,
	}
}

// CreateTicket implements helpdesk.HelpdeskService.
func (s *HelpdeskServiceImpl) CreateTicket(ctx context.Context, req helpdesk.CreateTicketRequest) (helpdesk.TicketResponse, error) {
	if err := req.Validate(); err != nil {
		return helpdesk.TicketResponse{}, err
	}

	employeeID, _, err := identityFromContext(ctx)
	if err != nil {
		return helpdesk.TicketResponse{}, err
	}

	ticket := helpdesk.Ticket{
		EmployeeID:  employeeID,
		Subject:     req.Subject,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		Status:      helpdesk.StatusOpen,
	}

	created, err := s.ticketRepo.Create(ctx, ticket)
	if err != nil {
		return helpdesk.TicketResponse{}, err
	}

	return toTicketResponse(created), nil
}

// GetTicket implements helpdesk.HelpdeskService.
func (s *HelpdeskServiceImpl) GetTicket(ctx context.Context, id string) (helpdesk.TicketResponse, error) {
	ticket, err := s.authorizedTicket(ctx, id)
	if err != nil {
		return helpdesk.TicketResponse{}, err
	}
	return toTicketResponse(ticket), nil
}

// ListTickets implements helpdesk.HelpdeskService.
func (s *HelpdeskServiceImpl) ListTickets(ctx context.Context, filter helpdesk.TicketFilter) (helpdesk.ListTicketsResponse, error) {
	if err := filter.Validate(); err != nil {
		return helpdesk.ListTicketsResponse{}, err
	}

	tickets, total, err := s.ticketRepo.List(ctx, filter)
	if err != nil {
		return helpdesk.ListTicketsResponse{}, err
	}

	return listTicketsResponse(tickets, total, filter), nil
}

// GetMyTickets implements helpdesk.HelpdeskService.
func (s *HelpdeskServiceImpl) GetMyTickets(ctx context.Context, filter helpdesk.TicketFilter) (helpdesk.ListTicketsResponse, error) {
	if err := filter.Validate(); err != nil {
		return helpdesk.ListTicketsResponse{}, err
	}

	employeeID, _, err := identityFromContext(ctx)
	if err != nil {
		return helpdesk.ListTicketsResponse{}, err
	}

	tickets, total, err := s.ticketRepo.ListByEmployee(ctx, employeeID, filter)
	if err != nil {
		return helpdesk.ListTicketsResponse{}, err
	}

	return listTicketsResponse(tickets, total, filter), nil
}

// UpdateTicketStatus implements helpdesk.HelpdeskService.
func (s *HelpdeskServiceImpl) UpdateTicketStatus(ctx context.Context, req helpdesk.UpdateTicketStatusRequest) (helpdesk.TicketResponse, error) {
	if err := req.Validate(); err != nil {
		return helpdesk.TicketResponse{}, err
	}

	ticket, err := s.ticketRepo.GetByID(ctx, req.ID)
	if err != nil {
		return helpdesk.TicketResponse{}, err
	}

	if !transitionAllowed(ticket.Status, req.Status) {
		return helpdesk.TicketResponse{}, helpdesk.ErrInvalidTransition
	}

	ticket.Status = req.Status
	if req.AssignedTo != nil {
		ticket.AssignedTo = req.AssignedTo
	}
	if req.Status == helpdesk.StatusResolved {
		now := time.Now()
		ticket.ResolvedAt = &now
	}
	if req.Status == helpdesk.StatusOpen {
		ticket.ResolvedAt = nil
	}

	if err := s.ticketRepo.Update(ctx, ticket); err != nil {
		return helpdesk.TicketResponse{}, err
	}

	return toTicketResponse(ticket), nil
}

// AddComment implements helpdesk.HelpdeskService.
func (s *HelpdeskServiceImpl) AddComment(ctx context.Context, req helpdesk.AddCommentRequest) (helpdesk.CommentResponse, error) {
	if err := req.Validate(); err != nil {
		return helpdesk.CommentResponse{}, err
	}

	ticket, err := s.authorizedTicket(ctx, req.TicketID)
	if err != nil {
		return helpdesk.CommentResponse{}, err
	}
	if !ticket.Open() {
		return helpdesk.CommentResponse{}, helpdesk.ErrTicketClosed
	}

	employeeID, _, err := identityFromContext(ctx)
	if err != nil {
		return helpdesk.CommentResponse{}, err
	}

	comment, err := s.ticketRepo.AddComment(ctx, helpdesk.Comment{
		TicketID: ticket.ID,
		AuthorID: employeeID,
		Body:     req.Body,
	})
	if err != nil {
		return helpdesk.CommentResponse{}, err
	}

	return toCommentResponse(comment), nil
}

// ListComments implements helpdesk.HelpdeskService.
func (s *HelpdeskServiceImpl) ListComments(ctx context.Context, ticketID string) ([]helpdesk.CommentResponse, error) {
	if _, err := s.authorizedTicket(ctx, ticketID); err != nil {
		return nil, err
	}

	comments, err := s.ticketRepo.ListComments(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	responses := make([]helpdesk.CommentResponse, 0, len(comments))
	for _, c := range comments {
		responses = append(responses, toCommentResponse(c))
	}
	return responses, nil
}

// CreateComplaint implements helpdesk.HelpdeskService. Anonymous
// complaints never record the filer.
func (s *HelpdeskServiceImpl) CreateComplaint(ctx context.Context, req helpdesk.CreateComplaintRequest) (helpdesk.ComplaintResponse, error) {
	if err := req.Validate(); err != nil {
		return helpdesk.ComplaintResponse{}, err
	}

	complaint := helpdesk.Complaint{
		Subject:     req.Subject,
		Description: req.Description,
		Status:      helpdesk.StatusOpen,
	}

	if !req.Anonymous {
		employeeID, _, err := identityFromContext(ctx)
		if err != nil {
			return helpdesk.ComplaintResponse{}, err
		}
		complaint.EmployeeID = &employeeID
	}

	created, err := s.complaintRepo.Create(ctx, complaint)
	if err != nil {
		return helpdesk.ComplaintResponse{}, err
	}

	return toComplaintResponse(created), nil
}

// ListComplaints implements helpdesk.HelpdeskService.
func (s *HelpdeskServiceImpl) ListComplaints(ctx context.Context) ([]helpdesk.ComplaintResponse, error) {
	complaints, err := s.complaintRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]helpdesk.ComplaintResponse, 0, len(complaints))
	for _, c := range complaints {
		responses = append(responses, toComplaintResponse(c))
	}
	return responses, nil
}

// ResolveComplaint implements helpdesk.HelpdeskService.
func (s *HelpdeskServiceImpl) ResolveComplaint(ctx context.Context, id string) error {
	if _, err := s.complaintRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.complaintRepo.UpdateStatus(ctx, id, helpdesk.StatusResolved)
}

// authorizedTicket loads a ticket and enforces that regular employees
// only see their own.
func (s *HelpdeskServiceImpl) authorizedTicket(ctx context.Context, id string) (helpdesk.Ticket, error) {
	employeeID, role, err := identityFromContext(ctx)
	if err != nil {
		return helpdesk.Ticket{}, err
	}

	ticket, err := s.ticketRepo.GetByID(ctx, id)
	if err != nil {
		return helpdesk.Ticket{}, err
	}

	if role == user.RoleEmployee && ticket.EmployeeID != employeeID {
		return helpdesk.Ticket{}, helpdesk.ErrNotTicketOwner
	}

	return ticket, nil
}

func transitionAllowed(from, to string) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func identityFromContext(ctx context.Context) (employeeID string, role user.Role, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to get claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", "", fmt.Errorf("employee ID not found in token")
	}

	if r, ok := claims["role"].(string); ok {
		role = user.Role(r)
	}

	return employeeID, role, nil
}

func toTicketResponse(t helpdesk.Ticket) helpdesk.TicketResponse {
	return helpdesk.TicketResponse{
		ID:             t.ID,
		EmployeeID:     t.EmployeeID,
		EmployeeName:   t.EmployeeName,
		Subject:        t.Subject,
		Description:    t.Description,
		Category:       t.Category,
		Priority:       t.Priority,
		Status:         t.Status,
		AssignedTo:     t.AssignedTo,
		AssignedToName: t.AssignedToName,
		CommentCount:   t.CommentCount,
		ResolvedAt:     t.ResolvedAt,
		CreatedAt:      t.CreatedAt,
	}
}

func listTicketsResponse(tickets []helpdesk.Ticket, total int64, filter helpdesk.TicketFilter) helpdesk.ListTicketsResponse {
	responses := make([]helpdesk.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		responses = append(responses, toTicketResponse(t))
	}

	totalPages := 0
	if filter.Limit > 0 {
		totalPages = int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	}

	return helpdesk.ListTicketsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Tickets:    responses,
	}
}

func toCommentResponse(c helpdesk.Comment) helpdesk.CommentResponse {
	return helpdesk.CommentResponse{
		ID:         c.ID,
		TicketID:   c.TicketID,
		AuthorID:   c.AuthorID,
		AuthorName: c.AuthorName,
		Body:       c.Body,
		CreatedAt:  c.CreatedAt,
	}
}

func toComplaintResponse(c helpdesk.Complaint) helpdesk.ComplaintResponse {
	return helpdesk.ComplaintResponse{
		ID:           c.ID,
		EmployeeID:   c.EmployeeID,
		EmployeeName: c.EmployeeName,
		Subject:      c.Subject,
		Description:  c.Description,
		Status:       c.Status,
		CreatedAt:    c.CreatedAt,
	}
}
