package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/worklane/hrm-backend-go/internal/domain/helpdesk"
	"github.com/worklane/hrm-backend-go/internal/handler/http/response"
)

type HelpdeskHandler interface {
	CreateTicket(w http.ResponseWriter, r *http.Request)
	GetTicket(w http.ResponseWriter, r *http.Request)
	ListTickets(w http.ResponseWriter, r *http.Request)
	GetMyTickets(w http.ResponseWriter, r *http.Request)
	UpdateTicketStatus(w http.ResponseWriter, r *http.Request)
	AddComment(w http.ResponseWriter, r *http.Request)
	ListComments(w http.ResponseWriter, r *http.Request)
	CreateComplaint(w http.ResponseWriter, r *http.Request)
	ListComplaints(w http.ResponseWriter, r *http.Request)
	ResolveComplaint(w http.ResponseWriter, r *http.Request)
}

type helpdeskHandlerImpl struct {
	helpdeskService helpdesk.HelpdeskService
}

func NewHelpdeskHandler(helpdeskService helpdesk.HelpdeskService) HelpdeskHandler {
	return &helpdeskHandlerImpl{
		helpdeskService: helpdeskService,
	}
}

// CreateTicket implements HelpdeskHandler.
func (h *helpdeskHandlerImpl) CreateTicket(w http.ResponseWriter, r *http.Request) {
	var req helpdesk.CreateTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.helpdeskService.CreateTicket(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Ticket created successfully", result)
}

// GetTicket implements HelpdeskHandler.
func (h *helpdeskHandlerImpl) GetTicket(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.helpdeskService.GetTicket(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListTickets implements HelpdeskHandler.
func (h *helpdeskHandlerImpl) ListTickets(w http.ResponseWriter, r *http.Request) {
	filter := ticketFilterFromQuery(r)

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.helpdeskService.ListTickets(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// GetMyTickets implements HelpdeskHandler.
func (h *helpdeskHandlerImpl) GetMyTickets(w http.ResponseWriter, r *http.Request) {
	filter := ticketFilterFromQuery(r)

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.helpdeskService.GetMyTickets(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// UpdateTicketStatus implements HelpdeskHandler.
func (h *helpdeskHandlerImpl) UpdateTicketStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req helpdesk.UpdateTicketStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	result, err := h.helpdeskService.UpdateTicketStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Ticket status updated successfully", result)
}

// AddComment implements HelpdeskHandler.
func (h *helpdeskHandlerImpl) AddComment(w http.ResponseWriter, r *http.Request) {
	ticketID := chi.URLParam(r, "id")

	var req helpdesk.AddCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.TicketID = ticketID

	result, err := h.helpdeskService.AddComment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Comment added successfully", result)
}

// ListComments implements HelpdeskHandler.
func (h *helpdeskHandlerImpl) ListComments(w http.ResponseWriter, r *http.Request) {
	ticketID := chi.URLParam(r, "id")

	results, err := h.helpdeskService.ListComments(r.Context(), ticketID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// CreateComplaint implements HelpdeskHandler.
func (h *helpdeskHandlerImpl) CreateComplaint(w http.ResponseWriter, r *http.Request) {
	var req helpdesk.CreateComplaintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.helpdeskService.CreateComplaint(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Complaint filed successfully", result)
}

// ListComplaints implements HelpdeskHandler.
func (h *helpdeskHandlerImpl) ListComplaints(w http.ResponseWriter, r *http.Request) {
	results, err := h.helpdeskService.ListComplaints(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// ResolveComplaint implements HelpdeskHandler.
func (h *helpdeskHandlerImpl) ResolveComplaint(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.helpdeskService.ResolveComplaint(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Complaint resolved successfully", nil)
}

func ticketFilterFromQuery(r *http.Request) helpdesk.TicketFilter {
	return helpdesk.TicketFilter{
		Status:     queryString(r, "status"),
		Priority:   queryString(r, "priority"),
		Category:   queryString(r, "category"),
		EmployeeID: queryString(r, "employee_id"),
		Page:       queryInt(r, "page", 1),
		Limit:      queryInt(r, "limit", 20),
	}
}
