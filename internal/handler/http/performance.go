package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/worklane/hrm-backend-go/internal/domain/performance"
	"github.com/worklane/hrm-backend-go/internal/handler/http/response"
)

type PerformanceHandler interface {
	CreateGoal(w http.ResponseWriter, r *http.Request)
	UpdateGoalProgress(w http.ResponseWriter, r *http.Request)
	ListGoals(w http.ResponseWriter, r *http.Request)
	GetMyGoals(w http.ResponseWriter, r *http.Request)
	DeleteGoal(w http.ResponseWriter, r *http.Request)

	CreateAppraisal(w http.ResponseWriter, r *http.Request)
	GetAppraisal(w http.ResponseWriter, r *http.Request)
	ListEmployeeAppraisals(w http.ResponseWriter, r *http.Request)
	GetMyAppraisals(w http.ResponseWriter, r *http.Request)

	CreateIndicator(w http.ResponseWriter, r *http.Request)
	ListIndicators(w http.ResponseWriter, r *http.Request)
}

type performanceHandlerImpl struct {
	performanceService performance.PerformanceService
}

func NewPerformanceHandler(performanceService performance.PerformanceService) PerformanceHandler {
	return &performanceHandlerImpl{
		performanceService: performanceService,
	}
}

// CreateGoal implements PerformanceHandler.
func (h *performanceHandlerImpl) CreateGoal(w http.ResponseWriter, r *http.Request) {
	var req performance.CreateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.performanceService.CreateGoal(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Goal created successfully", result)
}

// UpdateGoalProgress implements PerformanceHandler.
func (h *performanceHandlerImpl) UpdateGoalProgress(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req performance.UpdateGoalProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	result, err := h.performanceService.UpdateGoalProgress(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Goal progress updated successfully", result)
}

// ListGoals implements PerformanceHandler.
func (h *performanceHandlerImpl) ListGoals(w http.ResponseWriter, r *http.Request) {
	filter := performance.GoalFilter{
		EmployeeID: queryString(r, "employee_id"),
		Status:     queryString(r, "status"),
		Page:       queryInt(r, "page", 1),
		Limit:      queryInt(r, "limit", 20),
	}

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.performanceService.ListGoals(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// GetMyGoals implements PerformanceHandler.
func (h *performanceHandlerImpl) GetMyGoals(w http.ResponseWriter, r *http.Request) {
	filter := performance.GoalFilter{
		Status: queryString(r, "status"),
		Page:   queryInt(r, "page", 1),
		Limit:  queryInt(r, "limit", 20),
	}

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.performanceService.GetMyGoals(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// DeleteGoal implements PerformanceHandler.
func (h *performanceHandlerImpl) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.performanceService.DeleteGoal(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Goal deleted successfully", nil)
}

// CreateAppraisal implements PerformanceHandler.
func (h *performanceHandlerImpl) CreateAppraisal(w http.ResponseWriter, r *http.Request) {
	var req performance.CreateAppraisalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.performanceService.CreateAppraisal(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Appraisal created successfully", result)
}

// GetAppraisal implements PerformanceHandler.
func (h *performanceHandlerImpl) GetAppraisal(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.performanceService.GetAppraisal(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListEmployeeAppraisals implements PerformanceHandler.
func (h *performanceHandlerImpl) ListEmployeeAppraisals(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	results, err := h.performanceService.ListEmployeeAppraisals(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// GetMyAppraisals implements PerformanceHandler.
func (h *performanceHandlerImpl) GetMyAppraisals(w http.ResponseWriter, r *http.Request) {
	results, err := h.performanceService.GetMyAppraisals(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// CreateIndicator implements PerformanceHandler.
func (h *performanceHandlerImpl) CreateIndicator(w http.ResponseWriter, r *http.Request) {
	var req performance.CreateIndicatorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.performanceService.CreateIndicator(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Indicator created successfully", result)
}

// ListIndicators implements PerformanceHandler.
func (h *performanceHandlerImpl) ListIndicators(w http.ResponseWriter, r *http.Request) {
	results, err := h.performanceService.ListIndicators(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
