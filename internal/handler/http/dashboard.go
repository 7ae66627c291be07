package http

import (
	"net/http"

	"github.com/worklane/hrm-backend-go/internal/domain/dashboard"
	"github.com/worklane/hrm-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetMyDashboard(w http.ResponseWriter, r *http.Request)
	GetAdminDashboard(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// GetMyDashboard implements DashboardHandler.
func (h *dashboardHandlerImpl) GetMyDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetMyDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetAdminDashboard implements DashboardHandler.
func (h *dashboardHandlerImpl) GetAdminDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetAdminDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
