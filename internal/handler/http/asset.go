package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/worklane/hrm-backend-go/internal/domain/asset"
	"github.com/worklane/hrm-backend-go/internal/handler/http/response"
)

type AssetHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Assign(w http.ResponseWriter, r *http.Request)
	RequestReturn(w http.ResponseWriter, r *http.Request)
	ConfirmReturn(w http.ResponseWriter, r *http.Request)
	Retire(w http.ResponseWriter, r *http.Request)
	GetMyAssets(w http.ResponseWriter, r *http.Request)
	GetStatistics(w http.ResponseWriter, r *http.Request)
}

type assetHandlerImpl struct {
	assetService asset.AssetService
}

func NewAssetHandler(assetService asset.AssetService) AssetHandler {
	return &assetHandlerImpl{
		assetService: assetService,
	}
}

// Create implements AssetHandler.
func (h *assetHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req asset.CreateAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.assetService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Asset registered successfully", result)
}

// Get implements AssetHandler.
func (h *assetHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.assetService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements AssetHandler.
func (h *assetHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := asset.AssetFilter{
		Status:     queryString(r, "status"),
		Category:   queryString(r, "category"),
		EmployeeID: queryString(r, "employee_id"),
		Search:     queryString(r, "search"),
		Page:       queryInt(r, "page", 1),
		Limit:      queryInt(r, "limit", 20),
	}

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.assetService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Assign implements AssetHandler.
func (h *assetHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req asset.AssignAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.AssetID = id

	result, err := h.assetService.Assign(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Asset assigned successfully", result)
}

// RequestReturn implements AssetHandler.
func (h *assetHandlerImpl) RequestReturn(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.assetService.RequestReturn(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Asset return requested", result)
}

// ConfirmReturn implements AssetHandler.
func (h *assetHandlerImpl) ConfirmReturn(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.assetService.ConfirmReturn(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Asset return confirmed", result)
}

// Retire implements AssetHandler.
func (h *assetHandlerImpl) Retire(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.assetService.Retire(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Asset retired successfully", result)
}

// GetMyAssets implements AssetHandler.
func (h *assetHandlerImpl) GetMyAssets(w http.ResponseWriter, r *http.Request) {
	results, err := h.assetService.GetMyAssets(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// GetStatistics implements AssetHandler.
func (h *assetHandlerImpl) GetStatistics(w http.ResponseWriter, r *http.Request) {
	result, err := h.assetService.GetStatistics(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
