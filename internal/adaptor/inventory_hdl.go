package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sauls8/nwa-jumpers/internal/dto/request"
	"github.com/sauls8/nwa-jumpers/internal/dto/response"
	"github.com/sauls8/nwa-jumpers/internal/usecase"
	"github.com/sauls8/nwa-jumpers/pkg/utils"
)

type InventoryHandler struct {
	service usecase.InventoryService
	log     *zap.Logger
}

func NewInventoryHandler(service usecase.InventoryService, log *zap.Logger) *InventoryHandler {
	return &InventoryHandler{
		service: service,
		log:     log.With(zap.String("handler", "inventory")),
	}
}

// ListInflatables handles GET /api/inventory?active_only=true (public)
func (h *InventoryHandler) ListInflatables(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active_only") == "true"

	inflatables, err := h.service.ListInflatables(r.Context(), !activeOnly)
	if err != nil {
		h.handleServiceError(w, err, "list inflatables")
		return
	}

	utils.WriteJSON(w, http.StatusOK, inflatables)
}

// ListByCategory handles GET /api/inventory/category/{category} (public)
func (h *InventoryHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	inflatables, err := h.service.ListByCategory(r.Context(), category)
	if err != nil {
		h.handleServiceError(w, err, "list inflatables by category")
		return
	}

	utils.WriteJSON(w, http.StatusOK, inflatables)
}

// GetInflatable handles GET /api/inventory/{id} (public)
func (h *InventoryHandler) GetInflatable(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	inflatable, err := h.service.GetInflatable(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "get inflatable")
		return
	}

	utils.WriteJSON(w, http.StatusOK, inflatable)
}

// CreateInflatable handles POST /api/inventory (admin)
func (h *InventoryHandler) CreateInflatable(w http.ResponseWriter, r *http.Request) {
	var req request.CreateInflatableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseResourceError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	inflatable, err := h.service.CreateInflatable(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create inflatable")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, response.InflatableMutationResponse{
		Success:    true,
		Message:    "Inflatable created successfully",
		Inflatable: inflatable,
	})
}

// BulkCreateInflatables handles POST /api/inventory/bulk (admin)
func (h *InventoryHandler) BulkCreateInflatables(w http.ResponseWriter, r *http.Request) {
	var req request.BulkCreateInflatablesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseResourceError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.BulkCreateInflatables(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "bulk create inflatables")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, result)
}

// UpdateInflatable handles PUT /api/inventory/{id} (admin)
func (h *InventoryHandler) UpdateInflatable(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req request.UpdateInflatableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseResourceError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	inflatable, err := h.service.UpdateInflatable(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err, "update inflatable")
		return
	}

	utils.WriteJSON(w, http.StatusOK, response.InflatableMutationResponse{
		Success:    true,
		Message:    "Inflatable updated successfully",
		Inflatable: inflatable,
	})
}

// DeleteInflatable handles DELETE /api/inventory/{id} (admin)
func (h *InventoryHandler) DeleteInflatable(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteInflatable(r.Context(), id); err != nil {
		h.handleServiceError(w, err, "delete inflatable")
		return
	}

	utils.WriteJSON(w, http.StatusOK, response.InflatableMutationResponse{
		Success: true,
		Message: "Inflatable deactivated successfully",
	})
}

// handleServiceError maps service errors onto the inventory endpoints'
// {"error": ...} wire shape.
func (h *InventoryHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseResourceError(w, http.StatusNotFound, errMsg)

	case strings.Contains(errMsg, "already exists"):
		h.log.Warn(operation+" failed - duplicate",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseResourceError(w, http.StatusConflict, errMsg)

	case strings.Contains(errMsg, "validation failed"), strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" rejected",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseResourceError(w, http.StatusBadRequest, errMsg)

	default:
		h.log.Error(operation+" failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseResourceError(w, http.StatusInternalServerError, "Internal server error")
	}
}
