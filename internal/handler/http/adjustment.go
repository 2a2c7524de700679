package http

import (
	"encoding/json"
	"net/http"

	"github.com/wakt-hr/attendance-backend-go/internal/domain/adjustment"
	"github.com/wakt-hr/attendance-backend-go/internal/handler/http/response"
)

type AdjustmentHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
}

type adjustmentHandlerImpl struct {
	adjustmentService adjustment.AdjustmentService
}

func NewAdjustmentHandler(adjustmentService adjustment.AdjustmentService) AdjustmentHandler {
	return &adjustmentHandlerImpl{
		adjustmentService: adjustmentService,
	}
}

// List implements AdjustmentHandler.
func (h *adjustmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	adjustments, err := h.adjustmentService.ListAdjustments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, adjustments)
}

// Create implements AdjustmentHandler.
func (h *adjustmentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req adjustment.CreateAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.adjustmentService.CreateAdjustment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Adjustment created", created)
}
