package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/wakt-hr/attendance-backend-go/internal/domain/punch"
	"github.com/wakt-hr/attendance-backend-go/internal/handler/http/response"
)

type PunchHandler interface {
	Import(w http.ResponseWriter, r *http.Request)
}

type punchHandlerImpl struct {
	punchService punch.PunchService
}

func NewPunchHandler(punchService punch.PunchService) PunchHandler {
	return &punchHandlerImpl{
		punchService: punchService,
	}
}

// Import implements PunchHandler.
func (h *punchHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	var req punch.ImportPunchesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.punchService.ImportPunches(r.Context(), req)
	if err != nil {
		slog.Error("Failed to import punches", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Punches imported", result)
}
