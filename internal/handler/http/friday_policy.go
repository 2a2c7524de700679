package http

import (
	"encoding/json"
	"net/http"

	"github.com/wakt-hr/attendance-backend-go/internal/domain/fridaypolicy"
	"github.com/wakt-hr/attendance-backend-go/internal/handler/http/response"
)

type FridayPolicyHandler interface {
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
	Report(w http.ResponseWriter, r *http.Request)
}

type fridayPolicyHandlerImpl struct {
	fridayPolicyService fridaypolicy.FridayPolicyService
}

func NewFridayPolicyHandler(fridayPolicyService fridaypolicy.FridayPolicyService) FridayPolicyHandler {
	return &fridayPolicyHandlerImpl{
		fridayPolicyService: fridayPolicyService,
	}
}

// GetSettings implements FridayPolicyHandler.
func (h *fridayPolicyHandlerImpl) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.fridayPolicyService.GetSettings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, settings)
}

// UpdateSettings implements FridayPolicyHandler.
func (h *fridayPolicyHandlerImpl) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req fridaypolicy.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	saved, err := h.fridayPolicyService.UpdateSettings(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Settings updated", saved)
}

// Report implements FridayPolicyHandler.
func (h *fridayPolicyHandlerImpl) Report(w http.ResponseWriter, r *http.Request) {
	req := fridaypolicy.ReportRequest{
		Month: r.URL.Query().Get("month"),
	}

	report, err := h.fridayPolicyService.BuildReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, report)
}
