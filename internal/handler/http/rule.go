package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wakt-hr/attendance-backend-go/internal/domain/rule"
	"github.com/wakt-hr/attendance-backend-go/internal/handler/http/response"
)

type RuleHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ruleHandlerImpl struct {
	ruleService rule.RuleService
}

func NewRuleHandler(ruleService rule.RuleService) RuleHandler {
	return &ruleHandlerImpl{
		ruleService: ruleService,
	}
}

// List implements RuleHandler.
func (h *ruleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	rules, err := h.ruleService.ListRules(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, rules)
}

// Create implements RuleHandler.
func (h *ruleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req rule.CreateRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.ruleService.CreateRule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Rule created", created)
}

// Delete implements RuleHandler.
func (h *ruleHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.ruleService.DeleteRule(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Rule deleted", nil)
}
