package rule

import (
	"context"
	"fmt"

	"github.com/wakt-hr/attendance-backend-go/internal/domain/rule"
	"github.com/wakt-hr/attendance-backend-go/internal/pkg/calendar"
)

type RuleServiceImpl struct {
	rule.RuleRepository
}

func NewRuleService(ruleRepository rule.RuleRepository) rule.RuleService {
	return &RuleServiceImpl{RuleRepository: ruleRepository}
}

// ListRules implements rule.RuleService.
func (r *RuleServiceImpl) ListRules(ctx context.Context) ([]rule.RuleResponse, error) {
	rules, err := r.RuleRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rules: %w", err)
	}

	responses := make([]rule.RuleResponse, 0, len(rules))
	for _, sr := range rules {
		responses = append(responses, mapToResponse(sr))
	}
	return responses, nil
}

// CreateRule implements rule.RuleService.
func (r *RuleServiceImpl) CreateRule(ctx context.Context, req rule.CreateRuleRequest) (rule.RuleResponse, error) {
	if err := req.Validate(); err != nil {
		return rule.RuleResponse{}, err
	}

	start, err := calendar.ParseDate(req.StartDate)
	if err != nil {
		return rule.RuleResponse{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	end, err := calendar.ParseDate(req.EndDate)
	if err != nil {
		return rule.RuleResponse{}, fmt.Errorf("failed to parse end date: %w", err)
	}

	created, err := r.RuleRepository.Create(ctx, rule.SpecialRule{
		Name:      req.Name,
		RuleType:  req.RuleType,
		Scope:     req.Scope,
		StartDate: start,
		EndDate:   end,
		Priority:  req.Priority,
		Params:    req.Params,
	})
	if err != nil {
		return rule.RuleResponse{}, fmt.Errorf("failed to create rule: %w", err)
	}
	return mapToResponse(created), nil
}

// DeleteRule implements rule.RuleService.
func (r *RuleServiceImpl) DeleteRule(ctx context.Context, id string) error {
	if err := r.RuleRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete rule: %w", err)
	}
	return nil
}

func mapToResponse(sr rule.SpecialRule) rule.RuleResponse {
	return rule.RuleResponse{
		ID:        sr.ID,
		Name:      sr.Name,
		RuleType:  sr.RuleType,
		Scope:     sr.Scope,
		StartDate: sr.StartDate.String(),
		EndDate:   sr.EndDate.String(),
		Priority:  sr.Priority,
		Params:    sr.Params,
	}
}
