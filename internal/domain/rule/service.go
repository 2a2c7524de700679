package rule

import "context"

// RuleService defines business logic for special rule management
type RuleService interface {
	// ListRules retrieves all rules
	ListRules(ctx context.Context) ([]RuleResponse, error)

	// CreateRule creates a new rule
	CreateRule(ctx context.Context, req CreateRuleRequest) (RuleResponse, error)

	// DeleteRule removes a rule by id
	DeleteRule(ctx context.Context, id string) error
}
