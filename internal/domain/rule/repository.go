package rule

import "context"

// RuleRepository defines data access methods for special rules.
type RuleRepository interface {
	// List retrieves all rules in insertion order
	List(ctx context.Context) ([]SpecialRule, error)

	// Create inserts a new rule
	Create(ctx context.Context, r SpecialRule) (SpecialRule, error)

	// Delete removes a rule
	Delete(ctx context.Context, id string) error
}
