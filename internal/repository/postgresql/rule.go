package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/wakt-hr/attendance-backend-go/internal/domain/rule"
	"github.com/wakt-hr/attendance-backend-go/internal/pkg/calendar"
	"github.com/wakt-hr/attendance-backend-go/internal/pkg/database"
)

type ruleRepository struct {
	db *database.DB
}

func NewRuleRepository(db *database.DB) rule.RuleRepository {
	return &ruleRepository{db: db}
}

// List implements rule.RuleRepository.
func (r *ruleRepository) List(ctx context.Context) ([]rule.SpecialRule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, rule_type, scope, start_date, end_date, priority, params, created_at
		FROM special_rules
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list rules: %w", err)
	}
	defer rows.Close()

	var rules []rule.SpecialRule
	for rows.Next() {
		var (
			sr                 rule.SpecialRule
			startDate, endDate string
			params             []byte
		)
		if err := rows.Scan(
			&sr.ID, &sr.Name, &sr.RuleType, &sr.Scope,
			&startDate, &endDate, &sr.Priority, &params, &sr.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan rule: %w", err)
		}
		if sr.StartDate, err = calendar.ParseDate(startDate); err != nil {
			return nil, fmt.Errorf("failed to parse rule start date: %w", err)
		}
		if sr.EndDate, err = calendar.ParseDate(endDate); err != nil {
			return nil, fmt.Errorf("failed to parse rule end date: %w", err)
		}
		if len(params) > 0 {
			if err := json.Unmarshal(params, &sr.Params); err != nil {
				return nil, fmt.Errorf("failed to decode rule params: %w", err)
			}
		}
		rules = append(rules, sr)
	}
	return rules, rows.Err()
}

// Create implements rule.RuleRepository.
func (r *ruleRepository) Create(ctx context.Context, sr rule.SpecialRule) (rule.SpecialRule, error) {
	q := GetQuerier(ctx, r.db)

	params, err := json.Marshal(sr.Params)
	if err != nil {
		return rule.SpecialRule{}, fmt.Errorf("failed to encode rule params: %w", err)
	}

	query := `
		INSERT INTO special_rules (id, name, rule_type, scope, start_date, end_date, priority, params)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	sr.ID = uuid.NewString()
	err = q.QueryRow(ctx, query,
		sr.ID, sr.Name, sr.RuleType, sr.Scope,
		sr.StartDate.String(), sr.EndDate.String(), sr.Priority, params,
	).Scan(&sr.CreatedAt)
	if err != nil {
		return rule.SpecialRule{}, fmt.Errorf("failed to create rule: %w", err)
	}
	return sr, nil
}

// Delete implements rule.RuleRepository.
func (r *ruleRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM special_rules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete rule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return rule.ErrRuleNotFound
	}
	return nil
}
