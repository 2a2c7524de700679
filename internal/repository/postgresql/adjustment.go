package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wakt-hr/attendance-backend-go/internal/domain/adjustment"
	"github.com/wakt-hr/attendance-backend-go/internal/pkg/calendar"
	"github.com/wakt-hr/attendance-backend-go/internal/pkg/database"
)

type adjustmentRepository struct {
	db *database.DB
}

func NewAdjustmentRepository(db *database.DB) adjustment.AdjustmentRepository {
	return &adjustmentRepository{db: db}
}

// List implements adjustment.AdjustmentRepository. Insertion order is
// significant: the evaluator resolves overlapping adjustments first-match.
func (a *adjustmentRepository) List(ctx context.Context) ([]adjustment.Adjustment, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_code, type, start_date, end_date, notes, created_at
		FROM adjustments
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustments: %w", err)
	}
	defer rows.Close()

	var adjustments []adjustment.Adjustment
	for rows.Next() {
		var (
			adj                adjustment.Adjustment
			startDate, endDate string
		)
		if err := rows.Scan(
			&adj.ID, &adj.EmployeeCode, &adj.Type,
			&startDate, &endDate, &adj.Notes, &adj.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan adjustment: %w", err)
		}
		if adj.StartDate, err = calendar.ParseDate(startDate); err != nil {
			return nil, fmt.Errorf("failed to parse adjustment start date: %w", err)
		}
		if adj.EndDate, err = calendar.ParseDate(endDate); err != nil {
			return nil, fmt.Errorf("failed to parse adjustment end date: %w", err)
		}
		adjustments = append(adjustments, adj)
	}
	return adjustments, rows.Err()
}

// Create implements adjustment.AdjustmentRepository.
func (a *adjustmentRepository) Create(ctx context.Context, adj adjustment.Adjustment) (adjustment.Adjustment, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO adjustments (id, employee_code, type, start_date, end_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	adj.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		adj.ID, adj.EmployeeCode, adj.Type,
		adj.StartDate.String(), adj.EndDate.String(), adj.Notes,
	).Scan(&adj.CreatedAt)
	if err != nil {
		return adjustment.Adjustment{}, fmt.Errorf("failed to create adjustment: %w", err)
	}
	return adj, nil
}
