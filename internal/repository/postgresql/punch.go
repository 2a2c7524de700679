package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wakt-hr/attendance-backend-go/internal/domain/punch"
	"github.com/wakt-hr/attendance-backend-go/internal/pkg/database"
)

type punchRepository struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepository{db: db}
}

// Create implements punch.PunchRepository.
func (p *punchRepository) Create(ctx context.Context, bp punch.BiometricPunch) (punch.BiometricPunch, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO biometric_punches (id, employee_code, punch_at)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`

	bp.ID = uuid.NewString()
	err := q.QueryRow(ctx, query, bp.ID, bp.EmployeeCode, bp.PunchAt.UTC()).Scan(&bp.CreatedAt)
	if err != nil {
		return punch.BiometricPunch{}, fmt.Errorf("failed to create punch: %w", err)
	}
	return bp, nil
}

// CreateBulk implements punch.PunchRepository.
func (p *punchRepository) CreateBulk(ctx context.Context, punches []punch.BiometricPunch) ([]punch.BiometricPunch, error) {
	var inserted []punch.BiometricPunch
	err := WithTransaction(ctx, p.db, func(ctx context.Context) error {
		for _, bp := range punches {
			created, err := p.Create(ctx, bp)
			if err != nil {
				return err
			}
			inserted = append(inserted, created)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to import punches: %w", err)
	}
	return inserted, nil
}

// ListBetween implements punch.PunchRepository.
func (p *punchRepository) ListBetween(ctx context.Context, utcStart, utcEnd time.Time) ([]punch.BiometricPunch, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, employee_code, punch_at, created_at
		FROM biometric_punches
		WHERE punch_at BETWEEN $1 AND $2
		ORDER BY punch_at
	`

	rows, err := q.Query(ctx, query, utcStart.UTC(), utcEnd.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}
	defer rows.Close()

	var punches []punch.BiometricPunch
	for rows.Next() {
		var bp punch.BiometricPunch
		if err := rows.Scan(&bp.ID, &bp.EmployeeCode, &bp.PunchAt, &bp.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		bp.PunchAt = bp.PunchAt.UTC()
		punches = append(punches, bp)
	}
	return punches, rows.Err()
}
