package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wakt-hr/attendance-backend-go/internal/domain/fridaypolicy"
	"github.com/wakt-hr/attendance-backend-go/internal/pkg/database"
)

// settingsRowID is the fixed primary key of the singleton settings row.
const settingsRowID = "friday_policy"

type fridayPolicyRepository struct {
	db *database.DB
}

func NewFridayPolicyRepository(db *database.DB) fridaypolicy.SettingsRepository {
	return &fridayPolicyRepository{db: db}
}

// Get implements fridaypolicy.SettingsRepository. Returns defaults when no
// settings have been saved yet.
func (f *fridayPolicyRepository) Get(ctx context.Context) (fridaypolicy.Settings, error) {
	q := GetQuerier(ctx, f.db)

	query := `SELECT payload, updated_at FROM friday_policy_settings WHERE id = $1`

	var (
		payload  []byte
		settings fridaypolicy.Settings
	)
	err := q.QueryRow(ctx, query, settingsRowID).Scan(&payload, &settings.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fridaypolicy.DefaultSettings(), nil
		}
		return fridaypolicy.Settings{}, fmt.Errorf("failed to get friday policy settings: %w", err)
	}

	updatedAt := settings.UpdatedAt
	if err := json.Unmarshal(payload, &settings); err != nil {
		return fridaypolicy.Settings{}, fmt.Errorf("failed to decode friday policy settings: %w", err)
	}
	settings.UpdatedAt = updatedAt
	return settings, nil
}

// Save implements fridaypolicy.SettingsRepository.
func (f *fridayPolicyRepository) Save(ctx context.Context, settings fridaypolicy.Settings) (fridaypolicy.Settings, error) {
	q := GetQuerier(ctx, f.db)

	payload, err := json.Marshal(settings)
	if err != nil {
		return fridaypolicy.Settings{}, fmt.Errorf("failed to encode friday policy settings: %w", err)
	}

	query := `
		INSERT INTO friday_policy_settings (id, payload)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()
		RETURNING updated_at
	`

	if err := q.QueryRow(ctx, query, settingsRowID, payload).Scan(&settings.UpdatedAt); err != nil {
		return fridaypolicy.Settings{}, fmt.Errorf("failed to save friday policy settings: %w", err)
	}
	return settings, nil
}
