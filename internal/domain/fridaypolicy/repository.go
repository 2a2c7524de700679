package fridaypolicy

import "context"

// SettingsRepository persists the policy configuration singleton.
type SettingsRepository interface {
	// Get retrieves the stored settings, or the defaults when nothing has
	// been saved yet
	Get(ctx context.Context) (Settings, error)

	// Save replaces the stored settings
	Save(ctx context.Context, settings Settings) (Settings, error)
}
