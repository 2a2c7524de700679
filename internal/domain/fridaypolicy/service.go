package fridaypolicy

import "context"

// FridayPolicyService manages policy settings and builds monthly reports.
type FridayPolicyService interface {
	// GetSettings returns stored settings, falling back to defaults
	GetSettings(ctx context.Context) (Settings, error)

	// UpdateSettings replaces the policy configuration
	UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (Settings, error)

	// BuildReport computes the monthly report for every employee in the
	// included sectors
	BuildReport(ctx context.Context, req ReportRequest) (Report, error)
}
