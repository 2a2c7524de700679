package adjustment

import "context"

// AdjustmentRepository defines data access methods for adjustments.
type AdjustmentRepository interface {
	// List retrieves all adjustments in insertion order
	List(ctx context.Context) ([]Adjustment, error)

	// Create inserts a new adjustment
	Create(ctx context.Context, adj Adjustment) (Adjustment, error)
}
