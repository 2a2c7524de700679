package adjustment

import "context"

// AdjustmentService defines business logic for adjustment management
type AdjustmentService interface {
	// ListAdjustments retrieves all adjustments
	ListAdjustments(ctx context.Context) ([]AdjustmentResponse, error)

	// CreateAdjustment creates a new adjustment
	CreateAdjustment(ctx context.Context, req CreateAdjustmentRequest) (AdjustmentResponse, error)
}
