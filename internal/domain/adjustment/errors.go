package adjustment

import "errors"

// Adjustment domain errors
var (
	ErrAdjustmentNotFound = errors.New("adjustment not found")
)
