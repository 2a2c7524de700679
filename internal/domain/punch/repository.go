package punch

import (
	"context"
	"time"
)

// PunchRepository defines data access methods for biometric punches.
// Punches are immutable once created.
type PunchRepository interface {
	// Create inserts a single punch
	Create(ctx context.Context, p BiometricPunch) (BiometricPunch, error)

	// CreateBulk inserts many punches
	CreateBulk(ctx context.Context, punches []BiometricPunch) ([]BiometricPunch, error)

	// ListBetween retrieves punches whose instant falls inside the
	// inclusive UTC window
	ListBetween(ctx context.Context, utcStart, utcEnd time.Time) ([]BiometricPunch, error)
}
