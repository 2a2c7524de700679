package punch

import "context"

// PunchService defines the punch ingestion boundary. Incoming wall-clock
// strings are normalized to UTC instants here and nowhere else.
type PunchService interface {
	// ImportPunches bulk-inserts punches after normalization
	ImportPunches(ctx context.Context, req ImportPunchesRequest) (ImportPunchesResponse, error)
}
