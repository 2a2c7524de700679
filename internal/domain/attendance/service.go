package attendance

import "context"

// AttendanceService defines the reconciliation engine's public surface.
type AttendanceService interface {
	// ProcessRange reconciles every employee against every day in the
	// inclusive local date range, upserting one record per employee/day
	ProcessRange(ctx context.Context, req ProcessRequest) (ProcessResponse, error)

	// ListAttendance retrieves processed records with pagination
	ListAttendance(ctx context.Context, filter Filter) (ListResponse, error)

	// ToggleFridayCompLeave manually overrides the Friday compensatory
	// leave flag on a single record. Idempotent under repeated calls.
	ToggleFridayCompLeave(ctx context.Context, req ToggleFridayCompLeaveRequest) (RecordResponse, error)
}
