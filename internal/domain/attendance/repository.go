package attendance

import "context"

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Upsert inserts or replaces the record keyed by (EmployeeCode, Date)
	Upsert(ctx context.Context, rec Record) (Record, error)

	// GetByID retrieves a record by id
	GetByID(ctx context.Context, id string) (Record, error)

	// Update replaces an existing record by id
	Update(ctx context.Context, rec Record) (Record, error)

	// GetRange retrieves all records whose date falls in the inclusive
	// range, unpaginated. The processor and the Friday policy engine use
	// this read path.
	GetRange(ctx context.Context, startDate, endDate string) ([]Record, error)

	// List retrieves records with filters and pagination
	List(ctx context.Context, filter Filter) ([]Record, int64, error)
}
