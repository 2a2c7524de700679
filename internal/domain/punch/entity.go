package punch

import "time"

// BiometricPunch is a single clock event. PunchAt is a real UTC instant;
// the local wall-clock string delivered by the device export is converted
// exactly once, at ingestion, using the client-supplied offset.
type BiometricPunch struct {
	ID           string
	EmployeeCode string
	PunchAt      time.Time
	CreatedAt    time.Time
}
