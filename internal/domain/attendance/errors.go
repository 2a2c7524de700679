package attendance

import "errors"

// Attendance domain errors
var (
	ErrRecordNotFound   = errors.New("attendance record not found")
	ErrInvalidDateRange = errors.New("invalid date range")
)
