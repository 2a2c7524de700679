package attendance

import (
	"time"
)

// Statuses a day can resolve to.
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
	StatusLate    = "Late"
	StatusExcused = "Excused"
)

// Penalty kinds.
const (
	PenaltyLate    = "late"
	PenaltyAbsence = "absence"
)

// Penalty is one deduction applied to a day. Value is expressed in days
// (1 = a full day's pay).
type Penalty struct {
	Type    string  `json:"type"`
	Value   float64 `json:"value"`
	Minutes int     `json:"minutes,omitempty"`
}

// Record is one employee's reconciled attendance for one local calendar
// day. Exactly one record exists per (EmployeeCode, Date); the processor
// upserts on that key.
//
// Once FridayCompLeaveManual is set a human has overridden the automatic
// Friday flag, and reprocessing must carry the stored FridayCompLeave value
// forward instead of recomputing it.
type Record struct {
	ID                       string
	EmployeeCode             string
	Date                     string // YYYY-MM-DD local calendar date
	CheckIn                  *time.Time
	CheckOut                 *time.Time
	TotalHours               float64
	OvertimeHours            float64
	Status                   string
	Penalties                []Penalty
	IsOvernight              bool
	FridayCompLeave          bool
	FridayCompLeaveManual    bool
	FridayCompLeaveNote      *string
	FridayCompLeaveUpdatedBy *string
	CreatedAt                time.Time
	UpdatedAt                time.Time

	// DTO
	EmployeeName *string
}
