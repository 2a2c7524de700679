package employee

import "time"

// Employee is keyed for business purposes by Code, the natural key used by
// the biometric devices. Employees are never hard-deleted.
type Employee struct {
	ID         string
	Code       string
	Name       string
	Department *string
	Sector     *string
	Branch     *string
	ShiftStart *string // "HH:MM", nil means the configured default applies
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// SectorName returns the employee's sector or "" when unset.
func (e Employee) SectorName() string {
	if e.Sector == nil {
		return ""
	}
	return *e.Sector
}

// DepartmentName returns the employee's department or "" when unset.
func (e Employee) DepartmentName() string {
	if e.Department == nil {
		return ""
	}
	return *e.Department
}
