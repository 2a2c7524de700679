package fridaypolicy

import (
	"github.com/wakt-hr/attendance-backend-go/internal/pkg/validator"
)

// UpdateSettingsRequest carries a full replacement of the policy settings.
// Invalid or missing numeric and list values are not rejected; they coerce
// to defaults through Normalized when the request becomes a Settings value.
type UpdateSettingsRequest struct {
	IncludedSectors               []string `json:"includedSectors"`
	MonthlyMinimumFridaysRequired *int     `json:"monthlyMinimumFridaysRequired,omitempty"`
	MaxCreditPerMonth             *int     `json:"maxCreditPerMonth,omitempty"`
	AllowedOffDaysNextMonth       []int    `json:"allowedOffDaysNextMonth"`

	CountBiometricAsWorkedFriday      bool `json:"countBiometricAsWorkedFriday"`
	CountMissionAsWorkedFriday        bool `json:"countMissionAsWorkedFriday"`
	CountPermissionOnlyAsWorkedFriday bool `json:"countPermissionOnlyAsWorkedFriday"`
	CountLeaveAsWorkedFriday          bool `json:"countLeaveAsWorkedFriday"`
	OfficialHolidayFridayCounts       bool `json:"officialHolidayFridayCounts"`
	WeeklyRestFridayCounts            bool `json:"weeklyRestFridayCounts"`
}

// ToSettings converts the request into a normalized Settings value.
// Negative numerics fall back to defaults and out-of-range off-day numbers
// are dropped, so a malformed request still yields usable settings.
func (r *UpdateSettingsRequest) ToSettings() Settings {
	s := Settings{
		IncludedSectors:                   r.IncludedSectors,
		MonthlyMinimumFridaysRequired:     DefaultMonthlyMinimumFridays,
		MaxCreditPerMonth:                 DefaultMaxCreditPerMonth,
		AllowedOffDaysNextMonth:           r.AllowedOffDaysNextMonth,
		CountBiometricAsWorkedFriday:      r.CountBiometricAsWorkedFriday,
		CountMissionAsWorkedFriday:        r.CountMissionAsWorkedFriday,
		CountPermissionOnlyAsWorkedFriday: r.CountPermissionOnlyAsWorkedFriday,
		CountLeaveAsWorkedFriday:          r.CountLeaveAsWorkedFriday,
		OfficialHolidayFridayCounts:       r.OfficialHolidayFridayCounts,
		WeeklyRestFridayCounts:            r.WeeklyRestFridayCounts,
	}
	if r.MonthlyMinimumFridaysRequired != nil {
		s.MonthlyMinimumFridaysRequired = *r.MonthlyMinimumFridaysRequired
	}
	if r.MaxCreditPerMonth != nil {
		s.MaxCreditPerMonth = *r.MaxCreditPerMonth
	}
	return s.Normalized()
}

// ReportRequest selects the report month. Friday evidence is evaluated over
// the month before it; credit consumption over the month itself.
type ReportRequest struct {
	Month string `json:"month"` // YYYY-MM
}

func (r *ReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// FridayDetail explains how one prior-month Friday scored.
type FridayDetail struct {
	Date    string `json:"date"`
	Counted bool   `json:"counted"`
	Reason  string `json:"reason"`
}

// UsageDetail records one credit consumption event in the report month.
type UsageDetail struct {
	Date   string `json:"date"`
	Action string `json:"action"`
	Reason string `json:"reason"`
}

// EmployeeReport is the per-employee policy outcome for one month.
type EmployeeReport struct {
	EmployeeCode                   string         `json:"employeeCode"`
	EmployeeName                   string         `json:"employeeName"`
	Sector                         string         `json:"sector"`
	EligibleWorkedFridays          int            `json:"eligibleWorkedFridays"`
	CreditGranted                  int            `json:"creditGranted"`
	UsedDaysCount                  int            `json:"usedDaysCount"`
	RemainingCredit                int            `json:"remainingCredit"`
	TotalFridayPolicyDeductionDays int            `json:"totalFridayPolicyDeductionDays"`
	FridayDetails                  []FridayDetail `json:"fridayDetails"`
	UsageDetails                   []UsageDetail  `json:"usageDetails"`
}

// Report is the full monthly Friday policy report.
type Report struct {
	Month         string           `json:"month"`
	EvidenceMonth string           `json:"evidenceMonth"`
	Settings      Settings         `json:"settings"`
	Employees     []EmployeeReport `json:"employees"`
}
