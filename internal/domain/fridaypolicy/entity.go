package fridaypolicy

import "time"

// Default values applied when settings are missing or invalid.
const (
	DefaultMonthlyMinimumFridays = 2
	DefaultMaxCreditPerMonth     = 3
)

// DefaultAllowedOffDays returns the default consumption window (the first
// three days of the month).
func DefaultAllowedOffDays() []int {
	return []int{1, 2, 3}
}

// Settings is the process-wide Friday policy configuration. It is stored as
// a singleton and loaded explicitly at the start of each engine operation;
// nothing reads it ambiently.
type Settings struct {
	IncludedSectors               []string `json:"includedSectors"`
	MonthlyMinimumFridaysRequired int      `json:"monthlyMinimumFridaysRequired"`
	MaxCreditPerMonth             int      `json:"maxCreditPerMonth"`
	AllowedOffDaysNextMonth       []int    `json:"allowedOffDaysNextMonth"`

	CountBiometricAsWorkedFriday      bool `json:"countBiometricAsWorkedFriday"`
	CountMissionAsWorkedFriday        bool `json:"countMissionAsWorkedFriday"`
	CountPermissionOnlyAsWorkedFriday bool `json:"countPermissionOnlyAsWorkedFriday"`
	CountLeaveAsWorkedFriday          bool `json:"countLeaveAsWorkedFriday"`
	OfficialHolidayFridayCounts       bool `json:"officialHolidayFridayCounts"`
	WeeklyRestFridayCounts            bool `json:"weeklyRestFridayCounts"`

	UpdatedAt time.Time `json:"-"`
}

// DefaultSettings returns the configuration used before an admin has saved
// anything.
func DefaultSettings() Settings {
	return Settings{
		IncludedSectors:               []string{},
		MonthlyMinimumFridaysRequired: DefaultMonthlyMinimumFridays,
		MaxCreditPerMonth:             DefaultMaxCreditPerMonth,
		AllowedOffDaysNextMonth:       DefaultAllowedOffDays(),
		CountBiometricAsWorkedFriday:  true,
		CountMissionAsWorkedFriday:    true,
	}
}

// Normalized coerces invalid values back to defaults: negative numerics
// fall back, off-day numbers outside 1..31 are dropped, an empty off-day
// list falls back, and blank sector names are removed.
func (s Settings) Normalized() Settings {
	out := s

	if out.MonthlyMinimumFridaysRequired < 0 {
		out.MonthlyMinimumFridaysRequired = DefaultMonthlyMinimumFridays
	}
	if out.MaxCreditPerMonth < 0 {
		out.MaxCreditPerMonth = DefaultMaxCreditPerMonth
	}

	days := make([]int, 0, len(out.AllowedOffDaysNextMonth))
	seen := make(map[int]bool)
	for _, d := range out.AllowedOffDaysNextMonth {
		if d < 1 || d > 31 || seen[d] {
			continue
		}
		seen[d] = true
		days = append(days, d)
	}
	if len(days) == 0 {
		days = DefaultAllowedOffDays()
	}
	out.AllowedOffDaysNextMonth = days

	sectors := make([]string, 0, len(out.IncludedSectors))
	for _, sector := range out.IncludedSectors {
		if sector != "" {
			sectors = append(sectors, sector)
		}
	}
	out.IncludedSectors = sectors

	return out
}

// SectorIncluded reports whether a sector participates in the policy.
func (s Settings) SectorIncluded(sector string) bool {
	for _, included := range s.IncludedSectors {
		if included == sector {
			return true
		}
	}
	return false
}
