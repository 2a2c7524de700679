package fridaypolicy

import (
	"context"
	"fmt"

	"github.com/wakt-hr/attendance-backend-go/internal/domain/adjustment"
	"github.com/wakt-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/wakt-hr/attendance-backend-go/internal/domain/employee"
	"github.com/wakt-hr/attendance-backend-go/internal/domain/fridaypolicy"
)

type FridayPolicyServiceImpl struct {
	fridaypolicy.SettingsRepository
	employee.EmployeeRepository
	attendance.AttendanceRepository
	adjustment.AdjustmentRepository
}

func NewFridayPolicyService(
	settingsRepository fridaypolicy.SettingsRepository,
	employeeRepository employee.EmployeeRepository,
	attendanceRepository attendance.AttendanceRepository,
	adjustmentRepository adjustment.AdjustmentRepository,
) fridaypolicy.FridayPolicyService {
	return &FridayPolicyServiceImpl{
		SettingsRepository:   settingsRepository,
		EmployeeRepository:   employeeRepository,
		AttendanceRepository: attendanceRepository,
		AdjustmentRepository: adjustmentRepository,
	}
}

// GetSettings implements fridaypolicy.FridayPolicyService.
func (f *FridayPolicyServiceImpl) GetSettings(ctx context.Context) (fridaypolicy.Settings, error) {
	settings, err := f.SettingsRepository.Get(ctx)
	if err != nil {
		return fridaypolicy.Settings{}, fmt.Errorf("failed to load friday policy settings: %w", err)
	}
	return settings.Normalized(), nil
}

// UpdateSettings implements fridaypolicy.FridayPolicyService.
func (f *FridayPolicyServiceImpl) UpdateSettings(ctx context.Context, req fridaypolicy.UpdateSettingsRequest) (fridaypolicy.Settings, error) {
	saved, err := f.SettingsRepository.Save(ctx, req.ToSettings())
	if err != nil {
		return fridaypolicy.Settings{}, fmt.Errorf("failed to save friday policy settings: %w", err)
	}
	return saved, nil
}
