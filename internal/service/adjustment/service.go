package adjustment

import (
	"context"
	"fmt"

	"github.com/wakt-hr/attendance-backend-go/internal/domain/adjustment"
	"github.com/wakt-hr/attendance-backend-go/internal/pkg/calendar"
)

type AdjustmentServiceImpl struct {
	adjustment.AdjustmentRepository
}

func NewAdjustmentService(adjustmentRepository adjustment.AdjustmentRepository) adjustment.AdjustmentService {
	return &AdjustmentServiceImpl{AdjustmentRepository: adjustmentRepository}
}

// ListAdjustments implements adjustment.AdjustmentService.
func (a *AdjustmentServiceImpl) ListAdjustments(ctx context.Context) ([]adjustment.AdjustmentResponse, error) {
	adjustments, err := a.AdjustmentRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustments: %w", err)
	}

	responses := make([]adjustment.AdjustmentResponse, 0, len(adjustments))
	for _, adj := range adjustments {
		responses = append(responses, mapToResponse(adj))
	}
	return responses, nil
}

// CreateAdjustment implements adjustment.AdjustmentService.
func (a *AdjustmentServiceImpl) CreateAdjustment(ctx context.Context, req adjustment.CreateAdjustmentRequest) (adjustment.AdjustmentResponse, error) {
	if err := req.Validate(); err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	start, err := calendar.ParseDate(req.StartDate)
	if err != nil {
		return adjustment.AdjustmentResponse{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	end, err := calendar.ParseDate(req.EndDate)
	if err != nil {
		return adjustment.AdjustmentResponse{}, fmt.Errorf("failed to parse end date: %w", err)
	}

	created, err := a.AdjustmentRepository.Create(ctx, adjustment.Adjustment{
		EmployeeCode: req.EmployeeCode,
		Type:         req.Type,
		StartDate:    start,
		EndDate:      end,
		Notes:        req.Notes,
	})
	if err != nil {
		return adjustment.AdjustmentResponse{}, fmt.Errorf("failed to create adjustment: %w", err)
	}
	return mapToResponse(created), nil
}

func mapToResponse(adj adjustment.Adjustment) adjustment.AdjustmentResponse {
	return adjustment.AdjustmentResponse{
		ID:           adj.ID,
		EmployeeCode: adj.EmployeeCode,
		Type:         adj.Type,
		StartDate:    adj.StartDate.String(),
		EndDate:      adj.EndDate.String(),
		Notes:        adj.Notes,
	}
}
