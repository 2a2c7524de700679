package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/wakt-hr/attendance-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{EmployeeRepository: employeeRepository}
}

// ListEmployees implements employee.EmployeeService.
func (e *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := e.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapToResponse(emp))
	}
	return responses, nil
}

// GetEmployee implements employee.EmployeeService.
func (e *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := e.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return mapToResponse(emp), nil
}

// CreateEmployee implements employee.EmployeeService.
func (e *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := e.EmployeeRepository.GetByCode(ctx, req.Code); err == nil {
		return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee code: %w", err)
	}

	created, err := e.EmployeeRepository.Create(ctx, employee.Employee{
		Code:       req.Code,
		Name:       req.Name,
		Department: req.Department,
		Sector:     req.Sector,
		Branch:     req.Branch,
		ShiftStart: req.ShiftStart,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return mapToResponse(created), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (e *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := e.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Department != nil {
		emp.Department = req.Department
	}
	if req.Sector != nil {
		emp.Sector = req.Sector
	}
	if req.Branch != nil {
		emp.Branch = req.Branch
	}
	if req.ShiftStart != nil {
		emp.ShiftStart = req.ShiftStart
	}

	updated, err := e.EmployeeRepository.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return mapToResponse(updated), nil
}

// ImportEmployees implements employee.EmployeeService. Duplicate codes are
// skipped, both within the batch and against existing rows.
func (e *EmployeeServiceImpl) ImportEmployees(ctx context.Context, req employee.ImportEmployeesRequest) (employee.ImportEmployeesResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.ImportEmployeesResponse{}, err
	}

	seen := make(map[string]bool, len(req.Employees))
	batch := make([]employee.Employee, 0, len(req.Employees))
	for _, in := range req.Employees {
		if seen[in.Code] {
			continue
		}
		seen[in.Code] = true
		batch = append(batch, employee.Employee{
			Code:       in.Code,
			Name:       in.Name,
			Department: in.Department,
			Sector:     in.Sector,
			Branch:     in.Branch,
			ShiftStart: in.ShiftStart,
		})
	}

	inserted, err := e.EmployeeRepository.CreateBulk(ctx, batch)
	if err != nil {
		return employee.ImportEmployeesResponse{}, fmt.Errorf("failed to import employees: %w", err)
	}
	return employee.ImportEmployeesResponse{Count: len(inserted)}, nil
}

func mapToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:         emp.ID,
		Code:       emp.Code,
		Name:       emp.Name,
		Department: emp.Department,
		Sector:     emp.Sector,
		Branch:     emp.Branch,
		ShiftStart: emp.ShiftStart,
	}
}
