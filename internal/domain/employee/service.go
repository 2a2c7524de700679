package employee

import "context"

// EmployeeService defines business logic for employee management
type EmployeeService interface {
	// ListEmployees retrieves all employees
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// GetEmployee retrieves a single employee by id
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// CreateEmployee creates a single employee
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// UpdateEmployee applies a partial edit
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// ImportEmployees bulk-inserts employees, silently skipping duplicate codes
	ImportEmployees(ctx context.Context, req ImportEmployeesRequest) (ImportEmployeesResponse, error)
}
