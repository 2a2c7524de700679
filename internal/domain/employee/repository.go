package employee

import "context"

// EmployeeRepository defines data access methods for employees.
type EmployeeRepository interface {
	// List retrieves all employees
	List(ctx context.Context) ([]Employee, error)

	// GetByID retrieves an employee by id
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByCode retrieves an employee by its natural key
	GetByCode(ctx context.Context, code string) (Employee, error)

	// Create inserts a new employee
	Create(ctx context.Context, emp Employee) (Employee, error)

	// Update applies a partial update to an existing employee
	Update(ctx context.Context, emp Employee) (Employee, error)

	// CreateBulk inserts many employees, skipping duplicate codes.
	// Returns the employees actually inserted.
	CreateBulk(ctx context.Context, emps []Employee) ([]Employee, error)
}
