package employeeRepo

import (
	"context"

	"roomly/models"
)

// EmployeeRepository defines read access to the employee directory.
type EmployeeRepository interface {
	// FindByID returns the employee record, or nil when the ID is unknown.
	FindByID(ctx context.Context, employeeID string) (*models.Employee, error)
	ListAll(ctx context.Context) ([]models.Employee, error)
}
