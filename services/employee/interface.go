package employee

import (
	"context"

	employeeRepo "roomly/database/repository/employee"
	"roomly/models"

	"github.com/go-redis/redis/v8"
)

// AuthResponse is returned on successful login.
type AuthResponse struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	IsAdmin    bool   `json:"is_admin"`
	Token      string `json:"token"`
}

// EmployeeService validates employee identities against the directory and
// handles credential authentication.
type EmployeeService interface {
	// Validate checks identifier format and existence and returns the
	// resolved employee record.
	Validate(ctx context.Context, employeeID string) (*models.Employee, error)
	Login(ctx context.Context, employeeID, password string) (*AuthResponse, error)
	Directory(ctx context.Context) ([]models.Employee, error)
}

// DefaultEmployeeService implements EmployeeService.
type DefaultEmployeeService struct {
	Repo      employeeRepo.EmployeeRepository
	AuthCache *redis.Client
}
