package employee

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"roomly/models"
)

// Identifier format: literal EMP or ADMIN prefix plus exactly four digits,
// case-sensitive.
var employeeIDPattern = regexp.MustCompile(`^(EMP|ADMIN)\d{4}$`)

// ValidIDFormat reports whether the identifier matches the required format.
func ValidIDFormat(employeeID string) bool {
	return employeeIDPattern.MatchString(employeeID)
}

// Validate checks the identifier format before any directory lookup, then
// resolves the employee against the directory.
func (s *DefaultEmployeeService) Validate(ctx context.Context, employeeID string) (*models.Employee, error) {
	if !ValidIDFormat(employeeID) {
		return nil, InvalidIDError{ID: employeeID}
	}
	emp, err := s.Repo.FindByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("directory lookup for %s: %w", employeeID, err)
	}
	if emp == nil {
		return nil, UnauthorizedError{ID: employeeID}
	}
	return emp, nil
}

// IsAdminID reports whether the identifier carries the elevated-role prefix.
// The authoritative role flag lives on the directory record; this is the
// fallback when only the identifier is at hand.
func IsAdminID(employeeID string) bool {
	return strings.HasPrefix(employeeID, "ADMIN")
}

// Directory returns all employees known to the directory.
func (s *DefaultEmployeeService) Directory(ctx context.Context) ([]models.Employee, error) {
	return s.Repo.ListAll(ctx)
}
