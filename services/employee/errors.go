package employee

import "fmt"

// InvalidIDError signals a malformed employee identifier. User-correctable.
type InvalidIDError struct {
	ID string
}

func (e InvalidIDError) Error() string {
	return fmt.Sprintf("invalid employee ID %q: must be in the form EMPxxxx or ADMINxxxx", e.ID)
}

// UnauthorizedError signals a well-formed identifier unknown to the directory.
type UnauthorizedError struct {
	ID string
}

func (e UnauthorizedError) Error() string {
	return fmt.Sprintf("unauthorized: employee ID %s not found in system", e.ID)
}
