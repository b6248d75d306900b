package employee

import (
	"context"
	"errors"
	"testing"

	"roomly/models"
)

// fakeDirectory is an in-memory EmployeeRepository that counts lookups.
type fakeDirectory struct {
	employees map[string]*models.Employee
	findCalls int
	err       error
}

func (d *fakeDirectory) FindByID(_ context.Context, employeeID string) (*models.Employee, error) {
	d.findCalls++
	if d.err != nil {
		return nil, d.err
	}
	emp, ok := d.employees[employeeID]
	if !ok {
		return nil, nil
	}
	found := *emp
	return &found, nil
}

func (d *fakeDirectory) ListAll(_ context.Context) ([]models.Employee, error) {
	if d.err != nil {
		return nil, d.err
	}
	var out []models.Employee
	for _, emp := range d.employees {
		out = append(out, *emp)
	}
	return out, nil
}

func newTestDirectory() *fakeDirectory {
	return &fakeDirectory{employees: map[string]*models.Employee{
		"EMP0042":   {EmployeeID: "EMP0042", Name: "Asha Patel"},
		"ADMIN0001": {EmployeeID: "ADMIN0001", Name: "Site Admin", IsAdmin: true},
	}}
}

func TestValidIDFormat(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"EMP0042", true},
		{"ADMIN0001", true},
		{"EMP12", false},
		{"EMP00042", false},
		{"emp0042", false},
		{"MGR0001", false},
		{"EMP004A", false},
		{" EMP0042", false},
		{"EMP0042 ", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidIDFormat(tt.id); got != tt.want {
			t.Errorf("ValidIDFormat(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	directory := newTestDirectory()
	svc := &DefaultEmployeeService{Repo: directory}

	emp, err := svc.Validate(context.Background(), "EMP0042")
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if emp.Name != "Asha Patel" {
		t.Errorf("Name = %q, want Asha Patel", emp.Name)
	}
	if emp.IsAdmin {
		t.Error("regular employee resolved as admin")
	}

	admin, err := svc.Validate(context.Background(), "ADMIN0001")
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !admin.IsAdmin {
		t.Error("admin record lost its role flag")
	}
}

func TestValidateFormatCheckedBeforeLookup(t *testing.T) {
	directory := newTestDirectory()
	svc := &DefaultEmployeeService{Repo: directory}

	_, err := svc.Validate(context.Background(), "EMP12")
	var invalid InvalidIDError
	if !errors.As(err, &invalid) {
		t.Fatalf("Validate error = %v, want InvalidIDError", err)
	}
	if directory.findCalls != 0 {
		t.Errorf("directory consulted %d times for a malformed ID, want 0", directory.findCalls)
	}
}

func TestValidateUnknownEmployee(t *testing.T) {
	svc := &DefaultEmployeeService{Repo: newTestDirectory()}

	_, err := svc.Validate(context.Background(), "EMP9999")
	var unauthorized UnauthorizedError
	if !errors.As(err, &unauthorized) {
		t.Fatalf("Validate error = %v, want UnauthorizedError", err)
	}
}

func TestValidateDirectoryFailure(t *testing.T) {
	wantErr := errors.New("connection reset")
	svc := &DefaultEmployeeService{Repo: &fakeDirectory{err: wantErr}}

	_, err := svc.Validate(context.Background(), "EMP0042")
	if !errors.Is(err, wantErr) {
		t.Fatalf("Validate error = %v, want wrapped %v", err, wantErr)
	}
	var invalid InvalidIDError
	if errors.As(err, &invalid) {
		t.Error("directory failure misreported as an invalid ID")
	}
}

func TestIsAdminID(t *testing.T) {
	if !IsAdminID("ADMIN0001") {
		t.Error("IsAdminID(ADMIN0001) = false")
	}
	if IsAdminID("EMP0042") {
		t.Error("IsAdminID(EMP0042) = true")
	}
}
