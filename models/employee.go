package models

// Employee is read-only reference data owned by the directory collection.
type Employee struct {
	EmployeeID   string `bson:"employee_id" json:"employee_id"` // "EMP####" or "ADMIN####"
	Name         string `bson:"name" json:"name"`
	IsAdmin      bool   `bson:"is_admin" json:"is_admin"`
	PasswordHash string `bson:"password_hash" json:"-"`
}
