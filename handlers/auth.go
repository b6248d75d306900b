package handlers

import (
	"net/http"

	"roomly/services/employee"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes login and directory endpoints.
type AuthHandler struct {
	Employees employee.EmployeeService
}

func NewAuthHandler(svc employee.EmployeeService) *AuthHandler {
	return &AuthHandler{Employees: svc}
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var input struct {
		EmployeeID string `json:"employee_id"`
		Password   string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "reason": "invalid input", "details": err.Error()})
		return
	}

	auth, err := h.Employees.Login(c.Request.Context(), input.EmployeeID, input.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "auth": auth})
}

// ListEmployeesHandler handles GET /api/employees, returning public directory
// fields only.
func (h *AuthHandler) ListEmployeesHandler(c *gin.Context) {
	employees, err := h.Employees.Directory(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	type entry struct {
		EmployeeID string `json:"employee_id"`
		Name       string `json:"name"`
	}
	out := make([]entry, 0, len(employees))
	for _, e := range employees {
		out = append(out, entry{EmployeeID: e.EmployeeID, Name: e.Name})
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "employees": out})
}
