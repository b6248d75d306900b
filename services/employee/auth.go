package employee

import (
	"context"
	"fmt"
	"time"

	"roomly/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// Login verifies the employee's credential and issues a signed token. The
// token hash is cached so the auth middleware can validate without a
// directory round trip.
func (s *DefaultEmployeeService) Login(ctx context.Context, employeeID, password string) (*AuthResponse, error) {
	emp, err := s.Validate(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid employee ID or password")
	}

	token, err := utils.GenerateToken(emp.EmployeeID, tokenTTL)
	if err != nil {
		utils.GetLogger().Error("Login: failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	if s.AuthCache != nil {
		cacheKey := utils.AuthCachePrefix + emp.EmployeeID
		if err := s.AuthCache.Set(ctx, cacheKey, utils.HashToken(token), tokenTTL).Err(); err != nil {
			utils.GetLogger().Warn("Login: failed to cache token hash", zap.Error(err))
		}
	}

	return &AuthResponse{
		EmployeeID: emp.EmployeeID,
		Name:       emp.Name,
		IsAdmin:    emp.IsAdmin,
		Token:      token,
	}, nil
}
