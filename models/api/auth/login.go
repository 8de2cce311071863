package authapimodels

import (
	"strings"

	"github.com/pkg/errors"
	"office-tools-backend/models"
)

type RegisterRequest struct {
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Password     string          `json:"password"`
	Role         models.UserRole `json:"role"`
	DepartmentID *string         `json:"departmentId"`
}

func (r RegisterRequest) Validate() error {
	if r.Name == "" || r.Email == "" || r.Password == "" {
		return errors.New("Missing required fields")
	}
	if !strings.Contains(r.Email, "@") {
		return errors.New("Invalid email")
	}
	if r.Role != "" && !r.Role.Valid() {
		return errors.New("Invalid role")
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if r.Email == "" || r.Password == "" {
		return errors.New("Missing email or password")
	}
	return nil
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Code        string `json:"code"`
	NewPassword string `json:"newPassword"`
}

func (r ResetPasswordRequest) Validate() error {
	if r.Code == "" || r.NewPassword == "" {
		return errors.New("Missing code or newPassword")
	}
	return nil
}

type AuthUser struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Role         models.UserRole `json:"role"`
	DepartmentID *string         `json:"departmentId"`
}

type TokenResponse struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}
