// FILE: internal/dto/auth_dto.go
package dto

import "github.com/google/uuid"

type RegisterRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,min=7,max=32"`
	FullName    string `json:"full_name" validate:"required"`
	Password    string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
	Password    string `json:"password" validate:"required"`
	RememberMe  bool   `json:"remember_me"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

type UserDTO struct {
	Id          uuid.UUID `json:"id"`
	PhoneNumber string    `json:"phone_number"`
	FullName    string    `json:"full_name"`
}

// SessionResponse mirrors the process-wide session the client holds while
// authenticated.
type SessionResponse struct {
	UserId      string `json:"user_id"`
	PhoneNumber string `json:"phone_number"`
	FullName    string `json:"full_name"`
	State       string `json:"state"`
}

type AuthResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token,omitempty"`
	Session      SessionResponse `json:"session"`
	User         UserDTO         `json:"user"`
}
