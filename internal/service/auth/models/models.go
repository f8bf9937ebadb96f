package models

import (
	"time"

	"github.com/nekositon/NS-StudioService/internal/domain"
)

// Request модели

// SignUpRequest запрос на регистрацию учетной записи
type SignUpRequest struct {
	Name               string `json:"name"`
	Username           string `json:"username"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	Password           string `json:"password"`
	RequestAdminAccess bool   `json:"requestAdminAccess,omitempty"`
}

// SignInRequest запрос на вход
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PasswordResetRequest запрос на сброс пароля
type PasswordResetRequest struct {
	Email string `json:"email"`
}

// Response модели

// UserResponse публичные данные учетной записи
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	AvatarURL *string   `json:"avatarUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// SessionResponse ответ с токеном и данными пользователя
type SessionResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// SignUpResponse ответ на регистрацию
type SignUpResponse struct {
	User                 UserResponse `json:"user"`
	AdminAccessRequested bool         `json:"adminAccessRequested"`
}

// PasswordResetResponse ответ на запрос сброса пароля
type PasswordResetResponse struct {
	Accepted bool `json:"accepted"`
}

// Методы конвертации

// FromDomainUser конвертирует domain модель в DTO
func FromDomainUser(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Username:  u.Username,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      string(u.Role),
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
	}
}
