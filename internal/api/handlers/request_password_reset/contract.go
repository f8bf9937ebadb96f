package request_password_reset

import (
	"context"

	"github.com/nekositon/NS-StudioService/internal/service/auth/models"
)

type AuthService interface {
	RequestPasswordReset(ctx context.Context, req *models.PasswordResetRequest) (*models.PasswordResetResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
