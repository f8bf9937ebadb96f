package get_session

import (
	"context"

	"github.com/nekositon/NS-StudioService/internal/service/auth/models"
)

type AuthService interface {
	CurrentSession(ctx context.Context, token string) (*models.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
