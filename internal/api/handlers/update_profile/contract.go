package update_profile

import (
	"context"

	"github.com/nekositon/NS-StudioService/internal/service/profile/models"
)

type ProfileService interface {
	Update(ctx context.Context, req *models.UpdateProfileRequest) (*models.ProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
