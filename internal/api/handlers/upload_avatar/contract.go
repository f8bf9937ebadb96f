package upload_avatar

import (
	"context"

	"github.com/nekositon/NS-StudioService/internal/service/profile/models"
)

type ProfileService interface {
	UploadAvatar(ctx context.Context, userID string, localPath string) (*models.AvatarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
