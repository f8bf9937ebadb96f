package create_contact_message

import (
	"context"

	"github.com/nekositon/NS-StudioService/internal/service/contact/models"
)

type ContactService interface {
	SubmitMessage(ctx context.Context, req *models.SubmitMessageRequest) (*models.MessageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
