package contact

import (
	"context"

	"github.com/nekositon/NS-StudioService/internal/domain"
)

// IntakeRepository интерфейс репозитория входящих заявок
type IntakeRepository interface {
	CreateContactMessage(ctx context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
