package catalog

import (
	"context"

	"github.com/nekositon/NS-StudioService/internal/domain"
)

// ServiceRepository интерфейс репозитория каталога услуг
type ServiceRepository interface {
	GetAll(ctx context.Context) ([]*domain.Service, error)
	GetByTitle(ctx context.Context, title string) (*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
