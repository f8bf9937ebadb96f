package booking_wizard

import (
	"context"
	"time"

	"github.com/nekositon/NS-StudioService/internal/domain"
)

// WizardCache интерфейс кеша состояния мастера
type WizardCache interface {
	SaveWizardState(ctx context.Context, sessionID string, state []byte, ttl time.Duration) error
	GetWizardState(ctx context.Context, sessionID string) ([]byte, error)
	DeleteWizardState(ctx context.Context, sessionID string) error
}

// ServiceRepository интерфейс репозитория каталога услуг
type ServiceRepository interface {
	GetAll(ctx context.Context) ([]*domain.Service, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// MediaStore интерфейс хранилища медиафайлов
type MediaStore interface {
	Upload(ctx context.Context, localPath, folder, publicID string) (string, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
