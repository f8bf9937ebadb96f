package profile

import (
	"context"

	"github.com/nekositon/NS-StudioService/internal/domain"
)

// UserRepository интерфейс репозитория учетных записей
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, username, email, phone string) error
	UpdateAvatarURL(ctx context.Context, id string, avatarURL string) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// MediaStore интерфейс хранилища медиафайлов
type MediaStore interface {
	Upload(ctx context.Context, localPath, folder, publicID string) (string, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
