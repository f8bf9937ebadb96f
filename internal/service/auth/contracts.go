package auth

import (
	"context"
	"time"

	"github.com/nekositon/NS-StudioService/internal/domain"
	"github.com/nekositon/NS-StudioService/internal/infra/sessioncache"
	"github.com/nekositon/NS-StudioService/pkg/authtoken"
)

// UserRepository интерфейс репозитория учетных записей
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// IntakeRepository интерфейс репозитория входящих заявок
type IntakeRepository interface {
	CreatePasswordResetRequest(ctx context.Context, req *domain.PasswordResetRequest) (*domain.PasswordResetRequest, error)
	CreateAdminAccessRequest(ctx context.Context, req *domain.AdminAccessRequest) (*domain.AdminAccessRequest, error)
}

// SessionCache интерфейс кеша сессий авторизации
type SessionCache interface {
	SaveAuthSession(ctx context.Context, tokenHash string, session sessioncache.AuthSession, ttl time.Duration) error
	GetAuthSession(ctx context.Context, tokenHash string) (*sessioncache.AuthSession, error)
	DeleteAuthSession(ctx context.Context, tokenHash string) error
}

// TokenManager интерфейс менеджера JWT токенов
type TokenManager interface {
	Issue(claims authtoken.Claims) (string, error)
	Verify(token string) (*authtoken.Claims, error)
	TTL() time.Duration
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
