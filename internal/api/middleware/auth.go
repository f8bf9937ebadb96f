package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/nekositon/NS-StudioService/internal/api/handlers"
	"github.com/nekositon/NS-StudioService/internal/domain"
	"github.com/nekositon/NS-StudioService/internal/infra/sessioncache"
	"github.com/nekositon/NS-StudioService/pkg/authtoken"
)

const (
	msgMissingToken   = "требуется авторизация"
	msgInvalidSession = "сессия недействительна или истекла"
	msgAdminOnly      = "доступно только администратору"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	roleKey
	tokenKey
)

// TokenVerifier интерфейс проверки JWT токенов
type TokenVerifier interface {
	Verify(token string) (*authtoken.Claims, error)
}

// SessionChecker интерфейс проверки живых сессий
type SessionChecker interface {
	GetAuthSession(ctx context.Context, tokenHash string) (*sessioncache.AuthSession, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth возвращает middleware аутентификации по Bearer JWT
// Токен должен быть валиден и иметь живую сессию в кеше - выход из
// системы отзывает токен до истечения его срока жизни
func Auth(tokens TokenVerifier, sessions SessionChecker, log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				log.Warn("Auth: invalid token: %v", err)
				handlers.RespondUnauthorized(w, msgInvalidSession)
				return
			}

			if _, err := sessions.GetAuthSession(r.Context(), authtoken.Hash(token)); err != nil {
				log.Warn("Auth: no live session for user=%s: %v", claims.UserID, err)
				handlers.RespondUnauthorized(w, msgInvalidSession)
				return
			}

			role, ok := domain.ParseRole(claims.Role)
			if !ok {
				log.Warn("Auth: unknown role=%s for user=%s", claims.Role, claims.UserID)
				handlers.RespondUnauthorized(w, msgInvalidSession)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			ctx = context.WithValue(ctx, roleKey, role)
			ctx = context.WithValue(ctx, tokenKey, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin возвращает middleware, пропускающий только администраторов
// Роль сверяется по закрытому множеству, а не по строке
func RequireAdmin(log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRole(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			switch role {
			case domain.RoleAdmin:
				next.ServeHTTP(w, r)
			case domain.RoleClient:
				log.Warn("RequireAdmin: client role denied for %s %s", r.Method, r.URL.Path)
				handlers.RespondForbidden(w, msgAdminOnly)
			default:
				log.Warn("RequireAdmin: unknown role %q denied", role)
				handlers.RespondForbidden(w, msgAdminOnly)
			}
		})
	}
}

// GetUserID возвращает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// GetRole возвращает роль пользователя из контекста запроса
func GetRole(ctx context.Context) (domain.Role, bool) {
	role, ok := ctx.Value(roleKey).(domain.Role)
	return role, ok
}

// GetToken возвращает исходный Bearer токен из контекста запроса
func GetToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
