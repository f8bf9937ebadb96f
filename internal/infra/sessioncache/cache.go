package sessioncache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	authSessionPrefix   = "authSession:"
	wizardSessionPrefix = "wizardSession:"
)

// AuthSession хранимое в Redis состояние авторизованной сессии пользователя
type AuthSession struct {
	UserID        string    `json:"userId"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// Cache обертка над Redis для сессий авторизации и состояния мастера бронирования
type Cache struct {
	client *redis.Client
}

// NewCache создает новый экземпляр кеша сессий
func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// SaveAuthSession сохраняет сессию авторизации с TTL, ключ - хеш JWT токена
func (c *Cache) SaveAuthSession(ctx context.Context, tokenHash string, session AuthSession, ttl time.Duration) error {
	session.LastUpdatedAt = time.Now()

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("%w: SaveAuthSession - marshal session: %v", ErrEncodeSession, err)
	}

	if err := c.client.Set(ctx, authSessionPrefix+tokenHash, data, ttl).Err(); err != nil {
		return fmt.Errorf("%w: SaveAuthSession - set key: %v", ErrCacheUnavailable, err)
	}

	return nil
}

// GetAuthSession возвращает сессию авторизации по хешу токена
func (c *Cache) GetAuthSession(ctx context.Context, tokenHash string) (*AuthSession, error) {
	data, err := c.client.Get(ctx, authSessionPrefix+tokenHash).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: GetAuthSession - get key: %v", ErrCacheUnavailable, err)
	}

	var session AuthSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("%w: GetAuthSession - unmarshal session: %v", ErrDecodeSession, err)
	}

	return &session, nil
}

// DeleteAuthSession удаляет сессию авторизации
func (c *Cache) DeleteAuthSession(ctx context.Context, tokenHash string) error {
	if err := c.client.Del(ctx, authSessionPrefix+tokenHash).Err(); err != nil {
		return fmt.Errorf("%w: DeleteAuthSession - del key: %v", ErrCacheUnavailable, err)
	}
	return nil
}

// SaveWizardState сохраняет сериализованное состояние мастера бронирования с TTL
func (c *Cache) SaveWizardState(ctx context.Context, sessionID string, state []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, wizardSessionPrefix+sessionID, state, ttl).Err(); err != nil {
		return fmt.Errorf("%w: SaveWizardState - set key: %v", ErrCacheUnavailable, err)
	}
	return nil
}

// GetWizardState возвращает сериализованное состояние мастера бронирования
func (c *Cache) GetWizardState(ctx context.Context, sessionID string) ([]byte, error) {
	data, err := c.client.Get(ctx, wizardSessionPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: GetWizardState - get key: %v", ErrCacheUnavailable, err)
	}
	return data, nil
}

// DeleteWizardState удаляет состояние мастера бронирования
func (c *Cache) DeleteWizardState(ctx context.Context, sessionID string) error {
	if err := c.client.Del(ctx, wizardSessionPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("%w: DeleteWizardState - del key: %v", ErrCacheUnavailable, err)
	}
	return nil
}
