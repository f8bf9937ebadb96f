package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/nekositon/NS-StudioService/internal/domain"
	"github.com/nekositon/NS-StudioService/internal/infra/sessioncache"
	userRepo "github.com/nekositon/NS-StudioService/internal/infra/storage/user"
	"github.com/nekositon/NS-StudioService/internal/service/auth/models"
	"github.com/nekositon/NS-StudioService/pkg/authtoken"
)

// Моки

type memUserRepo struct {
	byID    map[string]*domain.User
	byEmail map[string]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

func (r *memUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if _, taken := r.byEmail[u.Email]; taken {
		return nil, userRepo.ErrEmailTaken
	}
	created := *u
	created.CreatedAt = time.Now()
	r.byID[created.ID] = &created
	r.byEmail[created.Email] = &created
	return &created, nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

type mockIntakeRepo struct {
	adminRequests []*domain.AdminAccessRequest
	resetRequests []*domain.PasswordResetRequest
}

func (r *mockIntakeRepo) CreatePasswordResetRequest(_ context.Context, req *domain.PasswordResetRequest) (*domain.PasswordResetRequest, error) {
	r.resetRequests = append(r.resetRequests, req)
	return req, nil
}

func (r *mockIntakeRepo) CreateAdminAccessRequest(_ context.Context, req *domain.AdminAccessRequest) (*domain.AdminAccessRequest, error) {
	r.adminRequests = append(r.adminRequests, req)
	return req, nil
}

type memSessionCache struct {
	sessions map[string]sessioncache.AuthSession
}

func newMemSessionCache() *memSessionCache {
	return &memSessionCache{sessions: make(map[string]sessioncache.AuthSession)}
}

func (c *memSessionCache) SaveAuthSession(_ context.Context, tokenHash string, session sessioncache.AuthSession, _ time.Duration) error {
	c.sessions[tokenHash] = session
	return nil
}

func (c *memSessionCache) GetAuthSession(_ context.Context, tokenHash string) (*sessioncache.AuthSession, error) {
	session, ok := c.sessions[tokenHash]
	if !ok {
		return nil, sessioncache.ErrSessionNotFound
	}
	return &session, nil
}

func (c *memSessionCache) DeleteAuthSession(_ context.Context, tokenHash string) error {
	delete(c.sessions, tokenHash)
	return nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (passthroughTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type authFixture struct {
	svc      *Service
	users    *memUserRepo
	intake   *mockIntakeRepo
	sessions *memSessionCache
}

func newAuthFixture() *authFixture {
	f := &authFixture{
		users:    newMemUserRepo(),
		intake:   &mockIntakeRepo{},
		sessions: newMemSessionCache(),
	}
	tokens := authtoken.NewManager("test-secret", time.Hour)
	f.svc = NewService(f.users, f.intake, f.sessions, tokens, passthroughTxManager{}, nopLogger{})
	return f
}

func validSignUp() *models.SignUpRequest {
	return &models.SignUpRequest{
		Name:     "Maria Santos",
		Username: "maria",
		Email:    "Maria@Example.com",
		Phone:    "09171234567",
		Password: "correct-horse",
	}
}

// Тесты

func TestSignUp(t *testing.T) {
	f := newAuthFixture()

	resp, err := f.svc.SignUp(context.Background(), validSignUp())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.User.ID)
	assert.Equal(t, "maria@example.com", resp.User.Email, "email must be normalized")
	assert.Equal(t, "client", resp.User.Role)
	assert.False(t, resp.AdminAccessRequested)
	assert.Empty(t, f.intake.adminRequests)

	// Пароль сохранен хешем, не открытым текстом
	stored := f.users.byEmail["maria@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "correct-horse", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct-horse")))
}

func TestSignUpWithAdminAccessRequest(t *testing.T) {
	f := newAuthFixture()

	req := validSignUp()
	req.RequestAdminAccess = true

	resp, err := f.svc.SignUp(context.Background(), req)
	require.NoError(t, err)

	// Роль остается client, заявка фиксируется отдельно
	assert.Equal(t, "client", resp.User.Role)
	assert.True(t, resp.AdminAccessRequested)
	require.Len(t, f.intake.adminRequests, 1)
	assert.Equal(t, resp.User.ID, f.intake.adminRequests[0].UserID)
	assert.Equal(t, "maria@example.com", f.intake.adminRequests[0].Email)
}

func TestSignUpEmailTaken(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	_, err := f.svc.SignUp(ctx, validSignUp())
	require.NoError(t, err)

	_, err = f.svc.SignUp(ctx, validSignUp())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignUpValidation(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	req := validSignUp()
	req.Name = "  "
	_, err := f.svc.SignUp(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validSignUp()
	req.Email = "not-an-email"
	_, err = f.svc.SignUp(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validSignUp()
	req.Password = "short"
	_, err = f.svc.SignUp(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSignInAndCurrentSession(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	_, err := f.svc.SignUp(ctx, validSignUp())
	require.NoError(t, err)

	session, err := f.svc.SignIn(ctx, &models.SignInRequest{
		Email:    "maria@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.True(t, session.ExpiresAt.After(time.Now()))

	user, err := f.svc.CurrentSession(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, user.ID)
	assert.Equal(t, "maria@example.com", user.Email)
}

func TestSignInWrongPassword(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	_, err := f.svc.SignUp(ctx, validSignUp())
	require.NoError(t, err)

	_, err = f.svc.SignIn(ctx, &models.SignInRequest{
		Email:    "maria@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignInUnknownEmail(t *testing.T) {
	f := newAuthFixture()

	_, err := f.svc.SignIn(context.Background(), &models.SignInRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignOutRevokesToken(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	_, err := f.svc.SignUp(ctx, validSignUp())
	require.NoError(t, err)

	session, err := f.svc.SignIn(ctx, &models.SignInRequest{
		Email:    "maria@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.SignOut(ctx, session.Token))

	// Токен еще не истек, но сессии больше нет
	_, err = f.svc.CurrentSession(ctx, session.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCurrentSessionGarbageToken(t *testing.T) {
	f := newAuthFixture()

	_, err := f.svc.CurrentSession(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRequestPasswordReset(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	_, err := f.svc.SignUp(ctx, validSignUp())
	require.NoError(t, err)

	resp, err := f.svc.RequestPasswordReset(ctx, &models.PasswordResetRequest{Email: "maria@example.com"})
	require.NoError(t, err)
	assert.True(t, resp.Accepted)
	require.Len(t, f.intake.resetRequests, 1)
	assert.Equal(t, "maria@example.com", f.intake.resetRequests[0].Email)
}

func TestRequestPasswordResetUnknownEmail(t *testing.T) {
	f := newAuthFixture()

	// Ответ не раскрывает, зарегистрирован ли email
	resp, err := f.svc.RequestPasswordReset(context.Background(), &models.PasswordResetRequest{Email: "nobody@example.com"})
	require.NoError(t, err)
	assert.True(t, resp.Accepted)
	assert.Empty(t, f.intake.resetRequests)
}
