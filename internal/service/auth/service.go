package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/nekositon/NS-StudioService/internal/domain"
	"github.com/nekositon/NS-StudioService/internal/infra/sessioncache"
	userRepo "github.com/nekositon/NS-StudioService/internal/infra/storage/user"
	"github.com/nekositon/NS-StudioService/internal/service/auth/models"
	"github.com/nekositon/NS-StudioService/pkg/authtoken"
)

// Service сервис регистрации и авторизации
type Service struct {
	userRepo   UserRepository
	intakeRepo IntakeRepository
	sessions   SessionCache
	tokens     TokenManager
	txManager  TransactionManager
	logger     Logger
}

// NewService создает новый экземпляр сервиса авторизации
func NewService(
	userRepo UserRepository,
	intakeRepo IntakeRepository,
	sessions SessionCache,
	tokens TokenManager,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		userRepo:   userRepo,
		intakeRepo: intakeRepo,
		sessions:   sessions,
		tokens:     tokens,
		txManager:  txManager,
		logger:     logger,
	}
}

// SignUp регистрирует новую учетную запись
// Аккаунт всегда создается с ролью client; запрос на роль администратора
// фиксируется отдельной заявкой и рассматривается вручную
func (s *Service) SignUp(ctx context.Context, req *models.SignUpRequest) (*models.SignUpResponse, error) {
	s.logger.Info("SignUp: registering account email=%s", req.Email)

	if err := validateSignUp(req); err != nil {
		s.logger.Warn("SignUp: invalid input for email=%s: %v", req.Email, err)
		return nil, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("SignUp: failed to hash password for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: SignUp - hash password: %v", ErrInternal, err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(req.Name),
		Username:     strings.TrimSpace(req.Username),
		Email:        normalizeEmail(req.Email),
		Phone:        strings.TrimSpace(req.Phone),
		PasswordHash: string(passwordHash),
		Role:         domain.RoleClient,
	}

	// Создание учетной записи и заявки на роль администратора - атомарно
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		created, err := s.userRepo.Create(ctx, user)
		if err != nil {
			return err
		}
		user = created

		if req.RequestAdminAccess {
			_, err := s.intakeRepo.CreateAdminAccessRequest(ctx, &domain.AdminAccessRequest{
				UserID: user.ID,
				Email:  user.Email,
			})
			if err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			s.logger.Warn("SignUp: email=%s already registered", req.Email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("SignUp: repository error for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: SignUp - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SignUp: registered account id=%s email=%s adminRequested=%v",
		user.ID, user.Email, req.RequestAdminAccess)

	return &models.SignUpResponse{
		User:                 models.FromDomainUser(user),
		AdminAccessRequested: req.RequestAdminAccess,
	}, nil
}

// SignIn проверяет учетные данные, выпускает токен и сохраняет сессию
func (s *Service) SignIn(ctx context.Context, req *models.SignInRequest) (*models.SessionResponse, error) {
	email := normalizeEmail(req.Email)
	s.logger.Info("SignIn: attempt for email=%s", email)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("SignIn: unknown email=%s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("SignIn: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: SignIn - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("SignIn: wrong password for email=%s", email)
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(authtoken.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   string(user.Role),
	})
	if err != nil {
		s.logger.Error("SignIn: failed to issue token for user=%s: %v", user.ID, err)
		return nil, fmt.Errorf("%w: SignIn - issue token: %v", ErrInternal, err)
	}

	now := time.Now()
	session := sessioncache.AuthSession{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: now,
	}
	if err := s.sessions.SaveAuthSession(ctx, authtoken.Hash(token), session, s.tokens.TTL()); err != nil {
		s.logger.Error("SignIn: failed to save session for user=%s: %v", user.ID, err)
		return nil, fmt.Errorf("%w: SignIn - save session: %v", ErrInternal, err)
	}

	s.logger.Info("SignIn: user=%s signed in", user.ID)

	return &models.SessionResponse{
		Token:     token,
		ExpiresAt: now.Add(s.tokens.TTL()),
		User:      models.FromDomainUser(user),
	}, nil
}

// CurrentSession возвращает пользователя активной сессии по токену
// Токен действителен только пока сессия есть в кеше: выход из системы
// отзывает токен до истечения его срока жизни
func (s *Service) CurrentSession(ctx context.Context, token string) (*models.UserResponse, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	if _, err := s.sessions.GetAuthSession(ctx, authtoken.Hash(token)); err != nil {
		if errors.Is(err, sessioncache.ErrSessionNotFound) {
			s.logger.Warn("CurrentSession: session revoked or expired for user=%s", claims.UserID)
			return nil, ErrSessionNotFound
		}
		s.logger.Error("CurrentSession: cache error for user=%s: %v", claims.UserID, err)
		return nil, fmt.Errorf("%w: CurrentSession - cache error: %v", ErrInternal, err)
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("CurrentSession: user=%s not found", claims.UserID)
			return nil, ErrSessionNotFound
		}
		s.logger.Error("CurrentSession: repository error for user=%s: %v", claims.UserID, err)
		return nil, fmt.Errorf("%w: CurrentSession - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainUser(user)
	return &resp, nil
}

// SignOut удаляет сессию, отзывая токен
func (s *Service) SignOut(ctx context.Context, token string) error {
	if _, err := s.tokens.Verify(token); err != nil {
		return ErrSessionNotFound
	}

	if err := s.sessions.DeleteAuthSession(ctx, authtoken.Hash(token)); err != nil {
		s.logger.Error("SignOut: failed to delete session: %v", err)
		return fmt.Errorf("%w: SignOut - delete session: %v", ErrInternal, err)
	}

	s.logger.Info("SignOut: session revoked")
	return nil
}

// RequestPasswordReset фиксирует заявку на сброс пароля
// Ответ не раскрывает, зарегистрирован ли email: заявка принимается всегда,
// а строка создается только для существующих учетных записей
func (s *Service) RequestPasswordReset(ctx context.Context, req *models.PasswordResetRequest) (*models.PasswordResetResponse, error) {
	email := normalizeEmail(req.Email)
	s.logger.Info("RequestPasswordReset: request for email=%s", email)

	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	_, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("RequestPasswordReset: unknown email=%s, request accepted silently", email)
			return &models.PasswordResetResponse{Accepted: true}, nil
		}
		s.logger.Error("RequestPasswordReset: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: RequestPasswordReset - repository error: %v", ErrInternal, err)
	}

	if _, err := s.intakeRepo.CreatePasswordResetRequest(ctx, &domain.PasswordResetRequest{Email: email}); err != nil {
		s.logger.Error("RequestPasswordReset: failed to store request for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: RequestPasswordReset - store request: %v", ErrInternal, err)
	}

	s.logger.Info("RequestPasswordReset: request stored for email=%s", email)
	return &models.PasswordResetResponse{Accepted: true}, nil
}

// Вспомогательные функции

func validateSignUp(req *models.SignUpRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	email := normalizeEmail(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: email is invalid", ErrInvalidInput)
	}
	if len(email) > domain.MaxEmailLength {
		return fmt.Errorf("%w: email is too long", ErrInvalidInput)
	}
	if len(req.Password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidInput)
	}
	if len(req.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone is too long", ErrInvalidInput)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
