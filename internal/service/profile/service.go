package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nekositon/NS-StudioService/internal/domain"
	userRepo "github.com/nekositon/NS-StudioService/internal/infra/storage/user"
	"github.com/nekositon/NS-StudioService/internal/service/profile/models"
	"github.com/nekositon/NS-StudioService/pkg/ptr"
)

// Service сервис профиля пользователя
type Service struct {
	userRepo     UserRepository
	bookingRepo  BookingRepository
	mediaStore   MediaStore
	avatarFolder string
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса профиля
func NewService(
	userRepo UserRepository,
	bookingRepo BookingRepository,
	mediaStore MediaStore,
	avatarFolder string,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		userRepo:     userRepo,
		bookingRepo:  bookingRepo,
		mediaStore:   mediaStore,
		avatarFolder: avatarFolder,
		txManager:    txManager,
		logger:       logger,
	}
}

// Get возвращает профиль пользователя вместе с историей его бронирований
// Бронирования сопоставляются по email учетной записи - мастер бронирования
// не требует входа, поэтому связь идет через контактные данные
func (s *Service) Get(ctx context.Context, userID string) (*models.ProfileResponse, error) {
	s.logger.Info("Get: fetching profile for user=%s", userID)

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Get: user=%s not found", userID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("Get: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{
		Email: ptr.Ptr(user.Email),
	})
	if err != nil {
		s.logger.Error("Get: failed to fetch bookings for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: Get - fetch bookings: %v", ErrInternal, err)
	}

	s.logger.Info("Get: profile for user=%s with %d bookings", userID, len(bookings))
	return models.FromDomain(user, bookings), nil
}

// Update обновляет контактные поля профиля (username, email, phone)
func (s *Service) Update(ctx context.Context, req *models.UpdateProfileRequest) (*models.ProfileResponse, error) {
	s.logger.Info("Update: updating profile for user=%s", req.UserID)

	if err := validateUpdate(req); err != nil {
		s.logger.Warn("Update: invalid input for user=%s: %v", req.UserID, err)
		return nil, err
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.userRepo.UpdateProfile(ctx, req.UserID,
			strings.TrimSpace(req.Username),
			strings.ToLower(strings.TrimSpace(req.Email)),
			strings.TrimSpace(req.Phone),
		)
	})

	if err != nil {
		switch {
		case errors.Is(err, userRepo.ErrUserNotFound):
			s.logger.Warn("Update: user=%s not found", req.UserID)
			return nil, ErrUserNotFound
		case errors.Is(err, userRepo.ErrEmailTaken):
			s.logger.Warn("Update: email=%s already taken", req.Email)
			return nil, ErrEmailTaken
		default:
			s.logger.Error("Update: repository error for user=%s: %v", req.UserID, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Update: profile updated for user=%s", req.UserID)
	return s.Get(ctx, req.UserID)
}

// UploadAvatar загружает аватар в медиахранилище и сохраняет его URL
// localPath - путь к временному файлу, уже принятому и проверенному на уровне API
func (s *Service) UploadAvatar(ctx context.Context, userID string, localPath string) (*models.AvatarResponse, error) {
	s.logger.Info("UploadAvatar: uploading avatar for user=%s", userID)

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("UploadAvatar: user=%s not found", userID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("UploadAvatar: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: UploadAvatar - repository error: %v", ErrInternal, err)
	}

	url, err := s.mediaStore.Upload(ctx, localPath, s.avatarFolder, "avatar_"+userID)
	if err != nil {
		s.logger.Error("UploadAvatar: upload failed for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	if err := s.userRepo.UpdateAvatarURL(ctx, userID, url); err != nil {
		s.logger.Error("UploadAvatar: failed to save avatar URL for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: UploadAvatar - save avatar URL: %v", ErrInternal, err)
	}

	s.logger.Info("UploadAvatar: avatar updated for user=%s", userID)
	return &models.AvatarResponse{AvatarURL: url}, nil
}

// Вспомогательные функции

func validateUpdate(req *models.UpdateProfileRequest) error {
	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: email is invalid", ErrInvalidInput)
	}
	if len(email) > domain.MaxEmailLength {
		return fmt.Errorf("%w: email is too long", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Username) == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if len(req.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone is too long", ErrInvalidInput)
	}
	return nil
}
