package contact

import (
	"context"
	"fmt"
	"strings"

	"github.com/nekositon/NS-StudioService/internal/domain"
	"github.com/nekositon/NS-StudioService/internal/service/contact/models"
)

// Service сервис формы обратной связи
type Service struct {
	intakeRepo IntakeRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса обратной связи
func NewService(intakeRepo IntakeRepository, logger Logger) *Service {
	return &Service{
		intakeRepo: intakeRepo,
		logger:     logger,
	}
}

// SubmitMessage сохраняет сообщение с формы обратной связи
func (s *Service) SubmitMessage(ctx context.Context, req *models.SubmitMessageRequest) (*models.MessageResponse, error) {
	s.logger.Info("SubmitMessage: message from email=%s", req.Email)

	if err := validateMessage(req); err != nil {
		s.logger.Warn("SubmitMessage: invalid input from email=%s: %v", req.Email, err)
		return nil, err
	}

	msg, err := s.intakeRepo.CreateContactMessage(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("SubmitMessage: repository error for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: SubmitMessage - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SubmitMessage: stored message id=%d from email=%s", msg.ID, req.Email)
	return &models.MessageResponse{
		ID:        msg.ID,
		CreatedAt: msg.CreatedAt,
	}, nil
}

// Вспомогательные функции

func validateMessage(req *models.SubmitMessageRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: email is invalid", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Message) == "" {
		return fmt.Errorf("%w: message is required", ErrInvalidInput)
	}
	if len(req.Message) > domain.MaxMessageLength {
		return fmt.Errorf("%w: message is too long", ErrInvalidInput)
	}
	return nil
}
