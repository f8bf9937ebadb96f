package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/nekositon/NS-StudioService/internal/domain"
	bookingRepo "github.com/nekositon/NS-StudioService/internal/infra/storage/booking"
	"github.com/nekositon/NS-StudioService/internal/service/bookings/models"
)

// Service сервис администрирования бронирований
type Service struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// List получает бронирования с гибкой фильтрацией
// Поддерживает фильтрацию по статусу, email клиента и периоду дат
//
// Примеры использования:
// - Все бронирования: List(ctx, &ListBookingsRequest{})
// - Только ожидающие подтверждения: указать Status = "pending"
// - Бронирования клиента: указать Email
// - Бронирования за период: StartDate и EndDate
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := "List: fetching bookings"
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.Email != nil {
		logMsg += fmt.Sprintf(", email=%s", *req.Email)
	}
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", *req.StartDate, *req.EndDate)
	}
	s.logger.Info(logMsg)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus обновляет статус бронирования
// Допустимы только переходы pending -> confirmed|cancelled и
// confirmed -> completed; остальные отклоняются
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s", bookingID, req.Status)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return nil, ErrInvalidStatus
	}

	var updated *domain.Booking

	// Чтение и смена статуса под одной транзакцией, чтобы конкурирующие
	// запросы не протащили недопустимый переход
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		booking, err := s.bookingRepo.GetByID(ctx, bookingID)
		if err != nil {
			return err
		}

		if !booking.CanTransitionTo(newStatus) {
			s.logger.Warn("UpdateStatus: illegal transition %s -> %s for booking id=%d",
				booking.Status, newStatus, bookingID)
			return ErrIllegalTransition
		}

		if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
			return err
		}

		booking.Status = newStatus
		updated = booking
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrIllegalTransition):
			return nil, ErrIllegalTransition
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		default:
			s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
			return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return models.FromDomainBooking(updated), nil
}

// Dashboard собирает сводку для панели администратора: счетчики,
// последние бронирования и предстоящие подтвержденные съемки
func (s *Service) Dashboard(ctx context.Context) (*models.DashboardResponse, error) {
	s.logger.Info("Dashboard: building dashboard summary")

	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{})
	if err != nil {
		s.logger.Error("Dashboard: repository error: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - repository error: %v", ErrInternal, err)
	}

	stats := domain.ComputeStats(bookings)
	upcoming := domain.UpcomingShoots(bookings)

	// Список уже отсортирован по дате по убыванию, свежие строки первыми
	recent := bookings
	if len(recent) > domain.RecentBookingsLimit {
		recent = recent[:domain.RecentBookingsLimit]
	}

	s.logger.Info("Dashboard: %d bookings, %d upcoming shoots", len(bookings), len(upcoming))

	return &models.DashboardResponse{
		Stats:          models.FromDomainStats(stats),
		RecentBookings: models.FromDomainBookingList(recent).Bookings,
		UpcomingShoots: models.FromDomainBookingList(upcoming).Bookings,
	}, nil
}
