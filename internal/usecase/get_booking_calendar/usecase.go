package get_booking_calendar

import (
	"context"
	"fmt"

	"github.com/nekositon/NS-StudioService/internal/domain"
	"github.com/nekositon/NS-StudioService/pkg/types"
)

// UseCase use case календаря бронирований для панели администратора
type UseCase struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute строит сетку календаря на запрошенный месяц
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetBookingCalendar: year=%d, month=%d", req.Year, req.Month)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetBookingCalendar: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем бронирования, попадающие в 42-ячеечное окно месяца
	startDate, endDate := gridRange(req.Year, req.Month)
	bookings, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{
		StartDate: &startDate,
		EndDate:   &endDate,
	})
	if err != nil {
		uc.logger.Error("GetBookingCalendar: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 3. Строим сетку
	cells := buildMonthGrid(req.Year, req.Month, uc.timeProvider.Now(), countBookingsByDate(bookings))

	uc.logger.Info("GetBookingCalendar: year=%d, month=%d, %d bookings in window",
		req.Year, req.Month, len(bookings))

	return &Response{
		Year:  req.Year,
		Month: int(req.Month),
		Cells: cells,
	}, nil
}

// ExecuteDay возвращает бронирования на конкретную дату
// Пустой день дает пустой список, а не ошибку
func (uc *UseCase) ExecuteDay(ctx context.Context, req *DayRequest) (*DayResponse, error) {
	uc.logger.Info("GetBookingCalendar: day=%s", req.Date)

	date, err := types.NewDateStringFromString(req.Date)
	if err != nil {
		uc.logger.Warn("GetBookingCalendar: invalid date=%s", req.Date)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	bookings, err := uc.bookingRepo.GetByDate(ctx, date)
	if err != nil {
		uc.logger.Error("GetBookingCalendar: failed to get bookings for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	resp := &DayResponse{
		Date:     date,
		Bookings: make([]DayBooking, 0, len(bookings)),
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, DayBooking{
			ID:          b.ID,
			ClientName:  b.ClientName,
			Email:       b.Email,
			Phone:       b.Phone,
			ServiceName: b.ServiceName,
			Amount:      b.Amount,
			Status:      string(b.Status),
			Notes:       b.Notes,
		})
	}

	uc.logger.Info("GetBookingCalendar: %d bookings on %s", len(resp.Bookings), req.Date)
	return resp, nil
}
