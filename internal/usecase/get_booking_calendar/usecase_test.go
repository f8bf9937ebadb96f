package get_booking_calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekositon/NS-StudioService/internal/domain"
	"github.com/nekositon/NS-StudioService/pkg/ptr"
	"github.com/nekositon/NS-StudioService/pkg/types"
)

type mockBookingRepo struct {
	bookings   []*domain.Booking
	listErr    error
	lastFilter domain.BookingsFilter
	byDate     map[types.DateString][]*domain.Booking
	byDateErr  error
}

func (r *mockBookingRepo) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	r.lastFilter = filter
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.bookings, nil
}

func (r *mockBookingRepo) GetByDate(_ context.Context, date types.DateString) ([]*domain.Booking, error) {
	if r.byDateErr != nil {
		return nil, r.byDateErr
	}
	return r.byDate[date], nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newCalendarUseCase(repo *mockBookingRepo, now time.Time) *UseCase {
	uc := NewUseCase(repo, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestCalendarGridFebruaryLeapYear(t *testing.T) {
	// Февраль 2024: 29 дней, 1-е число - четверг (4 ведущие ячейки)
	repo := &mockBookingRepo{}
	uc := newCalendarUseCase(repo, time.Date(2024, 2, 15, 10, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{Year: 2024, Month: time.February})
	require.NoError(t, err)

	require.Len(t, resp.Cells, domain.CalendarCells)
	assert.Equal(t, 2024, resp.Year)
	assert.Equal(t, 2, resp.Month)

	// Ведущие ячейки: 28-31 января
	assert.Equal(t, types.DateString("2024-01-28"), resp.Cells[0].Date)
	assert.False(t, resp.Cells[0].InMonth)
	assert.Equal(t, 28, resp.Cells[0].Day)
	assert.False(t, resp.Cells[3].InMonth)

	// Дни февраля
	assert.Equal(t, types.DateString("2024-02-01"), resp.Cells[4].Date)
	assert.True(t, resp.Cells[4].InMonth)
	assert.Equal(t, types.DateString("2024-02-29"), resp.Cells[32].Date)
	assert.True(t, resp.Cells[32].InMonth)

	// Хвостовые ячейки: начало марта
	assert.Equal(t, types.DateString("2024-03-01"), resp.Cells[33].Date)
	assert.False(t, resp.Cells[33].InMonth)
	assert.Equal(t, types.DateString("2024-03-09"), resp.Cells[41].Date)

	inMonth := 0
	for _, cell := range resp.Cells {
		if cell.InMonth {
			inMonth++
		}
	}
	assert.Equal(t, 29, inMonth)
}

func TestCalendarGridStartsOnSunday(t *testing.T) {
	// Июнь 2026: 1-е число - понедельник, одна ведущая ячейка (воскресенье 31 мая)
	repo := &mockBookingRepo{}
	uc := newCalendarUseCase(repo, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{Year: 2026, Month: time.June})
	require.NoError(t, err)

	assert.Equal(t, types.DateString("2026-05-31"), resp.Cells[0].Date)
	assert.False(t, resp.Cells[0].InMonth)
	assert.Equal(t, types.DateString("2026-06-01"), resp.Cells[1].Date)
	assert.True(t, resp.Cells[1].InMonth)
}

func TestCalendarTodayFlag(t *testing.T) {
	repo := &mockBookingRepo{}
	uc := newCalendarUseCase(repo, time.Date(2026, 6, 20, 18, 30, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{Year: 2026, Month: time.June})
	require.NoError(t, err)

	todays := 0
	for _, cell := range resp.Cells {
		if cell.IsToday {
			todays++
			assert.Equal(t, types.DateString("2026-06-20"), cell.Date)
		}
	}
	assert.Equal(t, 1, todays)
}

func TestCalendarBookingCounts(t *testing.T) {
	repo := &mockBookingRepo{bookings: []*domain.Booking{
		{ID: 1, Date: types.DateString("2026-06-20")},
		{ID: 2, Date: types.DateString("2026-06-20")},
		{ID: 3, Date: types.DateString("2026-06-21")},
	}}
	uc := newCalendarUseCase(repo, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{Year: 2026, Month: time.June})
	require.NoError(t, err)

	counts := make(map[types.DateString]int)
	for _, cell := range resp.Cells {
		if cell.BookingCount > 0 {
			counts[cell.Date] = cell.BookingCount
		}
	}
	assert.Equal(t, map[types.DateString]int{
		"2026-06-20": 2,
		"2026-06-21": 1,
	}, counts)

	// Репозиторий опрошен по границам 42-ячеечного окна
	require.NotNil(t, repo.lastFilter.StartDate)
	require.NotNil(t, repo.lastFilter.EndDate)
	assert.Equal(t, types.DateString("2026-05-31"), *repo.lastFilter.StartDate)
	assert.Equal(t, types.DateString("2026-07-11"), *repo.lastFilter.EndDate)
}

func TestCalendarValidation(t *testing.T) {
	uc := newCalendarUseCase(&mockBookingRepo{}, time.Now())
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{Year: 2026, Month: 0})
	assert.ErrorIs(t, err, ErrInvalidMonth)

	_, err = uc.Execute(ctx, &Request{Year: 2026, Month: 13})
	assert.ErrorIs(t, err, ErrInvalidMonth)

	_, err = uc.Execute(ctx, &Request{Year: 1900, Month: time.June})
	assert.ErrorIs(t, err, ErrInvalidYear)
}

func TestCalendarRepositoryError(t *testing.T) {
	repo := &mockBookingRepo{listErr: errors.New("db down")}
	uc := newCalendarUseCase(repo, time.Now())

	_, err := uc.Execute(context.Background(), &Request{Year: 2026, Month: time.June})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestCalendarDay(t *testing.T) {
	date := types.DateString("2026-06-20")
	repo := &mockBookingRepo{byDate: map[types.DateString][]*domain.Booking{
		date: {
			{
				ID:          5,
				ClientName:  "Maria Santos",
				Email:       "maria@example.com",
				Phone:       "09171234567",
				ServiceName: "Package A",
				Date:        date,
				Amount:      20000,
				Status:      domain.StatusConfirmed,
				Notes:       ptr.Ptr("Garden wedding"),
			},
		},
	}}
	uc := newCalendarUseCase(repo, time.Now())

	resp, err := uc.ExecuteDay(context.Background(), &DayRequest{Date: "2026-06-20"})
	require.NoError(t, err)
	assert.Equal(t, date, resp.Date)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(5), resp.Bookings[0].ID)
	assert.Equal(t, "confirmed", resp.Bookings[0].Status)
	require.NotNil(t, resp.Bookings[0].Notes)
	assert.Equal(t, "Garden wedding", *resp.Bookings[0].Notes)
}

func TestCalendarDayEmpty(t *testing.T) {
	uc := newCalendarUseCase(&mockBookingRepo{}, time.Now())

	resp, err := uc.ExecuteDay(context.Background(), &DayRequest{Date: "2026-06-21"})
	require.NoError(t, err)
	assert.Empty(t, resp.Bookings)
	assert.NotNil(t, resp.Bookings)
}

func TestCalendarDayInvalidDate(t *testing.T) {
	uc := newCalendarUseCase(&mockBookingRepo{}, time.Now())

	_, err := uc.ExecuteDay(context.Background(), &DayRequest{Date: "21-06-2026"})
	assert.ErrorIs(t, err, ErrInvalidDate)
}
