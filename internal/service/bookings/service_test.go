package bookings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekositon/NS-StudioService/internal/domain"
	bookingRepo "github.com/nekositon/NS-StudioService/internal/infra/storage/booking"
	"github.com/nekositon/NS-StudioService/internal/service/bookings/models"
	"github.com/nekositon/NS-StudioService/pkg/ptr"
	"github.com/nekositon/NS-StudioService/pkg/types"
)

type mockBookingRepo struct {
	byID          map[int64]*domain.Booking
	listResult    []*domain.Booking
	listErr       error
	lastFilter    domain.BookingsFilter
	updatedID     int64
	updatedStatus domain.BookingStatus
	updateErr     error
}

func (r *mockBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := r.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *mockBookingRepo) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	r.lastFilter = filter
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.listResult, nil
}

func (r *mockBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updatedID = id
	r.updatedStatus = status
	return nil
}

// passthroughTxManager выполняет fn без настоящей транзакции
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

func newBookingsService(repo *mockBookingRepo) *Service {
	return NewService(repo, passthroughTxManager{}, nopLogger{})
}

func TestGetByID(t *testing.T) {
	repo := &mockBookingRepo{byID: map[int64]*domain.Booking{
		7: {
			ID:          7,
			ClientName:  "Maria Santos",
			ServiceName: "Package A",
			Date:        types.DateString("2026-06-20"),
			Amount:      20000,
			Status:      domain.StatusPending,
		},
	}}
	svc := newBookingsService(repo)

	resp, err := svc.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "2026-06-20", resp.BookingDate)
	assert.Equal(t, "pending", resp.Status)
}

func TestGetByIDNotFound(t *testing.T) {
	svc := newBookingsService(&mockBookingRepo{})

	_, err := svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestListBuildsFilter(t *testing.T) {
	repo := &mockBookingRepo{}
	svc := newBookingsService(repo)

	_, err := svc.List(context.Background(), &models.ListBookingsRequest{
		Status:    ptr.Ptr("confirmed"),
		Email:     ptr.Ptr("maria@example.com"),
		StartDate: ptr.Ptr("2026-06-01"),
		EndDate:   ptr.Ptr("2026-06-30"),
		Limit:     10,
	})
	require.NoError(t, err)

	require.NotNil(t, repo.lastFilter.Status)
	assert.Equal(t, domain.StatusConfirmed, *repo.lastFilter.Status)
	require.NotNil(t, repo.lastFilter.Email)
	assert.Equal(t, "maria@example.com", *repo.lastFilter.Email)
	require.NotNil(t, repo.lastFilter.StartDate)
	assert.Equal(t, types.DateString("2026-06-01"), *repo.lastFilter.StartDate)
	assert.Equal(t, 10, repo.lastFilter.Limit)
}

func TestListRejectsBadFilter(t *testing.T) {
	svc := newBookingsService(&mockBookingRepo{})

	_, err := svc.List(context.Background(), &models.ListBookingsRequest{
		Status: ptr.Ptr("no_show"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.List(context.Background(), &models.ListBookingsRequest{
		StartDate: ptr.Ptr("01-06-2026"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatusAllowedTransition(t *testing.T) {
	repo := &mockBookingRepo{byID: map[int64]*domain.Booking{
		7: {ID: 7, Status: domain.StatusPending},
	}}
	svc := newBookingsService(repo)

	resp, err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{Status: "confirmed"})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, int64(7), repo.updatedID)
	assert.Equal(t, domain.StatusConfirmed, repo.updatedStatus)
}

func TestUpdateStatusIllegalTransition(t *testing.T) {
	tests := []struct {
		name string
		from domain.BookingStatus
		to   string
	}{
		{"pending_to_completed", domain.StatusPending, "completed"},
		{"confirmed_to_cancelled", domain.StatusConfirmed, "cancelled"},
		{"completed_to_confirmed", domain.StatusCompleted, "confirmed"},
		{"cancelled_to_confirmed", domain.StatusCancelled, "confirmed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockBookingRepo{byID: map[int64]*domain.Booking{
				1: {ID: 1, Status: tt.from},
			}}
			svc := newBookingsService(repo)

			_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: tt.to})
			assert.ErrorIs(t, err, ErrIllegalTransition)
			assert.Zero(t, repo.updatedID, "repository must not be touched on illegal transition")
		})
	}
}

func TestUpdateStatusUnknownStatus(t *testing.T) {
	svc := newBookingsService(&mockBookingRepo{})

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "archived"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatusNotFound(t *testing.T) {
	svc := newBookingsService(&mockBookingRepo{})

	_, err := svc.UpdateStatus(context.Background(), 404, &models.UpdateStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestDashboard(t *testing.T) {
	// Список упорядочен по дате по убыванию, как возвращает репозиторий
	bookings := []*domain.Booking{
		{ID: 6, Date: types.DateString("2026-07-01"), Status: domain.StatusConfirmed, Amount: 30000},
		{ID: 5, Date: types.DateString("2026-06-25"), Status: domain.StatusConfirmed, Amount: 20000},
		{ID: 4, Date: types.DateString("2026-06-20"), Status: domain.StatusCompleted, Amount: 6000},
		{ID: 3, Date: types.DateString("2026-06-15"), Status: domain.StatusPending, Amount: 6000},
		{ID: 2, Date: types.DateString("2026-06-10"), Status: domain.StatusCancelled, Amount: 45000},
		{ID: 1, Date: types.DateString("2026-06-05"), Status: domain.StatusCompleted, Amount: 20000},
	}
	repo := &mockBookingRepo{listResult: bookings}
	svc := newBookingsService(repo)

	resp, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	// Заработок считается только по завершенным
	assert.Equal(t, models.StatsResponse{
		TotalClients:      6,
		TotalEarnings:     26000,
		PendingBookings:   1,
		ConfirmedBookings: 2,
	}, resp.Stats)

	// Недавние: первые строки списка, не больше лимита
	require.Len(t, resp.RecentBookings, domain.RecentBookingsLimit)
	assert.Equal(t, int64(6), resp.RecentBookings[0].ID)

	// Предстоящие съемки: только подтвержденные, по дате по возрастанию
	require.Len(t, resp.UpcomingShoots, 2)
	assert.Equal(t, int64(5), resp.UpcomingShoots[0].ID)
	assert.Equal(t, int64(6), resp.UpcomingShoots[1].ID)
}

func TestDashboardRepositoryError(t *testing.T) {
	repo := &mockBookingRepo{listErr: errors.New("db down")}
	svc := newBookingsService(repo)

	_, err := svc.Dashboard(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
