package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func booking(id int64, status BookingStatus, amount int64, date string) *Booking {
	return &Booking{
		ID:          id,
		ClientName:  "Client",
		Email:       "client@example.com",
		ServiceName: "Package A",
		Date:        typesDate(date),
		Amount:      amount,
		Status:      status,
	}
}

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name     string
		bookings []*Booking
		want     DashboardStats
	}{
		{
			name:     "empty collection",
			bookings: nil,
			want:     DashboardStats{},
		},
		{
			name: "earnings count only completed",
			bookings: []*Booking{
				booking(1, StatusCompleted, 15000, "2025-11-28"),
				booking(2, StatusPending, 5000, "2025-12-01"),
			},
			want: DashboardStats{
				TotalClients:      2,
				TotalEarnings:     15000,
				PendingBookings:   1,
				ConfirmedBookings: 0,
			},
		},
		{
			name: "mixed statuses",
			bookings: []*Booking{
				booking(1, StatusConfirmed, 25000, "2025-12-15"),
				booking(2, StatusPending, 5000, "2025-12-01"),
				booking(3, StatusCompleted, 15000, "2025-11-28"),
				booking(4, StatusConfirmed, 30000, "2025-12-20"),
				booking(5, StatusCompleted, 8000, "2025-12-10"),
				booking(6, StatusCancelled, 99999, "2025-12-22"),
			},
			want: DashboardStats{
				TotalClients:      6,
				TotalEarnings:     23000,
				PendingBookings:   1,
				ConfirmedBookings: 2,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeStats(tt.bookings))
		})
	}
}

func TestComputeStats_NonCompletedAmountDoesNotAffectEarnings(t *testing.T) {
	bookings := []*Booking{
		booking(1, StatusCompleted, 15000, "2025-11-28"),
		booking(2, StatusPending, 5000, "2025-12-01"),
	}
	before := ComputeStats(bookings).TotalEarnings

	// Меняем сумму незавершённого бронирования - заработок не должен измениться
	bookings[1].Amount = 500000
	after := ComputeStats(bookings).TotalEarnings

	assert.Equal(t, before, after)
}

func TestFilterByStatus(t *testing.T) {
	bookings := []*Booking{
		booking(1, StatusConfirmed, 25000, "2025-12-15"),
		booking(2, StatusPending, 5000, "2025-12-01"),
		booking(3, StatusCompleted, 15000, "2025-11-28"),
	}

	t.Run("nil filter returns full collection", func(t *testing.T) {
		assert.Equal(t, bookings, FilterByStatus(bookings, nil))
	})

	t.Run("filters exactly matching status", func(t *testing.T) {
		status := StatusPending
		filtered := FilterByStatus(bookings, &status)
		require.Len(t, filtered, 1)
		assert.Equal(t, int64(2), filtered[0].ID)
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		status := StatusConfirmed
		_ = FilterByStatus(bookings, &status)
		assert.Len(t, bookings, 3)
		assert.Equal(t, StatusPending, bookings[1].Status)
	})
}

func TestUpcomingShoots(t *testing.T) {
	bookings := []*Booking{
		booking(1, StatusConfirmed, 30000, "2025-12-20"),
		booking(2, StatusPending, 5000, "2025-12-01"),
		booking(3, StatusConfirmed, 25000, "2025-12-15"),
		booking(4, StatusCompleted, 15000, "2025-11-28"),
	}

	upcoming := UpcomingShoots(bookings)

	require.Len(t, upcoming, 2)
	assert.Equal(t, int64(3), upcoming[0].ID)
	assert.Equal(t, int64(1), upcoming[1].ID)
}
