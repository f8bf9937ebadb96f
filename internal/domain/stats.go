package domain

import "sort"

// DashboardStats holds the derived dashboard counters.
// All values are pure functions of a booking collection snapshot.
type DashboardStats struct {
	TotalClients      int
	TotalEarnings     int64
	PendingBookings   int
	ConfirmedBookings int
}

// ComputeStats derives dashboard statistics from a booking snapshot.
// Total earnings sum only completed bookings; amounts of bookings in any
// other status never contribute.
func ComputeStats(bookings []*Booking) DashboardStats {
	stats := DashboardStats{TotalClients: len(bookings)}

	for _, b := range bookings {
		switch b.Status {
		case StatusCompleted:
			stats.TotalEarnings += b.Amount
		case StatusPending:
			stats.PendingBookings++
		case StatusConfirmed:
			stats.ConfirmedBookings++
		case StatusCancelled:
		}
	}
	return stats
}

// FilterByStatus returns the bookings whose status equals the filter.
// A nil filter returns the full collection. The input slice is never mutated.
func FilterByStatus(bookings []*Booking, status *BookingStatus) []*Booking {
	if status == nil {
		return bookings
	}

	filtered := make([]*Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Status == *status {
			filtered = append(filtered, b)
		}
	}
	return filtered
}

// UpcomingShoots returns confirmed bookings sorted ascending by date.
// Bookings on the same date keep id order for a stable result.
func UpcomingShoots(bookings []*Booking) []*Booking {
	upcoming := make([]*Booking, 0)
	for _, b := range bookings {
		if b.Status == StatusConfirmed {
			upcoming = append(upcoming, b)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		if upcoming[i].Date != upcoming[j].Date {
			return upcoming[i].Date.Before(upcoming[j].Date)
		}
		return upcoming[i].ID < upcoming[j].ID
	})
	return upcoming
}
