package domain

import (
	"time"

	"github.com/nekositon/NS-StudioService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a photo session booking in the system
type Booking struct {
	ID         int64
	ClientName string
	Email      string
	Phone      string

	// Free-text match against Service.Title at creation time
	ServiceName string
	Date        types.DateString
	Amount      int64
	Status      BookingStatus

	Notes           *string
	PaymentProofURL *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanBeConfirmed returns true if the booking may transition to confirmed
func (b *Booking) CanBeConfirmed() bool {
	return b.Status == StatusPending
}

// CanBeCancelled returns true if the booking may transition to cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending
}

// CanBeCompleted returns true if the booking may transition to completed
func (b *Booking) CanBeCompleted() bool {
	return b.Status == StatusConfirmed
}

// IsTerminal returns true if no further status transition is allowed
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}

// CanTransitionTo reports whether the transition to target is allowed.
// Allowed set: pending -> confirmed, pending -> cancelled, confirmed -> completed.
func (b *Booking) CanTransitionTo(target BookingStatus) bool {
	switch target {
	case StatusConfirmed:
		return b.CanBeConfirmed()
	case StatusCancelled:
		return b.CanBeCancelled()
	case StatusCompleted:
		return b.CanBeCompleted()
	default:
		return false
	}
}

// ParseBookingStatus converts a string into a BookingStatus, validating it
// against the closed status set.
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return BookingStatus(s), true
	default:
		return "", false
	}
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	Status    *BookingStatus    // Фильтр по статусу (опционально, nil - все)
	Email     *string           // Фильтр по email клиента (опционально)
	StartDate *types.DateString // Начало периода (опционально)
	EndDate   *types.DateString // Конец периода (опционально)
	Limit     int               // Ограничение количества строк (0 - без ограничения)
}
