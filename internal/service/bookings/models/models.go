package models

import (
	"errors"
	"time"

	"github.com/nekositon/NS-StudioService/internal/domain"
	"github.com/nekositon/NS-StudioService/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidDate возвращается при некорректной дате фильтра
	ErrInvalidDate = errors.New("invalid date")
)

// Request модели

// ListBookingsRequest запрос на получение списка бронирований с фильтрацией
type ListBookingsRequest struct {
	Status    *string `json:"status,omitempty"`    // Фильтр по статусу (опционально)
	Email     *string `json:"email,omitempty"`     // Фильтр по email клиента (опционально)
	StartDate *string `json:"startDate,omitempty"` // Начало периода "2006-01-02" (опционально)
	EndDate   *string `json:"endDate,omitempty"`   // Конец периода (опционально)
	Limit     int     `json:"limit,omitempty"`     // Ограничение количества строк
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		Email: r.Email,
		Limit: r.Limit,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	if r.StartDate != nil {
		d, err := types.NewDateStringFromString(*r.StartDate)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.StartDate = &d
	}

	if r.EndDate != nil {
		d, err := types.NewDateStringFromString(*r.EndDate)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.EndDate = &d
	}

	return filter, nil
}

// UpdateStatusRequest запрос на смену статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64   `json:"id"`
	ClientName      string  `json:"clientName"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	ServiceName     string  `json:"serviceName"`
	BookingDate     string  `json:"bookingDate"` // "2025-10-15"
	Amount          int64   `json:"amount"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes,omitempty"`
	PaymentProofURL *string `json:"paymentProofUrl,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// DashboardResponse сводка для панели администратора
type DashboardResponse struct {
	Stats          StatsResponse     `json:"stats"`
	RecentBookings []BookingResponse `json:"recentBookings"`
	UpcomingShoots []BookingResponse `json:"upcomingShoots"`
}

// StatsResponse счетчики дашборда
type StatsResponse struct {
	TotalClients      int   `json:"totalClients"`
	TotalEarnings     int64 `json:"totalEarnings"`
	PendingBookings   int   `json:"pendingBookings"`
	ConfirmedBookings int   `json:"confirmedBookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:              b.ID,
		ClientName:      b.ClientName,
		Email:           b.Email,
		Phone:           b.Phone,
		ServiceName:     b.ServiceName,
		BookingDate:     b.Date.String(),
		Amount:          b.Amount,
		Status:          string(b.Status),
		Notes:           b.Notes,
		PaymentProofURL: b.PaymentProofURL,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// FromDomainStats конвертирует счетчики дашборда в DTO
func FromDomainStats(s domain.DashboardStats) StatsResponse {
	return StatsResponse{
		TotalClients:      s.TotalClients,
		TotalEarnings:     s.TotalEarnings,
		PendingBookings:   s.PendingBookings,
		ConfirmedBookings: s.ConfirmedBookings,
	}
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s, ok := domain.ParseBookingStatus(status)
	if !ok {
		return "", ErrInvalidStatus
	}
	return s, nil
}
