package models

import (
	"time"

	"github.com/nekositon/NS-StudioService/internal/domain"
)

// Request модели

// UpdateProfileRequest запрос на обновление контактных полей профиля
type UpdateProfileRequest struct {
	UserID   string `json:"-"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// Response модели

// ProfileResponse профиль пользователя с историей его бронирований
type ProfileResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Username  string            `json:"username"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone"`
	Role      string            `json:"role"`
	AvatarURL *string           `json:"avatarUrl,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	Bookings  []BookingResponse `json:"bookings"`
}

// BookingResponse бронирование в истории профиля
type BookingResponse struct {
	ID          int64   `json:"id"`
	ServiceName string  `json:"serviceName"`
	BookingDate string  `json:"bookingDate"` // "2025-10-15"
	Amount      int64   `json:"amount"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes,omitempty"`
}

// AvatarResponse ответ на загрузку аватара
type AvatarResponse struct {
	AvatarURL string `json:"avatarUrl"`
}

// Методы конвертации

// FromDomain собирает профиль из учетной записи и ее бронирований
func FromDomain(u *domain.User, bookings []*domain.Booking) *ProfileResponse {
	resp := &ProfileResponse{
		ID:        u.ID,
		Name:      u.Name,
		Username:  u.Username,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      string(u.Role),
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
		Bookings:  make([]BookingResponse, 0, len(bookings)),
	}

	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, BookingResponse{
			ID:          b.ID,
			ServiceName: b.ServiceName,
			BookingDate: b.Date.String(),
			Amount:      b.Amount,
			Status:      string(b.Status),
			Notes:       b.Notes,
		})
	}

	return resp
}
