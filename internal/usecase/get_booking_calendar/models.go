package get_booking_calendar

import (
	"time"

	"github.com/nekositon/NS-StudioService/pkg/types"
)

// Request модель запроса сетки календаря на месяц
type Request struct {
	Year  int        // Год, например 2026
	Month time.Month // Месяц 1-12
}

// DayRequest модель запроса бронирований на конкретную дату
type DayRequest struct {
	Date string // Дата "2006-01-02"
}

// Response модель ответа с сеткой календаря
type Response struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Cells []Cell `json:"cells"` // Всегда ровно 42 ячейки (6 недель по 7 дней)
}

// Cell ячейка сетки календаря
type Cell struct {
	Date         types.DateString `json:"date"`
	Day          int              `json:"day"`          // День месяца 1-31
	InMonth      bool             `json:"inMonth"`      // Принадлежит ли запрошенному месяцу
	IsToday      bool             `json:"isToday"`      // Совпадает ли с сегодняшним днем
	BookingCount int              `json:"bookingCount"` // Количество бронирований на эту дату
}

// DayResponse модель ответа с бронированиями на дату
type DayResponse struct {
	Date     types.DateString `json:"date"`
	Bookings []DayBooking     `json:"bookings"`
}

// DayBooking бронирование в списке дня
type DayBooking struct {
	ID          int64   `json:"id"`
	ClientName  string  `json:"clientName"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	ServiceName string  `json:"serviceName"`
	Amount      int64   `json:"amount"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes,omitempty"`
}
