package get_booking_calendar

import (
	"context"

	getBookingCalendar "github.com/nekositon/NS-StudioService/internal/usecase/get_booking_calendar"
)

type CalendarUseCase interface {
	Execute(ctx context.Context, req *getBookingCalendar.Request) (*getBookingCalendar.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
