package get_calendar_day

import (
	"context"

	getBookingCalendar "github.com/nekositon/NS-StudioService/internal/usecase/get_booking_calendar"
)

type CalendarUseCase interface {
	ExecuteDay(ctx context.Context, req *getBookingCalendar.DayRequest) (*getBookingCalendar.DayResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
