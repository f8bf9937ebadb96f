package get_booking_calendar

import "errors"

var (
	// ErrInvalidMonth возвращается при месяце вне диапазона 1-12
	ErrInvalidMonth = errors.New("get_booking_calendar: invalid month")

	// ErrInvalidYear возвращается при некорректном годе
	ErrInvalidYear = errors.New("get_booking_calendar: invalid year")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("get_booking_calendar: invalid date")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_booking_calendar: internal error")
)
