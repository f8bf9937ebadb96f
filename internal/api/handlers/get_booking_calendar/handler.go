package get_booking_calendar

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/nekositon/NS-StudioService/internal/api/handlers"
	getBookingCalendar "github.com/nekositon/NS-StudioService/internal/usecase/get_booking_calendar"
)

const (
	msgInvalidYear  = "некорректный год"
	msgInvalidMonth = "некорректный месяц, ожидается число от 1 до 12"
)

type Handler struct {
	useCase CalendarUseCase
	logger  Logger
}

func NewHandler(useCase CalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/calendar?year=&month=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	year, err := strconv.Atoi(query.Get("year"))
	if err != nil {
		h.logger.Warn("GET /admin/calendar - Invalid year: %s", query.Get("year"))
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	month, err := strconv.Atoi(query.Get("month"))
	if err != nil {
		h.logger.Warn("GET /admin/calendar - Invalid month: %s", query.Get("month"))
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getBookingCalendar.Request{
		Year:  year,
		Month: time.Month(month),
	})
	if err != nil {
		switch {
		case errors.Is(err, getBookingCalendar.ErrInvalidYear):
			h.logger.Warn("GET /admin/calendar - Year out of range: %d", year)
			handlers.RespondBadRequest(w, msgInvalidYear)

		case errors.Is(err, getBookingCalendar.ErrInvalidMonth):
			h.logger.Warn("GET /admin/calendar - Month out of range: %d", month)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		default:
			h.logger.Error("GET /admin/calendar - Failed: year=%d, month=%d, error=%v", year, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
