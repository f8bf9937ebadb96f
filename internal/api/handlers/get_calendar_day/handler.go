package get_calendar_day

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nekositon/NS-StudioService/internal/api/handlers"
	getBookingCalendar "github.com/nekositon/NS-StudioService/internal/usecase/get_booking_calendar"
)

const msgInvalidDate = "некорректная дата, ожидается YYYY-MM-DD"

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

// Handle GET /api/v1/admin/calendar/{date}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]

	result, err := h.useCase.ExecuteDay(r.Context(), &getBookingCalendar.DayRequest{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getBookingCalendar.ErrInvalidDate):
			h.logger.Warn("GET /admin/calendar/{date}/bookings - Invalid date: %s", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /admin/calendar/{date}/bookings - Failed: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
