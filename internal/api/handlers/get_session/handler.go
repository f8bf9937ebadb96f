package get_session

import (
	"errors"
	"net/http"

	"github.com/nekositon/NS-StudioService/internal/api/handlers"
	"github.com/nekositon/NS-StudioService/internal/api/middleware"
	authService "github.com/nekositon/NS-StudioService/internal/service/auth"
)

const msgSessionNotFound = "сессия недействительна или истекла"

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/auth/session
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.GetToken(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgSessionNotFound)
		return
	}

	result, err := h.service.CurrentSession(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, authService.ErrSessionNotFound):
			h.logger.Warn("GET /auth/session - Session not found")
			handlers.RespondUnauthorized(w, msgSessionNotFound)

		default:
			h.logger.Error("GET /auth/session - Failed to get session: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
