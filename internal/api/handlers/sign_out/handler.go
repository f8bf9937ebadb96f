package sign_out

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

// Handle POST /api/v1/auth/signout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.GetToken(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgSessionNotFound)
		return
	}

	if err := h.service.SignOut(r.Context(), token); err != nil {
		switch {
		case errors.Is(err, authService.ErrSessionNotFound):
			h.logger.Warn("POST /auth/signout - Session not found")
			handlers.RespondUnauthorized(w, msgSessionNotFound)

		default:
			h.logger.Error("POST /auth/signout - Failed to sign out: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/signout - Session revoked")
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
