package request_password_reset

import (
	"errors"
	"net/http"

	"github.com/nekositon/NS-StudioService/internal/api/handlers"
	authService "github.com/nekositon/NS-StudioService/internal/service/auth"
	"github.com/nekositon/NS-StudioService/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "укажите email"
)

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

// Handle POST /api/v1/auth/password-reset-requests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordResetRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/password-reset-requests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.RequestPasswordReset(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, authService.ErrInvalidInput):
			h.logger.Warn("POST /auth/password-reset-requests - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /auth/password-reset-requests - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/password-reset-requests - Request accepted: email=%s", req.Email)
	handlers.RespondJSON(w, http.StatusAccepted, result)
}
