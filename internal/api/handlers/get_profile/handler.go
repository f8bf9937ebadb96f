package get_profile

import (
	"errors"
	"net/http"

	"github.com/nekositon/NS-StudioService/internal/api/handlers"
	"github.com/nekositon/NS-StudioService/internal/api/middleware"
	profileService "github.com/nekositon/NS-StudioService/internal/service/profile"
)

const (
	msgUnauthorized = "требуется авторизация"
	msgUserNotFound = "учетная запись не найдена"
)

type Handler struct {
	service ProfileService
	logger  Logger
}

func NewHandler(service ProfileService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/profile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.Get(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, profileService.ErrUserNotFound):
			h.logger.Warn("GET /profile - User not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("GET /profile - Failed to get profile: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
