package update_profile

import (
	"errors"
	"net/http"

	"github.com/nekositon/NS-StudioService/internal/api/handlers"
	"github.com/nekositon/NS-StudioService/internal/api/middleware"
	profileService "github.com/nekositon/NS-StudioService/internal/service/profile"
	"github.com/nekositon/NS-StudioService/internal/service/profile/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "требуется авторизация"
	msgUserNotFound       = "учетная запись не найдена"
	msgEmailTaken         = "учетная запись с таким email уже существует"
	msgInvalidInput       = "проверьте заполнение полей"
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

// Handle PUT /api/v1/profile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.UpdateProfileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /profile - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	result, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, profileService.ErrUserNotFound):
			h.logger.Warn("PUT /profile - User not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, profileService.ErrEmailTaken):
			h.logger.Warn("PUT /profile - Email taken: user_id=%s", userID)
			handlers.RespondConflict(w, msgEmailTaken)

		case errors.Is(err, profileService.ErrInvalidInput):
			h.logger.Warn("PUT /profile - Invalid input: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /profile - Failed to update profile: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /profile - Profile updated: user_id=%s", userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
