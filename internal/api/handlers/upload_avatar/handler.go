package upload_avatar

import (
	"errors"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/nekositon/NS-StudioService/internal/api/handlers"
	"github.com/nekositon/NS-StudioService/internal/api/middleware"
	"github.com/nekositon/NS-StudioService/internal/domain"
	profileService "github.com/nekositon/NS-StudioService/internal/service/profile"
)

const (
	msgUnauthorized   = "требуется авторизация"
	msgUserNotFound   = "учетная запись не найдена"
	msgAvatarMissing  = "файл аватара не передан"
	msgAvatarBadType  = "допустимы только изображения JPEG, PNG и GIF"
	msgAvatarTooLarge = "файл аватара превышает 5 МБ"
	msgUploadFailed   = "не удалось загрузить аватар"
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

// Handle POST /api/v1/profile/avatar (multipart)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(domain.MaxAvatarFileSize); err != nil {
		h.logger.Warn("POST /profile/avatar - Failed to parse multipart form: %v", err)
		handlers.RespondBadRequest(w, msgAvatarMissing)
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		h.logger.Warn("POST /profile/avatar - Missing avatar file: %v", err)
		handlers.RespondBadRequest(w, msgAvatarMissing)
		return
	}
	defer file.Close()

	if !domain.AllowedImageMIMETypes[strings.ToLower(header.Header.Get("Content-Type"))] {
		h.logger.Warn("POST /profile/avatar - Bad file type: user_id=%s, type=%s",
			userID, header.Header.Get("Content-Type"))
		handlers.RespondBadRequest(w, msgAvatarBadType)
		return
	}
	if header.Size > domain.MaxAvatarFileSize {
		h.logger.Warn("POST /profile/avatar - File too large: user_id=%s, size=%d", userID, header.Size)
		handlers.RespondBadRequest(w, msgAvatarTooLarge)
		return
	}

	tmpPath, err := h.saveTemp(file)
	if err != nil {
		h.logger.Error("POST /profile/avatar - Failed to buffer file: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}
	defer os.Remove(tmpPath)

	result, err := h.service.UploadAvatar(r.Context(), userID, tmpPath)
	if err != nil {
		switch {
		case errors.Is(err, profileService.ErrUserNotFound):
			h.logger.Warn("POST /profile/avatar - User not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, profileService.ErrUploadFailed):
			h.logger.Error("POST /profile/avatar - Upload failed: user_id=%s, error=%v", userID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgUploadFailed)

		default:
			h.logger.Error("POST /profile/avatar - Failed: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /profile/avatar - Avatar updated: user_id=%s", userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// saveTemp пишет принятый файл во временный файл для загрузки в медиахранилище
func (h *Handler) saveTemp(file io.Reader) (string, error) {
	tmp, err := os.CreateTemp("", "avatar_*")
	if err != nil {
		return "", err
	}
	defer tmp.Close()

	if _, err := io.Copy(tmp, io.LimitReader(file, domain.MaxAvatarFileSize)); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}

	return tmp.Name(), nil
}
