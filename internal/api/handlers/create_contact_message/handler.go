package create_contact_message

import (
	"errors"
	"net/http"

	"github.com/nekositon/NS-StudioService/internal/api/handlers"
	contactService "github.com/nekositon/NS-StudioService/internal/service/contact"
	"github.com/nekositon/NS-StudioService/internal/service/contact/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "проверьте заполнение полей"
)

type Handler struct {
	service ContactService
	logger  Logger
}

func NewHandler(service ContactService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/contact-messages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitMessageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /contact-messages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SubmitMessage(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, contactService.ErrInvalidInput):
			h.logger.Warn("POST /contact-messages - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /contact-messages - Failed to store message: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /contact-messages - Message stored: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
