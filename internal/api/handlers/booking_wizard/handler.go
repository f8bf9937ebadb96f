package booking_wizard

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nekositon/NS-StudioService/internal/api/handlers"
	"github.com/nekositon/NS-StudioService/internal/domain"
	bookingWizard "github.com/nekositon/NS-StudioService/internal/usecase/booking_wizard"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSessionNotFound    = "сессия мастера не найдена или истекла"
	msgWrongStep          = "операция недоступна на текущем шаге"
	msgAlreadyCompleted   = "бронирование уже отправлено"
	msgSubmitInProgress   = "отправка уже выполняется"
	msgValidationFailed   = "проверьте заполнение полей"
	msgProofRequired      = "приложите чек оплаты"
	msgProofMissing       = "файл чека не передан"
)

type Handler struct {
	useCase WizardUseCase
	logger  Logger
}

func NewHandler(useCase WizardUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleStart POST /api/v1/wizard
func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Start(r.Context())
	if err != nil {
		h.logger.Error("POST /wizard - Failed to start wizard: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /wizard - Wizard started: wizard_id=%s", result.WizardID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleGet GET /api/v1/wizard/{wizardId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	wizardID := mux.Vars(r)["wizardId"]

	result, err := h.useCase.Get(r.Context(), wizardID)
	if err != nil {
		h.respondError(w, r, wizardID, nil, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleContact POST /api/v1/wizard/{wizardId}/contact
func (h *Handler) HandleContact(w http.ResponseWriter, r *http.Request) {
	wizardID := mux.Vars(r)["wizardId"]

	var req bookingWizard.SubmitContactRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/{wizardId}/contact - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.SubmitContact(r.Context(), wizardID, &req)
	if err != nil {
		h.respondError(w, r, wizardID, result, err)
		return
	}

	h.logger.Info("POST /wizard/{wizardId}/contact - Step passed: wizard_id=%s", wizardID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDetails POST /api/v1/wizard/{wizardId}/details
func (h *Handler) HandleDetails(w http.ResponseWriter, r *http.Request) {
	wizardID := mux.Vars(r)["wizardId"]

	var req bookingWizard.SubmitDetailsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/{wizardId}/details - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.SubmitDetails(r.Context(), wizardID, &req)
	if err != nil {
		h.respondError(w, r, wizardID, result, err)
		return
	}

	h.logger.Info("POST /wizard/{wizardId}/details - Step passed: wizard_id=%s", wizardID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleAttachProof POST /api/v1/wizard/{wizardId}/proof (multipart)
func (h *Handler) HandleAttachProof(w http.ResponseWriter, r *http.Request) {
	wizardID := mux.Vars(r)["wizardId"]

	if err := r.ParseMultipartForm(domain.MaxProofFileSize); err != nil {
		h.logger.Warn("POST /wizard/{wizardId}/proof - Failed to parse multipart form: %v", err)
		handlers.RespondBadRequest(w, msgProofMissing)
		return
	}

	file, header, err := r.FormFile("proof")
	if err != nil {
		h.logger.Warn("POST /wizard/{wizardId}/proof - Missing proof file: %v", err)
		handlers.RespondBadRequest(w, msgProofMissing)
		return
	}
	defer file.Close()

	req := &bookingWizard.AttachProofRequest{
		FileName: header.Filename,
		MIMEType: header.Header.Get("Content-Type"),
		Size:     header.Size,
		File:     file,
	}

	result, err := h.useCase.AttachProof(r.Context(), wizardID, req)
	if err != nil {
		h.respondError(w, r, wizardID, result, err)
		return
	}

	h.logger.Info("POST /wizard/{wizardId}/proof - Proof staged: wizard_id=%s, file=%s", wizardID, header.Filename)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleRemoveProof DELETE /api/v1/wizard/{wizardId}/proof
func (h *Handler) HandleRemoveProof(w http.ResponseWriter, r *http.Request) {
	wizardID := mux.Vars(r)["wizardId"]

	result, err := h.useCase.RemoveProof(r.Context(), wizardID)
	if err != nil {
		h.respondError(w, r, wizardID, result, err)
		return
	}

	h.logger.Info("DELETE /wizard/{wizardId}/proof - Proof removed: wizard_id=%s", wizardID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleBack POST /api/v1/wizard/{wizardId}/back
func (h *Handler) HandleBack(w http.ResponseWriter, r *http.Request) {
	wizardID := mux.Vars(r)["wizardId"]

	result, err := h.useCase.Back(r.Context(), wizardID)
	if err != nil {
		h.respondError(w, r, wizardID, result, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleSubmit POST /api/v1/wizard/{wizardId}/submit
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	wizardID := mux.Vars(r)["wizardId"]

	result, err := h.useCase.Submit(r.Context(), wizardID)
	if err != nil {
		h.respondError(w, r, wizardID, result, err)
		return
	}

	h.logger.Info("POST /wizard/{wizardId}/submit - Booking created: wizard_id=%s, booking_id=%v",
		wizardID, result.BookingID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// respondError преобразует ошибки use case в HTTP ответы
// Ошибки валидации отдают состояние мастера с ошибками по полям
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, wizardID string, result *bookingWizard.Response, err error) {
	switch {
	case errors.Is(err, bookingWizard.ErrSessionNotFound), errors.Is(err, bookingWizard.ErrInvalidInput):
		h.logger.Warn("%s %s - Wizard session not found: wizard_id=%s", r.Method, r.URL.Path, wizardID)
		handlers.RespondNotFound(w, msgSessionNotFound)

	case errors.Is(err, bookingWizard.ErrValidationFailed), errors.Is(err, bookingWizard.ErrProofRequired):
		h.logger.Warn("%s %s - Validation failed: wizard_id=%s", r.Method, r.URL.Path, wizardID)
		if result != nil {
			handlers.RespondJSON(w, http.StatusUnprocessableEntity, result)
			return
		}
		handlers.RespondError(w, http.StatusUnprocessableEntity, msgValidationFailed)

	case errors.Is(err, bookingWizard.ErrWrongStep):
		h.logger.Warn("%s %s - Wrong step: wizard_id=%s", r.Method, r.URL.Path, wizardID)
		handlers.RespondConflict(w, msgWrongStep)

	case errors.Is(err, bookingWizard.ErrAlreadyCompleted):
		h.logger.Warn("%s %s - Wizard already completed: wizard_id=%s", r.Method, r.URL.Path, wizardID)
		handlers.RespondConflict(w, msgAlreadyCompleted)

	case errors.Is(err, bookingWizard.ErrSubmitInProgress):
		h.logger.Warn("%s %s - Submit in progress: wizard_id=%s", r.Method, r.URL.Path, wizardID)
		handlers.RespondConflict(w, msgSubmitInProgress)

	default:
		h.logger.Error("%s %s - Wizard error: wizard_id=%s, error=%v", r.Method, r.URL.Path, wizardID, err)
		handlers.RespondInternalError(w)
	}
}
