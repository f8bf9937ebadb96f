package booking_wizard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nekositon/NS-StudioService/internal/domain"
	"github.com/nekositon/NS-StudioService/internal/infra/sessioncache"
	"github.com/nekositon/NS-StudioService/pkg/ptr"
	"github.com/nekositon/NS-StudioService/pkg/types"
)

// UseCase use case мастера бронирования
// Состояние сессии живет в Redis, приложенный чек оплаты - в локальном
// каталоге до момента отправки
type UseCase struct {
	wizardCache  WizardCache
	serviceRepo  ServiceRepository
	bookingRepo  BookingRepository
	mediaStore   MediaStore
	stagingDir   string
	proofFolder  string
	sessionTTL   time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	wizardCache WizardCache,
	serviceRepo ServiceRepository,
	bookingRepo BookingRepository,
	mediaStore MediaStore,
	stagingDir string,
	proofFolder string,
	sessionTTL time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		wizardCache:  wizardCache,
		serviceRepo:  serviceRepo,
		bookingRepo:  bookingRepo,
		mediaStore:   mediaStore,
		stagingDir:   stagingDir,
		proofFolder:  proofFolder,
		sessionTTL:   sessionTTL,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Start создает новую сессию мастера на первом шаге
func (uc *UseCase) Start(ctx context.Context) (*Response, error) {
	state := &State{
		ID:        uuid.NewString(),
		Step:      StepContact,
		CreatedAt: uc.timeProvider.Now(),
	}

	if err := uc.save(ctx, state); err != nil {
		uc.logger.Error("Start: failed to save session: %v", err)
		return nil, err
	}

	uc.logger.Info("Start: wizard session id=%s started", state.ID)
	return toResponse(state), nil
}

// Get возвращает текущее состояние сессии мастера
func (uc *UseCase) Get(ctx context.Context, wizardID string) (*Response, error) {
	state, err := uc.load(ctx, wizardID)
	if err != nil {
		return nil, err
	}
	return toResponse(state), nil
}

// SubmitContact принимает поля первого шага
// При успехе переводит мастер на шаг details, при ошибках валидации
// остается на месте и возвращает ошибки по полям
func (uc *UseCase) SubmitContact(ctx context.Context, wizardID string, req *SubmitContactRequest) (*Response, error) {
	state, err := uc.load(ctx, wizardID)
	if err != nil {
		return nil, err
	}

	if state.Completed {
		return nil, ErrAlreadyCompleted
	}
	if state.Step != StepContact {
		uc.logger.Warn("SubmitContact: wizard id=%s at step=%s", wizardID, state.Step)
		return nil, ErrWrongStep
	}

	state.Contact = ContactFields{
		Name:  strings.TrimSpace(req.Name),
		Email: strings.TrimSpace(req.Email),
		Phone: strings.TrimSpace(req.Phone),
	}

	if fieldErrors := validateContact(req); fieldErrors != nil {
		state.FieldErrors = fieldErrors
		if err := uc.save(ctx, state); err != nil {
			return nil, err
		}
		uc.logger.Warn("SubmitContact: wizard id=%s validation failed: %v", wizardID, fieldErrors)
		return toResponse(state), ErrValidationFailed
	}

	state.FieldErrors = nil
	state.Step = StepDetails

	if err := uc.save(ctx, state); err != nil {
		return nil, err
	}

	uc.logger.Info("SubmitContact: wizard id=%s advanced to details", wizardID)
	return toResponse(state), nil
}

// SubmitDetails принимает поля второго шага
// Услуга сверяется с каталогом, дата должна быть календарным днем
func (uc *UseCase) SubmitDetails(ctx context.Context, wizardID string, req *SubmitDetailsRequest) (*Response, error) {
	state, err := uc.load(ctx, wizardID)
	if err != nil {
		return nil, err
	}

	if state.Completed {
		return nil, ErrAlreadyCompleted
	}
	if state.Step != StepDetails {
		uc.logger.Warn("SubmitDetails: wizard id=%s at step=%s", wizardID, state.Step)
		return nil, ErrWrongStep
	}

	services, err := uc.serviceRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("SubmitDetails: failed to load services: %v", err)
		return nil, fmt.Errorf("%w: failed to load services: %v", ErrInternal, err)
	}

	state.Details = DetailsFields{
		Service: strings.TrimSpace(req.Service),
		Date:    strings.TrimSpace(req.Date),
		Message: req.Message,
	}

	if fieldErrors := validateDetails(req, services); fieldErrors != nil {
		state.FieldErrors = fieldErrors
		if err := uc.save(ctx, state); err != nil {
			return nil, err
		}
		uc.logger.Warn("SubmitDetails: wizard id=%s validation failed: %v", wizardID, fieldErrors)
		return toResponse(state), ErrValidationFailed
	}

	state.FieldErrors = nil
	state.Step = StepPayment

	if err := uc.save(ctx, state); err != nil {
		return nil, err
	}

	uc.logger.Info("SubmitDetails: wizard id=%s advanced to payment", wizardID)
	return toResponse(state), nil
}

// AttachProof сохраняет чек оплаты в каталог подготовки
// Файл с недопустимым типом или размером не записывается вовсе
func (uc *UseCase) AttachProof(ctx context.Context, wizardID string, req *AttachProofRequest) (*Response, error) {
	state, err := uc.load(ctx, wizardID)
	if err != nil {
		return nil, err
	}

	if state.Completed {
		return nil, ErrAlreadyCompleted
	}
	if state.Step != StepPayment {
		uc.logger.Warn("AttachProof: wizard id=%s at step=%s", wizardID, state.Step)
		return nil, ErrWrongStep
	}

	if fieldErrors := validateProof(req); fieldErrors != nil {
		state.FieldErrors = fieldErrors
		if err := uc.save(ctx, state); err != nil {
			return nil, err
		}
		uc.logger.Warn("AttachProof: wizard id=%s rejected file name=%s type=%s size=%d",
			wizardID, req.FileName, req.MIMEType, req.Size)
		return toResponse(state), ErrValidationFailed
	}

	stagedPath, err := uc.stageProof(wizardID, state, req)
	if err != nil {
		uc.logger.Error("AttachProof: failed to stage file for wizard id=%s: %v", wizardID, err)
		return nil, fmt.Errorf("%w: failed to stage proof file: %v", ErrInternal, err)
	}

	state.Proof = &ProofMeta{
		FileName:   req.FileName,
		Size:       req.Size,
		MIMEType:   req.MIMEType,
		StagedPath: stagedPath,
	}
	state.FieldErrors = nil

	if err := uc.save(ctx, state); err != nil {
		return nil, err
	}

	uc.logger.Info("AttachProof: wizard id=%s staged proof name=%s size=%d", wizardID, req.FileName, req.Size)
	return toResponse(state), nil
}

// RemoveProof удаляет приложенный чек оплаты
func (uc *UseCase) RemoveProof(ctx context.Context, wizardID string) (*Response, error) {
	state, err := uc.load(ctx, wizardID)
	if err != nil {
		return nil, err
	}

	if state.Completed {
		return nil, ErrAlreadyCompleted
	}

	uc.discardStagedProof(state)
	state.Proof = nil
	state.FieldErrors = nil

	if err := uc.save(ctx, state); err != nil {
		return nil, err
	}

	uc.logger.Info("RemoveProof: wizard id=%s proof removed", wizardID)
	return toResponse(state), nil
}

// Back возвращает мастер на предыдущий шаг
// Никогда не перепроверяет поля; на первом шаге остается на месте
func (uc *UseCase) Back(ctx context.Context, wizardID string) (*Response, error) {
	state, err := uc.load(ctx, wizardID)
	if err != nil {
		return nil, err
	}

	if state.Completed || state.Step == StepDone {
		return nil, ErrAlreadyCompleted
	}

	switch state.Step {
	case StepDetails:
		state.Step = StepContact
	case StepPayment:
		state.Step = StepDetails
	case StepContact:
		// Уже на первом шаге, остаемся
	}
	state.FieldErrors = nil

	if err := uc.save(ctx, state); err != nil {
		return nil, err
	}

	uc.logger.Info("Back: wizard id=%s now at step=%s", wizardID, state.Step)
	return toResponse(state), nil
}

// Submit завершает мастер: загружает чек и создает бронирование
// Загрузка чека в медиахранилище не обязана удаться - бронирование
// создается и без URL чека. Создается ровно одна строка со статусом pending
func (uc *UseCase) Submit(ctx context.Context, wizardID string) (*Response, error) {
	state, err := uc.load(ctx, wizardID)
	if err != nil {
		return nil, err
	}

	// 1. Проверяем шаг и защиту от двойной отправки
	if state.Completed {
		return nil, ErrAlreadyCompleted
	}
	if state.Step != StepPayment {
		uc.logger.Warn("Submit: wizard id=%s at step=%s", wizardID, state.Step)
		return nil, ErrWrongStep
	}
	if state.Submitting {
		uc.logger.Warn("Submit: wizard id=%s already submitting", wizardID)
		return nil, ErrSubmitInProgress
	}
	if state.Proof == nil {
		state.FieldErrors = map[string]string{"proof": "payment proof is required"}
		if err := uc.save(ctx, state); err != nil {
			return nil, err
		}
		return toResponse(state), ErrProofRequired
	}

	// 2. Помечаем сессию как отправляющуюся
	state.Submitting = true
	if err := uc.save(ctx, state); err != nil {
		return nil, err
	}

	// 3. Определяем сумму по выбранной услуге
	amount := uc.resolveAmount(ctx, state.Details.Service)

	// 4. Загружаем чек в медиахранилище; неудача не прерывает отправку
	var proofURL *string
	publicID := proofPublicID(state.Contact.Email, state.Proof.FileName, uc.timeProvider.Now())
	url, err := uc.mediaStore.Upload(ctx, state.Proof.StagedPath, uc.proofFolder, publicID)
	if err != nil {
		uc.logger.Warn("Submit: wizard id=%s proof upload failed, proceeding without proof URL: %v", wizardID, err)
	} else {
		proofURL = ptr.Ptr(url)
	}

	// 5. Создаем бронирование со статусом pending
	date, err := types.NewDateStringFromString(state.Details.Date)
	if err != nil {
		// Дата уже прошла валидацию шага details
		uc.failSubmit(ctx, state)
		return nil, fmt.Errorf("%w: corrupt session date: %v", ErrInternal, err)
	}

	booking := &domain.Booking{
		ClientName:      state.Contact.Name,
		Email:           state.Contact.Email,
		Phone:           state.Contact.Phone,
		ServiceName:     state.Details.Service,
		Date:            date,
		Amount:          amount,
		Status:          domain.StatusPending,
		PaymentProofURL: proofURL,
	}
	if state.Details.Message != "" {
		booking.Notes = ptr.Ptr(state.Details.Message)
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		// Остаемся на шаге payment, введенные поля сохранены для повтора
		uc.logger.Error("Submit: wizard id=%s failed to create booking: %v", wizardID, err)
		uc.failSubmit(ctx, state)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	// 6. Завершаем мастер и убираем файл из каталога подготовки
	uc.discardStagedProof(state)
	state.Step = StepDone
	state.Completed = true
	state.Submitting = false
	state.BookingID = ptr.Ptr(created.ID)
	state.FieldErrors = nil

	// Бронирование уже создано: ошибка сохранения сессии не отменяет
	// отправку, иначе повтор породит дубликат строки
	if err := uc.save(ctx, state); err != nil {
		uc.logger.Error("Submit: wizard id=%s created booking id=%d, but session save failed: %v",
			wizardID, created.ID, err)
	}

	uc.logger.Info("Submit: wizard id=%s created booking id=%d", wizardID, created.ID)
	return toResponse(state), nil
}

// Вспомогательные методы

func (uc *UseCase) load(ctx context.Context, wizardID string) (*State, error) {
	if strings.TrimSpace(wizardID) == "" {
		return nil, fmt.Errorf("%w: wizardID is required", ErrInvalidInput)
	}

	data, err := uc.wizardCache.GetWizardState(ctx, wizardID)
	if err != nil {
		if errors.Is(err, sessioncache.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("load: cache error for wizard id=%s: %v", wizardID, err)
		return nil, fmt.Errorf("%w: cache error: %v", ErrInternal, err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		uc.logger.Error("load: corrupt state for wizard id=%s: %v", wizardID, err)
		return nil, fmt.Errorf("%w: corrupt session state: %v", ErrInternal, err)
	}

	return &state, nil
}

func (uc *UseCase) save(ctx context.Context, state *State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("%w: failed to encode session state: %v", ErrInternal, err)
	}

	if err := uc.wizardCache.SaveWizardState(ctx, state.ID, data, uc.sessionTTL); err != nil {
		return fmt.Errorf("%w: failed to save session state: %v", ErrInternal, err)
	}

	return nil
}

// stageProof записывает принятый файл в каталог подготовки
// Предыдущий файл сессии, если был, удаляется
func (uc *UseCase) stageProof(wizardID string, state *State, req *AttachProofRequest) (string, error) {
	if err := os.MkdirAll(uc.stagingDir, 0o755); err != nil {
		return "", err
	}

	uc.discardStagedProof(state)

	stagedPath := filepath.Join(uc.stagingDir, wizardID+filepath.Ext(req.FileName))
	dst, err := os.Create(stagedPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	// Страховка от расхождения заявленного и фактического размера
	written, err := io.Copy(dst, io.LimitReader(req.File, domain.MaxProofFileSize+1))
	if err != nil {
		os.Remove(stagedPath)
		return "", err
	}
	if written > domain.MaxProofFileSize {
		os.Remove(stagedPath)
		return "", ErrProofTooLarge
	}

	return stagedPath, nil
}

func (uc *UseCase) discardStagedProof(state *State) {
	if state.Proof == nil || state.Proof.StagedPath == "" {
		return
	}
	if err := os.Remove(state.Proof.StagedPath); err != nil && !os.IsNotExist(err) {
		uc.logger.Warn("discardStagedProof: failed to remove staged file %s: %v", state.Proof.StagedPath, err)
	}
}

// failSubmit снимает флаг отправки, оставляя мастер на шаге payment
func (uc *UseCase) failSubmit(ctx context.Context, state *State) {
	state.Submitting = false
	if err := uc.save(ctx, state); err != nil {
		uc.logger.Error("failSubmit: failed to save session id=%s: %v", state.ID, err)
	}
}

// resolveAmount выводит сумму бронирования из каталога услуг
// Неизвестная услуга или цена без цифр дают 0
func (uc *UseCase) resolveAmount(ctx context.Context, serviceTitle string) int64 {
	services, err := uc.serviceRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Warn("resolveAmount: failed to load services, amount defaults to 0: %v", err)
		return 0
	}

	service := domain.FindServiceByTitle(services, serviceTitle)
	if service == nil {
		return 0
	}
	return domain.ParseDisplayPrice(service.Price)
}

// proofPublicID собирает имя объекта в медиахранилище:
// {email-или-anon}_{unix-время}_{исходное-имя-файла}
func proofPublicID(email, fileName string, now time.Time) string {
	owner := strings.TrimSpace(email)
	if owner == "" {
		owner = "anon"
	}
	return fmt.Sprintf("%s_%d_%s", owner, now.Unix(), fileName)
}
