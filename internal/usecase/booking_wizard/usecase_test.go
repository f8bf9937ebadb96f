package booking_wizard

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekositon/NS-StudioService/internal/domain"
	"github.com/nekositon/NS-StudioService/internal/infra/sessioncache"
)

// Моки

type memWizardCache struct {
	states map[string][]byte

	// saveErr включает отказ записи; saveErrAfter задает, сколько записей
	// еще пройдет до отказа (-1 - без ограничения)
	saveErr      error
	saveErrAfter int
}

func newMemWizardCache() *memWizardCache {
	return &memWizardCache{states: make(map[string][]byte), saveErrAfter: -1}
}

func (c *memWizardCache) SaveWizardState(_ context.Context, sessionID string, state []byte, _ time.Duration) error {
	if c.saveErr != nil {
		if c.saveErrAfter == 0 {
			return c.saveErr
		}
		if c.saveErrAfter > 0 {
			c.saveErrAfter--
		}
	}
	c.states[sessionID] = state
	return nil
}

func (c *memWizardCache) GetWizardState(_ context.Context, sessionID string) ([]byte, error) {
	data, ok := c.states[sessionID]
	if !ok {
		return nil, sessioncache.ErrSessionNotFound
	}
	return data, nil
}

func (c *memWizardCache) DeleteWizardState(_ context.Context, sessionID string) error {
	delete(c.states, sessionID)
	return nil
}

type stubServiceRepo struct {
	services []*domain.Service
	err      error
}

func (r *stubServiceRepo) GetAll(_ context.Context) ([]*domain.Service, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.services, nil
}

type stubBookingRepo struct {
	created *domain.Booking
	nextID  int64
	err     error
}

func (r *stubBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.created = booking
	created := *booking
	created.ID = r.nextID
	return &created, nil
}

type stubMediaStore struct {
	url          string
	err          error
	lastPublicID string
	calls        int
}

func (s *stubMediaStore) Upload(_ context.Context, _, _, publicID string) (string, error) {
	s.calls++
	s.lastPublicID = publicID
	if s.err != nil {
		return "", s.err
	}
	return s.url, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Сборка use case c моками

type wizardFixture struct {
	uc       *UseCase
	cache    *memWizardCache
	services *stubServiceRepo
	bookings *stubBookingRepo
	media    *stubMediaStore
}

func newWizardFixture(t *testing.T) *wizardFixture {
	t.Helper()

	f := &wizardFixture{
		cache: newMemWizardCache(),
		services: &stubServiceRepo{services: []*domain.Service{
			{ID: 1, Title: "Package A", Price: "₱ 20,000"},
			{ID: 2, Title: "Classic Portrait", Price: "₱ 6,000"},
		}},
		bookings: &stubBookingRepo{nextID: 77},
		media:    &stubMediaStore{url: "https://cdn.example.com/proofs/p.png"},
	}

	f.uc = NewUseCase(
		f.cache,
		f.services,
		f.bookings,
		f.media,
		t.TempDir(),
		"payment-proofs",
		time.Hour,
		nopLogger{},
	)
	f.uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)}

	return f
}

func (f *wizardFixture) startedWizard(t *testing.T) string {
	t.Helper()
	resp, err := f.uc.Start(context.Background())
	require.NoError(t, err)
	require.Equal(t, string(StepContact), resp.Step)
	return resp.WizardID
}

func (f *wizardFixture) wizardAtPayment(t *testing.T) string {
	t.Helper()
	id := f.startedWizard(t)
	ctx := context.Background()

	_, err := f.uc.SubmitContact(ctx, id, &SubmitContactRequest{
		Name:  "Maria Santos",
		Email: "maria@example.com",
		Phone: "09171234567",
	})
	require.NoError(t, err)

	_, err = f.uc.SubmitDetails(ctx, id, &SubmitDetailsRequest{
		Service: "Package A",
		Date:    "2026-06-20",
		Message: "Garden wedding",
	})
	require.NoError(t, err)
	return id
}

func (f *wizardFixture) attachValidProof(t *testing.T, wizardID string) {
	t.Helper()
	_, err := f.uc.AttachProof(context.Background(), wizardID, &AttachProofRequest{
		FileName: "receipt.png",
		MIMEType: "image/png",
		Size:     2048,
		File:     strings.NewReader(strings.Repeat("x", 2048)),
	})
	require.NoError(t, err)
}

// Тесты

func TestWizardStepFlow(t *testing.T) {
	f := newWizardFixture(t)
	ctx := context.Background()

	id := f.startedWizard(t)

	resp, err := f.uc.SubmitContact(ctx, id, &SubmitContactRequest{
		Name:  "Maria Santos",
		Email: "maria@example.com",
		Phone: "09171234567",
	})
	require.NoError(t, err)
	assert.Equal(t, string(StepDetails), resp.Step)
	assert.Empty(t, resp.FieldErrors)

	resp, err = f.uc.SubmitDetails(ctx, id, &SubmitDetailsRequest{
		Service: "Package A",
		Date:    "2026-06-20",
	})
	require.NoError(t, err)
	assert.Equal(t, string(StepPayment), resp.Step)

	// Состояние переживает перечитывание из кеша
	resp, err = f.uc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, string(StepPayment), resp.Step)
	assert.Equal(t, "Maria Santos", resp.Contact.Name)
	assert.Equal(t, "Package A", resp.Details.Service)
}

func TestWizardGetUnknownSession(t *testing.T) {
	f := newWizardFixture(t)

	_, err := f.uc.Get(context.Background(), "no-such-session")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestWizardContactValidation(t *testing.T) {
	f := newWizardFixture(t)
	ctx := context.Background()
	id := f.startedWizard(t)

	resp, err := f.uc.SubmitContact(ctx, id, &SubmitContactRequest{
		Name:  "",
		Email: "not-an-email",
		Phone: "",
	})
	assert.ErrorIs(t, err, ErrValidationFailed)
	require.NotNil(t, resp)
	assert.Equal(t, string(StepContact), resp.Step)
	assert.Contains(t, resp.FieldErrors, "name")
	assert.Contains(t, resp.FieldErrors, "email")
	assert.Contains(t, resp.FieldErrors, "phone")

	// Ошибки сохранены в сессии и видны при следующем чтении
	resp, err = f.uc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "email is invalid", resp.FieldErrors["email"])

	// Исправленные поля проходят и очищают ошибки
	resp, err = f.uc.SubmitContact(ctx, id, &SubmitContactRequest{
		Name:  "Maria Santos",
		Email: "maria@example.com",
		Phone: "09171234567",
	})
	require.NoError(t, err)
	assert.Empty(t, resp.FieldErrors)
	assert.Equal(t, string(StepDetails), resp.Step)
}

func TestWizardDetailsValidation(t *testing.T) {
	f := newWizardFixture(t)
	ctx := context.Background()
	id := f.startedWizard(t)

	_, err := f.uc.SubmitContact(ctx, id, &SubmitContactRequest{
		Name:  "Maria Santos",
		Email: "maria@example.com",
		Phone: "09171234567",
	})
	require.NoError(t, err)

	resp, err := f.uc.SubmitDetails(ctx, id, &SubmitDetailsRequest{
		Service: "Nonexistent Package",
		Date:    "20-06-2026",
	})
	assert.ErrorIs(t, err, ErrValidationFailed)
	require.NotNil(t, resp)
	assert.Equal(t, string(StepDetails), resp.Step)
	assert.Equal(t, "unknown service", resp.FieldErrors["service"])
	assert.Equal(t, "date is invalid", resp.FieldErrors["date"])
}

func TestWizardStepGate(t *testing.T) {
	f := newWizardFixture(t)
	ctx := context.Background()
	id := f.startedWizard(t)

	// details до прохождения contact
	_, err := f.uc.SubmitDetails(ctx, id, &SubmitDetailsRequest{
		Service: "Package A",
		Date:    "2026-06-20",
	})
	assert.ErrorIs(t, err, ErrWrongStep)

	// submit до прохождения details
	_, err = f.uc.Submit(ctx, id)
	assert.ErrorIs(t, err, ErrWrongStep)
}

func TestWizardAttachProofRejectsBadMIMEType(t *testing.T) {
	f := newWizardFixture(t)
	id := f.wizardAtPayment(t)

	resp, err := f.uc.AttachProof(context.Background(), id, &AttachProofRequest{
		FileName: "receipt.pdf",
		MIMEType: "application/pdf",
		Size:     1024,
		File:     strings.NewReader("%PDF-1.4"),
	})
	assert.ErrorIs(t, err, ErrValidationFailed)
	require.NotNil(t, resp)
	assert.Equal(t, "file type is not allowed", resp.FieldErrors["proof"])
	assert.Nil(t, resp.Proof)
}

func TestWizardAttachProofRejectsOversizedFile(t *testing.T) {
	f := newWizardFixture(t)
	id := f.wizardAtPayment(t)

	resp, err := f.uc.AttachProof(context.Background(), id, &AttachProofRequest{
		FileName: "receipt.png",
		MIMEType: "image/png",
		Size:     domain.MaxProofFileSize + 1,
		File:     strings.NewReader("irrelevant"),
	})
	assert.ErrorIs(t, err, ErrValidationFailed)
	require.NotNil(t, resp)
	assert.Equal(t, "file is too large", resp.FieldErrors["proof"])
}

func TestWizardAttachProofStagesFile(t *testing.T) {
	f := newWizardFixture(t)
	id := f.wizardAtPayment(t)

	resp, err := f.uc.AttachProof(context.Background(), id, &AttachProofRequest{
		FileName: "receipt.png",
		MIMEType: "image/png",
		Size:     4,
		File:     strings.NewReader("data"),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Proof)
	assert.Equal(t, "receipt.png", resp.Proof.FileName)

	// Файл лежит в каталоге подготовки
	stagedPath := filepath.Join(f.uc.stagingDir, id+".png")
	data, err := os.ReadFile(stagedPath)
	require.NoError(t, err)
	assert.Equal(t, "data", string(data))
}

func TestWizardRemoveProof(t *testing.T) {
	f := newWizardFixture(t)
	ctx := context.Background()
	id := f.wizardAtPayment(t)
	f.attachValidProof(t, id)

	resp, err := f.uc.RemoveProof(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, resp.Proof)

	// Отправка без чека теперь отклоняется
	resp, err = f.uc.Submit(ctx, id)
	assert.ErrorIs(t, err, ErrProofRequired)
	require.NotNil(t, resp)
	assert.Contains(t, resp.FieldErrors, "proof")
}

func TestWizardBack(t *testing.T) {
	f := newWizardFixture(t)
	ctx := context.Background()
	id := f.wizardAtPayment(t)

	resp, err := f.uc.Back(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, string(StepDetails), resp.Step)

	resp, err = f.uc.Back(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, string(StepContact), resp.Step)

	// На первом шаге возвращаться некуда, остаемся на месте
	resp, err = f.uc.Back(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, string(StepContact), resp.Step)

	// Введенные поля не теряются при возврате
	assert.Equal(t, "Maria Santos", resp.Contact.Name)
	assert.Equal(t, "Package A", resp.Details.Service)
}

func TestWizardSubmitCreatesPendingBooking(t *testing.T) {
	f := newWizardFixture(t)
	ctx := context.Background()
	id := f.wizardAtPayment(t)
	f.attachValidProof(t, id)

	resp, err := f.uc.Submit(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, string(StepDone), resp.Step)
	assert.True(t, resp.Completed)
	require.NotNil(t, resp.BookingID)
	assert.Equal(t, int64(77), *resp.BookingID)

	created := f.bookings.created
	require.NotNil(t, created)
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.Equal(t, "Maria Santos", created.ClientName)
	assert.Equal(t, "maria@example.com", created.Email)
	assert.Equal(t, "Package A", created.ServiceName)
	assert.Equal(t, "2026-06-20", created.Date.String())
	assert.Equal(t, int64(20000), created.Amount)
	require.NotNil(t, created.Notes)
	assert.Equal(t, "Garden wedding", *created.Notes)
	require.NotNil(t, created.PaymentProofURL)
	assert.Equal(t, "https://cdn.example.com/proofs/p.png", *created.PaymentProofURL)

	// Имя объекта в медиахранилище: {email}_{unix}_{имя файла}
	expected := "maria@example.com_" + "1773489600" + "_receipt.png"
	assert.Equal(t, expected, f.media.lastPublicID)
}

func TestWizardSubmitWithoutMessage(t *testing.T) {
	f := newWizardFixture(t)
	ctx := context.Background()
	id := f.startedWizard(t)

	_, err := f.uc.SubmitContact(ctx, id, &SubmitContactRequest{
		Name:  "Maria Santos",
		Email: "maria@example.com",
		Phone: "09171234567",
	})
	require.NoError(t, err)

	// Сообщение необязательно и может быть пустым
	_, err = f.uc.SubmitDetails(ctx, id, &SubmitDetailsRequest{
		Service: "Package A",
		Date:    "2026-06-20",
		Message: "",
	})
	require.NoError(t, err)
	f.attachValidProof(t, id)

	resp, err := f.uc.Submit(ctx, id)
	require.NoError(t, err)
	assert.True(t, resp.Completed)

	created := f.bookings.created
	require.NotNil(t, created)
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.Nil(t, created.Notes)
}

func TestWizardSubmitProofUploadFailureIsNotFatal(t *testing.T) {
	f := newWizardFixture(t)
	f.media.err = errors.New("cloud unreachable")
	ctx := context.Background()
	id := f.wizardAtPayment(t)
	f.attachValidProof(t, id)

	resp, err := f.uc.Submit(ctx, id)
	require.NoError(t, err)
	assert.True(t, resp.Completed)

	created := f.bookings.created
	require.NotNil(t, created)
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.Nil(t, created.PaymentProofURL)
}

func TestWizardSubmitUnknownServiceAmountIsZero(t *testing.T) {
	f := newWizardFixture(t)
	ctx := context.Background()
	id := f.wizardAtPayment(t)

	// Услуга пропадает из каталога между шагами details и submit
	f.services.services = []*domain.Service{
		{ID: 2, Title: "Classic Portrait", Price: "₱ 6,000"},
	}
	f.attachValidProof(t, id)

	_, err := f.uc.Submit(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, f.bookings.created)
	assert.Equal(t, int64(0), f.bookings.created.Amount)
}

func TestWizardSubmitBookingFailureKeepsFields(t *testing.T) {
	f := newWizardFixture(t)
	f.bookings.err = errors.New("db down")
	ctx := context.Background()
	id := f.wizardAtPayment(t)
	f.attachValidProof(t, id)

	_, err := f.uc.Submit(ctx, id)
	assert.ErrorIs(t, err, ErrInternal)

	// Мастер остался на шаге payment, поля и чек сохранены для повтора
	resp, err := f.uc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, string(StepPayment), resp.Step)
	assert.False(t, resp.Completed)
	assert.Equal(t, "Maria Santos", resp.Contact.Name)
	require.NotNil(t, resp.Proof)

	// Повторная отправка после восстановления базы проходит
	f.bookings.err = nil
	resp, err = f.uc.Submit(ctx, id)
	require.NoError(t, err)
	assert.True(t, resp.Completed)
}

func TestWizardSubmitFinalSaveFailureStillSucceeds(t *testing.T) {
	f := newWizardFixture(t)
	ctx := context.Background()
	id := f.wizardAtPayment(t)
	f.attachValidProof(t, id)

	// Запись флага отправки проходит, финальная запись сессии падает
	f.cache.saveErr = errors.New("redis down")
	f.cache.saveErrAfter = 1

	// Бронирование создано, поэтому отправка успешна несмотря на кеш:
	// ошибка здесь спровоцировала бы повтор и дубликат строки
	resp, err := f.uc.Submit(ctx, id)
	require.NoError(t, err)
	assert.True(t, resp.Completed)
	require.NotNil(t, resp.BookingID)
	assert.Equal(t, int64(77), *resp.BookingID)
	require.NotNil(t, f.bookings.created)
}

func TestWizardSubmitTwiceRejected(t *testing.T) {
	f := newWizardFixture(t)
	ctx := context.Background()
	id := f.wizardAtPayment(t)
	f.attachValidProof(t, id)

	_, err := f.uc.Submit(ctx, id)
	require.NoError(t, err)

	_, err = f.uc.Submit(ctx, id)
	assert.ErrorIs(t, err, ErrAlreadyCompleted)
}

func TestWizardCompletedSessionIsReadOnly(t *testing.T) {
	f := newWizardFixture(t)
	ctx := context.Background()
	id := f.wizardAtPayment(t)
	f.attachValidProof(t, id)

	_, err := f.uc.Submit(ctx, id)
	require.NoError(t, err)

	_, err = f.uc.SubmitContact(ctx, id, &SubmitContactRequest{})
	assert.ErrorIs(t, err, ErrAlreadyCompleted)
	_, err = f.uc.Back(ctx, id)
	assert.ErrorIs(t, err, ErrAlreadyCompleted)
	_, err = f.uc.RemoveProof(ctx, id)
	assert.ErrorIs(t, err, ErrAlreadyCompleted)
}

func TestProofPublicID(t *testing.T) {
	now := time.Unix(1700000000, 0)

	assert.Equal(t, "a@b.co_1700000000_r.png", proofPublicID("a@b.co", "r.png", now))
	assert.Equal(t, "anon_1700000000_r.png", proofPublicID("  ", "r.png", now))
}
