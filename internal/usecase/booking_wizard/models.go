package booking_wizard

import (
	"io"
	"time"
)

// Step именованный шаг мастера бронирования
// Переходы: contact -> details -> payment -> done, с возвратом назад
// с шагов details и payment
type Step string

const (
	StepContact Step = "contact"
	StepDetails Step = "details"
	StepPayment Step = "payment"
	StepDone    Step = "done"
)

// ContactFields поля первого шага
type ContactFields struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// DetailsFields поля второго шага
type DetailsFields struct {
	Service string `json:"service"`
	Date    string `json:"date"` // "2006-01-02"
	Message string `json:"message,omitempty"`
}

// ProofMeta метаданные приложенного чека оплаты
type ProofMeta struct {
	FileName   string `json:"fileName"`
	Size       int64  `json:"size"`
	MIMEType   string `json:"mimeType"`
	StagedPath string `json:"stagedPath"`
}

// State состояние сессии мастера, сериализуется в JSON и живет в Redis
type State struct {
	ID          string            `json:"id"`
	Step        Step              `json:"step"`
	Contact     ContactFields     `json:"contact"`
	Details     DetailsFields     `json:"details"`
	Proof       *ProofMeta        `json:"proof,omitempty"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
	Submitting  bool              `json:"submitting"`
	Completed   bool              `json:"completed"`
	BookingID   *int64            `json:"bookingId,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// Request модели

// SubmitContactRequest данные первого шага
type SubmitContactRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// SubmitDetailsRequest данные второго шага
type SubmitDetailsRequest struct {
	Service string `json:"service"`
	Date    string `json:"date"`
	Message string `json:"message,omitempty"`
}

// AttachProofRequest принятый multipart-файл чека оплаты
type AttachProofRequest struct {
	FileName string
	MIMEType string
	Size     int64
	File     io.Reader
}

// Response модель состояния мастера, отдаваемая наружу
type Response struct {
	WizardID    string            `json:"wizardId"`
	Step        string            `json:"step"`
	Contact     ContactFields     `json:"contact"`
	Details     DetailsFields     `json:"details"`
	Proof       *ProofResponse    `json:"proof,omitempty"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
	Completed   bool              `json:"completed"`
	BookingID   *int64            `json:"bookingId,omitempty"`
}

// ProofResponse метаданные чека без внутреннего пути
type ProofResponse struct {
	FileName string `json:"fileName"`
	Size     int64  `json:"size"`
	MIMEType string `json:"mimeType"`
}

// toResponse собирает внешнее представление состояния
func toResponse(s *State) *Response {
	resp := &Response{
		WizardID:    s.ID,
		Step:        string(s.Step),
		Contact:     s.Contact,
		Details:     s.Details,
		FieldErrors: s.FieldErrors,
		Completed:   s.Completed,
		BookingID:   s.BookingID,
	}

	if s.Proof != nil {
		resp.Proof = &ProofResponse{
			FileName: s.Proof.FileName,
			Size:     s.Proof.Size,
			MIMEType: s.Proof.MIMEType,
		}
	}

	return resp
}
