package models

import (
	"time"

	"github.com/nekositon/NS-StudioService/internal/domain"
)

// SubmitMessageRequest запрос формы обратной связи
type SubmitMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Service string `json:"service,omitempty"`
	Message string `json:"message"`
}

// ToDomain конвертирует запрос в domain модель
func (r *SubmitMessageRequest) ToDomain() *domain.ContactMessage {
	return &domain.ContactMessage{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Service: r.Service,
		Message: r.Message,
	}
}

// MessageResponse ответ на отправку сообщения
type MessageResponse struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}
