package booking_wizard

import (
	"regexp"
	"strings"

	"github.com/nekositon/NS-StudioService/internal/domain"
	"github.com/nekositon/NS-StudioService/pkg/types"
)

// Базовая форма email "текст@текст.текст", как проверяет форма на сайте
var emailShape = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// validateContact проверяет поля первого шага
// Возвращает ошибки по каждому полю отдельно
func validateContact(req *SubmitContactRequest) map[string]string {
	fieldErrors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		fieldErrors["name"] = "name is required"
	} else if len(req.Name) > domain.MaxNameLength {
		fieldErrors["name"] = "name is too long"
	}

	email := strings.TrimSpace(req.Email)
	switch {
	case email == "":
		fieldErrors["email"] = "email is required"
	case !emailShape.MatchString(email):
		fieldErrors["email"] = "email is invalid"
	case len(email) > domain.MaxEmailLength:
		fieldErrors["email"] = "email is too long"
	}

	if strings.TrimSpace(req.Phone) == "" {
		fieldErrors["phone"] = "phone is required"
	} else if len(req.Phone) > domain.MaxPhoneLength {
		fieldErrors["phone"] = "phone is too long"
	}

	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}

// validateDetails проверяет поля второго шага
// Услуга должна присутствовать в каталоге; сообщение не проверяется
func validateDetails(req *SubmitDetailsRequest, services []*domain.Service) map[string]string {
	fieldErrors := make(map[string]string)

	service := strings.TrimSpace(req.Service)
	if service == "" {
		fieldErrors["service"] = "service is required"
	} else if domain.FindServiceByTitle(services, service) == nil {
		fieldErrors["service"] = "unknown service"
	}

	date := strings.TrimSpace(req.Date)
	if date == "" {
		fieldErrors["date"] = "date is required"
	} else if _, err := types.NewDateStringFromString(date); err != nil {
		fieldErrors["date"] = "date is invalid"
	}

	if len(req.Message) > domain.MaxNotesLength {
		fieldErrors["message"] = "message is too long"
	}

	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}

// validateProof проверяет тип и размер файла чека до записи на диск
func validateProof(req *AttachProofRequest) map[string]string {
	fieldErrors := make(map[string]string)

	if !domain.AllowedImageMIMETypes[strings.ToLower(req.MIMEType)] {
		fieldErrors["proof"] = "file type is not allowed"
	} else if req.Size > domain.MaxProofFileSize {
		fieldErrors["proof"] = "file is too large"
	}

	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}
