package booking_wizard

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия мастера не найдена или истекла
	ErrSessionNotFound = errors.New("booking_wizard: session not found")

	// ErrWrongStep возвращается, когда операция недопустима на текущем шаге
	ErrWrongStep = errors.New("booking_wizard: operation not allowed at current step")

	// ErrAlreadyCompleted возвращается при попытке работать с завершенной сессией
	ErrAlreadyCompleted = errors.New("booking_wizard: wizard already completed")

	// ErrSubmitInProgress возвращается при повторной отправке, пока идет первая
	ErrSubmitInProgress = errors.New("booking_wizard: submit already in progress")

	// ErrValidationFailed возвращается, когда поля шага не прошли проверку
	// Детали в FieldErrors ответа
	ErrValidationFailed = errors.New("booking_wizard: validation failed")

	// ErrProofRequired возвращается при отправке без приложенного чека оплаты
	ErrProofRequired = errors.New("booking_wizard: payment proof is required")

	// ErrProofTooLarge возвращается, когда файл чека превышает лимит размера
	ErrProofTooLarge = errors.New("booking_wizard: proof file is too large")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("booking_wizard: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("booking_wizard: internal error")
)
