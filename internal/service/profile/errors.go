package profile

import "errors"

var (
	// ErrUserNotFound возвращается, когда учетная запись не найдена
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken возвращается, когда новый email уже занят
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrUploadFailed возвращается, когда не удалось загрузить аватар
	ErrUploadFailed = errors.New("avatar upload failed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
