package api

import (
	"errors"
	"fmt"
	"strings"
)

// Таксономия ошибок клиента: валидация, авторизация, сеть, отсутствие ресурса.
// Страницы различают их через errors.Is / хелперы ниже
var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidCode        = errors.New("invalid code")
	ErrExpiredCode        = errors.New("expired code")
	ErrConflict           = errors.New("account already exists")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNotFound           = errors.New("not found")
)

// NetworkError - транспортная ошибка (сервер недоступен, таймаут и т.п.)
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error on %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

func IsAuthError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrInvalidCode) ||
		errors.Is(err, ErrExpiredCode) ||
		errors.Is(err, ErrUnauthorized)
}

// errFromStatus превращает статус ответа в ошибку таксономии.
// op - логическое имя операции, serverMsg - поле error из тела ответа
func errFromStatus(op string, status int, serverMsg string) error {
	switch status {
	case 400:
		return fmt.Errorf("%s: %w: %s", op, ErrValidation, serverMsg)
	case 401, 403:
		switch op {
		case "login":
			return fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		case "verify-otp":
			if strings.Contains(strings.ToLower(serverMsg), "expired") {
				return fmt.Errorf("%s: %w", op, ErrExpiredCode)
			}
			return fmt.Errorf("%s: %w", op, ErrInvalidCode)
		default:
			return fmt.Errorf("%s: %w", op, ErrUnauthorized)
		}
	case 404:
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case 409:
		return fmt.Errorf("%s: %w", op, ErrConflict)
	default:
		return fmt.Errorf("%s: server returned %d: %s", op, status, serverMsg)
	}
}
