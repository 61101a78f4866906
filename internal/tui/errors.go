// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/service"
)

var ErrUserQuit = errors.New("user quit")

// humanizeError turns a client service error into a line for the status bar.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return validationErr.Message
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Неверный email или пароль"
	case errors.Is(err, service.ErrEmailTaken):
		return "Email уже зарегистрирован"
	case errors.Is(err, service.ErrUsernameTaken):
		return "Имя пользователя уже занято"
	case errors.Is(err, service.ErrNoteNotFound):
		return "Заметка не найдена"
	case errors.Is(err, service.ErrTooManyRequests):
		return "Слишком много попыток, попробуйте позже"
	case errors.Is(err, service.ErrNotLoggedIn), errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return "Сессия истекла, войдите снова"
	case errors.Is(err, service.ErrServerUnavailable), isNetworkError(err):
		return "Отсутствует сеть или Сервер недоступен"
	case errors.Is(err, service.ErrUnexpectedServerData):
		return "Сервер вернул некорректный ответ"
	}

	return err.Error()
}

func isNetworkError(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded")
}

// isSessionLost reports whether err means the stored token is no longer
// accepted and the user has to log in again.
func isSessionLost(err error) bool {
	return errors.Is(err, service.ErrNotLoggedIn) || errors.Is(err, service.ErrTokenIsExpiredOrInvalid)
}
