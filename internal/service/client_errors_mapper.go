// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgEmailAlreadyRegistered:
			return ErrEmailTaken
		case app.MsgUsernameAlreadyTaken:
			return ErrUsernameTaken
		}
		return newValidationError(msg, nil)

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidCredentials:
			return ErrInvalidCredentials
		case app.MsgNotAuthorized:
			return ErrNotLoggedIn
		}
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrNotFound):
		if msg == app.MsgUserNotFound {
			return ErrUserNotFound
		}
		return ErrNoteNotFound

	case errors.Is(err, adapter.ErrTooManyRequests):
		return ErrTooManyRequests

	case errors.Is(err, adapter.ErrInternalServerError):
		return ErrServerUnavailable

	case errors.Is(err, adapter.ErrUnexpectedResponse):
		return ErrUnexpectedServerData
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return ErrServerUnavailable
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
