package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is matched in order, so wrapped sentinels must precede the
// sentinels they wrap.
var errorResponses = []errorResponse{
	{target: service.ErrEmailTaken, status: http.StatusBadRequest, message: app.MsgEmailAlreadyRegistered},
	{target: service.ErrUsernameTaken, status: http.StatusBadRequest, message: app.MsgUsernameAlreadyTaken},
	{target: service.ErrConflict, status: http.StatusBadRequest, message: app.MsgInvalidDataProvided},
	{target: service.ErrInvalidCredentials, status: http.StatusUnauthorized, message: app.MsgInvalidCredentials},
	{target: service.ErrTokenIsExpiredOrInvalid, status: http.StatusUnauthorized, message: app.MsgTokenIsExpiredOrInvalid},
	{target: ErrEmptyAuthorizationHeader, status: http.StatusUnauthorized, message: app.MsgNotAuthorized},
	{target: utils.ErrInvalidAuthorizationHeader, status: http.StatusUnauthorized, message: app.MsgNotAuthorized},
	{target: ErrNoIdentityInContext, status: http.StatusUnauthorized, message: app.MsgNotAuthorized},
	{target: service.ErrNoteNotFound, status: http.StatusNotFound, message: app.MsgNoteNotFound},
	{target: service.ErrUserNotFound, status: http.StatusNotFound, message: app.MsgUserNotFound},
	{target: ErrInvalidJSON, status: http.StatusBadRequest, message: app.MsgInvalidDataProvided},
}

// responseFromError maps err to a status code and a message that is safe to
// show to the caller. Unknown errors become a 500 without details.
func responseFromError(err error) (int, string) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr.Message
	}

	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.message
		}
	}

	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeServiceError logs err once and writes the failed envelope.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := responseFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, message, status)
}
