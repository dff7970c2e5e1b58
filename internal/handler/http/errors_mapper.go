package http

import (
	"errors"
	"net/http"

	"github.com/Only-Gg/gih/internal/app"
	"github.com/Only-Gg/gih/internal/logger"
	"github.com/Only-Gg/gih/internal/service"
	"github.com/Only-Gg/gih/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongCredentials:        http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrValidationNoTitle:       http.StatusBadRequest,
	service.ErrValidationNoPassword:    http.StatusBadRequest,
	service.ErrValidationNoMemories:    http.StatusBadRequest,

	store.ErrPageNotFound:        http.StatusNotFound,
	store.ErrPageIDAlreadyExists: http.StatusConflict,
	store.ErrAdminNotFound:       http.StatusNotFound,
	store.ErrAdminAlreadyExists:  http.StatusConflict,
	store.ErrPageNotSaved:        http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
	store.ErrEncodingMemories:   http.StatusInternalServerError,
	store.ErrDecodingMemories:   http.StatusInternalServerError,
}

// errorMessageMap carries the user-facing text for sentinels the client
// shows verbatim. Errors without an entry fall back to the standard status
// text so internals never leak.
var errorMessageMap = map[error]string{
	store.ErrPageNotFound:           app.MsgPageNotFound,
	store.ErrPageIDAlreadyExists:    app.MsgPageIDTaken,
	service.ErrValidationNoMemories: app.MsgNoMemoriesProvided,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error, status int) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return http.StatusText(status)
}

// respondServiceError maps a service or store error onto an HTTP status and
// a user-facing message, logging the underlying cause.
func (h *Handler) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Warn().Err(err).Msg("request rejected")
	}

	http.Error(w, messageFromError(err, status), status)
}
