package delivery

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"voice-relay/errors"

	"github.com/bytedance/sonic"
)

var errInvalidRequest = fmt.Errorf("invalid request")

// statusOf maps domain errors to HTTP statuses, anything unknown is a 500.
func statusOf(err error) int {
	switch {
	case stderrors.Is(err, errInvalidRequest),
		stderrors.Is(err, errors.ErrUnknownLanguage),
		stderrors.Is(err, errors.ErrEmptyInput):
		return http.StatusBadRequest
	case stderrors.Is(err, errors.ErrUnsupportedAudio):
		return http.StatusUnsupportedMediaType
	case stderrors.Is(err, errors.ErrSessionNotFound),
		stderrors.Is(err, errors.ErrNothingToExport):
		return http.StatusNotFound
	case stderrors.Is(err, errors.ErrRecognitionFailed):
		return http.StatusUnprocessableEntity
	case stderrors.Is(err, errors.ErrTranslationFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, log *slog.Logger, status int, payload any) {
	body, err := sonic.Marshal(payload)
	if err != nil {
		log.Error("Failed to encode response", "err", err)
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log.Debug("Failed to write response", "err", err)
	}
}

func writeError(w http.ResponseWriter, log *slog.Logger, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		log.Error("Request failed", "status", status, "err", err)
	} else {
		log.Debug("Request rejected", "status", status, "err", err)
	}
	writeJSON(w, log, status, ErrorResponse{Error: err.Error()})
}
