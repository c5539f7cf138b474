package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"breachwatch/internal/auth"
	"breachwatch/internal/monitor"
	"breachwatch/pkg/logger"
	"breachwatch/pkg/serrors"

	"go.uber.org/zap"
)

// errorBody is the error response shape shared by all endpoints. Status is a
// stable machine-checkable code, Message is for humans.
type errorBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// messageBody is the response shape for endpoints that only acknowledge.
type messageBody struct {
	Message string `json:"message"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(ctx, "could not encode response", zap.Error(err))
	}
}

// statusOf maps a semantic error kind onto an HTTP status code. An
// already-taken registration identifier is reported as 400 rather than 409,
// matching what API clients historically expect from /register.
func statusOf(err error) int {
	switch {
	case errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrMalformedToken),
		errors.Is(err, auth.ErrTokenExpired),
		errors.Is(err, auth.ErrTokenRevoked),
		errors.Is(err, auth.ErrUnknownUser),
		errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, serrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, auth.ErrDuplicateIdentifier),
		errors.Is(err, monitor.ErrInvalidFormat),
		errors.Is(err, ErrMissingField),
		errors.Is(err, serrors.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, serrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, serrors.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as an errorBody. Anything that maps to a 5xx is
// logged and replaced with an opaque INTERNAL body so internals never leak to
// clients.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))

		writeJSON(ctx, w, status, errorBody{Status: "INTERNAL", Message: "internal error"})

		return
	}

	body := errorBody{Status: serrors.CodeOf(err)}

	var serr *serrors.Error
	if errors.As(err, &serr) && serr.Message() != "" {
		body.Message = serr.Message()
	} else {
		body.Message = err.Error()
	}

	writeJSON(ctx, w, status, body)
}

// decodeBody decodes the request body into v, mapping malformed JSON to a
// BAD_REQUEST semantic error.
func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return nil
}
