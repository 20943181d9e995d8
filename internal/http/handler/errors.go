package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "user-service/pkg/errors"
)

// mapError resolves an error to its HTTP status and public message.
// Discrimination is by tagged error kind, never by message text.
func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, msgValidationFailed
	case errors.Is(err, apperrors.ErrMissingCredential),
		errors.Is(err, apperrors.ErrMalformedToken),
		errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized, msgAuthRequired
	case errors.Is(err, apperrors.ErrAccessDenied):
		return http.StatusForbidden, msgAccessDenied
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, msgNotFound
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, msgConflict
	case errors.Is(err, apperrors.ErrThrottled):
		return http.StatusTooManyRequests, msgTooManyRequests
	default:
		return http.StatusInternalServerError, msgInternalError
	}
}

// respondMappedError writes the envelope for a classified error. The
// AppError message is exposed for client errors only; server errors get a
// generic detail so provider internals never leak.
func respondMappedError(c echo.Context, methods string, err error) error {
	status, message := mapError(err)

	errText := errUnexpected
	var appErr *apperrors.AppError
	if status < http.StatusInternalServerError && errors.As(err, &appErr) {
		errText = appErr.Message
	}

	if status >= http.StatusInternalServerError {
		c.Logger().Errorf("request failed: %v", err)
	}

	return respondFailure(c, status, methods, message, errText)
}

// respondInternalError masks an error entirely, regardless of its kind.
// Admin operations use it for credential-class provider failures, which
// there can only mean service misconfiguration.
func respondInternalError(c echo.Context, methods string, err error) error {
	c.Logger().Errorf("request failed: %v", err)
	return respondFailure(c, http.StatusInternalServerError, methods, msgInternalError, errUnexpected)
}
