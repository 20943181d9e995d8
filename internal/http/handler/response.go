package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	corsAllowOrigin  = "*"
	corsAllowHeaders = "Content-Type,X-Amz-Date,Authorization,X-Api-Key,X-Amz-Security-Token"

	// Allowed methods per path, advertised in CORS headers and preflight
	// responses.
	CORSMethodsLogin   = "POST,OPTIONS"
	CORSMethodsUsers   = "GET,POST,OPTIONS"
	CORSMethodsMe      = "GET,OPTIONS"
	CORSMethodsDefault = "GET,POST,OPTIONS"
)

const (
	msgPreflight        = "CORS preflight successful"
	msgValidationFailed = "Validation failed"
	msgAuthRequired     = "Authentication required"
	msgAccessDenied     = "Access denied"
	msgNotFound         = "Not found"
	msgConflict         = "Conflict"
	msgTooManyRequests  = "Too many requests"
	msgInternalError    = "Internal server error"

	errUnexpected  = "an unexpected error occurred"
	errRateLimited = "rate limit exceeded"
)

// Envelope is the uniform response body shape. Every handler response,
// success or failure, serializes to exactly this.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Respond writes the envelope with the fixed CORS headers attached.
// Producing identical output for identical inputs is relied on by the
// preflight and error paths.
func Respond(c echo.Context, status int, methods string, env Envelope) error {
	header := c.Response().Header()
	header.Set(echo.HeaderAccessControlAllowOrigin, corsAllowOrigin)
	header.Set(echo.HeaderAccessControlAllowHeaders, corsAllowHeaders)
	header.Set(echo.HeaderAccessControlAllowMethods, methods)

	return c.JSON(status, env)
}

func respondSuccess(c echo.Context, status int, methods, message string, data interface{}) error {
	return Respond(c, status, methods, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func respondFailure(c echo.Context, status int, methods, message, errText string) error {
	return Respond(c, status, methods, Envelope{
		Success: false,
		Message: message,
		Error:   errText,
	})
}

// Preflight returns a handler answering OPTIONS requests for a path.
func Preflight(methods string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return Respond(c, http.StatusOK, methods, Envelope{
			Success: true,
			Message: msgPreflight,
		})
	}
}

// TooManyRequests writes the 429 envelope; used by the rate limiting
// middleware.
func TooManyRequests(c echo.Context, methods string) error {
	return respondFailure(c, http.StatusTooManyRequests, methods, msgTooManyRequests, errRateLimited)
}
