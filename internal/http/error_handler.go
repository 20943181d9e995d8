package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"user-service/internal/http/handler"
	"user-service/internal/http/middleware"
)

const (
	msgNotFound         = "Not found"
	msgMethodNotAllowed = "Method not allowed"
	msgInternalError    = "Internal server error"

	errRouteNotFound    = "resource not found"
	errMethodNotAllowed = "method not allowed"
	errUnexpected       = "an unexpected error occurred"
)

// CustomHTTPErrorHandler converts every error that escapes the handlers —
// router 404/405s, body-limit rejections, recovered panics — into the
// standard envelope, so clients never see a non-envelope body.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := msgInternalError
	errText := errUnexpected

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		switch code {
		case http.StatusNotFound:
			message = msgNotFound
			errText = errRouteNotFound
		case http.StatusMethodNotAllowed:
			message = msgMethodNotAllowed
			errText = errMethodNotAllowed
		default:
			if code < http.StatusInternalServerError {
				if msg, ok := httpErr.Message.(string); ok && msg != "" {
					message = msg
					errText = msg
				}
			}
		}
	}

	requestID := middleware.GetRequestID(c)
	if code >= http.StatusInternalServerError {
		c.Logger().Errorf("request_id=%s status=%d error=%v", requestID, code, err)
	} else {
		c.Logger().Warnf("request_id=%s status=%d error=%v", requestID, code, err)
	}

	respErr := handler.Respond(c, code, handler.CORSMethodsDefault, handler.Envelope{
		Success: false,
		Message: message,
		Error:   errText,
	})
	if respErr != nil {
		c.Logger().Error(respErr)
	}
}
