package handler

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/labstack/echo/v4"

	apperrors "user-service/pkg/errors"
)

const (
	maxBodyBytes int64 = 1 << 20

	errRequestBodyRequired = "request body is required"
	errInvalidJSONFormat   = "invalid JSON format"
)

// bindJSON decodes the request body into dst. An absent or empty body and
// unparsable JSON are distinct validation failures.
func bindJSON(c echo.Context, dst interface{}) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxBodyBytes))
	if err != nil || len(bytes.TrimSpace(body)) == 0 {
		return apperrors.Validation(errRequestBodyRequired)
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return apperrors.Validation(errInvalidJSONFormat)
	}

	return nil
}
