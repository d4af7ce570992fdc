package middleware

import (
	"customerHub/pkg/logger"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorHandler normalizes any error that escapes a handler to the
// {"error": ...} body the API speaks everywhere else.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := err.Error()

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		message = fmt.Sprintf("%v", httpErr.Message)
	}

	if writeErr := c.JSON(code, map[string]string{"error": message}); writeErr != nil {
		logger.Error("Failed to write error response", writeErr)
	}
}
