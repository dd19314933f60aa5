package router

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"onboardo/internal/session"
)

// ErrorHandler renders errors as HTML pages instead of echo's JSON default.
func ErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := "Something went wrong"
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if msg, ok := he.Message.(string); ok {
				message = msg
			}
		}
		if code == http.StatusInternalServerError {
			c.Logger().Error(err)
			message = "Something went wrong"
		}

		csrf, _ := c.Get("csrf").(string)
		data := echo.Map{
			"Code":    code,
			"Message": message,
			"User":    session.FromContext(c),
			"CSRF":    csrf,
			"Flash":   "",
		}
		if renderErr := c.Render(code, "error.html", data); renderErr != nil {
			c.Logger().Error(renderErr)
			_ = c.String(code, message)
		}
	}
}
