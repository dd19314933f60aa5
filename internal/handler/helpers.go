package handler

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "onboardo/internal/errors"
	"onboardo/internal/session"
)

// csrfContextKey matches the echo CSRF middleware's context key.
const csrfContextKey = "csrf"

// page builds the data every rendered page needs: the current principal,
// the CSRF token for forms, and the one-shot flash message.
func page(c echo.Context, sessions *session.Store) echo.Map {
	sess := session.FromContext(c)
	data := echo.Map{
		"User":  sess,
		"CSRF":  csrfToken(c),
		"Flash": "",
	}
	if sess != nil {
		flash, err := sessions.PopFlash(c.Request().Context(), sess.Token)
		if err != nil {
			// A lost flash message should not fail the page.
			c.Logger().Warnf("pop flash: %v", err)
		} else {
			data["Flash"] = flash
		}
	}
	return data
}

func csrfToken(c echo.Context) string {
	token, _ := c.Get(csrfContextKey).(string)
	return token
}

// fieldErrors converts validator errors into per-field messages keyed by
// form field name, for form re-render.
func fieldErrors(err error) map[string]string {
	msgs := make(map[string]string)
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return msgs
	}
	for _, fe := range ves {
		if _, seen := msgs[fe.Field()]; seen {
			continue
		}
		msgs[fe.Field()] = fieldMessage(fe)
	}
	return msgs
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "The " + fe.Field() + " field is required"
	case "email":
		return "The email must be a valid email address"
	case "url":
		return "The " + fe.Field() + " must be a valid URL"
	case "max":
		return "The " + fe.Field() + " may not be greater than " + fe.Param() + " characters"
	case "min":
		return "The " + fe.Field() + " must be at least " + fe.Param() + " characters"
	default:
		return "The " + fe.Field() + " field is invalid"
	}
}

// mapDomainError turns domain sentinels into HTTP errors for the error page.
func mapDomainError(err error) error {
	if errors.Is(err, apperrors.ErrRepositoryNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Repository not found")
	}
	return err
}
