package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"onboardo/internal/config"
	apperrors "onboardo/internal/errors"
	"onboardo/internal/service"
	"onboardo/internal/session"
)

// csrfCookieName matches the cookie configured on the CSRF middleware. The
// cookie is dropped at logout so previously rendered forms stop validating.
const csrfCookieName = "_csrf"

// AuthHandler serves registration, login and logout.
type AuthHandler struct {
	auth         service.AuthService
	sessions     *session.Store
	sessionTTL   time.Duration
	secureCookie bool
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(auth service.AuthService, sessions *session.Store, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		auth:         auth,
		sessions:     sessions,
		sessionTTL:   cfg.SessionTTL,
		secureCookie: cfg.CookieSecure,
	}
}

// LoginForm carries the login credentials.
type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// RegisterForm carries the registration fields.
type RegisterForm struct {
	Name     string `form:"name" validate:"required,max=255"`
	Email    string `form:"email" validate:"required,email,max=255"`
	Password string `form:"password" validate:"required,min=8"`
}

// ShowLogin renders the login form.
func (h *AuthHandler) ShowLogin(c echo.Context) error {
	return h.renderLogin(c, LoginForm{}, map[string]string{})
}

// Login verifies credentials and binds the principal to a freshly issued
// session token. Failure re-renders the form with one generic message on
// the email field, identical for unknown email and wrong password.
func (h *AuthHandler) Login(c echo.Context) error {
	var form LoginForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}
	if err := c.Validate(&form); err != nil {
		return h.renderLogin(c, form, fieldErrors(err))
	}

	user, err := h.auth.Login(c.Request().Context(), form.Email, form.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			return h.renderLogin(c, form, map[string]string{"email": "Incorrect email or password"})
		}
		return err
	}

	sess, err := h.sessions.Create(c.Request().Context(), user)
	if err != nil {
		return err
	}
	c.SetCookie(session.NewCookie(sess.Token, h.sessionTTL, h.secureCookie))

	return c.Redirect(http.StatusFound, "/")
}

// ShowRegister renders the registration form.
func (h *AuthHandler) ShowRegister(c echo.Context) error {
	return h.renderRegister(c, RegisterForm{}, map[string]string{})
}

// Register creates the account and signs it in immediately. A duplicate
// email surfaces as a validation error on the email field, no row created.
func (h *AuthHandler) Register(c echo.Context) error {
	var form RegisterForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}
	if err := c.Validate(&form); err != nil {
		return h.renderRegister(c, form, fieldErrors(err))
	}

	user, err := h.auth.Register(c.Request().Context(), form.Name, form.Email, form.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailTaken) {
			return h.renderRegister(c, form, map[string]string{"email": "The email has already been taken"})
		}
		return err
	}

	sess, err := h.sessions.Create(c.Request().Context(), user)
	if err != nil {
		return err
	}
	c.SetCookie(session.NewCookie(sess.Token, h.sessionTTL, h.secureCookie))

	return c.Redirect(http.StatusFound, "/")
}

// Logout destroys the session server-side, expires the session cookie and
// drops the CSRF cookie so stale forms cannot be replayed.
func (h *AuthHandler) Logout(c echo.Context) error {
	sess := session.FromContext(c)
	if sess != nil {
		if err := h.sessions.Destroy(c.Request().Context(), sess.Token); err != nil {
			return err
		}
	}
	c.SetCookie(session.ExpiredCookie(h.secureCookie))
	c.SetCookie(&http.Cookie{
		Name:     csrfCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	return c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) renderLogin(c echo.Context, form LoginForm, errs map[string]string) error {
	data := page(c, h.sessions)
	form.Password = ""
	data["Form"] = form
	data["Errors"] = errs
	return c.Render(http.StatusOK, "auth/login.html", data)
}

func (h *AuthHandler) renderRegister(c echo.Context, form RegisterForm, errs map[string]string) error {
	data := page(c, h.sessions)
	form.Password = ""
	data["Form"] = form
	data["Errors"] = errs
	return c.Render(http.StatusOK, "auth/register.html", data)
}
