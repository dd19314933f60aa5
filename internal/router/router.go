package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"onboardo/internal/config"
	"onboardo/internal/handler"
	"onboardo/internal/session"
	"onboardo/web"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	sessions *session.Store,
	repositoryHandler *handler.RepositoryHandler,
	authHandler *handler.AuthHandler,
	favoriteHandler *handler.FavoriteHandler,
) {
	// Browsers only submit GET and POST, so PUT/DELETE forms carry an
	// explicit override field. Must run before routing.
	e.Pre(middleware.MethodOverrideWithConfig(middleware.MethodOverrideConfig{
		Getter: middleware.MethodFromForm("_method"),
	}))

	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(session.Load(sessions))
	e.Use(middleware.CSRFWithConfig(middleware.CSRFConfig{
		TokenLookup:    "form:_token",
		CookieName:     "_csrf",
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSecure:   cfg.CookieSecure,
		CookieSameSite: http.SameSiteLaxMode,
	}))

	e.Validator = NewValidator()
	e.HTTPErrorHandler = ErrorHandler()

	e.StaticFS("/static", web.Static())

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	// Public routes
	e.GET("/", repositoryHandler.Index)
	e.GET("/:id", repositoryHandler.Show)

	// Guest-only routes
	guest := e.Group("", session.RequireGuest)
	guest.GET("/register", authHandler.ShowRegister)
	guest.POST("/register", authHandler.Register)
	guest.GET("/login", authHandler.ShowLogin)
	guest.POST("/login", authHandler.Login)

	// Authenticated-only routes
	authed := e.Group("", session.RequireAuth)
	authed.POST("/logout", authHandler.Logout)

	authed.GET("/favorites", favoriteHandler.Index)
	authed.POST("/favorites/:id", favoriteHandler.Create)

	authed.GET("/create", repositoryHandler.New)
	authed.POST("/", repositoryHandler.Create)
	authed.GET("/:id/edit", repositoryHandler.Edit)
	authed.PUT("/:id", repositoryHandler.Update)
	authed.DELETE("/:id", repositoryHandler.Delete)
}
