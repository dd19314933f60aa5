package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"onboardo/internal/service"
	"onboardo/internal/session"
)

// FavoriteHandler serves the current user's favorites.
type FavoriteHandler struct {
	favorites service.FavoriteService
	sessions  *session.Store
}

// NewFavoriteHandler creates a new favorites handler.
func NewFavoriteHandler(favorites service.FavoriteService, sessions *session.Store) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites, sessions: sessions}
}

// Index renders the repositories the current user has favorited.
func (h *FavoriteHandler) Index(c echo.Context) error {
	sess := session.FromContext(c)
	repos, err := h.favorites.List(c.Request().Context(), sess.UserID)
	if err != nil {
		return err
	}
	data := page(c, h.sessions)
	data["Repositories"] = repos
	return c.Render(http.StatusOK, "favorites/index.html", data)
}

// Create favorites the repository for the current user, then redirects back
// to the referring page.
func (h *FavoriteHandler) Create(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	sess := session.FromContext(c)
	if _, err := h.favorites.Add(c.Request().Context(), sess.UserID, id); err != nil {
		return mapDomainError(err)
	}

	return c.Redirect(http.StatusFound, backTarget(c))
}

// backTarget resolves the Referer to a same-site path. Anything pointing off
// this host, including protocol-relative forms, falls back to the home page
// so the redirect cannot be used to bounce users elsewhere.
func backTarget(c echo.Context) string {
	ref, err := url.Parse(c.Request().Referer())
	if err != nil || (ref.Host != "" && ref.Host != c.Request().Host) {
		return "/"
	}
	target := ref.RequestURI()
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return "/"
	}
	return target
}
