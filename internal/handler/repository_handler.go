package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"onboardo/internal/service"
	"onboardo/internal/session"
)

// RepositoryHandler serves the catalog pages and CRUD forms.
type RepositoryHandler struct {
	repos    service.RepositoryService
	sessions *session.Store
}

// NewRepositoryHandler creates a new catalog handler.
func NewRepositoryHandler(repos service.RepositoryService, sessions *session.Store) *RepositoryHandler {
	return &RepositoryHandler{repos: repos, sessions: sessions}
}

// RepositoryForm carries the writable repository fields. Anything outside
// these fields never reaches the service layer, whatever the request sends.
type RepositoryForm struct {
	Name        string `form:"name" validate:"required,max=255"`
	URL         string `form:"url" validate:"required,url,max=255"`
	Description string `form:"description" validate:"omitempty,max=255"`
	Guide       string `form:"guide" validate:"required"`
}

func (f RepositoryForm) input() service.RepositoryInput {
	return service.RepositoryInput{
		Name:        f.Name,
		URL:         f.URL,
		Description: f.Description,
		Guide:       f.Guide,
	}
}

// Index renders the home page listing every repository.
func (h *RepositoryHandler) Index(c echo.Context) error {
	repos, err := h.repos.List(c.Request().Context())
	if err != nil {
		return err
	}
	data := page(c, h.sessions)
	data["Repositories"] = repos
	return c.Render(http.StatusOK, "repositories/index.html", data)
}

// New renders the empty create form.
func (h *RepositoryHandler) New(c echo.Context) error {
	data := page(c, h.sessions)
	data["Form"] = RepositoryForm{}
	data["Errors"] = map[string]string{}
	return c.Render(http.StatusOK, "repositories/create.html", data)
}

// Create validates the form and persists a new repository. Validation
// failures re-render the form with field messages and no side effect.
func (h *RepositoryHandler) Create(c echo.Context) error {
	var form RepositoryForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}
	if err := c.Validate(&form); err != nil {
		data := page(c, h.sessions)
		data["Form"] = form
		data["Errors"] = fieldErrors(err)
		return c.Render(http.StatusOK, "repositories/create.html", data)
	}

	if _, err := h.repos.Create(c.Request().Context(), form.input()); err != nil {
		return err
	}

	h.flash(c, "Entity added successfully")
	return c.Redirect(http.StatusFound, "/")
}

// Show renders a single repository, or 404.
func (h *RepositoryHandler) Show(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	repo, err := h.repos.Get(c.Request().Context(), id)
	if err != nil {
		return mapDomainError(err)
	}
	data := page(c, h.sessions)
	data["Repository"] = repo
	return c.Render(http.StatusOK, "repositories/show.html", data)
}

// Edit renders the edit form prefilled with the current values, or 404.
func (h *RepositoryHandler) Edit(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	repo, err := h.repos.Get(c.Request().Context(), id)
	if err != nil {
		return mapDomainError(err)
	}
	data := page(c, h.sessions)
	data["Repository"] = repo
	data["Form"] = RepositoryForm{
		Name:        repo.Name,
		URL:         repo.URL,
		Description: repo.Description,
		Guide:       repo.Guide,
	}
	data["Errors"] = map[string]string{}
	return c.Render(http.StatusOK, "repositories/edit.html", data)
}

// Update validates the form and overwrites the allow-listed fields, or 404.
func (h *RepositoryHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	repo, err := h.repos.Get(c.Request().Context(), id)
	if err != nil {
		return mapDomainError(err)
	}

	var form RepositoryForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}
	if err := c.Validate(&form); err != nil {
		data := page(c, h.sessions)
		data["Repository"] = repo
		data["Form"] = form
		data["Errors"] = fieldErrors(err)
		return c.Render(http.StatusOK, "repositories/edit.html", data)
	}

	if _, err := h.repos.Update(c.Request().Context(), id, form.input()); err != nil {
		return mapDomainError(err)
	}

	h.flash(c, "Entity updated successfully")
	return c.Redirect(http.StatusFound, "/")
}

// Delete hard-deletes the repository, or 404. Confirmation, where present,
// is a client-side gate before the request is sent.
func (h *RepositoryHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.repos.Delete(c.Request().Context(), id); err != nil {
		return mapDomainError(err)
	}

	h.flash(c, "Entity deleted successfully")
	return c.Redirect(http.StatusFound, "/")
}

func (h *RepositoryHandler) flash(c echo.Context, message string) {
	sess := session.FromContext(c)
	if sess == nil {
		return
	}
	if err := h.sessions.SetFlash(c.Request().Context(), sess.Token, message); err != nil {
		c.Logger().Warnf("set flash: %v", err)
	}
}

// parseID reads the :id path parameter. A non-numeric id is treated the
// same as a missing row.
func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusNotFound, "Repository not found")
	}
	return uint(id), nil
}
