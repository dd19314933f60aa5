package handler_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "onboardo/internal/errors"
	"onboardo/internal/model"
)

func TestFavoriteHandler_Index(t *testing.T) {
	app := newTestApp(t)
	app.favorites.On("List", mock.Anything, uint(7)).Return([]model.Repository{
		{ID: 1, Name: "laravel-app"},
	}, nil)
	_, cookie := app.signIn(t)

	req := httptest.NewRequest(http.MethodGet, "/favorites", nil)
	req.AddCookie(cookie)
	rec := app.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "laravel-app")
}

func TestFavoriteHandler_Index_Empty(t *testing.T) {
	app := newTestApp(t)
	app.favorites.On("List", mock.Anything, uint(7)).Return([]model.Repository{}, nil)
	_, cookie := app.signIn(t)

	req := httptest.NewRequest(http.MethodGet, "/favorites", nil)
	req.AddCookie(cookie)
	rec := app.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "You have no favorite repositories yet.")
}

func TestFavoriteHandler_Index_RequiresAuth(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(httptest.NewRequest(http.MethodGet, "/favorites", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}

func TestFavoriteHandler_Create_RedirectsBack(t *testing.T) {
	app := newTestApp(t)
	app.favorites.On("Add", mock.Anything, uint(7), uint(2)).Return(&model.Repository{ID: 2, Name: "api-service"}, nil)
	_, cookie := app.signIn(t)

	req := formRequest("/favorites/2", url.Values{}, cookie)
	req.Header.Set("Referer", "/2")
	rec := app.do(req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/2", rec.Header().Get(echo.HeaderLocation))
	app.favorites.AssertExpectations(t)
}

func TestFavoriteHandler_Create_NoReferer(t *testing.T) {
	app := newTestApp(t)
	app.favorites.On("Add", mock.Anything, uint(7), uint(2)).Return(&model.Repository{ID: 2}, nil)
	_, cookie := app.signIn(t)

	rec := app.do(formRequest("/favorites/2", url.Values{}, cookie))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
}

func TestFavoriteHandler_Create_SameHostRefererRedirectsBack(t *testing.T) {
	app := newTestApp(t)
	app.favorites.On("Add", mock.Anything, uint(7), uint(2)).Return(&model.Repository{ID: 2}, nil)
	_, cookie := app.signIn(t)

	req := formRequest("/favorites/2", url.Values{}, cookie)
	req.Header.Set("Referer", "http://example.com/2")
	rec := app.do(req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/2", rec.Header().Get(echo.HeaderLocation))
}

func TestFavoriteHandler_Create_ExternalRefererFallsBackHome(t *testing.T) {
	app := newTestApp(t)
	app.favorites.On("Add", mock.Anything, uint(7), uint(2)).Return(&model.Repository{ID: 2}, nil)
	_, cookie := app.signIn(t)

	for _, referer := range []string{
		"https://evil.example/phish",
		"//evil.example/phish",
	} {
		req := formRequest("/favorites/2", url.Values{}, cookie)
		req.Header.Set("Referer", referer)
		rec := app.do(req)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	}
}

func TestFavoriteHandler_Create_RepositoryMissing(t *testing.T) {
	app := newTestApp(t)
	app.favorites.On("Add", mock.Anything, uint(7), uint(99)).Return(nil, apperrors.ErrRepositoryNotFound)
	_, cookie := app.signIn(t)

	rec := app.do(formRequest("/favorites/99", url.Values{}, cookie))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
