package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"onboardo/internal/config"
	"onboardo/internal/handler"
	"onboardo/internal/model"
	"onboardo/internal/router"
	"onboardo/internal/service"
	"onboardo/internal/session"
	"onboardo/internal/view"
)

// memCache is an in-memory session.Cache for tests. TTL is ignored.
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string][]byte)}
}

func (m *memCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key], nil
}

func (m *memCache) GetDel(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := m.data[key]
	delete(m.data, key)
	return v, nil
}

func (m *memCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// MockRepositoryService is a mock implementation of service.RepositoryService.
type MockRepositoryService struct {
	mock.Mock
}

func (m *MockRepositoryService) List(ctx context.Context) ([]model.Repository, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Repository), args.Error(1)
}

func (m *MockRepositoryService) Get(ctx context.Context, id uint) (*model.Repository, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Repository), args.Error(1)
}

func (m *MockRepositoryService) Create(ctx context.Context, input service.RepositoryInput) (*model.Repository, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Repository), args.Error(1)
}

func (m *MockRepositoryService) Update(ctx context.Context, id uint, input service.RepositoryInput) (*model.Repository, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Repository), args.Error(1)
}

func (m *MockRepositoryService) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	args := m.Called(ctx, name, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*model.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockFavoriteService is a mock implementation of service.FavoriteService.
type MockFavoriteService struct {
	mock.Mock
}

func (m *MockFavoriteService) List(ctx context.Context, userID uint) ([]model.Repository, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Repository), args.Error(1)
}

func (m *MockFavoriteService) Add(ctx context.Context, userID, repositoryID uint) (*model.Repository, error) {
	args := m.Called(ctx, userID, repositoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Repository), args.Error(1)
}

// testApp wires handlers onto a real echo instance with the embedded
// renderer and session middleware, but without the CSRF middleware so
// tests can post forms directly.
type testApp struct {
	e         *echo.Echo
	store     *session.Store
	repos     *MockRepositoryService
	auth      *MockAuthService
	favorites *MockFavoriteService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	e := echo.New()
	renderer, err := view.New()
	assert.NoError(t, err)
	e.Renderer = renderer
	e.Validator = router.NewValidator()
	e.HTTPErrorHandler = router.ErrorHandler()

	store := session.NewStore(newMemCache(), time.Hour)
	e.Use(session.Load(store))

	cfg := &config.Config{SessionTTL: time.Hour}
	repos := new(MockRepositoryService)
	auth := new(MockAuthService)
	favorites := new(MockFavoriteService)

	repositoryHandler := handler.NewRepositoryHandler(repos, store)
	authHandler := handler.NewAuthHandler(auth, store, cfg)
	favoriteHandler := handler.NewFavoriteHandler(favorites, store)

	e.GET("/", repositoryHandler.Index)
	e.GET("/:id", repositoryHandler.Show)
	e.GET("/create", repositoryHandler.New, session.RequireAuth)
	e.POST("/", repositoryHandler.Create, session.RequireAuth)
	e.GET("/:id/edit", repositoryHandler.Edit, session.RequireAuth)
	e.PUT("/:id", repositoryHandler.Update, session.RequireAuth)
	e.DELETE("/:id", repositoryHandler.Delete, session.RequireAuth)

	e.GET("/login", authHandler.ShowLogin, session.RequireGuest)
	e.POST("/login", authHandler.Login, session.RequireGuest)
	e.GET("/register", authHandler.ShowRegister, session.RequireGuest)
	e.POST("/register", authHandler.Register, session.RequireGuest)
	e.POST("/logout", authHandler.Logout, session.RequireAuth)

	e.GET("/favorites", favoriteHandler.Index, session.RequireAuth)
	e.POST("/favorites/:id", favoriteHandler.Create, session.RequireAuth)

	return &testApp{e: e, store: store, repos: repos, auth: auth, favorites: favorites}
}

// signIn creates a session for a fixed test user and returns its cookie.
func (a *testApp) signIn(t *testing.T) (*session.Session, *http.Cookie) {
	t.Helper()
	sess, err := a.store.Create(context.Background(), &model.User{ID: 7, Name: "Ann", Email: "ann@example.com"})
	assert.NoError(t, err)
	return sess, session.NewCookie(sess.Token, time.Hour, false)
}

func (a *testApp) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func formRequest(path string, form url.Values, cookies ...*http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	return req
}
