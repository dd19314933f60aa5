package session

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	apperrors "onboardo/internal/errors"
	"onboardo/internal/model"
)

const (
	// CookieName carries the opaque session token.
	CookieName = "onboardo_session"

	sessionKeyPrefix = "session:"
	flashKeyPrefix   = "flash:"
)

// Session is the principal bound to a browser session.
type Session struct {
	Token  string `json:"-"`
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// Cache is the subset of the redis client the store needs.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	GetDel(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Store keeps sessions in redis under opaque UUID tokens. A session is
// created only at login or registration, so every authentication issues a
// token the browser has never seen before, and logout deletes the redis
// entry outright.
type Store struct {
	cache Cache
	ttl   time.Duration
}

// NewStore creates a session store with the given TTL.
func NewStore(cache Cache, ttl time.Duration) *Store {
	return &Store{cache: cache, ttl: ttl}
}

// Create issues a fresh session token for user.
func (s *Store) Create(ctx context.Context, user *model.User) (*Session, error) {
	sess := &Session{
		Token:  uuid.NewString(),
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
	}
	payload, err := json.Marshal(sess)
	if err != nil {
		return nil, fmt.Errorf("marshal session: %w", err)
	}
	if err := s.cache.Set(ctx, sessionKeyPrefix+sess.Token, payload, s.ttl); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return sess, nil
}

// Get resolves a token to its session, or ErrSessionNotFound.
func (s *Store) Get(ctx context.Context, token string) (*Session, error) {
	data, err := s.cache.Get(ctx, sessionKeyPrefix+token)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if data == nil {
		return nil, apperrors.ErrSessionNotFound
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	sess.Token = token
	return &sess, nil
}

// Destroy removes the session and any pending flash message.
func (s *Store) Destroy(ctx context.Context, token string) error {
	if err := s.cache.Delete(ctx, sessionKeyPrefix+token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return s.cache.Delete(ctx, flashKeyPrefix+token)
}

// SetFlash stores a one-shot message for the session's next render.
func (s *Store) SetFlash(ctx context.Context, token, message string) error {
	return s.cache.Set(ctx, flashKeyPrefix+token, []byte(message), s.ttl)
}

// PopFlash returns the pending flash message and clears it, so a message is
// visible on at most one render. Empty string means no message.
func (s *Store) PopFlash(ctx context.Context, token string) (string, error) {
	data, err := s.cache.GetDel(ctx, flashKeyPrefix+token)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// NewCookie builds the session cookie for token.
func NewCookie(token string, ttl time.Duration, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredCookie clears the session cookie on the browser.
func ExpiredCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}
