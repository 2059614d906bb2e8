// Package session owns the client's authentication state: the stored token
// pair, the authenticated flag, and the cached user profile. All mutations
// go through the Manager, which publishes every state change to subscribers
// in mutation order.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/noteskeeper/internal/client/api"
	"github.com/dmitrijs2005/noteskeeper/internal/client/models"
	"github.com/dmitrijs2005/noteskeeper/internal/client/repositories/tokens"
	"github.com/dmitrijs2005/noteskeeper/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

// MinPasswordLength is the documented minimum for new passwords. The check
// runs client-side before any request is sent.
const MinPasswordLength = 8

var ErrPasswordTooShort = errors.New("new password must be at least 8 characters")

// APIClient is the slice of the HTTP client the manager depends on.
type APIClient interface {
	Login(ctx context.Context, username, password string) (models.TokenPair, error)
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	RefreshToken(ctx context.Context, refresh string) (models.TokenPair, error)
	UserInfo(ctx context.Context, token string) (models.User, error)
	ChangePassword(ctx context.Context, token string, req models.ChangePasswordRequest) (models.MessageResponse, error)
}

// State is an immutable snapshot of the published session state.
type State struct {
	Authenticated bool
	User          *models.User
}

// Subscriber receives state snapshots. Callbacks run synchronously while the
// manager's internal lock is held, which is what guarantees exactly-once
// delivery in mutation order; a subscriber must not call back into the
// Manager.
type Subscriber func(State)

// Manager coordinates the token store and the API client. Token pair writes
// go through the repository's atomic SetPair, so concurrent readers never
// observe a half-updated pair.
type Manager struct {
	api    APIClient
	tokens tokens.Repository
	log    logging.Logger

	mu            sync.Mutex
	authenticated bool
	user          *models.User
	subscribers   []Subscriber
}

func NewManager(apiClient APIClient, repo tokens.Repository, log logging.Logger) *Manager {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Manager{api: apiClient, tokens: repo, log: log}
}

// Bootstrap derives the initial state from persisted tokens: a stored access
// token means the session starts authenticated, and the profile is fetched
// best-effort. A failed profile fetch never reverts authentication.
func (m *Manager) Bootstrap(ctx context.Context) error {
	access, err := m.tokens.Get(ctx, tokens.KeyAccessToken)
	if err != nil {
		return err
	}
	if access == "" {
		return nil
	}

	m.setState(true, nil)
	m.loadProfile(ctx, access)
	return nil
}

// Subscribe registers fn for all subsequent state changes.
func (m *Manager) Subscribe(fn Subscriber) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscribers = append(m.subscribers, fn)
}

// setState applies a mutation and notifies subscribers before releasing the
// lock, so notifications cannot interleave across mutations.
func (m *Manager) setState(authenticated bool, user *models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.authenticated = authenticated
	m.user = user

	snapshot := State{Authenticated: authenticated, User: user}
	for _, fn := range m.subscribers {
		fn(snapshot)
	}
}

// Authenticated reports whether the session currently holds an access token.
func (m *Manager) Authenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.authenticated
}

// CurrentUser returns the cached profile, or nil before the first
// successful fetch.
func (m *Manager) CurrentUser() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

// AccessToken implements api.TokenSource for the notes client. Store errors
// degrade to "no token"; the server rejects the unauthenticated call.
func (m *Manager) AccessToken(ctx context.Context) string {
	access, err := m.tokens.Get(ctx, tokens.KeyAccessToken)
	if err != nil {
		m.log.Warn(ctx, "reading access token failed", "error", err)
		return ""
	}
	return access
}

// Login exchanges credentials for a token pair, persists it, flips the
// session to authenticated and fetches the profile best-effort. On any
// failure the state stays unauthenticated.
func (m *Manager) Login(ctx context.Context, username, password string) error {
	pair, err := m.api.Login(ctx, username, password)
	if err != nil {
		return err
	}

	if err := m.tokens.SetPair(ctx, pair.Access, pair.Refresh); err != nil {
		return err
	}

	m.setState(true, nil)
	m.log.Info(ctx, "logged in", "username", username)

	m.loadProfile(ctx, pair.Access)
	return nil
}

// loadProfile is the best-effort fetch after login and on bootstrap.
func (m *Manager) loadProfile(ctx context.Context, access string) {
	user, err := m.api.UserInfo(ctx, access)
	if err != nil {
		m.log.Warn(ctx, "profile fetch failed", "error", err)
		return
	}
	m.setState(true, &user)
}

// Register creates an account on the server. It does not authenticate the
// session; the caller logs in separately.
func (m *Manager) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.api.Register(ctx, req)
}

// RefreshAccessToken trades the stored refresh token for a new pair and
// overwrites both stored tokens. Without a stored refresh token it fails
// with an unauthorized error and no HTTP call is made. The authenticated
// flag is left untouched, and no previously failed request is retried:
// there is deliberately no 401-refresh-retry loop.
func (m *Manager) RefreshAccessToken(ctx context.Context) error {
	refresh, err := m.tokens.Get(ctx, tokens.KeyRefreshToken)
	if err != nil {
		return err
	}
	if refresh == "" {
		return &api.Error{Kind: api.KindUnauthorized, Message: "no refresh token stored"}
	}

	pair, err := m.api.RefreshToken(ctx, refresh)
	if err != nil {
		return err
	}

	return m.tokens.SetPair(ctx, pair.Access, pair.Refresh)
}

// GetUserInfo fetches and caches the current profile. A failure, including
// a 401, leaves the stored tokens alone; there is no implicit logout.
func (m *Manager) GetUserInfo(ctx context.Context) (models.User, error) {
	access, err := m.tokens.Get(ctx, tokens.KeyAccessToken)
	if err != nil {
		return models.User{}, err
	}
	if access == "" {
		return models.User{}, &api.Error{Kind: api.KindUnauthorized, Message: "no access token stored"}
	}

	user, err := m.api.UserInfo(ctx, access)
	if err != nil {
		return models.User{}, err
	}

	m.setState(true, &user)
	return user, nil
}

// ChangePassword validates the new password locally, then submits the
// change with the stored access token.
func (m *Manager) ChangePassword(ctx context.Context, oldPassword, newPassword string) (models.MessageResponse, error) {
	if len(newPassword) < MinPasswordLength {
		return models.MessageResponse{}, ErrPasswordTooShort
	}

	access, err := m.tokens.Get(ctx, tokens.KeyAccessToken)
	if err != nil {
		return models.MessageResponse{}, err
	}
	if access == "" {
		return models.MessageResponse{}, &api.Error{Kind: api.KindUnauthorized, Message: "no access token stored"}
	}

	req := models.ChangePasswordRequest{OldPassword: oldPassword, NewPassword: newPassword}
	return m.api.ChangePassword(ctx, access, req)
}

// Logout clears both tokens and the cached user. Safe to call from any
// state, any number of times.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.tokens.Clear(ctx); err != nil {
		return err
	}

	m.setState(false, nil)
	m.log.Info(ctx, "logged out")
	return nil
}

// TokenExpiry reads the expiry claim of the stored access token without
// verifying the signature. Purely informational for display; requests are
// never gated on it. Returns false for absent or non-JWT tokens.
func (m *Manager) TokenExpiry(ctx context.Context) (time.Time, bool) {
	access, err := m.tokens.Get(ctx, tokens.KeyAccessToken)
	if err != nil || access == "" {
		return time.Time{}, false
	}

	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(access, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
