// ABOUTME: Session management over the store's user collection
// ABOUTME: Login, registration, logout and current-user lookup; session record never holds the password
package auth

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/semear/semear/db"
	"github.com/semear/semear/models"
	"github.com/semear/semear/storage"
)

// DefaultSessionKey is the storage key the session record lives under,
// separate from the association document.
const DefaultSessionKey = "semear_current_user"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
)

// SessionManager tracks the current user. Two states: anonymous (no session
// record) and authenticated (session record present).
type SessionManager struct {
	store      *db.Store
	backend    storage.Backend
	key        string
	authorizer Authorizer
}

// Option customizes a SessionManager.
type Option func(*SessionManager)

// WithSessionKey overrides the session record's storage key.
func WithSessionKey(key string) Option {
	return func(m *SessionManager) { m.key = key }
}

// WithAuthorizer replaces the permission policy.
func WithAuthorizer(a Authorizer) Option {
	return func(m *SessionManager) { m.authorizer = a }
}

func NewSessionManager(store *db.Store, backend storage.Backend, opts ...Option) *SessionManager {
	m := &SessionManager{
		store:      store,
		backend:    backend,
		key:        DefaultSessionKey,
		authorizer: AllowAll{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Login checks the credentials against the user collection. The email match
// is exact and case-sensitive. On success the session record is persisted
// with the password stripped.
func (m *SessionManager) Login(email, password string) (*models.User, error) {
	user, err := m.store.UserByEmail(email)
	if errors.Is(err, db.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	if user.Password != password {
		return nil, ErrInvalidCredentials
	}
	return m.establishSession(*user)
}

// Register creates the user and logs them in. ErrEmailTaken when the email
// already belongs to a user; the existing session is left untouched then.
func (m *SessionManager) Register(name, email, password string) (*models.User, error) {
	_, err := m.store.UserByEmail(email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, db.ErrNotFound) {
		return nil, err
	}

	user, err := m.store.CreateUser(models.User{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}
	return m.establishSession(*user)
}

func (m *SessionManager) establishSession(user models.User) (*models.User, error) {
	session := user.WithoutPassword()
	raw, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("encode session record: %w", err)
	}
	if err := m.backend.Set(m.key, raw); err != nil {
		return nil, err
	}
	return &session, nil
}

// Logout clears the session record. Logging out while anonymous is a no-op.
func (m *SessionManager) Logout() error {
	return m.backend.Delete(m.key)
}

// CurrentUser returns the session record, or nil when anonymous.
func (m *SessionManager) CurrentUser() (*models.User, error) {
	raw, err := m.backend.Get(m.key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("decode session record: %w", err)
	}
	return &user, nil
}

func (m *SessionManager) IsAuthenticated() bool {
	user, err := m.CurrentUser()
	return err == nil && user != nil
}

// HasPermission asks the configured Authorizer about the current user.
func (m *SessionManager) HasPermission(permission string) bool {
	user, err := m.CurrentUser()
	if err != nil {
		return false
	}
	return m.authorizer.Allow(user, permission)
}
