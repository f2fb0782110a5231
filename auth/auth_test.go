package auth

import (
	"testing"

	"github.com/semear/semear/db"
	"github.com/semear/semear/models"
	"github.com/semear/semear/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionManager(t *testing.T) (*SessionManager, *db.Store) {
	t.Helper()
	backend := storage.NewMemory()
	store := db.New(backend)
	return NewSessionManager(store, backend), store
}

func TestRegisterAutoLogsIn(t *testing.T) {
	sessions, _ := newTestSessionManager(t)

	user, err := sessions.Register("Ana", "ana@x.com", "pw1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Name)
	assert.Empty(t, user.Password)

	assert.True(t, sessions.IsAuthenticated())
	current, err := sessions.CurrentUser()
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "ana@x.com", current.Email)
	assert.Empty(t, current.Password)
}

func TestRegisterDuplicateEmailKeepsSession(t *testing.T) {
	sessions, _ := newTestSessionManager(t)

	_, err := sessions.Register("Ana", "ana@x.com", "pw1")
	require.NoError(t, err)

	_, err = sessions.Register("Ana2", "ana@x.com", "pw2")
	require.ErrorIs(t, err, ErrEmailTaken)

	current, err := sessions.CurrentUser()
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "Ana", current.Name)
}

func TestLoginSuccess(t *testing.T) {
	sessions, store := newTestSessionManager(t)

	_, err := store.CreateUser(models.User{Name: "Ana", Email: "ana@x.com", Password: "pw1"})
	require.NoError(t, err)

	user, err := sessions.Login("ana@x.com", "pw1")
	require.NoError(t, err)
	assert.Empty(t, user.Password)
	assert.True(t, sessions.IsAuthenticated())
}

func TestLoginUnknownEmail(t *testing.T) {
	sessions, _ := newTestSessionManager(t)

	_, err := sessions.Login("nobody@x.com", "pw")
	require.ErrorIs(t, err, ErrUserNotFound)
	assert.False(t, sessions.IsAuthenticated())
}

func TestLoginWrongPasswordKeepsSession(t *testing.T) {
	sessions, _ := newTestSessionManager(t)

	_, err := sessions.Register("Ana", "ana@x.com", "pw1")
	require.NoError(t, err)

	_, err = sessions.Login("ana@x.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// The failed login does not alter the existing session
	current, err := sessions.CurrentUser()
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "Ana", current.Name)
}

func TestLogoutIsIdempotent(t *testing.T) {
	sessions, _ := newTestSessionManager(t)

	_, err := sessions.Register("Ana", "ana@x.com", "pw1")
	require.NoError(t, err)

	require.NoError(t, sessions.Logout())
	assert.False(t, sessions.IsAuthenticated())

	current, err := sessions.CurrentUser()
	require.NoError(t, err)
	assert.Nil(t, current)

	require.NoError(t, sessions.Logout())
}

func TestSessionRecordOmitsPassword(t *testing.T) {
	backend := storage.NewMemory()
	store := db.New(backend)
	sessions := NewSessionManager(store, backend)

	_, err := sessions.Register("Ana", "ana@x.com", "secret")
	require.NoError(t, err)

	raw, err := backend.Get(DefaultSessionKey)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret")
	assert.NotContains(t, string(raw), `"password"`)
}

func TestHasPermissionAllowAllPolicy(t *testing.T) {
	sessions, _ := newTestSessionManager(t)

	assert.False(t, sessions.HasPermission("atividades.view"))

	_, err := sessions.Register("Ana", "ana@x.com", "pw1")
	require.NoError(t, err)

	assert.True(t, sessions.HasPermission("atividades.view"))
	assert.True(t, sessions.HasPermission("permissoes.manage"))

	require.NoError(t, sessions.Logout())
	assert.False(t, sessions.HasPermission("atividades.view"))
}

type denyAll struct{}

func (denyAll) Allow(user *models.User, permission string) bool { return false }

func TestCustomAuthorizer(t *testing.T) {
	backend := storage.NewMemory()
	store := db.New(backend)
	sessions := NewSessionManager(store, backend, WithAuthorizer(denyAll{}))

	_, err := sessions.Register("Ana", "ana@x.com", "pw1")
	require.NoError(t, err)

	assert.False(t, sessions.HasPermission("atividades.view"))
}

func TestLoginPrefersStoreOverStaleSession(t *testing.T) {
	sessions, store := newTestSessionManager(t)

	created, err := store.CreateUser(models.User{Name: "Ana", Email: "ana@x.com", Password: "pw1"})
	require.NoError(t, err)

	_, err = sessions.Login("ana@x.com", "pw1")
	require.NoError(t, err)

	name := "Ana Maria"
	_, err = store.UpdateUser(created.ID, models.UserUpdate{Name: &name})
	require.NoError(t, err)

	// Session record is a snapshot taken at login time
	current, err := sessions.CurrentUser()
	require.NoError(t, err)
	assert.Equal(t, "Ana", current.Name)

	_, err = sessions.Login("ana@x.com", "pw1")
	require.NoError(t, err)
	current, err = sessions.CurrentUser()
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", current.Name)
}
