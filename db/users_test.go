package db

import (
	"testing"

	"github.com/semear/semear/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserFillsDefaults(t *testing.T) {
	store := newTestStore(t)

	created, err := store.CreateUser(models.User{
		Name:     "Ana Souza",
		Email:    "ana@semear.com",
		Password: "pw1",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CanManagePermissions)
	assert.NotNil(t, created.RoleIDs)
	assert.Empty(t, created.RoleIDs)

	fetched, err := store.UserByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestUserByEmailIsCaseSensitive(t *testing.T) {
	store := newTestStore(t)

	_, err := store.CreateUser(models.User{Name: "Ana", Email: "ana@semear.com", Password: "pw"})
	require.NoError(t, err)

	found, err := store.UserByEmail("ana@semear.com")
	require.NoError(t, err)
	assert.Equal(t, "Ana", found.Name)

	_, err = store.UserByEmail("Ana@semear.com")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateUser(t *testing.T) {
	store := newTestStore(t)

	created, err := store.CreateUser(models.User{Name: "Ana", Email: "ana@semear.com", Password: "pw"})
	require.NoError(t, err)

	name := "Ana Maria"
	can := true
	updated, err := store.UpdateUser(created.ID, models.UserUpdate{
		Name:                 &name,
		CanManagePermissions: &can,
	})
	require.NoError(t, err)

	assert.Equal(t, "Ana Maria", updated.Name)
	assert.True(t, updated.CanManagePermissions)
	assert.Equal(t, created.Email, updated.Email)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestDeleteUser(t *testing.T) {
	store := newTestStore(t)

	created, err := store.CreateUser(models.User{Name: "Ana", Email: "ana@semear.com", Password: "pw"})
	require.NoError(t, err)

	require.NoError(t, store.DeleteUser(created.ID))
	_, err = store.UserByID(created.ID)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.DeleteUser(created.ID))
}
