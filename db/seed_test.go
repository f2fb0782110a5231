package db

import (
	"testing"

	"github.com/semear/semear/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCreatesBaseline(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Seed())

	roles, err := store.Roles()
	require.NoError(t, err)
	require.Len(t, roles, 3)
	assert.Equal(t, "Super Admin", roles[0].Name)
	assert.Len(t, roles[0].Permissions, 20)
	assert.Equal(t, "Admin", roles[1].Name)
	assert.Equal(t, []string{"perm1", "perm2", "perm3", "perm19", "perm20"}, roles[1].Permissions)
	assert.Equal(t, "Usuário", roles[2].Name)
	assert.Equal(t, []string{"perm5", "perm9", "perm13"}, roles[2].Permissions)

	users, err := store.Users()
	require.NoError(t, err)
	require.Len(t, users, 4)
	assert.Equal(t, "Administrador", users[0].Name)
	assert.True(t, users[0].CanManagePermissions)

	adminRoles, err := store.UserRoles(users[0].ID)
	require.NoError(t, err)
	require.Len(t, adminRoles, 1)
	assert.Equal(t, "Super Admin", adminRoles[0].Name)

	atividades, err := store.Atividades()
	require.NoError(t, err)
	assert.Len(t, atividades, 5)

	obrigacoes, err := store.Obrigacoes()
	require.NoError(t, err)
	assert.Len(t, obrigacoes, 4)

	reunioes, err := store.Reunioes()
	require.NoError(t, err)
	require.Len(t, reunioes, 3)

	participantes, err := store.ParticipantesByReuniao(reunioes[0].ID)
	require.NoError(t, err)
	assert.Len(t, participantes, 3)

	atas, err := store.Atas()
	require.NoError(t, err)
	assert.Len(t, atas, 1)

	decisoes, err := store.Decisoes()
	require.NoError(t, err)
	assert.Len(t, decisoes, 2)
}

func TestSeedIsIdempotent(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Seed())
	require.NoError(t, store.Seed())

	users, err := store.Users()
	require.NoError(t, err)
	assert.Len(t, users, 4)

	admins := 0
	for _, u := range users {
		if u.Name == "Administrador" {
			admins++
		}
	}
	assert.Equal(t, 1, admins)

	roles, err := store.Roles()
	require.NoError(t, err)
	assert.Len(t, roles, 3)

	atividades, err := store.Atividades()
	require.NoError(t, err)
	assert.Len(t, atividades, 5)

	reunioes, err := store.Reunioes()
	require.NoError(t, err)
	assert.Len(t, reunioes, 3)
}

func TestSeedKeepsExistingUsers(t *testing.T) {
	store := newTestStore(t)

	existing, err := store.CreateUser(models.User{Name: "Ana", Email: "ana@x.com", Password: "pw"})
	require.NoError(t, err)

	require.NoError(t, store.Seed())

	users, err := store.Users()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, existing.ID, users[0].ID)

	// Roles are still ensured even when users already exist
	roles, err := store.Roles()
	require.NoError(t, err)
	assert.Len(t, roles, 3)
}
