package db

import (
	"testing"

	"github.com/semear/semear/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermissionsSeedsFixedCatalog(t *testing.T) {
	store := newTestStore(t)

	permissions, err := store.Permissions()
	require.NoError(t, err)
	require.Len(t, permissions, 20)

	assert.Equal(t, "perm1", permissions[0].ID)
	assert.Equal(t, "usuarios.view", permissions[0].Name)
	assert.Equal(t, "perm20", permissions[19].ID)
	assert.Equal(t, "permissoes.manage", permissions[19].Name)

	groups := map[string]int{}
	for _, p := range permissions {
		groups[p.Group]++
	}
	assert.Equal(t, map[string]int{
		"usuarios":   4,
		"atividades": 4,
		"obrigacoes": 4,
		"reunioes":   4,
		"relatorios": 2,
		"permissoes": 2,
	}, groups)
}

func TestPermissionsStableAcrossUnrelatedWrites(t *testing.T) {
	store := newTestStore(t)

	first, err := store.Permissions()
	require.NoError(t, err)

	_, err = store.CreateAtividade(models.Atividade{Titulo: "x", Tipo: "evento", DataInicio: "2024-01-01"})
	require.NoError(t, err)
	_, err = store.CreateUser(models.User{Name: "u", Email: "u@semear.com", Password: "pw"})
	require.NoError(t, err)

	second, err := store.Permissions()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
