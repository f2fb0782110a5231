package db

import (
	"testing"
	"time"

	"github.com/semear/semear/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestReuniao(t *testing.T, store *Store, titulo string) *models.Reuniao {
	t.Helper()
	reuniao, err := store.CreateReuniao(models.Reuniao{
		Titulo:   titulo,
		Tipo:     "ordinaria",
		DataHora: time.Date(2024, 3, 20, 14, 0, 0, 0, time.UTC),
		Local:    "Sala de reuniões",
	})
	require.NoError(t, err)
	return reuniao
}

func TestCreateReuniaoDefaultsToAgendada(t *testing.T) {
	store := newTestStore(t)

	reuniao := createTestReuniao(t, store, "Reunião Mensal")
	assert.Equal(t, models.ReuniaoAgendada, reuniao.Status)

	fetched, err := store.ReuniaoByID(reuniao.ID)
	require.NoError(t, err)
	assert.Equal(t, reuniao, fetched)
}

func TestDeleteReuniaoCascades(t *testing.T) {
	store := newTestStore(t)

	user, err := store.CreateUser(models.User{Name: "João", Email: "joao@semear.com", Password: "123456"})
	require.NoError(t, err)

	alvo := createTestReuniao(t, store, "a excluir")
	outra := createTestReuniao(t, store, "a manter")

	_, err = store.AddParticipante(alvo.ID, user.ID)
	require.NoError(t, err)
	_, err = store.AddParticipante(outra.ID, user.ID)
	require.NoError(t, err)

	_, err = store.CreateLembreteReuniao(alvo.ID, "email")
	require.NoError(t, err)
	_, err = store.CreateLembreteReuniao(outra.ID, "email")
	require.NoError(t, err)

	_, err = store.CreateAta(models.Ata{ReuniaoID: alvo.ID, Conteudo: "ata"})
	require.NoError(t, err)
	_, err = store.CreateAta(models.Ata{ReuniaoID: outra.ID, Conteudo: "ata"})
	require.NoError(t, err)

	_, err = store.CreateDecisao(models.Decisao{ReuniaoID: alvo.ID, Titulo: "decisão"})
	require.NoError(t, err)
	_, err = store.CreateDecisao(models.Decisao{ReuniaoID: outra.ID, Titulo: "decisão"})
	require.NoError(t, err)

	require.NoError(t, store.DeleteReuniao(alvo.ID))

	_, err = store.ReuniaoByID(alvo.ID)
	require.ErrorIs(t, err, ErrNotFound)

	for name, lookup := range map[string]func(string) (int, error){
		"participantes": func(id string) (int, error) {
			rows, err := store.ParticipantesByReuniao(id)
			return len(rows), err
		},
		"lembretes": func(id string) (int, error) {
			rows, err := store.LembretesByReuniao(id)
			return len(rows), err
		},
		"atas": func(id string) (int, error) {
			rows, err := store.AtasByReuniao(id)
			return len(rows), err
		},
		"decisoes": func(id string) (int, error) {
			rows, err := store.DecisoesByReuniao(id)
			return len(rows), err
		},
	} {
		gone, err := lookup(alvo.ID)
		require.NoError(t, err)
		assert.Zero(t, gone, "expected no %s for deleted meeting", name)

		kept, err := lookup(outra.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, kept, "expected %s of other meeting untouched", name)
	}
}

func TestMeetingLifecycleScenario(t *testing.T) {
	store := newTestStore(t)

	user, err := store.CreateUser(models.User{Name: "Ana", Email: "ana@semear.com", Password: "pw"})
	require.NoError(t, err)
	reuniao := createTestReuniao(t, store, "Reunião Mensal")

	_, err = store.AddParticipante(reuniao.ID, user.ID)
	require.NoError(t, err)

	confirmado, err := store.ConfirmarPresenca(reuniao.ID, user.ID)
	require.NoError(t, err)
	assert.True(t, confirmado.Confirmado)

	require.NoError(t, store.DeleteReuniao(reuniao.ID))

	participantes, err := store.ParticipantesByReuniao(reuniao.ID)
	require.NoError(t, err)
	assert.Empty(t, participantes)
}

func TestUpdateReuniaoClearOrganizador(t *testing.T) {
	store := newTestStore(t)

	organizador := "user1"
	reuniao, err := store.CreateReuniao(models.Reuniao{
		Titulo:        "Comissão",
		Tipo:          "comissao",
		DataHora:      time.Date(2024, 4, 1, 19, 0, 0, 0, time.UTC),
		OrganizadorID: &organizador,
	})
	require.NoError(t, err)

	updated, err := store.UpdateReuniao(reuniao.ID, models.ReuniaoUpdate{ClearOrganizador: true})
	require.NoError(t, err)
	assert.Nil(t, updated.OrganizadorID)
}
