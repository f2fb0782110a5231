package db

import (
	"testing"

	"github.com/semear/semear/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateObrigacaoFillsDefaults(t *testing.T) {
	store := newTestStore(t)

	created, err := store.CreateObrigacao(models.Obrigacao{
		Titulo:         "Pagamento de Taxa Mensal",
		Tipo:           "financeira",
		DataVencimento: "2024-03-17",
	})
	require.NoError(t, err)

	assert.Equal(t, models.ObrigacaoPendente, created.Status)
	assert.Equal(t, models.PrioridadeMedia, created.Prioridade)
	assert.Nil(t, created.DataLembrete)

	fetched, err := store.ObrigacaoByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestCreateObrigacaoKeepsExplicitValues(t *testing.T) {
	store := newTestStore(t)

	created, err := store.CreateObrigacao(models.Obrigacao{
		Titulo:         "Declaração de Imposto",
		Tipo:           "legal",
		DataVencimento: "2024-03-12",
		Status:         models.ObrigacaoVencida,
		Prioridade:     models.PrioridadeUrgente,
	})
	require.NoError(t, err)

	assert.Equal(t, models.ObrigacaoVencida, created.Status)
	assert.Equal(t, models.PrioridadeUrgente, created.Prioridade)
}

func TestUpdateObrigacaoClearLembrete(t *testing.T) {
	store := newTestStore(t)

	lembrete := "2024-03-15"
	created, err := store.CreateObrigacao(models.Obrigacao{
		Titulo:         "Renovação de Seguro",
		Tipo:           "legal",
		DataVencimento: "2024-03-25",
		DataLembrete:   &lembrete,
	})
	require.NoError(t, err)

	updated, err := store.UpdateObrigacao(created.ID, models.ObrigacaoUpdate{ClearDataLembrete: true})
	require.NoError(t, err)
	assert.Nil(t, updated.DataLembrete)
}

func TestDeleteObrigacao(t *testing.T) {
	store := newTestStore(t)

	created, err := store.CreateObrigacao(models.Obrigacao{Titulo: "x", Tipo: "legal", DataVencimento: "2024-01-01"})
	require.NoError(t, err)

	require.NoError(t, store.DeleteObrigacao(created.ID))
	_, err = store.ObrigacaoByID(created.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
