package db

import (
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/semear/semear/models"
	"github.com/semear/semear/storage"
	"github.com/stretchr/testify/require"
)

// testClock hands out strictly increasing instants so updated_at comparisons
// are deterministic.
type testClock struct {
	current time.Time
}

func newTestClock() *testClock {
	return &testClock{current: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.current = c.current.Add(time.Second)
	return c.current
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	var seq atomic.Int64
	clock := newTestClock()
	return New(storage.NewMemory(),
		WithClock(clock.Now),
		WithIDGenerator(func() string {
			return fmt.Sprintf("id%d", seq.Add(1))
		}),
	)
}

// failingBackend simulates an unavailable storage area.
type failingBackend struct{}

func (failingBackend) Get(key string) ([]byte, error) {
	return nil, storage.ErrUnavailable
}

func (failingBackend) Set(key string, value []byte) error {
	return storage.ErrUnavailable
}

func (failingBackend) Delete(key string) error {
	return storage.ErrUnavailable
}

func TestInitializeIsIdempotent(t *testing.T) {
	backend := storage.NewMemory()
	store := New(backend)

	require.NoError(t, store.Initialize())

	raw, err := backend.Get(DefaultStorageKey)
	require.NoError(t, err)

	require.NoError(t, store.Initialize())
	rawAgain, err := backend.Get(DefaultStorageKey)
	require.NoError(t, err)
	require.Equal(t, raw, rawAgain)
}

func TestDocumentHasAllCollections(t *testing.T) {
	backend := storage.NewMemory()
	store := New(backend)
	require.NoError(t, store.Initialize())

	raw, err := backend.Get(DefaultStorageKey)
	require.NoError(t, err)

	for _, key := range []string{
		"users", "atividades", "obrigacoes", "reunioes", "atas", "decisoes",
		"participantesReuniao", "lembretesReuniao", "tarefas", "roles",
		"permissions", "currentUser",
	} {
		require.Contains(t, string(raw), `"`+key+`"`)
	}
}

func TestStorageUnavailablePropagates(t *testing.T) {
	store := New(failingBackend{})

	_, err := store.Atividades()
	require.ErrorIs(t, err, storage.ErrUnavailable)

	_, err = store.CreateAtividade(models.Atividade{Titulo: "x", Tipo: "evento", DataInicio: "2024-01-01"})
	require.ErrorIs(t, err, storage.ErrUnavailable)

	err = store.DeleteAtividade("whatever")
	require.ErrorIs(t, err, storage.ErrUnavailable)
}

func TestNotFoundIsNotAStorageFailure(t *testing.T) {
	store := newTestStore(t)

	_, err := store.AtividadeByID("nope")
	require.ErrorIs(t, err, ErrNotFound)
	require.False(t, errors.Is(err, storage.ErrUnavailable))
}

func TestDefaultIDsAreUnique(t *testing.T) {
	store := New(storage.NewMemory())

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := store.newID()
		require.NotEmpty(t, id)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
