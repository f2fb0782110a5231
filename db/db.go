// ABOUTME: Store core - owns the persisted association document
// ABOUTME: Handles document load/save cycles, id generation and the clock
package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/semear/semear/models"
	"github.com/semear/semear/storage"
)

// DefaultStorageKey is the key the association document lives under.
const DefaultStorageKey = "semear_database"

// ErrNotFound reports an id that resolves to no record. Callers treat it as
// an expected condition, not a failure of the store itself.
var ErrNotFound = errors.New("record not found")

// document is the single persisted aggregate: every collection plus the
// legacy currentUser slot, serialized as one JSON object.
type document struct {
	Users         []models.User                `json:"users"`
	Atividades    []models.Atividade           `json:"atividades"`
	Obrigacoes    []models.Obrigacao           `json:"obrigacoes"`
	Reunioes      []models.Reuniao             `json:"reunioes"`
	Atas          []models.Ata                 `json:"atas"`
	Decisoes      []models.Decisao             `json:"decisoes"`
	Participantes []models.ParticipanteReuniao `json:"participantesReuniao"`
	Lembretes     []models.LembreteReuniao     `json:"lembretesReuniao"`
	Tarefas       []models.Tarefa              `json:"tarefas"`
	Roles         []models.Role                `json:"roles"`
	Permissions   []models.Permission          `json:"permissions"`

	// CurrentUser is written null at initialization and never read; the
	// session record under its own key is the real source of truth. Kept so
	// existing documents round-trip unchanged.
	CurrentUser *models.User `json:"currentUser"`
}

func newDocument() *document {
	return &document{
		Users:         []models.User{},
		Atividades:    []models.Atividade{},
		Obrigacoes:    []models.Obrigacao{},
		Reunioes:      []models.Reuniao{},
		Atas:          []models.Ata{},
		Decisoes:      []models.Decisao{},
		Participantes: []models.ParticipanteReuniao{},
		Lembretes:     []models.LembreteReuniao{},
		Tarefas:       []models.Tarefa{},
		Roles:         []models.Role{},
		Permissions:   []models.Permission{},
	}
}

// Store is the sole owner of the persisted document. Every read is a single
// document load; every mutation is one load, a batch of in-memory edits and
// one save, so multi-step changes such as cascade deletes never persist an
// intermediate state.
type Store struct {
	backend storage.Backend
	key     string
	now     func() time.Time
	newID   func() string
}

// Option customizes a Store.
type Option func(*Store)

// WithStorageKey overrides the document's storage key.
func WithStorageKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// WithClock injects the time source used for timestamps and seed dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator injects the record id generator.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

func New(backend storage.Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		key:     DefaultStorageKey,
		now:     time.Now,
		newID:   func() string { return ulid.Make().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize persists an empty document if none exists yet. Idempotent.
func (s *Store) Initialize() error {
	_, err := s.backend.Get(s.key)
	if err == nil {
		return nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return err
	}
	return s.save(newDocument())
}

func (s *Store) load() (*document, error) {
	raw, err := s.backend.Get(s.key)
	if errors.Is(err, storage.ErrNotFound) {
		return newDocument(), nil
	}
	if err != nil {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode association document: %w", err)
	}
	doc.ensureCollections()
	return &doc, nil
}

func (s *Store) save(doc *document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode association document: %w", err)
	}
	return s.backend.Set(s.key, raw)
}

// withDocument runs one load → mutate → save cycle. When fn returns an error
// nothing is persisted, so a failed mutation leaves the prior state intact.
func (s *Store) withDocument(fn func(doc *document) error) error {
	doc, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.save(doc)
}

// readDocument runs fn against a freshly loaded document without saving.
func (s *Store) readDocument(fn func(doc *document)) error {
	doc, err := s.load()
	if err != nil {
		return err
	}
	fn(doc)
	return nil
}

// ensureCollections replaces nil slices with empty ones so documents written
// by older code still expose every collection.
func (d *document) ensureCollections() {
	if d.Users == nil {
		d.Users = []models.User{}
	}
	if d.Atividades == nil {
		d.Atividades = []models.Atividade{}
	}
	if d.Obrigacoes == nil {
		d.Obrigacoes = []models.Obrigacao{}
	}
	if d.Reunioes == nil {
		d.Reunioes = []models.Reuniao{}
	}
	if d.Atas == nil {
		d.Atas = []models.Ata{}
	}
	if d.Decisoes == nil {
		d.Decisoes = []models.Decisao{}
	}
	if d.Participantes == nil {
		d.Participantes = []models.ParticipanteReuniao{}
	}
	if d.Lembretes == nil {
		d.Lembretes = []models.LembreteReuniao{}
	}
	if d.Tarefas == nil {
		d.Tarefas = []models.Tarefa{}
	}
	if d.Roles == nil {
		d.Roles = []models.Role{}
	}
	if d.Permissions == nil {
		d.Permissions = []models.Permission{}
	}
}
