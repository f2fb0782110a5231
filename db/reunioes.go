// ABOUTME: Reuniao collection operations
// ABOUTME: Meeting CRUD; delete cascades to participants, reminders, minutes and decisions
package db

import "github.com/semear/semear/models"

func (s *Store) Reunioes() ([]models.Reuniao, error) {
	var reunioes []models.Reuniao
	err := s.readDocument(func(doc *document) {
		reunioes = doc.Reunioes
	})
	return reunioes, err
}

func (s *Store) ReuniaoByID(id string) (*models.Reuniao, error) {
	var found *models.Reuniao
	err := s.readDocument(func(doc *document) {
		for i := range doc.Reunioes {
			if doc.Reunioes[i].ID == id {
				r := doc.Reunioes[i]
				found = &r
				return
			}
		}
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}

func (s *Store) CreateReuniao(r models.Reuniao) (*models.Reuniao, error) {
	var created models.Reuniao
	err := s.withDocument(func(doc *document) error {
		now := s.now()
		r.ID = s.newID()
		if r.Status == "" {
			r.Status = models.ReuniaoAgendada
		}
		r.CreatedAt = now
		r.UpdatedAt = now
		doc.Reunioes = append(doc.Reunioes, r)
		created = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *Store) UpdateReuniao(id string, upd models.ReuniaoUpdate) (*models.Reuniao, error) {
	var updated models.Reuniao
	err := s.withDocument(func(doc *document) error {
		for i := range doc.Reunioes {
			if doc.Reunioes[i].ID != id {
				continue
			}
			r := &doc.Reunioes[i]
			if upd.Titulo != nil {
				r.Titulo = *upd.Titulo
			}
			if upd.Descricao != nil {
				r.Descricao = *upd.Descricao
			}
			if upd.Tipo != nil {
				r.Tipo = *upd.Tipo
			}
			if upd.DataHora != nil {
				r.DataHora = *upd.DataHora
			}
			if upd.Local != nil {
				r.Local = *upd.Local
			}
			if upd.Status != nil {
				r.Status = *upd.Status
			}
			if upd.ClearOrganizador {
				r.OrganizadorID = nil
			} else if upd.OrganizadorID != nil {
				r.OrganizadorID = upd.OrganizadorID
			}
			r.UpdatedAt = s.now()
			updated = *r
			return nil
		}
		return ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteReuniao removes the meeting and every row that references it:
// participants, reminders, minutes and decisions. All removals happen in one
// load→save cycle, so the document never persists a partial cascade.
func (s *Store) DeleteReuniao(id string) error {
	return s.withDocument(func(doc *document) error {
		reunioes := doc.Reunioes[:0]
		for _, r := range doc.Reunioes {
			if r.ID != id {
				reunioes = append(reunioes, r)
			}
		}
		doc.Reunioes = reunioes

		participantes := doc.Participantes[:0]
		for _, p := range doc.Participantes {
			if p.ReuniaoID != id {
				participantes = append(participantes, p)
			}
		}
		doc.Participantes = participantes

		lembretes := doc.Lembretes[:0]
		for _, l := range doc.Lembretes {
			if l.ReuniaoID != id {
				lembretes = append(lembretes, l)
			}
		}
		doc.Lembretes = lembretes

		atas := doc.Atas[:0]
		for _, a := range doc.Atas {
			if a.ReuniaoID != id {
				atas = append(atas, a)
			}
		}
		doc.Atas = atas

		decisoes := doc.Decisoes[:0]
		for _, d := range doc.Decisoes {
			if d.ReuniaoID != id {
				decisoes = append(decisoes, d)
			}
		}
		doc.Decisoes = decisoes

		return nil
	})
}
