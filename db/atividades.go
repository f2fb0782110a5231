// ABOUTME: Atividade collection operations
// ABOUTME: CRUD for association activities (mutiroes, workshops, eventos)
package db

import "github.com/semear/semear/models"

func (s *Store) Atividades() ([]models.Atividade, error) {
	var atividades []models.Atividade
	err := s.readDocument(func(doc *document) {
		atividades = doc.Atividades
	})
	return atividades, err
}

func (s *Store) AtividadeByID(id string) (*models.Atividade, error) {
	var found *models.Atividade
	err := s.readDocument(func(doc *document) {
		for i := range doc.Atividades {
			if doc.Atividades[i].ID == id {
				a := doc.Atividades[i]
				found = &a
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

func (s *Store) CreateAtividade(a models.Atividade) (*models.Atividade, error) {
	var created models.Atividade
	err := s.withDocument(func(doc *document) error {
		now := s.now()
		a.ID = s.newID()
		if a.Status == "" {
			a.Status = models.AtividadePlanejada
		}
		a.CreatedAt = now
		a.UpdatedAt = now
		doc.Atividades = append(doc.Atividades, a)
		created = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *Store) UpdateAtividade(id string, upd models.AtividadeUpdate) (*models.Atividade, error) {
	var updated models.Atividade
	err := s.withDocument(func(doc *document) error {
		for i := range doc.Atividades {
			if doc.Atividades[i].ID != id {
				continue
			}
			a := &doc.Atividades[i]
			if upd.Titulo != nil {
				a.Titulo = *upd.Titulo
			}
			if upd.Descricao != nil {
				a.Descricao = *upd.Descricao
			}
			if upd.Tipo != nil {
				a.Tipo = *upd.Tipo
			}
			if upd.DataInicio != nil {
				a.DataInicio = *upd.DataInicio
			}
			if upd.ClearDataFim {
				a.DataFim = nil
			} else if upd.DataFim != nil {
				a.DataFim = upd.DataFim
			}
			if upd.Status != nil {
				a.Status = *upd.Status
			}
			if upd.Local != nil {
				a.Local = *upd.Local
			}
			if upd.ClearResponsavel {
				a.ResponsavelID = nil
			} else if upd.ResponsavelID != nil {
				a.ResponsavelID = upd.ResponsavelID
			}
			if upd.Orcamento != nil {
				a.Orcamento = *upd.Orcamento
			}
			if upd.Observacoes != nil {
				a.Observacoes = *upd.Observacoes
			}
			a.UpdatedAt = s.now()
			updated = *a
			return nil
		}
		return ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *Store) DeleteAtividade(id string) error {
	return s.withDocument(func(doc *document) error {
		kept := doc.Atividades[:0]
		for _, a := range doc.Atividades {
			if a.ID != id {
				kept = append(kept, a)
			}
		}
		doc.Atividades = kept
		return nil
	})
}
