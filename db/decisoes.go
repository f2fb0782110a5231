// ABOUTME: Decisao collection operations
// ABOUTME: CRUD for decisions recorded against meetings
package db

import "github.com/semear/semear/models"

func (s *Store) Decisoes() ([]models.Decisao, error) {
	var decisoes []models.Decisao
	err := s.readDocument(func(doc *document) {
		decisoes = doc.Decisoes
	})
	return decisoes, err
}

func (s *Store) DecisaoByID(id string) (*models.Decisao, error) {
	var found *models.Decisao
	err := s.readDocument(func(doc *document) {
		for i := range doc.Decisoes {
			if doc.Decisoes[i].ID == id {
				d := doc.Decisoes[i]
				found = &d
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

func (s *Store) DecisoesByReuniao(reuniaoID string) ([]models.Decisao, error) {
	decisoes := []models.Decisao{}
	err := s.readDocument(func(doc *document) {
		for _, d := range doc.Decisoes {
			if d.ReuniaoID == reuniaoID {
				decisoes = append(decisoes, d)
			}
		}
	})
	return decisoes, err
}

func (s *Store) CreateDecisao(d models.Decisao) (*models.Decisao, error) {
	var created models.Decisao
	err := s.withDocument(func(doc *document) error {
		now := s.now()
		d.ID = s.newID()
		if d.Status == "" {
			d.Status = models.DecisaoPendente
		}
		d.CreatedAt = now
		d.UpdatedAt = now
		doc.Decisoes = append(doc.Decisoes, d)
		created = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *Store) UpdateDecisao(id string, upd models.DecisaoUpdate) (*models.Decisao, error) {
	var updated models.Decisao
	err := s.withDocument(func(doc *document) error {
		for i := range doc.Decisoes {
			if doc.Decisoes[i].ID != id {
				continue
			}
			d := &doc.Decisoes[i]
			if upd.Titulo != nil {
				d.Titulo = *upd.Titulo
			}
			if upd.Descricao != nil {
				d.Descricao = *upd.Descricao
			}
			if upd.ClearResponsavel {
				d.ResponsavelID = nil
			} else if upd.ResponsavelID != nil {
				d.ResponsavelID = upd.ResponsavelID
			}
			if upd.ClearPrazo {
				d.Prazo = nil
			} else if upd.Prazo != nil {
				d.Prazo = upd.Prazo
			}
			if upd.Status != nil {
				d.Status = *upd.Status
			}
			d.UpdatedAt = s.now()
			updated = *d
			return nil
		}
		return ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *Store) DeleteDecisao(id string) error {
	return s.withDocument(func(doc *document) error {
		kept := doc.Decisoes[:0]
		for _, d := range doc.Decisoes {
			if d.ID != id {
				kept = append(kept, d)
			}
		}
		doc.Decisoes = kept
		return nil
	})
}
