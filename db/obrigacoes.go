// ABOUTME: Obrigacao collection operations
// ABOUTME: CRUD for recurring association obligations (taxas, seguros, manutencao)
package db

import "github.com/semear/semear/models"

func (s *Store) Obrigacoes() ([]models.Obrigacao, error) {
	var obrigacoes []models.Obrigacao
	err := s.readDocument(func(doc *document) {
		obrigacoes = doc.Obrigacoes
	})
	return obrigacoes, err
}

func (s *Store) ObrigacaoByID(id string) (*models.Obrigacao, error) {
	var found *models.Obrigacao
	err := s.readDocument(func(doc *document) {
		for i := range doc.Obrigacoes {
			if doc.Obrigacoes[i].ID == id {
				o := doc.Obrigacoes[i]
				found = &o
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

func (s *Store) CreateObrigacao(o models.Obrigacao) (*models.Obrigacao, error) {
	var created models.Obrigacao
	err := s.withDocument(func(doc *document) error {
		now := s.now()
		o.ID = s.newID()
		if o.Status == "" {
			o.Status = models.ObrigacaoPendente
		}
		if o.Prioridade == "" {
			o.Prioridade = models.PrioridadeMedia
		}
		o.CreatedAt = now
		o.UpdatedAt = now
		doc.Obrigacoes = append(doc.Obrigacoes, o)
		created = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *Store) UpdateObrigacao(id string, upd models.ObrigacaoUpdate) (*models.Obrigacao, error) {
	var updated models.Obrigacao
	err := s.withDocument(func(doc *document) error {
		for i := range doc.Obrigacoes {
			if doc.Obrigacoes[i].ID != id {
				continue
			}
			o := &doc.Obrigacoes[i]
			if upd.Titulo != nil {
				o.Titulo = *upd.Titulo
			}
			if upd.Descricao != nil {
				o.Descricao = *upd.Descricao
			}
			if upd.Tipo != nil {
				o.Tipo = *upd.Tipo
			}
			if upd.DataVencimento != nil {
				o.DataVencimento = *upd.DataVencimento
			}
			if upd.ClearDataLembrete {
				o.DataLembrete = nil
			} else if upd.DataLembrete != nil {
				o.DataLembrete = upd.DataLembrete
			}
			if upd.Status != nil {
				o.Status = *upd.Status
			}
			if upd.Prioridade != nil {
				o.Prioridade = *upd.Prioridade
			}
			if upd.ClearResponsavel {
				o.ResponsavelID = nil
			} else if upd.ResponsavelID != nil {
				o.ResponsavelID = upd.ResponsavelID
			}
			o.UpdatedAt = s.now()
			updated = *o
			return nil
		}
		return ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *Store) DeleteObrigacao(id string) error {
	return s.withDocument(func(doc *document) error {
		kept := doc.Obrigacoes[:0]
		for _, o := range doc.Obrigacoes {
			if o.ID != id {
				kept = append(kept, o)
			}
		}
		doc.Obrigacoes = kept
		return nil
	})
}
