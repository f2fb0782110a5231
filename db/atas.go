// ABOUTME: Ata (meeting minutes) collection operations
// ABOUTME: CRUD plus per-meeting lookup and approval
package db

import "github.com/semear/semear/models"

func (s *Store) Atas() ([]models.Ata, error) {
	var atas []models.Ata
	err := s.readDocument(func(doc *document) {
		atas = doc.Atas
	})
	return atas, err
}

func (s *Store) AtaByID(id string) (*models.Ata, error) {
	var found *models.Ata
	err := s.readDocument(func(doc *document) {
		for i := range doc.Atas {
			if doc.Atas[i].ID == id {
				a := doc.Atas[i]
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

func (s *Store) AtasByReuniao(reuniaoID string) ([]models.Ata, error) {
	atas := []models.Ata{}
	err := s.readDocument(func(doc *document) {
		for _, a := range doc.Atas {
			if a.ReuniaoID == reuniaoID {
				atas = append(atas, a)
			}
		}
	})
	return atas, err
}

func (s *Store) CreateAta(a models.Ata) (*models.Ata, error) {
	var created models.Ata
	err := s.withDocument(func(doc *document) error {
		now := s.now()
		a.ID = s.newID()
		a.Aprovada = false
		a.CreatedAt = now
		a.UpdatedAt = now
		doc.Atas = append(doc.Atas, a)
		created = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *Store) UpdateAta(id string, upd models.AtaUpdate) (*models.Ata, error) {
	var updated models.Ata
	err := s.withDocument(func(doc *document) error {
		for i := range doc.Atas {
			if doc.Atas[i].ID != id {
				continue
			}
			a := &doc.Atas[i]
			if upd.Conteudo != nil {
				a.Conteudo = *upd.Conteudo
			}
			if upd.Aprovada != nil {
				a.Aprovada = *upd.Aprovada
			}
			if upd.ClearCriadoPor {
				a.CriadoPorID = nil
			} else if upd.CriadoPorID != nil {
				a.CriadoPorID = upd.CriadoPorID
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

// AprovarAta marks the minutes approved.
func (s *Store) AprovarAta(id string) (*models.Ata, error) {
	aprovada := true
	return s.UpdateAta(id, models.AtaUpdate{Aprovada: &aprovada})
}

func (s *Store) DeleteAta(id string) error {
	return s.withDocument(func(doc *document) error {
		kept := doc.Atas[:0]
		for _, a := range doc.Atas {
			if a.ID != id {
				kept = append(kept, a)
			}
		}
		doc.Atas = kept
		return nil
	})
}
