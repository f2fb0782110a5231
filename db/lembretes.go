// ABOUTME: Meeting reminder operations
// ABOUTME: Reminder rows per meeting, created unsent and deleted individually
package db

import "github.com/semear/semear/models"

func (s *Store) LembretesByReuniao(reuniaoID string) ([]models.LembreteReuniao, error) {
	lembretes := []models.LembreteReuniao{}
	err := s.readDocument(func(doc *document) {
		for _, l := range doc.Lembretes {
			if l.ReuniaoID == reuniaoID {
				lembretes = append(lembretes, l)
			}
		}
	})
	return lembretes, err
}

func (s *Store) CreateLembreteReuniao(reuniaoID, tipo string) (*models.LembreteReuniao, error) {
	var created models.LembreteReuniao
	err := s.withDocument(func(doc *document) error {
		created = models.LembreteReuniao{
			ID:        s.newID(),
			ReuniaoID: reuniaoID,
			Tipo:      tipo,
			CreatedAt: s.now(),
		}
		doc.Lembretes = append(doc.Lembretes, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *Store) DeleteLembreteReuniao(id string) error {
	return s.withDocument(func(doc *document) error {
		kept := doc.Lembretes[:0]
		for _, l := range doc.Lembretes {
			if l.ID != id {
				kept = append(kept, l)
			}
		}
		doc.Lembretes = kept
		return nil
	})
}
