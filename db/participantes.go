// ABOUTME: Meeting participant operations
// ABOUTME: Idempotent add per (reuniao, user) pair, removal and attendance confirmation
package db

import "github.com/semear/semear/models"

func (s *Store) ParticipantesByReuniao(reuniaoID string) ([]models.ParticipanteReuniao, error) {
	participantes := []models.ParticipanteReuniao{}
	err := s.readDocument(func(doc *document) {
		for _, p := range doc.Participantes {
			if p.ReuniaoID == reuniaoID {
				participantes = append(participantes, p)
			}
		}
	})
	return participantes, err
}

// AddParticipante registers a user for a meeting. The (reuniao, user) pair is
// unique: adding an existing pair returns the existing row without touching
// the stored document.
func (s *Store) AddParticipante(reuniaoID, userID string) (*models.ParticipanteReuniao, error) {
	var existing *models.ParticipanteReuniao
	err := s.readDocument(func(doc *document) {
		for _, p := range doc.Participantes {
			if p.ReuniaoID == reuniaoID && p.UserID == userID {
				row := p
				existing = &row
				return
			}
		}
	})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	var row models.ParticipanteReuniao
	err = s.withDocument(func(doc *document) error {
		row = models.ParticipanteReuniao{
			ID:        s.newID(),
			ReuniaoID: reuniaoID,
			UserID:    userID,
			CreatedAt: s.now(),
		}
		doc.Participantes = append(doc.Participantes, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *Store) RemoveParticipante(reuniaoID, userID string) error {
	return s.withDocument(func(doc *document) error {
		kept := doc.Participantes[:0]
		for _, p := range doc.Participantes {
			if !(p.ReuniaoID == reuniaoID && p.UserID == userID) {
				kept = append(kept, p)
			}
		}
		doc.Participantes = kept
		return nil
	})
}

// ConfirmarPresenca marks the participant row confirmed. ErrNotFound when the
// user was never added to the meeting.
func (s *Store) ConfirmarPresenca(reuniaoID, userID string) (*models.ParticipanteReuniao, error) {
	var confirmed models.ParticipanteReuniao
	err := s.withDocument(func(doc *document) error {
		for i := range doc.Participantes {
			p := &doc.Participantes[i]
			if p.ReuniaoID == reuniaoID && p.UserID == userID {
				p.Confirmado = true
				confirmed = *p
				return nil
			}
		}
		return ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &confirmed, nil
}
