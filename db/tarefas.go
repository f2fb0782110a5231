// ABOUTME: Tarefa collection accessors
// ABOUTME: Read-only; tasks are written by an import path that does not exist yet
package db

import "github.com/semear/semear/models"

func (s *Store) Tarefas() ([]models.Tarefa, error) {
	var tarefas []models.Tarefa
	err := s.readDocument(func(doc *document) {
		tarefas = doc.Tarefas
	})
	return tarefas, err
}

func (s *Store) TarefaByID(id string) (*models.Tarefa, error) {
	var found *models.Tarefa
	err := s.readDocument(func(doc *document) {
		for i := range doc.Tarefas {
			if doc.Tarefas[i].ID == id {
				t := doc.Tarefas[i]
				found = &t
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
