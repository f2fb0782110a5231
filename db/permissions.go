// ABOUTME: Permission catalog access
// ABOUTME: Fixed 20-entry catalog, lazily seeded on first read and immutable after
package db

import "github.com/semear/semear/models"

// defaultPermissions returns the fixed catalog. Ids perm1..perm20 are stable
// and referenced by the baseline roles.
func defaultPermissions() []models.Permission {
	return []models.Permission{
		{ID: "perm1", Name: "usuarios.view", Group: "usuarios", Description: "Visualizar usuários"},
		{ID: "perm2", Name: "usuarios.create", Group: "usuarios", Description: "Criar usuários"},
		{ID: "perm3", Name: "usuarios.update", Group: "usuarios", Description: "Editar usuários"},
		{ID: "perm4", Name: "usuarios.delete", Group: "usuarios", Description: "Excluir usuários"},
		{ID: "perm5", Name: "atividades.view", Group: "atividades", Description: "Visualizar atividades"},
		{ID: "perm6", Name: "atividades.create", Group: "atividades", Description: "Criar atividades"},
		{ID: "perm7", Name: "atividades.update", Group: "atividades", Description: "Editar atividades"},
		{ID: "perm8", Name: "atividades.delete", Group: "atividades", Description: "Excluir atividades"},
		{ID: "perm9", Name: "obrigacoes.view", Group: "obrigacoes", Description: "Visualizar obrigações"},
		{ID: "perm10", Name: "obrigacoes.create", Group: "obrigacoes", Description: "Criar obrigações"},
		{ID: "perm11", Name: "obrigacoes.update", Group: "obrigacoes", Description: "Editar obrigações"},
		{ID: "perm12", Name: "obrigacoes.delete", Group: "obrigacoes", Description: "Excluir obrigações"},
		{ID: "perm13", Name: "reunioes.view", Group: "reunioes", Description: "Visualizar reuniões"},
		{ID: "perm14", Name: "reunioes.create", Group: "reunioes", Description: "Criar reuniões"},
		{ID: "perm15", Name: "reunioes.update", Group: "reunioes", Description: "Editar reuniões"},
		{ID: "perm16", Name: "reunioes.delete", Group: "reunioes", Description: "Excluir reuniões"},
		{ID: "perm17", Name: "relatorios.view", Group: "relatorios", Description: "Visualizar relatórios"},
		{ID: "perm18", Name: "relatorios.export", Group: "relatorios", Description: "Exportar relatórios"},
		{ID: "perm19", Name: "permissoes.view", Group: "permissoes", Description: "Visualizar permissões"},
		{ID: "perm20", Name: "permissoes.manage", Group: "permissoes", Description: "Gerenciar permissões"},
	}
}

// Permissions returns the catalog, seeding it into the document on the first
// call. Later calls always return the persisted catalog as-is.
func (s *Store) Permissions() ([]models.Permission, error) {
	var permissions []models.Permission
	if err := s.readDocument(func(doc *document) {
		permissions = doc.Permissions
	}); err != nil {
		return nil, err
	}
	if len(permissions) > 0 {
		return permissions, nil
	}

	err := s.withDocument(func(doc *document) error {
		if len(doc.Permissions) == 0 {
			doc.Permissions = defaultPermissions()
		}
		permissions = doc.Permissions
		return nil
	})
	if err != nil {
		return nil, err
	}
	return permissions, nil
}
