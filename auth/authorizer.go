// ABOUTME: Permission policy interface and the current allow-all placeholder
// ABOUTME: A real role/permission policy can replace AllowAll without touching call sites
package auth

import "github.com/semear/semear/models"

// Authorizer decides whether a user may exercise a named permission
// ("atividades.create", "permissoes.manage", ...).
type Authorizer interface {
	Allow(user *models.User, permission string) bool
}

// AllowAll grants every permission to any authenticated user and denies
// everything to anonymous callers. It is an explicit placeholder: role and
// permission data exist in the store but are not consulted yet.
type AllowAll struct{}

func (AllowAll) Allow(user *models.User, permission string) bool {
	return user != nil
}
