// ABOUTME: Role collection operations and user-role assignment
// ABOUTME: Deleting a role strips its id from every user in the same cycle
package db

import "github.com/semear/semear/models"

func (s *Store) Roles() ([]models.Role, error) {
	var roles []models.Role
	err := s.readDocument(func(doc *document) {
		roles = doc.Roles
	})
	return roles, err
}

func (s *Store) RoleByID(id string) (*models.Role, error) {
	var found *models.Role
	err := s.readDocument(func(doc *document) {
		for i := range doc.Roles {
			if doc.Roles[i].ID == id {
				r := doc.Roles[i]
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

func (s *Store) CreateRole(r models.Role) (*models.Role, error) {
	var created models.Role
	err := s.withDocument(func(doc *document) error {
		now := s.now()
		r.ID = s.newID()
		if r.GuardName == "" {
			r.GuardName = models.DefaultGuardName
		}
		if r.Permissions == nil {
			r.Permissions = []string{}
		}
		r.CreatedAt = now
		r.UpdatedAt = now
		doc.Roles = append(doc.Roles, r)
		created = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *Store) UpdateRole(id string, upd models.RoleUpdate) (*models.Role, error) {
	var updated models.Role
	err := s.withDocument(func(doc *document) error {
		for i := range doc.Roles {
			if doc.Roles[i].ID != id {
				continue
			}
			r := &doc.Roles[i]
			if upd.Name != nil {
				r.Name = *upd.Name
			}
			if upd.GuardName != nil {
				r.GuardName = *upd.GuardName
			}
			if upd.Permissions != nil {
				r.Permissions = *upd.Permissions
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

// DeleteRole removes the role and unassigns it from every user. Users
// themselves are never deleted.
func (s *Store) DeleteRole(id string) error {
	return s.withDocument(func(doc *document) error {
		kept := doc.Roles[:0]
		for _, r := range doc.Roles {
			if r.ID != id {
				kept = append(kept, r)
			}
		}
		doc.Roles = kept

		for i := range doc.Users {
			u := &doc.Users[i]
			if !u.HasRole(id) {
				continue
			}
			ids := u.RoleIDs[:0]
			for _, rid := range u.RoleIDs {
				if rid != id {
					ids = append(ids, rid)
				}
			}
			u.RoleIDs = ids
		}
		return nil
	})
}

// AssignRoleToUser adds the role id to the user's set. Assigning a role the
// user already has is a no-op. ErrNotFound when the user id is unknown.
func (s *Store) AssignRoleToUser(userID, roleID string) error {
	return s.withDocument(func(doc *document) error {
		for i := range doc.Users {
			u := &doc.Users[i]
			if u.ID != userID {
				continue
			}
			if u.HasRole(roleID) {
				return nil
			}
			u.RoleIDs = append(u.RoleIDs, roleID)
			return nil
		}
		return ErrNotFound
	})
}

func (s *Store) RemoveRoleFromUser(userID, roleID string) error {
	return s.withDocument(func(doc *document) error {
		for i := range doc.Users {
			u := &doc.Users[i]
			if u.ID != userID {
				continue
			}
			ids := u.RoleIDs[:0]
			for _, rid := range u.RoleIDs {
				if rid != roleID {
					ids = append(ids, rid)
				}
			}
			u.RoleIDs = ids
			return nil
		}
		return ErrNotFound
	})
}

// UserRoles resolves the user's role ids in assignment order, dropping any id
// that no longer resolves to a role. Unknown users get an empty slice.
func (s *Store) UserRoles(userID string) ([]models.Role, error) {
	roles := []models.Role{}
	err := s.readDocument(func(doc *document) {
		var user *models.User
		for i := range doc.Users {
			if doc.Users[i].ID == userID {
				user = &doc.Users[i]
				break
			}
		}
		if user == nil {
			return
		}
		for _, rid := range user.RoleIDs {
			for _, r := range doc.Roles {
				if r.ID == rid {
					roles = append(roles, r)
					break
				}
			}
		}
	})
	return roles, err
}
