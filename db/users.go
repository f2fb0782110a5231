// ABOUTME: User collection operations
// ABOUTME: CRUD plus email lookup used by the session layer
package db

import "github.com/semear/semear/models"

func (s *Store) Users() ([]models.User, error) {
	var users []models.User
	err := s.readDocument(func(doc *document) {
		users = doc.Users
	})
	return users, err
}

func (s *Store) UserByID(id string) (*models.User, error) {
	var found *models.User
	err := s.readDocument(func(doc *document) {
		for i := range doc.Users {
			if doc.Users[i].ID == id {
				user := doc.Users[i]
				found = &user
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

// UserByEmail matches the email exactly, case-sensitive.
func (s *Store) UserByEmail(email string) (*models.User, error) {
	var found *models.User
	err := s.readDocument(func(doc *document) {
		for i := range doc.Users {
			if doc.Users[i].Email == email {
				user := doc.Users[i]
				found = &user
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

func (s *Store) CreateUser(user models.User) (*models.User, error) {
	var created models.User
	err := s.withDocument(func(doc *document) error {
		now := s.now()
		user.ID = s.newID()
		if user.RoleIDs == nil {
			user.RoleIDs = []string{}
		}
		user.CreatedAt = now
		user.UpdatedAt = now
		doc.Users = append(doc.Users, user)
		created = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *Store) UpdateUser(id string, upd models.UserUpdate) (*models.User, error) {
	var updated models.User
	err := s.withDocument(func(doc *document) error {
		for i := range doc.Users {
			if doc.Users[i].ID != id {
				continue
			}
			u := &doc.Users[i]
			if upd.Name != nil {
				u.Name = *upd.Name
			}
			if upd.Email != nil {
				u.Email = *upd.Email
			}
			if upd.Password != nil {
				u.Password = *upd.Password
			}
			if upd.CanManagePermissions != nil {
				u.CanManagePermissions = *upd.CanManagePermissions
			}
			if upd.RoleIDs != nil {
				u.RoleIDs = *upd.RoleIDs
			}
			u.UpdatedAt = s.now()
			updated = *u
			return nil
		}
		return ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteUser removes the user if present. Deleting an unknown id is a no-op.
func (s *Store) DeleteUser(id string) error {
	return s.withDocument(func(doc *document) error {
		kept := doc.Users[:0]
		for _, u := range doc.Users {
			if u.ID != id {
				kept = append(kept, u)
			}
		}
		doc.Users = kept
		return nil
	})
}
