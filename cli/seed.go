// ABOUTME: Database bootstrap CLI commands
// ABOUTME: init creates an empty document; seed loads baseline roles and demo data
package cli

import (
	"fmt"

	"github.com/semear/semear/db"
)

// InitCommand creates the empty association document if it does not exist.
func InitCommand(store *db.Store) error {
	if err := store.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	fmt.Println("✓ Database initialized")
	return nil
}

// SeedCommand bootstraps roles, demo users and sample records. Safe to run
// repeatedly.
func SeedCommand(store *db.Store) error {
	if err := store.Seed(); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	users, err := store.Users()
	if err != nil {
		return err
	}
	roles, err := store.Roles()
	if err != nil {
		return err
	}
	fmt.Printf("✓ Database seeded: %d users, %d roles\n", len(users), len(roles))
	return nil
}
