// ABOUTME: User CLI commands
// ABOUTME: Listing users and managing their role assignments
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/semear/semear/db"
)

// ListUsersCommand prints every user with their resolved roles.
func ListUsersCommand(store *db.Store, args []string) error {
	users, err := store.Users()
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	if len(users) == 0 {
		fmt.Println("No users found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLES")
	for _, u := range users {
		roles, err := store.UserRoles(u.ID)
		if err != nil {
			return err
		}
		names := make([]string, 0, len(roles))
		for _, r := range roles {
			names = append(names, r.Name)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, strings.Join(names, ", "))
	}
	return w.Flush()
}

// AssignRoleCommand adds a role to a user.
func AssignRoleCommand(store *db.Store, args []string) error {
	fs := flag.NewFlagSet("assign-role", flag.ExitOnError)
	userID := fs.String("user", "", "User ID (required)")
	roleID := fs.String("role", "", "Role ID (required)")
	_ = fs.Parse(args)

	if *userID == "" || *roleID == "" {
		return fmt.Errorf("--user and --role are required")
	}

	err := store.AssignRoleToUser(*userID, *roleID)
	if errors.Is(err, db.ErrNotFound) {
		return fmt.Errorf("user not found: %s", *userID)
	}
	if err != nil {
		return fmt.Errorf("failed to assign role: %w", err)
	}

	fmt.Printf("✓ Role %s assigned to user %s\n", *roleID, *userID)
	return nil
}

// ListRolesCommand prints the role collection.
func ListRolesCommand(store *db.Store, args []string) error {
	roles, err := store.Roles()
	if err != nil {
		return fmt.Errorf("failed to list roles: %w", err)
	}

	if len(roles) == 0 {
		fmt.Println("No roles found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tGUARD\tPERMISSIONS")
	for _, r := range roles {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", r.ID, r.Name, r.GuardName, len(r.Permissions))
	}
	return w.Flush()
}
