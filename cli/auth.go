// ABOUTME: Session CLI commands
// ABOUTME: register, login, logout and whoami against the session manager
package cli

import (
	"errors"
	"flag"
	"fmt"

	"github.com/semear/semear/auth"
)

// RegisterCommand creates a user and starts a session for them.
func RegisterCommand(sessions *auth.SessionManager, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	name := fs.String("name", "", "Full name (required)")
	email := fs.String("email", "", "Email address (required)")
	password := fs.String("password", "", "Password (required)")
	_ = fs.Parse(args)

	if *name == "" || *email == "" || *password == "" {
		return fmt.Errorf("--name, --email and --password are required")
	}

	user, err := sessions.Register(*name, *email, *password)
	if errors.Is(err, auth.ErrEmailTaken) {
		return fmt.Errorf("email %s is already registered", *email)
	}
	if err != nil {
		return fmt.Errorf("failed to register: %w", err)
	}

	fmt.Printf("✓ Registered and logged in as %s <%s>\n", user.Name, user.Email)
	return nil
}

// LoginCommand authenticates and persists the session record.
func LoginCommand(sessions *auth.SessionManager, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "Email address (required)")
	password := fs.String("password", "", "Password (required)")
	_ = fs.Parse(args)

	if *email == "" || *password == "" {
		return fmt.Errorf("--email and --password are required")
	}

	user, err := sessions.Login(*email, *password)
	switch {
	case errors.Is(err, auth.ErrUserNotFound):
		return fmt.Errorf("no user with email %s", *email)
	case errors.Is(err, auth.ErrInvalidCredentials):
		return fmt.Errorf("wrong password for %s", *email)
	case err != nil:
		return fmt.Errorf("failed to log in: %w", err)
	}

	fmt.Printf("✓ Logged in as %s <%s>\n", user.Name, user.Email)
	return nil
}

// LogoutCommand clears the session.
func LogoutCommand(sessions *auth.SessionManager) error {
	if err := sessions.Logout(); err != nil {
		return fmt.Errorf("failed to log out: %w", err)
	}
	fmt.Println("✓ Logged out")
	return nil
}

// WhoamiCommand prints the current session, if any.
func WhoamiCommand(sessions *auth.SessionManager) error {
	user, err := sessions.CurrentUser()
	if err != nil {
		return fmt.Errorf("failed to read session: %w", err)
	}
	if user == nil {
		fmt.Println("Not logged in")
		return nil
	}
	fmt.Printf("%s <%s> (ID: %s)\n", user.Name, user.Email, user.ID)
	return nil
}
