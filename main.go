// ABOUTME: Entry point for the semear association manager CLI
// ABOUTME: Resolves the data directory, opens a storage backend and routes commands
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"

	"github.com/semear/semear/auth"
	"github.com/semear/semear/cli"
	"github.com/semear/semear/db"
	"github.com/semear/semear/storage"
)

const version = "0.1.0"

func main() {
	// .env is optional; flags and real env vars win over it
	_ = godotenv.Load()

	showVersion := flag.Bool("version", false, "Show version and exit")
	dataDir := flag.String("data-dir", "", "Data directory (default: $SEMEAR_DATA_DIR or ~/.local/share/semear)")
	backendName := flag.String("backend", "", "Storage backend: file, sqlite or badger (default: $SEMEAR_BACKEND or file)")
	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("semear version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}

	backend, closeBackend, err := openBackend(getDataDir(*dataDir), getBackendName(*backendName))
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer closeBackend()

	store := db.New(backend)
	sessions := auth.NewSessionManager(store, backend)

	command := args[0]
	commandArgs := args[1:]

	var cmdErr error
	switch command {
	case "init":
		cmdErr = cli.InitCommand(store)
	case "seed":
		cmdErr = cli.SeedCommand(store)

	case "register":
		cmdErr = cli.RegisterCommand(sessions, commandArgs)
	case "login":
		cmdErr = cli.LoginCommand(sessions, commandArgs)
	case "logout":
		cmdErr = cli.LogoutCommand(sessions)
	case "whoami":
		cmdErr = cli.WhoamiCommand(sessions)

	case "list-users":
		cmdErr = cli.ListUsersCommand(store, commandArgs)
	case "list-roles":
		cmdErr = cli.ListRolesCommand(store, commandArgs)
	case "assign-role":
		cmdErr = cli.AssignRoleCommand(store, commandArgs)

	case "add-atividade":
		cmdErr = cli.AddAtividadeCommand(store, commandArgs)
	case "list-atividades":
		cmdErr = cli.ListAtividadesCommand(store, commandArgs)
	case "delete-atividade":
		cmdErr = cli.DeleteAtividadeCommand(store, commandArgs)

	case "add-obrigacao":
		cmdErr = cli.AddObrigacaoCommand(store, commandArgs)
	case "list-obrigacoes":
		cmdErr = cli.ListObrigacoesCommand(store, commandArgs)
	case "concluir-obrigacao":
		cmdErr = cli.ConcluirObrigacaoCommand(store, commandArgs)

	case "add-reuniao":
		cmdErr = cli.AddReuniaoCommand(store, commandArgs)
	case "list-reunioes":
		cmdErr = cli.ListReunioesCommand(store, commandArgs)
	case "show-reuniao":
		cmdErr = cli.ShowReuniaoCommand(store, commandArgs)
	case "add-participante":
		cmdErr = cli.AddParticipanteCommand(store, commandArgs)
	case "confirmar-presenca":
		cmdErr = cli.ConfirmarPresencaCommand(store, commandArgs)
	case "delete-reuniao":
		cmdErr = cli.DeleteReuniaoCommand(store, commandArgs)

	case "notificacoes":
		cmdErr = cli.NotificacoesCommand(store, time.Now())

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}

	if cmdErr != nil {
		log.Fatalf("Error: %v", cmdErr)
	}
}

func getDataDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("SEMEAR_DATA_DIR"); env != "" {
		return env
	}
	return filepath.Join(xdg.DataHome, "semear")
}

func getBackendName(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("SEMEAR_BACKEND"); env != "" {
		return env
	}
	return "file"
}

func openBackend(dataDir, name string) (storage.Backend, func(), error) {
	switch name {
	case "file":
		backend, err := storage.NewFile(dataDir)
		if err != nil {
			return nil, nil, err
		}
		return backend, func() {}, nil
	case "sqlite":
		backend, err := storage.OpenSQLite(filepath.Join(dataDir, "semear.db"))
		if err != nil {
			return nil, nil, err
		}
		return backend, func() { _ = backend.Close() }, nil
	case "badger":
		backend, err := storage.OpenBadger(filepath.Join(dataDir, "badger"))
		if err != nil {
			return nil, nil, err
		}
		return backend, func() { _ = backend.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q (want file, sqlite or badger)", name)
	}
}

func printUsage() {
	fmt.Println("semear - association management")
	fmt.Println()
	fmt.Println("Usage: semear [flags] <command> [args]")
	fmt.Println()
	fmt.Println("Database:")
	fmt.Println("  init                      Create an empty database")
	fmt.Println("  seed                      Load baseline roles and demo data")
	fmt.Println()
	fmt.Println("Session:")
	fmt.Println("  register                  Create a user and log in")
	fmt.Println("  login | logout | whoami   Manage the current session")
	fmt.Println()
	fmt.Println("Users and roles:")
	fmt.Println("  list-users | list-roles | assign-role")
	fmt.Println()
	fmt.Println("Atividades:")
	fmt.Println("  add-atividade | list-atividades | delete-atividade")
	fmt.Println()
	fmt.Println("Obrigações:")
	fmt.Println("  add-obrigacao | list-obrigacoes | concluir-obrigacao")
	fmt.Println()
	fmt.Println("Reuniões:")
	fmt.Println("  add-reuniao | list-reunioes | show-reuniao")
	fmt.Println("  add-participante | confirmar-presenca | delete-reuniao")
	fmt.Println()
	fmt.Println("Alerts:")
	fmt.Println("  notificacoes              Due-soon obligations and upcoming meetings")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -data-dir <path>          Data directory")
	fmt.Println("  -backend <name>           file (default), sqlite or badger")
	fmt.Println("  -version                  Show version")
}
