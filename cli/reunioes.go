// ABOUTME: Reuniao CLI commands
// ABOUTME: Meeting listing, participant management and cascade deletion
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/semear/semear/db"
	"github.com/semear/semear/models"
)

// AddReuniaoCommand schedules a meeting.
func AddReuniaoCommand(store *db.Store, args []string) error {
	fs := flag.NewFlagSet("add-reuniao", flag.ExitOnError)
	titulo := fs.String("titulo", "", "Meeting title (required)")
	tipo := fs.String("tipo", "", "Meeting type: ordinaria, extraordinaria, comissao (required)")
	quando := fs.String("quando", "", "Date and time, RFC 3339 (required)")
	local := fs.String("local", "", "Location")
	descricao := fs.String("descricao", "", "Description")
	organizador := fs.String("organizador", "", "Organizer user ID")
	_ = fs.Parse(args)

	if *titulo == "" || *tipo == "" || *quando == "" {
		return fmt.Errorf("--titulo, --tipo and --quando are required")
	}

	dataHora, err := time.Parse(time.RFC3339, *quando)
	if err != nil {
		return fmt.Errorf("invalid --quando, want RFC 3339: %w", err)
	}

	r := models.Reuniao{
		Titulo:    *titulo,
		Tipo:      *tipo,
		DataHora:  dataHora,
		Local:     *local,
		Descricao: *descricao,
	}
	if *organizador != "" {
		r.OrganizadorID = organizador
	}

	created, err := store.CreateReuniao(r)
	if err != nil {
		return fmt.Errorf("failed to create meeting: %w", err)
	}

	fmt.Printf("✓ Meeting scheduled: %s at %s (ID: %s)\n", created.Titulo, created.DataHora.Format("02/01/2006 15:04"), created.ID)
	return nil
}

// ListReunioesCommand prints the meeting collection.
func ListReunioesCommand(store *db.Store, args []string) error {
	reunioes, err := store.Reunioes()
	if err != nil {
		return fmt.Errorf("failed to list meetings: %w", err)
	}

	if len(reunioes) == 0 {
		fmt.Println("No meetings found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITULO\tTIPO\tQUANDO\tSTATUS\tLOCAL")
	for _, r := range reunioes {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", r.ID, r.Titulo, r.Tipo, r.DataHora.Format("02/01/2006 15:04"), r.Status, r.Local)
	}
	return w.Flush()
}

// ShowReuniaoCommand prints one meeting with participants, minutes and decisions.
func ShowReuniaoCommand(store *db.Store, args []string) error {
	fs := flag.NewFlagSet("show-reuniao", flag.ExitOnError)
	id := fs.String("id", "", "Meeting ID (required)")
	_ = fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("--id is required")
	}

	reuniao, err := store.ReuniaoByID(*id)
	if errors.Is(err, db.ErrNotFound) {
		return fmt.Errorf("meeting not found: %s", *id)
	}
	if err != nil {
		return fmt.Errorf("failed to load meeting: %w", err)
	}

	fmt.Printf("%s (%s)\n", reuniao.Titulo, reuniao.Tipo)
	fmt.Printf("  Quando: %s\n", reuniao.DataHora.Format("02/01/2006 15:04"))
	fmt.Printf("  Local:  %s\n", reuniao.Local)
	fmt.Printf("  Status: %s\n", reuniao.Status)

	participantes, err := store.ParticipantesByReuniao(reuniao.ID)
	if err != nil {
		return err
	}
	fmt.Printf("  Participantes (%d):\n", len(participantes))
	for _, p := range participantes {
		mark := " "
		if p.Confirmado {
			mark = "✓"
		}
		name := p.UserID
		if user, err := store.UserByID(p.UserID); err == nil {
			name = user.Name
		}
		fmt.Printf("    [%s] %s\n", mark, name)
	}

	atas, err := store.AtasByReuniao(reuniao.ID)
	if err != nil {
		return err
	}
	for _, a := range atas {
		estado := "rascunho"
		if a.Aprovada {
			estado = "aprovada"
		}
		fmt.Printf("  Ata (%s): %s\n", estado, a.Conteudo)
	}

	decisoes, err := store.DecisoesByReuniao(reuniao.ID)
	if err != nil {
		return err
	}
	for _, d := range decisoes {
		fmt.Printf("  Decisão [%s]: %s\n", d.Status, d.Titulo)
	}

	return nil
}

// AddParticipanteCommand registers a user for a meeting; repeating the same
// pair is harmless.
func AddParticipanteCommand(store *db.Store, args []string) error {
	fs := flag.NewFlagSet("add-participante", flag.ExitOnError)
	reuniaoID := fs.String("reuniao", "", "Meeting ID (required)")
	userID := fs.String("user", "", "User ID (required)")
	_ = fs.Parse(args)

	if *reuniaoID == "" || *userID == "" {
		return fmt.Errorf("--reuniao and --user are required")
	}

	p, err := store.AddParticipante(*reuniaoID, *userID)
	if err != nil {
		return fmt.Errorf("failed to add participant: %w", err)
	}
	fmt.Printf("✓ Participant added (ID: %s)\n", p.ID)
	return nil
}

// ConfirmarPresencaCommand confirms a participant's attendance.
func ConfirmarPresencaCommand(store *db.Store, args []string) error {
	fs := flag.NewFlagSet("confirmar-presenca", flag.ExitOnError)
	reuniaoID := fs.String("reuniao", "", "Meeting ID (required)")
	userID := fs.String("user", "", "User ID (required)")
	_ = fs.Parse(args)

	if *reuniaoID == "" || *userID == "" {
		return fmt.Errorf("--reuniao and --user are required")
	}

	_, err := store.ConfirmarPresenca(*reuniaoID, *userID)
	if errors.Is(err, db.ErrNotFound) {
		return fmt.Errorf("user %s is not a participant of meeting %s", *userID, *reuniaoID)
	}
	if err != nil {
		return fmt.Errorf("failed to confirm attendance: %w", err)
	}
	fmt.Println("✓ Attendance confirmed")
	return nil
}

// DeleteReuniaoCommand removes a meeting and everything attached to it.
func DeleteReuniaoCommand(store *db.Store, args []string) error {
	fs := flag.NewFlagSet("delete-reuniao", flag.ExitOnError)
	id := fs.String("id", "", "Meeting ID (required)")
	_ = fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("--id is required")
	}

	if err := store.DeleteReuniao(*id); err != nil {
		return fmt.Errorf("failed to delete meeting: %w", err)
	}
	fmt.Printf("✓ Meeting deleted (with participants, reminders, minutes and decisions): %s\n", *id)
	return nil
}
