// ABOUTME: Atividade CLI commands
// ABOUTME: Creating, listing and deleting association activities
package cli

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/semear/semear/db"
	"github.com/semear/semear/models"
)

// AddAtividadeCommand creates an activity.
func AddAtividadeCommand(store *db.Store, args []string) error {
	fs := flag.NewFlagSet("add-atividade", flag.ExitOnError)
	titulo := fs.String("titulo", "", "Activity title (required)")
	tipo := fs.String("tipo", "", "Activity type: mutirao, workshop, evento, ... (required)")
	inicio := fs.String("inicio", "", "Start date YYYY-MM-DD (required)")
	local := fs.String("local", "", "Location")
	descricao := fs.String("descricao", "", "Description")
	responsavel := fs.String("responsavel", "", "Responsible user ID")
	orcamento := fs.Float64("orcamento", 0, "Budget")
	_ = fs.Parse(args)

	if *titulo == "" || *tipo == "" || *inicio == "" {
		return fmt.Errorf("--titulo, --tipo and --inicio are required")
	}

	a := models.Atividade{
		Titulo:     *titulo,
		Tipo:       *tipo,
		DataInicio: *inicio,
		Local:      *local,
		Descricao:  *descricao,
		Orcamento:  *orcamento,
	}
	if *responsavel != "" {
		a.ResponsavelID = responsavel
	}

	created, err := store.CreateAtividade(a)
	if err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}

	fmt.Printf("✓ Activity created: %s (ID: %s)\n", created.Titulo, created.ID)
	return nil
}

// ListAtividadesCommand prints the activity collection.
func ListAtividadesCommand(store *db.Store, args []string) error {
	atividades, err := store.Atividades()
	if err != nil {
		return fmt.Errorf("failed to list activities: %w", err)
	}

	if len(atividades) == 0 {
		fmt.Println("No activities found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITULO\tTIPO\tINICIO\tSTATUS\tLOCAL")
	for _, a := range atividades {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", a.ID, a.Titulo, a.Tipo, a.DataInicio, a.Status, a.Local)
	}
	return w.Flush()
}

// DeleteAtividadeCommand removes an activity by id.
func DeleteAtividadeCommand(store *db.Store, args []string) error {
	fs := flag.NewFlagSet("delete-atividade", flag.ExitOnError)
	id := fs.String("id", "", "Activity ID (required)")
	_ = fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("--id is required")
	}

	if err := store.DeleteAtividade(*id); err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	fmt.Printf("✓ Activity deleted: %s\n", *id)
	return nil
}
