// ABOUTME: Obrigacao CLI commands
// ABOUTME: Creating, listing and completing obligations
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/semear/semear/db"
	"github.com/semear/semear/models"
)

// AddObrigacaoCommand creates an obligation.
func AddObrigacaoCommand(store *db.Store, args []string) error {
	fs := flag.NewFlagSet("add-obrigacao", flag.ExitOnError)
	titulo := fs.String("titulo", "", "Obligation title (required)")
	tipo := fs.String("tipo", "", "Obligation type: financeira, legal, manutencao, ... (required)")
	vencimento := fs.String("vencimento", "", "Due date YYYY-MM-DD (required)")
	prioridade := fs.String("prioridade", "", "Priority: baixa, media, alta, urgente")
	descricao := fs.String("descricao", "", "Description")
	responsavel := fs.String("responsavel", "", "Responsible user ID")
	_ = fs.Parse(args)

	if *titulo == "" || *tipo == "" || *vencimento == "" {
		return fmt.Errorf("--titulo, --tipo and --vencimento are required")
	}

	o := models.Obrigacao{
		Titulo:         *titulo,
		Tipo:           *tipo,
		DataVencimento: *vencimento,
		Prioridade:     *prioridade,
		Descricao:      *descricao,
	}
	if *responsavel != "" {
		o.ResponsavelID = responsavel
	}

	created, err := store.CreateObrigacao(o)
	if err != nil {
		return fmt.Errorf("failed to create obligation: %w", err)
	}

	fmt.Printf("✓ Obligation created: %s (due %s, ID: %s)\n", created.Titulo, created.DataVencimento, created.ID)
	return nil
}

// ListObrigacoesCommand prints the obligation collection.
func ListObrigacoesCommand(store *db.Store, args []string) error {
	obrigacoes, err := store.Obrigacoes()
	if err != nil {
		return fmt.Errorf("failed to list obligations: %w", err)
	}

	if len(obrigacoes) == 0 {
		fmt.Println("No obligations found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITULO\tTIPO\tVENCIMENTO\tSTATUS\tPRIORIDADE")
	for _, o := range obrigacoes {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", o.ID, o.Titulo, o.Tipo, o.DataVencimento, o.Status, o.Prioridade)
	}
	return w.Flush()
}

// ConcluirObrigacaoCommand marks an obligation completed.
func ConcluirObrigacaoCommand(store *db.Store, args []string) error {
	fs := flag.NewFlagSet("concluir-obrigacao", flag.ExitOnError)
	id := fs.String("id", "", "Obligation ID (required)")
	_ = fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("--id is required")
	}

	status := models.ObrigacaoConcluida
	updated, err := store.UpdateObrigacao(*id, models.ObrigacaoUpdate{Status: &status})
	if errors.Is(err, db.ErrNotFound) {
		return fmt.Errorf("obligation not found: %s", *id)
	}
	if err != nil {
		return fmt.Errorf("failed to update obligation: %w", err)
	}

	fmt.Printf("✓ Obligation completed: %s\n", updated.Titulo)
	return nil
}
