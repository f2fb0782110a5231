// ABOUTME: Notification CLI command
// ABOUTME: Due-soon and overdue obligations plus meetings happening today or tomorrow
package cli

import (
	"fmt"
	"time"

	"github.com/semear/semear/db"
	"github.com/semear/semear/models"
)

// Notificacao is one rendered alert line.
type Notificacao struct {
	Nivel    string
	Titulo   string
	Mensagem string
}

// NotificacoesCommand prints pending alerts computed from store data.
func NotificacoesCommand(store *db.Store, now time.Time) error {
	notificacoes, err := Notificacoes(store, now)
	if err != nil {
		return fmt.Errorf("failed to compute notifications: %w", err)
	}

	if len(notificacoes) == 0 {
		fmt.Println("Nenhuma notificação no momento")
		return nil
	}
	for _, n := range notificacoes {
		fmt.Printf("[%s] %s — %s\n", n.Nivel, n.Titulo, n.Mensagem)
	}
	return nil
}

// Notificacoes lists obligations due within 7 days or overdue by at most one
// day, and agendada/confirmada meetings from today through tomorrow.
func Notificacoes(store *db.Store, now time.Time) ([]Notificacao, error) {
	notificacoes := []Notificacao{}

	obrigacoes, err := store.Obrigacoes()
	if err != nil {
		return nil, err
	}
	today := midnight(now)
	for _, o := range obrigacoes {
		if o.Status == models.ObrigacaoConcluida {
			continue
		}
		vencimento, err := time.ParseInLocation(models.DateLayout, o.DataVencimento, now.Location())
		if err != nil {
			continue
		}
		dias := int(vencimento.Sub(today).Hours() / 24)
		if dias > 7 || dias < -1 {
			continue
		}

		nivel := "info"
		switch {
		case dias < 0:
			nivel = "danger"
		case dias <= 3:
			nivel = "warning"
		}
		mensagem := fmt.Sprintf("Vence em %d dia(s)", dias)
		if dias < 0 {
			mensagem = fmt.Sprintf("Vencida há %d dia(s)", -dias)
		}
		notificacoes = append(notificacoes, Notificacao{
			Nivel:    nivel,
			Titulo:   "Obrigação: " + o.Titulo,
			Mensagem: mensagem,
		})
	}

	reunioes, err := store.Reunioes()
	if err != nil {
		return nil, err
	}
	tomorrowEnd := today.AddDate(0, 0, 2)
	for _, r := range reunioes {
		if r.Status != models.ReuniaoAgendada && r.Status != models.ReuniaoConfirmada {
			continue
		}
		if r.DataHora.Before(today) || !r.DataHora.Before(tomorrowEnd) {
			continue
		}

		isHoje := midnight(r.DataHora).Equal(today)
		titulo := "Reunião amanhã: " + r.Titulo
		nivel := "info"
		if isHoje {
			titulo = "Reunião hoje: " + r.Titulo
			nivel = "warning"
		}
		mensagem := r.DataHora.Format("02/01/2006 15:04")
		if r.Local != "" {
			mensagem += " - " + r.Local
		}
		notificacoes = append(notificacoes, Notificacao{Nivel: nivel, Titulo: titulo, Mensagem: mensagem})
	}

	return notificacoes, nil
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
