// ABOUTME: Idempotent bootstrap of baseline roles and demonstration data
// ABOUTME: Roles are always ensured; sample records only land in an empty database
package db

import (
	"fmt"
	"time"

	"github.com/semear/semear/models"
)

// Seed bootstraps the database. The three baseline roles are created whenever
// the role collection is empty; demonstration users and sample records are
// created only when no user exists yet, so repeated calls never duplicate
// anything.
func (s *Store) Seed() error {
	if err := s.Initialize(); err != nil {
		return err
	}

	if err := s.seedRoles(); err != nil {
		return err
	}

	users, err := s.Users()
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}

	return s.seedSampleData()
}

func (s *Store) seedRoles() error {
	roles, err := s.Roles()
	if err != nil {
		return err
	}
	if len(roles) > 0 {
		return nil
	}

	permissions, err := s.Permissions()
	if err != nil {
		return err
	}
	allPerms := make([]string, 0, len(permissions))
	for _, p := range permissions {
		allPerms = append(allPerms, p.ID)
	}

	seeds := []models.Role{
		{Name: "Super Admin", Permissions: allPerms},
		{Name: "Admin", Permissions: []string{"perm1", "perm2", "perm3", "perm19", "perm20"}},
		{Name: "Usuário", Permissions: []string{"perm5", "perm9", "perm13"}},
	}
	for _, role := range seeds {
		if _, err := s.CreateRole(role); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) roleByName(name string) (*models.Role, error) {
	roles, err := s.Roles()
	if err != nil {
		return nil, err
	}
	for _, r := range roles {
		if r.Name == name {
			role := r
			return &role, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Store) seedSampleData() error {
	admin, err := s.CreateUser(models.User{
		Name:                 "Administrador",
		Email:                "admin@semear.com",
		Password:             "admin123",
		CanManagePermissions: true,
	})
	if err != nil {
		return err
	}
	if superAdmin, err := s.roleByName("Super Admin"); err == nil {
		if err := s.AssignRoleToUser(admin.ID, superAdmin.ID); err != nil {
			return err
		}
	}

	names := []struct{ name, email string }{
		{"João Silva", "joao@semear.com"},
		{"Maria Santos", "maria@semear.com"},
		{"Pedro Oliveira", "pedro@semear.com"},
	}
	members := make([]*models.User, 0, len(names))
	for _, n := range names {
		user, err := s.CreateUser(models.User{Name: n.name, Email: n.email, Password: "123456"})
		if err != nil {
			return err
		}
		members = append(members, user)
	}
	if userRole, err := s.roleByName("Usuário"); err == nil {
		for _, member := range members {
			if err := s.AssignRoleToUser(member.ID, userRole.ID); err != nil {
				return err
			}
		}
	}

	now := s.now()
	date := func(days int) string {
		return now.AddDate(0, 0, days).Format(models.DateLayout)
	}

	atividades := []models.Atividade{
		{
			Titulo:        "Mutirão de Limpeza",
			Descricao:     "Limpeza geral da área comum e organização dos espaços",
			Tipo:          "mutirao",
			DataInicio:    date(-7),
			DataFim:       ptr(date(-7)),
			Status:        models.AtividadeConcluida,
			Local:         "Área comum",
			ResponsavelID: &members[0].ID,
			Orcamento:     500,
			Observacoes:   "Atividade realizada com sucesso",
		},
		{
			Titulo:        "Workshop de Sustentabilidade",
			Descricao:     "Workshop sobre práticas sustentáveis e meio ambiente",
			Tipo:          "workshop",
			DataInicio:    date(7),
			Local:         "Sala de reuniões",
			ResponsavelID: &members[1].ID,
			Orcamento:     1000,
		},
		{
			Titulo:        "Melhoria da Iluminação",
			Descricao:     "Instalação de novas lâmpadas LED na área comum",
			Tipo:          "melhoria",
			DataInicio:    date(1),
			Status:        models.AtividadeEmAndamento,
			Local:         "Área comum",
			ResponsavelID: &members[2].ID,
			Orcamento:     800,
		},
		{
			Titulo:        "Evento de Integração",
			Descricao:     "Evento para integração dos novos moradores",
			Tipo:          "evento",
			DataInicio:    date(14),
			Local:         "Salão de festas",
			ResponsavelID: &admin.ID,
			Orcamento:     1500,
		},
		{
			Titulo:        "Treinamento de Segurança",
			Descricao:     "Treinamento sobre segurança e prevenção de acidentes",
			Tipo:          "treinamento",
			DataInicio:    date(7),
			Local:         "Sala de reuniões",
			ResponsavelID: &members[0].ID,
			Orcamento:     600,
		},
	}
	for _, a := range atividades {
		if _, err := s.CreateAtividade(a); err != nil {
			return err
		}
	}

	obrigacoes := []models.Obrigacao{
		{
			Titulo:         "Pagamento de Taxa Mensal",
			Descricao:      "Pagamento da taxa mensal de condomínio",
			Tipo:           "financeira",
			DataVencimento: date(2),
			Prioridade:     models.PrioridadeAlta,
			ResponsavelID:  &admin.ID,
		},
		{
			Titulo:         "Renovação de Seguro",
			Descricao:      "Renovação do seguro do prédio",
			Tipo:           "legal",
			DataVencimento: date(10),
			Prioridade:     models.PrioridadeMedia,
			ResponsavelID:  &admin.ID,
		},
		{
			Titulo:         "Declaração de Imposto",
			Descricao:      "Entrega da declaração de imposto de renda",
			Tipo:           "legal",
			DataVencimento: date(-3),
			Status:         models.ObrigacaoVencida,
			Prioridade:     models.PrioridadeUrgente,
			ResponsavelID:  &members[0].ID,
		},
		{
			Titulo:         "Manutenção Preventiva",
			Descricao:      "Manutenção preventiva dos elevadores",
			Tipo:           "manutencao",
			DataVencimento: date(20),
			Prioridade:     models.PrioridadeBaixa,
			ResponsavelID:  &members[1].ID,
		},
	}
	for _, o := range obrigacoes {
		if _, err := s.CreateObrigacao(o); err != nil {
			return err
		}
	}

	at := func(days, hour int) time.Time {
		d := now.AddDate(0, 0, days)
		return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, d.Location())
	}

	reuniao1, err := s.CreateReuniao(models.Reuniao{
		Titulo:        "Reunião Mensal",
		Descricao:     "Reunião mensal da associação para discussão de assuntos gerais",
		Tipo:          "ordinaria",
		DataHora:      at(3, 14),
		Local:         "Sala de reuniões",
		OrganizadorID: &admin.ID,
	})
	if err != nil {
		return err
	}
	reuniao2, err := s.CreateReuniao(models.Reuniao{
		Titulo:        "Reunião Extraordinária",
		Descricao:     "Reunião extraordinária para discussão de melhorias",
		Tipo:          "extraordinaria",
		DataHora:      at(10, 19),
		Local:         "Sala de reuniões",
		Status:        models.ReuniaoConfirmada,
		OrganizadorID: &members[0].ID,
	})
	if err != nil {
		return err
	}
	reuniao3, err := s.CreateReuniao(models.Reuniao{
		Titulo:        "Reunião de Comissão",
		Descricao:     "Reunião da comissão de obras",
		Tipo:          "comissao",
		DataHora:      at(-5, 14),
		Local:         "Sala de reuniões",
		Status:        models.ReuniaoConcluida,
		OrganizadorID: &admin.ID,
	})
	if err != nil {
		return err
	}

	for _, member := range members {
		if _, err := s.AddParticipante(reuniao1.ID, member.ID); err != nil {
			return err
		}
	}
	if _, err := s.ConfirmarPresenca(reuniao1.ID, members[0].ID); err != nil {
		return err
	}

	for _, userID := range []string{admin.ID, members[1].ID} {
		if _, err := s.AddParticipante(reuniao2.ID, userID); err != nil {
			return err
		}
		if _, err := s.ConfirmarPresenca(reuniao2.ID, userID); err != nil {
			return err
		}
	}

	conteudo := fmt.Sprintf(
		"Ata da reunião de comissão realizada em %s. Discussão sobre melhorias na infraestrutura.",
		reuniao3.DataHora.Format("02/01/2006"),
	)
	if _, err := s.CreateAta(models.Ata{
		ReuniaoID:   reuniao3.ID,
		Conteudo:    conteudo,
		CriadoPorID: &admin.ID,
	}); err != nil {
		return err
	}

	decisoes := []models.Decisao{
		{
			ReuniaoID:     reuniao3.ID,
			Titulo:        "Aprovação de Orçamento",
			Descricao:     "Aprovação do orçamento para melhorias na área comum",
			ResponsavelID: &admin.ID,
			Status:        models.DecisaoEmAndamento,
		},
		{
			ReuniaoID:     reuniao3.ID,
			Titulo:        "Contratação de Empresa",
			Descricao:     "Contratação de empresa para manutenção dos elevadores",
			ResponsavelID: &members[0].ID,
		},
	}
	for _, d := range decisoes {
		if _, err := s.CreateDecisao(d); err != nil {
			return err
		}
	}

	return nil
}

func ptr(s string) *string {
	return &s
}
