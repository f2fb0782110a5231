// ABOUTME: Partial-update structs for store mutations
// ABOUTME: Nil pointer means "leave unchanged"; Clear flags set nullable fields to null
package models

import "time"

// Update structs distinguish "field not present" (nil pointer) from "set the
// field to null" (Clear flag). Create-time defaults never apply on update.

type UserUpdate struct {
	Name                 *string
	Email                *string
	Password             *string
	CanManagePermissions *bool
	RoleIDs              *[]string
}

type AtividadeUpdate struct {
	Titulo           *string
	Descricao        *string
	Tipo             *string
	DataInicio       *string
	DataFim          *string
	ClearDataFim     bool
	Status           *string
	Local            *string
	ResponsavelID    *string
	ClearResponsavel bool
	Orcamento        *float64
	Observacoes      *string
}

type ObrigacaoUpdate struct {
	Titulo            *string
	Descricao         *string
	Tipo              *string
	DataVencimento    *string
	DataLembrete      *string
	ClearDataLembrete bool
	Status            *string
	Prioridade        *string
	ResponsavelID     *string
	ClearResponsavel  bool
}

type ReuniaoUpdate struct {
	Titulo           *string
	Descricao        *string
	Tipo             *string
	DataHora         *time.Time
	Local            *string
	Status           *string
	OrganizadorID    *string
	ClearOrganizador bool
}

type AtaUpdate struct {
	Conteudo       *string
	Aprovada       *bool
	CriadoPorID    *string
	ClearCriadoPor bool
}

type DecisaoUpdate struct {
	Titulo           *string
	Descricao        *string
	ResponsavelID    *string
	ClearResponsavel bool
	Prazo            *string
	ClearPrazo       bool
	Status           *string
}

type RoleUpdate struct {
	Name        *string
	GuardName   *string
	Permissions *[]string
}
