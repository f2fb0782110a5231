// ABOUTME: Data models for association management entities
// ABOUTME: Defines User, Atividade, Obrigacao, Reuniao, Ata, Decisao, Role and Permission structs
package models

import "time"

// Civil-date fields (data_inicio, data_vencimento, prazo, ...) hold
// "YYYY-MM-DD" strings; instant fields are time.Time and marshal as RFC 3339.
// Both stay ISO-8601 parseable in the persisted document.
const DateLayout = "2006-01-02"

type User struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Email                string    `json:"email"`
	Password             string    `json:"password,omitempty"`
	CanManagePermissions bool      `json:"canManagePermissions"`
	RoleIDs              []string  `json:"role_ids"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// WithoutPassword returns a copy safe to persist as a session record.
func (u User) WithoutPassword() User {
	u.Password = ""
	return u
}

// HasRole reports whether the role id is assigned to the user.
func (u User) HasRole(roleID string) bool {
	for _, id := range u.RoleIDs {
		if id == roleID {
			return true
		}
	}
	return false
}

type Atividade struct {
	ID            string    `json:"id"`
	Titulo        string    `json:"titulo"`
	Descricao     string    `json:"descricao"`
	Tipo          string    `json:"tipo"`
	DataInicio    string    `json:"data_inicio"`
	DataFim       *string   `json:"data_fim"`
	Status        string    `json:"status"`
	Local         string    `json:"local"`
	ResponsavelID *string   `json:"responsavel_id"`
	Orcamento     float64   `json:"orcamento"`
	Observacoes   string    `json:"observacoes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Obrigacao struct {
	ID             string    `json:"id"`
	Titulo         string    `json:"titulo"`
	Descricao      string    `json:"descricao"`
	Tipo           string    `json:"tipo"`
	DataVencimento string    `json:"data_vencimento"`
	DataLembrete   *string   `json:"data_lembrete"`
	Status         string    `json:"status"`
	Prioridade     string    `json:"prioridade"`
	ResponsavelID  *string   `json:"responsavel_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type Reuniao struct {
	ID            string    `json:"id"`
	Titulo        string    `json:"titulo"`
	Descricao     string    `json:"descricao"`
	Tipo          string    `json:"tipo"`
	DataHora      time.Time `json:"data_hora"`
	Local         string    `json:"local"`
	Status        string    `json:"status"`
	OrganizadorID *string   `json:"organizador_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ParticipanteReuniao struct {
	ID         string    `json:"id"`
	ReuniaoID  string    `json:"reuniao_id"`
	UserID     string    `json:"user_id"`
	Confirmado bool      `json:"confirmado"`
	CreatedAt  time.Time `json:"created_at"`
}

type LembreteReuniao struct {
	ID        string    `json:"id"`
	ReuniaoID string    `json:"reuniao_id"`
	Tipo      string    `json:"tipo"`
	Enviado   bool      `json:"enviado"`
	CreatedAt time.Time `json:"created_at"`
}

// Ata is the minutes record of a meeting.
type Ata struct {
	ID          string    `json:"id"`
	ReuniaoID   string    `json:"reuniao_id"`
	Conteudo    string    `json:"conteudo"`
	Aprovada    bool      `json:"aprovada"`
	CriadoPorID *string   `json:"criado_por_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Decisao struct {
	ID            string    `json:"id"`
	ReuniaoID     string    `json:"reuniao_id"`
	Titulo        string    `json:"titulo"`
	Descricao     string    `json:"descricao"`
	ResponsavelID *string   `json:"responsavel_id"`
	Prazo         *string   `json:"prazo"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Tarefa struct {
	ID            string    `json:"id"`
	Titulo        string    `json:"titulo"`
	Descricao     string    `json:"descricao"`
	Status        string    `json:"status"`
	ResponsavelID *string   `json:"responsavel_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Role struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	GuardName   string    `json:"guard_name"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Permission is a seeded catalog entry; the catalog is fixed and never
// mutated after the first seed.
type Permission struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Group       string `json:"group"`
	Description string `json:"description"`
}

// Atividade status constants.
const (
	AtividadePlanejada   = "planejada"
	AtividadeEmAndamento = "em_andamento"
	AtividadeConcluida   = "concluida"
	AtividadeCancelada   = "cancelada"
)

// Obrigacao status constants.
const (
	ObrigacaoPendente  = "pendente"
	ObrigacaoConcluida = "concluida"
	ObrigacaoVencida   = "vencida"
)

// Obrigacao priority constants.
const (
	PrioridadeBaixa   = "baixa"
	PrioridadeMedia   = "media"
	PrioridadeAlta    = "alta"
	PrioridadeUrgente = "urgente"
)

// Reuniao status constants.
const (
	ReuniaoAgendada   = "agendada"
	ReuniaoConfirmada = "confirmada"
	ReuniaoConcluida  = "concluida"
	ReuniaoCancelada  = "cancelada"
)

// Decisao status constants.
const (
	DecisaoPendente    = "pendente"
	DecisaoEmAndamento = "em_andamento"
	DecisaoConcluida   = "concluida"
)

// DefaultGuardName is the guard assigned to roles created without one.
const DefaultGuardName = "web"
