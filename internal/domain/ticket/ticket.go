// Package ticket holds the denormalized view model the dashboard serves and
// the pure helpers that operate on it. Nothing here is persisted: view
// models are built per request from the upstream report feeds and discarded
// after serialization.
package ticket

import "time"

// Statuses the dashboard reasons about. The upstream status column is free
// text; anything else passes through untouched.
const (
	StatusSuspenso      = "Suspenso"
	StatusAgendado      = "Agendado"
	StatusEmAtendimento = "Em Atendimento"
	StatusConcluido     = "Concluido"
)

// The feed carries no priority column, so every ticket gets this placeholder.
const PriorityMedia = "Media"

// Placeholders for absent feed columns.
const (
	FallbackNumber      = "Sem numero"
	FallbackTitle       = "Sem descricao"
	FallbackReason      = "Sem motivo"
	FallbackAnalyst     = "Sem responsavel"
	FallbackTeam        = "Sem equipe"
	FallbackEnvironment = "N/A"
)

// Synthesized note authors.
const (
	NoteAuthorSistema     = "Sistema"
	NoteAuthorAgendamento = "Agendamento"
	NoteTypeAgendamento   = "agendamento"
)

// SLAWindow is the fixed escalation deadline counted from the suspension
// opening timestamp.
const SLAWindow = 7 * 24 * time.Hour

// Note is one entry of a ticket's audit trail, newest first.
type Note struct {
	Text      string `json:"text"`
	Author    string `json:"author"`
	Type      string `json:"type"`
	Origin    string `json:"origin,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// SuspendedTicket is the merged view model keyed by ticket number. Number is
// unique within a result set and is the join key across the three feeds.
type SuspendedTicket struct {
	ID               string `json:"id"`
	Number           string `json:"number"`
	Title            string `json:"title"`
	Environment      string `json:"environment"`
	Priority         string `json:"priority"`
	SuspensionReason string `json:"suspensionReason"`
	Status           string `json:"status"`
	SuspendedAt      string `json:"suspendedAt"`
	ScheduledDate    string `json:"scheduledDate,omitempty"`
	DaysOpen         int    `json:"daysOpen"`
	Analyst          string `json:"analyst"`
	Client           string `json:"client"`
	SLADeadline      string `json:"slaDeadline"`
	Notes            string `json:"notes,omitempty"`
	NotesList        []Note `json:"notesList,omitempty"`
}
