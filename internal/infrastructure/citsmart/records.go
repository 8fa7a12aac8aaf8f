package citsmart

// Envelope is the generic JSON envelope returned by the dynamic report
// endpoints. An absent payload is treated as an empty result set.
type Envelope[T any] struct {
	Status  string `json:"status,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Payload []T    `json:"payload,omitempty"`
}

// TicketRecord mirrors one row of the unified suspended-ticket report.
// The feed carries the opening timestamp twice: a string-formatted variant
// and the raw column value. Neither is guaranteed parseable.
type TicketRecord struct {
	DataAbertura    string `json:"data_abertura,omitempty"`
	DataAberturaStr string `json:"data_abertura_str,omitempty"`
	Projeto         string `json:"projeto,omitempty"`
	Ticket          string `json:"ticket,omitempty"`
	MotivoSuspensao string `json:"motivo_suspensao,omitempty"`
	Analista        string `json:"analista,omitempty"`
	Equipe          string `json:"equipe,omitempty"`
	Status          string `json:"status,omitempty"`
}

// ScheduleRecord mirrors one row of the ticket-schedule report. The ticket
// number is a foreign key, not unique: a ticket may carry several schedule
// rows and only the latest one matters.
type ScheduleRecord struct {
	IDAgendamento    int64  `json:"id_agendamento,omitempty"`
	TicketNumero     string `json:"ticket_numero,omitempty"`
	DataHoraAgendada string `json:"data_hora_agendada,omitempty"`
	Observacao       string `json:"observacao,omitempty"`
}

// NoteRecord mirrors one row of the ticket-note report.
type NoteRecord struct {
	IDNota       int64  `json:"id_nota,omitempty"`
	TicketNumero string `json:"ticket_numero,omitempty"`
	TextoNota    string `json:"texto_nota,omitempty"`
	TipoNota     string `json:"tipo_nota,omitempty"`
	Origem       string `json:"origem,omitempty"`
	CriadoPor    string `json:"criado_por,omitempty"`
	CriadoEm     string `json:"criado_em,omitempty"`
}

// CreateNoteInput is the write payload for the note createOrUpdate resource.
type CreateNoteInput struct {
	TicketNumero string `json:"ticket_numero"`
	TextoNota    string `json:"texto_nota"`
	TipoNota     string `json:"tipo_nota"`
	Origem       string `json:"origem"`
	CriadoPor    string `json:"criado_por"`
}

// CreateScheduleInput is the write payload for the schedule createOrUpdate
// resource. StatusTicketDestino tells the backend which status the ticket
// moves to once the schedule lands.
type CreateScheduleInput struct {
	TicketNumero        string `json:"ticket_numero"`
	DataHoraAgendada    string `json:"data_hora_agendada"`
	TipoServico         string `json:"tipo_servico"`
	Observacao          string `json:"observacao"`
	StatusTicketDestino string `json:"status_ticket_destino"`
	AtualizadoPor       string `json:"atualizado_por"`
}
