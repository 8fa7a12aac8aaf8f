package usecases

import (
	"context"

	"suspensos/internal/infrastructure/citsmart"
)

// ReportSession is one authenticated session against the upstream report
// endpoints. Sessions carry no expiry; a new one is opened per request.
type ReportSession interface {
	SuspendedTickets(ctx context.Context) ([]citsmart.TicketRecord, error)
	Schedules(ctx context.Context) ([]citsmart.ScheduleRecord, error)
	Notes(ctx context.Context) ([]citsmart.NoteRecord, error)
	CreateNote(ctx context.Context, input citsmart.CreateNoteInput) error
	CreateSchedule(ctx context.Context, input citsmart.CreateScheduleInput) error
}

// ReportGateway opens authenticated report sessions.
type ReportGateway interface {
	Login(ctx context.Context) (ReportSession, error)
}

// Origin tags recorded on notes written by this service.
const (
	originPanel    = "painel_suspensos"
	originSchedule = "agendamento"
)

// defaultNoteType is applied when the client sends no note type.
const defaultNoteType = "interna"
