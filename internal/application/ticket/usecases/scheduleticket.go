package usecases

import (
	"context"
	"strings"
	"time"

	"suspensos/internal/domain/ticket"
	"suspensos/internal/infrastructure/citsmart"
	"suspensos/internal/shared/biztime"
	"suspensos/internal/shared/errors"
	"suspensos/internal/shared/logger"
)

// ScheduleTicketCommand carries the client input for scheduling a ticket.
// Date and Time are the analyst's local calendar values (YYYY-MM-DD, HH:MM).
type ScheduleTicketCommand struct {
	TicketNumber string
	Date         string
	Time         string
	ServiceType  string
	Notes        string
}

// ScheduleTicketExecutor is the handler-facing contract.
type ScheduleTicketExecutor interface {
	Execute(ctx context.Context, cmd ScheduleTicketCommand) error
}

// ScheduleTicketUseCase validates the input and writes one schedule record,
// plus a companion note when the free-text field is filled in. The two
// writes are independent calls with no cross-request coordination.
type ScheduleTicketUseCase struct {
	gateway ReportGateway
	actor   string
	logger  logger.Interface
}

func NewScheduleTicketUseCase(gateway ReportGateway, actor string, log logger.Interface) *ScheduleTicketUseCase {
	return &ScheduleTicketUseCase{
		gateway: gateway,
		actor:   actor,
		logger:  log,
	}
}

func (uc *ScheduleTicketUseCase) Execute(ctx context.Context, cmd ScheduleTicketCommand) error {
	number := strings.TrimSpace(cmd.TicketNumber)
	if number == "" {
		return errors.NewValidationError("ticket number is required")
	}
	if cmd.Date == "" || cmd.Time == "" || cmd.ServiceType == "" {
		return errors.NewValidationError("schedule data is incomplete", "date, time and serviceType are required")
	}

	// The analyst types local wall-clock values; compose them in the
	// business timezone before converting to UTC for the backend.
	scheduledAt, err := time.ParseInLocation("2006-01-02T15:04", cmd.Date+"T"+cmd.Time, biztime.Location())
	if err != nil {
		return errors.NewValidationError("invalid schedule date or time", err.Error())
	}

	session, err := uc.gateway.Login(ctx)
	if err != nil {
		return err
	}

	if err := session.CreateSchedule(ctx, citsmart.CreateScheduleInput{
		TicketNumero:        number,
		DataHoraAgendada:    scheduledAt.UTC().Format(time.RFC3339),
		TipoServico:         cmd.ServiceType,
		Observacao:          cmd.Notes,
		StatusTicketDestino: ticket.StatusAgendado,
		AtualizadoPor:       uc.actor,
	}); err != nil {
		return err
	}

	if notes := strings.TrimSpace(cmd.Notes); notes != "" {
		if err := session.CreateNote(ctx, citsmart.CreateNoteInput{
			TicketNumero: number,
			TextoNota:    notes,
			TipoNota:     defaultNoteType,
			Origem:       originSchedule,
			CriadoPor:    uc.actor,
		}); err != nil {
			return err
		}
	}

	uc.logger.Infow("ticket scheduled",
		"ticket", number,
		"scheduled_at", scheduledAt.UTC().Format(time.RFC3339),
		"service_type", cmd.ServiceType,
	)
	return nil
}
