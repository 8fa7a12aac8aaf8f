package usecases

import (
	"context"
	"strings"

	"suspensos/internal/infrastructure/citsmart"
	"suspensos/internal/shared/errors"
	"suspensos/internal/shared/logger"
)

// AddNoteCommand carries the client input for annotating a ticket.
type AddNoteCommand struct {
	TicketNumber string
	Text         string
	Type         string
}

// AddNoteExecutor is the handler-facing contract.
type AddNoteExecutor interface {
	Execute(ctx context.Context, cmd AddNoteCommand) error
}

// AddNoteUseCase validates the input and writes one note record upstream.
// No idempotency key exists; a duplicate retry creates a duplicate note.
type AddNoteUseCase struct {
	gateway ReportGateway
	actor   string
	logger  logger.Interface
}

func NewAddNoteUseCase(gateway ReportGateway, actor string, log logger.Interface) *AddNoteUseCase {
	return &AddNoteUseCase{
		gateway: gateway,
		actor:   actor,
		logger:  log,
	}
}

func (uc *AddNoteUseCase) Execute(ctx context.Context, cmd AddNoteCommand) error {
	number := strings.TrimSpace(cmd.TicketNumber)
	text := strings.TrimSpace(cmd.Text)

	if number == "" {
		return errors.NewValidationError("ticket number is required")
	}
	if text == "" {
		return errors.NewValidationError("note text is required")
	}

	noteType := strings.TrimSpace(cmd.Type)
	if noteType == "" {
		noteType = defaultNoteType
	}

	session, err := uc.gateway.Login(ctx)
	if err != nil {
		return err
	}

	if err := session.CreateNote(ctx, citsmart.CreateNoteInput{
		TicketNumero: number,
		TextoNota:    text,
		TipoNota:     noteType,
		Origem:       originPanel,
		CriadoPor:    uc.actor,
	}); err != nil {
		return err
	}

	uc.logger.Infow("note created", "ticket", number, "type", noteType)
	return nil
}
