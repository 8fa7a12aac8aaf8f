package usecases

import (
	"context"

	"golang.org/x/sync/errgroup"

	"suspensos/internal/domain/ticket"
	"suspensos/internal/infrastructure/citsmart"
	"suspensos/internal/shared/biztime"
	"suspensos/internal/shared/logger"
)

// ListSuspendedTicketsResult carries the merged view models.
type ListSuspendedTicketsResult struct {
	Tickets []ticket.SuspendedTicket `json:"tickets"`
}

// ListSuspendedTicketsExecutor is the handler-facing contract.
type ListSuspendedTicketsExecutor interface {
	Execute(ctx context.Context) (*ListSuspendedTicketsResult, error)
}

// ListSuspendedTicketsUseCase fetches the three report feeds concurrently
// and reconciles them. The read is all-or-nothing: any fetch failure aborts
// the whole request, partial results are never returned.
type ListSuspendedTicketsUseCase struct {
	gateway ReportGateway
	logger  logger.Interface
}

func NewListSuspendedTicketsUseCase(gateway ReportGateway, log logger.Interface) *ListSuspendedTicketsUseCase {
	return &ListSuspendedTicketsUseCase{
		gateway: gateway,
		logger:  log,
	}
}

func (uc *ListSuspendedTicketsUseCase) Execute(ctx context.Context) (*ListSuspendedTicketsResult, error) {
	session, err := uc.gateway.Login(ctx)
	if err != nil {
		return nil, err
	}

	var (
		tickets   []citsmart.TicketRecord
		schedules []citsmart.ScheduleRecord
		notes     []citsmart.NoteRecord
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		tickets, err = session.SuspendedTickets(gctx)
		return err
	})

	g.Go(func() error {
		var err error
		schedules, err = session.Schedules(gctx)
		return err
	})

	g.Go(func() error {
		var err error
		notes, err = session.Notes(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := Reconcile(biztime.NowUTC(), tickets, schedules, notes)

	uc.logger.Debugw("reconciled suspended tickets",
		"tickets", len(tickets),
		"schedules", len(schedules),
		"notes", len(notes),
	)

	return &ListSuspendedTicketsResult{Tickets: merged}, nil
}
