package usecases

import (
	"context"

	"suspensos/internal/domain/ticket"
	"suspensos/internal/shared/biztime"
	"suspensos/internal/shared/logger"
)

// TicketStatsResult aggregates the dashboard analytics over one fresh
// reconciliation pass.
type TicketStatsResult struct {
	Environments    []string                 `json:"environments"`
	ByEnvironment   []ticket.EnvironmentStat `json:"byEnvironment"`
	ByReason        []ticket.CountStat       `json:"byReason"`
	ByPriority      []ticket.CountStat       `json:"byPriority"`
	Timeline        []ticket.TimelinePoint   `json:"timeline"`
	MonthlyTimeline []ticket.TimelinePoint   `json:"monthlyTimeline"`
}

// GetTicketStatsExecutor is the handler-facing contract.
type GetTicketStatsExecutor interface {
	Execute(ctx context.Context) (*TicketStatsResult, error)
}

// GetTicketStatsUseCase derives chart aggregates from the merged ticket
// list. Like the list itself it is computed fresh per request.
type GetTicketStatsUseCase struct {
	listTickets ListSuspendedTicketsExecutor
	logger      logger.Interface
}

func NewGetTicketStatsUseCase(listTickets ListSuspendedTicketsExecutor, log logger.Interface) *GetTicketStatsUseCase {
	return &GetTicketStatsUseCase{
		listTickets: listTickets,
		logger:      log,
	}
}

func (uc *GetTicketStatsUseCase) Execute(ctx context.Context) (*TicketStatsResult, error) {
	listed, err := uc.listTickets.Execute(ctx)
	if err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	tickets := listed.Tickets

	return &TicketStatsResult{
		Environments:    ticket.Environments(tickets),
		ByEnvironment:   ticket.StatsByEnvironment(tickets),
		ByReason:        ticket.StatsByReason(tickets),
		ByPriority:      ticket.StatsByPriority(tickets),
		Timeline:        ticket.Timeline(tickets, now),
		MonthlyTimeline: ticket.MonthlyTimeline(tickets, now),
	}, nil
}
