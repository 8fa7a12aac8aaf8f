package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suspensos/internal/domain/ticket"
	apperrors "suspensos/internal/shared/errors"
)

type stubListExecutor struct {
	result *ListSuspendedTicketsResult
	err    error
}

func (s *stubListExecutor) Execute(ctx context.Context) (*ListSuspendedTicketsResult, error) {
	return s.result, s.err
}

func TestGetTicketStats(t *testing.T) {
	list := &stubListExecutor{
		result: &ListSuspendedTicketsResult{
			Tickets: []ticket.SuspendedTicket{
				{Environment: "PROD", Priority: "Crítica", Status: "Suspenso", SuspensionReason: "Aguardando peça"},
				{Environment: "PROD", Priority: "Média", Status: "Agendado"},
				{Environment: "HML", Priority: "baixa", Status: "Suspenso"},
			},
		},
	}

	uc := NewGetTicketStatsUseCase(list, testLogger())
	result, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"HML", "PROD"}, result.Environments)
	require.Len(t, result.ByEnvironment, 2)
	assert.Equal(t, ticket.EnvironmentStat{Name: "PROD", Total: 2, Critical: 1, Scheduled: 1}, result.ByEnvironment[1])
	assert.Len(t, result.ByReason, 2)
	assert.Len(t, result.ByPriority, 3)
	assert.Len(t, result.Timeline, 7)
	assert.Len(t, result.MonthlyTimeline, 6)
}

func TestGetTicketStatsPropagatesListFailure(t *testing.T) {
	listErr := apperrors.NewUpstreamError("CITSMART 503")
	list := &stubListExecutor{err: listErr}

	uc := NewGetTicketStatsUseCase(list, testLogger())
	result, err := uc.Execute(context.Background())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, listErr)
}
