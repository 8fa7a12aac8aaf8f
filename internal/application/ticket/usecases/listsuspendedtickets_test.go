package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suspensos/internal/domain/ticket"
	"suspensos/internal/infrastructure/citsmart"
	apperrors "suspensos/internal/shared/errors"
)

func TestListSuspendedTicketsSuccess(t *testing.T) {
	session := &fakeSession{
		tickets: []citsmart.TicketRecord{
			{Ticket: "INC1", DataAberturaStr: "2024-01-01T00:00:00Z", MotivoSuspensao: "waiting vendor"},
		},
		schedules: []citsmart.ScheduleRecord{
			{TicketNumero: "INC1", DataHoraAgendada: "2024-02-01T10:00:00Z", Observacao: "call client"},
		},
		notes: []citsmart.NoteRecord{
			{TicketNumero: "INC1", TextoNota: "pinged vendor", CriadoPor: "maria", CriadoEm: "2024-01-02T00:00:00Z"},
		},
	}
	gateway := &fakeGateway{session: session}

	uc := NewListSuspendedTicketsUseCase(gateway, testLogger())
	result, err := uc.Execute(context.Background())

	require.NoError(t, err)
	require.NotNil(t, result)
	require.Len(t, result.Tickets, 1)

	got := result.Tickets[0]
	assert.Equal(t, "INC1", got.Number)
	assert.Equal(t, ticket.StatusAgendado, got.Status)
	assert.Equal(t, "2024-02-01T10:00:00Z", got.ScheduledDate)
	assert.Len(t, got.NotesList, 2)
	assert.Equal(t, 1, gateway.logins)
}

func TestListSuspendedTicketsEmptyFeeds(t *testing.T) {
	gateway := &fakeGateway{session: &fakeSession{}}

	uc := NewListSuspendedTicketsUseCase(gateway, testLogger())
	result, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Empty(t, result.Tickets)
	assert.NotNil(t, result.Tickets, "empty result must encode as [], not null")
}

func TestListSuspendedTicketsLoginFailureAborts(t *testing.T) {
	loginErr := apperrors.NewAuthenticationError("login rejected")
	gateway := &fakeGateway{loginErr: loginErr}

	uc := NewListSuspendedTicketsUseCase(gateway, testLogger())
	result, err := uc.Execute(context.Background())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, loginErr)
}

func TestListSuspendedTicketsAnyFetchFailureAborts(t *testing.T) {
	feedErr := errors.New("upstream gone")

	cases := []struct {
		name  string
		setup func(*fakeSession)
	}{
		{"tickets feed fails", func(s *fakeSession) { s.ticketsErr = feedErr }},
		{"schedules feed fails", func(s *fakeSession) { s.schedulesErr = feedErr }},
		{"notes feed fails", func(s *fakeSession) { s.notesErr = feedErr }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			session := &fakeSession{
				tickets: []citsmart.TicketRecord{{Ticket: "INC1"}},
			}
			tc.setup(session)
			gateway := &fakeGateway{session: session}

			uc := NewListSuspendedTicketsUseCase(gateway, testLogger())
			result, err := uc.Execute(context.Background())

			// All-or-nothing: no partial results on any feed failure.
			assert.Nil(t, result)
			assert.ErrorIs(t, err, feedErr)
		})
	}
}
