package ticket

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suspensos/internal/application/ticket/usecases"
	domainticket "suspensos/internal/domain/ticket"
	apperrors "suspensos/internal/shared/errors"
	"suspensos/internal/interfaces/http/handlers/testutil"
)

type mockListExecutor struct {
	result *usecases.ListSuspendedTicketsResult
	err    error
}

func (m *mockListExecutor) Execute(ctx context.Context) (*usecases.ListSuspendedTicketsResult, error) {
	return m.result, m.err
}

type mockStatsExecutor struct {
	result *usecases.TicketStatsResult
	err    error
}

func (m *mockStatsExecutor) Execute(ctx context.Context) (*usecases.TicketStatsResult, error) {
	return m.result, m.err
}

type mockScheduleExecutor struct {
	cmd usecases.ScheduleTicketCommand
	err error
}

func (m *mockScheduleExecutor) Execute(ctx context.Context, cmd usecases.ScheduleTicketCommand) error {
	m.cmd = cmd
	return m.err
}

type mockAddNoteExecutor struct {
	cmd usecases.AddNoteCommand
	err error
}

func (m *mockAddNoteExecutor) Execute(ctx context.Context, cmd usecases.AddNoteCommand) error {
	m.cmd = cmd
	return m.err
}

func newTestHandler(list *mockListExecutor, stats *mockStatsExecutor, schedule *mockScheduleExecutor, note *mockAddNoteExecutor) *TicketHandler {
	if list == nil {
		list = &mockListExecutor{result: &usecases.ListSuspendedTicketsResult{}}
	}
	if stats == nil {
		stats = &mockStatsExecutor{result: &usecases.TicketStatsResult{}}
	}
	if schedule == nil {
		schedule = &mockScheduleExecutor{}
	}
	if note == nil {
		note = &mockAddNoteExecutor{}
	}
	return NewTicketHandler(list, stats, schedule, note)
}

func TestListTicketsSuccess(t *testing.T) {
	list := &mockListExecutor{
		result: &usecases.ListSuspendedTicketsResult{
			Tickets: []domainticket.SuspendedTicket{
				{ID: "INC1", Number: "INC1", Title: "waiting", Status: "Suspenso"},
			},
		},
	}
	handler := newTestHandler(list, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets", nil)
	handler.ListTickets(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body usecases.ListSuspendedTicketsResult
	require.NoError(t, testutil.ParseResponse(w, &body))
	require.Len(t, body.Tickets, 1)
	assert.Equal(t, "INC1", body.Tickets[0].Number)
}

func TestListTicketsUpstreamFailure(t *testing.T) {
	list := &mockListExecutor{err: apperrors.NewUpstreamError("CITSMART 503", "report engine offline")}
	handler := newTestHandler(list, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets", nil)
	handler.ListTickets(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var body testutil.ErrorEnvelope
	require.NoError(t, testutil.ParseResponse(w, &body))
	assert.Equal(t, msgLoadFailed, body.Error)
	assert.NotEmpty(t, body.Details)
}

func TestListTicketsConfigurationFailure(t *testing.T) {
	list := &mockListExecutor{err: apperrors.NewConfigurationError("CITSMART credentials are not configured")}
	handler := newTestHandler(list, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets", nil)
	handler.ListTickets(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetStatsSuccess(t *testing.T) {
	stats := &mockStatsExecutor{
		result: &usecases.TicketStatsResult{
			Environments: []string{"PROD"},
		},
	}
	handler := newTestHandler(nil, stats, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets/stats", nil)
	handler.GetStats(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body usecases.TicketStatsResult
	require.NoError(t, testutil.ParseResponse(w, &body))
	assert.Equal(t, []string{"PROD"}, body.Environments)
}

func TestScheduleTicketSuccess(t *testing.T) {
	schedule := &mockScheduleExecutor{}
	handler := newTestHandler(nil, nil, schedule, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets/INC1/schedule", ScheduleTicketRequest{
		Date:        "2024-03-10",
		Time:        "14:30",
		ServiceType: "remoto",
		Notes:       "bring spare disk",
	})
	testutil.SetURLParam(c, "ticketNumber", "INC1")
	handler.ScheduleTicket(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok": true}`, w.Body.String())

	assert.Equal(t, usecases.ScheduleTicketCommand{
		TicketNumber: "INC1",
		Date:         "2024-03-10",
		Time:         "14:30",
		ServiceType:  "remoto",
		Notes:        "bring spare disk",
	}, schedule.cmd)
}

func TestScheduleTicketMissingFields(t *testing.T) {
	handler := newTestHandler(nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets/INC1/schedule", map[string]string{
		"date": "2024-03-10",
	})
	testutil.SetURLParam(c, "ticketNumber", "INC1")
	handler.ScheduleTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body testutil.ErrorEnvelope
	require.NoError(t, testutil.ParseResponse(w, &body))
	assert.Equal(t, msgInvalidBody, body.Error)
	assert.Contains(t, body.Details, "required")
}

func TestScheduleTicketMalformedDate(t *testing.T) {
	handler := newTestHandler(nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets/INC1/schedule", map[string]string{
		"date":        "10/03/2024",
		"time":        "14:30",
		"serviceType": "remoto",
	})
	testutil.SetURLParam(c, "ticketNumber", "INC1")
	handler.ScheduleTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body testutil.ErrorEnvelope
	require.NoError(t, testutil.ParseResponse(w, &body))
	assert.Contains(t, body.Details, "2006-01-02")
}

func TestScheduleTicketValidationErrorFromUseCase(t *testing.T) {
	schedule := &mockScheduleExecutor{err: apperrors.NewValidationError("invalid schedule date or time")}
	handler := newTestHandler(nil, nil, schedule, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets/INC1/schedule", ScheduleTicketRequest{
		Date:        "2024-03-10",
		Time:        "14:30",
		ServiceType: "remoto",
	})
	testutil.SetURLParam(c, "ticketNumber", "INC1")
	handler.ScheduleTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScheduleTicketUpstreamFailure(t *testing.T) {
	schedule := &mockScheduleExecutor{err: apperrors.NewUpstreamError("CITSMART 500")}
	handler := newTestHandler(nil, nil, schedule, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets/INC1/schedule", ScheduleTicketRequest{
		Date:        "2024-03-10",
		Time:        "14:30",
		ServiceType: "remoto",
	})
	testutil.SetURLParam(c, "ticketNumber", "INC1")
	handler.ScheduleTicket(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var body testutil.ErrorEnvelope
	require.NoError(t, testutil.ParseResponse(w, &body))
	assert.Equal(t, msgScheduleFailed, body.Error)
}

func TestAddNoteSuccess(t *testing.T) {
	note := &mockAddNoteExecutor{}
	handler := newTestHandler(nil, nil, nil, note)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets/INC1/notes", AddNoteRequest{
		Text: "waiting on vendor",
	})
	testutil.SetURLParam(c, "ticketNumber", "INC1")
	handler.AddNote(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok": true}`, w.Body.String())

	assert.Equal(t, usecases.AddNoteCommand{
		TicketNumber: "INC1",
		Text:         "waiting on vendor",
	}, note.cmd)
}

func TestAddNoteMissingText(t *testing.T) {
	handler := newTestHandler(nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets/INC1/notes", map[string]string{
		"type": "interna",
	})
	testutil.SetURLParam(c, "ticketNumber", "INC1")
	handler.AddNote(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddNoteUpstreamFailure(t *testing.T) {
	note := &mockAddNoteExecutor{err: apperrors.NewUpstreamError("CITSMART 500")}
	handler := newTestHandler(nil, nil, nil, note)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets/INC1/notes", AddNoteRequest{Text: "x"})
	testutil.SetURLParam(c, "ticketNumber", "INC1")
	handler.AddNote(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var body testutil.ErrorEnvelope
	require.NoError(t, testutil.ParseResponse(w, &body))
	assert.Equal(t, msgNoteFailed, body.Error)
}
