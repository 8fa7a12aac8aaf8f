package citsmart

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"suspensos/internal/shared/errors"
)

// Dynamic report resources consumed and written by the dashboard.
const (
	ticketReportPath   = "/cit-esi-web/rest/dynamic/relatorios/view_unificada_tickets_suspenso_service_desk.json"
	scheduleReportPath = "/cit-esi-web/rest/dynamic/relatorios/gw_ticket_agendamento.json"
	noteReportPath     = "/cit-esi-web/rest/dynamic/relatorios/gw_ticket_nota.json"
	scheduleWritePath  = "/cit-esi-web/rest/dynamic/relatorios/gw_ticket_agendamento/createOrUpdate.json"
	noteWritePath      = "/cit-esi-web/rest/dynamic/relatorios/gw_ticket_nota/createOrUpdate.json"
)

// do issues one authenticated call against a report resource. There are no
// retries; the only timeout is the client-wide one.
func (c *Client) do(ctx context.Context, s *Session, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.NewInternalError("failed to encode CITSMART request payload", err.Error())
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.BaseURL+path, reader)
	if err != nil {
		return errors.NewUpstreamError("failed to build CITSMART request", err.Error())
	}
	req.Header.Set("Cookie", s.CookieHeader)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json; charset=UTF-8")
	req.Header.Set("User-Agent", userAgent)
	if s.AuthToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.AuthToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.NewUpstreamError("CITSMART request failed", err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Body read failures are swallowed; the status alone is enough.
		diagnostic, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		details := strings.TrimSpace(string(diagnostic))
		if details == "" {
			details = resp.Status
		}
		return errors.NewUpstreamError("CITSMART "+strconv.Itoa(resp.StatusCode), details)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodySize))
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewUpstreamError("invalid CITSMART response payload", err.Error())
	}
	return nil
}

// fetchReport reads one report feed and unwraps its envelope.
func fetchReport[T any](ctx context.Context, s *Session, path string) ([]T, error) {
	var envelope Envelope[T]
	if err := s.client.do(ctx, s, http.MethodGet, path, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Payload, nil
}

// SuspendedTickets reads the unified suspended-ticket report.
func (s *Session) SuspendedTickets(ctx context.Context) ([]TicketRecord, error) {
	return fetchReport[TicketRecord](ctx, s, ticketReportPath)
}

// Schedules reads the ticket-schedule report.
func (s *Session) Schedules(ctx context.Context) ([]ScheduleRecord, error) {
	return fetchReport[ScheduleRecord](ctx, s, scheduleReportPath)
}

// Notes reads the ticket-note report.
func (s *Session) Notes(ctx context.Context) ([]NoteRecord, error) {
	return fetchReport[NoteRecord](ctx, s, noteReportPath)
}

// CreateNote writes one note record. The backend deduplicates nothing; a
// duplicate network retry would create a duplicate note.
func (s *Session) CreateNote(ctx context.Context, input CreateNoteInput) error {
	var envelope Envelope[json.RawMessage]
	return s.client.do(ctx, s, http.MethodPost, noteWritePath, input, &envelope)
}

// CreateSchedule writes one schedule record.
func (s *Session) CreateSchedule(ctx context.Context, input CreateScheduleInput) error {
	var envelope Envelope[json.RawMessage]
	return s.client.do(ctx, s, http.MethodPost, scheduleWritePath, input, &envelope)
}
