package usecases

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"suspensos/internal/domain/ticket"
	"suspensos/internal/infrastructure/citsmart"
)

// Reconcile merges the three independently fetched report feeds into one
// view model per ticket. It is a pure transform: all indexes are local to
// the call and the same inputs always produce the same output.
//
// Schedules are merged for recency (an analyst may reschedule, only the
// latest plan matters); notes are merged for completeness (the full audit
// trail is kept, newest first).
func Reconcile(now time.Time, tickets []citsmart.TicketRecord, schedules []citsmart.ScheduleRecord, notes []citsmart.NoteRecord) []ticket.SuspendedTicket {
	scheduleByTicket := indexSchedules(schedules)

	merged := make([]ticket.SuspendedTicket, 0, len(tickets))
	for _, record := range tickets {
		view := baseTicket(record, now)
		schedule, hasSchedule := scheduleByTicket[view.Number]

		view.NotesList = collectNotes(view.Number, notes)
		if hasSchedule {
			view.NotesList = injectScheduleNote(view.NotesList, schedule)
		}

		if hasSchedule && schedule.DataHoraAgendada != "" {
			view.ScheduledDate = schedule.DataHoraAgendada
			view.Status = ticket.StatusAgendado
		}
		if len(view.NotesList) > 0 {
			view.Notes = view.NotesList[0].Text
		} else if hasSchedule && schedule.Observacao != "" {
			view.Notes = schedule.Observacao
		}

		merged = append(merged, view)
	}
	return merged
}

// indexSchedules keeps at most one schedule per ticket number, biased toward
// the most recently scheduled record. Records without a ticket number are
// skipped.
func indexSchedules(schedules []citsmart.ScheduleRecord) map[string]citsmart.ScheduleRecord {
	winners := make(map[string]citsmart.ScheduleRecord, len(schedules))
	for _, candidate := range schedules {
		if candidate.TicketNumero == "" {
			continue
		}
		stored, ok := winners[candidate.TicketNumero]
		if !ok || scheduleSupersedes(candidate, stored) {
			winners[candidate.TicketNumero] = candidate
		}
	}
	return winners
}

// scheduleSupersedes reports whether candidate replaces stored. The
// comparison is >=, not >: on equal (or equally unparseable) timestamps the
// later-iterated record wins. Callers rely on that tie-break.
func scheduleSupersedes(candidate, stored citsmart.ScheduleRecord) bool {
	return !scheduledInstant(candidate).Before(scheduledInstant(stored))
}

// scheduledInstant parses a schedule's timestamp, mapping missing or
// unparseable values to the zero time.
func scheduledInstant(s citsmart.ScheduleRecord) time.Time {
	t, ok := ticket.ParseReportTime(s.DataHoraAgendada)
	if !ok {
		return time.Time{}
	}
	return t
}

// baseTicket computes the schedule- and note-independent part of the view
// model from one raw ticket row.
func baseTicket(record citsmart.TicketRecord, now time.Time) ticket.SuspendedTicket {
	openedAt, ok := ticket.ParseReportTime(record.DataAberturaStr)
	if !ok {
		openedAt, ok = ticket.ParseReportTime(record.DataAbertura)
	}
	if !ok {
		openedAt = now
	}

	reason := strings.TrimSpace(record.MotivoSuspensao)

	view := ticket.SuspendedTicket{
		ID:               record.Ticket,
		Number:           record.Ticket,
		Title:            titleFromReason(record.MotivoSuspensao),
		Environment:      fallback(record.Projeto, ticket.FallbackEnvironment),
		Priority:         ticket.PriorityMedia,
		SuspensionReason: fallback(reason, ticket.FallbackReason),
		Status:           fallback(record.Status, ticket.StatusSuspenso),
		SuspendedAt:      openedAt.UTC().Format(time.RFC3339),
		DaysOpen:         daysOpen(now, openedAt),
		Analyst:          fallback(record.Analista, ticket.FallbackAnalyst),
		Client:           fallback(record.Equipe, ticket.FallbackTeam),
		SLADeadline:      openedAt.Add(ticket.SLAWindow).UTC().Format(time.RFC3339),
		Notes:            reason,
	}

	if view.ID == "" {
		view.ID = strconv.FormatInt(openedAt.UnixMilli(), 10)
		view.Number = ticket.FallbackNumber
	}

	return view
}

// titleFromReason derives the display title: the first non-blank line of the
// free-text suspension reason, trimmed.
func titleFromReason(reason string) string {
	for _, line := range strings.Split(reason, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ticket.FallbackTitle
}

// daysOpen is whole days elapsed since opening, clamped at zero for opening
// timestamps in the future.
func daysOpen(now, openedAt time.Time) int {
	days := int(now.Sub(openedAt) / (24 * time.Hour))
	if days < 0 {
		return 0
	}
	return days
}

// collectNotes maps a ticket's note rows to the view shape, newest first.
func collectNotes(number string, records []citsmart.NoteRecord) []ticket.Note {
	var views []ticket.Note
	for _, record := range records {
		if record.TicketNumero != number {
			continue
		}
		views = append(views, ticket.Note{
			Text:      record.TextoNota,
			Author:    fallback(record.CriadoPor, ticket.NoteAuthorSistema),
			Type:      record.TipoNota,
			Origin:    record.Origem,
			CreatedAt: record.CriadoEm,
		})
	}
	sort.SliceStable(views, func(i, j int) bool {
		return noteNewerFirst(views[i], views[j])
	})
	return views
}

// noteNewerFirst orders notes by creation time descending. Unparseable
// timestamps read as the zero time and therefore sort last; the sort is
// stable so equal timestamps keep feed order.
func noteNewerFirst(a, b ticket.Note) bool {
	return noteInstant(a).After(noteInstant(b))
}

func noteInstant(n ticket.Note) time.Time {
	t, ok := ticket.ParseReportTime(n.CreatedAt)
	if !ok {
		return time.Time{}
	}
	return t
}

// injectScheduleNote prepends a synthetic note for the winning schedule's
// observation unless the exact same text already appears among the ticket's
// notes. The dedupe is a verbatim string match, deliberately not tolerant
// of whitespace or case differences.
func injectScheduleNote(notes []ticket.Note, schedule citsmart.ScheduleRecord) []ticket.Note {
	if schedule.Observacao == "" {
		return notes
	}
	for _, note := range notes {
		if note.Text == schedule.Observacao {
			return notes
		}
	}
	synthetic := ticket.Note{
		Text:      schedule.Observacao,
		Author:    ticket.NoteAuthorAgendamento,
		Type:      ticket.NoteTypeAgendamento,
		Origin:    originSchedule,
		CreatedAt: schedule.DataHoraAgendada,
	}
	return append([]ticket.Note{synthetic}, notes...)
}

func fallback(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}
