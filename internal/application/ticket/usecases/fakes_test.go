package usecases

import (
	"context"
	"io"
	"log/slog"

	"suspensos/internal/infrastructure/citsmart"
	"suspensos/internal/shared/logger"
)

// fakeSession is an in-memory ReportSession. Zero values answer every read
// with an empty feed; tests set the fields they care about.
type fakeSession struct {
	tickets   []citsmart.TicketRecord
	schedules []citsmart.ScheduleRecord
	notes     []citsmart.NoteRecord

	ticketsErr   error
	schedulesErr error
	notesErr     error

	createdNotes      []citsmart.CreateNoteInput
	createdSchedules  []citsmart.CreateScheduleInput
	createNoteErr     error
	createScheduleErr error
}

func (s *fakeSession) SuspendedTickets(ctx context.Context) ([]citsmart.TicketRecord, error) {
	return s.tickets, s.ticketsErr
}

func (s *fakeSession) Schedules(ctx context.Context) ([]citsmart.ScheduleRecord, error) {
	return s.schedules, s.schedulesErr
}

func (s *fakeSession) Notes(ctx context.Context) ([]citsmart.NoteRecord, error) {
	return s.notes, s.notesErr
}

func (s *fakeSession) CreateNote(ctx context.Context, input citsmart.CreateNoteInput) error {
	if s.createNoteErr != nil {
		return s.createNoteErr
	}
	s.createdNotes = append(s.createdNotes, input)
	return nil
}

func (s *fakeSession) CreateSchedule(ctx context.Context, input citsmart.CreateScheduleInput) error {
	if s.createScheduleErr != nil {
		return s.createScheduleErr
	}
	s.createdSchedules = append(s.createdSchedules, input)
	return nil
}

type fakeGateway struct {
	session  *fakeSession
	loginErr error
	logins   int
}

func (g *fakeGateway) Login(ctx context.Context) (ReportSession, error) {
	g.logins++
	if g.loginErr != nil {
		return nil, g.loginErr
	}
	return g.session, nil
}

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
