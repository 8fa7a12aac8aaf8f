package ticket

import "suspensos/internal/application/ticket/usecases"

// ScheduleTicketRequest is the schedule-modal form payload.
type ScheduleTicketRequest struct {
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	Time        string `json:"time" binding:"required,datetime=15:04"`
	ServiceType string `json:"serviceType" binding:"required"`
	Notes       string `json:"notes"`
}

func (r *ScheduleTicketRequest) ToCommand(ticketNumber string) usecases.ScheduleTicketCommand {
	return usecases.ScheduleTicketCommand{
		TicketNumber: ticketNumber,
		Date:         r.Date,
		Time:         r.Time,
		ServiceType:  r.ServiceType,
		Notes:        r.Notes,
	}
}

// AddNoteRequest is the note form payload. Type defaults to "interna".
type AddNoteRequest struct {
	Text string `json:"text" binding:"required"`
	Type string `json:"type"`
}

func (r *AddNoteRequest) ToCommand(ticketNumber string) usecases.AddNoteCommand {
	return usecases.AddNoteCommand{
		TicketNumber: ticketNumber,
		Text:         r.Text,
		Type:         r.Type,
	}
}
