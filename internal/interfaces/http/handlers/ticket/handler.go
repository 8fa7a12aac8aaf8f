package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"suspensos/internal/application/ticket/usecases"
	"suspensos/internal/shared/logger"
	"suspensos/internal/shared/utils"
)

// Endpoint-level failure messages surfaced in the `error` field; the
// underlying cause travels in `details`.
const (
	msgLoadFailed     = "Falha ao carregar relatório do CITSMART."
	msgNoteFailed     = "Falha ao salvar nota no CITSMART."
	msgScheduleFailed = "Falha ao salvar agendamento no CITSMART."
	msgInvalidBody    = "Dados da requisição inválidos."
)

type TicketHandler struct {
	listTicketsUC    usecases.ListSuspendedTicketsExecutor
	ticketStatsUC    usecases.GetTicketStatsExecutor
	scheduleTicketUC usecases.ScheduleTicketExecutor
	addNoteUC        usecases.AddNoteExecutor
	logger           logger.Interface
}

func NewTicketHandler(
	listTicketsUC usecases.ListSuspendedTicketsExecutor,
	ticketStatsUC usecases.GetTicketStatsExecutor,
	scheduleTicketUC usecases.ScheduleTicketExecutor,
	addNoteUC usecases.AddNoteExecutor,
) *TicketHandler {
	return &TicketHandler{
		listTicketsUC:    listTicketsUC,
		ticketStatsUC:    ticketStatsUC,
		scheduleTicketUC: scheduleTicketUC,
		addNoteUC:        addNoteUC,
		logger:           logger.NewLogger(),
	}
}

// ListTickets handles GET /api/tickets
// @Summary List suspended tickets
// @Description Fetches the three CITSMART report feeds and returns the merged ticket view models
// @Tags tickets
// @Produce json
// @Success 200 {object} usecases.ListSuspendedTicketsResult
// @Failure 500 {object} utils.ErrorEnvelope
// @Failure 502 {object} utils.ErrorEnvelope
// @Router /api/tickets [get]
func (h *TicketHandler) ListTickets(c *gin.Context) {
	result, err := h.listTicketsUC.Execute(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to load suspended tickets", "error", err)
		utils.ErrorResponseWithError(c, msgLoadFailed, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetStats handles GET /api/tickets/stats
// @Summary Dashboard aggregates
// @Description Per-environment, per-reason and per-priority counts plus suspension timelines
// @Tags tickets
// @Produce json
// @Success 200 {object} usecases.TicketStatsResult
// @Failure 500 {object} utils.ErrorEnvelope
// @Failure 502 {object} utils.ErrorEnvelope
// @Router /api/tickets/stats [get]
func (h *TicketHandler) GetStats(c *gin.Context) {
	result, err := h.ticketStatsUC.Execute(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to compute ticket stats", "error", err)
		utils.ErrorResponseWithError(c, msgLoadFailed, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ScheduleTicket handles POST /api/tickets/:ticketNumber/schedule
// @Summary Schedule a ticket
// @Description Creates a schedule record upstream and, when notes are given, a companion note
// @Tags tickets
// @Accept json
// @Produce json
// @Param ticketNumber path string true "Ticket number"
// @Param schedule body ScheduleTicketRequest true "Schedule data"
// @Success 200 {object} utils.OKResponse
// @Failure 400 {object} utils.ErrorEnvelope
// @Failure 502 {object} utils.ErrorEnvelope
// @Router /api/tickets/{ticketNumber}/schedule [post]
func (h *TicketHandler) ScheduleTicket(c *gin.Context) {
	var req ScheduleTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid schedule request body", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, msgInvalidBody, utils.BindingErrorDetails(err))
		return
	}

	cmd := req.ToCommand(c.Param("ticketNumber"))
	if err := h.scheduleTicketUC.Execute(c.Request.Context(), cmd); err != nil {
		h.logger.Errorw("failed to schedule ticket", "ticket", cmd.TicketNumber, "error", err)
		utils.ErrorResponseWithError(c, msgScheduleFailed, err)
		return
	}

	utils.AckResponse(c)
}

// AddNote handles POST /api/tickets/:ticketNumber/notes
// @Summary Annotate a ticket
// @Description Creates a note record upstream
// @Tags tickets
// @Accept json
// @Produce json
// @Param ticketNumber path string true "Ticket number"
// @Param note body AddNoteRequest true "Note data"
// @Success 200 {object} utils.OKResponse
// @Failure 400 {object} utils.ErrorEnvelope
// @Failure 502 {object} utils.ErrorEnvelope
// @Router /api/tickets/{ticketNumber}/notes [post]
func (h *TicketHandler) AddNote(c *gin.Context) {
	var req AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid note request body", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, msgInvalidBody, utils.BindingErrorDetails(err))
		return
	}

	cmd := req.ToCommand(c.Param("ticketNumber"))
	if err := h.addNoteUC.Execute(c.Request.Context(), cmd); err != nil {
		h.logger.Errorw("failed to add note", "ticket", cmd.TicketNumber, "error", err)
		utils.ErrorResponseWithError(c, msgNoteFailed, err)
		return
	}

	utils.AckResponse(c)
}
