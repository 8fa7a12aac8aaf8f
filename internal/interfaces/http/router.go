package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"suspensos/internal/application/ticket/usecases"
	"suspensos/internal/infrastructure/citsmart"
	"suspensos/internal/infrastructure/config"
	ticketHandlers "suspensos/internal/interfaces/http/handlers/ticket"
	"suspensos/internal/interfaces/http/middleware"
	"suspensos/internal/shared/logger"
)

// Router wires the HTTP surface: four ticket routes plus a health probe.
type Router struct {
	engine        *gin.Engine
	ticketHandler *ticketHandlers.TicketHandler
	cfg           *config.Config
	logger        logger.Interface
}

// reportGatewayAdapter narrows the concrete CITSMART client to the
// application-layer port.
type reportGatewayAdapter struct {
	client *citsmart.Client
}

func (a *reportGatewayAdapter) Login(ctx context.Context) (usecases.ReportSession, error) {
	session, err := a.client.Login(ctx)
	if err != nil {
		return nil, err
	}
	return session, nil
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	client := citsmart.NewClient(cfg.Citsmart, log.Named("citsmart"))
	gateway := &reportGatewayAdapter{client: client}
	actor := cfg.Citsmart.Actor()

	listTicketsUC := usecases.NewListSuspendedTicketsUseCase(gateway, log.Named("list_tickets"))
	ticketStatsUC := usecases.NewGetTicketStatsUseCase(listTicketsUC, log.Named("ticket_stats"))
	scheduleTicketUC := usecases.NewScheduleTicketUseCase(gateway, actor, log.Named("schedule_ticket"))
	addNoteUC := usecases.NewAddNoteUseCase(gateway, actor, log.Named("add_note"))

	ticketHandler := ticketHandlers.NewTicketHandler(listTicketsUC, ticketStatsUC, scheduleTicketUC, addNoteUC)

	return &Router{
		engine:        engine,
		ticketHandler: ticketHandler,
		cfg:           cfg,
		logger:        log,
	}
}

// SetupRoutes registers middleware and routes on the engine.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api")
	{
		tickets := api.Group("/tickets")
		{
			tickets.GET("", r.ticketHandler.ListTickets)
			tickets.GET("/stats", r.ticketHandler.GetStats)
			tickets.POST("/:ticketNumber/schedule", r.ticketHandler.ScheduleTicket)
			tickets.POST("/:ticketNumber/notes", r.ticketHandler.AddNote)
		}
	}
}

// GetEngine returns the underlying gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
