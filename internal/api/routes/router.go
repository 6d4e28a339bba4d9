package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/consult-go/internal/api/handlers"
	"github.com/linskybing/consult-go/internal/api/middleware"
	"github.com/linskybing/consult-go/internal/application"
	"github.com/linskybing/consult-go/internal/cron"
	"github.com/linskybing/consult-go/internal/repository"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	// Token status check endpoint (no group, but with JWT middleware)
	r.GET("/auth/status", middleware.JWTAuthMiddleware(), handlers.AuthStatusHandler)

	// init
	reposInstance := repository.NewRepositories(db)
	servicesInstance := application.New(reposInstance)
	handlersInstance := handlers.New(servicesInstance, reposInstance, r)

	// Start background tasks
	cron.StartCleanupTask(servicesInstance.Audit)

	// setup
	r.POST("/register", handlersInstance.User.Register)
	r.POST("/login", handlersInstance.User.Login)
	r.POST("/logout", handlersInstance.User.Logout)

	// Guests join and watch tickets without an account; the optional JWT
	// middleware attaches claims when a token is present and rejects only
	// tokens that fail to parse.
	optional := r.Group("/")
	optional.Use(middleware.OptionalJWTMiddleware())
	{
		optional.POST("/queue/join", handlersInstance.Ticket.Join)
		optional.POST("/queue/leave", handlersInstance.Ticket.Leave)
		optional.GET("/tickets/:id", handlersInstance.Ticket.Get)
		optional.POST("/tickets/:id/end", handlersInstance.Ticket.End)
		optional.POST("/tickets/:id/room-access", handlersInstance.Room.Access)
	}

	// Websocket clients carry credentials in the query string.
	r.GET("/ws/tickets/:id/status", handlersInstance.Status.Subscribe)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		queue := auth.Group("/queue")
		{
			queue.POST("/accept-next", middleware.Advisor(), handlersInstance.Ticket.AcceptNext)
			queue.POST("/appointment", middleware.Advisor(), handlersInstance.Ticket.StartAppointment)
		}

		presence := auth.Group("/presence")
		{
			presence.PUT("", middleware.Advisor(), handlersInstance.Presence.SetOnline)
			presence.GET("/:id", handlersInstance.Presence.Availability)
		}

		audit := auth.Group("/audit/logs")
		{
			audit.GET("", middleware.Admin(), handlersInstance.Audit.GetAuditLogs)
		}
	}
}
