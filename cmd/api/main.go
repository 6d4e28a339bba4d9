package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/consult-go/internal/api/middleware"
	"github.com/linskybing/consult-go/internal/api/routes"
	"github.com/linskybing/consult-go/internal/config"
	"github.com/linskybing/consult-go/internal/config/db"
	"github.com/linskybing/consult-go/internal/domain/advisor"
	"github.com/linskybing/consult-go/internal/domain/audit"
	"github.com/linskybing/consult-go/internal/domain/caseref"
	"github.com/linskybing/consult-go/internal/domain/ticket"
	"github.com/linskybing/consult-go/internal/domain/user"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection
	db.Init()

	// Auto migrate database schemas
	if err := db.DB.AutoMigrate(
		&user.User{},
		&caseref.Case{},
		&ticket.Ticket{},
		&advisor.Presence{},
		&audit.AuditLog{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// The partial unique index on open tickets cannot be expressed as a
	// gorm tag, so it is created separately.
	if err := db.CreateIndexes(); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(router, db.DB)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
