package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stampin_backend/config"
	"stampin_backend/db"
	"stampin_backend/roster"
	"stampin_backend/routes"
	"stampin_backend/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found") // Non-fatal in production
	}

	cfg := config.Load()

	// Load section rosters
	var rosterStore *roster.Store
	if cfg.RosterFile != "" {
		var err error
		rosterStore, err = roster.Load(cfg.RosterFile)
		if err != nil {
			log.Fatalf("Error loading roster file: %v", err)
		}
	} else {
		log.Println("ROSTER_FILE not set, using built-in sample roster")
		rosterStore = roster.Default()
	}

	// Pick the attendance store. Without database credentials the
	// service runs on the in-memory store (development mode).
	var repo store.Repository
	var database *sql.DB
	if cfg.DBPassword == "" {
		log.Println("DB_PASSWORD not set, using in-memory attendance store")
		repo = store.NewMemory()
	} else {
		var err error
		database, err = db.Connect(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
		if err != nil {
			log.Fatalf("Error connecting to database: %v", err)
		}
		defer database.Close()

		if err := db.InitSchema(database); err != nil {
			log.Fatalf("Error initializing database schema: %v", err)
		}
		repo = store.NewPostgres(database)
	}

	// Initialize router
	r := gin.Default()

	// Setup CORS - the operator UI may be served from anywhere
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{
		"Origin",
		"Content-Length",
		"Content-Type",
	}
	corsConfig.AllowMethods = []string{
		"GET",
		"POST",
	}
	r.Use(cors.New(corsConfig))

	// Setup routes
	routes.SetupRoutes(r, repo, rosterStore, database)

	// Run server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
}
