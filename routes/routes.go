package routes

import (
	"database/sql"

	"stampin_backend/handlers"
	"stampin_backend/roster"
	"stampin_backend/store"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the application. database
// is nil when the service runs on the in-memory store.
func SetupRoutes(r *gin.Engine, repo store.Repository, rosterStore *roster.Store, database *sql.DB) {
	attendanceHandler := handlers.NewAttendanceHandler(repo, rosterStore)
	healthHandler := handlers.NewHealthHandler(database)

	r.GET("/health", healthHandler.HealthCheck)

	r.POST("/save-attendance", attendanceHandler.SaveAttendance)
	r.GET("/get-logs", attendanceHandler.GetLogs)
	r.GET("/get-summary", attendanceHandler.GetSummary)
	r.GET("/export-csv", attendanceHandler.ExportCSV)
}
