package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"stampin_backend/attendance"
	"stampin_backend/models"
	"stampin_backend/roster"
	"stampin_backend/store"

	"github.com/gin-gonic/gin"
)

type AttendanceHandler struct {
	repo       store.Repository
	writer     *attendance.Writer
	summarizer *attendance.Summarizer
	exporter   *attendance.Exporter
}

func NewAttendanceHandler(repo store.Repository, r *roster.Store) *AttendanceHandler {
	return &AttendanceHandler{
		repo:       repo,
		writer:     attendance.NewWriter(repo, r),
		summarizer: attendance.NewSummarizer(repo, r),
		exporter:   attendance.NewExporter(repo),
	}
}

func (h *AttendanceHandler) SaveAttendance(c *gin.Context) {
	var req models.SaveAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	confirmation, err := h.writer.Save(req.Section, req.Attendance)
	if err != nil {
		var validationErr *attendance.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": validationErr.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to save attendance",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   fmt.Sprintf("Saved %d records at %s", confirmation.Saved, confirmation.Time),
		"timestamp": confirmation.Timestamp,
	})
}

func (h *AttendanceHandler) GetLogs(c *gin.Context) {
	records, err := h.repo.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch attendance records",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"records": records,
	})
}

func (h *AttendanceHandler) GetSummary(c *gin.Context) {
	summary, err := h.summarizer.Summarize()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to compute summary",
		})
		return
	}

	if summary.TotalRecords == 0 {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"summary": nil,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"summary": summary,
	})
}

func (h *AttendanceHandler) ExportCSV(c *gin.Context) {
	data, err := h.exporter.ExportCSV()
	if err != nil {
		var exportErr *attendance.ExportError
		if errors.As(err, &exportErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": exportErr.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to export records",
		})
		return
	}

	filename := fmt.Sprintf("StampIn_Attendance_%s.csv", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv", data)
}
