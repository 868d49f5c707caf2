package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/parnika15-9/meeting-summarizer/internal/app/intake"
)

// Home handles GET /, returning the service banner and endpoint list.
func Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "running",
		"message": "Meeting Summarizer API is active! (Powered by Groq)",
		"endpoints": gin.H{
			"health":     "/health (GET) - Check server health",
			"transcribe": "/transcribe (POST) - Upload audio file for transcription",
			"history":    "/history (GET) - Get transcription history",
		},
		"usage": gin.H{
			"transcribe":        "Send POST request with audio file in form-data with key \"audio\"",
			"supported_formats": intake.AllowedList(),
		},
	})
}

// Health handles GET /health.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
	})
}
