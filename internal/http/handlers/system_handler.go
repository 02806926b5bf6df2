// README: Liveness and feature reporting.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"travelbuddy/internal/service"
)

type SystemHandler struct {
	assistant *service.Assistant
	version   string
	now       func() time.Time
}

func NewSystemHandler(assistant *service.Assistant, version string) *SystemHandler {
	return &SystemHandler{assistant: assistant, version: version, now: time.Now}
}

// Home handles GET /.
func (h *SystemHandler) Home(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{
		"name":    "Travel Buddy API",
		"version": h.version,
		"endpoints": gin.H{
			"/api/assist":           "POST - Main assistant endpoint",
			"/api/plan":             "POST - Legacy planner (NOW, TOMORROW, TRIP)",
			"/api/clarify":          "POST - Guided clarifying questions",
			"/api/options":          "POST - Category options deck",
			"/api/wizard/movies":    "POST - Movie night wizard",
			"/api/wizard/itinerary": "POST - Timeline from wizard selections",
			"/api/itinerary":        "POST - Day plan timeline",
			"/api/preferences":      "GET, POST - Saved preferences",
			"/api/health":           "GET - Health check",
		},
	})
}

// Health handles GET /api/health.
func (h *SystemHandler) Health(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{
		"status":    "ok",
		"version":   h.version,
		"generator": h.assistant.GeneratorName(),
		"features":  h.assistant.Features(),
		"timestamp": h.now().Format(time.RFC3339),
	})
}
