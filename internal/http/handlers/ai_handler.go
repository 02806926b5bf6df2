// README: Planner handlers (assist, legacy plan, clarify, itinerary).
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"travelbuddy/internal/service"
)

type AIHandler struct {
	assistant *service.Assistant
	timeout   time.Duration
	log       *zap.Logger
}

func NewAIHandler(assistant *service.Assistant, timeout time.Duration, log *zap.Logger) *AIHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &AIHandler{assistant: assistant, timeout: timeout, log: log}
}

// Assist handles POST /api/assist.
func (h *AIHandler) Assist(c *gin.Context) {
	var req service.AssistRequest
	if !bindJSON(c, &req) {
		return
	}
	ctx, cancel := withTimeout(c, h.timeout)
	defer cancel()

	resp, err := h.assistant.Assist(ctx, req)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	writeJSON(c, http.StatusOK, resp)
}

// Plan handles POST /api/plan.
func (h *AIHandler) Plan(c *gin.Context) {
	var req service.PlanRequest
	if !bindJSON(c, &req) {
		return
	}
	ctx, cancel := withTimeout(c, h.timeout)
	defer cancel()

	resp, err := h.assistant.Plan(ctx, req)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	writeJSON(c, http.StatusOK, resp)
}

// Clarify handles POST /api/clarify.
func (h *AIHandler) Clarify(c *gin.Context) {
	var req service.ClarifyRequest
	if !bindJSON(c, &req) {
		return
	}
	ctx, cancel := withTimeout(c, h.timeout)
	defer cancel()

	resp, err := h.assistant.Clarify(ctx, req)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	writeJSON(c, http.StatusOK, resp)
}

// Itinerary handles POST /api/itinerary.
func (h *AIHandler) Itinerary(c *gin.Context) {
	var req service.ItineraryRequest
	if !bindJSON(c, &req) {
		return
	}
	ctx, cancel := withTimeout(c, h.timeout)
	defer cancel()

	resp, err := h.assistant.Itinerary(ctx, req)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	writeJSON(c, http.StatusOK, resp)
}
