// README: Category handlers; options deck and the movie/itinerary wizard.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"travelbuddy/internal/service"
)

type WizardHandler struct {
	assistant *service.Assistant
	timeout   time.Duration
	log       *zap.Logger
}

func NewWizardHandler(assistant *service.Assistant, timeout time.Duration, log *zap.Logger) *WizardHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &WizardHandler{assistant: assistant, timeout: timeout, log: log}
}

func (h *WizardHandler) Options(c *gin.Context) {
	var req service.OptionsRequest
	if !bindJSON(c, &req) {
		return
	}
	ctx, cancel := withTimeout(c, h.timeout)
	defer cancel()

	resp, err := h.assistant.Options(ctx, req)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	writeJSON(c, http.StatusOK, resp)
}

func (h *WizardHandler) Movies(c *gin.Context) {
	var req service.WizardMoviesRequest
	if !bindJSON(c, &req) {
		return
	}
	ctx, cancel := withTimeout(c, h.timeout)
	defer cancel()

	resp, err := h.assistant.WizardMovies(ctx, req)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	writeJSON(c, http.StatusOK, resp)
}

func (h *WizardHandler) Itinerary(c *gin.Context) {
	var req service.WizardItineraryRequest
	if !bindJSON(c, &req) {
		return
	}
	ctx, cancel := withTimeout(c, h.timeout)
	defer cancel()

	resp, err := h.assistant.WizardItinerary(ctx, req)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	writeJSON(c, http.StatusOK, resp)
}
