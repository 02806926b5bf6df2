// README: Preference handlers; records keyed by client id or a header fingerprint.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"travelbuddy/internal/modules/preference"
)

type PreferenceHandler struct {
	prefs *preference.Service
	log   *zap.Logger
}

func NewPreferenceHandler(prefs *preference.Service, log *zap.Logger) *PreferenceHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &PreferenceHandler{prefs: prefs, log: log}
}

type preferenceReq struct {
	ID          string         `json:"id"`
	Preferences map[string]any `json:"preferences"`
}

// resolveID prefers the client id; without one the caller is fingerprinted.
func resolveID(c *gin.Context, explicit string) (string, bool) {
	id := strings.TrimSpace(explicit)
	if id == "" {
		return preference.Fingerprint(c.GetHeader("User-Agent"), c.GetHeader("Accept-Language"), c.ClientIP()), true
	}
	return id, isValidID(id)
}

// Get handles GET /api/preferences.
func (h *PreferenceHandler) Get(c *gin.Context) {
	id, ok := resolveID(c, c.Query("id"))
	if !ok {
		writeError(c, http.StatusBadRequest, "invalid id")
		return
	}
	rec, found, err := h.prefs.Load(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"id": id, "preferences": rec.Map(), "found": found})
}

// Save handles POST /api/preferences.
func (h *PreferenceHandler) Save(c *gin.Context) {
	var req preferenceReq
	if !bindJSON(c, &req) {
		return
	}
	id, ok := resolveID(c, req.ID)
	if !ok {
		writeError(c, http.StatusBadRequest, "invalid id")
		return
	}
	if len(req.Preferences) == 0 {
		writeError(c, http.StatusBadRequest, "missing preferences")
		return
	}
	rec, err := h.prefs.Save(c.Request.Context(), id, preference.FromMap(req.Preferences))
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"id": id, "preferences": rec.Map(), "status": "saved"})
}
