// README: HTTP router registration.
package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"travelbuddy/internal/http/handlers"
	"travelbuddy/internal/http/middleware"
)

func NewRouter(deps ServerDeps) *gin.Engine {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(log))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.CORS(deps.Origins))

	system := handlers.NewSystemHandler(deps.Assistant, deps.Version)
	r.GET("/", system.Home)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.GET("/health", system.Health)

	aiHandler := handlers.NewAIHandler(deps.Assistant, deps.RequestTimeout, log)
	api.POST("/assist", aiHandler.Assist)
	api.POST("/plan", aiHandler.Plan)
	api.POST("/clarify", aiHandler.Clarify)
	api.POST("/itinerary", aiHandler.Itinerary)

	wizard := handlers.NewWizardHandler(deps.Assistant, deps.RequestTimeout, log)
	api.POST("/options", wizard.Options)
	api.POST("/wizard/movies", wizard.Movies)
	api.POST("/wizard/itinerary", wizard.Itinerary)

	prefs := handlers.NewPreferenceHandler(deps.Preferences, log)
	api.GET("/preferences", prefs.Get)
	api.POST("/preferences", prefs.Save)

	return r
}
