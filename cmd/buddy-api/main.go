// README: Entry point; loads config, wires collaborators and the pipeline, serves HTTP until signalled.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/ringsaturn/tzf"
	"go.uber.org/zap"

	"travelbuddy/internal/ai"
	"travelbuddy/internal/config"
	httptransport "travelbuddy/internal/http"
	"travelbuddy/internal/infra"
	"travelbuddy/internal/maps"
	"travelbuddy/internal/modules/location"
	"travelbuddy/internal/modules/plan"
	"travelbuddy/internal/modules/preference"
	"travelbuddy/internal/search"
	"travelbuddy/internal/service"
	"travelbuddy/internal/weather"
)

// Version is set at build time with -ldflags.
var Version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := infra.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	gin.SetMode(cfg.HTTP.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := service.Deps{
		Timeouts:     cfg.Timeouts,
		Temperature:  cfg.AI.Temperature,
		SearchBudget: cfg.AI.SearchBudget,
		MaxSearches:  cfg.AI.MaxSearchPerReq,
		Validator:    plan.NewValidator(cfg.Location.WrongCityLiterals),
		Log:          logger,
	}

	// 1. Generators: Gemini primary, OpenAI secondary.
	generator := &ai.Fallback{Log: logger, Observe: func(name string, err error) { infra.ObserveCall("generator_"+name, err) }}
	if cfg.AI.GeminiKey != "" {
		gemini, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey, cfg.AI.GeminiModel)
		if err != nil {
			logger.Warn("gemini disabled", zap.Error(err))
		} else {
			defer gemini.Close()
			generator.Primary = gemini
		}
	}
	if cfg.AI.OpenAIKey != "" {
		generator.Secondary = ai.NewOpenAIProvider(cfg.AI.OpenAIKey, cfg.AI.OpenAIModel, "")
	}
	if generator.Enabled() {
		deps.Generator = generator
	}

	// 2. Maps: reverse geocoding, nearby places, travel times.
	var geocoder location.Geocoder
	if cfg.Maps.APIKey != "" {
		client, err := maps.NewClient(cfg.Maps.APIKey, "")
		if err != nil {
			logger.Warn("maps disabled", zap.Error(err))
		} else {
			geocoder = maps.NewGeocodeService(client, cfg.Maps.Language, cfg.Maps.GeocodeTTL)
			deps.Places = maps.NewPlacesService(client, cfg.Maps.Language)
			deps.Routes = maps.NewRouteService(client, cfg.Maps.Language)
		}
	}
	deps.Resolver = location.NewResolver(geocoder, cfg.Timeouts.Geocode, cfg.Location.DefaultCity, logger)

	// 3. Clock: coordinate timezones via tzf.
	var finder location.TimezoneFinder
	if f, err := tzf.NewDefaultFinder(); err != nil {
		logger.Warn("timezone finder disabled", zap.Error(err))
	} else {
		finder = f
	}
	deps.Clock = location.NewClock(finder, cfg.Location.DefaultTimezone, nil)

	// 4. Web search and weather.
	if cfg.Search.APIKey != "" && cfg.Search.EngineID != "" {
		svc, err := search.NewService(ctx, search.Config{
			APIKey:     cfg.Search.APIKey,
			EngineID:   cfg.Search.EngineID,
			MaxResults: cfg.Search.MaxResults,
			CacheTTL:   cfg.Search.CacheTTL,
			Timeout:    cfg.Timeouts.Search,
		})
		if err != nil {
			logger.Warn("search disabled", zap.Error(err))
		} else {
			deps.Search = svc
		}
	}
	if cfg.Weather.APIKey != "" {
		deps.Weather = weather.NewService(cfg.Weather.APIKey, cfg.Weather.BaseURL, cfg.Timeouts.Weather, cfg.Weather.CacheTTL)
	}

	// 5. Preferences: Redis when configured, process memory otherwise.
	var store preference.Store = preference.NewMemoryStore()
	if cfg.Redis.Addr != "" {
		rdb, err := infra.NewRedis(ctx, cfg.Redis.Addr)
		if err != nil {
			logger.Warn("redis unavailable, keeping preferences in memory", zap.Error(err))
		} else {
			defer func() { _ = rdb.Close() }()
			store = preference.NewRedisStore(rdb, cfg.Redis.KeyPrefix, cfg.Redis.PrefTTL)
		}
	}
	prefs := preference.NewService(store)
	deps.Preferences = prefs

	assistant := service.NewAssistant(deps)
	logger.Info("travel buddy starting",
		zap.String("version", Version),
		zap.String("generator", assistant.GeneratorName()),
		zap.Any("features", assistant.Features()),
	)

	server := httptransport.NewServer(cfg.HTTP.Addr, cfg.HTTP.ShutdownGrace, httptransport.ServerDeps{
		Assistant:      assistant,
		Preferences:    prefs,
		Origins:        cfg.HTTP.Origins,
		RequestTimeout: cfg.HTTP.RequestTimeout,
		Version:        Version,
		Log:            logger,
	})
	if err := server.Run(ctx); err != nil {
		logger.Fatal("http server", zap.Error(err))
	}
}
