package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"travelbuddy/internal/ai"
	"travelbuddy/internal/config"
	"travelbuddy/internal/infra"
	"travelbuddy/internal/modules/location"
	"travelbuddy/internal/modules/plan"
	"travelbuddy/internal/service"
)

func main() {
	query := flag.String("query", "I want to watch a movie", "what the traveler asks for")
	city := flag.String("city", "", "client-reported city")
	hour := flag.Float64("hour", -1, "client local hour (0-24), -1 for server time")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.AI.GeminiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}
	logger, err := infra.NewLogger("warn", "console")
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey, cfg.AI.GeminiModel)
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	defer provider.Close()

	assistant := service.NewAssistant(service.Deps{
		Generator:    provider,
		Resolver:     location.NewResolver(nil, cfg.Timeouts.Geocode, cfg.Location.DefaultCity, logger),
		Clock:        location.NewClock(nil, cfg.Location.DefaultTimezone, nil),
		Validator:    plan.NewValidator(cfg.Location.WrongCityLiterals),
		Timeouts:     cfg.Timeouts,
		Temperature:  cfg.AI.Temperature,
		SearchBudget: cfg.AI.SearchBudget,
		Log:          logger,
	})

	req := service.AssistRequest{Query: *query, Context: service.RequestContext{Location: *city}}
	if *hour >= 0 {
		req.Context.LocalHour = hour
	}

	fmt.Printf("User: %s\n", *query)
	resp, err := assistant.Assist(ctx, req)
	if err != nil {
		log.Fatalf("Error running assistant: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(resp)
}
