// README: Config loader; .env + environment (via viper) with defaults for HTTP, AI, collaborators and stores.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type LocationConfig struct {
	DefaultCity       string
	DefaultTimezone   string
	WrongCityLiterals []string
}

type TimeoutConfig struct {
	Geocode    time.Duration
	Search     time.Duration
	Weather    time.Duration
	Places     time.Duration
	Generation time.Duration
}

type Config struct {
	HTTP struct {
		Addr           string
		GinMode        string
		Origins        []string
		RequestTimeout time.Duration
		ShutdownGrace  time.Duration
	}
	Log struct {
		Level  string
		Format string
	}
	AI struct {
		GeminiKey       string
		GeminiModel     string
		OpenAIKey       string
		OpenAIModel     string
		Temperature     float32
		SearchBudget    int
		MaxSearchPerReq int
	}
	Search struct {
		APIKey     string
		EngineID   string
		MaxResults int
		CacheTTL   time.Duration
	}
	Maps struct {
		APIKey     string
		Language   string
		GeocodeTTL time.Duration
	}
	Weather struct {
		APIKey   string
		BaseURL  string
		CacheTTL time.Duration
	}
	Redis struct {
		Addr      string
		PrefTTL   time.Duration
		KeyPrefix string
	}
	Location LocationConfig
	Timeouts TimeoutConfig
}

// Load reads an optional .env file, an optional buddy.yaml and the process environment.
// Missing collaborator keys are not an error: the matching feature is disabled instead.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("buddy")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	cfg.HTTP.Addr = v.GetString("BUDDY_HTTP_ADDR")
	cfg.HTTP.GinMode = v.GetString("GIN_MODE")
	cfg.HTTP.Origins = splitList(v.GetString("BUDDY_CORS_ORIGINS"))
	cfg.HTTP.RequestTimeout = v.GetDuration("BUDDY_REQUEST_TIMEOUT")
	cfg.HTTP.ShutdownGrace = v.GetDuration("BUDDY_SHUTDOWN_GRACE")

	cfg.Log.Level = v.GetString("BUDDY_LOG_LEVEL")
	cfg.Log.Format = v.GetString("BUDDY_LOG_FORMAT")

	cfg.AI.GeminiKey = v.GetString("GEMINI_API_KEY")
	cfg.AI.GeminiModel = v.GetString("BUDDY_GEMINI_MODEL")
	cfg.AI.OpenAIKey = v.GetString("OPENAI_API_KEY")
	cfg.AI.OpenAIModel = v.GetString("BUDDY_OPENAI_MODEL")
	cfg.AI.Temperature = float32(v.GetFloat64("BUDDY_AI_TEMPERATURE"))
	cfg.AI.SearchBudget = v.GetInt("BUDDY_SEARCH_BUDGET")
	cfg.AI.MaxSearchPerReq = v.GetInt("BUDDY_MAX_SEARCHES")

	cfg.Search.APIKey = v.GetString("SEARCH_API_KEY")
	cfg.Search.EngineID = v.GetString("SEARCH_ENGINE_ID")
	cfg.Search.MaxResults = v.GetInt("BUDDY_SEARCH_RESULTS")
	cfg.Search.CacheTTL = v.GetDuration("BUDDY_SEARCH_CACHE_TTL")

	cfg.Maps.APIKey = v.GetString("MAPS_API_KEY")
	cfg.Maps.Language = v.GetString("BUDDY_MAPS_LANGUAGE")
	cfg.Maps.GeocodeTTL = v.GetDuration("BUDDY_GEOCODE_CACHE_TTL")

	cfg.Weather.APIKey = v.GetString("WEATHER_API_KEY")
	cfg.Weather.BaseURL = v.GetString("BUDDY_WEATHER_URL")
	cfg.Weather.CacheTTL = v.GetDuration("BUDDY_WEATHER_CACHE_TTL")

	cfg.Redis.Addr = v.GetString("REDIS_ADDR")
	cfg.Redis.PrefTTL = v.GetDuration("BUDDY_PREF_TTL")
	cfg.Redis.KeyPrefix = v.GetString("BUDDY_PREF_PREFIX")

	cfg.Location.DefaultCity = v.GetString("BUDDY_DEFAULT_CITY")
	cfg.Location.DefaultTimezone = v.GetString("BUDDY_DEFAULT_TZ")
	cfg.Location.WrongCityLiterals = splitList(v.GetString("BUDDY_WRONG_CITIES"))

	cfg.Timeouts.Geocode = v.GetDuration("BUDDY_GEOCODE_TIMEOUT")
	cfg.Timeouts.Search = v.GetDuration("BUDDY_SEARCH_TIMEOUT")
	cfg.Timeouts.Weather = v.GetDuration("BUDDY_WEATHER_TIMEOUT")
	cfg.Timeouts.Places = v.GetDuration("BUDDY_PLACES_TIMEOUT")
	cfg.Timeouts.Generation = v.GetDuration("BUDDY_GENERATION_TIMEOUT")

	if strings.TrimSpace(cfg.Location.DefaultCity) == "" {
		return Config{}, fmt.Errorf("BUDDY_DEFAULT_CITY must not be empty")
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("BUDDY_HTTP_ADDR", ":5000")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("BUDDY_CORS_ORIGINS", "*")
	v.SetDefault("BUDDY_REQUEST_TIMEOUT", 90*time.Second)
	v.SetDefault("BUDDY_SHUTDOWN_GRACE", 10*time.Second)
	v.SetDefault("BUDDY_LOG_LEVEL", "info")
	v.SetDefault("BUDDY_LOG_FORMAT", "json")

	v.SetDefault("BUDDY_GEMINI_MODEL", "gemini-2.0-flash")
	v.SetDefault("BUDDY_OPENAI_MODEL", "gpt-4o-mini")
	v.SetDefault("BUDDY_AI_TEMPERATURE", 0.7)
	v.SetDefault("BUDDY_SEARCH_BUDGET", 2500)
	v.SetDefault("BUDDY_MAX_SEARCHES", 4)

	v.SetDefault("BUDDY_SEARCH_RESULTS", 5)
	v.SetDefault("BUDDY_SEARCH_CACHE_TTL", 10*time.Minute)
	v.SetDefault("BUDDY_MAPS_LANGUAGE", "en")
	v.SetDefault("BUDDY_GEOCODE_CACHE_TTL", time.Hour)
	v.SetDefault("BUDDY_WEATHER_URL", "https://api.openweathermap.org/data/2.5/weather")
	v.SetDefault("BUDDY_WEATHER_CACHE_TTL", 15*time.Minute)

	v.SetDefault("BUDDY_PREF_TTL", 0)
	v.SetDefault("BUDDY_PREF_PREFIX", "prefs:")

	v.SetDefault("BUDDY_DEFAULT_CITY", "Gurugram")
	v.SetDefault("BUDDY_DEFAULT_TZ", "Asia/Kolkata")
	v.SetDefault("BUDDY_WRONG_CITIES", "Gurugram,Gurgaon")

	v.SetDefault("BUDDY_GEOCODE_TIMEOUT", 5*time.Second)
	v.SetDefault("BUDDY_SEARCH_TIMEOUT", 10*time.Second)
	v.SetDefault("BUDDY_WEATHER_TIMEOUT", 5*time.Second)
	v.SetDefault("BUDDY_PLACES_TIMEOUT", 10*time.Second)
	v.SetDefault("BUDDY_GENERATION_TIMEOUT", 60*time.Second)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
