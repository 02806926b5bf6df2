// README: Weather collaborator; OpenWeatherMap current conditions by city, cached.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

type Report struct {
	TempC     float64 `json:"temp_c"`
	Condition string  `json:"condition"`
}

// Summary is the one-line form the prompt uses.
func (r Report) Summary() string {
	return fmt.Sprintf("%d°C, %s", int(math.Round(r.TempC)), r.Condition)
}

type Service struct {
	apiKey  string
	baseURL string
	client  *http.Client
	cache   *cache.Cache
}

func NewService(apiKey, baseURL string, timeout, cacheTTL time.Duration) *Service {
	return &Service{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		cache:   cache.New(cacheTTL, 2*cacheTTL),
	}
}

func (s *Service) Current(ctx context.Context, city string) (Report, error) {
	key := strings.ToLower(strings.TrimSpace(city))
	if v, ok := s.cache.Get(key); ok {
		return v.(Report), nil
	}

	u, err := url.Parse(s.baseURL)
	if err != nil {
		return Report{}, fmt.Errorf("weather url: %w", err)
	}
	params := url.Values{}
	params.Add("q", city)
	params.Add("appid", s.apiKey)
	params.Add("units", "metric")
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Report{}, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return Report{}, fmt.Errorf("weather api error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Report{}, fmt.Errorf("weather API returned %d", resp.StatusCode)
	}

	var body struct {
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Report{}, fmt.Errorf("decode weather: %w", err)
	}

	r := Report{TempC: body.Main.Temp, Condition: "unknown"}
	if len(body.Weather) > 0 && body.Weather[0].Description != "" {
		r.Condition = body.Weather[0].Description
	}
	s.cache.Set(key, r, cache.DefaultExpiration)
	return r, nil
}
