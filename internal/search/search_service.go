// README: Web-search collaborator over Google Programmable Search, cached per query.
package search

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/samber/lo"
	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"
)

var ErrSearchTimeout = errors.New("search: timeout")

// Result is one ranked snippet.
type Result struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Content string  `json:"content"`
	Score   float64 `json:"-"`
}

type Config struct {
	APIKey     string
	EngineID   string
	MaxResults int
	CacheTTL   time.Duration
	Timeout    time.Duration
	// Endpoint overrides the API host; tests only.
	Endpoint string
}

type Service struct {
	svc   *customsearch.Service
	cfg   Config
	cache *cache.Cache
}

func NewService(ctx context.Context, cfg Config) (*Service, error) {
	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}
	svc, err := customsearch.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create search client: %w", err)
	}
	if cfg.MaxResults <= 0 || cfg.MaxResults > 10 {
		cfg.MaxResults = 5
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Service{svc: svc, cfg: cfg, cache: cache.New(cfg.CacheTTL, 2*cfg.CacheTTL)}, nil
}

// Search returns deduplicated results ordered by relevance. Identical queries within
// the cache TTL do not hit the API.
func (s *Service) Search(ctx context.Context, query string) ([]Result, error) {
	query = strings.Join(strings.Fields(query), " ")
	if query == "" {
		return nil, nil
	}
	if v, ok := s.cache.Get(query); ok {
		return v.([]Result), nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	resp, err := s.svc.Cse.List().
		Cx(s.cfg.EngineID).
		Q(query).
		Num(int64(s.cfg.MaxResults)).
		Context(ctx).
		Do()
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, ErrSearchTimeout
		}
		return nil, fmt.Errorf("search api error: %w", err)
	}

	results := rank(resp.Items)
	s.cache.Set(query, results, cache.DefaultExpiration)
	return results, nil
}

func rank(items []*customsearch.Result) []Result {
	out := lo.FilterMap(items, func(item *customsearch.Result, _ int) (Result, bool) {
		// Skip non-HTML
		if item == nil || (item.Mime != "" && !strings.Contains(item.Mime, "html")) {
			return Result{}, false
		}
		score := 1.0
		if strings.Contains(strings.ToLower(item.Title), "official") {
			score += 0.1
		}
		if strings.Contains(item.Link, "maps.google") || strings.Contains(item.Link, "tripadvisor") || strings.Contains(item.Link, "zomato") {
			score += 0.2
		}
		return Result{Title: item.Title, URL: item.Link, Content: item.Snippet, Score: score}, true
	})
	out = lo.UniqBy(out, func(r Result) string { return r.URL })
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}
