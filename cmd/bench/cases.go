// README: Smoke cases for every endpoint plus Redis, concurrency and throughput checks.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

type Runner struct {
	cfg   Config
	httpc *http.Client
	redis *redis.Client
}

type Result struct {
	Name    string
	Status  string
	Latency time.Duration
	Note    string
}

type TestCase struct {
	Name  string
	Focus string
	Run   func(ctx context.Context, r *Runner) Result
}

// expectation inspects a decoded body and returns a non-empty note on mismatch.
type expectation func(body map[string]any) string

func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:   cfg,
		httpc: &http.Client{Timeout: 120 * time.Second},
	}
}

func (r *Runner) RunAll(ctx context.Context) []Result {
	if r.cfg.RedisAddr != "" {
		r.redis = redis.NewClient(&redis.Options{Addr: r.cfg.RedisAddr})
	}

	tests := r.cases()
	results := make([]Result, 0, len(tests))

	for _, tc := range tests {
		if r.cfg.Only != "" && !strings.HasPrefix(tc.Name, r.cfg.Only) {
			continue
		}
		res := tc.Run(ctx, r)
		res.Name = tc.Name
		results = append(results, res)
		fmt.Printf("%-7s %s", res.Status, tc.Name)
		if res.Latency > 0 {
			fmt.Printf(" (%s)", res.Latency.Round(time.Millisecond))
		}
		if res.Note != "" {
			fmt.Printf(" - %s", res.Note)
		}
		fmt.Println()
	}

	if r.redis != nil {
		_ = r.redis.Close()
	}
	return results
}

func (r *Runner) cases() []TestCase {
	base := r.cfg.BaseURL
	gurugram := map[string]any{"location": "Gurugram", "local_hour": 19, "timezone": "Asia/Kolkata"}

	return []TestCase{
		{
			Name:  "Env: Redis connect",
			Focus: "preference store backend",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.redis == nil {
					return Result{Status: "SKIP", Note: "redis not configured"}
				}
				ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
				defer cancel()
				if err := r.redis.Ping(ctx).Err(); err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				return Result{Status: "PASS"}
			},
		},
		httpCaseMethod("API: health", http.MethodGet, base+"/api/health", nil, 200, field("status", "ok")),
		httpCaseMethod("API: home", http.MethodGet, base+"/", nil, 200, present("endpoints")),

		// Assist
		httpCase("Assist: empty query -> friendly error", base+"/api/assist", map[string]any{"query": ""}, 200, field("type", "error")),
		httpCase("Assist: movie at 19:00", base+"/api/assist", map[string]any{
			"query":   "I want to watch a movie",
			"context": gurugram,
		}, 200, all(envelope, field("intent", "movie"))),
		httpCase("Assist: late night food", base+"/api/assist", map[string]any{
			"query":   "hungry, anything open now?",
			"context": map[string]any{"location": "Gurugram", "local_hour": 1.5},
		}, 200, envelope),
		rawCase("Assist: invalid json -> 400", base+"/api/assist", "{oops", 400),

		// Legacy planner
		httpCase("Plan: TOMORROW", base+"/api/plan", map[string]any{
			"plan_type": "TOMORROW",
			"traveler":  map[string]any{"budget": "mid"},
			"context":   gurugram,
		}, 200, all(envelope, field("plan_type", "TOMORROW"))),
		httpCase("Plan: TRIP with placeholder destination", base+"/api/plan", map[string]any{
			"plan_type": "TRIP",
			"context":   map[string]any{"destination": "Location Found"},
		}, 200, notField("location", "Location Found")),
		httpCase("Plan: unknown plan_type -> 400", base+"/api/plan", map[string]any{"plan_type": "SOMEDAY"}, 400, nil),

		// Clarify
		httpCase("Clarify: first movie question", base+"/api/clarify", map[string]any{
			"intent":  "movie",
			"answers": map[string]any{},
		}, 200, all(field("type", "clarification"), questionID("food_timing"))),
		httpCase("Clarify: food_timing none skips food_type", base+"/api/clarify", map[string]any{
			"intent":  "movie",
			"answers": map[string]any{"food_timing": "none"},
		}, 200, questionID("movie_pref")),
		httpCase("Clarify: complete -> plan", base+"/api/clarify", map[string]any{
			"intent":         "movie",
			"answers":        map[string]any{"food_timing": "none", "movie_pref": "any"},
			"original_query": "movie tonight",
			"context":        gurugram,
		}, 200, envelope),

		// Category endpoints
		httpCase("Options: cafe", base+"/api/options", map[string]any{"category": "cafe", "context": gurugram}, 200, envelope),
		httpCase("Options: missing category -> 400", base+"/api/options", map[string]any{}, 400, nil),
		httpCase("Wizard: movies", base+"/api/wizard/movies", map[string]any{"query": "movie night", "context": gurugram}, 200, envelope),
		httpCase("Wizard: itinerary from selections", base+"/api/wizard/itinerary", map[string]any{
			"selections": []map[string]any{
				{"name": "PVR Ambience", "time": "7:30 PM", "activity": "Movie"},
				{"name": "Burma Burma", "time": "10:15 PM", "activity": "Dinner"},
			},
			"context": gurugram,
		}, 200, present("timeline")),
		httpCase("Itinerary: day plan", base+"/api/itinerary", map[string]any{"query": "explore the old city", "context": gurugram}, 200, envelope),

		// Preferences
		{
			Name:  "Preferences: save then load",
			Focus: "merge by id",
			Run: func(ctx context.Context, r *Runner) Result {
				start := time.Now()
				id := fmt.Sprintf("bench_%d", time.Now().UnixNano())
				if _, _, err := r.do(ctx, http.MethodPost, base+"/api/preferences", map[string]any{"id": id, "preferences": map[string]any{"budget": "mid"}}); err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				if _, _, err := r.do(ctx, http.MethodPost, base+"/api/preferences", map[string]any{"id": id, "preferences": map[string]any{"food": "veg"}}); err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				status, body, err := r.do(ctx, http.MethodGet, base+"/api/preferences?id="+id, nil)
				if err != nil || status != 200 {
					return Result{Status: "FAIL", Note: fmt.Sprintf("status=%d err=%v", status, err)}
				}
				prefs, _ := body["preferences"].(map[string]any)
				if prefs["budget"] != "mid" || prefs["food"] != "veg" {
					return Result{Status: "FAIL", Note: fmt.Sprintf("preferences=%v", prefs)}
				}
				if r.redis != nil {
					n, err := r.redis.Exists(ctx, "prefs:"+id).Result()
					if err != nil || n != 1 {
						return Result{Status: "PENDING", Latency: time.Since(start), Note: "not persisted in redis (memory store?)"}
					}
				}
				return Result{Status: "PASS", Latency: time.Since(start)}
			},
		},
		{
			Name:  "Concurrency: parallel preference updates",
			Focus: "no lost partial updates",
			Run: func(ctx context.Context, r *Runner) Result {
				return concurrentPreferences(ctx, r, base+"/api/preferences")
			},
		},

		manualCase("Error: generator down -> fallback payload", "unset GEMINI_API_KEY/OPENAI_API_KEY and expect fallback=true"),
		manualCase("Error: redis down -> memory store", "stop redis before startup and expect a warning plus working preferences"),

		// Performance
		{
			Name:  "Perf: health throughput",
			Focus: "router and middleware overhead",
			Run: func(ctx context.Context, r *Runner) Result {
				return perfLoad(ctx, r, http.MethodGet, base+"/api/health", nil)
			},
		},
		{
			Name:  "Perf: options throughput",
			Focus: "category path with collaborators",
			Run: func(ctx context.Context, r *Runner) Result {
				return perfLoad(ctx, r, http.MethodPost, base+"/api/options", map[string]any{"category": "cafe", "context": gurugram})
			},
		},
	}
}

func (r *Runner) do(ctx context.Context, method, url string, body any) (int, map[string]any, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "buddy-bench/1.0")
	resp, err := r.httpc.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out, nil
}

func httpCase(name, url string, body any, want int, expect expectation) TestCase {
	return httpCaseMethod(name, http.MethodPost, url, body, want, expect)
}

func httpCaseMethod(name, method, url string, body any, want int, expect expectation) TestCase {
	return TestCase{
		Name:  name,
		Focus: "HTTP API",
		Run: func(ctx context.Context, r *Runner) Result {
			start := time.Now()
			status, out, err := r.do(ctx, method, url, body)
			latency := time.Since(start)
			if err != nil {
				return Result{Status: "FAIL", Note: err.Error()}
			}
			if status == http.StatusNotFound || status == http.StatusNotImplemented {
				return Result{Status: "PENDING", Latency: latency, Note: fmt.Sprintf("status=%d", status)}
			}
			if status != want {
				return Result{Status: "FAIL", Latency: latency, Note: fmt.Sprintf("status=%d want=%d", status, want)}
			}
			if expect != nil {
				if note := expect(out); note != "" {
					return Result{Status: "FAIL", Latency: latency, Note: note}
				}
			}
			return Result{Status: "PASS", Latency: latency, Note: fmt.Sprintf("status=%d", status)}
		},
	}
}

func rawCase(name, url, body string, want int) TestCase {
	return TestCase{
		Name:  name,
		Focus: "HTTP API",
		Run: func(ctx context.Context, r *Runner) Result {
			req, _ := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBufferString(body))
			req.Header.Set("Content-Type", "application/json")
			start := time.Now()
			resp, err := r.httpc.Do(req)
			if err != nil {
				return Result{Status: "FAIL", Note: err.Error()}
			}
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			if resp.StatusCode != want {
				return Result{Status: "FAIL", Latency: time.Since(start), Note: fmt.Sprintf("status=%d want=%d", resp.StatusCode, want)}
			}
			return Result{Status: "PASS", Latency: time.Since(start)}
		},
	}
}

func manualCase(name, note string) TestCase {
	return TestCase{
		Name:  name,
		Focus: "Manual",
		Run: func(ctx context.Context, r *Runner) Result {
			return Result{Status: "SKIP", Note: note}
		},
	}
}

func envelope(body map[string]any) string {
	for _, k := range []string{"greeting", "closing"} {
		if s, _ := body[k].(string); s == "" {
			return "missing " + k
		}
	}
	return ""
}

func field(key, want string) expectation {
	return func(body map[string]any) string {
		if got := fmt.Sprint(body[key]); got != want {
			return fmt.Sprintf("%s=%q want %q", key, got, want)
		}
		return ""
	}
}

func notField(key, unwanted string) expectation {
	return func(body map[string]any) string {
		if fmt.Sprint(body[key]) == unwanted {
			return fmt.Sprintf("%s must not be %q", key, unwanted)
		}
		return ""
	}
}

func present(key string) expectation {
	return func(body map[string]any) string {
		if _, ok := body[key]; !ok {
			return "missing " + key
		}
		return ""
	}
}

func questionID(want string) expectation {
	return func(body map[string]any) string {
		q, _ := body["question"].(map[string]any)
		if got := fmt.Sprint(q["id"]); got != want {
			return fmt.Sprintf("question=%q want %q", got, want)
		}
		return ""
	}
}

func all(checks ...expectation) expectation {
	return func(body map[string]any) string {
		for _, c := range checks {
			if note := c(body); note != "" {
				return note
			}
		}
		return ""
	}
}

func concurrentPreferences(ctx context.Context, r *Runner, url string) Result {
	id := fmt.Sprintf("bench_conc_%d", time.Now().UnixNano())
	var wg sync.WaitGroup
	var failed atomic.Int64

	for i := 0; i < r.cfg.Concurrency; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			body := map[string]any{"id": id, "preferences": map[string]any{fmt.Sprintf("k%d", i): "v"}}
			if status, _, err := r.do(ctx, http.MethodPost, url, body); err != nil || status != 200 {
				failed.Add(1)
			}
		}(i)
	}
	wg.Wait()

	if n := failed.Load(); n > 0 {
		return Result{Status: "FAIL", Note: fmt.Sprintf("failed writes=%d", n)}
	}
	_, body, err := r.do(ctx, http.MethodGet, url+"?id="+id, nil)
	if err != nil {
		return Result{Status: "FAIL", Note: err.Error()}
	}
	prefs, _ := body["preferences"].(map[string]any)
	if len(prefs) != r.cfg.Concurrency {
		return Result{Status: "FAIL", Note: fmt.Sprintf("keys=%d want=%d", len(prefs), r.cfg.Concurrency)}
	}
	return Result{Status: "PASS", Note: fmt.Sprintf("keys=%d", len(prefs))}
}

func perfLoad(ctx context.Context, r *Runner, method, url string, payload any) Result {
	end := time.Now().Add(r.cfg.Duration)
	var count, errCount atomic.Int64
	var wg sync.WaitGroup

	for i := 0; i < r.cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(end) && ctx.Err() == nil {
				status, _, err := r.do(ctx, method, url, payload)
				if err != nil || status >= 500 {
					errCount.Add(1)
					continue
				}
				count.Add(1)
			}
		}()
	}
	wg.Wait()

	rps := float64(count.Load()) / r.cfg.Duration.Seconds()
	note := fmt.Sprintf("rps=%.1f errors=%d", rps, errCount.Load())
	if errCount.Load() > 0 {
		return Result{Status: "FAIL", Note: note}
	}
	return Result{Status: "PASS", Note: note}
}
