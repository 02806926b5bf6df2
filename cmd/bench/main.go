// README: Smoke/benchmark runner against a running Travel Buddy API; prints one line per case and a summary.
package main

import (
	"cmp"
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"
)

func main() {
	cfg := loadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	results := NewRunner(cfg).RunAll(ctx)
	counts := summarize(results)

	if counts["FAIL"] > 0 || (cfg.Strict && counts["PENDING"] > 0) {
		os.Exit(1)
	}
}

// summarize prints status counts and the slowest timed cases.
func summarize(results []Result) map[string]int {
	counts := map[string]int{}
	var timed []Result
	for _, r := range results {
		counts[r.Status]++
		if r.Latency > 0 {
			timed = append(timed, r)
		}
	}

	fmt.Println("\n== Summary ==")
	fmt.Printf("PASS=%d FAIL=%d PENDING=%d SKIP=%d\n", counts["PASS"], counts["FAIL"], counts["PENDING"], counts["SKIP"])

	slices.SortFunc(timed, func(a, b Result) int { return cmp.Compare(b.Latency, a.Latency) })
	if len(timed) > 3 {
		timed = timed[:3]
	}
	for _, r := range timed {
		fmt.Printf("slow: %-45s %s\n", r.Name, r.Latency.Round(time.Millisecond))
	}
	return counts
}

type Config struct {
	BaseURL     string
	RedisAddr   string
	Only        string
	Strict      bool
	Timeout     time.Duration
	Concurrency int
	Duration    time.Duration
}

func loadConfig() Config {
	var cfg Config
	flag.StringVar(&cfg.BaseURL, "base-url", env("BUDDY_BENCH_BASE_URL", "http://localhost:5000"), "API base URL")
	flag.StringVar(&cfg.RedisAddr, "redis", os.Getenv("REDIS_ADDR"), "Redis address (empty skips the Redis checks)")
	flag.StringVar(&cfg.Only, "only", "", "run only cases whose name starts with this prefix, e.g. \"Assist\"")
	flag.BoolVar(&cfg.Strict, "strict", envParse("BUDDY_BENCH_STRICT", false, strconv.ParseBool), "Fail on pending cases")
	flag.DurationVar(&cfg.Timeout, "timeout", envParse("BUDDY_BENCH_TIMEOUT", 5*time.Minute, time.ParseDuration), "Total timeout")
	flag.IntVar(&cfg.Concurrency, "concurrency", envParse("BUDDY_BENCH_CONCURRENCY", 10, strconv.Atoi), "Concurrency for perf cases")
	flag.DurationVar(&cfg.Duration, "duration", envParse("BUDDY_BENCH_DURATION", 10*time.Second, time.ParseDuration), "Duration for perf cases")
	flag.Parse()
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return cfg
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envParse reads key with parse, keeping def when unset or malformed.
func envParse[T any](key string, def T, parse func(string) (T, error)) T {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	out, err := parse(v)
	if err != nil {
		return def
	}
	return out
}
