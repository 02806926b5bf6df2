package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"travelbuddy/internal/infra"
	"travelbuddy/internal/modules/chain"
	"travelbuddy/internal/search"
)

type gathered struct {
	weather string
	keys    []string
	results [][]search.Result
}

// searchPayload keys each chain step's results by its slot key for the prompt.
func (g gathered) searchPayload() map[string][]search.Result {
	out := make(map[string][]search.Result)
	for i, k := range g.keys {
		if len(g.results[i]) > 0 {
			out[k] = g.results[i]
		}
	}
	return out
}

// gather runs the per-step searches and the weather lookup concurrently. Failures are
// logged and leave that slot empty; the pipeline always proceeds.
func (a *Assistant) gather(ctx context.Context, city string, items []chain.Item, modifiers []string) gathered {
	var g gathered

	n := len(items)
	if n > a.d.MaxSearches {
		n = a.d.MaxSearches
	}
	if a.d.Search == nil {
		n = 0
	}
	g.keys = make([]string, n)
	g.results = make([][]search.Result, n)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(a.d.MaxSearches + 1)

	for i := 0; i < n; i++ {
		item := items[i]
		g.keys[i] = slotKey(item, g.keys[:i])
		eg.Go(func() error {
			q := item.SearchQuery(city)
			if item.Priority == chain.Primary && len(modifiers) > 0 {
				q = strings.Join(modifiers, " ") + " " + q
			}
			sctx, cancel := context.WithTimeout(egCtx, a.d.Timeouts.Search)
			defer cancel()

			res, err := a.d.Search.Search(sctx, q)
			infra.ObserveCall("search", err)
			if err != nil {
				a.log.Warn("search failed", zap.String("query", q), zap.Error(err))
				return nil
			}
			g.results[i] = res
			return nil
		})
	}

	if a.d.Weather != nil {
		eg.Go(func() error {
			wctx, cancel := context.WithTimeout(egCtx, a.d.Timeouts.Weather)
			defer cancel()

			rep, err := a.d.Weather.Current(wctx, city)
			infra.ObserveCall("weather", err)
			if err != nil {
				a.log.Warn("weather lookup failed", zap.String("city", city), zap.Error(err))
				return nil
			}
			g.weather = rep.Summary()
			return nil
		})
	}

	_ = eg.Wait()
	return g
}

// slotKey is the step type, qualified by subtype or priority when an earlier step
// already holds that key, so food plus anticipated lunch yields "food" and "food_lunch".
func slotKey(item chain.Item, taken []string) string {
	key := item.Type
	if !slices.Contains(taken, key) {
		return key
	}
	suffix := item.Subtype
	if suffix == "" {
		suffix = string(item.Priority)
	}
	key += "_" + suffix
	for n := 2; slices.Contains(taken, key); n++ {
		key = fmt.Sprintf("%s_%s_%d", item.Type, suffix, n)
	}
	return key
}
