// README: Primary/secondary generator policy; one attempt each, no probing.
package ai

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Fallback tries Primary once and, on error, Secondary once. Either may be nil.
type Fallback struct {
	Primary   Generator
	Secondary Generator
	Log       *zap.Logger
	// Observe, if set, is told about every attempt.
	Observe func(name string, err error)
}

func (f *Fallback) Name() string {
	switch {
	case f.Primary != nil && f.Secondary != nil:
		return f.Primary.Name() + "+" + f.Secondary.Name()
	case f.Primary != nil:
		return f.Primary.Name()
	case f.Secondary != nil:
		return f.Secondary.Name()
	default:
		return "disabled"
	}
}

// Enabled reports whether at least one backend is configured.
func (f *Fallback) Enabled() bool {
	return f != nil && (f.Primary != nil || f.Secondary != nil)
}

func (f *Fallback) Generate(ctx context.Context, req Request) (string, error) {
	if !f.Enabled() {
		return "", ErrDisabled
	}

	var errs []error
	for _, g := range []Generator{f.Primary, f.Secondary} {
		if g == nil {
			continue
		}
		out, err := g.Generate(ctx, req)
		if f.Observe != nil {
			f.Observe(g.Name(), err)
		}
		if err == nil {
			return out, nil
		}
		f.logger().Warn("generator failed", zap.String("generator", g.Name()), zap.Error(err))
		errs = append(errs, err)
		if ctx.Err() != nil {
			break
		}
	}
	return "", fmt.Errorf("all generators failed: %w", errors.Join(errs...))
}

func (f *Fallback) logger() *zap.Logger {
	if f.Log == nil {
		return zap.NewNop()
	}
	return f.Log
}
