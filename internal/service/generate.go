package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"travelbuddy/internal/ai"
	"travelbuddy/internal/infra"
	"travelbuddy/internal/modules/prompt"
)

// generateJSON asks the model for a JSON object. With strictRetry an unparseable
// reply earns one more attempt with the strict prompt. ok is false when nothing
// usable came back.
func (a *Assistant) generateJSON(ctx context.Context, tmpl prompt.Template, userPrompt string, strictRetry bool) (map[string]any, bool) {
	if a.d.Generator == nil {
		infra.PipelineDegradations.WithLabelValues("ai_disabled").Inc()
		return nil, false
	}

	raw, err := a.generate(ctx, tmpl.System, userPrompt)
	if err != nil {
		a.log.Warn("generation failed", zap.String("template", tmpl.Name), zap.Error(err))
		return nil, false
	}
	obj, err := ai.ParseObject(raw)
	if err == nil {
		return obj, true
	}
	if !strictRetry {
		return nil, false
	}

	a.log.Warn("model output is not JSON; retrying with strict prompt",
		zap.String("template", tmpl.Name), zap.Int("raw_len", len(raw)))
	infra.PipelineDegradations.WithLabelValues("strict_retry").Inc()

	raw, err = a.generate(ctx, tmpl.System, prompt.Strict(userPrompt))
	if err != nil {
		a.log.Warn("strict generation failed", zap.Error(err))
		return nil, false
	}
	obj, err = ai.ParseObject(raw)
	if err != nil {
		if errors.Is(err, ai.ErrParse) {
			a.log.Warn("strict reply still not JSON", zap.Int("raw_len", len(raw)))
		}
		return nil, false
	}
	return obj, true
}

func (a *Assistant) generate(ctx context.Context, system, userPrompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.d.Timeouts.Generation)
	defer cancel()

	return a.d.Generator.Generate(ctx, ai.Request{
		System:      system,
		Prompt:      userPrompt,
		Temperature: a.d.Temperature,
	})
}
