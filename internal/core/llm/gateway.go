package llm

import (
	"context"
	"time"

	"github.com/lucyai/lucy-support-be/internal/shared/utils"
)

// askTimeout bounds the upstream call; the original had none.
const askTimeout = 30 * time.Second

// Result is the gateway's answer in wire shape. An unreachable or failing
// backend produces a sentinel Reply with zero usage, never an error.
type Result struct {
	Reply string `json:"reply"`
	Usage Usage  `json:"usage"`
}

type Usage struct {
	TotalTokens int `json:"total_tokens"`
}

// Gateway translates a composed prompt into a model response. Errors never
// propagate past this boundary: callers always get a Result.
type Gateway struct {
	provider Provider
}

func NewGateway(provider Provider) *Gateway {
	return &Gateway{provider: provider}
}

// Ask sends the prompt using the configured model and temperature.
// Temperature is clamped to the backend's accepted range [0, 2]. The
// language hint is recorded for traceability only; the model infers the
// reply language from the prompt itself.
func (g *Gateway) Ask(ctx context.Context, prompt, language, model string, temperature float64) Result {
	if g.provider == nil || !g.provider.Configured() {
		name := "Model backend"
		if g.provider != nil {
			name = g.provider.Name()
		}
		return Result{Reply: name + " not configured.", Usage: Usage{TotalTokens: 0}}
	}

	if temperature < 0 {
		temperature = 0
	}
	if temperature > 2 {
		temperature = 2
	}

	ctx, cancel := context.WithTimeout(ctx, askTimeout)
	defer cancel()

	reply, err := g.provider.Generate(ctx, prompt, model, float32(temperature))
	if err != nil {
		utils.LogError("model call failed", err, map[string]interface{}{
			"provider": g.provider.Name(),
			"model":    model,
			"language": language,
		})
		return Result{Reply: "Error: " + err.Error(), Usage: Usage{TotalTokens: 0}}
	}

	return Result{Reply: reply.Text, Usage: Usage{TotalTokens: reply.TotalTokens}}
}
