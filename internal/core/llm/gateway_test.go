package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubProvider struct {
	configured bool
	reply      Reply
	err        error

	gotPrompt      string
	gotModel       string
	gotTemperature float32
}

func (s *stubProvider) Name() string     { return "Stub" }
func (s *stubProvider) Configured() bool { return s.configured }

func (s *stubProvider) Generate(_ context.Context, prompt, model string, temperature float32) (Reply, error) {
	s.gotPrompt = prompt
	s.gotModel = model
	s.gotTemperature = temperature
	return s.reply, s.err
}

func TestAskUnconfiguredProviderReturnsSentinel(t *testing.T) {
	g := NewGateway(&stubProvider{configured: false})

	result := g.Ask(context.Background(), "prompt", "en", "gemini-flash-latest", 0.7)

	assert.Equal(t, "Stub not configured.", result.Reply)
	assert.Zero(t, result.Usage.TotalTokens)
}

func TestAskProviderErrorReturnsSentinel(t *testing.T) {
	g := NewGateway(&stubProvider{configured: true, err: errors.New("upstream down")})

	result := g.Ask(context.Background(), "prompt", "en", "gemini-flash-latest", 0.7)

	assert.Equal(t, "Error: upstream down", result.Reply)
	assert.Zero(t, result.Usage.TotalTokens)
}

func TestAskPassesModelAndClampsTemperature(t *testing.T) {
	p := &stubProvider{configured: true, reply: Reply{Text: "selam", TotalTokens: 7}}
	g := NewGateway(p)

	result := g.Ask(context.Background(), "composed prompt", "am", "gemini-flash-latest", 9.5)

	assert.Equal(t, "selam", result.Reply)
	assert.Equal(t, 7, result.Usage.TotalTokens)
	assert.Equal(t, "composed prompt", p.gotPrompt)
	assert.Equal(t, "gemini-flash-latest", p.gotModel)
	assert.Equal(t, float32(2), p.gotTemperature, "temperature must be clamped to the accepted range")

	g.Ask(context.Background(), "p", "am", "m", -3)
	assert.Equal(t, float32(0), p.gotTemperature)
}

func TestAskNilProviderNeverPanics(t *testing.T) {
	g := NewGateway(nil)

	result := g.Ask(context.Background(), "prompt", "en", "m", 1)

	assert.Equal(t, "Model backend not configured.", result.Reply)
	assert.Zero(t, result.Usage.TotalTokens)
}
