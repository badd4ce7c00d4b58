package ai

import (
	"context"
	"errors"
	"sync"
	"testing"

	"salonify/models"

	genai "github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	text    string
	json    string
	err     error
	calls   int
	schema  *genai.Schema
	prompts []string
}

func (f *fakeGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

func (f *fakeGenerator) GenerateJSON(_ context.Context, prompt string, schema *genai.Schema) (string, error) {
	f.calls++
	f.schema = schema
	f.prompts = append(f.prompts, prompt)
	return f.json, f.err
}

type mapCache struct {
	mu sync.Mutex
	m  map[string]*models.ServiceEstimate
}

func (c *mapCache) Get(_ context.Context, d string) (*models.ServiceEstimate, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.m[estimateKey(d)], nil
}

func (c *mapCache) Set(_ context.Context, d string, e *models.ServiceEstimate) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[estimateKey(d)] = e
	return nil
}

func TestSuggestStyleReturnsTextVerbatim(t *testing.T) {
	gen := &fakeGenerator{text: "Try a textured crop."}
	svc := NewDefaultAIService(gen, nil, nil)

	got := svc.SuggestStyle(context.Background(), models.StyleRequest{
		Description: "thick wavy hair, low maintenance", FaceShape: "oval",
	})
	assert.Equal(t, "Try a textured crop.", got.Suggestion)
	assert.False(t, got.Fallback)
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "thick wavy hair")
	assert.Contains(t, gen.prompts[0], "Face shape: oval")
}

func TestSuggestStyleFallback(t *testing.T) {
	for name, gen := range map[string]TextGenerator{
		"error": &fakeGenerator{err: errors.New("network down")},
		"empty": &fakeGenerator{text: "   "},
		"nil":   nil,
	} {
		t.Run(name, func(t *testing.T) {
			got := NewDefaultAIService(gen, nil, nil).SuggestStyle(context.Background(),
				models.StyleRequest{Description: "something"})
			assert.True(t, got.Fallback)
			assert.Equal(t, FallbackSuggestion, got.Suggestion)
		})
	}
}

func TestEstimateParsesStructuredAnswer(t *testing.T) {
	gen := &fakeGenerator{json: `{"name":"Copper Ombre","price":3200,"estimatedDuration":"150 mins","description":"Two-tone colour"}`}
	svc := NewDefaultAIService(gen, nil, nil)

	est := svc.EstimateCustomService(context.Background(), "copper ombre please")
	require.NotNil(t, est)
	assert.Equal(t, models.ServiceEstimate{
		Name: "Copper Ombre", Price: 3200, EstimatedDuration: "150 mins", Description: "Two-tone colour",
	}, *est)
	require.NotNil(t, gen.schema)
	assert.ElementsMatch(t, []string{"name", "price", "estimatedDuration", "description"}, gen.schema.Required)
}

func TestEstimateNilOnFailure(t *testing.T) {
	cases := map[string]*fakeGenerator{
		"network error": {err: errors.New("dial tcp: i/o timeout")},
		"malformed":     {json: `{"name": "Half`},
		"missing name":  {json: `{"price": 100}`},
	}
	for name, gen := range cases {
		t.Run(name, func(t *testing.T) {
			svc := NewDefaultAIService(gen, nil, nil)
			assert.NotPanics(t, func() {
				assert.Nil(t, svc.EstimateCustomService(context.Background(), "glitter fade"))
			})
		})
	}
}

func TestEstimateUsesCache(t *testing.T) {
	gen := &fakeGenerator{json: "```json\n{\"name\":\"Glitter Fade\",\"price\":900,\"estimatedDuration\":\"60 mins\",\"description\":\"x\"}\n```"}
	cache := &mapCache{m: map[string]*models.ServiceEstimate{}}
	svc := NewDefaultAIService(gen, cache, nil)

	first := svc.EstimateCustomService(context.Background(), "Glitter  Fade")
	require.NotNil(t, first)
	second := svc.EstimateCustomService(context.Background(), "glitter fade")
	require.NotNil(t, second)

	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, first, second)
}
