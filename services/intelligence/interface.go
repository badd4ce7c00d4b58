// File: services/intelligence/interface.go
package ai

import (
	"context"

	"salonify/models"

	"go.uber.org/zap"
)

// FallbackSuggestion is shown whenever the advisor cannot get an answer.
const FallbackSuggestion = "Our stylists would love to help you find the perfect look. " +
	"Book a free consultation and we'll recommend a style that suits your face shape, hair type and lifestyle."

// AIService never returns errors: failures become the fallback text or a nil
// estimate.
type AIService interface {
	SuggestStyle(ctx context.Context, req models.StyleRequest) models.StyleSuggestion
	EstimateCustomService(ctx context.Context, description string) *models.ServiceEstimate
}

type DefaultAIService struct {
	gen    TextGenerator
	cache  EstimateCache
	logger *zap.Logger
}

// NewDefaultAIService accepts a nil generator (no API key) and a nil cache.
func NewDefaultAIService(gen TextGenerator, cache EstimateCache, logger *zap.Logger) *DefaultAIService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultAIService{gen: gen, cache: cache, logger: logger}
}
