package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"salonify/models"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
)

var estimateSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"name":              {Type: genai.TypeString, Description: "Short service name"},
		"price":             {Type: genai.TypeNumber, Description: "Price in INR"},
		"estimatedDuration": {Type: genai.TypeString, Description: "Duration such as \"90 mins\""},
		"description":       {Type: genai.TypeString, Description: "One or two sentences"},
	},
	Required: []string{"name", "price", "estimatedDuration", "description"},
}

func stylePrompt(req models.StyleRequest) string {
	var sb strings.Builder
	sb.WriteString("You are a senior stylist at an Indian unisex salon. ")
	sb.WriteString("Suggest two or three hairstyles or treatments for this client, with a one-line reason for each. ")
	sb.WriteString("Keep it under 120 words.\n\n")
	fmt.Fprintf(&sb, "Client description: %s\n", req.Description)
	if req.Gender != "" {
		fmt.Fprintf(&sb, "Gender: %s\n", req.Gender)
	}
	if req.HairType != "" {
		fmt.Fprintf(&sb, "Hair type: %s\n", req.HairType)
	}
	if req.FaceShape != "" {
		fmt.Fprintf(&sb, "Face shape: %s\n", req.FaceShape)
	}
	if req.Occasion != "" {
		fmt.Fprintf(&sb, "Occasion: %s\n", req.Occasion)
	}
	return sb.String()
}

func estimatePrompt(description string) string {
	return "You price services for a premium Indian salon. A client asked for a service that is not on the menu:\n\n" +
		description +
		"\n\nReturn a name, a price in INR, an estimated duration and a short description."
}

// SuggestStyle returns the model's answer verbatim.
func (s *DefaultAIService) SuggestStyle(ctx context.Context, req models.StyleRequest) models.StyleSuggestion {
	fallback := models.StyleSuggestion{Suggestion: FallbackSuggestion, Fallback: true}
	if s.gen == nil || strings.TrimSpace(req.Description) == "" {
		return fallback
	}

	text, err := s.gen.GenerateText(ctx, stylePrompt(req))
	if err != nil {
		s.logger.Warn("style advisor failed, using fallback", zap.Error(err))
		return fallback
	}
	if strings.TrimSpace(text) == "" {
		return fallback
	}
	return models.StyleSuggestion{Suggestion: text}
}

// EstimateCustomService returns nil when no usable estimate is available.
// The price is taken as given.
func (s *DefaultAIService) EstimateCustomService(ctx context.Context, description string) *models.ServiceEstimate {
	description = strings.TrimSpace(description)
	if s.gen == nil || description == "" {
		return nil
	}

	if s.cache != nil {
		if est, err := s.cache.Get(ctx, description); err != nil {
			s.logger.Debug("estimate cache read failed", zap.Error(err))
		} else if est != nil {
			return est
		}
	}

	raw, err := s.gen.GenerateJSON(ctx, estimatePrompt(description), estimateSchema)
	if err != nil {
		s.logger.Warn("custom estimate failed", zap.Error(err))
		return nil
	}
	est := parseEstimate(raw)
	if est == nil {
		s.logger.Warn("custom estimate unparseable", zap.Int("length", len(raw)))
		return nil
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, description, est); err != nil {
			s.logger.Debug("estimate cache write failed", zap.Error(err))
		}
	}
	return est
}

func parseEstimate(raw string) *models.ServiceEstimate {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	var est models.ServiceEstimate
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &est); err != nil {
		return nil
	}
	if strings.TrimSpace(est.Name) == "" {
		return nil
	}
	return &est
}
