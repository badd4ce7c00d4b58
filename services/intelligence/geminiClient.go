// File: services/intelligence/geminiClient.go
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var ErrEmptyResponse = errors.New("gemini returned no content")

// TextGenerator is the generative-text collaborator.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	// GenerateJSON asks for a JSON document matching schema and returns it raw.
	GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
}

type GeminiClient struct {
	client    *genai.Client
	modelName string
}

func NewGeminiClient(ctx context.Context, apiKey, modelName string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	if modelName == "" {
		modelName = "models/gemini-1.5-flash"
	}
	return &GeminiClient{client: client, modelName: modelName}, nil
}

func (g *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	model := g.client.GenerativeModel(g.modelName)
	return generate(ctx, model, prompt)
}

func (g *GeminiClient) GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	model := g.client.GenerativeModel(g.modelName)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = schema
	return generate(ctx, model, prompt)
}

func (g *GeminiClient) Close() error {
	return g.client.Close()
}

func generate(ctx context.Context, model *genai.GenerativeModel, prompt string) (string, error) {
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", ErrEmptyResponse
	}
	return sb.String(), nil
}
