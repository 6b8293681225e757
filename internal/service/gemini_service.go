package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/quizdesk/config"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-1.5-flash"

// GeminiService sends a single prompt to Gemini and returns the text reply.
type GeminiService interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	Close() error
}

type geminiService struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiService returns nil when GEMINI_API_KEY is not set; features that
// depend on it report ErrUnavailable.
func NewGeminiService(cfg *config.Config) (GeminiService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Question drafts will be unavailable.")
		return nil, nil
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		log.Error().Err(err).Msg("Failed to create Gemini client")
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel(geminiModel)
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(0.7)
	return &geminiService{client: client, model: model}, nil
}

func (s *geminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Msg("Gemini API error")
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Msg("Gemini returned no candidates or parts in response.")
		return "", fmt.Errorf("gemini returned no content")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("gemini returned no text content")
	}
	return b.String(), nil
}

func (s *geminiService) Close() error {
	return s.client.Close()
}
