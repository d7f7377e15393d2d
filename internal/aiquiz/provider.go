package aiquiz

import (
	"context"
	"errors"
	"fmt"

	"github.com/quizforge/quizforge/internal/config"
	"google.golang.org/genai"
)

type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type geminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider builds a Provider on the Gemini API. The client reads
// GEMINI_API_KEY from the environment; a missing key surfaces as a failed
// generation call.
func NewGeminiProvider(ctx context.Context, model string) (Provider, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiProvider{client: client, model: model}, nil
}

func (p *geminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	log := config.WithContext(ctx)

	result, err := p.client.Models.GenerateContent(
		ctx,
		p.model,
		genai.Text(prompt),
		nil,
	)
	if err != nil {
		log.WithError(err).Error("Gemini generation call failed")
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	raw := result.Text()
	log.Debugf("Raw Gemini response:\n%s", raw)

	if raw == "" {
		return "", errors.New("empty response from model")
	}
	return raw, nil
}
