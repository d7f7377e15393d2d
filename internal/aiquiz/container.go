package aiquiz

import "context"

type AIQuizContainer struct {
	Service Service
	Handler *Handler
}

func NewAIQuizContainer(ctx context.Context, model string) (*AIQuizContainer, error) {
	provider, err := NewGeminiProvider(ctx, model)
	if err != nil {
		return nil, err
	}
	service := NewService(provider)
	handler := NewHandler(service)

	return &AIQuizContainer{
		Service: service,
		Handler: handler,
	}, nil
}
