package container

import (
	"context"

	"github.com/quizforge/quizforge/internal/aiquiz"
	"github.com/quizforge/quizforge/internal/config"
	"github.com/quizforge/quizforge/internal/quizsession"
)

type Container struct {
	Config           *config.Config
	AIQuizContainer  *aiquiz.AIQuizContainer
	SessionContainer *quizsession.SessionContainer
}

func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	aiQuizContainer, err := aiquiz.NewAIQuizContainer(ctx, cfg.GeminiModel)
	if err != nil {
		return nil, err
	}
	sessionContainer := quizsession.NewSessionContainer(aiQuizContainer.Service)

	return &Container{
		Config:           cfg,
		AIQuizContainer:  aiQuizContainer,
		SessionContainer: sessionContainer,
	}, nil
}
