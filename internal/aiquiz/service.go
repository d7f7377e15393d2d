package aiquiz

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/quizforge/quizforge/internal/config"
)

// cacheSize bounds the generation memo. Identical (text, difficulty, count)
// requests within a process never hit the model twice.
const cacheSize = 256

type Service interface {
	FetchQuestions(ctx context.Context, req QuizRequest) ([]Question, error)
	InvalidateCache()
}

type cacheKey struct {
	text       string
	difficulty Difficulty
	count      int
}

type service struct {
	provider Provider
	cache    *lru.Cache[cacheKey, []Question]
}

func NewService(provider Provider) Service {
	cache, _ := lru.New[cacheKey, []Question](cacheSize)
	return &service{
		provider: provider,
		cache:    cache,
	}
}

// FetchQuestions builds the prompt, calls the model once and parses the
// response. Provider failures are returned to the caller; a response that
// parses to nothing yields an empty slice and no error.
func (s *service) FetchQuestions(ctx context.Context, req QuizRequest) ([]Question, error) {
	log := config.WithContext(ctx)

	req.Count = ClampCount(req.Count)
	key := cacheKey{text: req.Text, difficulty: req.Difficulty, count: req.Count}

	if questions, ok := s.cache.Get(key); ok {
		log.Debugf("Serving %d cached questions", len(questions))
		return questions, nil
	}

	prompt := BuildPrompt(req)
	raw, err := s.provider.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	questions := ParseQuestions(raw)
	log.Infof("Generated %d questions at difficulty %s", len(questions), req.Difficulty)

	// An unparseable response is not worth remembering: caching it would pin
	// the failure to these inputs until the next reset.
	if len(questions) > 0 {
		s.cache.Add(key, questions)
	}
	return questions, nil
}

func (s *service) InvalidateCache() {
	s.cache.Purge()
}
