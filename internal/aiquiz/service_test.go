package aiquiz_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/quizforge/quizforge/internal/aiquiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	response string
	err      error
	calls    int
	prompts  []string
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func TestFetchQuestions(t *testing.T) {
	req := aiquiz.QuizRequest{
		Text:       "Some study material.",
		Difficulty: aiquiz.DifficultyMedium,
		Count:      2,
	}

	t.Run("ReturnsParsedQuestions", func(t *testing.T) {
		provider := &fakeProvider{response: wellFormedResponse}
		service := aiquiz.NewService(provider)

		questions, err := service.FetchQuestions(context.Background(), req)
		require.NoError(t, err)
		require.Len(t, questions, 2)
		assert.Equal(t, 1, provider.calls)
	})

	t.Run("MemoizesIdenticalRequests", func(t *testing.T) {
		provider := &fakeProvider{response: wellFormedResponse}
		service := aiquiz.NewService(provider)

		_, err := service.FetchQuestions(context.Background(), req)
		require.NoError(t, err)
		_, err = service.FetchQuestions(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, 1, provider.calls, "identical requests must not re-invoke the model")

		other := req
		other.Count = 3
		_, err = service.FetchQuestions(context.Background(), other)
		require.NoError(t, err)
		assert.Equal(t, 2, provider.calls, "a changed count is a new cache key")
	})

	t.Run("InvalidateCacheForcesRegeneration", func(t *testing.T) {
		provider := &fakeProvider{response: wellFormedResponse}
		service := aiquiz.NewService(provider)

		_, err := service.FetchQuestions(context.Background(), req)
		require.NoError(t, err)

		service.InvalidateCache()

		_, err = service.FetchQuestions(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 2, provider.calls)
	})

	t.Run("ProviderErrorPropagates", func(t *testing.T) {
		provider := &fakeProvider{err: errors.New("quota exceeded")}
		service := aiquiz.NewService(provider)

		_, err := service.FetchQuestions(context.Background(), req)
		require.Error(t, err)
	})

	t.Run("UnparseableResponseIsEmptyNotError", func(t *testing.T) {
		provider := &fakeProvider{response: "definitely not json"}
		service := aiquiz.NewService(provider)

		questions, err := service.FetchQuestions(context.Background(), req)
		require.NoError(t, err)
		assert.Empty(t, questions)
	})

	t.Run("UnparseableResponseIsNotCached", func(t *testing.T) {
		provider := &fakeProvider{response: "definitely not json"}
		service := aiquiz.NewService(provider)

		_, err := service.FetchQuestions(context.Background(), req)
		require.NoError(t, err)
		_, err = service.FetchQuestions(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, 2, provider.calls,
			"a failed generation must stay retryable for the same inputs")
	})

	t.Run("CountIsClampedBeforePrompting", func(t *testing.T) {
		provider := &fakeProvider{response: wellFormedResponse}
		service := aiquiz.NewService(provider)

		over := req
		over.Count = 500
		_, err := service.FetchQuestions(context.Background(), over)
		require.NoError(t, err)

		require.Len(t, provider.prompts, 1)
		assert.True(t, strings.Contains(provider.prompts[0], "20 multiple-choice questions"),
			"prompt should use the clamped count")
	})
}
