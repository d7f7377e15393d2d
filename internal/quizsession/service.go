package quizsession

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/quizforge/quizforge/internal/aiquiz"
	"github.com/quizforge/quizforge/internal/config"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrEmptyGeneration  = errors.New("model returned no questions")
	ErrQuizNotPresented = errors.New("no quiz is currently presented")
	ErrQuizNotScored    = errors.New("quiz has not been submitted")
	ErrInvalidSelection = errors.New("invalid question index or option key")
)

type SessionService interface {
	GetOrCreate(ctx context.Context, id uuid.UUID) Session
	Generate(ctx context.Context, id uuid.UUID, req aiquiz.QuizRequest) (Session, error)
	Select(ctx context.Context, id uuid.UUID, index int, key string) (Session, error)
	Submit(ctx context.Context, id uuid.UUID) (*ScoreReport, error)
	Results(ctx context.Context, id uuid.UUID) (*ScoreReport, error)
	Reset(ctx context.Context, id uuid.UUID) (Session, error)
}

type sessionService struct {
	store   Store
	quizzes aiquiz.Service
}

func NewService(store Store, quizzes aiquiz.Service) SessionService {
	return &sessionService{
		store:   store,
		quizzes: quizzes,
	}
}

// GetOrCreate returns the stored session for id, or a fresh idle session
// when id is unknown (first visit, or a stale cookie after restart).
func (s *sessionService) GetOrCreate(ctx context.Context, id uuid.UUID) Session {
	if id != uuid.Nil {
		if session, ok := s.store.Get(id); ok {
			return session
		}
	}

	session := NewSession()
	s.store.Put(session)
	config.WithContext(ctx).Infof("Created session %s", session.ID)
	return session
}

// Generate fetches a new question set and presents it. Generation is allowed
// from any state and replaces the previous quiz. An empty parsed question
// list is surfaced as ErrEmptyGeneration and leaves the session untouched
// rather than presenting a quiz with nothing to answer.
func (s *sessionService) Generate(ctx context.Context, id uuid.UUID, req aiquiz.QuizRequest) (Session, error) {
	log := config.WithContext(ctx)

	if _, ok := s.store.Get(id); !ok {
		return Session{}, ErrSessionNotFound
	}

	// The model call blocks; keep it outside the store lock.
	questions, err := s.quizzes.FetchQuestions(ctx, req)
	if err != nil {
		return Session{}, err
	}
	if len(questions) == 0 {
		log.Warn("Generation produced no questions")
		return Session{}, ErrEmptyGeneration
	}

	session, ok := s.store.Update(id, func(sess *Session) {
		sess.State = StatePresented
		sess.Request = req
		sess.Questions = questions
		sess.Selections = map[int]string{}
	})
	if !ok {
		return Session{}, ErrSessionNotFound
	}

	log.Infof("Presented quiz with %d questions for session %s", len(questions), session.ID)
	return session, nil
}

// Select records an answer for one question. The index must address a
// presented question and the key must be one of its options. Validation and
// the map write both happen inside the store's locked update, so concurrent
// selections for one session serialize instead of racing.
func (s *sessionService) Select(ctx context.Context, id uuid.UUID, index int, key string) (Session, error) {
	var updateErr error
	session, ok := s.store.Update(id, func(sess *Session) {
		if sess.State != StatePresented {
			updateErr = ErrQuizNotPresented
			return
		}
		if index < 0 || index >= len(sess.Questions) {
			updateErr = ErrInvalidSelection
			return
		}
		if _, exists := sess.Questions[index].Options[key]; !exists {
			updateErr = ErrInvalidSelection
			return
		}
		sess.Selections[index] = key
	})
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	if updateErr != nil {
		return Session{}, updateErr
	}
	return session, nil
}

func (s *sessionService) Submit(ctx context.Context, id uuid.UUID) (*ScoreReport, error) {
	log := config.WithContext(ctx)

	var (
		report    *ScoreReport
		updateErr error
	)
	session, ok := s.store.Update(id, func(sess *Session) {
		if sess.State != StatePresented {
			updateErr = ErrQuizNotPresented
			return
		}
		report, updateErr = GradeQuiz(sess.Questions, sess.Selections)
		if updateErr != nil {
			return
		}
		sess.State = StateScored
	})
	if !ok {
		return nil, ErrSessionNotFound
	}
	if updateErr != nil {
		return nil, updateErr
	}

	log.Infof("Session %s scored %s", session.ID, report.Score)
	return report, nil
}

// Results replays the score report for an already-submitted quiz. Grading is
// pure, so the recomputed report is identical to the one from Submit.
func (s *sessionService) Results(ctx context.Context, id uuid.UUID) (*ScoreReport, error) {
	session, ok := s.store.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	if session.State != StateScored {
		return nil, ErrQuizNotScored
	}
	return GradeQuiz(session.Questions, session.Selections)
}

// Reset returns the session to idle, clearing the quiz and all selections,
// and invalidates the generation cache so the next quiz starts clean.
func (s *sessionService) Reset(ctx context.Context, id uuid.UUID) (Session, error) {
	session, ok := s.store.Update(id, func(sess *Session) {
		sess.State = StateIdle
		sess.Request = aiquiz.QuizRequest{}
		sess.Questions = nil
		sess.Selections = map[int]string{}
	})
	if !ok {
		return Session{}, ErrSessionNotFound
	}

	s.quizzes.InvalidateCache()
	config.WithContext(ctx).Infof("Session %s reset", session.ID)
	return session, nil
}
