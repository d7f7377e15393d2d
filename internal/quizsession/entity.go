package quizsession

import (
	"time"

	"github.com/google/uuid"
	"github.com/quizforge/quizforge/internal/aiquiz"
)

// Session holds one user's quiz state. Selections map a question index to
// the chosen option key and are only ever written through Select, which
// keeps the indices valid for the presented question list.
type Session struct {
	ID         uuid.UUID          `json:"id"`
	State      State              `json:"state"`
	Request    aiquiz.QuizRequest `json:"request"`
	Questions  []aiquiz.Question  `json:"-"`
	Selections map[int]string     `json:"selections"`
	CreatedAt  time.Time          `json:"created_at"`
}

func NewSession() Session {
	return Session{
		ID:         uuid.New(),
		State:      StateIdle,
		Selections: map[int]string{},
		CreatedAt:  time.Now(),
	}
}
