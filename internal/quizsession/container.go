package quizsession

import "github.com/quizforge/quizforge/internal/aiquiz"

type SessionContainer struct {
	Store   Store
	Service SessionService
	Handler *Handler
}

func NewSessionContainer(quizzes aiquiz.Service) *SessionContainer {
	store := NewInMemoryStore()
	service := NewService(store, quizzes)
	handler := NewHandler(service)

	return &SessionContainer{
		Store:   store,
		Service: service,
		Handler: handler,
	}
}
