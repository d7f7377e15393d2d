package quizsession

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/quizforge/quizforge/internal/aiquiz"
	"github.com/quizforge/quizforge/internal/config"
	"github.com/sirupsen/logrus"
)

const (
	sessionCookie = "quizforge_session"
	defaultCount  = 5
)

type Handler struct {
	service SessionService
}

func NewHandler(s SessionService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	session := h.resolveSession(w, r)
	config.JSON(w, http.StatusOK, NewQuizView(session))
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	session := h.resolveSession(w, r)

	var dto GenerateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	difficulty, err := aiquiz.ParseDifficulty(dto.Difficulty)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.Count == 0 {
		dto.Count = defaultCount
	}

	req := aiquiz.QuizRequest{
		Text:       dto.Text,
		Difficulty: difficulty,
		Count:      aiquiz.ClampCount(dto.Count),
	}

	session, err = h.service.Generate(r.Context(), session.ID, req)
	if err != nil {
		writeServiceError(w, log, err, "Failed to generate quiz")
		return
	}

	config.JSON(w, http.StatusOK, NewQuizView(session))
}

func (h *Handler) SelectAnswer(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	session := h.resolveSession(w, r)

	var dto SelectDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	session, err := h.service.Select(r.Context(), session.ID, dto.Index, dto.Key)
	if err != nil {
		writeServiceError(w, log, err, "Failed to record selection")
		return
	}

	config.JSON(w, http.StatusOK, NewQuizView(session))
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	session := h.resolveSession(w, r)

	report, err := h.service.Submit(r.Context(), session.ID)
	if err != nil {
		writeServiceError(w, log, err, "Failed to submit quiz")
		return
	}

	config.JSON(w, http.StatusOK, report)
}

func (h *Handler) GetResults(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	session := h.resolveSession(w, r)

	report, err := h.service.Results(r.Context(), session.ID)
	if err != nil {
		writeServiceError(w, log, err, "Failed to load results")
		return
	}

	config.JSON(w, http.StatusOK, report)
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	session := h.resolveSession(w, r)

	session, err := h.service.Reset(r.Context(), session.ID)
	if err != nil {
		writeServiceError(w, log, err, "Failed to reset quiz")
		return
	}

	config.JSON(w, http.StatusOK, NewQuizView(session))
}

// resolveSession loads the session named by the request cookie, creating a
// fresh one (and setting the cookie) when absent or stale.
func (h *Handler) resolveSession(w http.ResponseWriter, r *http.Request) Session {
	var id uuid.UUID
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		if parsed, err := uuid.Parse(cookie.Value); err == nil {
			id = parsed
		}
	}

	session := h.service.GetOrCreate(r.Context(), id)
	if session.ID != id {
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    session.ID.String(),
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return session
}

func writeServiceError(w http.ResponseWriter, log *logrus.Entry, err error, msg string) {
	log.WithError(err).Error(msg)

	switch {
	case errors.Is(err, ErrInvalidSelection):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrSessionNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrQuizNotPresented),
		errors.Is(err, ErrQuizNotScored),
		errors.Is(err, ErrNoQuestions):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrEmptyGeneration):
		http.Error(w, "the model returned no usable questions, try again with different text", http.StatusBadGateway)
	default:
		http.Error(w, "failed to generate questions", http.StatusBadGateway)
	}
}
