package aiquiz

import (
	"encoding/json"
	"net/http"

	"github.com/quizforge/quizforge/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// GenerateQuestions exposes raw generation for API callers, outside of any
// quiz session.
func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var body struct {
		Text       string `json:"text"`
		Difficulty string `json:"difficulty"`
		Count      int    `json:"count"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	difficulty, err := ParseDifficulty(body.Difficulty)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	req := QuizRequest{
		Text:       body.Text,
		Difficulty: difficulty,
		Count:      ClampCount(body.Count),
	}

	questions, err := h.service.FetchQuestions(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Failed to generate questions")
		http.Error(w, "failed to generate questions", http.StatusBadGateway)
		return
	}

	config.JSON(w, http.StatusOK, quizPayload{MCQs: questions})
}
