package aiquiz

type Question struct {
	MCQ     string            `json:"mcq"`
	Options map[string]string `json:"options"`
	Correct string            `json:"correct"`
}

type QuizRequest struct {
	Text       string     `json:"text"`
	Difficulty Difficulty `json:"difficulty"`
	Count      int        `json:"count"`
}

// quizPayload is the wire shape the model is instructed to return.
type quizPayload struct {
	MCQs []Question `json:"mcqs"`
}
