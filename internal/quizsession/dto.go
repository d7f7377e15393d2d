package quizsession

import (
	"sort"
	"strings"

	"github.com/quizforge/quizforge/internal/aiquiz"
)

type GenerateDTO struct {
	Text       string `json:"text"`
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
}

type SelectDTO struct {
	Index int    `json:"index"`
	Key   string `json:"key"`
}

type OptionView struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

type QuestionView struct {
	Index    int          `json:"index"`
	Prompt   string       `json:"prompt"`
	Options  []OptionView `json:"options"`
	Selected string       `json:"selected,omitempty"`
}

// QuizView is the session snapshot sent to the UI. Correct answer keys are
// never included.
type QuizView struct {
	SessionID string         `json:"session_id"`
	State     State          `json:"state"`
	Questions []QuestionView `json:"questions"`
}

type QuestionResult struct {
	Index    int           `json:"index"`
	Prompt   string        `json:"prompt"`
	Outcome  AnswerOutcome `json:"outcome"`
	Selected string        `json:"selected,omitempty"`
	Correct  string        `json:"correct"`
	Message  string        `json:"message"`
	Answer   string        `json:"answer"`
}

type Feedback struct {
	Tier    FeedbackTier `json:"tier"`
	Message string       `json:"message"`
}

type ScoreReport struct {
	Results      []QuestionResult `json:"results"`
	CorrectCount int              `json:"correct_count"`
	Total        int              `json:"total"`
	Percentage   float64          `json:"percentage"`
	Score        string           `json:"score"`
	Feedback     Feedback         `json:"feedback"`
}

const unansweredMessage = "You didn't select an answer."

var feedbackMessages = map[FeedbackTier]string{
	TierPerfect:  "Perfect score! You're a genius!",
	TierGreat:    "Great job! Keep up the good work!",
	TierGood:     "Good effort! Try again to improve your score!",
	TierPractice: "Don't worry! Practice makes perfect!",
}

// FeedbackFor maps a score percentage to its feedback tier. Boundaries:
// exactly 100 is perfect, [80,100) great, [50,80) good, below 50 practice.
func FeedbackFor(percentage float64) Feedback {
	var tier FeedbackTier
	switch {
	case percentage == 100:
		tier = TierPerfect
	case percentage >= 80:
		tier = TierGreat
	case percentage >= 50:
		tier = TierGood
	default:
		tier = TierPractice
	}
	return Feedback{Tier: tier, Message: feedbackMessages[tier]}
}

// NewQuizView projects a session for rendering, with options in stable key
// order.
func NewQuizView(s Session) QuizView {
	view := QuizView{
		SessionID: s.ID.String(),
		State:     s.State,
		Questions: make([]QuestionView, 0, len(s.Questions)),
	}
	for i, q := range s.Questions {
		view.Questions = append(view.Questions, QuestionView{
			Index:    i,
			Prompt:   q.MCQ,
			Options:  sortedOptions(q),
			Selected: s.Selections[i],
		})
	}
	return view
}

func sortedOptions(q aiquiz.Question) []OptionView {
	keys := make([]string, 0, len(q.Options))
	for k := range q.Options {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	options := make([]OptionView, 0, len(keys))
	for _, k := range keys {
		options = append(options, OptionView{Key: k, Text: q.Options[k]})
	}
	return options
}

func optionLabel(q aiquiz.Question, key string) string {
	return strings.ToUpper(key) + " - " + q.Options[key]
}
