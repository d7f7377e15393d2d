package quizsession

import (
	"errors"
	"fmt"

	"github.com/quizforge/quizforge/internal/aiquiz"
)

var ErrNoQuestions = errors.New("quiz has no questions to score")

// GradeQuiz scores selections against the question list. It is a pure
// function: the same inputs always produce the same report. A missing
// selection counts as incorrect but is reported with its own outcome.
func GradeQuiz(questions []aiquiz.Question, selections map[int]string) (*ScoreReport, error) {
	total := len(questions)
	if total == 0 {
		return nil, ErrNoQuestions
	}

	report := &ScoreReport{
		Results: make([]QuestionResult, 0, total),
		Total:   total,
	}

	for i, q := range questions {
		result := QuestionResult{
			Index:   i,
			Prompt:  q.MCQ,
			Correct: q.Correct,
			Answer:  optionLabel(q, q.Correct),
		}

		selected, ok := selections[i]
		switch {
		case !ok:
			result.Outcome = OutcomeUnanswered
			result.Message = unansweredMessage
		case selected == q.Correct:
			result.Outcome = OutcomeCorrect
			result.Selected = selected
			result.Message = "You selected: " + optionLabel(q, selected)
			report.CorrectCount++
		default:
			result.Outcome = OutcomeIncorrect
			result.Selected = selected
			result.Message = "You selected: " + optionLabel(q, selected)
		}

		report.Results = append(report.Results, result)
	}

	report.Percentage = float64(report.CorrectCount) / float64(total) * 100
	report.Score = fmt.Sprintf("%d/%d (%.2f%%)", report.CorrectCount, total, report.Percentage)
	report.Feedback = FeedbackFor(report.Percentage)
	return report, nil
}
