package aiquiz

import "fmt"

const (
	MinQuestions = 1
	MaxQuestions = 20
)

// responseSchema is a literal one-sample example of the JSON the model must
// return. It is embedded verbatim in every prompt.
const responseSchema = `{
  "mcqs": [
    {
      "mcq": "Sample question",
      "options": {
        "a": "Option 1",
        "b": "Option 2",
        "c": "Option 3",
        "d": "Option 4"
      },
      "correct": "a"
    }
  ]
}`

// ClampCount bounds a requested question count to [MinQuestions, MaxQuestions].
func ClampCount(n int) int {
	if n < MinQuestions {
		return MinQuestions
	}
	if n > MaxQuestions {
		return MaxQuestions
	}
	return n
}

// BuildPrompt formats the user text, difficulty and question count into a
// single generation instruction. Empty text is allowed; the model is still
// asked for a quiz over it.
func BuildPrompt(req QuizRequest) string {
	return fmt.Sprintf(`You are an expert in generating MCQ quizzes based on provided content.
Given the text below, generate a quiz with %d multiple-choice questions at the '%s' difficulty level.

Text: %s

The format should strictly match this JSON:
%s

Return JSON only, with no text outside the JSON document.`,
		req.Count, req.Difficulty, req.Text, responseSchema,
	)
}
