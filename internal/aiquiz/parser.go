package aiquiz

import (
	"encoding/json"
	"strings"
)

// ParseQuestions interprets the raw model output as a quiz payload and
// returns the questions under the "mcqs" key. Malformed output of any kind
// degrades to an empty slice; the caller decides whether that is an error.
func ParseQuestions(raw string) []Question {
	clean := stripFences(raw)
	if clean == "" {
		return []Question{}
	}

	var payload quizPayload
	if err := json.Unmarshal([]byte(clean), &payload); err != nil {
		return []Question{}
	}
	if payload.MCQs == nil {
		return []Question{}
	}
	return payload.MCQs
}

// stripFences removes a surrounding markdown code block, which Gemini adds
// around JSON answers more often than not.
func stripFences(raw string) string {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.Trim(clean, "`")
	return strings.TrimSpace(clean)
}
