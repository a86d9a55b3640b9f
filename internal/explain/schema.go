package explain

import "github.com/Kairavparikh/quizwhiz/internal/llm"

// ExplanationSchema defines the JSON schema for answer explanation responses.
var ExplanationSchema = &llm.Schema{
	Name:        "answer-explanation",
	Description: "Explanation of a quiz answer plus a calibrated follow-up question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"explanation": map[string]any{
				"type":        "string",
				"description": "Explanation of the answer, pitched at the learner's state",
			},
			"follow_up_question": map[string]any{
				"type":        "object",
				"description": "A follow-up question at the requested difficulty",
				"properties": map[string]any{
					"text": map[string]any{
						"type":        "string",
						"description": "The question text",
					},
					"options": map[string]any{
						"type":        "array",
						"items":       map[string]any{"type": "string"},
						"minItems":    2,
						"description": "Answer options",
					},
					"correct_index": map[string]any{
						"type":        "integer",
						"minimum":     0,
						"description": "Index of the correct option",
					},
				},
				"required":             []any{"text", "options", "correct_index"},
				"additionalProperties": false,
			},
		},
		"required":             []any{"explanation", "follow_up_question"},
		"additionalProperties": false,
	},
}
