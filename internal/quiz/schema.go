package quiz

// fileSchema describes a quiz document. Kind is only required to be
// non-empty; unrecognized kinds are reported when the quiz is marked.
var fileSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"name": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"kind": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"prompt":         map[string]any{"type": "string"},
					"chosen_answer":  map[string]any{"type": "string"},
					"correct_answer": map[string]any{"type": "string"},
				},
				"required":             []any{"prompt", "chosen_answer", "correct_answer"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"name", "kind", "questions"},
	"additionalProperties": false,
}
