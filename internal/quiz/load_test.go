package quiz

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlQuiz = `name: Maths Quiz
kind: multiple-choice
questions:
  - prompt: "What is 1 + 1? A:2 B:4 C:5 D:8"
    chosen_answer: A
    correct_answer: A
  - prompt: "What is 2 + 2? A:2 B:4 C:5 D:8"
    chosen_answer: C
    correct_answer: B
`

const jsonQuiz = `{
  "name": "Maths Quiz",
  "kind": "technical",
  "questions": [
    {"prompt": "What is 3 + 3?", "chosen_answer": "6", "correct_answer": "6"}
  ]
}`

func TestDecode_YAML(t *testing.T) {
	q, err := Decode(strings.NewReader(yamlQuiz), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "Maths Quiz", q.Name)
	assert.Equal(t, "multiple-choice", q.Kind)
	require.Len(t, q.Questions, 2)
	assert.Equal(t, "B", q.Questions[1].CorrectAnswer)
	assert.Equal(t, 50, NewMarking(q).Mark())
}

func TestDecode_JSON(t *testing.T) {
	q, err := Decode(strings.NewReader(jsonQuiz), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "technical", q.Kind)
	assert.Equal(t, 100, NewMarking(q).Mark())
}

func TestDecode_EmptyQuestions(t *testing.T) {
	q, err := Decode(strings.NewReader(`{"name": "Empty", "kind": "technical", "questions": []}`), FormatJSON)
	require.NoError(t, err)
	assert.NotNil(t, q.Questions)
	assert.Equal(t, 0, NewMarking(q).Mark())
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format Format
	}{
		{"malformed JSON", `{"name": `, FormatJSON},
		{"malformed YAML", "name: [unclosed", FormatYAML},
		{"missing kind", `{"name": "X", "questions": []}`, FormatJSON},
		{"empty name", `{"name": "", "kind": "technical", "questions": []}`, FormatJSON},
		{"unknown field", `{"name": "X", "kind": "technical", "questions": [], "extra": 1}`, FormatJSON},
		{"question missing answer", "name: X\nkind: technical\nquestions:\n  - prompt: P\n    chosen_answer: A\n", FormatYAML},
		{"empty document", "", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input), tt.format)
			var invalid *ErrInvalidQuizFile
			require.ErrorAs(t, err, &invalid)
		})
	}
}

func TestDecode_UnknownKindPassesSchema(t *testing.T) {
	q, err := Decode(strings.NewReader(`{"name": "Essay", "kind": "essay", "questions": []}`), FormatJSON)
	require.NoError(t, err)
	_, err = NewMarking(q).GenerateAssessment()
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "maths.yml")
	require.NoError(t, os.WriteFile(path, []byte(yamlQuiz), 0o644))

	q, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Maths Quiz", q.Name)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{}`), 0o644))
	_, err = Load(bad)
	var invalid *ErrInvalidQuizFile
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, bad, invalid.Source)

	_, err = Load(filepath.Join(dir, "quiz.txt"))
	assert.Error(t, err)
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"quiz.yaml", FormatYAML, false},
		{"quiz.YML", FormatYAML, false},
		{"dir/quiz.json", FormatJSON, false},
		{"quiz.toml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
