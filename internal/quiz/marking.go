package quiz

import (
	"fmt"

	"github.com/FarihaChoudhury/Assessment-Fundamentals-Week-2/internal/assessment"
)

// Marking scores one quiz. It holds no state beyond the quiz itself.
type Marking struct {
	quiz Quiz
}

// NewMarking returns a Marking for q.
func NewMarking(q Quiz) *Marking {
	return &Marking{quiz: q}
}

// Result is the breakdown behind a mark.
type Result struct {
	Correct    int
	Total      int
	Percentage int
}

// Result counts correct answers and computes the truncated percentage.
func (m *Marking) Result() Result {
	r := Result{Total: len(m.quiz.Questions)}
	if r.Total == 0 {
		return r
	}
	for _, q := range m.quiz.Questions {
		if q.Correct() {
			r.Correct++
		}
	}
	// Integer division truncates: 2/3 marks as 66, not 67.
	r.Percentage = r.Correct * 100 / r.Total
	return r
}

// Mark returns the percentage of correctly answered questions,
// or 0 for a quiz with no questions.
func (m *Marking) Mark() int {
	return m.Result().Percentage
}

// GenerateAssessment returns an assessment named after the quiz, of the
// quiz's kind, scored with Mark.
func (m *Marking) GenerateAssessment() (assessment.Assessment, error) {
	kind, err := assessment.ParseKind(m.quiz.Kind)
	if err != nil {
		return assessment.Assessment{}, fmt.Errorf("generate assessment for quiz %q: %w", m.quiz.Name, err)
	}
	return assessment.New(m.quiz.Name, kind, float64(m.Mark()))
}
