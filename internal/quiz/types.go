package quiz

// Question is a single quiz item with the answer given and the expected one.
type Question struct {
	Prompt        string `json:"prompt" yaml:"prompt"`
	ChosenAnswer  string `json:"chosen_answer" yaml:"chosen_answer"`
	CorrectAnswer string `json:"correct_answer" yaml:"correct_answer"`
}

// Correct reports whether the chosen answer matches exactly.
func (q Question) Correct() bool {
	return q.ChosenAnswer == q.CorrectAnswer
}

// Quiz is an ordered set of questions with the assessment kind it counts as.
// Kind is kept as the raw label so unrecognized kinds surface when marking.
type Quiz struct {
	Questions []Question `json:"questions" yaml:"questions"`
	Name      string     `json:"name" yaml:"name"`
	Kind      string     `json:"kind" yaml:"kind"`
}

// New builds a quiz. The question slice is copied.
func New(questions []Question, name, kind string) Quiz {
	qs := make([]Question, len(questions))
	copy(qs, questions)
	return Quiz{Questions: qs, Name: name, Kind: kind}
}
