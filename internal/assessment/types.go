package assessment

import "math"

// Kind identifies the assessment variant and with it the scoring weight.
type Kind string

const (
	KindMultipleChoice Kind = "multiple-choice"
	KindTechnical      Kind = "technical"
	KindPresentation   Kind = "presentation"
)

// Score bounds, inclusive.
const (
	MinScore = 0.0
	MaxScore = 100.0
)

// Kinds returns every recognized kind in display order.
func Kinds() []Kind {
	return []Kind{KindMultipleChoice, KindTechnical, KindPresentation}
}

// ParseKind converts a quiz or storage label into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", &ErrUnknownKind{Kind: s}
	}
	return k, nil
}

// Valid reports whether k is one of the recognized kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindMultipleChoice, KindTechnical, KindPresentation:
		return true
	}
	return false
}

// Weight returns the multiplier applied to the raw score.
// Unrecognized kinds weigh nothing.
func (k Kind) Weight() float64 {
	switch k {
	case KindMultipleChoice:
		return 0.7
	case KindTechnical:
		return 1.0
	case KindPresentation:
		return 0.6
	}
	return 0
}

func (k Kind) String() string { return string(k) }

// Assessment is a scored evaluation of one trainee on one topic.
// Values are built through New or the variant constructors and are not
// modified afterwards.
type Assessment struct {
	Name  string
	Kind  Kind
	Score float64
}

// New validates the kind and score and returns the assessment.
func New(name string, kind Kind, score float64) (Assessment, error) {
	if !kind.Valid() {
		return Assessment{}, &ErrUnknownKind{Kind: string(kind)}
	}
	if err := validateScore(score); err != nil {
		return Assessment{}, err
	}
	return Assessment{Name: name, Kind: kind, Score: score}, nil
}

// NewMultipleChoice returns a multiple-choice assessment (70% weighting).
func NewMultipleChoice(name string, score float64) (Assessment, error) {
	return New(name, KindMultipleChoice, score)
}

// NewTechnical returns a technical assessment (100% weighting).
func NewTechnical(name string, score float64) (Assessment, error) {
	return New(name, KindTechnical, score)
}

// NewPresentation returns a presentation assessment (60% weighting).
func NewPresentation(name string, score float64) (Assessment, error) {
	return New(name, KindPresentation, score)
}

// CalculateScore returns the raw score scaled by the kind's weight.
func (a Assessment) CalculateScore() float64 {
	return a.Score * a.Kind.Weight()
}

// Validate re-checks an assessment that may not have come through New,
// e.g. a struct literal or a row read back from storage.
func (a Assessment) Validate() error {
	if !a.Kind.Valid() {
		return &ErrUnknownKind{Kind: string(a.Kind)}
	}
	return validateScore(a.Score)
}

func validateScore(score float64) error {
	if math.IsNaN(score) || score < MinScore || score > MaxScore {
		return &ErrScoreOutOfRange{Score: score}
	}
	return nil
}
