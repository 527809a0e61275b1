package trainee

import (
	"fmt"
	"time"

	"github.com/FarihaChoudhury/Assessment-Fundamentals-Week-2/internal/assessment"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// DateLayout is the layout used for dates of birth on the command line
// and in storage.
const DateLayout = "2006-01-02"

var validate = validator.New()

// Trainee is a person undergoing assessments. The assessment collection only
// grows, in insertion order, and names may repeat.
type Trainee struct {
	ID          string    `validate:"required"`
	Name        string    `validate:"required"`
	Email       string    `validate:"required,email"`
	DateOfBirth time.Time `validate:"required"`

	assessments []assessment.Assessment
}

// New creates a trainee with a fresh ID and no assessments.
func New(name, email string, dateOfBirth time.Time) *Trainee {
	return &Trainee{
		ID:          uuid.NewString(),
		Name:        name,
		Email:       email,
		DateOfBirth: dateOfBirth,
	}
}

// Age returns the trainee's age in whole years as of today.
func (t *Trainee) Age() int {
	return t.AgeAt(time.Now())
}

// AgeAt returns the number of whole years between the date of birth and now.
// A birthday later in the year than now has not been reached yet.
func (t *Trainee) AgeAt(now time.Time) int {
	dob := t.DateOfBirth
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age
}

// AddAssessment appends a to the trainee's assessments.
func (t *Trainee) AddAssessment(a assessment.Assessment) error {
	if !a.Kind.Valid() {
		return &ErrTypeMismatch{Kind: string(a.Kind)}
	}
	if err := a.Validate(); err != nil {
		return fmt.Errorf("add assessment %q: %w", a.Name, err)
	}
	t.assessments = append(t.assessments, a)
	return nil
}

// GetAssessment returns the first assessment with the given name.
func (t *Trainee) GetAssessment(name string) (assessment.Assessment, bool) {
	for _, a := range t.assessments {
		if a.Name == name {
			return a, true
		}
	}
	return assessment.Assessment{}, false
}

// Assessments returns a copy of the assessments in insertion order.
func (t *Trainee) Assessments() []assessment.Assessment {
	out := make([]assessment.Assessment, len(t.assessments))
	copy(out, t.assessments)
	return out
}

// WeightedAverage returns the mean of the weighted scores, or 0 when the
// trainee has no assessments.
func (t *Trainee) WeightedAverage() float64 {
	if len(t.assessments) == 0 {
		return 0
	}
	var sum float64
	for _, a := range t.assessments {
		sum += a.CalculateScore()
	}
	return sum / float64(len(t.assessments))
}

// Validate checks the trainee's identity fields before it is stored.
func (t *Trainee) Validate() error {
	if err := validate.Struct(t); err != nil {
		return fmt.Errorf("invalid trainee: %w", err)
	}
	if t.DateOfBirth.After(time.Now()) {
		return fmt.Errorf("invalid trainee: date of birth %s is in the future",
			t.DateOfBirth.Format(DateLayout))
	}
	return nil
}

// ParseDate parses a YYYY-MM-DD date of birth.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return d, nil
}
