package store

import (
	"context"
	"errors"

	"github.com/FarihaChoudhury/Assessment-Fundamentals-Week-2/internal/assessment"
	"github.com/FarihaChoudhury/Assessment-Fundamentals-Week-2/internal/trainee"
)

// ErrNotFound is returned when a trainee lookup matches nothing.
var ErrNotFound = errors.New("trainee not found")

// ErrDuplicateEmail is returned when a trainee with the same email exists.
var ErrDuplicateEmail = errors.New("trainee email already registered")

// TraineeRepo persists trainees and their assessments.
type TraineeRepo interface {
	// Create validates and stores a new trainee, including any
	// assessments it already holds.
	Create(ctx context.Context, t *trainee.Trainee) error

	// Get loads a trainee by ID with its assessments in insertion order.
	Get(ctx context.Context, id string) (*trainee.Trainee, error)

	// GetByEmail loads a trainee by email.
	GetByEmail(ctx context.Context, email string) (*trainee.Trainee, error)

	// List returns all trainees ordered by registration.
	List(ctx context.Context) ([]*trainee.Trainee, error)

	// AddAssessment appends an assessment to the stored trainee and returns
	// the updated trainee. The assessment is checked with
	// trainee.AddAssessment before it is written.
	AddAssessment(ctx context.Context, traineeID string, a assessment.Assessment) (*trainee.Trainee, error)
}
