package assessment

import "fmt"

// ErrScoreOutOfRange indicates a score outside [MinScore, MaxScore].
type ErrScoreOutOfRange struct {
	Score float64
}

func (e *ErrScoreOutOfRange) Error() string {
	return fmt.Sprintf("score %g outside range [%g, %g]", e.Score, MinScore, MaxScore)
}

// ErrUnknownKind indicates a kind label that matches none of the
// recognized assessment kinds.
type ErrUnknownKind struct {
	Kind string
}

func (e *ErrUnknownKind) Error() string {
	return fmt.Sprintf("unrecognized assessment kind %q", e.Kind)
}
