package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"

	"github.com/FarihaChoudhury/Assessment-Fundamentals-Week-2/internal/assessment"
	"github.com/FarihaChoudhury/Assessment-Fundamentals-Week-2/internal/trainee"
)

// traineeRepo implements TraineeRepo using ent's SQL builders.
type traineeRepo struct {
	drv *entsql.Driver
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (r *traineeRepo) Create(ctx context.Context, t *trainee.Trainee) error {
	if err := t.Validate(); err != nil {
		return err
	}

	tx, err := r.drv.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	query, args := builder().
		Insert(traineesTable.Name).
		Columns("id", "name", "email", "date_of_birth", "created_at").
		Values(t.ID, t.Name, t.Email, t.DateOfBirth.UTC(), time.Now().UTC()).
		Query()
	var res sql.Result
	if err := tx.Exec(ctx, query, args, &res); err != nil {
		tx.Rollback()
		if sqlgraph.IsUniqueConstraintError(err) {
			return fmt.Errorf("create trainee %s: %w", t.Email, ErrDuplicateEmail)
		}
		return fmt.Errorf("create trainee: %w", err)
	}

	for _, a := range t.Assessments() {
		if err := insertAssessment(ctx, tx, t.ID, a); err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit trainee: %w", err)
	}
	return nil
}

func (r *traineeRepo) Get(ctx context.Context, id string) (*trainee.Trainee, error) {
	return r.getBy(ctx, "id", id)
}

func (r *traineeRepo) GetByEmail(ctx context.Context, email string) (*trainee.Trainee, error) {
	return r.getBy(ctx, "email", email)
}

func (r *traineeRepo) getBy(ctx context.Context, column, value string) (*trainee.Trainee, error) {
	query, args := traineeSelector().
		Where(entsql.EQ(column, value)).
		Limit(1).
		Query()
	list, err := r.queryTrainees(ctx, query, args)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%s %q: %w", column, value, ErrNotFound)
	}
	t := list[0]
	if err := r.loadAssessments(ctx, map[string]*trainee.Trainee{t.ID: t}, entsql.EQ("trainee_id", t.ID)); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *traineeRepo) List(ctx context.Context) ([]*trainee.Trainee, error) {
	query, args := traineeSelector().Query()
	list, err := r.queryTrainees(ctx, query, args)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return list, nil
	}
	byID := make(map[string]*trainee.Trainee, len(list))
	for _, t := range list {
		byID[t.ID] = t
	}
	if err := r.loadAssessments(ctx, byID, nil); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *traineeRepo) AddAssessment(ctx context.Context, traineeID string, a assessment.Assessment) (*trainee.Trainee, error) {
	t, err := r.Get(ctx, traineeID)
	if err != nil {
		return nil, err
	}
	if err := t.AddAssessment(a); err != nil {
		return nil, err
	}
	if err := insertAssessment(ctx, r.drv, traineeID, a); err != nil {
		return nil, err
	}
	return t, nil
}

func traineeSelector() *entsql.Selector {
	return builder().
		Select("id", "name", "email", "date_of_birth").
		From(entsql.Table(traineesTable.Name)).
		OrderBy(entsql.Asc("created_at"), entsql.Asc("id"))
}

// queryTrainees runs a trainee select and closes the rows before returning,
// so follow-up queries can reuse the single connection.
func (r *traineeRepo) queryTrainees(ctx context.Context, query string, args []any) ([]*trainee.Trainee, error) {
	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query trainees: %w", err)
	}
	defer rows.Close()

	var list []*trainee.Trainee
	for rows.Next() {
		t := &trainee.Trainee{}
		if err := rows.Scan(&t.ID, &t.Name, &t.Email, &t.DateOfBirth); err != nil {
			return nil, fmt.Errorf("scan trainee: %w", err)
		}
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate trainees: %w", err)
	}
	return list, nil
}

// loadAssessments attaches stored assessments to the given trainees.
// A nil predicate loads every row.
func (r *traineeRepo) loadAssessments(ctx context.Context, byID map[string]*trainee.Trainee, where *entsql.Predicate) error {
	sel := builder().
		Select("trainee_id", "name", "kind", "score").
		From(entsql.Table(assessmentsTable.Name)).
		OrderBy(entsql.Asc("id"))
	if where != nil {
		sel = sel.Where(where)
	}
	query, args := sel.Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return fmt.Errorf("query assessments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			traineeID string
			a         assessment.Assessment
			kind      string
		)
		if err := rows.Scan(&traineeID, &a.Name, &kind, &a.Score); err != nil {
			return fmt.Errorf("scan assessment: %w", err)
		}
		a.Kind = assessment.Kind(kind)
		t, ok := byID[traineeID]
		if !ok {
			continue
		}
		if err := t.AddAssessment(a); err != nil {
			return fmt.Errorf("load assessment for trainee %s: %w", traineeID, err)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate assessments: %w", err)
	}
	return nil
}

func insertAssessment(ctx context.Context, exec dialect.ExecQuerier, traineeID string, a assessment.Assessment) error {
	query, args := builder().
		Insert(assessmentsTable.Name).
		Columns("name", "kind", "score", "created_at", "trainee_id").
		Values(a.Name, string(a.Kind), a.Score, time.Now().UTC(), traineeID).
		Query()
	var res sql.Result
	if err := exec.Exec(ctx, query, args, &res); err != nil {
		if sqlgraph.IsForeignKeyConstraintError(err) {
			return fmt.Errorf("add assessment to %q: %w", traineeID, ErrNotFound)
		}
		return fmt.Errorf("insert assessment: %w", err)
	}
	return nil
}
