package postgres

import (
	"context"
	"errors"

	"github.com/nsplatform/backend/internal/errs"
	"github.com/nsplatform/backend/internal/model"
)

// GoalRepo implements GoalRepository using PostgreSQL.
type GoalRepo struct{ db *DB }

// NewGoalRepo constructs a goal repository.
func NewGoalRepo(db *DB) *GoalRepo { return &GoalRepo{db: db} }

const goalColumns = `id, owner_id, type_id, result_type_id, name, reason, visible, priority_weight, created_at, updated_at`

// Create inserts a new goal. Unique constraints carry the backlog invariants:
// global name uniqueness and one weight per owner.
func (r *GoalRepo) Create(ctx context.Context, g *model.Goal) error {
	const q = `
INSERT INTO goals (owner_id, type_id, result_type_id, name, reason, visible, priority_weight)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, created_at, updated_at`
	err := r.db.Pool.QueryRow(ctx, q,
		g.OwnerID, g.TypeID, g.ResultTypeID, g.Name, g.Reason, g.Visible, g.PriorityWeight,
	).Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
	if err == nil {
		return nil
	}
	switch name, ok := uniqueConstraint(err); {
	case ok && name == "uq_goals_name":
		return errs.ErrDuplicateGoalName
	case ok && name == "uq_goals_owner_weight":
		return errs.ErrDuplicateWeight
	case isForeignKeyViolation(err):
		// owner or vocabulary reference does not exist
		return errs.ErrNotFound
	default:
		return err
	}
}

// ListByOwner returns the owner's goals ordered by priority weight.
func (r *GoalRepo) ListByOwner(ctx context.Context, ownerID int64) ([]model.Goal, error) {
	const q = `SELECT ` + goalColumns + ` FROM goals WHERE owner_id=$1 ORDER BY priority_weight`
	return r.scanGoals(ctx, q, ownerID)
}

// GetForOwner selects one goal scoped to its owner.
func (r *GoalRepo) GetForOwner(ctx context.Context, ownerID, id int64) (*model.Goal, error) {
	const q = `SELECT ` + goalColumns + ` FROM goals WHERE owner_id=$1 AND id=$2`
	return r.getGoal(ctx, q, ownerID, id)
}

// GetByID selects one goal by ID.
func (r *GoalRepo) GetByID(ctx context.Context, id int64) (*model.Goal, error) {
	const q = `SELECT ` + goalColumns + ` FROM goals WHERE id=$1`
	return r.getGoal(ctx, q, id)
}

func (r *GoalRepo) getGoal(ctx context.Context, q string, args ...any) (*model.Goal, error) {
	row := r.db.Pool.QueryRow(ctx, q, args...)
	var g model.Goal
	err := row.Scan(&g.ID, &g.OwnerID, &g.TypeID, &g.ResultTypeID, &g.Name, &g.Reason,
		&g.Visible, &g.PriorityWeight, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, errs.ErrNotFound
	}
	return &g, nil
}

// List returns goals across all owners for the admin surface.
func (r *GoalRepo) List(ctx context.Context, limit, offset int) ([]model.Goal, error) {
	if limit <= 0 {
		limit = 50
	}
	const q = `SELECT ` + goalColumns + ` FROM goals ORDER BY id LIMIT $1 OFFSET $2`
	return r.scanGoals(ctx, q, limit, offset)
}

func (r *GoalRepo) scanGoals(ctx context.Context, q string, args ...any) ([]model.Goal, error) {
	rows, err := r.db.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Goal
	for rows.Next() {
		var g model.Goal
		if err := rows.Scan(&g.ID, &g.OwnerID, &g.TypeID, &g.ResultTypeID, &g.Name, &g.Reason,
			&g.Visible, &g.PriorityWeight, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// ListTypes returns the goal type vocabulary.
func (r *GoalRepo) ListTypes(ctx context.Context) ([]model.Vocab, error) {
	return scanVocab(ctx, r.db, `SELECT id, name, created_at, updated_at FROM goal_types ORDER BY id`)
}

// ListResultTypes returns the goal result type vocabulary.
func (r *GoalRepo) ListResultTypes(ctx context.Context) ([]model.Vocab, error) {
	return scanVocab(ctx, r.db, `SELECT id, name, created_at, updated_at FROM goal_result_types ORDER BY id`)
}

func scanVocab(ctx context.Context, db *DB, q string) ([]model.Vocab, error) {
	rows, err := db.Pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Vocab
	for rows.Next() {
		var v model.Vocab
		if err := rows.Scan(&v.ID, &v.Name, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
