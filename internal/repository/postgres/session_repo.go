package postgres

import (
	"context"
	"errors"

	"github.com/nsplatform/backend/internal/errs"
	"github.com/nsplatform/backend/internal/model"
)

// SessionRepo implements SessionRepository using PostgreSQL.
type SessionRepo struct{ db *DB }

// NewSessionRepo constructs a session repository.
func NewSessionRepo(db *DB) *SessionRepo { return &SessionRepo{db: db} }

// Create inserts a new session.
func (r *SessionRepo) Create(ctx context.Context, s *model.Session) error {
	const q = `
INSERT INTO sessions (type_id, status_id, start_date, stop_date)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at, updated_at`
	err := r.db.Pool.QueryRow(ctx, q, s.TypeID, s.StatusID, s.StartDate, s.StopDate).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if isForeignKeyViolation(err) {
		return errs.ErrNotFound
	}
	return err
}

// GetByID selects a session by ID.
func (r *SessionRepo) GetByID(ctx context.Context, id int64) (*model.Session, error) {
	const q = `
SELECT id, type_id, status_id, start_date, stop_date, created_at, updated_at
FROM sessions WHERE id=$1`
	row := r.db.Pool.QueryRow(ctx, q, id)
	var s model.Session
	err := row.Scan(&s.ID, &s.TypeID, &s.StatusID, &s.StartDate, &s.StopDate,
		&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, errs.ErrNotFound
	}
	return &s, nil
}

// List returns sessions ordered by ID.
func (r *SessionRepo) List(ctx context.Context, limit, offset int) ([]model.Session, error) {
	if limit <= 0 {
		limit = 50
	}
	const q = `
SELECT id, type_id, status_id, start_date, stop_date, created_at, updated_at
FROM sessions ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.db.Pool.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Session
	for rows.Next() {
		var s model.Session
		if err := rows.Scan(&s.ID, &s.TypeID, &s.StatusID, &s.StartDate, &s.StopDate,
			&s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// AddGoal binds a goal into the session with its starting in-session weight.
func (r *SessionRepo) AddGoal(ctx context.Context, sg *model.SessionGoal) error {
	const q = `
INSERT INTO session_goals (session_id, goal_id, current_weight, plan, steps)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, created_at, updated_at`
	err := r.db.Pool.QueryRow(ctx, q,
		sg.SessionID, sg.GoalID, sg.CurrentWeight, sg.Plan, sg.Steps,
	).Scan(&sg.ID, &sg.CreatedAt, &sg.UpdatedAt)
	if err == nil {
		return nil
	}
	if name, ok := uniqueConstraint(err); ok && name == "uq_session_goals_session_goal" {
		return errs.ErrGoalAlreadyInSession
	}
	if isForeignKeyViolation(err) {
		return errs.ErrNotFound
	}
	return err
}

// AddParticipant binds a user into the session under a role.
// A user may hold several distinct roles; the exact triple is unique.
func (r *SessionRepo) AddParticipant(ctx context.Context, p *model.Participant) error {
	const q = `
INSERT INTO session_participants (user_id, session_id, role_id)
VALUES ($1, $2, $3)
RETURNING id, created_at, updated_at`
	err := r.db.Pool.QueryRow(ctx, q, p.UserID, p.SessionID, p.RoleID).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err == nil {
		return nil
	}
	if name, ok := uniqueConstraint(err); ok && name == "uq_participants_user_session_role" {
		return errs.ErrDuplicateParticipation
	}
	if isForeignKeyViolation(err) {
		return errs.ErrNotFound
	}
	return err
}

// AppendWeightChange appends a history entry. There is no update or delete
// path for goal_weight_history anywhere in the repository.
func (r *SessionRepo) AppendWeightChange(ctx context.Context, w *model.WeightChange) error {
	const q = `
INSERT INTO goal_weight_history (session_id, weight, reason)
VALUES ($1, $2, $3)
RETURNING id, created_at`
	err := r.db.Pool.QueryRow(ctx, q, w.SessionID, w.Weight, w.Reason).
		Scan(&w.ID, &w.CreatedAt)
	if isForeignKeyViolation(err) {
		return errs.ErrNotFound
	}
	return err
}

// ListGoals returns the session's goal bindings.
func (r *SessionRepo) ListGoals(ctx context.Context, sessionID int64) ([]model.SessionGoal, error) {
	const q = `
SELECT id, session_id, goal_id, current_weight, plan, steps, created_at, updated_at
FROM session_goals WHERE session_id=$1 ORDER BY id`
	rows, err := r.db.Pool.Query(ctx, q, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.SessionGoal
	for rows.Next() {
		var sg model.SessionGoal
		if err := rows.Scan(&sg.ID, &sg.SessionID, &sg.GoalID, &sg.CurrentWeight,
			&sg.Plan, &sg.Steps, &sg.CreatedAt, &sg.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, sg)
	}
	return out, rows.Err()
}

// ListParticipants returns the session's participant-role bindings.
func (r *SessionRepo) ListParticipants(ctx context.Context, sessionID int64) ([]model.Participant, error) {
	const q = `
SELECT id, user_id, session_id, role_id, created_at, updated_at
FROM session_participants WHERE session_id=$1 ORDER BY id`
	rows, err := r.db.Pool.Query(ctx, q, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Participant
	for rows.Next() {
		var p model.Participant
		if err := rows.Scan(&p.ID, &p.UserID, &p.SessionID, &p.RoleID,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// ListWeightHistory returns history entries in insertion order.
func (r *SessionRepo) ListWeightHistory(ctx context.Context, sessionID int64) ([]model.WeightChange, error) {
	const q = `
SELECT id, session_id, weight, reason, created_at
FROM goal_weight_history WHERE session_id=$1 ORDER BY id`
	rows, err := r.db.Pool.Query(ctx, q, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.WeightChange
	for rows.Next() {
		var w model.WeightChange
		if err := rows.Scan(&w.ID, &w.SessionID, &w.Weight, &w.Reason, &w.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// ListTypes returns the session type vocabulary.
func (r *SessionRepo) ListTypes(ctx context.Context) ([]model.Vocab, error) {
	return scanVocab(ctx, r.db, `SELECT id, name, created_at, updated_at FROM session_types ORDER BY id`)
}

// ListStatuses returns the session status vocabulary.
func (r *SessionRepo) ListStatuses(ctx context.Context) ([]model.Vocab, error) {
	return scanVocab(ctx, r.db, `SELECT id, name, created_at, updated_at FROM session_statuses ORDER BY id`)
}
