package repository

import (
	"context"

	"github.com/nsplatform/backend/internal/model"
)

// SessionRepository provides access to sessions, their bindings and weight history.
type SessionRepository interface {
	// Create inserts a new session and fills its generated ID.
	Create(ctx context.Context, s *model.Session) error
	// GetByID loads a session by ID.
	GetByID(ctx context.Context, id int64) (*model.Session, error)
	// List returns sessions ordered by ID.
	List(ctx context.Context, limit, offset int) ([]model.Session, error)

	// AddGoal binds a goal into a session.
	AddGoal(ctx context.Context, sg *model.SessionGoal) error
	// AddParticipant binds a user into a session under a role.
	AddParticipant(ctx context.Context, p *model.Participant) error
	// AppendWeightChange appends a history entry; history rows are never
	// updated or deleted.
	AppendWeightChange(ctx context.Context, w *model.WeightChange) error

	// ListGoals returns the session's goal bindings.
	ListGoals(ctx context.Context, sessionID int64) ([]model.SessionGoal, error)
	// ListParticipants returns the session's participant-role bindings.
	ListParticipants(ctx context.Context, sessionID int64) ([]model.Participant, error)
	// ListWeightHistory returns history entries in insertion order.
	ListWeightHistory(ctx context.Context, sessionID int64) ([]model.WeightChange, error)

	// ListTypes returns the session type vocabulary.
	ListTypes(ctx context.Context) ([]model.Vocab, error)
	// ListStatuses returns the session status vocabulary.
	ListStatuses(ctx context.Context) ([]model.Vocab, error)
}
