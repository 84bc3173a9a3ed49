package repository

import (
	"context"

	"github.com/nsplatform/backend/internal/model"
)

// GoalRepository provides ownership-scoped access to the goal backlog.
type GoalRepository interface {
	// Create inserts a new goal and fills its generated ID.
	Create(ctx context.Context, g *model.Goal) error
	// ListByOwner returns the owner's goals ordered by priority weight.
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Goal, error)
	// GetForOwner loads one goal, scoped to its owner.
	GetForOwner(ctx context.Context, ownerID, id int64) (*model.Goal, error)
	// GetByID loads one goal regardless of owner (session/admin surface).
	GetByID(ctx context.Context, id int64) (*model.Goal, error)
	// List returns goals across all owners for the admin surface.
	List(ctx context.Context, limit, offset int) ([]model.Goal, error)
	// ListTypes returns the goal type vocabulary.
	ListTypes(ctx context.Context) ([]model.Vocab, error)
	// ListResultTypes returns the goal result type vocabulary.
	ListResultTypes(ctx context.Context) ([]model.Vocab, error)
}
