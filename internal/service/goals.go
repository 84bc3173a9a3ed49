package service

import (
	"context"

	"github.com/nsplatform/backend/internal/errs"
	"github.com/nsplatform/backend/internal/model"
	"github.com/nsplatform/backend/internal/repository"
)

// CreateGoalInput collects fields for a new backlog goal.
type CreateGoalInput struct {
	TypeID         int64
	ResultTypeID   int64
	Name           string
	Reason         string
	Visible        bool
	PriorityWeight int
}

// GoalService defines operations over a user's goal backlog.
type GoalService interface {
	// Create adds a goal to the owner's backlog.
	Create(ctx context.Context, ownerID int64, in CreateGoalInput) (*model.Goal, error)
	// ListOwn returns only the owner's goals.
	ListOwn(ctx context.Context, ownerID int64) ([]model.Goal, error)
	// GetOwn returns one goal, scoped to the owner.
	GetOwn(ctx context.Context, ownerID, id int64) (*model.Goal, error)
	// ListAll returns goals across owners (admin surface).
	ListAll(ctx context.Context, limit, offset int) ([]model.Goal, error)
	// Types returns the goal type vocabulary.
	Types(ctx context.Context) ([]model.Vocab, error)
	// ResultTypes returns the goal result type vocabulary.
	ResultTypes(ctx context.Context) ([]model.Vocab, error)
}

type GoalServiceImpl struct {
	repo repository.GoalRepository
}

// NewGoalService constructs GoalService.
func NewGoalService(repo repository.GoalRepository) *GoalServiceImpl {
	return &GoalServiceImpl{repo: repo}
}

// Create validates input and delegates; uniqueness of name and of
// (owner, weight) is resolved by the storage constraints.
func (s *GoalServiceImpl) Create(ctx context.Context, ownerID int64, in CreateGoalInput) (*model.Goal, error) {
	if ownerID <= 0 {
		return nil, errs.ErrUnauthorized
	}
	if in.Name == "" || in.Reason == "" {
		return nil, errs.ErrMissingField
	}
	if in.TypeID <= 0 || in.ResultTypeID <= 0 {
		return nil, errs.ErrMissingField
	}
	g := &model.Goal{
		OwnerID:        ownerID,
		TypeID:         in.TypeID,
		ResultTypeID:   in.ResultTypeID,
		Name:           in.Name,
		Reason:         in.Reason,
		Visible:        in.Visible,
		PriorityWeight: in.PriorityWeight,
	}
	if err := s.repo.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// ListOwn returns the owner's goals ordered by priority weight.
func (s *GoalServiceImpl) ListOwn(ctx context.Context, ownerID int64) ([]model.Goal, error) {
	if ownerID <= 0 {
		return nil, errs.ErrUnauthorized
	}
	return s.repo.ListByOwner(ctx, ownerID)
}

// GetOwn returns one goal scoped to the owner.
func (s *GoalServiceImpl) GetOwn(ctx context.Context, ownerID, id int64) (*model.Goal, error) {
	if ownerID <= 0 {
		return nil, errs.ErrUnauthorized
	}
	return s.repo.GetForOwner(ctx, ownerID, id)
}

// ListAll returns goals across owners.
func (s *GoalServiceImpl) ListAll(ctx context.Context, limit, offset int) ([]model.Goal, error) {
	return s.repo.List(ctx, limit, offset)
}

// Types returns the goal type vocabulary.
func (s *GoalServiceImpl) Types(ctx context.Context) ([]model.Vocab, error) {
	return s.repo.ListTypes(ctx)
}

// ResultTypes returns the goal result type vocabulary.
func (s *GoalServiceImpl) ResultTypes(ctx context.Context) ([]model.Vocab, error) {
	return s.repo.ListResultTypes(ctx)
}
