package service

import (
	"context"
	"time"

	"github.com/nsplatform/backend/internal/errs"
	"github.com/nsplatform/backend/internal/model"
	"github.com/nsplatform/backend/internal/repository"
)

// CreateSessionInput collects fields for a new goal-setting session.
type CreateSessionInput struct {
	TypeID    int64
	StatusID  int64
	StartDate time.Time
	StopDate  time.Time
}

// SessionDetail is a session with its bindings and history.
type SessionDetail struct {
	Session      model.Session
	DurationDays int
	Goals        []model.SessionGoal
	Participants []model.Participant
	History      []model.WeightChange
}

// SessionService defines operations over goal-setting sessions.
type SessionService interface {
	// Create validates dates and inserts a new session.
	Create(ctx context.Context, in CreateSessionInput) (*model.Session, error)
	// Get returns the session with goals, participants and weight history.
	Get(ctx context.Context, id int64) (*SessionDetail, error)
	// List returns sessions ordered by ID.
	List(ctx context.Context, limit, offset int) ([]model.Session, error)
	// AddGoal binds a goal into the session. A zero weight derives the
	// starting weight from the goal's backlog priority.
	AddGoal(ctx context.Context, sessionID, goalID int64, weight int, plan, steps string) (*model.SessionGoal, error)
	// AddParticipant binds a user into the session under a role.
	AddParticipant(ctx context.Context, sessionID, userID, roleID int64) (*model.Participant, error)
	// RecordWeightChange appends an entry to the session's weight history.
	RecordWeightChange(ctx context.Context, sessionID int64, weight int, reason string) (*model.WeightChange, error)
	// Types returns the session type vocabulary.
	Types(ctx context.Context) ([]model.Vocab, error)
	// Statuses returns the session status vocabulary.
	Statuses(ctx context.Context) ([]model.Vocab, error)
}

type SessionServiceImpl struct {
	repo  repository.SessionRepository
	goals repository.GoalRepository
}

// NewSessionService constructs SessionService.
func NewSessionService(repo repository.SessionRepository, goals repository.GoalRepository) *SessionServiceImpl {
	return &SessionServiceImpl{repo: repo, goals: goals}
}

// Create validates the date range before insert. The storage layer does not
// carry this check, so legacy rows with inverted dates still load.
func (s *SessionServiceImpl) Create(ctx context.Context, in CreateSessionInput) (*model.Session, error) {
	if in.TypeID <= 0 || in.StatusID <= 0 {
		return nil, errs.ErrMissingField
	}
	if in.StartDate.IsZero() || in.StopDate.IsZero() {
		return nil, errs.ErrMissingField
	}
	if in.StopDate.Before(in.StartDate) {
		return nil, errs.ErrInvalidDateRange
	}
	sess := &model.Session{
		TypeID:    in.TypeID,
		StatusID:  in.StatusID,
		StartDate: in.StartDate,
		StopDate:  in.StopDate,
	}
	if err := s.repo.Create(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Get assembles the session detail view.
func (s *SessionServiceImpl) Get(ctx context.Context, id int64) (*SessionDetail, error) {
	sess, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	goals, err := s.repo.ListGoals(ctx, id)
	if err != nil {
		return nil, err
	}
	parts, err := s.repo.ListParticipants(ctx, id)
	if err != nil {
		return nil, err
	}
	hist, err := s.repo.ListWeightHistory(ctx, id)
	if err != nil {
		return nil, err
	}
	return &SessionDetail{
		Session:      *sess,
		DurationDays: sess.DurationDays(),
		Goals:        goals,
		Participants: parts,
		History:      hist,
	}, nil
}

// List returns sessions ordered by ID.
func (s *SessionServiceImpl) List(ctx context.Context, limit, offset int) ([]model.Session, error) {
	return s.repo.List(ctx, limit, offset)
}

// AddGoal binds a goal into the session.
func (s *SessionServiceImpl) AddGoal(ctx context.Context, sessionID, goalID int64, weight int, plan, steps string) (*model.SessionGoal, error) {
	if sessionID <= 0 || goalID <= 0 {
		return nil, errs.ErrMissingField
	}
	if weight == 0 {
		g, err := s.goals.GetByID(ctx, goalID)
		if err != nil {
			return nil, err
		}
		weight = g.PriorityWeight
	}
	sg := &model.SessionGoal{
		SessionID:     sessionID,
		GoalID:        goalID,
		CurrentWeight: weight,
		Plan:          plan,
		Steps:         steps,
	}
	if err := s.repo.AddGoal(ctx, sg); err != nil {
		return nil, err
	}
	return sg, nil
}

// AddParticipant binds a user into the session under a role.
func (s *SessionServiceImpl) AddParticipant(ctx context.Context, sessionID, userID, roleID int64) (*model.Participant, error) {
	if sessionID <= 0 || userID <= 0 || roleID <= 0 {
		return nil, errs.ErrMissingField
	}
	p := &model.Participant{UserID: userID, SessionID: sessionID, RoleID: roleID}
	if err := s.repo.AddParticipant(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// RecordWeightChange appends to the history log. There is no rollback
// operation; corrections are recorded as further entries.
func (s *SessionServiceImpl) RecordWeightChange(ctx context.Context, sessionID int64, weight int, reason string) (*model.WeightChange, error) {
	if sessionID <= 0 {
		return nil, errs.ErrMissingField
	}
	if reason == "" {
		return nil, errs.ErrMissingField
	}
	w := &model.WeightChange{SessionID: sessionID, Weight: weight, Reason: reason}
	if err := s.repo.AppendWeightChange(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

// Types returns the session type vocabulary.
func (s *SessionServiceImpl) Types(ctx context.Context) ([]model.Vocab, error) {
	return s.repo.ListTypes(ctx)
}

// Statuses returns the session status vocabulary.
func (s *SessionServiceImpl) Statuses(ctx context.Context) ([]model.Vocab, error) {
	return s.repo.ListStatuses(ctx)
}
