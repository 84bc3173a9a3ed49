package service

import (
	"context"
	"time"

	"github.com/nsplatform/backend/internal/errs"
	"github.com/nsplatform/backend/internal/limiter"
	"github.com/nsplatform/backend/internal/mailer"
	"github.com/nsplatform/backend/internal/model"
	"github.com/nsplatform/backend/internal/repository"
)

type fakeUsers struct {
	byLogin map[string]*model.User
	nextID  int64

	createErr error
	getErr    error
}

var _ repository.UserRepository = (*fakeUsers)(nil)

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byLogin: map[string]*model.User{}, nextID: 1}
}

func (f *fakeUsers) Create(_ context.Context, u *model.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, exists := f.byLogin[u.Login]; exists {
		return errs.ErrDuplicateLogin
	}
	for _, other := range f.byLogin {
		if other.Email == u.Email {
			return errs.ErrDuplicateEmail
		}
	}
	u.ID = f.nextID
	f.nextID++
	cpy := *u
	f.byLogin[u.Login] = &cpy
	return nil
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*model.User, error) {
	for _, u := range f.byLogin {
		if u.ID == id {
			c := *u
			return &c, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f *fakeUsers) GetByLogin(_ context.Context, login string) (*model.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byLogin[login]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c := *u
	return &c, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.byLogin {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f *fakeUsers) List(context.Context, repository.UserFilter) ([]model.UserListItem, error) {
	out := make([]model.UserListItem, 0, len(f.byLogin))
	for _, u := range f.byLogin {
		out = append(out, model.UserListItem{User: *u})
	}
	return out, nil
}

func (f *fakeUsers) ListUnverified(context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(f.byLogin))
	for _, u := range f.byLogin {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUsers) ListByEmails(_ context.Context, emails []string) ([]model.User, error) {
	var out []model.User
	for _, e := range emails {
		for _, u := range f.byLogin {
			if u.Email == e {
				out = append(out, *u)
			}
		}
	}
	return out, nil
}

type fakeProfiles struct {
	byUser map[int64]*model.Profile

	setErr    error
	markedIDs []int64
}

var _ repository.ProfileRepository = (*fakeProfiles)(nil)

func newFakeProfiles() *fakeProfiles {
	return &fakeProfiles{byUser: map[int64]*model.Profile{}}
}

func (f *fakeProfiles) GetByUserID(_ context.Context, userID int64) (*model.Profile, error) {
	p, ok := f.byUser[userID]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c := *p
	return &c, nil
}

func (f *fakeProfiles) GetByToken(_ context.Context, token string) (*model.Profile, error) {
	for _, p := range f.byUser {
		if p.Token != nil && *p.Token == token {
			c := *p
			return &c, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f *fakeProfiles) SetToken(_ context.Context, userID int64, token string, issuedAt time.Time) error {
	if f.setErr != nil {
		return f.setErr
	}
	p, ok := f.byUser[userID]
	if !ok {
		return errs.ErrNotFound
	}
	p.Token = &token
	p.TokenIssuedAt = &issuedAt
	return nil
}

func (f *fakeProfiles) MarkVerified(_ context.Context, userID int64) error {
	p, ok := f.byUser[userID]
	if !ok {
		return errs.ErrNotFound
	}
	p.EmailVerified = true
	p.Token = nil
	p.TokenIssuedAt = nil
	f.markedIDs = append(f.markedIDs, userID)
	return nil
}

type fakeMailer struct {
	sent    []string // recipient emails in order
	lastTok string
	err     error
}

var _ mailer.Sender = (*fakeMailer)(nil)

func (f *fakeMailer) SendVerification(to, _, token string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to)
	f.lastTok = token
	return nil
}

type fakeLimiter struct {
	allowOK  bool
	allowErr error

	failBlocked bool
	failErr     error

	successCalls int
	failureCalls int
}

var _ limiter.Limiter = (*fakeLimiter)(nil)

func (l *fakeLimiter) Allow(context.Context, string, []byte) (bool, time.Duration, error) {
	return l.allowOK, 0, l.allowErr
}
func (l *fakeLimiter) Success(context.Context, string, []byte) error {
	l.successCalls++
	return nil
}
func (l *fakeLimiter) Failure(context.Context, string, []byte) (bool, time.Duration, error) {
	l.failureCalls++
	return l.failBlocked, 0, l.failErr
}

type fakeGoals struct {
	byID   map[int64]*model.Goal
	nextID int64

	createErr error
}

var _ repository.GoalRepository = (*fakeGoals)(nil)

func newFakeGoals() *fakeGoals {
	return &fakeGoals{byID: map[int64]*model.Goal{}, nextID: 1}
}

func (f *fakeGoals) Create(_ context.Context, g *model.Goal) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, other := range f.byID {
		if other.Name == g.Name {
			return errs.ErrDuplicateGoalName
		}
		if other.OwnerID == g.OwnerID && other.PriorityWeight == g.PriorityWeight {
			return errs.ErrDuplicateWeight
		}
	}
	g.ID = f.nextID
	f.nextID++
	cpy := *g
	f.byID[g.ID] = &cpy
	return nil
}

func (f *fakeGoals) ListByOwner(_ context.Context, ownerID int64) ([]model.Goal, error) {
	var out []model.Goal
	for _, g := range f.byID {
		if g.OwnerID == ownerID {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (f *fakeGoals) GetForOwner(_ context.Context, ownerID, id int64) (*model.Goal, error) {
	g, ok := f.byID[id]
	if !ok || g.OwnerID != ownerID {
		return nil, errs.ErrNotFound
	}
	c := *g
	return &c, nil
}

func (f *fakeGoals) GetByID(_ context.Context, id int64) (*model.Goal, error) {
	g, ok := f.byID[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c := *g
	return &c, nil
}

func (f *fakeGoals) List(context.Context, int, int) ([]model.Goal, error) {
	out := make([]model.Goal, 0, len(f.byID))
	for _, g := range f.byID {
		out = append(out, *g)
	}
	return out, nil
}

func (f *fakeGoals) ListTypes(context.Context) ([]model.Vocab, error) {
	return []model.Vocab{{ID: 1, Name: "Цель"}}, nil
}

func (f *fakeGoals) ListResultTypes(context.Context) ([]model.Vocab, error) {
	return []model.Vocab{{ID: 1, Name: "Реализовано"}}, nil
}

type fakeSessions struct {
	byID   map[int64]*model.Session
	goals  map[int64][]model.SessionGoal
	parts  map[int64][]model.Participant
	hist   map[int64][]model.WeightChange
	nextID int64

	addGoalErr error
	addPartErr error
}

var _ repository.SessionRepository = (*fakeSessions)(nil)

func newFakeSessions() *fakeSessions {
	return &fakeSessions{
		byID:   map[int64]*model.Session{},
		goals:  map[int64][]model.SessionGoal{},
		parts:  map[int64][]model.Participant{},
		hist:   map[int64][]model.WeightChange{},
		nextID: 1,
	}
}

func (f *fakeSessions) Create(_ context.Context, s *model.Session) error {
	s.ID = f.nextID
	f.nextID++
	cpy := *s
	f.byID[s.ID] = &cpy
	return nil
}

func (f *fakeSessions) GetByID(_ context.Context, id int64) (*model.Session, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c := *s
	return &c, nil
}

func (f *fakeSessions) List(context.Context, int, int) ([]model.Session, error) {
	out := make([]model.Session, 0, len(f.byID))
	for _, s := range f.byID {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeSessions) AddGoal(_ context.Context, sg *model.SessionGoal) error {
	if f.addGoalErr != nil {
		return f.addGoalErr
	}
	for _, existing := range f.goals[sg.SessionID] {
		if existing.GoalID == sg.GoalID {
			return errs.ErrGoalAlreadyInSession
		}
	}
	sg.ID = f.nextID
	f.nextID++
	f.goals[sg.SessionID] = append(f.goals[sg.SessionID], *sg)
	return nil
}

func (f *fakeSessions) AddParticipant(_ context.Context, p *model.Participant) error {
	if f.addPartErr != nil {
		return f.addPartErr
	}
	for _, existing := range f.parts[p.SessionID] {
		if existing.UserID == p.UserID && existing.RoleID == p.RoleID {
			return errs.ErrDuplicateParticipation
		}
	}
	p.ID = f.nextID
	f.nextID++
	f.parts[p.SessionID] = append(f.parts[p.SessionID], *p)
	return nil
}

func (f *fakeSessions) AppendWeightChange(_ context.Context, w *model.WeightChange) error {
	w.ID = f.nextID
	f.nextID++
	w.CreatedAt = time.Now()
	f.hist[w.SessionID] = append(f.hist[w.SessionID], *w)
	return nil
}

func (f *fakeSessions) ListGoals(_ context.Context, sessionID int64) ([]model.SessionGoal, error) {
	return f.goals[sessionID], nil
}

func (f *fakeSessions) ListParticipants(_ context.Context, sessionID int64) ([]model.Participant, error) {
	return f.parts[sessionID], nil
}

func (f *fakeSessions) ListWeightHistory(_ context.Context, sessionID int64) ([]model.WeightChange, error) {
	return f.hist[sessionID], nil
}

func (f *fakeSessions) ListTypes(context.Context) ([]model.Vocab, error) {
	return []model.Vocab{{ID: 1, Name: "Установочная"}}, nil
}

func (f *fakeSessions) ListStatuses(context.Context) ([]model.Vocab, error) {
	return []model.Vocab{{ID: 1, Name: "Планирование"}}, nil
}
