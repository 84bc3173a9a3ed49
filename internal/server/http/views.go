package httpserver

import (
	"time"

	"github.com/nsplatform/backend/internal/model"
	"github.com/nsplatform/backend/internal/service"
)

const dateLayout = "2006-01-02"

type userView struct {
	ID          int64  `json:"id"`
	Login       string `json:"login"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	IsActive    bool   `json:"is_active"`
	IsStaff     bool   `json:"is_staff"`
	CreatedAt   string `json:"created_at"`
}

func toUserView(u *model.User) userView {
	v := userView{
		ID:          u.ID,
		Login:       u.Login,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		IsActive:    u.IsActive,
		IsStaff:     u.IsStaff,
		CreatedAt:   u.CreatedAt.Format(time.RFC3339),
	}
	if u.Phone != nil {
		v.Phone = *u.Phone
	}
	return v
}

type userListView struct {
	userView
	EmailVerified bool `json:"email_verified"`
}

func toUserListView(it *model.UserListItem) userListView {
	return userListView{userView: toUserView(&it.User), EmailVerified: it.EmailVerified}
}

type vocabView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func toVocabViews(vs []model.Vocab) []vocabView {
	out := make([]vocabView, 0, len(vs))
	for _, v := range vs {
		out = append(out, vocabView{ID: v.ID, Name: v.Name})
	}
	return out
}

type roleView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type goalView struct {
	ID             int64  `json:"id"`
	OwnerID        int64  `json:"owner_id"`
	TypeID         int64  `json:"type_id"`
	ResultTypeID   int64  `json:"result_type_id"`
	Name           string `json:"name"`
	Reason         string `json:"reason"`
	Visible        bool   `json:"visible"`
	PriorityWeight int    `json:"priority_weight"`
	CreatedAt      string `json:"created_at"`
}

func toGoalView(g *model.Goal) goalView {
	return goalView{
		ID:             g.ID,
		OwnerID:        g.OwnerID,
		TypeID:         g.TypeID,
		ResultTypeID:   g.ResultTypeID,
		Name:           g.Name,
		Reason:         g.Reason,
		Visible:        g.Visible,
		PriorityWeight: g.PriorityWeight,
		CreatedAt:      g.CreatedAt.Format(time.RFC3339),
	}
}

func toGoalViews(gs []model.Goal) []goalView {
	out := make([]goalView, 0, len(gs))
	for i := range gs {
		out = append(out, toGoalView(&gs[i]))
	}
	return out
}

type sessionView struct {
	ID           int64  `json:"id"`
	TypeID       int64  `json:"type_id"`
	StatusID     int64  `json:"status_id"`
	StartDate    string `json:"start_date"`
	StopDate     string `json:"stop_date"`
	DurationDays int    `json:"duration_days"`
}

func toSessionView(s *model.Session) sessionView {
	return sessionView{
		ID:           s.ID,
		TypeID:       s.TypeID,
		StatusID:     s.StatusID,
		StartDate:    s.StartDate.Format(dateLayout),
		StopDate:     s.StopDate.Format(dateLayout),
		DurationDays: s.DurationDays(),
	}
}

type sessionGoalView struct {
	ID            int64  `json:"id"`
	SessionID     int64  `json:"session_id"`
	GoalID        int64  `json:"goal_id"`
	CurrentWeight int    `json:"current_weight"`
	Plan          string `json:"plan,omitempty"`
	Steps         string `json:"steps,omitempty"`
}

func toSessionGoalView(sg *model.SessionGoal) sessionGoalView {
	return sessionGoalView{
		ID:            sg.ID,
		SessionID:     sg.SessionID,
		GoalID:        sg.GoalID,
		CurrentWeight: sg.CurrentWeight,
		Plan:          sg.Plan,
		Steps:         sg.Steps,
	}
}

type participantView struct {
	ID        int64 `json:"id"`
	UserID    int64 `json:"user_id"`
	SessionID int64 `json:"session_id"`
	RoleID    int64 `json:"role_id"`
}

func toParticipantView(p *model.Participant) participantView {
	return participantView{ID: p.ID, UserID: p.UserID, SessionID: p.SessionID, RoleID: p.RoleID}
}

type weightChangeView struct {
	ID        int64  `json:"id"`
	SessionID int64  `json:"session_id"`
	Weight    int    `json:"weight"`
	Reason    string `json:"reason"`
	CreatedAt string `json:"created_at"`
}

func toWeightChangeView(w *model.WeightChange) weightChangeView {
	return weightChangeView{
		ID:        w.ID,
		SessionID: w.SessionID,
		Weight:    w.Weight,
		Reason:    w.Reason,
		CreatedAt: w.CreatedAt.Format(time.RFC3339),
	}
}

type sessionDetailView struct {
	sessionView
	Goals        []sessionGoalView  `json:"goals"`
	Participants []participantView  `json:"participants"`
	History      []weightChangeView `json:"weight_history"`
}

func toSessionDetailView(d *service.SessionDetail) sessionDetailView {
	v := sessionDetailView{
		sessionView:  toSessionView(&d.Session),
		Goals:        make([]sessionGoalView, 0, len(d.Goals)),
		Participants: make([]participantView, 0, len(d.Participants)),
		History:      make([]weightChangeView, 0, len(d.History)),
	}
	for i := range d.Goals {
		v.Goals = append(v.Goals, toSessionGoalView(&d.Goals[i]))
	}
	for i := range d.Participants {
		v.Participants = append(v.Participants, toParticipantView(&d.Participants[i]))
	}
	for i := range d.History {
		v.History = append(v.History, toWeightChangeView(&d.History[i]))
	}
	return v
}
