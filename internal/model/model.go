// Package model defines domain entities used by services and repositories.
package model

import "time"

// Tokens collects issued access tokens.
type Tokens struct {
	AccessToken string
	ExpiresAt   time.Time // access token expiry (for diagnostics)
}

// User represents a system account. Identity keys (login, email) never change
// after creation; the optional phone is unique when present.
type User struct {
	ID          int64
	Login       string  // unique
	Email       string  // unique
	Phone       *string // unique, optional
	DisplayName string
	PwdHash     []byte // Argon2id(password, Salt)
	Salt        []byte // per-user auth salt
	IsActive    bool
	IsStaff     bool // grants access to the admin surface
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UserListItem is a user together with its verification state,
// as shown in admin listings.
type UserListItem struct {
	User
	EmailVerified bool
}

// Profile holds email-confirmation state for exactly one user.
// Token and TokenIssuedAt are set together and cleared together.
type Profile struct {
	ID            int64
	UserID        int64 // unique FK -> users.id
	EmailVerified bool
	Token         *string // opaque, nil when no live token
	TokenIssuedAt *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TokenValid reports whether the stored token may still be consumed at the given moment.
func (p *Profile) TokenValid(now time.Time, ttl time.Duration) bool {
	if p.Token == nil || p.TokenIssuedAt == nil {
		return false
	}
	return now.Before(p.TokenIssuedAt.Add(ttl))
}

// Role is a named participation label from a fixed vocabulary seeded at bootstrap.
type Role struct {
	ID        int64
	Name      string // unique, <= 16 chars
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Vocab is a generic seeded lookup row (goal types, result types, session types/statuses).
type Vocab struct {
	ID        int64
	Name      string // unique
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Goal is a backlog item owned by one user. Name is unique system-wide;
// (OwnerID, PriorityWeight) is unique per owner.
type Goal struct {
	ID             int64
	OwnerID        int64
	TypeID         int64
	ResultTypeID   int64
	Name           string
	Reason         string
	Visible        bool // visibility to other session participants; stored, not yet enforced
	PriorityWeight int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Session is a time-boxed goal-setting event.
type Session struct {
	ID        int64
	TypeID    int64
	StatusID  int64
	StartDate time.Time
	StopDate  time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DurationDays is the derived session length in whole days.
// Returns 0 when either boundary date is absent.
func (s *Session) DurationDays() int {
	if s.StartDate.IsZero() || s.StopDate.IsZero() {
		return 0
	}
	return int(s.StopDate.Sub(s.StartDate).Hours() / 24)
}

// SessionGoal binds a goal into a session with its in-session weight and plan.
type SessionGoal struct {
	ID            int64
	SessionID     int64
	GoalID        int64
	CurrentWeight int
	Plan          string
	Steps         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Participant binds a user into a session under a role.
// The (UserID, SessionID, RoleID) triple is unique.
type Participant struct {
	ID        int64
	UserID    int64
	SessionID int64
	RoleID    int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WeightChange is an immutable append-only log entry of a weight change in a session.
type WeightChange struct {
	ID        int64
	SessionID int64
	Weight    int
	Reason    string
	CreatedAt time.Time
}
