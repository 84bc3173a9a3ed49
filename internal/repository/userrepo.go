// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"
	"time"

	"github.com/nsplatform/backend/internal/model"
)

// UserFilter narrows admin user listings.
type UserFilter struct {
	Search   string // substring over login/email/phone
	Verified *bool
	Active   *bool
	Limit    int
	Offset   int
}

// UserRepository provides CRUD access for users and their verification profiles.
type UserRepository interface {
	// Create inserts a new user row together with its unverified profile
	// in a single transaction.
	Create(ctx context.Context, u *model.User) error
	// GetByID loads a user by ID.
	GetByID(ctx context.Context, id int64) (*model.User, error)
	// GetByLogin loads a user by login.
	GetByLogin(ctx context.Context, login string) (*model.User, error)
	// GetByEmail loads a user by email.
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// List returns users with verification state for the admin surface.
	List(ctx context.Context, f UserFilter) ([]model.UserListItem, error)
	// ListUnverified returns all users whose profile is not verified.
	ListUnverified(ctx context.Context) ([]model.User, error)
	// ListByEmails returns users matching the given emails.
	ListByEmails(ctx context.Context, emails []string) ([]model.User, error)
}

// ProfileRepository manages the 1:1 verification profiles.
type ProfileRepository interface {
	// GetByUserID loads the profile owned by the user.
	GetByUserID(ctx context.Context, userID int64) (*model.Profile, error)
	// GetByToken loads the profile holding the given live token.
	GetByToken(ctx context.Context, token string) (*model.Profile, error)
	// SetToken stores a fresh token and issuance time, replacing any prior token.
	SetToken(ctx context.Context, userID int64, token string, issuedAt time.Time) error
	// MarkVerified sets the verified flag and clears token state in one statement.
	MarkVerified(ctx context.Context, userID int64) error
}

// RoleRepository provides access to the fixed role vocabulary.
type RoleRepository interface {
	// GetByName loads a role by its unique name.
	GetByName(ctx context.Context, name string) (*model.Role, error)
	// List returns all roles ordered by ID.
	List(ctx context.Context) ([]model.Role, error)
	// Delete removes a role; rejected with ErrInUse while participations reference it.
	Delete(ctx context.Context, id int64) error
}
