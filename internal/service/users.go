package service

import (
	"context"

	"github.com/nsplatform/backend/internal/model"
	"github.com/nsplatform/backend/internal/repository"
)

// UserService exposes account queries for the profile and admin surfaces.
type UserService interface {
	// Get loads one user by ID.
	Get(ctx context.Context, id int64) (*model.User, error)
	// List returns users with verification state, filtered.
	List(ctx context.Context, f repository.UserFilter) ([]model.UserListItem, error)
	// Unverified returns all users whose email is not confirmed.
	Unverified(ctx context.Context) ([]model.User, error)
	// ByEmails returns users matching the given emails.
	ByEmails(ctx context.Context, emails []string) ([]model.User, error)
	// Roles returns the role vocabulary.
	Roles(ctx context.Context) ([]model.Role, error)
	// DeleteRole removes a role unless participations still reference it.
	DeleteRole(ctx context.Context, id int64) error
}

type UserServiceImpl struct {
	users repository.UserRepository
	roles repository.RoleRepository
}

// NewUserService constructs UserService.
func NewUserService(users repository.UserRepository, roles repository.RoleRepository) *UserServiceImpl {
	return &UserServiceImpl{users: users, roles: roles}
}

func (s *UserServiceImpl) Get(ctx context.Context, id int64) (*model.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *UserServiceImpl) List(ctx context.Context, f repository.UserFilter) ([]model.UserListItem, error) {
	return s.users.List(ctx, f)
}

func (s *UserServiceImpl) Unverified(ctx context.Context) ([]model.User, error) {
	return s.users.ListUnverified(ctx)
}

func (s *UserServiceImpl) ByEmails(ctx context.Context, emails []string) ([]model.User, error) {
	return s.users.ListByEmails(ctx, emails)
}

func (s *UserServiceImpl) Roles(ctx context.Context) ([]model.Role, error) {
	return s.roles.List(ctx)
}

func (s *UserServiceImpl) DeleteRole(ctx context.Context, id int64) error {
	return s.roles.Delete(ctx, id)
}
