package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/nsplatform/backend/internal/errs"
	"github.com/nsplatform/backend/internal/model"
	"github.com/nsplatform/backend/internal/repository"
)

// UserRepo implements UserRepository using PostgreSQL.
type UserRepo struct{ db *DB }

// NewUserRepo constructs a user repository.
func NewUserRepo(db *DB) *UserRepo { return &UserRepo{db: db} }

const userColumns = `id, login, email, phone, display_name, pwd_hash, salt, is_active, is_staff, created_at, updated_at`

// Create inserts the user and its unverified profile in one transaction.
// The profile is created here, synchronously, so the 1:1 invariant holds
// regardless of which caller registers the user.
func (r *UserRepo) Create(ctx context.Context, u *model.User) (err error) {
	tx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if e := tx.Commit(ctx); e != nil {
			err = e
		}
	}()

	const insUser = `
INSERT INTO users (login, email, phone, display_name, pwd_hash, salt, is_active, is_staff)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, created_at, updated_at`
	err = tx.QueryRow(ctx, insUser,
		u.Login, u.Email, u.Phone, u.DisplayName, u.PwdHash, u.Salt, u.IsActive, u.IsStaff,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return mapIdentityConflict(err)
	}

	const insProfile = `INSERT INTO user_profiles (user_id) VALUES ($1)`
	if _, err = tx.Exec(ctx, insProfile, u.ID); err != nil {
		return err
	}
	return nil
}

func mapIdentityConflict(err error) error {
	switch name, ok := uniqueConstraint(err); {
	case !ok:
		return err
	case name == "uq_users_login":
		return errs.ErrDuplicateLogin
	case name == "uq_users_email":
		return errs.ErrDuplicateEmail
	case name == "uq_users_phone":
		return errs.ErrDuplicatePhone
	default:
		return err
	}
}

// GetByID selects a user by ID.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return r.getBy(ctx, "id=$1", id)
}

// GetByLogin selects a user by login.
func (r *UserRepo) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	return r.getBy(ctx, "login=$1", login)
}

// GetByEmail selects a user by email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.getBy(ctx, "email=$1", email)
}

func (r *UserRepo) getBy(ctx context.Context, cond string, arg any) (*model.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE ` + cond
	row := r.db.Pool.QueryRow(ctx, q, arg)
	var u model.User
	err := row.Scan(&u.ID, &u.Login, &u.Email, &u.Phone, &u.DisplayName,
		&u.PwdHash, &u.Salt, &u.IsActive, &u.IsStaff, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, errs.ErrNotFound
	}
	return &u, nil
}

// List returns users joined with verification state, filtered for the admin surface.
func (r *UserRepo) List(ctx context.Context, f repository.UserFilter) ([]model.UserListItem, error) {
	var (
		conds []string
		args  []any
	)
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(u.login ILIKE $%d OR u.email ILIKE $%d OR COALESCE(u.phone,'') ILIKE $%d)", n, n, n))
	}
	if f.Verified != nil {
		args = append(args, *f.Verified)
		conds = append(conds, fmt.Sprintf("p.email_verified=$%d", len(args)))
	}
	if f.Active != nil {
		args = append(args, *f.Active)
		conds = append(conds, fmt.Sprintf("u.is_active=$%d", len(args)))
	}

	q := `
SELECT u.id, u.login, u.email, u.phone, u.display_name, u.is_active, u.is_staff,
       u.created_at, u.updated_at, p.email_verified
FROM users u
JOIN user_profiles p ON p.user_id = u.id`
	if len(conds) > 0 {
		q += "\nWHERE " + strings.Join(conds, " AND ")
	}
	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	args = append(args, limit)
	q += fmt.Sprintf("\nORDER BY u.id LIMIT $%d", len(args))
	args = append(args, f.Offset)
	q += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.db.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.UserListItem
	for rows.Next() {
		var it model.UserListItem
		if err := rows.Scan(&it.ID, &it.Login, &it.Email, &it.Phone, &it.DisplayName,
			&it.IsActive, &it.IsStaff, &it.CreatedAt, &it.UpdatedAt, &it.EmailVerified); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// ListUnverified returns users whose email is not yet confirmed.
func (r *UserRepo) ListUnverified(ctx context.Context) ([]model.User, error) {
	const q = `
SELECT u.id, u.login, u.email, u.phone, u.display_name, u.pwd_hash, u.salt,
       u.is_active, u.is_staff, u.created_at, u.updated_at
FROM users u
JOIN user_profiles p ON p.user_id = u.id
WHERE NOT p.email_verified
ORDER BY u.id`
	return r.scanUsers(ctx, q)
}

// ListByEmails returns users matching any of the given emails.
func (r *UserRepo) ListByEmails(ctx context.Context, emails []string) ([]model.User, error) {
	const q = `
SELECT ` + userColumns + `
FROM users
WHERE email = ANY($1)
ORDER BY id`
	return r.scanUsers(ctx, q, emails)
}

func (r *UserRepo) scanUsers(ctx context.Context, q string, args ...any) ([]model.User, error) {
	rows, err := r.db.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Login, &u.Email, &u.Phone, &u.DisplayName,
			&u.PwdHash, &u.Salt, &u.IsActive, &u.IsStaff, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
