package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/nsplatform/backend/internal/errs"
	"github.com/nsplatform/backend/internal/model"
)

// ProfileRepo implements ProfileRepository using PostgreSQL.
type ProfileRepo struct{ db *DB }

// NewProfileRepo constructs a profile repository.
func NewProfileRepo(db *DB) *ProfileRepo { return &ProfileRepo{db: db} }

const profileColumns = `id, user_id, email_verified, token, token_issued_at, created_at, updated_at`

// GetByUserID selects the profile owned by the user.
func (r *ProfileRepo) GetByUserID(ctx context.Context, userID int64) (*model.Profile, error) {
	const q = `SELECT ` + profileColumns + ` FROM user_profiles WHERE user_id=$1`
	return r.get(ctx, q, userID)
}

// GetByToken selects the profile holding a live token.
// Consumed tokens are cleared, so they fall through to ErrNotFound just like
// tokens that were never issued.
func (r *ProfileRepo) GetByToken(ctx context.Context, token string) (*model.Profile, error) {
	const q = `SELECT ` + profileColumns + ` FROM user_profiles WHERE token=$1`
	return r.get(ctx, q, token)
}

func (r *ProfileRepo) get(ctx context.Context, q string, arg any) (*model.Profile, error) {
	row := r.db.Pool.QueryRow(ctx, q, arg)
	var p model.Profile
	err := row.Scan(&p.ID, &p.UserID, &p.EmailVerified, &p.Token, &p.TokenIssuedAt,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, errs.ErrNotFound
	}
	return &p, nil
}

// SetToken replaces the live token and its issuance time.
func (r *ProfileRepo) SetToken(ctx context.Context, userID int64, token string, issuedAt time.Time) error {
	const q = `
UPDATE user_profiles
SET token=$2, token_issued_at=$3, updated_at=now()
WHERE user_id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, userID, token, issuedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// MarkVerified sets the verified flag and clears token state in a single statement,
// making the transition one-way and the token single-use.
func (r *ProfileRepo) MarkVerified(ctx context.Context, userID int64) error {
	const q = `
UPDATE user_profiles
SET email_verified=true, token=NULL, token_issued_at=NULL, updated_at=now()
WHERE user_id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
