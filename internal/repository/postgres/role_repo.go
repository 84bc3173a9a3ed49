package postgres

import (
	"context"
	"errors"

	"github.com/nsplatform/backend/internal/errs"
	"github.com/nsplatform/backend/internal/model"
)

// RoleRepo implements RoleRepository using PostgreSQL.
type RoleRepo struct{ db *DB }

// NewRoleRepo constructs a role repository.
func NewRoleRepo(db *DB) *RoleRepo { return &RoleRepo{db: db} }

// GetByName selects a role by its unique name.
func (r *RoleRepo) GetByName(ctx context.Context, name string) (*model.Role, error) {
	const q = `SELECT id, name, created_at, updated_at FROM roles WHERE name=$1`
	row := r.db.Pool.QueryRow(ctx, q, name)
	var role model.Role
	if err := row.Scan(&role.ID, &role.Name, &role.CreatedAt, &role.UpdatedAt); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, errs.ErrNotFound
	}
	return &role, nil
}

// List returns all roles ordered by ID.
func (r *RoleRepo) List(ctx context.Context) ([]model.Role, error) {
	const q = `SELECT id, name, created_at, updated_at FROM roles ORDER BY id`
	rows, err := r.db.Pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Role
	for rows.Next() {
		var role model.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, role)
	}
	return out, rows.Err()
}

// Delete removes a role. Participations reference roles with RESTRICT,
// so deleting a role still held in any session is rejected with ErrInUse.
func (r *RoleRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM roles WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return errs.ErrInUse
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
