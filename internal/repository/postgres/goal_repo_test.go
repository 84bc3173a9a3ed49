package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/nsplatform/backend/internal/errs"
	"github.com/nsplatform/backend/internal/model"
)

var goalCols = []string{"id", "owner_id", "type_id", "result_type_id", "name", "reason",
	"visible", "priority_weight", "created_at", "updated_at"}

func TestGoalRepo_Create(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewGoalRepo(db)
	ctx := context.Background()
	now := time.Now()

	g := &model.Goal{OwnerID: 1, TypeID: 1, ResultTypeID: 1, Name: "g", Reason: "r", PriorityWeight: 5}

	mock.ExpectQuery(`INSERT INTO goals \(owner_id, type_id, result_type_id, name, reason, visible, priority_weight\)`).
		WithArgs(g.OwnerID, g.TypeID, g.ResultTypeID, g.Name, g.Reason, g.Visible, g.PriorityWeight).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(3), now, now))
	require.NoError(t, r.Create(ctx, g))
	require.Equal(t, int64(3), g.ID)

	mock.ExpectQuery(`INSERT INTO goals`).
		WithArgs(g.OwnerID, g.TypeID, g.ResultTypeID, g.Name, g.Reason, g.Visible, g.PriorityWeight).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_goals_name"})
	require.ErrorIs(t, r.Create(ctx, g), errs.ErrDuplicateGoalName)

	mock.ExpectQuery(`INSERT INTO goals`).
		WithArgs(g.OwnerID, g.TypeID, g.ResultTypeID, g.Name, g.Reason, g.Visible, g.PriorityWeight).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_goals_owner_weight"})
	require.ErrorIs(t, r.Create(ctx, g), errs.ErrDuplicateWeight)

	mock.ExpectQuery(`INSERT INTO goals`).
		WithArgs(g.OwnerID, g.TypeID, g.ResultTypeID, g.Name, g.Reason, g.Visible, g.PriorityWeight).
		WillReturnError(&pgconn.PgError{Code: "23503"})
	require.ErrorIs(t, r.Create(ctx, g), errs.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGoalRepo_GetForOwner_Scoping(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewGoalRepo(db)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery(`FROM goals WHERE owner_id=\$1 AND id=\$2`).
		WithArgs(int64(1), int64(3)).
		WillReturnRows(pgxmock.NewRows(goalCols).
			AddRow(int64(3), int64(1), int64(1), int64(1), "g", "r", false, 5, now, now))
	g, err := r.GetForOwner(ctx, 1, 3)
	require.NoError(t, err)
	require.Equal(t, "g", g.Name)

	// someone else's goal is a miss
	mock.ExpectQuery(`FROM goals WHERE owner_id=\$1 AND id=\$2`).
		WithArgs(int64(2), int64(3)).
		WillReturnError(pgx.ErrNoRows)
	_, err = r.GetForOwner(ctx, 2, 3)
	require.ErrorIs(t, err, errs.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGoalRepo_ListByOwner_OrderedByWeight(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewGoalRepo(db)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery(`FROM goals WHERE owner_id=\$1 ORDER BY priority_weight`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(goalCols).
			AddRow(int64(1), int64(1), int64(1), int64(1), "a", "r", false, 1, now, now).
			AddRow(int64(2), int64(1), int64(1), int64(1), "b", "r", false, 2, now, now))
	gs, err := r.ListByOwner(ctx, 1)
	require.NoError(t, err)
	require.Len(t, gs, 2)
	require.Equal(t, "a", gs[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGoalRepo_Vocabularies(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewGoalRepo(db)
	ctx := context.Background()
	now := time.Now()

	vocabCols := []string{"id", "name", "created_at", "updated_at"}

	mock.ExpectQuery(`SELECT id, name, created_at, updated_at FROM goal_types ORDER BY id`).
		WillReturnRows(pgxmock.NewRows(vocabCols).
			AddRow(int64(1), "Цель", now, now).
			AddRow(int64(2), "Мечта", now, now).
			AddRow(int64(3), "Хотелка", now, now))
	types, err := r.ListTypes(ctx)
	require.NoError(t, err)
	require.Len(t, types, 3)

	mock.ExpectQuery(`SELECT id, name, created_at, updated_at FROM goal_result_types ORDER BY id`).
		WillReturnRows(pgxmock.NewRows(vocabCols).AddRow(int64(1), "Реализовано", now, now))
	results, err := r.ListResultTypes(ctx)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}
