package service

import (
	"context"
	"errors"
	"testing"

	"github.com/nsplatform/backend/internal/errs"
)

func TestGoals_Create_Validation(t *testing.T) {
	t.Parallel()

	s := NewGoalService(newFakeGoals())

	if _, err := s.Create(context.Background(), 0, CreateGoalInput{
		TypeID: 1, ResultTypeID: 1, Name: "n", Reason: "r",
	}); !errors.Is(err, errs.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized without owner, got %v", err)
	}
	if _, err := s.Create(context.Background(), 1, CreateGoalInput{
		TypeID: 1, ResultTypeID: 1, Reason: "r",
	}); !errors.Is(err, errs.ErrMissingField) {
		t.Fatalf("want ErrMissingField on empty name, got %v", err)
	}
	if _, err := s.Create(context.Background(), 1, CreateGoalInput{
		TypeID: 1, ResultTypeID: 1, Name: "n",
	}); !errors.Is(err, errs.ErrMissingField) {
		t.Fatalf("want ErrMissingField on empty reason, got %v", err)
	}
	if _, err := s.Create(context.Background(), 1, CreateGoalInput{
		ResultTypeID: 1, Name: "n", Reason: "r",
	}); !errors.Is(err, errs.ErrMissingField) {
		t.Fatalf("want ErrMissingField without type, got %v", err)
	}
}

func TestGoals_Create_UniquenessAndOwnership(t *testing.T) {
	t.Parallel()

	repo := newFakeGoals()
	s := NewGoalService(repo)

	g, err := s.Create(context.Background(), 1, CreateGoalInput{
		TypeID: 1, ResultTypeID: 1, Name: "выучить Go", Reason: "карьера", PriorityWeight: 10,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID == 0 || g.OwnerID != 1 {
		t.Fatalf("bad goal: %+v", g)
	}

	// name is unique across owners
	if _, err := s.Create(context.Background(), 2, CreateGoalInput{
		TypeID: 1, ResultTypeID: 1, Name: "выучить Go", Reason: "x", PriorityWeight: 5,
	}); !errors.Is(err, errs.ErrDuplicateGoalName) {
		t.Fatalf("want ErrDuplicateGoalName, got %v", err)
	}

	// weight is unique per owner only
	if _, err := s.Create(context.Background(), 1, CreateGoalInput{
		TypeID: 1, ResultTypeID: 1, Name: "пробежать марафон", Reason: "здоровье", PriorityWeight: 10,
	}); !errors.Is(err, errs.ErrDuplicateWeight) {
		t.Fatalf("want ErrDuplicateWeight, got %v", err)
	}
	if _, err := s.Create(context.Background(), 2, CreateGoalInput{
		TypeID: 1, ResultTypeID: 1, Name: "пробежать марафон", Reason: "здоровье", PriorityWeight: 10,
	}); err != nil {
		t.Fatalf("same weight for another owner must pass: %v", err)
	}

	// ownership scoping on reads
	if _, err := s.GetOwn(context.Background(), 2, g.ID); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("foreign goal must be invisible, got %v", err)
	}
	got, err := s.GetOwn(context.Background(), 1, g.ID)
	if err != nil || got.Name != "выучить Go" {
		t.Fatalf("GetOwn: %v %+v", err, got)
	}

	own, err := s.ListOwn(context.Background(), 1)
	if err != nil || len(own) != 1 {
		t.Fatalf("ListOwn: %v, n=%d", err, len(own))
	}
	if _, err := s.ListOwn(context.Background(), 0); !errors.Is(err, errs.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
}

func TestGoals_Vocabularies(t *testing.T) {
	t.Parallel()

	s := NewGoalService(newFakeGoals())

	types, err := s.Types(context.Background())
	if err != nil || len(types) == 0 {
		t.Fatalf("Types: %v", err)
	}
	results, err := s.ResultTypes(context.Background())
	if err != nil || len(results) == 0 {
		t.Fatalf("ResultTypes: %v", err)
	}
}
