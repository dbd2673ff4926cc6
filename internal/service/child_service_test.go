package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/junksamiad/xmas-donation-app/internal/dto"
	"github.com/junksamiad/xmas-donation-app/internal/model"
)

func newChildServiceForTest(child *mockChildRepo) ChildService {
	return NewChildService(newTestRepo(child, nil, nil, nil, nil), zap.NewNop())
}

func TestPickRandomPrefersPriorityPool(t *testing.T) {
	// one priority child and one filler match: the priority child must
	// always win, no matter how the random draw falls
	childRepo := newMockChildRepo(
		testChild("c1", 7, model.GenderMale, true),
		testChild("c2", 7, model.GenderMale, false),
	)
	svc := newChildServiceForTest(childRepo)

	for i := 0; i < 20; i++ {
		got, err := svc.PickRandom(context.Background(), &dto.ChildSearchRequest{})
		if err != nil {
			t.Fatalf("PickRandom: %v", err)
		}
		if got.ID != "c1" {
			t.Fatalf("pick %d: got %s, want priority child c1", i, got.ID)
		}
	}
}

func TestPickRandomFallsBackToFillerPool(t *testing.T) {
	childRepo := newMockChildRepo(
		testChild("c1", 7, model.GenderMale, false),
	)
	svc := newChildServiceForTest(childRepo)

	got, err := svc.PickRandom(context.Background(), &dto.ChildSearchRequest{})
	if err != nil {
		t.Fatalf("PickRandom: %v", err)
	}
	if got.ID != "c1" {
		t.Fatalf("got %s, want filler child c1", got.ID)
	}
}

func TestPickRandomAppliesFilter(t *testing.T) {
	age := 5
	childRepo := newMockChildRepo(
		testChild("c1", 5, model.GenderFemale, true),
		testChild("c2", 5, model.GenderMale, true),
		testChild("c3", 9, model.GenderFemale, true),
	)
	svc := newChildServiceForTest(childRepo)

	got, err := svc.PickRandom(context.Background(), &dto.ChildSearchRequest{
		Gender: model.GenderFemale,
		Age:    &age,
	})
	if err != nil {
		t.Fatalf("PickRandom: %v", err)
	}
	if got.ID != "c1" {
		t.Fatalf("got %s, want c1 (female, age 5)", got.ID)
	}
}

func TestPickRandomSkipsAssignedChildren(t *testing.T) {
	assigned := testChild("c1", 7, model.GenderMale, true)
	assigned.Assigned = true
	childRepo := newMockChildRepo(
		assigned,
		testChild("c2", 7, model.GenderMale, true),
	)
	svc := newChildServiceForTest(childRepo)

	for i := 0; i < 20; i++ {
		got, err := svc.PickRandom(context.Background(), &dto.ChildSearchRequest{})
		if err != nil {
			t.Fatalf("PickRandom: %v", err)
		}
		if got.ID != "c2" {
			t.Fatalf("got assigned child %s", got.ID)
		}
	}
}

func TestPickRandomNoMatch(t *testing.T) {
	childRepo := newMockChildRepo(
		testChild("c1", 7, model.GenderMale, true),
	)
	svc := newChildServiceForTest(childRepo)

	_, err := svc.PickRandom(context.Background(), &dto.ChildSearchRequest{Gender: model.GenderFemale})
	if !errors.Is(err, ErrNoChildAvailable) {
		t.Fatalf("got %v, want ErrNoChildAvailable", err)
	}
}

func TestPickRandomEmptyPools(t *testing.T) {
	svc := newChildServiceForTest(newMockChildRepo())

	_, err := svc.PickRandom(context.Background(), &dto.ChildSearchRequest{})
	if !errors.Is(err, ErrNoChildAvailable) {
		t.Fatalf("got %v, want ErrNoChildAvailable", err)
	}
}

func TestSearchRequiresCriteria(t *testing.T) {
	svc := newChildServiceForTest(newMockChildRepo(
		testChild("c1", 7, model.GenderMale, true),
	))

	_, err := svc.Search(context.Background(), &dto.ChildSearchRequest{})
	if !errors.Is(err, ErrSearchCriteriaRequired) {
		t.Fatalf("got %v, want ErrSearchCriteriaRequired", err)
	}

	got, err := svc.Search(context.Background(), &dto.ChildSearchRequest{Gender: model.GenderMale})
	if err != nil {
		t.Fatalf("Search with criterion: %v", err)
	}
	if got.ID != "c1" {
		t.Fatalf("got %s, want c1", got.ID)
	}
}

func TestGetChildByIDNotFound(t *testing.T) {
	svc := newChildServiceForTest(newMockChildRepo())

	_, err := svc.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrChildNotFound) {
		t.Fatalf("got %v, want ErrChildNotFound", err)
	}
}

func TestChildrenProgress(t *testing.T) {
	c1 := testChild("c1", 7, model.GenderMale, true)
	c1.Assigned = true
	childRepo := newMockChildRepo(
		c1,
		testChild("c2", 8, model.GenderFemale, true),
		testChild("c3", 9, model.GenderFemale, false),
	)
	svc := newChildServiceForTest(childRepo)

	got, err := svc.Progress(context.Background())
	if err != nil {
		t.Fatalf("Progress: %v", err)
	}
	if got.Assigned != 1 || got.Total != 3 {
		t.Fatalf("got %d/%d, want 1/3", got.Assigned, got.Total)
	}
	if got.Percentage != 33 {
		t.Fatalf("got percentage %d, want 33", got.Percentage)
	}
}

func TestChildrenProgressEmpty(t *testing.T) {
	svc := newChildServiceForTest(newMockChildRepo())

	got, err := svc.Progress(context.Background())
	if err != nil {
		t.Fatalf("Progress: %v", err)
	}
	if got.Percentage != 0 {
		t.Fatalf("got percentage %d, want 0 for empty pool", got.Percentage)
	}
}
