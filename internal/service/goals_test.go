package service

import (
	"path/filepath"
	"testing"

	"github.com/goalpost/goalpost/internal/apperr"
	"github.com/goalpost/goalpost/internal/constants"
	"github.com/goalpost/goalpost/internal/models"
	"github.com/goalpost/goalpost/internal/storage"
)

func TestCreateGoal_OnlyOneActive(t *testing.T) {
	svc := newTestService(t)
	newTestGoal(t, svc)

	if _, err := svc.CreateGoal(testUser, CreateGoalInput{Name: "Second goal"}); err == nil {
		t.Fatal("expected second active goal to be rejected")
	}
}

func TestCreateGoal_SeedsConfiguredWaterGoal(t *testing.T) {
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "store.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	svc := New(store, "UTC", 10)

	goal, err := svc.CreateGoal(testUser, CreateGoalInput{Name: "Hydrated goal"})
	if err != nil {
		t.Fatalf("CreateGoal failed: %v", err)
	}
	if goal.Routines.Water.Goal != 10 {
		t.Errorf("expected water goal 10, got %d", goal.Routines.Water.Goal)
	}
}

func TestCreateGoal_DefaultWaterGoal(t *testing.T) {
	svc := newTestService(t)
	goal := newTestGoal(t, svc)

	if goal.Routines.Water.Goal != constants.DefaultWaterGoal {
		t.Errorf("expected default water goal %d, got %d", constants.DefaultWaterGoal, goal.Routines.Water.Goal)
	}
}

func TestCreateGoal_AllowedAfterCompletion(t *testing.T) {
	svc := newTestService(t)
	first := newTestGoal(t, svc)

	if err := svc.SetGoalStatus(testUser, first.ID, models.GoalStatusCompleted); err != nil {
		t.Fatalf("SetGoalStatus failed: %v", err)
	}

	second, err := svc.CreateGoal(testUser, CreateGoalInput{Name: "Next goal"})
	if err != nil {
		t.Fatalf("CreateGoal after completion failed: %v", err)
	}

	rec, err := svc.Record(testUser)
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	active, ok := rec.ActiveGoal()
	if !ok || active.ID != second.ID {
		t.Errorf("expected %s active, got %+v", second.ID, active)
	}
}

func TestSetGoalStatus_ReactivationBlockedWhileAnotherActive(t *testing.T) {
	svc := newTestService(t)
	first := newTestGoal(t, svc)

	if err := svc.SetGoalStatus(testUser, first.ID, models.GoalStatusArchived); err != nil {
		t.Fatalf("SetGoalStatus failed: %v", err)
	}
	second, err := svc.CreateGoal(testUser, CreateGoalInput{Name: "Next goal"})
	if err != nil {
		t.Fatalf("CreateGoal failed: %v", err)
	}

	if err := svc.SetGoalStatus(testUser, first.ID, models.GoalStatusActive); err == nil {
		t.Errorf("expected reactivation to fail while %s is active", second.ID)
	}
}

func TestCreateGoal_RejectsBadDates(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateGoal(testUser, CreateGoalInput{Name: "Bad", EndDate: "31-12-2026"})
	if err == nil {
		t.Fatal("expected invalid end date to be rejected")
	}
}

func TestUpdateGoal_PartialFields(t *testing.T) {
	svc := newTestService(t)
	goal := newTestGoal(t, svc)

	name := "Learn Go deeply"
	deadline := "2026-12-31"
	err := svc.UpdateGoal(testUser, goal.ID, UpdateGoalInput{Name: &name, EndDate: &deadline})
	if err != nil {
		t.Fatalf("UpdateGoal failed: %v", err)
	}

	got, err := svc.Goal(testUser, goal.ID)
	if err != nil {
		t.Fatalf("Goal failed: %v", err)
	}
	if got.Name != name {
		t.Errorf("expected name %q, got %q", name, got.Name)
	}
	if got.EndDate != deadline {
		t.Errorf("expected end date %q, got %q", deadline, got.EndDate)
	}
	if got.Description != goal.Description {
		t.Errorf("description changed unexpectedly: %q", got.Description)
	}
}

func TestDeleteGoal_RemovesEverything(t *testing.T) {
	svc := newTestService(t)
	goal := newTestGoal(t, svc)

	if _, err := svc.AddTodo(testUser, goal.ID, "task"); err != nil {
		t.Fatalf("AddTodo failed: %v", err)
	}
	if err := svc.DeleteGoal(testUser, goal.ID); err != nil {
		t.Fatalf("DeleteGoal failed: %v", err)
	}

	if _, err := svc.Goal(testUser, goal.ID); !apperr.IsNotFound(err) {
		t.Errorf("expected not found after delete, got %v", err)
	}
}

func TestGoal_NotFound(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Goal(testUser, "missing"); !apperr.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}
