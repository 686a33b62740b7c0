package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/goalpost/goalpost/internal/models"
	"github.com/goalpost/goalpost/internal/storage"
)

func resetFixture(status models.GoalStatus, lastReset string) models.UserRecord {
	done := time.Now().UTC().Add(-10 * time.Hour)
	return models.UserRecord{
		Version: 1,
		UserID:  testUser,
		Goals: map[string]models.Goal{
			"g1": {
				ID:     "g1",
				Name:   "Learn Go",
				Status: status,
				Routines: models.RoutineSettings{
					Exercise: []models.ScheduledRoutine{
						{ID: "run", Label: "Morning run", Time: "07:00", DurationMin: 30, Icon: models.IconExercise, Completed: true, CompletedAt: &done},
						{ID: "stretch", Label: "Stretch", Time: "08:00", DurationMin: 15, Icon: models.IconExercise},
					},
					Meals: []models.ScheduledRoutine{
						{ID: "lunch", Label: "Lunch", Time: "12:30", DurationMin: 45, Icon: models.IconMeal, Completed: true, CompletedAt: &done},
					},
					Water:         models.WaterTracker{Goal: 8, Completed: 5},
					LastResetDate: lastReset,
				},
			},
		},
	}
}

func TestApplyReset_ClearsStaleCompletions(t *testing.T) {
	rec := resetFixture(models.GoalStatusActive, "2026-08-20")

	result := applyReset(&rec, "2026-08-21")

	if !result.Changed() {
		t.Fatal("expected reset to report a change")
	}
	if result.ItemsCleared != 2 {
		t.Errorf("expected 2 items cleared, got %d", result.ItemsCleared)
	}
	if result.WaterReset != 1 {
		t.Errorf("expected 1 water counter reset, got %d", result.WaterReset)
	}

	goal := rec.Goals["g1"]
	for _, item := range goal.Routines.All() {
		if item.Completed {
			t.Errorf("item %s still completed after reset", item.ID)
		}
		if item.CompletedAt != nil {
			t.Errorf("item %s still has completed_at after reset", item.ID)
		}
	}
	if goal.Routines.Water.Completed != 0 {
		t.Errorf("expected water zeroed, got %d", goal.Routines.Water.Completed)
	}
	if goal.Routines.LastResetDate != "2026-08-21" {
		t.Errorf("expected last_reset_date advanced to today, got %q", goal.Routines.LastResetDate)
	}
}

func TestApplyReset_SameDayIsNoop(t *testing.T) {
	rec := resetFixture(models.GoalStatusActive, "2026-08-21")

	result := applyReset(&rec, "2026-08-21")

	if result.Changed() {
		t.Fatal("expected no change on the same day")
	}
	goal := rec.Goals["g1"]
	if !goal.Routines.Exercise[0].Completed {
		t.Error("completion cleared despite same-day guard")
	}
	if goal.Routines.Water.Completed != 5 {
		t.Errorf("water changed despite same-day guard: %d", goal.Routines.Water.Completed)
	}
}

func TestApplyReset_SkipsInactiveGoals(t *testing.T) {
	for _, status := range []models.GoalStatus{models.GoalStatusCompleted, models.GoalStatusArchived} {
		rec := resetFixture(status, "2026-08-20")

		result := applyReset(&rec, "2026-08-21")

		if result.Changed() {
			t.Errorf("status %s: expected frozen goal to be skipped", status)
		}
		goal := rec.Goals["g1"]
		if !goal.Routines.Meals[0].Completed {
			t.Errorf("status %s: frozen goal's completion was cleared", status)
		}
	}
}

func TestApplyReset_NothingToClearSkipsGuardAdvance(t *testing.T) {
	rec := resetFixture(models.GoalStatusActive, "2026-08-20")
	goal := rec.Goals["g1"]
	for _, cat := range models.Categories() {
		items := goal.Routines.List(cat)
		for i := range items {
			items[i].Completed = false
			items[i].CompletedAt = nil
		}
		goal.Routines.SetList(cat, items)
	}
	goal.Routines.Water.Completed = 0
	rec.Goals["g1"] = goal

	result := applyReset(&rec, "2026-08-21")

	if result.Changed() {
		t.Fatal("expected nothing to change")
	}
	if rec.Goals["g1"].Routines.LastResetDate != "2026-08-20" {
		t.Errorf("guard date advanced without a change: %q", rec.Goals["g1"].Routines.LastResetDate)
	}
}

func TestDailyReset_PersistsAndIsIdempotent(t *testing.T) {
	svc := newTestService(t)
	goal := newTestGoal(t, svc)

	item, err := svc.AddSchedule(testUser, goal.ID, models.RoutineExercise, AddScheduleInput{
		Label: "Morning run", Time: "07:00", DurationMin: 30, Icon: models.IconExercise,
	})
	if err != nil {
		t.Fatalf("AddSchedule failed: %v", err)
	}
	if err := svc.ToggleSchedule(testUser, goal.ID, models.RoutineExercise, item.ID); err != nil {
		t.Fatalf("ToggleSchedule failed: %v", err)
	}

	// Backdate the guard so the next pass treats the completion as stale
	err = svc.mutateGoal(testUser, goal.ID, func(g *models.Goal) error {
		g.Routines.LastResetDate = "2000-01-01"
		return nil
	})
	if err != nil {
		t.Fatalf("backdating guard failed: %v", err)
	}

	result, err := svc.DailyReset(testUser)
	if err != nil {
		t.Fatalf("DailyReset failed: %v", err)
	}
	if !result.Changed() || result.ItemsCleared != 1 {
		t.Fatalf("expected 1 item cleared, got %+v", result)
	}

	got, err := svc.Goal(testUser, goal.ID)
	if err != nil {
		t.Fatalf("Goal failed: %v", err)
	}
	if got.Routines.Exercise[0].Completed {
		t.Error("completion survived the reset in storage")
	}

	// A second run on the same day must write nothing
	again, err := svc.DailyReset(testUser)
	if err != nil {
		t.Fatalf("second DailyReset failed: %v", err)
	}
	if again.Changed() {
		t.Errorf("second same-day reset reported changes: %+v", again)
	}
}

func TestDailyReset_RetriesOnVersionConflict(t *testing.T) {
	inner := storage.NewJSONStore(filepath.Join(t.TempDir(), "store.json"))
	if err := inner.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := inner.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	setup := New(inner, "UTC", 0)
	goal := newTestGoal(t, setup)
	item, err := setup.AddSchedule(testUser, goal.ID, models.RoutineExercise, AddScheduleInput{
		Label: "Morning run", Time: "07:00", DurationMin: 30, Icon: models.IconExercise,
	})
	if err != nil {
		t.Fatalf("AddSchedule failed: %v", err)
	}
	if err := setup.ToggleSchedule(testUser, goal.ID, models.RoutineExercise, item.ID); err != nil {
		t.Fatalf("ToggleSchedule failed: %v", err)
	}
	err = setup.mutateGoal(testUser, goal.ID, func(g *models.Goal) error {
		g.Routines.LastResetDate = "2000-01-01"
		return nil
	})
	if err != nil {
		t.Fatalf("backdating guard failed: %v", err)
	}

	store := &conflictOnceStore{Provider: inner}
	svc := New(store, "UTC", 0)

	result, err := svc.DailyReset(testUser)
	if err != nil {
		t.Fatalf("DailyReset failed despite retry: %v", err)
	}
	if !store.conflicted {
		t.Fatal("fake store never produced a conflict")
	}
	if !result.Changed() || result.ItemsCleared != 1 {
		t.Fatalf("expected 1 item cleared, got %+v", result)
	}

	got, err := svc.Goal(testUser, goal.ID)
	if err != nil {
		t.Fatalf("Goal failed: %v", err)
	}
	if got.Routines.Exercise[0].Completed {
		t.Error("completion survived the reset in storage")
	}
}
