package service

import (
	"testing"
	"time"

	"github.com/goalpost/goalpost/internal/models"
)

func TestAddSession_RecomputesEffortAggregate(t *testing.T) {
	svc := newTestService(t)
	goal := newTestGoal(t, svc)

	start := time.Date(2026, 8, 21, 9, 0, 0, 0, time.UTC)
	if _, err := svc.AddSession(testUser, goal.ID, start, start.Add(25*time.Minute), "deep work"); err != nil {
		t.Fatalf("AddSession failed: %v", err)
	}
	if _, err := svc.AddSession(testUser, goal.ID, start.Add(time.Hour), start.Add(time.Hour+40*time.Minute), ""); err != nil {
		t.Fatalf("AddSession failed: %v", err)
	}

	got, _ := svc.Goal(testUser, goal.ID)
	day, ok := got.DailyProgress["2026-08-21"]
	if !ok {
		t.Fatal("expected progress entry for the session's start date")
	}
	if len(day.Sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(day.Sessions))
	}
	if day.EffortTimeMin != 65 {
		t.Errorf("expected effort 65 minutes, got %d", day.EffortTimeMin)
	}
}

func TestDeleteSession_RecomputesEffortAggregate(t *testing.T) {
	svc := newTestService(t)
	goal := newTestGoal(t, svc)

	start := time.Date(2026, 8, 21, 9, 0, 0, 0, time.UTC)
	sess, _ := svc.AddSession(testUser, goal.ID, start, start.Add(25*time.Minute), "")
	svc.AddSession(testUser, goal.ID, start.Add(time.Hour), start.Add(90*time.Minute), "")

	if err := svc.DeleteSession(testUser, goal.ID, "2026-08-21", sess.ID); err != nil {
		t.Fatalf("DeleteSession failed: %v", err)
	}

	got, _ := svc.Goal(testUser, goal.ID)
	day := got.DailyProgress["2026-08-21"]
	if len(day.Sessions) != 1 {
		t.Fatalf("expected 1 session left, got %d", len(day.Sessions))
	}
	if day.EffortTimeMin != 30 {
		t.Errorf("expected effort 30 minutes, got %d", day.EffortTimeMin)
	}
}

func TestAddSession_RejectsEndBeforeStart(t *testing.T) {
	svc := newTestService(t)
	goal := newTestGoal(t, svc)

	now := time.Now().UTC()
	if _, err := svc.AddSession(testUser, goal.ID, now, now.Add(-time.Minute), ""); err == nil {
		t.Error("expected session ending before its start to be rejected")
	}
}

func TestLogProgress_PreservesSessions(t *testing.T) {
	svc := newTestService(t)
	goal := newTestGoal(t, svc)

	start := time.Date(2026, 8, 21, 9, 0, 0, 0, time.UTC)
	svc.AddSession(testUser, goal.ID, start, start.Add(20*time.Minute), "")

	err := svc.LogProgress(testUser, goal.ID, "2026-08-21", models.SatisfactionGood, "solid morning")
	if err != nil {
		t.Fatalf("LogProgress failed: %v", err)
	}

	got, _ := svc.Goal(testUser, goal.ID)
	day := got.DailyProgress["2026-08-21"]
	if day.Satisfaction != models.SatisfactionGood {
		t.Errorf("expected satisfaction good, got %q", day.Satisfaction)
	}
	if day.Note != "solid morning" {
		t.Errorf("expected note preserved, got %q", day.Note)
	}
	if len(day.Sessions) != 1 || day.EffortTimeMin != 20 {
		t.Errorf("expected sessions untouched by progress log, got %+v", day)
	}
}

func TestLogProgress_RejectsUnknownSatisfaction(t *testing.T) {
	svc := newTestService(t)
	goal := newTestGoal(t, svc)

	if err := svc.LogProgress(testUser, goal.ID, "2026-08-21", "ecstatic", ""); err == nil {
		t.Error("expected unknown satisfaction level to be rejected")
	}
}
