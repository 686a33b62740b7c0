package service

import (
	"testing"

	"github.com/goalpost/goalpost/internal/models"
)

func TestAddSchedule_RejectsBadInput(t *testing.T) {
	svc := newTestService(t)
	goal := newTestGoal(t, svc)

	tests := []struct {
		name string
		cat  models.RoutineCategory
		in   AddScheduleInput
	}{
		{"missing label", models.RoutineExercise, AddScheduleInput{Time: "07:00", Icon: models.IconExercise}},
		{"bad time", models.RoutineExercise, AddScheduleInput{Label: "Run", Time: "7am", Icon: models.IconExercise}},
		{"unknown icon", models.RoutineExercise, AddScheduleInput{Label: "Run", Time: "07:00", Icon: "sneaker"}},
		{"unknown category", "chores", AddScheduleInput{Label: "Run", Time: "07:00", Icon: models.IconExercise}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.AddSchedule(testUser, goal.ID, tt.cat, tt.in); err == nil {
				t.Error("expected rejection")
			}
		})
	}
}

func TestAddSchedule_DefaultsDuration(t *testing.T) {
	svc := newTestService(t)
	goal := newTestGoal(t, svc)

	item, err := svc.AddSchedule(testUser, goal.ID, models.RoutineNap, AddScheduleInput{
		Label: "Power nap", Time: "14:00", Icon: models.IconNap,
	})
	if err != nil {
		t.Fatalf("AddSchedule failed: %v", err)
	}
	if item.DurationMin <= 0 {
		t.Errorf("expected default duration, got %d", item.DurationMin)
	}
}

func TestLogWater_ClampsAtZero(t *testing.T) {
	svc := newTestService(t)
	goal := newTestGoal(t, svc)

	water, err := svc.LogWater(testUser, goal.ID, 3)
	if err != nil {
		t.Fatalf("LogWater failed: %v", err)
	}
	if water.Completed != 3 {
		t.Errorf("expected 3 glasses, got %d", water.Completed)
	}

	water, err = svc.LogWater(testUser, goal.ID, -10)
	if err != nil {
		t.Fatalf("LogWater failed: %v", err)
	}
	if water.Completed != 0 {
		t.Errorf("expected count clamped at zero, got %d", water.Completed)
	}
}

func TestSetSleep_PartialUpdate(t *testing.T) {
	svc := newTestService(t)
	goal := newTestGoal(t, svc)

	if err := svc.SetSleep(testUser, goal.ID, "22:30", "06:30"); err != nil {
		t.Fatalf("SetSleep failed: %v", err)
	}
	// Updating only the wake time keeps the bedtime
	if err := svc.SetSleep(testUser, goal.ID, "", "07:00"); err != nil {
		t.Fatalf("SetSleep failed: %v", err)
	}

	got, _ := svc.Goal(testUser, goal.ID)
	if got.Routines.Sleep.Bedtime != "22:30" || got.Routines.Sleep.WakeTime != "07:00" {
		t.Errorf("unexpected sleep window: %+v", got.Routines.Sleep)
	}
}

func TestUpdateSchedule_EditsInPlace(t *testing.T) {
	svc := newTestService(t)
	goal := newTestGoal(t, svc)

	item, _ := svc.AddSchedule(testUser, goal.ID, models.RoutineMeal, AddScheduleInput{
		Label: "Lunch", Time: "12:00", DurationMin: 30, Icon: models.IconMeal,
	})

	newTime := "13:00"
	newDur := 45
	err := svc.UpdateSchedule(testUser, goal.ID, models.RoutineMeal, item.ID, UpdateScheduleInput{
		Time: &newTime, DurationMin: &newDur,
	})
	if err != nil {
		t.Fatalf("UpdateSchedule failed: %v", err)
	}

	got, _ := svc.Goal(testUser, goal.ID)
	lunch := got.Routines.Meals[0]
	if lunch.Time != "13:00" || lunch.DurationMin != 45 || lunch.Label != "Lunch" {
		t.Errorf("unexpected schedule after update: %+v", lunch)
	}
}
