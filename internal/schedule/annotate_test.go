package schedule

import (
	"testing"
	"time"

	"github.com/goalpost/goalpost/internal/models"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 8, 21, hour, min, 0, 0, time.UTC)
}

func TestAnnotate_ClassifiesAgainstNow(t *testing.T) {
	items := []models.ScheduledRoutine{
		{ID: "run", Time: "09:00", DurationMin: 30},
	}

	tests := []struct {
		name string
		now  time.Time
		want Status
	}{
		{"before start", at(8, 0), StatusUpcoming},
		{"at start", at(9, 0), StatusInProgress},
		{"within duration", at(9, 15), StatusInProgress},
		{"after duration", at(9, 45), StatusMissed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anns := Annotate(items, tt.now)
			if len(anns) != 1 {
				t.Fatalf("expected 1 annotation, got %d", len(anns))
			}
			if anns[0].Status != tt.want {
				t.Errorf("at %s: expected %s, got %s", tt.now.Format("15:04"), tt.want, anns[0].Status)
			}
		})
	}
}

func TestAnnotate_CompletedWinsOverTime(t *testing.T) {
	items := []models.ScheduledRoutine{
		{ID: "run", Time: "09:00", DurationMin: 30, Completed: true},
	}

	anns := Annotate(items, at(14, 0))
	if anns[0].Status != StatusCompleted {
		t.Errorf("expected completed item to stay completed, got %s", anns[0].Status)
	}
}

func TestAnnotate_RemainingUntilStart(t *testing.T) {
	items := []models.ScheduledRoutine{
		{ID: "run", Time: "09:00", DurationMin: 30},
	}

	anns := Annotate(items, at(7, 45))
	if anns[0].Remaining != 75*time.Minute {
		t.Errorf("expected 75m remaining, got %s", anns[0].Remaining)
	}
	if anns[0].RemainingLabel() != "1h 15m" {
		t.Errorf("expected label \"1h 15m\", got %q", anns[0].RemainingLabel())
	}
}

func TestAnnotate_SortsByTimeOfDay(t *testing.T) {
	items := []models.ScheduledRoutine{
		{ID: "lunch", Time: "12:30", DurationMin: 45},
		{ID: "run", Time: "07:00", DurationMin: 30},
		{ID: "stretch", Time: "08:00", DurationMin: 15},
	}

	anns := Annotate(items, at(6, 0))
	want := []string{"run", "stretch", "lunch"}
	for i, id := range want {
		if anns[i].Item.ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, anns[i].Item.ID)
		}
	}
}

func TestAnnotate_SkipsUnparseableTimes(t *testing.T) {
	items := []models.ScheduledRoutine{
		{ID: "bad", Time: "noon", DurationMin: 30},
		{ID: "good", Time: "12:00", DurationMin: 30},
	}

	anns := Annotate(items, at(6, 0))
	if len(anns) != 1 || anns[0].Item.ID != "good" {
		t.Errorf("expected only the parseable item, got %d annotations", len(anns))
	}
}

func TestNext_ReturnsNearestUpcoming(t *testing.T) {
	items := []models.ScheduledRoutine{
		{ID: "run", Time: "07:00", DurationMin: 30},
		{ID: "lunch", Time: "12:30", DurationMin: 45},
		{ID: "dinner", Time: "19:00", DurationMin: 45},
	}

	next, ok := Next(items, at(10, 0))
	if !ok {
		t.Fatal("expected an upcoming item")
	}
	if next.Item.ID != "lunch" {
		t.Errorf("expected lunch next, got %s", next.Item.ID)
	}
}

func TestNext_NothingUpcoming(t *testing.T) {
	items := []models.ScheduledRoutine{
		{ID: "run", Time: "07:00", DurationMin: 30},
	}

	if _, ok := Next(items, at(23, 0)); ok {
		t.Error("expected no upcoming item late in the day")
	}
}
