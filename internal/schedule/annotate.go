package schedule

import (
	"sort"
	"time"

	"github.com/goalpost/goalpost/internal/models"
	"github.com/goalpost/goalpost/internal/timeutil"
)

// Status classifies a schedule item relative to the current instant.
type Status string

const (
	StatusCompleted  Status = "completed_today"
	StatusInProgress Status = "in_progress"
	StatusMissed     Status = "missed"
	StatusUpcoming   Status = "upcoming"
)

// Annotation is display-only derived state for one schedule item. It is
// recomputed from scratch on every tick and never written back to storage.
type Annotation struct {
	Item      models.ScheduledRoutine
	Status    Status
	StartsAt  time.Time
	Remaining time.Duration // only meaningful for StatusUpcoming
}

// RemainingLabel renders the time until an upcoming item as "Xh Ym".
func (a Annotation) RemainingLabel() string {
	return timeutil.FormatRemaining(a.Remaining)
}

// Annotate classifies each schedule item against now. Items are returned
// sorted ascending by time-of-day. The item's HH:MM time is combined with
// now's date, so yesterday's times are re-interpreted against today on every
// call. Items whose time fails to parse are skipped.
func Annotate(items []models.ScheduledRoutine, now time.Time) []Annotation {
	sorted := make([]models.ScheduledRoutine, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time < sorted[j].Time
	})

	annotations := make([]Annotation, 0, len(sorted))
	for _, item := range sorted {
		startsAt, err := timeutil.CombineWithDate(item.Time, now)
		if err != nil {
			continue
		}

		ann := Annotation{Item: item, StartsAt: startsAt}
		switch {
		case item.Completed:
			ann.Status = StatusCompleted
		case !startsAt.After(now):
			elapsed := now.Sub(startsAt)
			if elapsed < time.Duration(item.DurationMin)*time.Minute {
				ann.Status = StatusInProgress
			} else {
				ann.Status = StatusMissed
			}
		default:
			ann.Status = StatusUpcoming
			ann.Remaining = startsAt.Sub(now)
		}

		annotations = append(annotations, ann)
	}

	return annotations
}

// Next returns the nearest future, not-yet-completed schedule item, for
// highlighting and reminders. ok is false when nothing is upcoming.
func Next(items []models.ScheduledRoutine, now time.Time) (Annotation, bool) {
	for _, ann := range Annotate(items, now) {
		if ann.Status == StatusUpcoming {
			return ann, true
		}
	}
	return Annotation{}, false
}
