package timegen

import (
	"math"
	"math/rand"
	"time"

	"github.com/workseed/workseed/pkg/model"
)

// Sampler draws creation, due, and completion times from calibrated
// distributions. All randomness comes from the injected source so a run can
// be reproduced by seeding it.
type Sampler struct {
	rng *rand.Rand
	now func() time.Time
}

func NewSampler(rng *rand.Rand) *Sampler {
	return &Sampler{rng: rng, now: time.Now}
}

// Creation rates are higher Monday through Wednesday and drop off sharply on
// weekends. Weights are normalized against the Monday peak.
var dayWeights = map[time.Weekday]float64{
	time.Monday:    1.2,
	time.Tuesday:   1.2,
	time.Wednesday: 1.1,
	time.Thursday:  0.9,
	time.Friday:    0.8,
	time.Saturday:  0.5,
	time.Sunday:    0.3,
}

const maxDayWeight = 1.2

var dayShifts = []int{1, -1, 2, -2}

// CreatedAt samples a creation timestamp inside [start, end]: a uniform day
// re-weighted toward the early week, with a business-hour time of day.
func (s *Sampler) CreatedAt(start, end time.Time) time.Time {
	span := daysBetween(start, end)
	day := start.AddDate(0, 0, s.rng.Intn(span+1))

	if s.rng.Float64() > dayWeights[day.Weekday()]/maxDayWeight {
		day = day.AddDate(0, 0, dayShifts[s.rng.Intn(len(dayShifts))])
		if day.Before(start) {
			day = start
		}
		if day.After(end) {
			day = end
		}
	}

	return time.Date(day.Year(), day.Month(), day.Day(),
		9+s.rng.Intn(9), s.rng.Intn(60), s.rng.Intn(60), 0, time.UTC)
}

// DueDate draws a due date relative to the task's creation time:
// 10% none, 25% within a week, 40% within a month, 20% one to three months
// out, 5% already overdue. Most dates avoid weekends, and sprint projects
// cluster toward Friday boundaries. The result is clamped into the
// simulation window; a clamp that would land before the creation date
// triggers a full re-draw rather than a silent inversion.
func (s *Sampler) DueDate(createdAt, start, end time.Time, projectType model.ProjectType) *time.Time {
	for attempt := 0; attempt < 16; attempt++ {
		r := s.rng.Float64()
		var due time.Time
		switch {
		case r < 0.10:
			return nil
		case r < 0.35:
			due = createdAt.AddDate(0, 0, 1+s.rng.Intn(7))
		case r < 0.75:
			due = createdAt.AddDate(0, 0, 8+s.rng.Intn(23))
		case r < 0.95:
			due = createdAt.AddDate(0, 0, 31+s.rng.Intn(60))
		default:
			due = createdAt.AddDate(0, 0, -(1 + s.rng.Intn(30)))
		}

		if s.rng.Float64() < 0.85 {
			for due.Weekday() == time.Saturday || due.Weekday() == time.Sunday {
				due = due.AddDate(0, 0, 1)
			}
		}

		if projectType == model.ProjectSprint && s.rng.Float64() < 0.40 {
			untilFriday := (int(time.Friday) - int(due.Weekday()) + 7) % 7
			if untilFriday == 0 {
				untilFriday = 7
			}
			due = due.AddDate(0, 0, untilFriday)
		}

		if due.Before(start) {
			due = start.AddDate(0, 0, 1+s.rng.Intn(30))
		}
		if due.After(end) {
			due = end.AddDate(0, 0, -(1 + s.rng.Intn(30)))
		}

		if d := DateOf(due); !d.Before(DateOf(createdAt)) {
			return &d
		}
	}

	// The window left no room forward of the creation date; fall back to the
	// creation date itself rather than emit an inverted pair.
	d := DateOf(createdAt)
	return &d
}

// Completion ceilings in days per project archetype.
const (
	maxCompletionSprint  = 14
	maxCompletionBug     = 21
	maxCompletionDefault = 30
)

// CompletedAt draws an elapsed completion interval from a log-normal
// distribution (location ln 2.0, shape 1.2): most tasks finish within a few
// days, with a tail of long-running ones capped per archetype.
func (s *Sampler) CompletedAt(createdAt time.Time, projectType model.ProjectType) time.Time {
	maxDays := maxCompletionDefault
	switch projectType {
	case model.ProjectSprint:
		maxDays = maxCompletionSprint
	case model.ProjectBugTracking:
		maxDays = maxCompletionBug
	}

	elapsed := math.Exp(math.Log(2.0) + 1.2*s.rng.NormFloat64())
	days := int(elapsed)
	if days > maxDays {
		days = maxDays
	}

	return createdAt.AddDate(0, 0, days)
}

// DateCheck reports on the causal ordering of one task's timestamps.
type DateCheck struct {
	Valid   bool
	Unusual bool
	Reason  string
}

// ValidateTaskDates checks created/due/completed ordering. Completion after
// the due date is reported as unusual but still valid.
func ValidateTaskDates(createdAt time.Time, dueDate, completedAt *time.Time) DateCheck {
	if dueDate != nil && dueDate.Before(DateOf(createdAt)) {
		return DateCheck{Reason: "due date before creation date"}
	}
	if completedAt != nil && completedAt.Before(createdAt) {
		return DateCheck{Reason: "completed before creation"}
	}
	if dueDate != nil && completedAt != nil && DateOf(*completedAt).After(*dueDate) {
		return DateCheck{Valid: true, Unusual: true, Reason: "completed after due date"}
	}
	return DateCheck{Valid: true}
}

// DateOf truncates a timestamp to its UTC calendar date.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(start, end time.Time) int {
	d := int(end.Sub(start).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}
