package timegen

import (
	"math/rand"
	"testing"
	"time"

	"github.com/workseed/workseed/pkg/model"
)

var (
	windowStart = time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)
	windowEnd   = time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)
)

func TestCreatedAtWithinWindow(t *testing.T) {
	s := NewSampler(rand.New(rand.NewSource(1)))

	for i := 0; i < 2000; i++ {
		at := s.CreatedAt(windowStart, windowEnd)
		if at.Before(windowStart) || at.After(windowEnd.AddDate(0, 0, 1)) {
			t.Fatalf("timestamp %v outside window [%v, %v]", at, windowStart, windowEnd)
		}
		if at.Hour() < 9 || at.Hour() > 17 {
			t.Fatalf("timestamp %v outside business hours", at)
		}
	}
}

func TestCreatedAtFavorsEarlyWeek(t *testing.T) {
	s := NewSampler(rand.New(rand.NewSource(2)))

	counts := make(map[time.Weekday]int)
	for i := 0; i < 20000; i++ {
		counts[s.CreatedAt(windowStart, windowEnd).Weekday()]++
	}

	if counts[time.Monday] <= counts[time.Sunday] {
		t.Fatalf("expected more Monday than Sunday activity, got %d vs %d",
			counts[time.Monday], counts[time.Sunday])
	}
	if counts[time.Tuesday] <= counts[time.Saturday] {
		t.Fatalf("expected more Tuesday than Saturday activity, got %d vs %d",
			counts[time.Tuesday], counts[time.Saturday])
	}
}

func TestDueDateNeverBeforeCreation(t *testing.T) {
	s := NewSampler(rand.New(rand.NewSource(3)))

	for i := 0; i < 5000; i++ {
		createdAt := s.CreatedAt(windowStart, windowEnd)
		due := s.DueDate(createdAt, windowStart, windowEnd, model.ProjectSprint)
		if due == nil {
			continue
		}
		if due.Before(DateOf(createdAt)) {
			t.Fatalf("due date %v before creation %v", due, createdAt)
		}
		if due.Before(windowStart) || due.After(windowEnd) {
			t.Fatalf("due date %v outside window", due)
		}
	}
}

func TestDueDateSometimesAbsent(t *testing.T) {
	s := NewSampler(rand.New(rand.NewSource(4)))

	absent := 0
	total := 5000
	for i := 0; i < total; i++ {
		createdAt := s.CreatedAt(windowStart, windowEnd)
		if s.DueDate(createdAt, windowStart, windowEnd, model.ProjectOngoing) == nil {
			absent++
		}
	}

	rate := float64(absent) / float64(total)
	if rate < 0.05 || rate > 0.20 {
		t.Fatalf("absent due date rate %.3f outside expected band", rate)
	}
}

func TestCompletedAtRespectsCeilings(t *testing.T) {
	s := NewSampler(rand.New(rand.NewSource(5)))
	createdAt := time.Date(2023, 8, 14, 10, 30, 0, 0, time.UTC)

	for i := 0; i < 2000; i++ {
		done := s.CompletedAt(createdAt, model.ProjectSprint)
		if done.Before(createdAt) {
			t.Fatalf("completion %v before creation %v", done, createdAt)
		}
		if done.After(createdAt.AddDate(0, 0, maxCompletionSprint)) {
			t.Fatalf("sprint completion %v exceeds %d day ceiling", done, maxCompletionSprint)
		}
	}

	for i := 0; i < 2000; i++ {
		done := s.CompletedAt(createdAt, model.ProjectBugTracking)
		if done.After(createdAt.AddDate(0, 0, maxCompletionBug)) {
			t.Fatalf("bug tracking completion %v exceeds %d day ceiling", done, maxCompletionBug)
		}
	}
}

func TestValidateTaskDates(t *testing.T) {
	createdAt := time.Date(2023, 9, 4, 10, 0, 0, 0, time.UTC)
	day := func(offset int) *time.Time {
		d := DateOf(createdAt).AddDate(0, 0, offset)
		return &d
	}

	if check := ValidateTaskDates(createdAt, day(7), nil); !check.Valid || check.Unusual {
		t.Fatalf("expected clean result, got %+v", check)
	}

	if check := ValidateTaskDates(createdAt, day(-3), nil); check.Valid {
		t.Fatalf("expected invalid for due before creation, got %+v", check)
	}

	early := createdAt.AddDate(0, 0, -1)
	if check := ValidateTaskDates(createdAt, nil, &early); check.Valid {
		t.Fatalf("expected invalid for completion before creation, got %+v", check)
	}

	late := createdAt.AddDate(0, 0, 10)
	if check := ValidateTaskDates(createdAt, day(7), &late); !check.Valid || !check.Unusual {
		t.Fatalf("expected valid but unusual for late completion, got %+v", check)
	}
}
