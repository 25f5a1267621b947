package config

import (
	"testing"
	"time"
)

func TestWindow(t *testing.T) {
	sim := SimulationConfig{StartDate: "2023-07-01", EndDate: "2024-01-07"}

	start, end, err := sim.Window()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !start.Equal(time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start %v", start)
	}
	if !end.Equal(time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected end %v", end)
	}
}

func TestWindowRejectsInvalidDates(t *testing.T) {
	sim := SimulationConfig{StartDate: "July 1st", EndDate: "2024-01-07"}
	if _, _, err := sim.Window(); err == nil {
		t.Fatal("expected error for malformed start date")
	}

	sim = SimulationConfig{StartDate: "2024-01-07", EndDate: "2023-07-01"}
	if _, _, err := sim.Window(); err == nil {
		t.Fatal("expected error for inverted window")
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Generation.TaskCount != 5000 {
		t.Fatalf("expected default task count 5000, got %d", cfg.Generation.TaskCount)
	}
	if cfg.Generation.UnassignedProbability != 0.15 {
		t.Fatalf("expected default unassigned probability 0.15, got %f", cfg.Generation.UnassignedProbability)
	}
	if cfg.Storage.Driver != "sqlite" {
		t.Fatalf("expected default sqlite driver, got %q", cfg.Storage.Driver)
	}
	if cfg.Generation.CompletionRates["sprint"] != 0.75 {
		t.Fatalf("expected default sprint completion rate 0.75, got %f", cfg.Generation.CompletionRates["sprint"])
	}
}
