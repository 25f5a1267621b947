package gen

import (
	"context"
	"math/rand"
	"testing"

	"go.uber.org/zap"

	"github.com/workseed/workseed/pkg/config"
	"github.com/workseed/workseed/pkg/store/memory"
	"github.com/workseed/workseed/pkg/textgen"
	"github.com/workseed/workseed/pkg/validate"
)

func testConfig() *config.Config {
	return &config.Config{
		Generation: config.GenerationConfig{
			OrganizationCount:     1,
			TeamCount:             3,
			UserCount:             40,
			ProjectCount:          8,
			TaskCount:             300,
			SubtaskProbability:    0.35,
			CommentProbability:    0.60,
			UnassignedProbability: 0.15,
		},
		Simulation: config.SimulationConfig{
			StartDate: "2023-07-01",
			EndDate:   "2024-01-07",
		},
	}
}

func TestPipelineRun(t *testing.T) {
	cfg := testConfig()
	rng := rand.New(rand.NewSource(100))
	sink := memory.NewStore()
	text := textgen.NewTemplateGenerator(rng)

	pipeline, err := NewPipeline(cfg, sink, text, rng, zap.NewNop())
	if err != nil {
		t.Fatalf("failed to build pipeline: %v", err)
	}

	counts, err := pipeline.Run(context.Background())
	if err != nil {
		t.Fatalf("pipeline run failed: %v", err)
	}

	if counts["organizations"] != 1 {
		t.Fatalf("expected 1 organization, got %d", counts["organizations"])
	}
	if counts["teams"] != 3 {
		t.Fatalf("expected 3 teams, got %d", counts["teams"])
	}
	if counts["users"] != 40 {
		t.Fatalf("expected 40 users, got %d", counts["users"])
	}
	if counts["projects"] != 8 {
		t.Fatalf("expected 8 projects, got %d", counts["projects"])
	}
	if counts["tasks"] != 300 {
		t.Fatalf("expected 300 tasks, got %d", counts["tasks"])
	}
	if counts["sections"] == 0 || counts["team_memberships"] == 0 {
		t.Fatal("expected sections and memberships")
	}

	snap, err := sink.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("failed to read snapshot: %v", err)
	}

	// Every team ends up with a resolved lead drawn from its memberships.
	for _, team := range snap.Teams {
		if team.LeadUserID == nil {
			t.Fatalf("team %s persisted without a lead", team.ID)
		}
	}

	report := validate.Run(snap)
	for _, issue := range report.Issues {
		if issue.Severity == validate.SeverityError {
			t.Fatalf("generated dataset failed validation: %s %s: %s",
				issue.Table, issue.RecordID, issue.Message)
		}
	}
}

func TestPipelineContextCancellation(t *testing.T) {
	cfg := testConfig()
	rng := rand.New(rand.NewSource(101))
	sink := memory.NewStore()
	text := textgen.NewTemplateGenerator(rng)

	pipeline, err := NewPipeline(cfg, sink, text, rng, zap.NewNop())
	if err != nil {
		t.Fatalf("failed to build pipeline: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := pipeline.Run(ctx); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}

func TestPipelineAbortsWithoutOrganizations(t *testing.T) {
	cfg := testConfig()
	cfg.Generation.OrganizationCount = 0

	rng := rand.New(rand.NewSource(103))
	pipeline, err := NewPipeline(cfg, memory.NewStore(), textgen.NewTemplateGenerator(rng), rng, zap.NewNop())
	if err != nil {
		t.Fatalf("failed to build pipeline: %v", err)
	}

	if _, err := pipeline.Run(context.Background()); err != ErrNoOrganizations {
		t.Fatalf("expected ErrNoOrganizations, got %v", err)
	}
}

func TestPipelineRejectsBadWindow(t *testing.T) {
	cfg := testConfig()
	cfg.Simulation.EndDate = "2023-01-01"

	rng := rand.New(rand.NewSource(102))
	_, err := NewPipeline(cfg, memory.NewStore(), textgen.NewTemplateGenerator(rng), rng, zap.NewNop())
	if err == nil {
		t.Fatal("expected error for inverted simulation window")
	}
}
