package gen

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/workseed/workseed/pkg/idgen"
	"github.com/workseed/workseed/pkg/timegen"
)

var (
	testStart = time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)
	testEnd   = time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)
)

func newTestDeps(seed int64) (*rand.Rand, *idgen.Allocator, *timegen.Sampler) {
	rng := rand.New(rand.NewSource(seed))
	return rng, idgen.NewAllocator(), timegen.NewSampler(rng)
}

func TestOrganizationGenerator(t *testing.T) {
	rng, ids, sampler := newTestDeps(1)
	g := NewOrganizationGenerator(rng, ids, sampler, "")

	orgs := g.Generate(3, testStart, testEnd)
	if len(orgs) != 3 {
		t.Fatalf("expected 3 organizations, got %d", len(orgs))
	}

	names := make(map[string]struct{})
	for _, org := range orgs {
		if _, dup := names[org.Name]; dup {
			t.Fatalf("duplicate organization name %q", org.Name)
		}
		names[org.Name] = struct{}{}

		if !strings.HasSuffix(org.Domain, ".com") {
			t.Fatalf("unexpected domain %q", org.Domain)
		}
		if strings.Contains(org.Domain, " ") || org.Domain != strings.ToLower(org.Domain) {
			t.Fatalf("domain %q not normalized", org.Domain)
		}
		if org.EmployeeCount <= 0 {
			t.Fatalf("employee count %d not positive", org.EmployeeCount)
		}
		if org.CreatedAt.Before(testStart) {
			t.Fatalf("created %v before window start", org.CreatedAt)
		}
	}
}

func TestTeamGeneratorUniqueNames(t *testing.T) {
	rng, ids, sampler := newTestDeps(2)
	g := NewTeamGenerator(rng, ids, sampler, "")

	teams := g.Generate("org_abc", 15, testStart, testEnd)
	if len(teams) != 15 {
		t.Fatalf("expected 15 teams, got %d", len(teams))
	}

	names := make(map[string]struct{})
	for _, team := range teams {
		if team.OrganizationID != "org_abc" {
			t.Fatalf("team %s attached to wrong organization %s", team.ID, team.OrganizationID)
		}
		if _, dup := names[team.Name]; dup {
			t.Fatalf("duplicate team name %q", team.Name)
		}
		names[team.Name] = struct{}{}
		if team.LeadUserID != nil {
			t.Fatalf("lead assigned before memberships exist")
		}
	}
}

func TestTeamGeneratorCapsAtPoolSize(t *testing.T) {
	rng, ids, sampler := newTestDeps(3)
	g := NewTeamGenerator(rng, ids, sampler, "")

	teams := g.Generate("org_abc", 1000, testStart, testEnd)
	if len(teams) == 1000 {
		t.Fatalf("expected draw capped at pool size, got %d", len(teams))
	}
	if len(teams) == 0 {
		t.Fatal("expected a non-empty capped draw")
	}
}
