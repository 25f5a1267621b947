package gen

import (
	"testing"

	"github.com/workseed/workseed/pkg/model"
)

func TestProjectGenerator(t *testing.T) {
	rng, ids, sampler := newTestDeps(20)

	teams := NewTeamGenerator(rng, ids, sampler, "").Generate("org_abc", 5, testStart, testEnd)
	users := NewUserGenerator(rng, ids, sampler).Generate("org_abc", 50, testStart, testEnd)
	teamIDs := make(map[string]struct{})
	for _, team := range teams {
		teamIDs[team.ID] = struct{}{}
	}
	userIDs := make(map[string]struct{})
	for _, user := range users {
		userIDs[user.ID] = struct{}{}
	}

	projects := NewProjectGenerator(rng, ids, sampler, "").Generate("org_abc", teams, users, 30, testStart, testEnd)
	if len(projects) != 30 {
		t.Fatalf("expected 30 projects, got %d", len(projects))
	}

	names := make(map[string]struct{})
	for _, project := range projects {
		if _, dup := names[project.Name]; dup {
			t.Fatalf("duplicate project name %q", project.Name)
		}
		names[project.Name] = struct{}{}

		if project.TeamID == nil {
			t.Fatalf("project %s has no team despite teams existing", project.ID)
		}
		if _, ok := teamIDs[*project.TeamID]; !ok {
			t.Fatalf("project %s references unknown team %s", project.ID, *project.TeamID)
		}
		if _, ok := userIDs[project.OwnerID]; !ok {
			t.Fatalf("project %s references unknown owner %s", project.ID, project.OwnerID)
		}
		if project.Status != model.ProjectActive && project.Status != model.ProjectArchived {
			t.Fatalf("unexpected status %q", project.Status)
		}
	}
}

func TestProjectGeneratorWithoutTeams(t *testing.T) {
	rng, ids, sampler := newTestDeps(21)
	users := NewUserGenerator(rng, ids, sampler).Generate("org_abc", 20, testStart, testEnd)

	projects := NewProjectGenerator(rng, ids, sampler, "").Generate("org_abc", nil, users, 10, testStart, testEnd)
	for _, project := range projects {
		if project.TeamID != nil {
			t.Fatalf("project %s has a team with none defined", project.ID)
		}
	}
}

func TestSectionGeneratorStagesPerArchetype(t *testing.T) {
	rng, ids, sampler := newTestDeps(22)
	users := NewUserGenerator(rng, ids, sampler).Generate("org_abc", 20, testStart, testEnd)

	projects := NewProjectGenerator(rng, ids, sampler, "").Generate("org_abc", nil, users, 40, testStart, testEnd)
	sections := NewSectionGenerator(ids).Generate(projects)

	byProject := make(map[string][]model.Section)
	for _, section := range sections {
		byProject[section.ProjectID] = append(byProject[section.ProjectID], section)
	}

	for _, project := range projects {
		stages := byProject[project.ID]
		want := sectionsByType[project.ProjectType]
		if len(stages) != len(want) {
			t.Fatalf("project %s (%s) has %d sections, want %d",
				project.ID, project.ProjectType, len(stages), len(want))
		}
		for i, section := range stages {
			if section.Name != want[i] {
				t.Fatalf("section %d of %s is %q, want %q", i, project.ProjectType, section.Name, want[i])
			}
			if section.DisplayOrder != i {
				t.Fatalf("section %q has display order %d, want %d", section.Name, section.DisplayOrder, i)
			}
			if !section.CreatedAt.Equal(project.CreatedAt) {
				t.Fatalf("section %q created %v, project created %v", section.Name, section.CreatedAt, project.CreatedAt)
			}
		}
	}
}
