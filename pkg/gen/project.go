package gen

import (
	"math/rand"
	"time"

	"github.com/workseed/workseed/pkg/idgen"
	"github.com/workseed/workseed/pkg/model"
	"github.com/workseed/workseed/pkg/namepool"
	"github.com/workseed/workseed/pkg/timegen"
)

type ProjectGenerator struct {
	rng      *rand.Rand
	ids      *idgen.Allocator
	sampler  *timegen.Sampler
	projects *namepool.Pool
}

func NewProjectGenerator(rng *rand.Rand, ids *idgen.Allocator, sampler *timegen.Sampler, dataDir string) *ProjectGenerator {
	return &ProjectGenerator{
		rng:      rng,
		ids:      ids,
		sampler:  sampler,
		projects: namepool.Load(dataDir, "project_names.txt", namepool.DefaultProjectNames),
	}
}

func (g *ProjectGenerator) Generate(organizationID string, teams []model.Team, users []model.User, count int, start, end time.Time) []model.Project {
	names := g.projects.Draw(g.rng, count)
	projects := make([]model.Project, 0, len(names))

	for _, name := range names {
		var teamID *string
		if len(teams) > 0 {
			id := teams[g.rng.Intn(len(teams))].ID
			teamID = &id
		}

		status := model.ProjectActive
		if g.rng.Float64() < 0.25 {
			status = model.ProjectArchived
		}

		projects = append(projects, model.Project{
			ID:             g.ids.Allocate(idgen.KindProject),
			OrganizationID: organizationID,
			TeamID:         teamID,
			OwnerID:        users[g.rng.Intn(len(users))].ID,
			Name:           name,
			Status:         status,
			ProjectType:    model.ProjectTypes[g.rng.Intn(len(model.ProjectTypes))],
			IsArchived:     g.rng.Float64() < 0.15,
			CreatedAt:      g.sampler.CreatedAt(start, end),
		})
	}
	return projects
}

// Canonical stage lists per project archetype. Unknown types get a generic
// three-stage board.
var sectionsByType = map[model.ProjectType][]string{
	model.ProjectSprint:      {"Backlog", "Ready", "In Progress", "Review", "Done"},
	model.ProjectRoadmap:     {"Q4 2024", "Q1 2025", "Future", "On Hold"},
	model.ProjectBugTracking: {"New", "Assigned", "In Progress", "Testing", "Resolved"},
	model.ProjectMarketing:   {"Ideation", "Planning", "Execution", "Review", "Complete"},
	model.ProjectOperational: {"To Do", "In Progress", "Complete"},
	model.ProjectOngoing:     {"Backlog", "Active", "Complete"},
}

var genericSections = []string{"To Do", "Doing", "Done"}

// SectionGenerator derives each project's stage list deterministically from
// its archetype. Sections share the project's creation timestamp.
type SectionGenerator struct {
	ids *idgen.Allocator
}

func NewSectionGenerator(ids *idgen.Allocator) *SectionGenerator {
	return &SectionGenerator{ids: ids}
}

func (g *SectionGenerator) Generate(projects []model.Project) []model.Section {
	sections := make([]model.Section, 0, len(projects)*4)

	for _, project := range projects {
		names, ok := sectionsByType[project.ProjectType]
		if !ok {
			names = genericSections
		}
		for order, name := range names {
			sections = append(sections, model.Section{
				ID:           g.ids.Allocate(idgen.KindSection),
				ProjectID:    project.ID,
				Name:         name,
				DisplayOrder: order,
				CreatedAt:    project.CreatedAt,
			})
		}
	}
	return sections
}
