package gen

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/workseed/workseed/pkg/idgen"
	"github.com/workseed/workseed/pkg/model"
	"github.com/workseed/workseed/pkg/textgen"
	"github.com/workseed/workseed/pkg/timegen"
)

// DefaultCompletionRates holds the fraction of tasks completed per project
// archetype, calibrated to observed workspace behavior.
var DefaultCompletionRates = map[model.ProjectType]float64{
	model.ProjectSprint:      0.75,
	model.ProjectBugTracking: 0.65,
	model.ProjectRoadmap:     0.55,
	model.ProjectMarketing:   0.65,
	model.ProjectOperational: 0.50,
	model.ProjectOngoing:     0.45,
}

const defaultCompletionRate = 0.50

var (
	priorities      = []int{model.PriorityUrgent, model.PriorityHigh, model.PriorityNormal, model.PriorityLow}
	priorityWeights = []float64{0.10, 0.25, 0.50, 0.15}

	descriptionTiers       = []string{"short", "medium", "long"}
	descriptionTierWeights = []float64{0.35, 0.40, 0.25}

	sprintEstimates = []float64{1, 2, 4, 5, 8, 13}
)

// TaskGenerator produces work items conditioned on their project's
// archetype: content, assignment, due and completion dates, priority and
// estimates all follow per-type distributions.
type TaskGenerator struct {
	rng             *rand.Rand
	ids             *idgen.Allocator
	sampler         *timegen.Sampler
	text            textgen.Generator
	completionRates map[model.ProjectType]float64
	unassignedProb  float64
	now             func() time.Time
}

func NewTaskGenerator(rng *rand.Rand, ids *idgen.Allocator, sampler *timegen.Sampler, text textgen.Generator,
	completionRates map[model.ProjectType]float64, unassignedProb float64) *TaskGenerator {
	if completionRates == nil {
		completionRates = DefaultCompletionRates
	}
	return &TaskGenerator{
		rng:             rng,
		ids:             ids,
		sampler:         sampler,
		text:            text,
		completionRates: completionRates,
		unassignedProb:  unassignedProb,
		now:             time.Now,
	}
}

func (g *TaskGenerator) Generate(ctx context.Context, projects []model.Project, sectionsByProject map[string][]model.Section,
	users []model.User, count int, start, end time.Time) []model.Task {
	tasks := make([]model.Task, 0, count)

	for i := 0; i < count; i++ {
		project := projects[g.rng.Intn(len(projects))]
		creator := users[g.rng.Intn(len(users))]

		var sectionID *string
		if sections := sectionsByProject[project.ID]; len(sections) > 0 {
			id := sections[g.rng.Intn(len(sections))].ID
			sectionID = &id
		}

		createdAt := g.sampler.CreatedAt(start, end)
		name := g.taskName(ctx, project)

		var assigneeID *string
		if g.rng.Float64() > g.unassignedProb {
			id := users[g.rng.Intn(len(users))].ID
			assigneeID = &id
		}

		completed := g.rng.Float64() < g.completionRate(project.ProjectType)
		var completedAt *time.Time
		if completed {
			// A task created in the future cannot already be done.
			if createdAt.Before(g.now()) {
				t := g.sampler.CompletedAt(createdAt, project.ProjectType)
				completedAt = &t
			} else {
				completed = false
			}
		}

		var estimatedHours *float64
		if project.ProjectType == model.ProjectSprint {
			h := sprintEstimates[g.rng.Intn(len(sprintEstimates))]
			estimatedHours = &h
		}

		tasks = append(tasks, model.Task{
			ID:             g.ids.Allocate(idgen.KindTask),
			ProjectID:      project.ID,
			SectionID:      sectionID,
			Name:           name,
			Description:    g.taskDescription(ctx, name, project),
			CreatedAt:      createdAt,
			CreatedBy:      creator.ID,
			AssigneeID:     assigneeID,
			DueDate:        g.sampler.DueDate(createdAt, start, end, project.ProjectType),
			Completed:      completed,
			CompletedAt:    completedAt,
			Priority:       priorities[weightedIndex(g.rng, priorityWeights)],
			EstimatedHours: estimatedHours,
		})
	}
	return tasks
}

func (g *TaskGenerator) taskName(ctx context.Context, project model.Project) string {
	category := textgen.CategoryFor(project.ProjectType)
	template := textgen.PickTemplate(g.rng, category)

	return g.text.Generate(ctx, textgen.Request{
		Kind:        textgen.KindTaskName,
		Template:    template,
		ProjectType: project.ProjectType,
		ProjectName: project.Name,
		Temperature: 0.7,
		MaxTokens:   100,
		CacheKey:    nameCacheKey(project.ProjectType, template),
	})
}

// Descriptions are skipped for 20% of tasks; the rest draw a length tier
// that shapes either the delegated prompt or the deterministic fallback.
func (g *TaskGenerator) taskDescription(ctx context.Context, taskName string, project model.Project) *string {
	if g.rng.Float64() < 0.20 {
		return nil
	}

	tier := descriptionTiers[weightedIndex(g.rng, descriptionTierWeights)]
	text := g.text.Generate(ctx, textgen.Request{
		Kind:        textgen.KindDescription,
		ProjectType: project.ProjectType,
		ProjectName: project.Name,
		TaskName:    taskName,
		Tier:        tier,
		Temperature: 0.7,
		MaxTokens:   300,
	})
	return &text
}

func (g *TaskGenerator) completionRate(projectType model.ProjectType) float64 {
	if rate, ok := g.completionRates[projectType]; ok {
		return rate
	}
	return defaultCompletionRate
}

func nameCacheKey(projectType model.ProjectType, template string) string {
	h := fnv.New64a()
	h.Write([]byte(template))
	return fmt.Sprintf("task_name_%s_%x", projectType, h.Sum64())
}
