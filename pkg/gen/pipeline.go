package gen

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/workseed/workseed/pkg/config"
	"github.com/workseed/workseed/pkg/idgen"
	"github.com/workseed/workseed/pkg/metrics"
	"github.com/workseed/workseed/pkg/model"
	"github.com/workseed/workseed/pkg/store"
	"github.com/workseed/workseed/pkg/textgen"
	"github.com/workseed/workseed/pkg/timegen"
)

// ErrNoOrganizations aborts a run: nothing downstream can be generated
// without the root entity.
var ErrNoOrganizations = errors.New("no organizations generated")

// Pipeline sequences the entity generators in dependency order, threading
// each stage's output into the next and handing completed stages to the
// persistence sink.
type Pipeline struct {
	cfg    *config.GenerationConfig
	start  time.Time
	end    time.Time
	sink   store.Sink
	text   textgen.Generator
	rng    *rand.Rand
	logger *zap.Logger
}

func NewPipeline(cfg *config.Config, sink store.Sink, text textgen.Generator, rng *rand.Rand, logger *zap.Logger) (*Pipeline, error) {
	start, end, err := cfg.Simulation.Window()
	if err != nil {
		return nil, err
	}
	if cfg.Generation.UserCount <= 0 {
		return nil, fmt.Errorf("user count must be positive, got %d", cfg.Generation.UserCount)
	}
	if cfg.Generation.ProjectCount <= 0 {
		return nil, fmt.Errorf("project count must be positive, got %d", cfg.Generation.ProjectCount)
	}

	return &Pipeline{
		cfg:    &cfg.Generation,
		start:  start,
		end:    end,
		sink:   sink,
		text:   text,
		rng:    rng,
		logger: logger,
	}, nil
}

// Run executes one full generation pass and returns per-table record counts.
func (p *Pipeline) Run(ctx context.Context) (map[string]int64, error) {
	ids := idgen.NewAllocator()
	sampler := timegen.NewSampler(p.rng)
	dataDir := p.cfg.DataDir
	counts := make(map[string]int64, len(store.Tables))

	organizations := NewOrganizationGenerator(p.rng, ids, sampler, dataDir).
		Generate(p.cfg.OrganizationCount, p.start, p.end)
	if len(organizations) == 0 {
		return nil, ErrNoOrganizations
	}
	if err := p.persist(ctx, counts, "organizations", len(organizations), func() error {
		return p.sink.InsertOrganizations(ctx, organizations)
	}); err != nil {
		return nil, err
	}

	// All downstream entities attach to the first organization.
	orgID := organizations[0].ID

	teams := NewTeamGenerator(p.rng, ids, sampler, dataDir).
		Generate(orgID, p.cfg.TeamCount, p.start, p.end)

	users := NewUserGenerator(p.rng, ids, sampler).
		Generate(orgID, p.cfg.UserCount, p.start, p.end)
	if err := p.persist(ctx, counts, "users", len(users), func() error {
		return p.sink.InsertUsers(ctx, users)
	}); err != nil {
		return nil, err
	}

	memberships := NewMembershipGenerator(p.rng, ids, sampler).
		Generate(teams, users, p.start)
	if err := p.persist(ctx, counts, "team_memberships", len(memberships), func() error {
		return p.sink.InsertTeamMemberships(ctx, memberships)
	}); err != nil {
		return nil, err
	}

	// Teams persist only now: lead resolution depends on memberships, which
	// depend on the teams already existing in memory.
	teams = ApplyTeamLeads(teams, memberships)
	if err := p.persist(ctx, counts, "teams", len(teams), func() error {
		return p.sink.InsertTeams(ctx, teams)
	}); err != nil {
		return nil, err
	}

	projects := NewProjectGenerator(p.rng, ids, sampler, dataDir).
		Generate(orgID, teams, users, p.cfg.ProjectCount, p.start, p.end)
	if err := p.persist(ctx, counts, "projects", len(projects), func() error {
		return p.sink.InsertProjects(ctx, projects)
	}); err != nil {
		return nil, err
	}

	sections := NewSectionGenerator(ids).Generate(projects)
	if err := p.persist(ctx, counts, "sections", len(sections), func() error {
		return p.sink.InsertSections(ctx, sections)
	}); err != nil {
		return nil, err
	}

	sectionsByProject := make(map[string][]model.Section, len(projects))
	for _, section := range sections {
		sectionsByProject[section.ProjectID] = append(sectionsByProject[section.ProjectID], section)
	}

	tasks := NewTaskGenerator(p.rng, ids, sampler, p.text, p.completionRates(), p.cfg.UnassignedProbability).
		Generate(ctx, projects, sectionsByProject, users, p.cfg.TaskCount, p.start, p.end)
	if err := p.persist(ctx, counts, "tasks", len(tasks), func() error {
		return p.sink.InsertTasks(ctx, tasks)
	}); err != nil {
		return nil, err
	}

	subtasks := NewSubtaskGenerator(p.rng, ids, p.cfg.SubtaskProbability, p.cfg.SubtaskCount).
		Generate(tasks, users)
	if err := p.persist(ctx, counts, "subtasks", len(subtasks), func() error {
		return p.sink.InsertSubtasks(ctx, subtasks)
	}); err != nil {
		return nil, err
	}

	comments := NewCommentGenerator(p.rng, ids, sampler, p.cfg.CommentProbability, p.cfg.CommentCount).
		Generate(tasks, users)
	if err := p.persist(ctx, counts, "comments", len(comments), func() error {
		return p.sink.InsertComments(ctx, comments)
	}); err != nil {
		return nil, err
	}

	fields := NewCustomFieldGenerator(p.rng, ids)
	definitions := fields.GenerateDefinitions(orgID)
	if err := p.persist(ctx, counts, "custom_field_definitions", len(definitions), func() error {
		return p.sink.InsertCustomFieldDefinitions(ctx, definitions)
	}); err != nil {
		return nil, err
	}

	fieldValues := fields.GenerateValues(tasks, definitions)
	if err := p.persist(ctx, counts, "custom_field_values", len(fieldValues), func() error {
		return p.sink.InsertCustomFieldValues(ctx, fieldValues)
	}); err != nil {
		return nil, err
	}

	tagGen := NewTagGenerator(p.rng, ids)
	tags := tagGen.Generate(orgID, users)
	if err := p.persist(ctx, counts, "tags", len(tags), func() error {
		return p.sink.InsertTags(ctx, tags)
	}); err != nil {
		return nil, err
	}

	taskTags := tagGen.GenerateTaskTags(tasks, tags)
	if err := p.persist(ctx, counts, "task_tags", len(taskTags), func() error {
		return p.sink.InsertTaskTags(ctx, taskTags)
	}); err != nil {
		return nil, err
	}

	return counts, nil
}

func (p *Pipeline) persist(ctx context.Context, counts map[string]int64, table string, count int, insert func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	started := time.Now()
	if err := insert(); err != nil {
		return fmt.Errorf("persist %s: %w", table, err)
	}

	metrics.EntitiesGeneratedTotal.WithLabelValues(table).Add(float64(count))
	metrics.GenerationDuration.WithLabelValues(table).Observe(time.Since(started).Seconds())
	p.logger.Info("stage complete", zap.String("table", table), zap.Int("count", count))
	counts[table] = int64(count)
	return nil
}

func (p *Pipeline) completionRates() map[model.ProjectType]float64 {
	rates := make(map[model.ProjectType]float64, len(DefaultCompletionRates))
	for projectType, rate := range DefaultCompletionRates {
		rates[projectType] = rate
	}
	for name, rate := range p.cfg.CompletionRates {
		rates[model.ProjectType(name)] = rate
	}
	return rates
}
