package store

import (
	"context"

	"github.com/workseed/workseed/pkg/model"
)

// BatchSize is the number of rows written per insert batch.
const BatchSize = 100

// Tables lists every persisted table in dependency order.
var Tables = []string{
	"organizations", "teams", "users", "team_memberships",
	"projects", "sections", "tasks", "subtasks", "comments",
	"custom_field_definitions", "custom_field_values", "tags", "task_tags",
}

// Sink receives each completed generation stage's records. Implementations
// insert in batches; a partial failure aborts the run.
type Sink interface {
	InsertOrganizations(ctx context.Context, records []model.Organization) error
	InsertTeams(ctx context.Context, records []model.Team) error
	InsertUsers(ctx context.Context, records []model.User) error
	InsertTeamMemberships(ctx context.Context, records []model.TeamMembership) error
	InsertProjects(ctx context.Context, records []model.Project) error
	InsertSections(ctx context.Context, records []model.Section) error
	InsertTasks(ctx context.Context, records []model.Task) error
	InsertSubtasks(ctx context.Context, records []model.Subtask) error
	InsertComments(ctx context.Context, records []model.Comment) error
	InsertCustomFieldDefinitions(ctx context.Context, records []model.CustomFieldDefinition) error
	InsertCustomFieldValues(ctx context.Context, records []model.CustomFieldValue) error
	InsertTags(ctx context.Context, records []model.Tag) error
	InsertTaskTags(ctx context.Context, records []model.TaskTag) error
}

// Reader loads persisted data back for validation and reporting.
type Reader interface {
	Counts(ctx context.Context) (map[string]int64, error)
	Snapshot(ctx context.Context) (*Snapshot, error)
}

// Store is a full persistence backend.
type Store interface {
	Sink
	Reader
	Close() error
}

// Snapshot is one full read-back of a persisted dataset.
type Snapshot struct {
	Organizations          []model.Organization
	Teams                  []model.Team
	Users                  []model.User
	TeamMemberships        []model.TeamMembership
	Projects               []model.Project
	Sections               []model.Section
	Tasks                  []model.Task
	Subtasks               []model.Subtask
	Comments               []model.Comment
	CustomFieldDefinitions []model.CustomFieldDefinition
	CustomFieldValues      []model.CustomFieldValue
	Tags                   []model.Tag
	TaskTags               []model.TaskTag
}

// Counts returns per-table record counts for the snapshot.
func (s *Snapshot) Counts() map[string]int64 {
	return map[string]int64{
		"organizations":            int64(len(s.Organizations)),
		"teams":                    int64(len(s.Teams)),
		"users":                    int64(len(s.Users)),
		"team_memberships":         int64(len(s.TeamMemberships)),
		"projects":                 int64(len(s.Projects)),
		"sections":                 int64(len(s.Sections)),
		"tasks":                    int64(len(s.Tasks)),
		"subtasks":                 int64(len(s.Subtasks)),
		"comments":                 int64(len(s.Comments)),
		"custom_field_definitions": int64(len(s.CustomFieldDefinitions)),
		"custom_field_values":      int64(len(s.CustomFieldValues)),
		"tags":                     int64(len(s.Tags)),
		"task_tags":                int64(len(s.TaskTags)),
	}
}
