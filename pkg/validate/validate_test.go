package validate

import (
	"strings"
	"testing"
	"time"

	"github.com/workseed/workseed/pkg/model"
	"github.com/workseed/workseed/pkg/store"
)

func ptr[T any](v T) *T {
	return &v
}

func cleanSnapshot() *store.Snapshot {
	created := time.Date(2023, 8, 7, 10, 0, 0, 0, time.UTC)
	due := time.Date(2023, 8, 21, 0, 0, 0, 0, time.UTC)
	completed := created.AddDate(0, 0, 3)

	return &store.Snapshot{
		Organizations: []model.Organization{
			{ID: "org_1", Name: "Acme", Domain: "acme.com", CreatedAt: created},
		},
		Teams: []model.Team{
			{ID: "team_1", OrganizationID: "org_1", Name: "Platform", LeadUserID: ptr("user_1"), CreatedAt: created},
		},
		Users: []model.User{
			{ID: "user_1", OrganizationID: "org_1", Email: "ana.silva@company.com", Name: "Ana Silva", CreatedAt: created},
			{ID: "user_2", OrganizationID: "org_1", Email: "ben.wu@company.com", Name: "Ben Wu", CreatedAt: created},
		},
		TeamMemberships: []model.TeamMembership{
			{ID: "membership_1", TeamID: "team_1", UserID: "user_1", JoinedAt: created, Role: model.RoleLead, IsActive: true},
			{ID: "membership_2", TeamID: "team_1", UserID: "user_2", JoinedAt: created, Role: model.RoleMember, IsActive: true},
		},
		Projects: []model.Project{
			{ID: "proj_1", OrganizationID: "org_1", TeamID: ptr("team_1"), OwnerID: "user_1",
				Name: "Atlas", Status: model.ProjectActive, ProjectType: model.ProjectSprint, CreatedAt: created},
		},
		Sections: []model.Section{
			{ID: "section_1", ProjectID: "proj_1", Name: "Backlog", DisplayOrder: 0, CreatedAt: created},
		},
		Tasks: []model.Task{
			{ID: "task_1", ProjectID: "proj_1", SectionID: ptr("section_1"), Name: "Implement caching layer",
				CreatedAt: created, CreatedBy: "user_1", AssigneeID: ptr("user_2"), DueDate: &due,
				Completed: true, CompletedAt: &completed, Priority: model.PriorityNormal, EstimatedHours: ptr(4.0)},
		},
		Subtasks: []model.Subtask{
			{ID: "subtask_1", ParentTaskID: "task_1", ProjectID: "proj_1", Name: "Implement caching layer - Subtask 1",
				CreatedAt: created.Add(10 * time.Minute), Completed: true, CompletedAt: &completed},
		},
		Comments: []model.Comment{
			{ID: "comment_1", TaskID: "task_1", UserID: "user_2", Text: "Looks good!", CreatedAt: created.Add(time.Hour)},
		},
		CustomFieldDefinitions: []model.CustomFieldDefinition{
			{ID: "field_1", OrganizationID: "org_1", Name: "Priority", FieldType: model.FieldSingleSelect, CreatedAt: created},
		},
		CustomFieldValues: []model.CustomFieldValue{
			{ID: "fieldval_1", CustomFieldID: "field_1", TaskID: "task_1", Value: "High", CreatedAt: created},
		},
		Tags: []model.Tag{
			{ID: "tag_1", OrganizationID: "org_1", Name: "backend", Color: "#4D96FF", CreatedAt: created, CreatedBy: "user_1"},
		},
		TaskTags: []model.TaskTag{
			{ID: "tasktag_1", TaskID: "task_1", TagID: "tag_1", AddedAt: created.Add(30 * time.Minute)},
		},
	}
}

func TestRunCleanSnapshot(t *testing.T) {
	report := Run(cleanSnapshot())
	if !report.OK() {
		t.Fatalf("expected clean report, got issues: %+v", report.Issues)
	}
	if report.Counts["tasks"] != 1 {
		t.Fatalf("expected 1 task counted, got %d", report.Counts["tasks"])
	}
}

func requireIssue(t *testing.T, report *Report, fragment string) {
	t.Helper()
	for _, issue := range report.Issues {
		if issue.Severity == SeverityError && strings.Contains(issue.Message, fragment) {
			return
		}
	}
	t.Fatalf("expected an error containing %q, got %+v", fragment, report.Issues)
}

func TestRunDetectsDanglingReferences(t *testing.T) {
	snap := cleanSnapshot()
	snap.Tasks[0].ProjectID = "proj_missing"
	requireIssue(t, Run(snap), "unknown project")

	snap = cleanSnapshot()
	snap.Comments[0].TaskID = "task_missing"
	requireIssue(t, Run(snap), "unknown task")

	snap = cleanSnapshot()
	snap.TeamMemberships[0].UserID = "user_missing"
	requireIssue(t, Run(snap), "unknown user")
}

func TestRunDetectsDuplicateEmail(t *testing.T) {
	snap := cleanSnapshot()
	snap.Users[1].Email = snap.Users[0].Email
	requireIssue(t, Run(snap), "duplicate email")
}

func TestRunDetectsMultipleLeads(t *testing.T) {
	snap := cleanSnapshot()
	snap.TeamMemberships[1].Role = model.RoleLead
	requireIssue(t, Run(snap), "lead memberships")
}

func TestRunDetectsTemporalViolations(t *testing.T) {
	snap := cleanSnapshot()
	early := snap.Tasks[0].CreatedAt.AddDate(0, 0, -2)
	snap.Tasks[0].CompletedAt = &early
	requireIssue(t, Run(snap), "completed before creation")

	snap = cleanSnapshot()
	badDue := snap.Tasks[0].CreatedAt.AddDate(0, 0, -5)
	snap.Tasks[0].DueDate = &badDue
	requireIssue(t, Run(snap), "due date before creation")

	snap = cleanSnapshot()
	snap.Subtasks[0].CreatedAt = snap.Tasks[0].CreatedAt.Add(-time.Hour)
	requireIssue(t, Run(snap), "created before parent")
}

func TestRunDetectsCompletionFlagMismatch(t *testing.T) {
	snap := cleanSnapshot()
	snap.Tasks[0].CompletedAt = nil
	requireIssue(t, Run(snap), "disagree")
}

func TestRunFlagsLateCompletionAsWarning(t *testing.T) {
	snap := cleanSnapshot()
	late := snap.Tasks[0].DueDate.AddDate(0, 0, 5)
	snap.Tasks[0].CompletedAt = &late

	report := Run(snap)
	if !report.OK() {
		t.Fatalf("late completion should not be an error: %+v", report.Issues)
	}
	if report.Warnings() == 0 {
		t.Fatal("expected a warning for completion after due date")
	}
}

func TestRunDetectsSectionProjectMismatch(t *testing.T) {
	snap := cleanSnapshot()
	snap.Projects = append(snap.Projects, model.Project{
		ID: "proj_2", OrganizationID: "org_1", OwnerID: "user_1", Name: "Borealis",
		Status: model.ProjectActive, ProjectType: model.ProjectOngoing, CreatedAt: snap.Projects[0].CreatedAt,
	})
	snap.Tasks[0].ProjectID = "proj_2"
	requireIssue(t, Run(snap), "belongs to project")
}

func TestComputeStats(t *testing.T) {
	snap := cleanSnapshot()
	stats := ComputeStats(snap)

	if stats.TaskCount != 1 {
		t.Fatalf("expected 1 task, got %d", stats.TaskCount)
	}
	if stats.DueDateRate != 1.0 {
		t.Fatalf("expected due date rate 1.0, got %f", stats.DueDateRate)
	}
	if stats.UnassignedRate != 0 {
		t.Fatalf("expected unassigned rate 0, got %f", stats.UnassignedRate)
	}
	if stats.CompletionByType[string(model.ProjectSprint)] != 1.0 {
		t.Fatalf("expected sprint completion 1.0, got %f", stats.CompletionByType[string(model.ProjectSprint)])
	}
}
