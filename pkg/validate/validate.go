package validate

import (
	"fmt"

	"github.com/workseed/workseed/pkg/model"
	"github.com/workseed/workseed/pkg/store"
	"github.com/workseed/workseed/pkg/timegen"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one finding against a persisted dataset. Errors are violations a
// consumer cannot work around; warnings flag unusual but legal data.
type Issue struct {
	Severity Severity `json:"severity"`
	Table    string   `json:"table"`
	RecordID string   `json:"record_id"`
	Message  string   `json:"message"`
}

// Report is the result of one validation pass.
type Report struct {
	Counts map[string]int64 `json:"counts"`
	Stats  Stats            `json:"stats"`
	Issues []Issue          `json:"issues,omitempty"`
}

func (r *Report) Errors() int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			n++
		}
	}
	return n
}

func (r *Report) Warnings() int {
	return len(r.Issues) - r.Errors()
}

// OK reports whether the dataset passed with no errors.
func (r *Report) OK() bool {
	return r.Errors() == 0
}

// Run checks a snapshot for referential integrity, uniqueness, and causal
// ordering of timestamps, and computes the distribution statistics used for
// conformance reporting.
func Run(snap *store.Snapshot) *Report {
	v := &validator{snap: snap, report: &Report{Counts: snap.Counts()}}
	v.index()
	v.checkOrganizations()
	v.checkTeams()
	v.checkUsers()
	v.checkMemberships()
	v.checkProjects()
	v.checkSections()
	v.checkTasks()
	v.checkSubtasks()
	v.checkComments()
	v.checkCustomFields()
	v.checkTags()
	v.report.Stats = ComputeStats(snap)
	v.checkDistributions()
	return v.report
}

type validator struct {
	snap   *store.Snapshot
	report *Report

	orgs     map[string]struct{}
	teams    map[string]struct{}
	users    map[string]struct{}
	projects map[string]model.Project
	sections map[string]model.Section
	tasks    map[string]model.Task
	fields   map[string]struct{}
	tags     map[string]struct{}
}

func (v *validator) index() {
	v.orgs = make(map[string]struct{}, len(v.snap.Organizations))
	for _, o := range v.snap.Organizations {
		v.orgs[o.ID] = struct{}{}
	}
	v.teams = make(map[string]struct{}, len(v.snap.Teams))
	for _, t := range v.snap.Teams {
		v.teams[t.ID] = struct{}{}
	}
	v.users = make(map[string]struct{}, len(v.snap.Users))
	for _, u := range v.snap.Users {
		v.users[u.ID] = struct{}{}
	}
	v.projects = make(map[string]model.Project, len(v.snap.Projects))
	for _, p := range v.snap.Projects {
		v.projects[p.ID] = p
	}
	v.sections = make(map[string]model.Section, len(v.snap.Sections))
	for _, s := range v.snap.Sections {
		v.sections[s.ID] = s
	}
	v.tasks = make(map[string]model.Task, len(v.snap.Tasks))
	for _, t := range v.snap.Tasks {
		v.tasks[t.ID] = t
	}
	v.fields = make(map[string]struct{}, len(v.snap.CustomFieldDefinitions))
	for _, f := range v.snap.CustomFieldDefinitions {
		v.fields[f.ID] = struct{}{}
	}
	v.tags = make(map[string]struct{}, len(v.snap.Tags))
	for _, t := range v.snap.Tags {
		v.tags[t.ID] = struct{}{}
	}
}

func (v *validator) errorf(table, recordID, format string, args ...any) {
	v.report.Issues = append(v.report.Issues, Issue{
		Severity: SeverityError,
		Table:    table,
		RecordID: recordID,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (v *validator) warnf(table, recordID, format string, args ...any) {
	v.report.Issues = append(v.report.Issues, Issue{
		Severity: SeverityWarning,
		Table:    table,
		RecordID: recordID,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (v *validator) checkOrganizations() {
	names := make(map[string]struct{}, len(v.snap.Organizations))
	for _, o := range v.snap.Organizations {
		if o.Name == "" {
			v.errorf("organizations", o.ID, "empty name")
		}
		if _, dup := names[o.Name]; dup {
			v.errorf("organizations", o.ID, "duplicate name %q", o.Name)
		}
		names[o.Name] = struct{}{}
	}
}

func (v *validator) checkTeams() {
	names := make(map[string]struct{}, len(v.snap.Teams))
	for _, t := range v.snap.Teams {
		if _, ok := v.orgs[t.OrganizationID]; !ok {
			v.errorf("teams", t.ID, "unknown organization %s", t.OrganizationID)
		}
		key := t.OrganizationID + "/" + t.Name
		if _, dup := names[key]; dup {
			v.errorf("teams", t.ID, "duplicate name %q within organization", t.Name)
		}
		names[key] = struct{}{}
		if t.LeadUserID != nil {
			if _, ok := v.users[*t.LeadUserID]; !ok {
				v.errorf("teams", t.ID, "unknown lead user %s", *t.LeadUserID)
			}
		}
	}
}

func (v *validator) checkUsers() {
	emails := make(map[string]struct{}, len(v.snap.Users))
	for _, u := range v.snap.Users {
		if _, ok := v.orgs[u.OrganizationID]; !ok {
			v.errorf("users", u.ID, "unknown organization %s", u.OrganizationID)
		}
		if _, dup := emails[u.Email]; dup {
			v.errorf("users", u.ID, "duplicate email %q", u.Email)
		}
		emails[u.Email] = struct{}{}
	}
}

func (v *validator) checkMemberships() {
	leads := make(map[string]int, len(v.snap.Teams))
	pairs := make(map[string]struct{}, len(v.snap.TeamMemberships))
	for _, m := range v.snap.TeamMemberships {
		if _, ok := v.teams[m.TeamID]; !ok {
			v.errorf("team_memberships", m.ID, "unknown team %s", m.TeamID)
		}
		if _, ok := v.users[m.UserID]; !ok {
			v.errorf("team_memberships", m.ID, "unknown user %s", m.UserID)
		}
		key := m.TeamID + "/" + m.UserID
		if _, dup := pairs[key]; dup {
			v.errorf("team_memberships", m.ID, "user %s appears twice in team %s", m.UserID, m.TeamID)
		}
		pairs[key] = struct{}{}
		if m.Role == model.RoleLead {
			leads[m.TeamID]++
		}
	}
	for teamID, n := range leads {
		if n > 1 {
			v.errorf("teams", teamID, "%d lead memberships, want at most 1", n)
		}
	}
}

func (v *validator) checkProjects() {
	names := make(map[string]struct{}, len(v.snap.Projects))
	for _, p := range v.snap.Projects {
		if _, ok := v.orgs[p.OrganizationID]; !ok {
			v.errorf("projects", p.ID, "unknown organization %s", p.OrganizationID)
		}
		if p.TeamID != nil {
			if _, ok := v.teams[*p.TeamID]; !ok {
				v.errorf("projects", p.ID, "unknown team %s", *p.TeamID)
			}
		}
		if _, ok := v.users[p.OwnerID]; !ok {
			v.errorf("projects", p.ID, "unknown owner %s", p.OwnerID)
		}
		if _, dup := names[p.Name]; dup {
			v.errorf("projects", p.ID, "duplicate name %q", p.Name)
		}
		names[p.Name] = struct{}{}
	}
}

func (v *validator) checkSections() {
	for _, s := range v.snap.Sections {
		if _, ok := v.projects[s.ProjectID]; !ok {
			v.errorf("sections", s.ID, "unknown project %s", s.ProjectID)
		}
	}
}

func (v *validator) checkTasks() {
	for _, t := range v.snap.Tasks {
		if _, ok := v.projects[t.ProjectID]; !ok {
			v.errorf("tasks", t.ID, "unknown project %s", t.ProjectID)
		}
		if t.SectionID != nil {
			section, ok := v.sections[*t.SectionID]
			if !ok {
				v.errorf("tasks", t.ID, "unknown section %s", *t.SectionID)
			} else if section.ProjectID != t.ProjectID {
				v.errorf("tasks", t.ID, "section %s belongs to project %s, task to %s",
					section.ID, section.ProjectID, t.ProjectID)
			}
		}
		if _, ok := v.users[t.CreatedBy]; !ok {
			v.errorf("tasks", t.ID, "unknown creator %s", t.CreatedBy)
		}
		if t.AssigneeID != nil {
			if _, ok := v.users[*t.AssigneeID]; !ok {
				v.errorf("tasks", t.ID, "unknown assignee %s", *t.AssigneeID)
			}
		}
		if t.Priority < model.PriorityUrgent || t.Priority > model.PriorityLow {
			v.errorf("tasks", t.ID, "priority %d out of range", t.Priority)
		}
		if t.Completed != (t.CompletedAt != nil) {
			v.errorf("tasks", t.ID, "completed flag and completion timestamp disagree")
		}
		check := timegen.ValidateTaskDates(t.CreatedAt, t.DueDate, t.CompletedAt)
		if !check.Valid {
			v.errorf("tasks", t.ID, "%s", check.Reason)
		} else if check.Unusual {
			v.warnf("tasks", t.ID, "%s", check.Reason)
		}
	}
}

func (v *validator) checkSubtasks() {
	for _, s := range v.snap.Subtasks {
		parent, ok := v.tasks[s.ParentTaskID]
		if !ok {
			v.errorf("subtasks", s.ID, "unknown parent task %s", s.ParentTaskID)
			continue
		}
		if s.ProjectID != parent.ProjectID {
			v.errorf("subtasks", s.ID, "project %s differs from parent's %s", s.ProjectID, parent.ProjectID)
		}
		if s.CreatedAt.Before(parent.CreatedAt) {
			v.errorf("subtasks", s.ID, "created before parent task")
		}
		if s.AssigneeID != nil {
			if _, ok := v.users[*s.AssigneeID]; !ok {
				v.errorf("subtasks", s.ID, "unknown assignee %s", *s.AssigneeID)
			}
		}
		if s.Completed && !parent.Completed {
			v.errorf("subtasks", s.ID, "completed under an open parent task")
		}
		if s.Completed != (s.CompletedAt != nil) {
			v.errorf("subtasks", s.ID, "completed flag and completion timestamp disagree")
		}
	}
}

func (v *validator) checkComments() {
	for _, c := range v.snap.Comments {
		task, ok := v.tasks[c.TaskID]
		if !ok {
			v.errorf("comments", c.ID, "unknown task %s", c.TaskID)
			continue
		}
		if _, ok := v.users[c.UserID]; !ok {
			v.errorf("comments", c.ID, "unknown user %s", c.UserID)
		}
		if c.Text == "" {
			v.errorf("comments", c.ID, "empty text")
		}
		if c.CreatedAt.Before(task.CreatedAt) {
			v.errorf("comments", c.ID, "created before its task")
		}
	}
}

func (v *validator) checkCustomFields() {
	names := make(map[string]struct{}, len(v.snap.CustomFieldDefinitions))
	for _, f := range v.snap.CustomFieldDefinitions {
		if _, ok := v.orgs[f.OrganizationID]; !ok {
			v.errorf("custom_field_definitions", f.ID, "unknown organization %s", f.OrganizationID)
		}
		key := f.OrganizationID + "/" + f.Name
		if _, dup := names[key]; dup {
			v.errorf("custom_field_definitions", f.ID, "duplicate name %q within organization", f.Name)
		}
		names[key] = struct{}{}
	}
	for _, fv := range v.snap.CustomFieldValues {
		if _, ok := v.fields[fv.CustomFieldID]; !ok {
			v.errorf("custom_field_values", fv.ID, "unknown field %s", fv.CustomFieldID)
		}
		if _, ok := v.tasks[fv.TaskID]; !ok {
			v.errorf("custom_field_values", fv.ID, "unknown task %s", fv.TaskID)
		}
	}
}

func (v *validator) checkTags() {
	names := make(map[string]struct{}, len(v.snap.Tags))
	for _, t := range v.snap.Tags {
		if _, ok := v.orgs[t.OrganizationID]; !ok {
			v.errorf("tags", t.ID, "unknown organization %s", t.OrganizationID)
		}
		key := t.OrganizationID + "/" + t.Name
		if _, dup := names[key]; dup {
			v.errorf("tags", t.ID, "duplicate name %q within organization", t.Name)
		}
		names[key] = struct{}{}
	}

	pairs := make(map[string]struct{}, len(v.snap.TaskTags))
	for _, tt := range v.snap.TaskTags {
		task, ok := v.tasks[tt.TaskID]
		if !ok {
			v.errorf("task_tags", tt.ID, "unknown task %s", tt.TaskID)
			continue
		}
		if _, ok := v.tags[tt.TagID]; !ok {
			v.errorf("task_tags", tt.ID, "unknown tag %s", tt.TagID)
		}
		key := tt.TaskID + "/" + tt.TagID
		if _, dup := pairs[key]; dup {
			v.errorf("task_tags", tt.ID, "tag %s applied twice to task %s", tt.TagID, tt.TaskID)
		}
		pairs[key] = struct{}{}
		if tt.AddedAt.Before(task.CreatedAt) {
			v.errorf("task_tags", tt.ID, "added before its task was created")
		}
	}
}
