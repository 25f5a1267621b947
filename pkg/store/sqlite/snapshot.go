package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/workseed/workseed/pkg/model"
	"github.com/workseed/workseed/pkg/store"
)

// Snapshot reads the whole dataset back, parsing the stored text timestamps.
func (s *Store) Snapshot(ctx context.Context) (*store.Snapshot, error) {
	snap := &store.Snapshot{}

	loaders := []func(context.Context, *store.Snapshot) error{
		s.loadOrganizations,
		s.loadTeams,
		s.loadUsers,
		s.loadTeamMemberships,
		s.loadProjects,
		s.loadSections,
		s.loadTasks,
		s.loadSubtasks,
		s.loadComments,
		s.loadCustomFields,
		s.loadTags,
	}
	for _, load := range loaders {
		if err := load(ctx, snap); err != nil {
			return nil, err
		}
	}
	return snap, nil
}

func (s *Store) loadOrganizations(ctx context.Context, snap *store.Snapshot) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, domain, industry, employee_count, created_at FROM organizations")
	if err != nil {
		return fmt.Errorf("load organizations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r model.Organization
		var createdAt string
		if err := rows.Scan(&r.ID, &r.Name, &r.Domain, &r.Industry, &r.EmployeeCount, &createdAt); err != nil {
			return err
		}
		if r.CreatedAt, err = parseTS(createdAt); err != nil {
			return err
		}
		snap.Organizations = append(snap.Organizations, r)
	}
	return rows.Err()
}

func (s *Store) loadTeams(ctx context.Context, snap *store.Snapshot) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, organization_id, name, lead_user_id, created_at FROM teams")
	if err != nil {
		return fmt.Errorf("load teams: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r model.Team
		var lead sql.NullString
		var createdAt string
		if err := rows.Scan(&r.ID, &r.OrganizationID, &r.Name, &lead, &createdAt); err != nil {
			return err
		}
		r.LeadUserID = strPtr(lead)
		if r.CreatedAt, err = parseTS(createdAt); err != nil {
			return err
		}
		snap.Teams = append(snap.Teams, r)
	}
	return rows.Err()
}

func (s *Store) loadUsers(ctx context.Context, snap *store.Snapshot) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, organization_id, email, name, first_name, last_name, created_at, is_active, last_seen FROM users")
	if err != nil {
		return fmt.Errorf("load users: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r model.User
		var createdAt string
		var lastSeen sql.NullString
		if err := rows.Scan(&r.ID, &r.OrganizationID, &r.Email, &r.Name, &r.FirstName, &r.LastName,
			&createdAt, &r.IsActive, &lastSeen); err != nil {
			return err
		}
		if r.CreatedAt, err = parseTS(createdAt); err != nil {
			return err
		}
		if r.LastSeen, err = parseTSPtr(lastSeen); err != nil {
			return err
		}
		snap.Users = append(snap.Users, r)
	}
	return rows.Err()
}

func (s *Store) loadTeamMemberships(ctx context.Context, snap *store.Snapshot) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, team_id, user_id, joined_at, role, is_active FROM team_memberships")
	if err != nil {
		return fmt.Errorf("load team_memberships: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r model.TeamMembership
		var joinedAt, role string
		if err := rows.Scan(&r.ID, &r.TeamID, &r.UserID, &joinedAt, &role, &r.IsActive); err != nil {
			return err
		}
		r.Role = model.MembershipRole(role)
		if r.JoinedAt, err = parseTS(joinedAt); err != nil {
			return err
		}
		snap.TeamMemberships = append(snap.TeamMemberships, r)
	}
	return rows.Err()
}

func (s *Store) loadProjects(ctx context.Context, snap *store.Snapshot) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, organization_id, team_id, owner_id, name, status, project_type, is_archived, created_at FROM projects")
	if err != nil {
		return fmt.Errorf("load projects: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r model.Project
		var teamID sql.NullString
		var status, projectType, createdAt string
		if err := rows.Scan(&r.ID, &r.OrganizationID, &teamID, &r.OwnerID, &r.Name,
			&status, &projectType, &r.IsArchived, &createdAt); err != nil {
			return err
		}
		r.TeamID = strPtr(teamID)
		r.Status = model.ProjectStatus(status)
		r.ProjectType = model.ProjectType(projectType)
		if r.CreatedAt, err = parseTS(createdAt); err != nil {
			return err
		}
		snap.Projects = append(snap.Projects, r)
	}
	return rows.Err()
}

func (s *Store) loadSections(ctx context.Context, snap *store.Snapshot) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, project_id, name, display_order, created_at FROM sections")
	if err != nil {
		return fmt.Errorf("load sections: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r model.Section
		var createdAt string
		if err := rows.Scan(&r.ID, &r.ProjectID, &r.Name, &r.DisplayOrder, &createdAt); err != nil {
			return err
		}
		if r.CreatedAt, err = parseTS(createdAt); err != nil {
			return err
		}
		snap.Sections = append(snap.Sections, r)
	}
	return rows.Err()
}

func (s *Store) loadTasks(ctx context.Context, snap *store.Snapshot) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, project_id, section_id, name, description, created_at, created_by,
			assignee_id, due_date, completed, completed_at, priority, estimated_hours FROM tasks`)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r model.Task
		var sectionID, description, assigneeID, dueDate, completedAt sql.NullString
		var estimatedHours sql.NullFloat64
		var createdAt string
		if err := rows.Scan(&r.ID, &r.ProjectID, &sectionID, &r.Name, &description,
			&createdAt, &r.CreatedBy, &assigneeID, &dueDate, &r.Completed,
			&completedAt, &r.Priority, &estimatedHours); err != nil {
			return err
		}
		r.SectionID = strPtr(sectionID)
		r.Description = strPtr(description)
		r.AssigneeID = strPtr(assigneeID)
		if r.CreatedAt, err = parseTS(createdAt); err != nil {
			return err
		}
		if r.DueDate, err = parseDatePtr(dueDate); err != nil {
			return err
		}
		if r.CompletedAt, err = parseTSPtr(completedAt); err != nil {
			return err
		}
		if estimatedHours.Valid {
			r.EstimatedHours = &estimatedHours.Float64
		}
		snap.Tasks = append(snap.Tasks, r)
	}
	return rows.Err()
}

func (s *Store) loadSubtasks(ctx context.Context, snap *store.Snapshot) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, parent_task_id, project_id, name, created_at, assignee_id,
			due_date, completed, completed_at, display_order FROM subtasks`)
	if err != nil {
		return fmt.Errorf("load subtasks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r model.Subtask
		var assigneeID, dueDate, completedAt sql.NullString
		var createdAt string
		if err := rows.Scan(&r.ID, &r.ParentTaskID, &r.ProjectID, &r.Name, &createdAt,
			&assigneeID, &dueDate, &r.Completed, &completedAt, &r.DisplayOrder); err != nil {
			return err
		}
		r.AssigneeID = strPtr(assigneeID)
		if r.CreatedAt, err = parseTS(createdAt); err != nil {
			return err
		}
		if r.DueDate, err = parseDatePtr(dueDate); err != nil {
			return err
		}
		if r.CompletedAt, err = parseTSPtr(completedAt); err != nil {
			return err
		}
		snap.Subtasks = append(snap.Subtasks, r)
	}
	return rows.Err()
}

func (s *Store) loadComments(ctx context.Context, snap *store.Snapshot) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, task_id, user_id, text, created_at FROM comments")
	if err != nil {
		return fmt.Errorf("load comments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r model.Comment
		var createdAt string
		if err := rows.Scan(&r.ID, &r.TaskID, &r.UserID, &r.Text, &createdAt); err != nil {
			return err
		}
		if r.CreatedAt, err = parseTS(createdAt); err != nil {
			return err
		}
		snap.Comments = append(snap.Comments, r)
	}
	return rows.Err()
}

func (s *Store) loadCustomFields(ctx context.Context, snap *store.Snapshot) error {
	defRows, err := s.db.QueryContext(ctx,
		"SELECT id, organization_id, name, field_type, created_at FROM custom_field_definitions")
	if err != nil {
		return fmt.Errorf("load custom_field_definitions: %w", err)
	}
	defer defRows.Close()

	for defRows.Next() {
		var r model.CustomFieldDefinition
		var fieldType, createdAt string
		if err := defRows.Scan(&r.ID, &r.OrganizationID, &r.Name, &fieldType, &createdAt); err != nil {
			return err
		}
		r.FieldType = model.FieldType(fieldType)
		if r.CreatedAt, err = parseTS(createdAt); err != nil {
			return err
		}
		snap.CustomFieldDefinitions = append(snap.CustomFieldDefinitions, r)
	}
	if err := defRows.Err(); err != nil {
		return err
	}

	valRows, err := s.db.QueryContext(ctx,
		"SELECT id, custom_field_id, task_id, value, created_at FROM custom_field_values")
	if err != nil {
		return fmt.Errorf("load custom_field_values: %w", err)
	}
	defer valRows.Close()

	for valRows.Next() {
		var r model.CustomFieldValue
		var createdAt string
		if err := valRows.Scan(&r.ID, &r.CustomFieldID, &r.TaskID, &r.Value, &createdAt); err != nil {
			return err
		}
		if r.CreatedAt, err = parseTS(createdAt); err != nil {
			return err
		}
		snap.CustomFieldValues = append(snap.CustomFieldValues, r)
	}
	return valRows.Err()
}

func (s *Store) loadTags(ctx context.Context, snap *store.Snapshot) error {
	tagRows, err := s.db.QueryContext(ctx,
		"SELECT id, organization_id, name, color, created_at, created_by FROM tags")
	if err != nil {
		return fmt.Errorf("load tags: %w", err)
	}
	defer tagRows.Close()

	for tagRows.Next() {
		var r model.Tag
		var createdAt string
		if err := tagRows.Scan(&r.ID, &r.OrganizationID, &r.Name, &r.Color, &createdAt, &r.CreatedBy); err != nil {
			return err
		}
		if r.CreatedAt, err = parseTS(createdAt); err != nil {
			return err
		}
		snap.Tags = append(snap.Tags, r)
	}
	if err := tagRows.Err(); err != nil {
		return err
	}

	ttRows, err := s.db.QueryContext(ctx, "SELECT id, task_id, tag_id, added_at FROM task_tags")
	if err != nil {
		return fmt.Errorf("load task_tags: %w", err)
	}
	defer ttRows.Close()

	for ttRows.Next() {
		var r model.TaskTag
		var addedAt string
		if err := ttRows.Scan(&r.ID, &r.TaskID, &r.TagID, &addedAt); err != nil {
			return err
		}
		if r.AddedAt, err = parseTS(addedAt); err != nil {
			return err
		}
		snap.TaskTags = append(snap.TaskTags, r)
	}
	return ttRows.Err()
}

func strPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func parseTS(value string) (time.Time, error) {
	t, err := time.ParseInLocation(tsLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", value, err)
	}
	return t, nil
}

func parseTSPtr(ns sql.NullString) (*time.Time, error) {
	if !ns.Valid {
		return nil, nil
	}
	t, err := parseTS(ns.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseDatePtr(ns sql.NullString) (*time.Time, error) {
	if !ns.Valid {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, ns.String, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("parse date %q: %w", ns.String, err)
	}
	return &t, nil
}
