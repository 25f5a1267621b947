package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/workseed/workseed/pkg/metrics"
	"github.com/workseed/workseed/pkg/model"
	"github.com/workseed/workseed/pkg/store"
)

const (
	tsLayout   = "2006-01-02 15:04:05"
	dateLayout = "2006-01-02"
)

// Store persists the dataset to a local sqlite file, one table per entity
// with columns matching the persisted-shape contract.
type Store struct {
	db *sql.DB
}

func NewStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS organizations (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			domain TEXT NOT NULL,
			industry TEXT,
			employee_count INTEGER,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS teams (
			id TEXT PRIMARY KEY,
			organization_id TEXT NOT NULL REFERENCES organizations(id),
			name TEXT NOT NULL,
			lead_user_id TEXT,
			created_at TEXT NOT NULL,
			UNIQUE (organization_id, name)
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			organization_id TEXT NOT NULL REFERENCES organizations(id),
			email TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			first_name TEXT,
			last_name TEXT,
			created_at TEXT NOT NULL,
			is_active INTEGER NOT NULL DEFAULT 1,
			last_seen TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS team_memberships (
			id TEXT PRIMARY KEY,
			team_id TEXT NOT NULL REFERENCES teams(id),
			user_id TEXT NOT NULL REFERENCES users(id),
			joined_at TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'member',
			is_active INTEGER NOT NULL DEFAULT 1
		)`,
		`CREATE TABLE IF NOT EXISTS projects (
			id TEXT PRIMARY KEY,
			organization_id TEXT NOT NULL REFERENCES organizations(id),
			team_id TEXT REFERENCES teams(id),
			owner_id TEXT NOT NULL REFERENCES users(id),
			name TEXT NOT NULL UNIQUE,
			status TEXT NOT NULL DEFAULT 'active',
			project_type TEXT,
			is_archived INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS sections (
			id TEXT PRIMARY KEY,
			project_id TEXT NOT NULL REFERENCES projects(id),
			name TEXT NOT NULL,
			display_order INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id TEXT PRIMARY KEY,
			project_id TEXT NOT NULL REFERENCES projects(id),
			section_id TEXT REFERENCES sections(id),
			name TEXT NOT NULL,
			description TEXT,
			created_at TEXT NOT NULL,
			created_by TEXT NOT NULL REFERENCES users(id),
			assignee_id TEXT REFERENCES users(id),
			due_date TEXT,
			completed INTEGER NOT NULL DEFAULT 0,
			completed_at TEXT,
			priority INTEGER,
			estimated_hours REAL
		)`,
		`CREATE TABLE IF NOT EXISTS subtasks (
			id TEXT PRIMARY KEY,
			parent_task_id TEXT NOT NULL REFERENCES tasks(id),
			project_id TEXT NOT NULL REFERENCES projects(id),
			name TEXT NOT NULL,
			created_at TEXT NOT NULL,
			assignee_id TEXT REFERENCES users(id),
			due_date TEXT,
			completed INTEGER NOT NULL DEFAULT 0,
			completed_at TEXT,
			display_order INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS comments (
			id TEXT PRIMARY KEY,
			task_id TEXT NOT NULL REFERENCES tasks(id),
			user_id TEXT NOT NULL REFERENCES users(id),
			text TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS custom_field_definitions (
			id TEXT PRIMARY KEY,
			organization_id TEXT NOT NULL REFERENCES organizations(id),
			name TEXT NOT NULL,
			field_type TEXT NOT NULL,
			created_at TEXT NOT NULL,
			UNIQUE (organization_id, name)
		)`,
		`CREATE TABLE IF NOT EXISTS custom_field_values (
			id TEXT PRIMARY KEY,
			custom_field_id TEXT NOT NULL REFERENCES custom_field_definitions(id),
			task_id TEXT NOT NULL REFERENCES tasks(id),
			value TEXT,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS tags (
			id TEXT PRIMARY KEY,
			organization_id TEXT NOT NULL REFERENCES organizations(id),
			name TEXT NOT NULL,
			color TEXT,
			created_at TEXT NOT NULL,
			created_by TEXT REFERENCES users(id)
		)`,
		`CREATE TABLE IF NOT EXISTS task_tags (
			id TEXT PRIMARY KEY,
			task_id TEXT NOT NULL REFERENCES tasks(id),
			tag_id TEXT NOT NULL REFERENCES tags(id),
			added_at TEXT NOT NULL
		)`,
	}

	for _, stmt := range ddl {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// insertBatch writes rows in chunks of store.BatchSize, each chunk as one
// multi-row INSERT inside a transaction.
func (s *Store) insertBatch(ctx context.Context, table string, columns []string, rows [][]interface{}) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin insert %s: %w", table, err)
	}
	defer tx.Rollback()

	rowPlaceholder := "(" + strings.TrimSuffix(strings.Repeat("?,", len(columns)), ",") + ")"

	for offset := 0; offset < len(rows); offset += store.BatchSize {
		end := offset + store.BatchSize
		if end > len(rows) {
			end = len(rows)
		}
		chunk := rows[offset:end]

		placeholders := make([]string, len(chunk))
		args := make([]interface{}, 0, len(chunk)*len(columns))
		for i, row := range chunk {
			placeholders[i] = rowPlaceholder
			args = append(args, row...)
		}

		query := fmt.Sprintf("INSERT INTO %s (%s) VALUES %s",
			table, strings.Join(columns, ","), strings.Join(placeholders, ","))
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert %s: %w", table, err)
		}
		metrics.StoreBatchesTotal.WithLabelValues(table).Inc()
	}

	return tx.Commit()
}

func (s *Store) InsertOrganizations(ctx context.Context, records []model.Organization) error {
	rows := make([][]interface{}, len(records))
	for i, r := range records {
		rows[i] = []interface{}{r.ID, r.Name, r.Domain, r.Industry, r.EmployeeCount, ts(r.CreatedAt)}
	}
	return s.insertBatch(ctx, "organizations",
		[]string{"id", "name", "domain", "industry", "employee_count", "created_at"}, rows)
}

func (s *Store) InsertTeams(ctx context.Context, records []model.Team) error {
	rows := make([][]interface{}, len(records))
	for i, r := range records {
		rows[i] = []interface{}{r.ID, r.OrganizationID, r.Name, r.LeadUserID, ts(r.CreatedAt)}
	}
	return s.insertBatch(ctx, "teams",
		[]string{"id", "organization_id", "name", "lead_user_id", "created_at"}, rows)
}

func (s *Store) InsertUsers(ctx context.Context, records []model.User) error {
	rows := make([][]interface{}, len(records))
	for i, r := range records {
		rows[i] = []interface{}{r.ID, r.OrganizationID, r.Email, r.Name, r.FirstName, r.LastName,
			ts(r.CreatedAt), r.IsActive, tsPtr(r.LastSeen)}
	}
	return s.insertBatch(ctx, "users",
		[]string{"id", "organization_id", "email", "name", "first_name", "last_name",
			"created_at", "is_active", "last_seen"}, rows)
}

func (s *Store) InsertTeamMemberships(ctx context.Context, records []model.TeamMembership) error {
	rows := make([][]interface{}, len(records))
	for i, r := range records {
		rows[i] = []interface{}{r.ID, r.TeamID, r.UserID, ts(r.JoinedAt), string(r.Role), r.IsActive}
	}
	return s.insertBatch(ctx, "team_memberships",
		[]string{"id", "team_id", "user_id", "joined_at", "role", "is_active"}, rows)
}

func (s *Store) InsertProjects(ctx context.Context, records []model.Project) error {
	rows := make([][]interface{}, len(records))
	for i, r := range records {
		rows[i] = []interface{}{r.ID, r.OrganizationID, r.TeamID, r.OwnerID, r.Name,
			string(r.Status), string(r.ProjectType), r.IsArchived, ts(r.CreatedAt)}
	}
	return s.insertBatch(ctx, "projects",
		[]string{"id", "organization_id", "team_id", "owner_id", "name",
			"status", "project_type", "is_archived", "created_at"}, rows)
}

func (s *Store) InsertSections(ctx context.Context, records []model.Section) error {
	rows := make([][]interface{}, len(records))
	for i, r := range records {
		rows[i] = []interface{}{r.ID, r.ProjectID, r.Name, r.DisplayOrder, ts(r.CreatedAt)}
	}
	return s.insertBatch(ctx, "sections",
		[]string{"id", "project_id", "name", "display_order", "created_at"}, rows)
}

func (s *Store) InsertTasks(ctx context.Context, records []model.Task) error {
	rows := make([][]interface{}, len(records))
	for i, r := range records {
		rows[i] = []interface{}{r.ID, r.ProjectID, r.SectionID, r.Name, r.Description,
			ts(r.CreatedAt), r.CreatedBy, r.AssigneeID, datePtr(r.DueDate),
			r.Completed, tsPtr(r.CompletedAt), r.Priority, r.EstimatedHours}
	}
	return s.insertBatch(ctx, "tasks",
		[]string{"id", "project_id", "section_id", "name", "description",
			"created_at", "created_by", "assignee_id", "due_date",
			"completed", "completed_at", "priority", "estimated_hours"}, rows)
}

func (s *Store) InsertSubtasks(ctx context.Context, records []model.Subtask) error {
	rows := make([][]interface{}, len(records))
	for i, r := range records {
		rows[i] = []interface{}{r.ID, r.ParentTaskID, r.ProjectID, r.Name, ts(r.CreatedAt),
			r.AssigneeID, datePtr(r.DueDate), r.Completed, tsPtr(r.CompletedAt), r.DisplayOrder}
	}
	return s.insertBatch(ctx, "subtasks",
		[]string{"id", "parent_task_id", "project_id", "name", "created_at",
			"assignee_id", "due_date", "completed", "completed_at", "display_order"}, rows)
}

func (s *Store) InsertComments(ctx context.Context, records []model.Comment) error {
	rows := make([][]interface{}, len(records))
	for i, r := range records {
		rows[i] = []interface{}{r.ID, r.TaskID, r.UserID, r.Text, ts(r.CreatedAt)}
	}
	return s.insertBatch(ctx, "comments",
		[]string{"id", "task_id", "user_id", "text", "created_at"}, rows)
}

func (s *Store) InsertCustomFieldDefinitions(ctx context.Context, records []model.CustomFieldDefinition) error {
	rows := make([][]interface{}, len(records))
	for i, r := range records {
		rows[i] = []interface{}{r.ID, r.OrganizationID, r.Name, string(r.FieldType), ts(r.CreatedAt)}
	}
	return s.insertBatch(ctx, "custom_field_definitions",
		[]string{"id", "organization_id", "name", "field_type", "created_at"}, rows)
}

func (s *Store) InsertCustomFieldValues(ctx context.Context, records []model.CustomFieldValue) error {
	rows := make([][]interface{}, len(records))
	for i, r := range records {
		rows[i] = []interface{}{r.ID, r.CustomFieldID, r.TaskID, r.Value, ts(r.CreatedAt)}
	}
	return s.insertBatch(ctx, "custom_field_values",
		[]string{"id", "custom_field_id", "task_id", "value", "created_at"}, rows)
}

func (s *Store) InsertTags(ctx context.Context, records []model.Tag) error {
	rows := make([][]interface{}, len(records))
	for i, r := range records {
		rows[i] = []interface{}{r.ID, r.OrganizationID, r.Name, r.Color, ts(r.CreatedAt), r.CreatedBy}
	}
	return s.insertBatch(ctx, "tags",
		[]string{"id", "organization_id", "name", "color", "created_at", "created_by"}, rows)
}

func (s *Store) InsertTaskTags(ctx context.Context, records []model.TaskTag) error {
	rows := make([][]interface{}, len(records))
	for i, r := range records {
		rows[i] = []interface{}{r.ID, r.TaskID, r.TagID, ts(r.AddedAt)}
	}
	return s.insertBatch(ctx, "task_tags",
		[]string{"id", "task_id", "tag_id", "added_at"}, rows)
}

func (s *Store) Counts(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64, len(store.Tables))
	for _, table := range store.Tables {
		var count int64
		if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
			return nil, fmt.Errorf("count %s: %w", table, err)
		}
		counts[table] = count
	}
	return counts, nil
}

func ts(t time.Time) string {
	return t.UTC().Format(tsLayout)
}

func tsPtr(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return ts(*t)
}

func datePtr(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.UTC().Format(dateLayout)
}
