package postgres

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/workseed/workseed/pkg/config"
	"github.com/workseed/workseed/pkg/metrics"
	"github.com/workseed/workseed/pkg/model"
	"github.com/workseed/workseed/pkg/store"
)

type Store struct {
	db *gorm.DB
}

func NewStore(cfg *config.DatabaseConfig) (*Store, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)

	s := &Store{db: db}
	if err := s.autoMigrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return s, nil
}

func (s *Store) autoMigrate() error {
	return s.db.AutoMigrate(
		&model.Organization{},
		&model.Team{},
		&model.User{},
		&model.TeamMembership{},
		&model.Project{},
		&model.Section{},
		&model.Task{},
		&model.Subtask{},
		&model.Comment{},
		&model.CustomFieldDefinition{},
		&model.CustomFieldValue{},
		&model.Tag{},
		&model.TaskTag{},
	)
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) insert(ctx context.Context, table string, records interface{}, count int) error {
	if count == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).CreateInBatches(records, store.BatchSize).Error; err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}
	metrics.StoreBatchesTotal.WithLabelValues(table).Add(float64((count + store.BatchSize - 1) / store.BatchSize))
	return nil
}

func (s *Store) InsertOrganizations(ctx context.Context, records []model.Organization) error {
	return s.insert(ctx, "organizations", records, len(records))
}

func (s *Store) InsertTeams(ctx context.Context, records []model.Team) error {
	return s.insert(ctx, "teams", records, len(records))
}

func (s *Store) InsertUsers(ctx context.Context, records []model.User) error {
	return s.insert(ctx, "users", records, len(records))
}

func (s *Store) InsertTeamMemberships(ctx context.Context, records []model.TeamMembership) error {
	return s.insert(ctx, "team_memberships", records, len(records))
}

func (s *Store) InsertProjects(ctx context.Context, records []model.Project) error {
	return s.insert(ctx, "projects", records, len(records))
}

func (s *Store) InsertSections(ctx context.Context, records []model.Section) error {
	return s.insert(ctx, "sections", records, len(records))
}

func (s *Store) InsertTasks(ctx context.Context, records []model.Task) error {
	return s.insert(ctx, "tasks", records, len(records))
}

func (s *Store) InsertSubtasks(ctx context.Context, records []model.Subtask) error {
	return s.insert(ctx, "subtasks", records, len(records))
}

func (s *Store) InsertComments(ctx context.Context, records []model.Comment) error {
	return s.insert(ctx, "comments", records, len(records))
}

func (s *Store) InsertCustomFieldDefinitions(ctx context.Context, records []model.CustomFieldDefinition) error {
	return s.insert(ctx, "custom_field_definitions", records, len(records))
}

func (s *Store) InsertCustomFieldValues(ctx context.Context, records []model.CustomFieldValue) error {
	return s.insert(ctx, "custom_field_values", records, len(records))
}

func (s *Store) InsertTags(ctx context.Context, records []model.Tag) error {
	return s.insert(ctx, "tags", records, len(records))
}

func (s *Store) InsertTaskTags(ctx context.Context, records []model.TaskTag) error {
	return s.insert(ctx, "task_tags", records, len(records))
}

func (s *Store) Counts(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64, len(store.Tables))
	for _, table := range store.Tables {
		var count int64
		if err := s.db.WithContext(ctx).Table(table).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("count %s: %w", table, err)
		}
		counts[table] = count
	}
	return counts, nil
}

func (s *Store) Snapshot(ctx context.Context) (*store.Snapshot, error) {
	snap := &store.Snapshot{}
	db := s.db.WithContext(ctx)

	for table, dest := range map[string]interface{}{
		"organizations":            &snap.Organizations,
		"teams":                    &snap.Teams,
		"users":                    &snap.Users,
		"team_memberships":         &snap.TeamMemberships,
		"projects":                 &snap.Projects,
		"sections":                 &snap.Sections,
		"tasks":                    &snap.Tasks,
		"subtasks":                 &snap.Subtasks,
		"comments":                 &snap.Comments,
		"custom_field_definitions": &snap.CustomFieldDefinitions,
		"custom_field_values":      &snap.CustomFieldValues,
		"tags":                     &snap.Tags,
		"task_tags":                &snap.TaskTags,
	} {
		if err := db.Find(dest).Error; err != nil {
			return nil, fmt.Errorf("load %s: %w", table, err)
		}
	}
	return snap, nil
}
