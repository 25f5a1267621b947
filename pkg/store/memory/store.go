package memory

import (
	"context"
	"sync"

	"github.com/workseed/workseed/pkg/model"
	"github.com/workseed/workseed/pkg/store"
)

// Store keeps the dataset in process memory. Used for dry runs and tests.
type Store struct {
	mu   sync.Mutex
	snap store.Snapshot
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Close() error {
	return nil
}

func (s *Store) InsertOrganizations(_ context.Context, records []model.Organization) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Organizations = append(s.snap.Organizations, records...)
	return nil
}

func (s *Store) InsertTeams(_ context.Context, records []model.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Teams = append(s.snap.Teams, records...)
	return nil
}

func (s *Store) InsertUsers(_ context.Context, records []model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Users = append(s.snap.Users, records...)
	return nil
}

func (s *Store) InsertTeamMemberships(_ context.Context, records []model.TeamMembership) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.TeamMemberships = append(s.snap.TeamMemberships, records...)
	return nil
}

func (s *Store) InsertProjects(_ context.Context, records []model.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Projects = append(s.snap.Projects, records...)
	return nil
}

func (s *Store) InsertSections(_ context.Context, records []model.Section) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Sections = append(s.snap.Sections, records...)
	return nil
}

func (s *Store) InsertTasks(_ context.Context, records []model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Tasks = append(s.snap.Tasks, records...)
	return nil
}

func (s *Store) InsertSubtasks(_ context.Context, records []model.Subtask) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Subtasks = append(s.snap.Subtasks, records...)
	return nil
}

func (s *Store) InsertComments(_ context.Context, records []model.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Comments = append(s.snap.Comments, records...)
	return nil
}

func (s *Store) InsertCustomFieldDefinitions(_ context.Context, records []model.CustomFieldDefinition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.CustomFieldDefinitions = append(s.snap.CustomFieldDefinitions, records...)
	return nil
}

func (s *Store) InsertCustomFieldValues(_ context.Context, records []model.CustomFieldValue) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.CustomFieldValues = append(s.snap.CustomFieldValues, records...)
	return nil
}

func (s *Store) InsertTags(_ context.Context, records []model.Tag) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Tags = append(s.snap.Tags, records...)
	return nil
}

func (s *Store) InsertTaskTags(_ context.Context, records []model.TaskTag) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.TaskTags = append(s.snap.TaskTags, records...)
	return nil
}

func (s *Store) Counts(_ context.Context) (map[string]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Counts(), nil
}

func (s *Store) Snapshot(_ context.Context) (*store.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.snap
	return &snap, nil
}
