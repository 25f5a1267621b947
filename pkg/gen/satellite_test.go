package gen

import (
	"context"
	"testing"

	"github.com/workseed/workseed/pkg/model"
	"github.com/workseed/workseed/pkg/textgen"
)

func generateTestTasks(t *testing.T, seed int64, count int) ([]model.Task, []model.User) {
	t.Helper()
	rng, ids, sampler := newTestDeps(seed)

	users := NewUserGenerator(rng, ids, sampler).Generate("org_abc", 50, testStart, testEnd)
	projects := NewProjectGenerator(rng, ids, sampler, "").Generate("org_abc", nil, users, 20, testStart, testEnd)
	text := textgen.NewTemplateGenerator(rng)
	g := NewTaskGenerator(rng, ids, sampler, text, nil, 0.15)
	return g.Generate(context.Background(), projects, nil, users, count, testStart, testEnd), users
}

func TestSubtaskGenerator(t *testing.T) {
	tasks, users := generateTestTasks(t, 40, 1000)
	rng, ids, _ := newTestDeps(41)

	subtasks := NewSubtaskGenerator(rng, ids, 0.35, 0).Generate(tasks, users)
	if len(subtasks) == 0 {
		t.Fatal("expected subtasks")
	}

	taskByID := make(map[string]model.Task)
	for _, task := range tasks {
		taskByID[task.ID] = task
	}

	for _, subtask := range subtasks {
		parent, ok := taskByID[subtask.ParentTaskID]
		if !ok {
			t.Fatalf("subtask %s has unknown parent %s", subtask.ID, subtask.ParentTaskID)
		}
		if subtask.ProjectID != parent.ProjectID {
			t.Fatalf("subtask %s project differs from parent", subtask.ID)
		}
		if !subtask.CreatedAt.After(parent.CreatedAt) {
			t.Fatalf("subtask %s not created after parent", subtask.ID)
		}
		if offset := subtask.CreatedAt.Sub(parent.CreatedAt).Minutes(); offset < 5 || offset > 60 {
			t.Fatalf("subtask %s created %.0f minutes after parent, want 5 to 60", subtask.ID, offset)
		}
		if subtask.Completed && !parent.Completed {
			t.Fatalf("subtask %s completed under open parent", subtask.ID)
		}
		if subtask.Completed != (subtask.CompletedAt != nil) {
			t.Fatalf("subtask %s completion flag and timestamp disagree", subtask.ID)
		}
		if subtask.CompletedAt != nil && subtask.CompletedAt.Before(subtask.CreatedAt) {
			t.Fatalf("subtask %s completed before creation", subtask.ID)
		}
	}
}

func TestSubtaskGeneratorCap(t *testing.T) {
	tasks, users := generateTestTasks(t, 42, 1000)
	rng, ids, _ := newTestDeps(43)

	subtasks := NewSubtaskGenerator(rng, ids, 1.0, 25).Generate(tasks, users)
	// The cap is checked per task, so one task's batch may overshoot it
	// slightly but never by more than a full count draw.
	if len(subtasks) < 25 || len(subtasks) > 30 {
		t.Fatalf("expected roughly 25 subtasks under cap, got %d", len(subtasks))
	}
}

func TestCommentGenerator(t *testing.T) {
	tasks, users := generateTestTasks(t, 44, 1000)
	rng, ids, sampler := newTestDeps(45)

	comments := NewCommentGenerator(rng, ids, sampler, 0.60, 0).Generate(tasks, users)
	if len(comments) == 0 {
		t.Fatal("expected comments")
	}

	taskByID := make(map[string]model.Task)
	for _, task := range tasks {
		taskByID[task.ID] = task
	}
	userIDs := make(map[string]struct{})
	for _, user := range users {
		userIDs[user.ID] = struct{}{}
	}

	commented := make(map[string]struct{})
	for _, comment := range comments {
		task, ok := taskByID[comment.TaskID]
		if !ok {
			t.Fatalf("comment %s has unknown task %s", comment.ID, comment.TaskID)
		}
		commented[comment.TaskID] = struct{}{}

		if _, ok := userIDs[comment.UserID]; !ok {
			t.Fatalf("comment %s has unknown author %s", comment.ID, comment.UserID)
		}
		if comment.Text == "" {
			t.Fatalf("comment %s has empty text", comment.ID)
		}
		if comment.CreatedAt.Before(task.CreatedAt) {
			t.Fatalf("comment %s created before its task", comment.ID)
		}
		if task.CompletedAt != nil && task.CompletedAt.After(task.CreatedAt) &&
			comment.CreatedAt.After(*task.CompletedAt) {
			t.Fatalf("comment %s created after task completion", comment.ID)
		}
	}

	share := float64(len(commented)) / float64(len(tasks))
	if share < 0.50 || share > 0.70 {
		t.Fatalf("commented task share %.3f outside expected band", share)
	}
}

func TestTagGenerator(t *testing.T) {
	tasks, users := generateTestTasks(t, 46, 500)
	rng, ids, _ := newTestDeps(47)

	g := NewTagGenerator(rng, ids)
	tags := g.Generate("org_abc", users)
	if len(tags) != len(defaultTagNames) {
		t.Fatalf("expected %d tags, got %d", len(defaultTagNames), len(tags))
	}

	names := make(map[string]struct{})
	for _, tag := range tags {
		if _, dup := names[tag.Name]; dup {
			t.Fatalf("duplicate tag name %q", tag.Name)
		}
		names[tag.Name] = struct{}{}
		if tag.Color == "" {
			t.Fatalf("tag %q has no color", tag.Name)
		}
	}

	taskByID := make(map[string]model.Task)
	for _, task := range tasks {
		taskByID[task.ID] = task
	}

	taskTags := g.GenerateTaskTags(tasks, tags)
	pairs := make(map[string]struct{})
	for _, tt := range taskTags {
		task, ok := taskByID[tt.TaskID]
		if !ok {
			t.Fatalf("task tag %s references unknown task", tt.ID)
		}
		key := tt.TaskID + "/" + tt.TagID
		if _, dup := pairs[key]; dup {
			t.Fatalf("tag %s applied twice to task %s", tt.TagID, tt.TaskID)
		}
		pairs[key] = struct{}{}
		if tt.AddedAt.Before(task.CreatedAt) {
			t.Fatalf("task tag %s added before task creation", tt.ID)
		}
	}
}

func TestCustomFieldGenerator(t *testing.T) {
	tasks, _ := generateTestTasks(t, 48, 500)
	rng, ids, _ := newTestDeps(49)

	g := NewCustomFieldGenerator(rng, ids)
	definitions := g.GenerateDefinitions("org_abc")
	if len(definitions) < 8 || len(definitions) > 13 {
		t.Fatalf("expected 8 to 13 definitions, got %d", len(definitions))
	}

	names := make(map[string]struct{})
	for _, def := range definitions {
		if _, dup := names[def.Name]; dup {
			t.Fatalf("duplicate field name %q", def.Name)
		}
		names[def.Name] = struct{}{}
	}

	fieldByID := make(map[string]model.CustomFieldDefinition)
	for _, def := range definitions {
		fieldByID[def.ID] = def
	}
	taskByID := make(map[string]model.Task)
	for _, task := range tasks {
		taskByID[task.ID] = task
	}

	values := g.GenerateValues(tasks, definitions)
	if len(values) == 0 {
		t.Fatal("expected field values")
	}
	for _, value := range values {
		def, ok := fieldByID[value.CustomFieldID]
		if !ok {
			t.Fatalf("value %s references unknown field", value.ID)
		}
		if _, ok := taskByID[value.TaskID]; !ok {
			t.Fatalf("value %s references unknown task", value.ID)
		}
		if value.Value == "" {
			t.Fatalf("empty value for field %q", def.Name)
		}
	}
}
