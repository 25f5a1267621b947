package gen

import (
	"math/rand"
	"time"

	"github.com/workseed/workseed/pkg/idgen"
	"github.com/workseed/workseed/pkg/model"
)

// The default tag vocabulary instantiated for every organization.
var defaultTagNames = []string{
	"urgent", "documentation", "refactor", "bug-fix", "feature",
	"backend", "frontend", "database", "security", "performance",
	"testing", "ui/ux", "api", "infrastructure", "devops",
	"ai/ml", "analytics", "mobile", "web", "deployment",
}

var tagColors = []string{
	"#FF5A5F", "#FF9671", "#FFD93D", "#6BCB77",
	"#4D96FF", "#9D84B7", "#FF8AAE", "#00D9FF",
}

// TagGenerator instantiates the fixed tag vocabulary per organization and
// attaches tags to half of the tasks.
type TagGenerator struct {
	rng *rand.Rand
	ids *idgen.Allocator
	now func() time.Time
}

func NewTagGenerator(rng *rand.Rand, ids *idgen.Allocator) *TagGenerator {
	return &TagGenerator{rng: rng, ids: ids, now: time.Now}
}

func (g *TagGenerator) Generate(organizationID string, users []model.User) []model.Tag {
	tags := make([]model.Tag, 0, len(defaultTagNames))
	for _, name := range defaultTagNames {
		tags = append(tags, model.Tag{
			ID:             g.ids.Allocate(idgen.KindTag),
			OrganizationID: organizationID,
			Name:           name,
			Color:          tagColors[g.rng.Intn(len(tagColors))],
			CreatedAt:      g.now().AddDate(0, 0, -(30 + g.rng.Intn(151))),
			CreatedBy:      users[g.rng.Intn(len(users))].ID,
		})
	}
	return tags
}

func (g *TagGenerator) GenerateTaskTags(tasks []model.Task, tags []model.Tag) []model.TaskTag {
	taskTags := make([]model.TaskTag, 0, len(tasks))

	for _, task := range tasks {
		if g.rng.Float64() > 0.50 {
			continue
		}

		for _, idx := range sampleIndices(g.rng, len(tags), 1+g.rng.Intn(3)) {
			taskTags = append(taskTags, model.TaskTag{
				ID:      g.ids.Allocate(idgen.KindTaskTag),
				TaskID:  task.ID,
				TagID:   tags[idx].ID,
				AddedAt: task.CreatedAt.Add(time.Duration(g.rng.Intn(121)) * time.Minute),
			})
		}
	}
	return taskTags
}
