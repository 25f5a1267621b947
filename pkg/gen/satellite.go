package gen

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/workseed/workseed/pkg/idgen"
	"github.com/workseed/workseed/pkg/model"
	"github.com/workseed/workseed/pkg/timegen"
)

var (
	subtaskCounts       = []int{1, 2, 3, 4, 5}
	subtaskCountWeights = []float64{0.40, 0.30, 0.20, 0.07, 0.03}

	commentCounts       = []int{1, 2, 3, 4, 5}
	commentCountWeights = []float64{0.35, 0.30, 0.20, 0.10, 0.05}
)

// SubtaskGenerator attaches subtasks to a fraction of tasks. Subtasks are
// created minutes after their parent, inherit its due date, and mostly agree
// with its completion state.
type SubtaskGenerator struct {
	rng         *rand.Rand
	ids         *idgen.Allocator
	probability float64
	maxTotal    int
}

func NewSubtaskGenerator(rng *rand.Rand, ids *idgen.Allocator, probability float64, maxTotal int) *SubtaskGenerator {
	return &SubtaskGenerator{rng: rng, ids: ids, probability: probability, maxTotal: maxTotal}
}

func (g *SubtaskGenerator) Generate(tasks []model.Task, users []model.User) []model.Subtask {
	subtasks := make([]model.Subtask, 0, len(tasks))

	for _, task := range tasks {
		if g.maxTotal > 0 && len(subtasks) >= g.maxTotal {
			break
		}
		if g.rng.Float64() > g.probability {
			continue
		}

		count := subtaskCounts[weightedIndex(g.rng, subtaskCountWeights)]
		for order := 0; order < count; order++ {
			var assigneeID *string
			if g.rng.Float64() > 0.20 {
				id := users[g.rng.Intn(len(users))].ID
				assigneeID = &id
			}

			createdAt := task.CreatedAt.Add(time.Duration(5+g.rng.Intn(56)) * time.Minute)

			// Mostly completed with the parent, not a strict copy.
			completed := task.Completed && task.CompletedAt != nil && g.rng.Float64() < 0.85
			var completedAt *time.Time
			if completed {
				t := *task.CompletedAt
				if t.Before(createdAt) {
					t = createdAt
				}
				completedAt = &t
			}

			subtasks = append(subtasks, model.Subtask{
				ID:           g.ids.Allocate(idgen.KindSubtask),
				ParentTaskID: task.ID,
				ProjectID:    task.ProjectID,
				Name:         fmt.Sprintf("%s - Subtask %d", task.Name, order+1),
				CreatedAt:    createdAt,
				AssigneeID:   assigneeID,
				DueDate:      task.DueDate,
				Completed:    completed,
				CompletedAt:  completedAt,
				DisplayOrder: order,
			})
		}
	}
	return subtasks
}

var commentTexts = []string{
	"Looks good!",
	"Ready for review",
	"Making progress on this",
	"Blocked on a dependency, will resume next week",
	"Updated based on feedback",
	"This is ready to merge",
	"Added the changes as requested",
	"Discussed offline, we're aligned on approach",
	"Testing in progress",
	"Documentation updated",
}

// CommentGenerator attaches discussion to a fraction of tasks. Comment
// timestamps land between task creation and completion when a completion
// exists, and within the recent past otherwise.
type CommentGenerator struct {
	rng         *rand.Rand
	ids         *idgen.Allocator
	sampler     *timegen.Sampler
	probability float64
	maxTotal    int
	now         func() time.Time
}

func NewCommentGenerator(rng *rand.Rand, ids *idgen.Allocator, sampler *timegen.Sampler, probability float64, maxTotal int) *CommentGenerator {
	return &CommentGenerator{
		rng:         rng,
		ids:         ids,
		sampler:     sampler,
		probability: probability,
		maxTotal:    maxTotal,
		now:         time.Now,
	}
}

func (g *CommentGenerator) Generate(tasks []model.Task, users []model.User) []model.Comment {
	comments := make([]model.Comment, 0, len(tasks))

	for _, task := range tasks {
		if g.maxTotal > 0 && len(comments) >= g.maxTotal {
			break
		}
		if g.rng.Float64() > g.probability {
			continue
		}

		count := commentCounts[weightedIndex(g.rng, commentCountWeights)]
		for i := 0; i < count; i++ {
			comments = append(comments, model.Comment{
				ID:        g.ids.Allocate(idgen.KindComment),
				TaskID:    task.ID,
				UserID:    users[g.rng.Intn(len(users))].ID,
				Text:      commentTexts[g.rng.Intn(len(commentTexts))],
				CreatedAt: g.commentTime(task),
			})
		}
	}
	return comments
}

func (g *CommentGenerator) commentTime(task model.Task) time.Time {
	if task.CompletedAt != nil && task.CompletedAt.After(task.CreatedAt) {
		// Uniform within the task's active window.
		window := task.CompletedAt.Sub(task.CreatedAt)
		return task.CreatedAt.Add(time.Duration(g.rng.Int63n(int64(window) + 1)))
	}

	// No completion to anchor on: somewhere in the last two weeks, but never
	// within five minutes of the task being created.
	at := g.now().AddDate(0, 0, -g.rng.Intn(15))
	if floor := task.CreatedAt.Add(5 * time.Minute); at.Before(floor) {
		return floor
	}
	return at
}
