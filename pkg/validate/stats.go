package validate

import (
	"github.com/workseed/workseed/pkg/model"
	"github.com/workseed/workseed/pkg/store"
)

// Stats summarizes the task-level distributions a generated dataset is
// calibrated against.
type Stats struct {
	TaskCount          int                `json:"task_count"`
	UnassignedRate     float64            `json:"unassigned_rate"`
	DueDateRate        float64            `json:"due_date_rate"`
	CompletionRate     float64            `json:"completion_rate"`
	CompletionByType   map[string]float64 `json:"completion_by_type"`
	PriorityShares     map[int]float64    `json:"priority_shares"`
	TasksByProjectType map[string]int     `json:"tasks_by_project_type"`
	SubtasksPerTask    float64            `json:"subtasks_per_task"`
	CommentsPerTask    float64            `json:"comments_per_task"`
}

// ComputeStats derives the distribution summary for a snapshot. The report
// server exposes it directly; Run folds it into the validation report.
func ComputeStats(snap *store.Snapshot) Stats {
	stats := Stats{
		TaskCount:          len(snap.Tasks),
		CompletionByType:   make(map[string]float64),
		PriorityShares:     make(map[int]float64),
		TasksByProjectType: make(map[string]int),
	}
	if len(snap.Tasks) == 0 {
		return stats
	}

	projectTypes := make(map[string]model.ProjectType, len(snap.Projects))
	for _, p := range snap.Projects {
		projectTypes[p.ID] = p.ProjectType
	}

	var unassigned, withDue, completed int
	completedByType := make(map[string]int)
	priorities := make(map[int]int)
	for _, t := range snap.Tasks {
		if t.AssigneeID == nil {
			unassigned++
		}
		if t.DueDate != nil {
			withDue++
		}
		projectType := string(projectTypes[t.ProjectID])
		stats.TasksByProjectType[projectType]++
		if t.Completed {
			completed++
			completedByType[projectType]++
		}
		priorities[t.Priority]++
	}

	total := float64(len(snap.Tasks))
	stats.UnassignedRate = float64(unassigned) / total
	stats.DueDateRate = float64(withDue) / total
	stats.CompletionRate = float64(completed) / total
	for projectType, n := range stats.TasksByProjectType {
		if n > 0 {
			stats.CompletionByType[projectType] = float64(completedByType[projectType]) / float64(n)
		}
	}
	for priority, n := range priorities {
		stats.PriorityShares[priority] = float64(n) / total
	}
	stats.SubtasksPerTask = float64(len(snap.Subtasks)) / total
	stats.CommentsPerTask = float64(len(snap.Comments)) / total
	return stats
}

// Distribution conformance only means anything on a reasonably large sample.
const distributionMinTasks = 500

func (v *validator) checkDistributions() {
	stats := v.report.Stats
	if stats.TaskCount < distributionMinTasks {
		return
	}
	if stats.UnassignedRate < 0.08 || stats.UnassignedRate > 0.22 {
		v.warnf("tasks", "", "unassigned rate %.3f outside expected band [0.08, 0.22]", stats.UnassignedRate)
	}
	if stats.DueDateRate < 0.82 || stats.DueDateRate > 0.97 {
		v.warnf("tasks", "", "due date rate %.3f outside expected band [0.82, 0.97]", stats.DueDateRate)
	}
	if share := stats.PriorityShares[model.PriorityNormal]; share < 0.40 || share > 0.60 {
		v.warnf("tasks", "", "normal priority share %.3f outside expected band [0.40, 0.60]", share)
	}
}
