package schedule

import (
	"sort"
	"strings"

	"neurotask/internal/domain"
)

// Strategy names a sort ordering selectable by the caller.
type Strategy string

const (
	StrategyPriority  Strategy = "priority"
	StrategyDueDate   Strategy = "due_date"
	StrategyCreatedAt Strategy = "created_at"
)

// FilterAll is the pass-through value for both filter dimensions.
const FilterAll = "all"

// Tasks without a due date sort after every dated task.
const maxDueDate = "9999-12-31"

// ValidPriorityFilter reports whether v is a usable priority filter value.
func ValidPriorityFilter(v string) bool {
	switch v {
	case FilterAll, string(domain.TaskPriorityLow), string(domain.TaskPriorityMedium), string(domain.TaskPriorityHigh):
		return true
	}
	return false
}

// ValidKindFilter reports whether v is a usable kind filter value.
func ValidKindFilter(v string) bool {
	switch v {
	case FilterAll, string(domain.TaskKindSingle), string(domain.TaskKindDaily):
		return true
	}
	return false
}

// ValidStrategy reports whether s is a known sort strategy.
func ValidStrategy(s Strategy) bool {
	switch s {
	case StrategyPriority, StrategyDueDate, StrategyCreatedAt:
		return true
	}
	return false
}

// Filter returns the tasks matching both filter dimensions. "all" is a
// pass-through for its dimension; the two dimensions compose by AND.
// A task with no stored priority counts as medium.
func Filter(tasks []domain.Task, priority, kind string) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if priority != FilterAll && string(task.EffectivePriority()) != priority {
			continue
		}
		if kind != FilterAll && string(task.Kind) != kind {
			continue
		}
		out = append(out, task)
	}
	return out
}

// Sort returns a new ordered view of tasks under the given strategy. Every
// strategy places pending tasks before completed ones; ties keep their
// input order (stable). Inputs are not mutated.
func Sort(tasks []domain.Task, strategy Strategy) []domain.Task {
	out := make([]domain.Task, len(tasks))
	copy(out, tasks)

	switch strategy {
	case StrategyPriority:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Completed != out[j].Completed {
				return !out[i].Completed
			}
			return out[i].PriorityWeight() < out[j].PriorityWeight()
		})
	case StrategyDueDate:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Completed != out[j].Completed {
				return !out[i].Completed
			}
			return dueKey(out[i]) < dueKey(out[j])
		})
	case StrategyCreatedAt:
		// The one strategy with a reversed secondary order: most recently
		// created first.
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Completed != out[j].Completed {
				return !out[i].Completed
			}
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return !out[i].Completed && out[j].Completed
		})
	}

	return out
}

func dueKey(task domain.Task) string {
	if strings.TrimSpace(task.DueDate) == "" {
		return maxDueDate
	}
	return task.DueDate
}
