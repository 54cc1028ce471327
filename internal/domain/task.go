package domain

import (
	"strings"
	"time"
)

type TaskKind string

const (
	TaskKindSingle TaskKind = "single"
	TaskKindDaily  TaskKind = "daily"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// Task represents a single to-do item owned by one user.
type Task struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	// DueDate is the due specifier: "15:04" for a recurring time-of-day,
	// or "2006-01-02" / "2006-01-02 15:04" for a one-time deadline.
	// Empty means no due date.
	DueDate  string
	Kind     TaskKind
	Priority TaskPriority
	// Completed tasks never fire notifications and sort after pending ones.
	Completed bool
	// NotifiedToday marks that a due notification already fired for the
	// current calendar day. Cleared on the first check of a new day.
	NotifiedToday bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// EffectivePriority resolves the display priority, defaulting to medium
// when the stored value is absent. The stored field is never rewritten;
// some backends simply do not persist a priority.
func (t Task) EffectivePriority() TaskPriority {
	switch t.Priority {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return t.Priority
	default:
		return TaskPriorityMedium
	}
}

// PriorityWeight maps the effective priority to its sort weight.
// High sorts first under an ascending comparison.
func (t Task) PriorityWeight() int {
	switch t.EffectivePriority() {
	case TaskPriorityHigh:
		return 1
	case TaskPriorityMedium:
		return 2
	default:
		return 3
	}
}

// TimeOfDay extracts the "15:04" component of the due specifier, or ""
// when the specifier has no time component.
func (t Task) TimeOfDay() string {
	spec := strings.TrimSpace(t.DueDate)
	if spec == "" {
		return ""
	}
	if i := strings.IndexByte(spec, ' '); i >= 0 {
		spec = strings.TrimSpace(spec[i+1:])
	}
	if _, err := time.Parse("15:04", spec); err != nil {
		return ""
	}
	return spec
}

// ValidKind reports whether k is a known task kind.
func ValidKind(k TaskKind) bool {
	return k == TaskKindSingle || k == TaskKindDaily
}

// ValidPriority reports whether p is a known priority. The empty value is
// accepted; consumers default it to medium at display time.
func ValidPriority(p TaskPriority) bool {
	switch p {
	case "", TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

// ValidDueSpecifier reports whether spec is an acceptable due specifier
// for the given kind. Empty is always acceptable (no due date). Daily
// tasks carry only a time-of-day; single tasks carry a date, optionally
// with a time.
func ValidDueSpecifier(kind TaskKind, spec string) bool {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return true
	}
	if kind == TaskKindDaily {
		_, err := time.Parse("15:04", spec)
		return err == nil
	}
	for _, layout := range []string{"2006-01-02", "2006-01-02 15:04"} {
		if _, err := time.Parse(layout, spec); err == nil {
			return true
		}
	}
	return false
}
