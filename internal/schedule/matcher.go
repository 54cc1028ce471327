package schedule

import (
	"time"

	"github.com/google/uuid"

	"neurotask/internal/domain"
)

// DefaultMessage is used when a due task has no description.
const DefaultMessage = "time to start"

// Notification is emitted when a pending task reaches its due minute.
type Notification struct {
	ID      string
	TaskID  int64
	Title   string
	Message string
}

// CheckDue evaluates tasks against now and returns the notifications to
// deliver, the task set with updated dedup flags, and the new check date.
//
// lastCheck is the caller-owned date ("2006-01-02") of the previous check;
// when now falls on a different day every dedup flag is cleared before
// matching, so a task fires at most once per calendar day and can fire
// again the next day. Matching is exact minute-level string equality
// between the specifier's time-of-day and now: a caller that checks less
// often than once per minute will miss firings. Inputs are not mutated;
// persisting the returned state is the caller's responsibility.
func CheckDue(tasks []domain.Task, now time.Time, lastCheck string) ([]Notification, []domain.Task, string) {
	out := make([]domain.Task, len(tasks))
	copy(out, tasks)

	today := now.Format("2006-01-02")
	if today != lastCheck {
		for i := range out {
			out[i].NotifiedToday = false
		}
	}

	minute := now.Format("15:04")
	var notifications []Notification
	for i := range out {
		task := &out[i]
		if task.Completed || task.NotifiedToday {
			continue
		}
		if task.TimeOfDay() != minute {
			continue
		}
		message := task.Description
		if message == "" {
			message = DefaultMessage
		}
		notifications = append(notifications, Notification{
			ID:      uuid.NewString(),
			TaskID:  task.ID,
			Title:   task.Title,
			Message: message,
		})
		task.NotifiedToday = true
	}

	return notifications, out, today
}
