package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"neurotask/internal/repository"
	"neurotask/internal/schedule"
)

// NotifyService runs the due-task check for one user and persists the
// resulting dedup state. The per-day state (task dedup flags plus the
// user's last check date) lives in the stores, not in this service, so
// each call is self-contained. Concurrent checks for the same user are
// last-writer-wins on that state; at-most-once-per-day delivery is not
// guaranteed under concurrency.
type NotifyService interface {
	Check(ctx context.Context, userID int64, now time.Time) ([]schedule.Notification, error)
}

type notifyService struct {
	users  repository.UserRepository
	tasks  repository.TaskRepository
	logger *logrus.Logger
}

func NewNotifyService(users repository.UserRepository, tasks repository.TaskRepository, logger *logrus.Logger) NotifyService {
	return &notifyService{
		users:  users,
		tasks:  tasks,
		logger: logger,
	}
}

func (s *notifyService) Check(ctx context.Context, userID int64, now time.Time) ([]schedule.Notification, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.tasks.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	notifications, updated, checkDate := schedule.CheckDue(tasks, now, user.LastCheckDate)

	for i := range updated {
		if updated[i].NotifiedToday == tasks[i].NotifiedToday {
			continue
		}
		flag := updated[i].NotifiedToday
		if err := s.tasks.Update(ctx, updated[i].ID, repository.TaskUpdate{NotifiedToday: &flag}); err != nil {
			return nil, err
		}
	}

	if checkDate != user.LastCheckDate {
		if err := s.users.Update(ctx, userID, repository.UserUpdate{LastCheckDate: &checkDate}); err != nil {
			return nil, err
		}
	}

	if len(notifications) > 0 {
		s.logger.WithFields(logrus.Fields{
			"user_id": userID,
			"count":   len(notifications),
		}).Info("due tasks fired")
	}

	return notifications, nil
}
