package domain

import "time"

// User represents a registered account that owns tasks.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Theme        string
	// LastCheckDate is the calendar day ("2006-01-02") of the most recent
	// due-task check for this user. Empty means never checked.
	LastCheckDate string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
