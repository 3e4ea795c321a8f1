package entities

import "time"

// Participant represents a student's registration for an activity.
// Name is an optional display name; Email is the identifier.
type Participant struct {
	ID         uint
	ActivityID uint
	Email      string
	Name       string
	JoinedAt   time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
