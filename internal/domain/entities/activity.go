package entities

import "time"

// Activity is an extracurricular activity students can sign up for.
// Name is the unique key the API addresses it by.
type Activity struct {
	ID              uint
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []Participant
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SpotsLeft returns the number of open spots at the current roster size.
func (a *Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// IsFull reports whether the activity has no open spots. A zero
// MaxParticipants means unlimited.
func (a *Activity) IsFull(confirmed int) bool {
	return a.MaxParticipants > 0 && confirmed >= a.MaxParticipants
}
