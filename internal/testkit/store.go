// Package testkit provides in-memory implementations of the output ports
// for use in tests.
package testkit

import (
	"context"
	"errors"
	"sync"
	"time"

	"activityboard/internal/domain/entities"
	"activityboard/internal/ports/output"
)

var errNotFound = errors.New("testkit: not found")

// Store holds activities and participants in memory, preserving insertion
// order the way the SQL repositories do.
type Store struct {
	mu           sync.Mutex
	activities   []*entities.Activity
	participants []*entities.Participant
	nextID       uint
}

func NewStore() *Store {
	return &Store{}
}

// AddActivity seeds an activity and returns it.
func (s *Store) AddActivity(name, description, schedule string, maxParticipants int) *entities.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	a := &entities.Activity{
		ID:              s.nextID,
		Name:            name,
		Description:     description,
		Schedule:        schedule,
		MaxParticipants: maxParticipants,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	s.activities = append(s.activities, a)
	return a
}

// AddParticipant seeds a participant for an activity and returns it.
func (s *Store) AddParticipant(activityID uint, email, name string) *entities.Participant {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	p := &entities.Participant{
		ID:         s.nextID,
		ActivityID: activityID,
		Email:      email,
		Name:       name,
		JoinedAt:   time.Now(),
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	s.participants = append(s.participants, p)
	return p
}

// ActivityRepo returns an output.ActivityRepository view of the store.
func (s *Store) ActivityRepo() output.ActivityRepository {
	return &activityRepo{store: s}
}

// ParticipantRepo returns an output.ParticipantRepository view of the store.
func (s *Store) ParticipantRepo() output.ParticipantRepository {
	return &participantRepo{store: s}
}

func (s *Store) participantsFor(activityID uint) []entities.Participant {
	var out []entities.Participant
	for _, p := range s.participants {
		if p.ActivityID == activityID {
			out = append(out, *p)
		}
	}
	return out
}

type activityRepo struct {
	store *Store
}

func (r *activityRepo) FindAll(ctx context.Context) ([]entities.Activity, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]entities.Activity, 0, len(r.store.activities))
	for _, a := range r.store.activities {
		copied := *a
		copied.Participants = r.store.participantsFor(a.ID)
		out = append(out, copied)
	}
	return out, nil
}

func (r *activityRepo) FindByName(ctx context.Context, name string) (*entities.Activity, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, a := range r.store.activities {
		if a.Name == name {
			copied := *a
			copied.Participants = r.store.participantsFor(a.ID)
			return &copied, nil
		}
	}
	return nil, errNotFound
}

type participantRepo struct {
	store *Store
}

func (r *participantRepo) Create(ctx context.Context, participant *entities.Participant) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.nextID++
	participant.ID = r.store.nextID
	participant.CreatedAt = time.Now()
	participant.UpdatedAt = time.Now()
	copied := *participant
	r.store.participants = append(r.store.participants, &copied)
	return nil
}

func (r *participantRepo) FindByActivityIDAndEmail(ctx context.Context, activityID uint, email string) (*entities.Participant, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, p := range r.store.participants {
		if p.ActivityID == activityID && p.Email == email {
			copied := *p
			return &copied, nil
		}
	}
	return nil, errNotFound
}

func (r *participantRepo) Delete(ctx context.Context, participant *entities.Participant) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, p := range r.store.participants {
		if p.ID == participant.ID {
			r.store.participants = append(r.store.participants[:i], r.store.participants[i+1:]...)
			return nil
		}
	}
	return errNotFound
}

func (r *participantRepo) CountByActivityID(ctx context.Context, activityID uint) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var count int64
	for _, p := range r.store.participants {
		if p.ActivityID == activityID {
			count++
		}
	}
	return count, nil
}
