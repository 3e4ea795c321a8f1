package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"activityboard/internal/domain"
	"activityboard/internal/domain/entities"
	"activityboard/internal/ports/output"
)

type SignupService struct {
	activityRepo    output.ActivityRepository
	participantRepo output.ParticipantRepository
	translator      output.T
}

func NewSignupService(
	activityRepo output.ActivityRepository,
	participantRepo output.ParticipantRepository,
	translator output.T,
) *SignupService {
	return &SignupService{
		activityRepo:    activityRepo,
		participantRepo: participantRepo,
		translator:      translator,
	}
}

// Signup registers email for the named activity. There is no waitlist: a
// full activity rejects the signup outright.
func (s *SignupService) Signup(ctx context.Context, locale, activityName, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", domain.ErrEmailRequired
	}
	activity, err := s.activityRepo.FindByName(ctx, activityName)
	if err != nil {
		return "", domain.ErrActivityNotFound
	}
	existing, _ := s.participantRepo.FindByActivityIDAndEmail(ctx, activity.ID, email)
	if existing != nil {
		return "", domain.ErrAlreadySignedUp
	}
	count, err := s.participantRepo.CountByActivityID(ctx, activity.ID)
	if err != nil {
		return "", fmt.Errorf("count participants: %w", err)
	}
	if activity.IsFull(int(count)) {
		return "", domain.ErrActivityFull
	}
	participant := &entities.Participant{
		ActivityID: activity.ID,
		Email:      email,
		JoinedAt:   time.Now(),
	}
	if err := s.participantRepo.Create(ctx, participant); err != nil {
		return "", fmt.Errorf("create participant: %w", err)
	}
	return s.translator.T(locale, "signup.success", map[string]any{
		"Email":    email,
		"Activity": activity.Name,
	}), nil
}

// Unregister removes email from the named activity.
func (s *SignupService) Unregister(ctx context.Context, locale, activityName, email string) (string, error) {
	activity, err := s.activityRepo.FindByName(ctx, activityName)
	if err != nil {
		return "", domain.ErrActivityNotFound
	}
	participant, err := s.participantRepo.FindByActivityIDAndEmail(ctx, activity.ID, email)
	if err != nil || participant == nil {
		return "", domain.ErrNotRegistered
	}
	if err := s.participantRepo.Delete(ctx, participant); err != nil {
		return "", fmt.Errorf("delete participant: %w", err)
	}
	return s.translator.T(locale, "unregister.success", map[string]any{
		"Email":    email,
		"Activity": activity.Name,
	}), nil
}
