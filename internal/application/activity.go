package application

import (
	"context"

	"activityboard/internal/domain/entities"
	"activityboard/internal/ports/output"
)

type ActivityService struct {
	activityRepo output.ActivityRepository
}

func NewActivityService(activityRepo output.ActivityRepository) *ActivityService {
	return &ActivityService{activityRepo: activityRepo}
}

// ListActivities returns every activity in the order it was created, each
// with its roster attached in join order. Counts are never cached: callers
// derive spots-left from the snapshot they receive.
func (s *ActivityService) ListActivities(ctx context.Context) ([]entities.Activity, error) {
	return s.activityRepo.FindAll(ctx)
}
