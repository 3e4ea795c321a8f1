package input

import (
	"context"

	"activityboard/internal/domain/entities"
)

type ActivityUseCase interface {
	ListActivities(ctx context.Context) ([]entities.Activity, error)
}
