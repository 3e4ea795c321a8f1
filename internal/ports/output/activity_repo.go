package output

import (
	"context"

	"activityboard/internal/domain/entities"
)

type ActivityRepository interface {
	// FindAll returns every activity in insertion order, with participants
	// attached in join order.
	FindAll(ctx context.Context) ([]entities.Activity, error)
	FindByName(ctx context.Context, name string) (*entities.Activity, error)
}
