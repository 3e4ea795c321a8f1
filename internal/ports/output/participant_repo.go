package output

import (
	"context"

	"activityboard/internal/domain/entities"
)

type ParticipantRepository interface {
	Create(ctx context.Context, participant *entities.Participant) error
	FindByActivityIDAndEmail(ctx context.Context, activityID uint, email string) (*entities.Participant, error)
	Delete(ctx context.Context, participant *entities.Participant) error
	CountByActivityID(ctx context.Context, activityID uint) (int64, error)
}
