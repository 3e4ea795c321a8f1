package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"activityboard/internal/domain/entities"
	"activityboard/internal/ports/output"
)

var _ output.ActivityRepository = (*ActivityRepository)(nil)

const activityColumns = `id, name, description, schedule, max_participants, created_at, updated_at`

// ActivityRepository implements output.ActivityRepository using pgx.
type ActivityRepository struct {
	pool *pgxpool.Pool
}

// NewActivityRepository creates an ActivityRepository.
func NewActivityRepository(pool *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{pool: pool}
}

// FindAll returns activities in insertion order, with rosters in join order.
func (r *ActivityRepository) FindAll(ctx context.Context) ([]entities.Activity, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+activityColumns+` FROM activities ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	var activities []entities.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	for i := range activities {
		if err := r.attachParticipants(ctx, &activities[i]); err != nil {
			return nil, err
		}
	}
	return activities, nil
}

func (r *ActivityRepository) FindByName(ctx context.Context, name string) (*entities.Activity, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+activityColumns+` FROM activities WHERE name = $1`, name)
	a, err := scanActivity(row)
	if err != nil {
		return nil, fmt.Errorf("get activity by name: %w", err)
	}
	if err := r.attachParticipants(ctx, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ActivityRepository) attachParticipants(ctx context.Context, activity *entities.Activity) error {
	rows, err := r.pool.Query(ctx,
		`SELECT `+participantColumns+` FROM participants
		 WHERE activity_id = $1 ORDER BY joined_at, id`, activity.ID)
	if err != nil {
		return fmt.Errorf("get participants by activity id: %w", err)
	}
	participants, err := collectParticipants(rows)
	if err != nil {
		return fmt.Errorf("scan participants: %w", err)
	}
	activity.Participants = participants
	return nil
}
