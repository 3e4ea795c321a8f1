package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"activityboard/internal/domain/entities"
	"activityboard/internal/ports/output"
)

var _ output.ParticipantRepository = (*ParticipantRepository)(nil)

const participantColumns = `id, activity_id, email, name, joined_at, created_at, updated_at`

// ParticipantRepository implements output.ParticipantRepository using pgx.
type ParticipantRepository struct {
	pool *pgxpool.Pool
}

// NewParticipantRepository creates a ParticipantRepository.
func NewParticipantRepository(pool *pgxpool.Pool) *ParticipantRepository {
	return &ParticipantRepository{pool: pool}
}

func (r *ParticipantRepository) Create(ctx context.Context, participant *entities.Participant) error {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO participants (activity_id, email, name, joined_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		participant.ActivityID, participant.Email, participant.Name, participant.JoinedAt)
	if err := row.Scan(&participant.ID, &participant.CreatedAt, &participant.UpdatedAt); err != nil {
		return fmt.Errorf("create participant: %w", err)
	}
	return nil
}

func (r *ParticipantRepository) FindByActivityIDAndEmail(ctx context.Context, activityID uint, email string) (*entities.Participant, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+participantColumns+` FROM participants
		 WHERE activity_id = $1 AND email = $2`, activityID, email)
	p, err := scanParticipant(row)
	if err != nil {
		return nil, fmt.Errorf("get participant by activity id and email: %w", err)
	}
	return &p, nil
}

func (r *ParticipantRepository) Delete(ctx context.Context, participant *entities.Participant) error {
	if _, err := r.pool.Exec(ctx,
		`DELETE FROM participants WHERE id = $1`, participant.ID); err != nil {
		return fmt.Errorf("delete participant: %w", err)
	}
	return nil
}

func (r *ParticipantRepository) CountByActivityID(ctx context.Context, activityID uint) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM participants WHERE activity_id = $1`, activityID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count participants: %w", err)
	}
	return count, nil
}
