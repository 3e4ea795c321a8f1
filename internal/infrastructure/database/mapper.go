package database

import (
	"github.com/jackc/pgx/v5"

	"activityboard/internal/domain/entities"
)

// scanActivity reads one activities row. Column order must match
// activityColumns.
func scanActivity(row pgx.Row) (entities.Activity, error) {
	var a entities.Activity
	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Description,
		&a.Schedule,
		&a.MaxParticipants,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

// scanParticipant reads one participants row. Column order must match
// participantColumns.
func scanParticipant(row pgx.Row) (entities.Participant, error) {
	var p entities.Participant
	err := row.Scan(
		&p.ID,
		&p.ActivityID,
		&p.Email,
		&p.Name,
		&p.JoinedAt,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

func collectParticipants(rows pgx.Rows) ([]entities.Participant, error) {
	defer rows.Close()
	var out []entities.Participant
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
