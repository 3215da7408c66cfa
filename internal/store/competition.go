package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/tuyoleni/nust-competion-api/types"
)

// CompetitionRepository handles persistence for competitions.
type CompetitionRepository struct {
	db *sql.DB
}

func NewCompetitionRepository(db *sql.DB) *CompetitionRepository {
	return &CompetitionRepository{db: db}
}

func (r *CompetitionRepository) List(ctx context.Context) ([]types.Competition, error) {
	const query = `
		SELECT competition_id, name, description, start_date, end_date, status, category, created_at
		FROM competitions
		ORDER BY competition_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	competitions := make([]types.Competition, 0)
	for rows.Next() {
		var competition types.Competition
		if err := rows.Scan(
			&competition.ID,
			&competition.Name,
			&competition.Description,
			&competition.StartDate,
			&competition.EndDate,
			&competition.Status,
			&competition.Category,
			&competition.CreatedAt,
		); err != nil {
			return nil, err
		}
		competitions = append(competitions, competition)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return competitions, nil
}

func (r *CompetitionRepository) Create(ctx context.Context, competition types.Competition) (types.Competition, error) {
	competition.CreatedAt = time.Now()

	const query = `
		INSERT INTO competitions (name, description, start_date, end_date, status, category, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING competition_id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		competition.Name,
		competition.Description,
		competition.StartDate,
		competition.EndDate,
		competition.Status,
		competition.Category,
		competition.CreatedAt,
	).Scan(&competition.ID); err != nil {
		return types.Competition{}, err
	}
	return competition, nil
}

func (r *CompetitionRepository) Patch(ctx context.Context, id int, patch Patch) error {
	return execPatch(ctx, r.db, "competitions", "competition_id", id, patch)
}

func (r *CompetitionRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM competitions WHERE competition_id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
