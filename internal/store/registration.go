package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/tuyoleni/nust-competion-api/types"
)

// RegistrationRepository handles persistence for competition registrations.
type RegistrationRepository struct {
	db *sql.DB
}

func NewRegistrationRepository(db *sql.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

func (r *RegistrationRepository) Create(ctx context.Context, registration types.Registration) (types.Registration, error) {
	registration.CreatedAt = time.Now()
	if registration.Status == "" {
		registration.Status = types.RegistrationStatusPending
	}

	const query = `
		INSERT INTO registrations (competition_id, user_id, team_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING registration_id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		registration.CompetitionID,
		registration.UserID,
		registration.TeamID,
		registration.Status,
		registration.CreatedAt,
	).Scan(&registration.ID); err != nil {
		return types.Registration{}, err
	}
	return registration, nil
}

func (r *RegistrationRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	const query = `UPDATE registrations SET status = $1 WHERE registration_id = $2`
	result, err := r.db.ExecContext(ctx, query, status, id)
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

func (r *RegistrationRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM registrations WHERE registration_id = $1`
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
