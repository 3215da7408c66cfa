package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/tuyoleni/nust-competion-api/types"
)

// TeamRepository handles persistence for teams.
type TeamRepository struct {
	db *sql.DB
}

func NewTeamRepository(db *sql.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, team types.Team) (types.Team, error) {
	team.CreatedAt = time.Now()

	const query = `
		INSERT INTO teams (team_name, leader_id, school_name, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING team_id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		team.TeamName,
		team.LeaderID,
		team.SchoolName,
		team.CreatedAt,
	).Scan(&team.ID); err != nil {
		return types.Team{}, err
	}
	return team, nil
}

// Find returns teams filtered by id or school name. A nil id and empty school
// name return every team. The id filter wins when both are supplied.
func (r *TeamRepository) Find(ctx context.Context, teamID *int, schoolName string) ([]types.Team, error) {
	query := `
		SELECT team_id, team_name, leader_id, school_name, created_at
		FROM teams`
	var args []any
	switch {
	case teamID != nil:
		query += ` WHERE team_id = $1`
		args = append(args, *teamID)
	case schoolName != "":
		query += ` WHERE school_name = $1`
		args = append(args, schoolName)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]types.Team, 0)
	for rows.Next() {
		var team types.Team
		if err := rows.Scan(
			&team.ID,
			&team.TeamName,
			&team.LeaderID,
			&team.SchoolName,
			&team.CreatedAt,
		); err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *TeamRepository) Patch(ctx context.Context, id int, patch Patch) error {
	return execPatch(ctx, r.db, "teams", "team_id", id, patch)
}
