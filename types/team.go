package types

import "time"

// Team represents a competition team led by a user.
type Team struct {
	ID         int       `json:"team_id" db:"team_id"`
	TeamName   string    `json:"team_name" db:"team_name"`
	LeaderID   int       `json:"leader_id" db:"leader_id"`
	SchoolName string    `json:"school_name" db:"school_name"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
