package types

import "time"

// Competition status values.
const (
	CompetitionStatusUpcoming  = "upcoming"
	CompetitionStatusActive    = "active"
	CompetitionStatusCompleted = "completed"
)

// Competition category values.
const (
	CompetitionCategoryHighSchool = "high_school"
	CompetitionCategoryTertiary   = "tertiary"
)

// Competition represents a programming competition.
type Competition struct {
	ID          int       `json:"competition_id" db:"competition_id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description" db:"description"`
	StartDate   time.Time `json:"start_date" db:"start_date"`
	EndDate     time.Time `json:"end_date" db:"end_date"`

	// Status is one of "upcoming", "active", "completed".
	Status string `json:"status" db:"status"`

	// Category is one of "high_school", "tertiary".
	Category string `json:"category" db:"category"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Registration status values.
const (
	RegistrationStatusPending   = "pending"
	RegistrationStatusApproved  = "approved"
	RegistrationStatusWithdrawn = "withdrawn"
)

// Registration links a user and team to a competition.
type Registration struct {
	ID            int    `json:"registration_id" db:"registration_id"`
	CompetitionID int    `json:"competition_id" db:"competition_id"`
	UserID        int    `json:"user_id" db:"user_id"`
	TeamID        int    `json:"team_id" db:"team_id"`
	Status        string `json:"status" db:"status"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
