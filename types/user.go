package types

import "time"

// User represents a registered account on the platform.
// It contains identity, contact, and role metadata.
type User struct {
	// ID is the unique identifier of the user.
	ID int `json:"user_id" db:"user_id"`

	// Name is the user's display or full name.
	Name string `json:"name" db:"name"`

	// Email is the user's unique email address, used as the login name.
	Email string `json:"email" db:"email"`

	// PasswordHash stores the hashed representation of the user's password.
	// This field is never exposed in API responses.
	PasswordHash string `json:"-" db:"password_hash"`

	// Phone is the user's contact number, if provided.
	Phone *string `json:"phone" db:"phone"`

	// TypeOfInstitution is the kind of institution the user belongs to.
	TypeOfInstitution string `json:"type_of_institution" db:"type_of_institution"`

	// Affiliation is the institution the user is affiliated with, if provided.
	Affiliation *string `json:"affiliation" db:"affiliation"`

	// ProgrammingLanguage is the user's preferred programming language.
	ProgrammingLanguage *string `json:"programming_language" db:"programming_language"`

	// PreferredIDE is the user's preferred development environment.
	PreferredIDE *string `json:"preferred_ide" db:"preferred_ide"`

	// MentorDetails holds contact details for the user's mentor, if any.
	MentorDetails *string `json:"mentor_details" db:"mentor_details"`

	// IsAdmin indicates whether the user may perform administrative operations.
	IsAdmin bool `json:"is_admin" db:"is_admin"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
