package types

import "time"

// Message recipient groups. These are coarse broadcast scopes,
// not per-recipient delivery lists.
const (
	RecipientGroupAll   = "all"
	RecipientGroupAdmin = "admin"
	RecipientGroupUsers = "users"
)

// Message is a broadcast message sent to a recipient group.
type Message struct {
	ID             int       `json:"message_id" db:"message_id"`
	SenderID       int       `json:"sender_id" db:"sender_id"`
	RecipientGroup string    `json:"recipient_group" db:"recipient_group"`
	Content        string    `json:"content" db:"content"`
	SentDate       time.Time `json:"sent_date" db:"sent_date"`
}
