package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/tuyoleni/nust-competion-api/types"
)

// MessageRepository handles persistence for broadcast messages.
type MessageRepository struct {
	db *sql.DB
}

func NewMessageRepository(db *sql.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(ctx context.Context, message types.Message) (types.Message, error) {
	message.SentDate = time.Now()

	const query = `
		INSERT INTO messages (sender_id, recipient_group, content, sent_date)
		VALUES ($1, $2, $3, $4)
		RETURNING message_id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		message.SenderID,
		message.RecipientGroup,
		message.Content,
		message.SentDate,
	).Scan(&message.ID); err != nil {
		return types.Message{}, err
	}
	return message, nil
}

// List returns all messages, newest first.
func (r *MessageRepository) List(ctx context.Context) ([]types.Message, error) {
	const query = `
		SELECT message_id, sender_id, recipient_group, content, sent_date
		FROM messages
		ORDER BY sent_date DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]types.Message, 0)
	for rows.Next() {
		var message types.Message
		if err := rows.Scan(
			&message.ID,
			&message.SenderID,
			&message.RecipientGroup,
			&message.Content,
			&message.SentDate,
		); err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *MessageRepository) Get(ctx context.Context, id int) (types.Message, error) {
	const query = `
		SELECT message_id, sender_id, recipient_group, content, sent_date
		FROM messages
		WHERE message_id = $1`
	var message types.Message
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&message.ID,
		&message.SenderID,
		&message.RecipientGroup,
		&message.Content,
		&message.SentDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Message{}, ErrNotFound
		}
		return types.Message{}, err
	}
	return message, nil
}

func (r *MessageRepository) Patch(ctx context.Context, id int, patch Patch) error {
	return execPatch(ctx, r.db, "messages", "message_id", id, patch)
}

func (r *MessageRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM messages WHERE message_id = $1`
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
