package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/tuyoleni/nust-competion-api/types"
)

// CommentRepository handles persistence for blog comments.
type CommentRepository struct {
	db *sql.DB
}

func NewCommentRepository(db *sql.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, comment types.Comment) (types.Comment, error) {
	comment.CreatedAt = time.Now()

	const query = `
		INSERT INTO comments (blog_id, user_id, content, image_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING comment_id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		comment.BlogID,
		comment.UserID,
		comment.Content,
		comment.ImageID,
		comment.CreatedAt,
	).Scan(&comment.ID); err != nil {
		return types.Comment{}, err
	}
	return comment, nil
}

// ListByBlog returns all comments of a blog with their image URLs. An empty
// result is not an error.
func (r *CommentRepository) ListByBlog(ctx context.Context, blogID int) ([]types.Comment, error) {
	const query = `
		SELECT c.comment_id, c.blog_id, c.user_id, c.content, c.image_id, i.url, c.created_at
		FROM comments c
		LEFT JOIN images i ON c.image_id = i.image_id
		WHERE c.blog_id = $1
		ORDER BY c.comment_id`
	rows, err := r.db.QueryContext(ctx, query, blogID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]types.Comment, 0)
	for rows.Next() {
		var comment types.Comment
		if err := rows.Scan(
			&comment.ID,
			&comment.BlogID,
			&comment.UserID,
			&comment.Content,
			&comment.ImageID,
			&comment.ImageURL,
			&comment.CreatedAt,
		); err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentRepository) Get(ctx context.Context, id int) (types.Comment, error) {
	const query = `
		SELECT c.comment_id, c.blog_id, c.user_id, c.content, c.image_id, i.url, c.created_at
		FROM comments c
		LEFT JOIN images i ON c.image_id = i.image_id
		WHERE c.comment_id = $1`
	var comment types.Comment
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&comment.ID,
		&comment.BlogID,
		&comment.UserID,
		&comment.Content,
		&comment.ImageID,
		&comment.ImageURL,
		&comment.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Comment{}, ErrNotFound
		}
		return types.Comment{}, err
	}
	return comment, nil
}

func (r *CommentRepository) Patch(ctx context.Context, id int, patch Patch) error {
	return execPatch(ctx, r.db, "comments", "comment_id", id, patch)
}

func (r *CommentRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM comments WHERE comment_id = $1`
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
