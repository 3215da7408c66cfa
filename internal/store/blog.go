package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/tuyoleni/nust-competion-api/types"
)

// BlogRepository handles persistence for blogs.
type BlogRepository struct {
	db *sql.DB
}

func NewBlogRepository(db *sql.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

func (r *BlogRepository) Create(ctx context.Context, blog types.Blog) (types.Blog, error) {
	blog.CreatedAt = time.Now()

	const query = `
		INSERT INTO blogs (title, content, author_id, image_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING blog_id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		blog.Title,
		blog.Content,
		blog.AuthorID,
		blog.ImageID,
		blog.CreatedAt,
	).Scan(&blog.ID); err != nil {
		return types.Blog{}, err
	}
	return blog, nil
}

// List returns all blogs with the URL of their referenced image, if any.
func (r *BlogRepository) List(ctx context.Context) ([]types.Blog, error) {
	const query = `
		SELECT b.blog_id, b.title, b.content, b.author_id, b.image_id, i.url, b.created_at
		FROM blogs b
		LEFT JOIN images i ON b.image_id = i.image_id
		ORDER BY b.blog_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blogs := make([]types.Blog, 0)
	for rows.Next() {
		var blog types.Blog
		if err := rows.Scan(
			&blog.ID,
			&blog.Title,
			&blog.Content,
			&blog.AuthorID,
			&blog.ImageID,
			&blog.ImageURL,
			&blog.CreatedAt,
		); err != nil {
			return nil, err
		}
		blogs = append(blogs, blog)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return blogs, nil
}

func (r *BlogRepository) Get(ctx context.Context, id int) (types.Blog, error) {
	const query = `
		SELECT b.blog_id, b.title, b.content, b.author_id, b.image_id, i.url, b.created_at
		FROM blogs b
		LEFT JOIN images i ON b.image_id = i.image_id
		WHERE b.blog_id = $1`
	var blog types.Blog
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&blog.ID,
		&blog.Title,
		&blog.Content,
		&blog.AuthorID,
		&blog.ImageID,
		&blog.ImageURL,
		&blog.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Blog{}, ErrNotFound
		}
		return types.Blog{}, err
	}
	return blog, nil
}

func (r *BlogRepository) Patch(ctx context.Context, id int, patch Patch) error {
	return execPatch(ctx, r.db, "blogs", "blog_id", id, patch)
}

func (r *BlogRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM blogs WHERE blog_id = $1`
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
