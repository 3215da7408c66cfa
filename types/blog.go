package types

import "time"

// Blog is an authored post, optionally illustrated by an uploaded image.
type Blog struct {
	ID       int    `json:"blog_id" db:"blog_id"`
	Title    string `json:"title" db:"title"`
	Content  string `json:"content" db:"content"`
	AuthorID int    `json:"author_id" db:"author_id"`

	// ImageID references an uploaded image, if any.
	ImageID *int `json:"image_id" db:"image_id"`

	// ImageURL is resolved from the referenced image on reads.
	ImageURL *string `json:"image_url" db:"image_url"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Comment belongs to a blog and may carry its own image reference.
type Comment struct {
	ID      int    `json:"comment_id" db:"comment_id"`
	BlogID  int    `json:"blog_id" db:"blog_id"`
	UserID  int    `json:"user_id" db:"user_id"`
	Content string `json:"content" db:"content"`

	ImageID  *int    `json:"image_id" db:"image_id"`
	ImageURL *string `json:"image_url" db:"image_url"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
