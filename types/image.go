package types

import "time"

// Image records an object stored in the object storage service.
type Image struct {
	ID         int       `json:"image_id" db:"image_id"`
	URL        string    `json:"url" db:"url"`
	UploaderID int       `json:"uploader_id" db:"uploader_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
