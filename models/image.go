package models

import "time"

// BucketLink is the firebase storage bucket holding all uploaded images.
const BucketLink = "rentloop-images"

type ImageType string

const (
	ImageTypeProduct  ImageType = "product"
	ImageTypeProfile  ImageType = "profile"
	ImageTypeDocument ImageType = "document"
)

type Image struct {
	ID        int       `json:"id" db:"id"`
	Bucket    string    `json:"-" db:"bucket"`
	Path      string    `json:"-" db:"path"`
	Type      ImageType `json:"type" db:"type"`
	CreatedAt time.Time `json:"-" db:"created_at"`
}
