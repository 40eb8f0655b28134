// Package imagehost wraps the third-party image hosting API the relay
// forwards uploads to. The URL-to-delete-hash convention is a property
// of the provider and lives only inside its implementation.
package imagehost

import "context"

// Image is the hosted result of an upload.
type Image struct {
	URL        string
	DisplayURL string
	ThumbURL   string
	MediumURL  string
	DeleteURL  string
	Title      string
	Size       int64
	Time       int64
}

type Host interface {
	Upload(ctx context.Context, name string, data []byte) (*Image, error)
	DeleteByURL(ctx context.Context, imageURL string) error
}
