package service

import (
	"context"
	"io"
)

// LogoStorage abstracts the blob store that holds uploaded logo images.
// Keys are opaque to the domain; the store decides layout and naming.
type LogoStorage interface {
	// Save streams an uploaded image into the store and returns the key
	// under which it was stored. contentType is the sniffed MIME type.
	Save(ctx context.Context, filename, contentType string, body io.Reader) (key string, err error)

	// Delete removes a stored object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// PublicURL resolves a stored key to the absolute URL browsers fetch it
	// from. Returns an empty string for an empty key.
	PublicURL(key string) string
}
