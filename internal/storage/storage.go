// Package storage provides file upload and deletion against a cloud object
// store. Uploaded files become publicly reachable URLs that entities reference
// as plain strings.
package storage

import "context"

// ObjectStorage uploads files and deletes them by their public URL.
type ObjectStorage interface {
	// Upload stores data under a generated name inside folder and returns
	// the public URL of the stored object.
	Upload(ctx context.Context, data []byte, contentType, folder string) (string, error)
	// Delete removes the object behind publicURL. Unknown URLs are an error;
	// callers decide whether deletion failures are fatal.
	Delete(ctx context.Context, publicURL string) error
}
