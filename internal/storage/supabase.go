package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	storage_go "github.com/supabase-community/storage-go"
)

// SupabaseStorage stores objects in a single Supabase storage bucket.
type SupabaseStorage struct {
	client *storage_go.Client
	bucket string
}

// NewSupabaseStorage returns an ObjectStorage backed by the Supabase storage
// API at url (the project's /storage/v1 endpoint), authenticated with the
// service key, writing into bucket.
func NewSupabaseStorage(url, serviceKey, bucket string) *SupabaseStorage {
	return &SupabaseStorage{
		client: storage_go.NewClient(url, serviceKey, nil),
		bucket: bucket,
	}
}

// Upload stores data under folder with a random name and returns its public URL.
func (s *SupabaseStorage) Upload(ctx context.Context, data []byte, contentType, folder string) (string, error) {
	name := uuid.NewString() + extensionFor(contentType)
	path := strings.Trim(folder, "/") + "/" + name
	opts := storage_go.FileOptions{ContentType: &contentType}
	if _, err := s.client.UploadFile(s.bucket, path, bytes.NewReader(data), opts); err != nil {
		return "", fmt.Errorf("upload %s: %w", path, err)
	}
	return s.client.GetPublicUrl(s.bucket, path).SignedURL, nil
}

// Delete removes the object behind publicURL from the bucket.
func (s *SupabaseStorage) Delete(ctx context.Context, publicURL string) error {
	path, ok := s.objectPath(publicURL)
	if !ok {
		return fmt.Errorf("url %q is not in bucket %q", publicURL, s.bucket)
	}
	if _, err := s.client.RemoveFile(s.bucket, []string{path}); err != nil {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}

// objectPath extracts the in-bucket path from a public object URL.
func (s *SupabaseStorage) objectPath(publicURL string) (string, bool) {
	marker := "/object/public/" + s.bucket + "/"
	i := strings.Index(publicURL, marker)
	if i < 0 {
		return "", false
	}
	path := publicURL[i+len(marker):]
	return path, path != ""
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "video/mp4":
		return ".mp4"
	default:
		return ""
	}
}
