package ports

import (
	"context"
	"io"
)

// StoreFileInput describes one uploaded file. Type is the caller-declared
// category ("image", "video", or anything else for a general file); the
// extension of OriginalName is validated against the category's allow-list.
type StoreFileInput struct {
	OriginalName string
	MimeType     string
	Type         string
	Content      io.Reader
}

// StoredFile is returned after a successful upload.
type StoredFile struct {
	FileURL      string
	OriginalName string
	MimeType     string
}

// UploadService validates and persists uploaded files under the upload root.
type UploadService interface {
	Store(ctx context.Context, input StoreFileInput) (*StoredFile, error)
}
