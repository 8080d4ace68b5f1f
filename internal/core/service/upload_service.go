package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fabrica/realestate-crm/internal/api/metrics"
	"github.com/fabrica/realestate-crm/internal/core/domain"
	"github.com/fabrica/realestate-crm/internal/core/ports"
)

var allowedImageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

var allowedVideoExts = map[string]bool{
	".mp4": true, ".webm": true, ".ogg": true, ".mov": true,
}

var allowedFileExts = map[string]bool{
	".pdf": true, ".doc": true, ".docx": true, ".xls": true, ".xlsx": true,
	".zip": true, ".glb": true, ".gltf": true, ".obj": true,
}

// UploadService stores uploaded files under <root>/{images,videos,files},
// renaming each to a generated identifier that preserves the original
// extension. Validation is by extension allow-list per declared type; the
// declared MIME type is echoed back, not verified.
type UploadService struct {
	root   string
	logger zerolog.Logger
}

// NewUploadService creates the service and its three subdirectories.
func NewUploadService(root string, logger zerolog.Logger) (*UploadService, error) {
	for _, sub := range []string{"images", "videos", "files"} {
		if err := os.MkdirAll(filepath.Join(root, sub), 0o755); err != nil {
			return nil, fmt.Errorf("create upload dir %s: %w", sub, err)
		}
	}
	return &UploadService{root: root, logger: logger}, nil
}

func (s *UploadService) Store(ctx context.Context, input ports.StoreFileInput) (*ports.StoredFile, error) {
	ext := strings.ToLower(filepath.Ext(input.OriginalName))

	var subdir, prefix string
	switch input.Type {
	case domain.UploadTypeImage:
		if !allowedImageExts[ext] {
			return nil, fmt.Errorf("%w: image %s", domain.ErrInvalidFileType, ext)
		}
		subdir, prefix = "images", "/images/"
	case domain.UploadTypeVideo:
		if !allowedVideoExts[ext] {
			return nil, fmt.Errorf("%w: video %s", domain.ErrInvalidFileType, ext)
		}
		subdir, prefix = "videos", "/videos/"
	default:
		if !allowedFileExts[ext] {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidFileType, ext)
		}
		subdir, prefix = "files", "/files/"
	}

	name := uuid.NewString() + ext
	path := filepath.Join(s.root, subdir, name)

	dst, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create upload file: %w", err)
	}
	if _, err := io.Copy(dst, input.Content); err != nil {
		dst.Close()
		os.Remove(path)
		return nil, fmt.Errorf("write upload file: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("close upload file: %w", err)
	}

	uploadType := input.Type
	if uploadType != domain.UploadTypeImage && uploadType != domain.UploadTypeVideo {
		uploadType = domain.UploadTypeFile
	}
	metrics.UploadsTotal.WithLabelValues(uploadType).Inc()
	s.logger.Info().Str("file", name).Str("type", uploadType).Msg("file uploaded")

	return &ports.StoredFile{
		FileURL:      prefix + name,
		OriginalName: input.OriginalName,
		MimeType:     input.MimeType,
	}, nil
}
