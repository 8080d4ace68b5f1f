package domain

import "errors"

var ErrInvalidFileType = errors.New("invalid file type")

// Upload categories declared by the client; each maps to its own directory
// and extension allow-list.
const (
	UploadTypeImage = "image"
	UploadTypeVideo = "video"
	UploadTypeFile  = "file"
)
