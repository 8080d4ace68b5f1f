package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fabrica/realestate-crm/internal/core/domain"
	"github.com/fabrica/realestate-crm/internal/core/ports"
)

// UploadHandler handles multipart file uploads. The per-file size cap is
// enforced upstream by the body-limit middleware on this route.
type UploadHandler struct {
	service ports.UploadService
}

func NewUploadHandler(service ports.UploadService) *UploadHandler {
	return &UploadHandler{service: service}
}

type uploadResponse struct {
	Message      string `json:"message"`
	FileURL      string `json:"fileUrl"`
	OriginalName string `json:"originalName"`
	MimeType     string `json:"mimeType"`
}

// Upload handles POST /api/upload.
//
// @Summary      Upload a file
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file    true   "File to upload"
// @Param        type  formData  string  false  "image, video, or file"
// @Success      201   {object}  uploadResponse
// @Failure      400   {object}  messageResponse
// @Router       /api/upload [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "No file uploaded"})
	}

	fileType := c.FormValue("type")
	if fileType == "" {
		fileType = domain.UploadTypeFile
	}

	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	stored, err := h.service.Store(c.Request().Context(), ports.StoreFileInput{
		OriginalName: fh.Filename,
		MimeType:     fh.Header.Get("Content-Type"),
		Type:         fileType,
		Content:      src,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidFileType) {
			switch fileType {
			case domain.UploadTypeImage:
				return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid image file type"})
			case domain.UploadTypeVideo:
				return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid video file type"})
			default:
				return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid file type"})
			}
		}
		return err
	}

	return c.JSON(http.StatusCreated, uploadResponse{
		Message:      "File uploaded successfully",
		FileURL:      stored.FileURL,
		OriginalName: stored.OriginalName,
		MimeType:     stored.MimeType,
	})
}
