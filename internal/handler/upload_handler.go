package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/nsmosa/alumni-portal-api/internal/service"
	appErrors "github.com/nsmosa/alumni-portal-api/pkg/errors"
	"github.com/nsmosa/alumni-portal-api/pkg/response"
)

type uploadService interface {
	SaveImage(filename string, r io.Reader) (*service.UploadResult, error)
	Resolve(token string) (string, error)
}

// UploadHandler stores admin photo uploads and serves them back through
// signed URLs.
type UploadHandler struct {
	uploads uploadService
}

// NewUploadHandler constructs the handler.
func NewUploadHandler(uploads uploadService) *UploadHandler {
	return &UploadHandler{uploads: uploads}
}

// Upload godoc
// @Summary Upload a photo
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image file"
// @Success 201 {object} response.Envelope
// @Router /admin/uploads [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "file field is required"))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, "UPLOAD_FAILED", 500, "failed to read upload"))
		return
	}
	defer file.Close() //nolint:errcheck

	result, err := h.uploads.SaveImage(fileHeader.Filename, file)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// Download godoc
// @Summary Download an uploaded photo
// @Tags Uploads
// @Produce octet-stream
// @Param token path string true "Signed file token"
// @Success 200 {file} binary
// @Router /files/{token} [get]
func (h *UploadHandler) Download(c *gin.Context) {
	path, err := h.uploads.Resolve(c.Param("token"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.File(path)
}
