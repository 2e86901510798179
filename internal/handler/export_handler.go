package handler

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nsmosa/alumni-portal-api/internal/service"
	appErrors "github.com/nsmosa/alumni-portal-api/pkg/errors"
	"github.com/nsmosa/alumni-portal-api/pkg/response"
)

type exportService interface {
	Export(ctx context.Context, resource, format string) (*service.ExportResult, error)
}

// ExportHandler streams giving ledger exports.
type ExportHandler struct {
	exports exportService
}

// NewExportHandler constructs the handler.
func NewExportHandler(exports exportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// Export godoc
// @Summary Export a giving ledger
// @Tags Exports
// @Produce octet-stream
// @Security BearerAuth
// @Param resource path string true "donations or memberships"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} binary
// @Router /admin/exports/{resource} [get]
func (h *ExportHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", service.ExportFormatCSV)
	resource := c.Param("resource")
	// "donations.pdf" style paths carry the format in the extension.
	if ext := path.Ext(resource); ext == ".csv" || ext == ".pdf" {
		format = strings.TrimPrefix(ext, ".")
		resource = strings.TrimSuffix(resource, ext)
	}
	result, err := h.exports.Export(c.Request.Context(), resource, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(200, result.ContentType, result.Data)
}

// ExportsDisabled rejects export requests when the feature is off.
func ExportsDisabled() gin.HandlerFunc {
	return func(c *gin.Context) {
		response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "exports are disabled"))
		c.Abort()
	}
}
