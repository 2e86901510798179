package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nsmosa/alumni-portal-api/internal/dto"
	"github.com/nsmosa/alumni-portal-api/internal/models"
	appErrors "github.com/nsmosa/alumni-portal-api/pkg/errors"
	"github.com/nsmosa/alumni-portal-api/pkg/response"
)

type contentService interface {
	ListUpdates(ctx context.Context) ([]models.Update, error)
	ListEventPhotos(ctx context.Context) ([]models.EventPhoto, error)
	ListGalleryPhotos(ctx context.Context) ([]models.GalleryPhoto, error)
	ListChapterPhotos(ctx context.Context) ([]models.ChapterPhoto, error)
	ListReunionPhotos(ctx context.Context) ([]models.ReunionPhoto, error)
	CreateUpdate(ctx context.Context, req dto.CreateUpdateRequest) (*models.Update, error)
	DeleteUpdate(ctx context.Context, id string) error
	Hero(ctx context.Context) (*models.HeroContent, error)
	GetOverride(ctx context.Context, key string) (*dto.OverrideResponse, error)
	SetOverride(ctx context.Context, key string, req dto.SetOverrideRequest) (*dto.OverrideResponse, error)
}

// ContentHandler exposes published site content. The list endpoints are
// public; the write endpoints sit behind full-permission middleware.
type ContentHandler struct {
	content contentService
}

// NewContentHandler constructs the handler.
func NewContentHandler(content contentService) *ContentHandler {
	return &ContentHandler{content: content}
}

// ListUpdates godoc
// @Summary List published updates
// @Tags Content
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /content/updates [get]
func (h *ContentHandler) ListUpdates(c *gin.Context) {
	items, err := h.content.ListUpdates(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, nil)
}

// ListEventPhotos godoc
// @Summary List event photo sets
// @Tags Content
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /content/events [get]
func (h *ContentHandler) ListEventPhotos(c *gin.Context) {
	items, err := h.content.ListEventPhotos(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, nil)
}

// ListGalleryPhotos godoc
// @Summary List gallery photo sets
// @Tags Content
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /content/gallery [get]
func (h *ContentHandler) ListGalleryPhotos(c *gin.Context) {
	items, err := h.content.ListGalleryPhotos(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, nil)
}

// ListChapterPhotos godoc
// @Summary List chapter photo sets
// @Tags Content
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /content/chapters [get]
func (h *ContentHandler) ListChapterPhotos(c *gin.Context) {
	items, err := h.content.ListChapterPhotos(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, nil)
}

// ListReunionPhotos godoc
// @Summary List reunion photo sets
// @Tags Content
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /content/reunions [get]
func (h *ContentHandler) ListReunionPhotos(c *gin.Context) {
	items, err := h.content.ListReunionPhotos(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, nil)
}

// Hero godoc
// @Summary Landing page hero copy
// @Tags Content
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /content/hero [get]
func (h *ContentHandler) Hero(c *gin.Context) {
	hero, err := h.content.Hero(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, hero, nil)
}

// GetOverride godoc
// @Summary Read a scalar page override
// @Tags Content
// @Produce json
// @Param key path string true "Override key"
// @Success 200 {object} response.Envelope
// @Router /content/overrides/{key} [get]
func (h *ContentHandler) GetOverride(c *gin.Context) {
	override, err := h.content.GetOverride(c.Request.Context(), c.Param("key"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, override, nil)
}

// SetOverride godoc
// @Summary Replace a scalar page override
// @Tags Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param key path string true "Override key"
// @Param payload body dto.SetOverrideRequest true "New value"
// @Success 200 {object} response.Envelope
// @Router /admin/content/overrides/{key} [put]
func (h *ContentHandler) SetOverride(c *gin.Context) {
	var req dto.SetOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid override payload"))
		return
	}
	override, err := h.content.SetOverride(c.Request.Context(), c.Param("key"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, override, nil)
}

// CreateUpdate godoc
// @Summary Publish an update directly
// @Tags Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.CreateUpdateRequest true "Update"
// @Success 201 {object} response.Envelope
// @Router /admin/content/updates [post]
func (h *ContentHandler) CreateUpdate(c *gin.Context) {
	var req dto.CreateUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid update payload"))
		return
	}
	record, err := h.content.CreateUpdate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, record)
}

// DeleteUpdate godoc
// @Summary Delete a published update
// @Tags Content
// @Security BearerAuth
// @Param id path string true "Update id"
// @Success 204
// @Router /admin/content/updates/{id} [delete]
func (h *ContentHandler) DeleteUpdate(c *gin.Context) {
	if err := h.content.DeleteUpdate(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
