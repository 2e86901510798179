package repository

import (
	"context"
	"strings"

	"github.com/nsmosa/alumni-portal-api/internal/models"
	"github.com/nsmosa/alumni-portal-api/internal/store"
)

// ContentRepository persists the published content lists and the scalar
// page overrides.
type ContentRepository struct {
	store store.Store
}

// NewContentRepository creates the repository.
func NewContentRepository(s store.Store) *ContentRepository {
	return &ContentRepository{store: s}
}

func (r *ContentRepository) AppendUpdate(ctx context.Context, u models.Update) error {
	return appendItem(ctx, r.store, store.KeyUpdates, u)
}

func (r *ContentRepository) ListUpdates(ctx context.Context) ([]models.Update, error) {
	return readList[models.Update](ctx, r.store, store.KeyUpdates)
}

// DeleteUpdate removes the update with the given id. Updates are the only
// content kind with an explicit delete action.
func (r *ContentRepository) DeleteUpdate(ctx context.Context, id string) error {
	_, err := removeItem(ctx, r.store, store.KeyUpdates, func(u models.Update) bool {
		return u.ID == id
	})
	return err
}

func (r *ContentRepository) AppendEventPhoto(ctx context.Context, p models.EventPhoto) error {
	return appendItem(ctx, r.store, store.KeyEventPhotos, p)
}

func (r *ContentRepository) ListEventPhotos(ctx context.Context) ([]models.EventPhoto, error) {
	return readList[models.EventPhoto](ctx, r.store, store.KeyEventPhotos)
}

func (r *ContentRepository) AppendGalleryPhoto(ctx context.Context, p models.GalleryPhoto) error {
	return appendItem(ctx, r.store, store.KeyGalleryPhotos, p)
}

func (r *ContentRepository) ListGalleryPhotos(ctx context.Context) ([]models.GalleryPhoto, error) {
	return readList[models.GalleryPhoto](ctx, r.store, store.KeyGalleryPhotos)
}

func (r *ContentRepository) AppendChapterPhoto(ctx context.Context, p models.ChapterPhoto) error {
	return appendItem(ctx, r.store, store.KeyChapterPhotos, p)
}

func (r *ContentRepository) ListChapterPhotos(ctx context.Context) ([]models.ChapterPhoto, error) {
	return readList[models.ChapterPhoto](ctx, r.store, store.KeyChapterPhotos)
}

func (r *ContentRepository) AppendReunionPhoto(ctx context.Context, p models.ReunionPhoto) error {
	return appendItem(ctx, r.store, store.KeyReunionPhotos, p)
}

func (r *ContentRepository) ListReunionPhotos(ctx context.Context) ([]models.ReunionPhoto, error) {
	return readList[models.ReunionPhoto](ctx, r.store, store.KeyReunionPhotos)
}

// GetOverride reads a scalar override such as the hero title.
func (r *ContentRepository) GetOverride(ctx context.Context, key string) (string, bool, error) {
	raw, ok, err := r.store.Get(ctx, key)
	if err != nil || !ok {
		return "", ok, err
	}
	return string(raw), true, nil
}

// SetOverride stores a scalar override verbatim.
func (r *ContentRepository) SetOverride(ctx context.Context, key, value string) error {
	return r.store.Set(ctx, key, []byte(value))
}

// IsOverrideKey restricts override access to the known scalar keys so
// callers cannot address the list keys through the override endpoints.
func IsOverrideKey(key string) bool {
	switch key {
	case store.KeyHeroTitle, store.KeyHeroQuote, store.KeyHeroContent:
		return true
	}
	return strings.HasPrefix(key, "nsm_content_")
}
