package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nsmosa/alumni-portal-api/internal/dto"
	"github.com/nsmosa/alumni-portal-api/internal/models"
	"github.com/nsmosa/alumni-portal-api/internal/repository"
	"github.com/nsmosa/alumni-portal-api/internal/store"
	appErrors "github.com/nsmosa/alumni-portal-api/pkg/errors"
)

// contentStore is the persistence surface for published content.
type contentStore interface {
	AppendUpdate(ctx context.Context, u models.Update) error
	ListUpdates(ctx context.Context) ([]models.Update, error)
	DeleteUpdate(ctx context.Context, id string) error
	AppendEventPhoto(ctx context.Context, p models.EventPhoto) error
	ListEventPhotos(ctx context.Context) ([]models.EventPhoto, error)
	AppendGalleryPhoto(ctx context.Context, p models.GalleryPhoto) error
	ListGalleryPhotos(ctx context.Context) ([]models.GalleryPhoto, error)
	AppendChapterPhoto(ctx context.Context, p models.ChapterPhoto) error
	ListChapterPhotos(ctx context.Context) ([]models.ChapterPhoto, error)
	AppendReunionPhoto(ctx context.Context, p models.ReunionPhoto) error
	ListReunionPhotos(ctx context.Context) ([]models.ReunionPhoto, error)
	GetOverride(ctx context.Context, key string) (string, bool, error)
	SetOverride(ctx context.Context, key, value string) error
}

// ContentService validates, publishes and lists site content. It is also
// the publication sink of the approval workflow: an approved submission's
// payload is handed here to become visible content.
type ContentService struct {
	content  contentStore
	validate *validator.Validate
	logger   *zap.Logger
}

// NewContentService creates the service.
func NewContentService(content contentStore, logger *zap.Logger) *ContentService {
	return &ContentService{
		content:  content,
		validate: validator.New(),
		logger:   logger,
	}
}

// PrepareSubmissionPayload validates a raw submission payload against its
// declared type and returns the normalized record that publication will
// write, with identity and timestamps already assigned. Preparing at
// submission time means an approved payload publishes exactly as the
// submitter saw it.
func (s *ContentService) PrepareSubmissionPayload(t models.SubmissionType, payload json.RawMessage) (json.RawMessage, error) {
	if !t.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown submission type")
	}
	if len(payload) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "submission payload is required")
	}

	now := time.Now().UTC()
	switch t {
	case models.SubmissionTypeUpdate:
		var req dto.CreateUpdateRequest
		if err := s.decode(payload, &req); err != nil {
			return nil, err
		}
		return marshalRecord(models.Update{
			ID:        uuid.NewString(),
			Title:     req.Title,
			Content:   req.Content,
			Date:      req.Date,
			CreatedAt: now,
		})
	case models.SubmissionTypeEventPhoto:
		var req dto.CreateEventPhotoRequest
		if err := s.decode(payload, &req); err != nil {
			return nil, err
		}
		return marshalRecord(models.EventPhoto{
			ID:        uuid.NewString(),
			EventName: req.EventName,
			EventDate: req.EventDate,
			Photos:    buildPhotoItems(req.Photos, now),
			CreatedAt: now,
		})
	case models.SubmissionTypeGalleryPhoto:
		var req dto.CreateYearPhotoRequest
		if err := s.decode(payload, &req); err != nil {
			return nil, err
		}
		return marshalRecord(models.GalleryPhoto{
			ID:        uuid.NewString(),
			Year:      req.Year,
			Photos:    buildPhotoItems(req.Photos, now),
			CreatedAt: now,
		})
	case models.SubmissionTypeReunionPhoto:
		var req dto.CreateYearPhotoRequest
		if err := s.decode(payload, &req); err != nil {
			return nil, err
		}
		return marshalRecord(models.ReunionPhoto{
			ID:        uuid.NewString(),
			Year:      req.Year,
			Photos:    buildPhotoItems(req.Photos, now),
			CreatedAt: now,
		})
	case models.SubmissionTypeChapterPhoto:
		var req dto.CreateChapterPhotoRequest
		if err := s.decode(payload, &req); err != nil {
			return nil, err
		}
		return marshalRecord(models.ChapterPhoto{
			ID:          uuid.NewString(),
			ChapterType: req.ChapterType,
			Year:        req.Year,
			Photos:      buildPhotoItems(req.Photos, now),
			CreatedAt:   now,
		})
	case models.SubmissionTypeContent:
		var override models.ContentOverride
		if err := json.Unmarshal(payload, &override); err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, "malformed submission payload")
		}
		if !repository.IsOverrideKey(override.Key) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "unknown content key")
		}
		if override.Value == "" {
			return nil, appErrors.Clone(appErrors.ErrValidation, "content value is required")
		}
		return marshalRecord(override)
	}
	return nil, appErrors.Clone(appErrors.ErrValidation, "unknown submission type")
}

// PublishSubmission writes a prepared payload to its content list. The
// payload must have passed PrepareSubmissionPayload for the same type.
func (s *ContentService) PublishSubmission(ctx context.Context, t models.SubmissionType, payload json.RawMessage) error {
	switch t {
	case models.SubmissionTypeUpdate:
		var record models.Update
		if err := json.Unmarshal(payload, &record); err != nil {
			return appErrors.Wrap(err, "PUBLISH_FAILED", 500, "malformed stored payload")
		}
		return s.publishErr(s.content.AppendUpdate(ctx, record))
	case models.SubmissionTypeEventPhoto:
		var record models.EventPhoto
		if err := json.Unmarshal(payload, &record); err != nil {
			return appErrors.Wrap(err, "PUBLISH_FAILED", 500, "malformed stored payload")
		}
		return s.publishErr(s.content.AppendEventPhoto(ctx, record))
	case models.SubmissionTypeGalleryPhoto:
		var record models.GalleryPhoto
		if err := json.Unmarshal(payload, &record); err != nil {
			return appErrors.Wrap(err, "PUBLISH_FAILED", 500, "malformed stored payload")
		}
		return s.publishErr(s.content.AppendGalleryPhoto(ctx, record))
	case models.SubmissionTypeReunionPhoto:
		var record models.ReunionPhoto
		if err := json.Unmarshal(payload, &record); err != nil {
			return appErrors.Wrap(err, "PUBLISH_FAILED", 500, "malformed stored payload")
		}
		return s.publishErr(s.content.AppendReunionPhoto(ctx, record))
	case models.SubmissionTypeChapterPhoto:
		var record models.ChapterPhoto
		if err := json.Unmarshal(payload, &record); err != nil {
			return appErrors.Wrap(err, "PUBLISH_FAILED", 500, "malformed stored payload")
		}
		return s.publishErr(s.content.AppendChapterPhoto(ctx, record))
	case models.SubmissionTypeContent:
		var override models.ContentOverride
		if err := json.Unmarshal(payload, &override); err != nil {
			return appErrors.Wrap(err, "PUBLISH_FAILED", 500, "malformed stored payload")
		}
		return s.publishOverride(ctx, override)
	}
	return appErrors.Clone(appErrors.ErrValidation, "unknown submission type")
}

// publishOverride writes a scalar override. The composite hero key splits
// into the individual hero title and quote keys; a hero value that is not
// a title/quote document is stored raw under its own key instead, so an
// already-approved submission never fails publication.
func (s *ContentService) publishOverride(ctx context.Context, override models.ContentOverride) error {
	if override.Key != store.KeyHeroContent {
		return s.publishErr(s.content.SetOverride(ctx, override.Key, override.Value))
	}
	var hero models.HeroContent
	if err := json.Unmarshal([]byte(override.Value), &hero); err != nil {
		return s.publishErr(s.content.SetOverride(ctx, override.Key, override.Value))
	}
	if hero.Title != "" {
		if err := s.content.SetOverride(ctx, store.KeyHeroTitle, hero.Title); err != nil {
			return s.publishErr(err)
		}
	}
	if hero.Quote != "" {
		if err := s.content.SetOverride(ctx, store.KeyHeroQuote, hero.Quote); err != nil {
			return s.publishErr(err)
		}
	}
	return nil
}

// CreateUpdate publishes a news entry directly, outside the approval
// queue. Used by full-permission content endpoints.
func (s *ContentService) CreateUpdate(ctx context.Context, req dto.CreateUpdateRequest) (*models.Update, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error())
	}
	record := models.Update{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Content:   req.Content,
		Date:      req.Date,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.content.AppendUpdate(ctx, record); err != nil {
		return nil, s.publishErr(err)
	}
	return &record, nil
}

// DeleteUpdate removes a published update.
func (s *ContentService) DeleteUpdate(ctx context.Context, id string) error {
	err := s.content.DeleteUpdate(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return appErrors.ErrNotFound
	}
	if err != nil {
		return appErrors.Wrap(err, "CONTENT_UNAVAILABLE", 500, "failed to delete update")
	}
	return nil
}

func (s *ContentService) ListUpdates(ctx context.Context) ([]models.Update, error) {
	items, err := s.content.ListUpdates(ctx)
	return items, s.listErr(err)
}

func (s *ContentService) ListEventPhotos(ctx context.Context) ([]models.EventPhoto, error) {
	items, err := s.content.ListEventPhotos(ctx)
	return items, s.listErr(err)
}

func (s *ContentService) ListGalleryPhotos(ctx context.Context) ([]models.GalleryPhoto, error) {
	items, err := s.content.ListGalleryPhotos(ctx)
	return items, s.listErr(err)
}

func (s *ContentService) ListChapterPhotos(ctx context.Context) ([]models.ChapterPhoto, error) {
	items, err := s.content.ListChapterPhotos(ctx)
	return items, s.listErr(err)
}

func (s *ContentService) ListReunionPhotos(ctx context.Context) ([]models.ReunionPhoto, error) {
	items, err := s.content.ListReunionPhotos(ctx)
	return items, s.listErr(err)
}

// GetOverride reads a scalar page override. Missing keys return their
// zero value rather than an error so page rendering can fall back to the
// built-in copy.
func (s *ContentService) GetOverride(ctx context.Context, key string) (*dto.OverrideResponse, error) {
	if !repository.IsOverrideKey(key) {
		return nil, appErrors.ErrNotFound
	}
	value, _, err := s.content.GetOverride(ctx, key)
	if err != nil {
		return nil, appErrors.Wrap(err, "CONTENT_UNAVAILABLE", 500, "failed to load content")
	}
	return &dto.OverrideResponse{Key: key, Value: value}, nil
}

// SetOverride replaces a scalar page override directly.
func (s *ContentService) SetOverride(ctx context.Context, key string, req dto.SetOverrideRequest) (*dto.OverrideResponse, error) {
	if !repository.IsOverrideKey(key) {
		return nil, appErrors.ErrNotFound
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error())
	}
	if err := s.publishOverride(ctx, models.ContentOverride{Key: key, Value: req.Value}); err != nil {
		return nil, err
	}
	return &dto.OverrideResponse{Key: key, Value: req.Value}, nil
}

// Hero returns the landing page hero copy assembled from its override keys.
func (s *ContentService) Hero(ctx context.Context) (*models.HeroContent, error) {
	title, _, err := s.content.GetOverride(ctx, store.KeyHeroTitle)
	if err != nil {
		return nil, appErrors.Wrap(err, "CONTENT_UNAVAILABLE", 500, "failed to load content")
	}
	quote, _, err := s.content.GetOverride(ctx, store.KeyHeroQuote)
	if err != nil {
		return nil, appErrors.Wrap(err, "CONTENT_UNAVAILABLE", 500, "failed to load content")
	}
	return &models.HeroContent{Title: title, Quote: quote}, nil
}

func (s *ContentService) decode(payload json.RawMessage, into any) error {
	if err := json.Unmarshal(payload, into); err != nil {
		return appErrors.Clone(appErrors.ErrValidation, "malformed submission payload")
	}
	if err := s.validate.Struct(into); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error())
	}
	return nil
}

func (s *ContentService) publishErr(err error) error {
	if err == nil {
		return nil
	}
	return appErrors.Wrap(err, "PUBLISH_FAILED", 500, "failed to publish content")
}

func (s *ContentService) listErr(err error) error {
	if err == nil {
		return nil
	}
	return appErrors.Wrap(err, "CONTENT_UNAVAILABLE", 500, "failed to load content")
}

func marshalRecord(record any) (json.RawMessage, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return nil, appErrors.Wrap(err, "PUBLISH_FAILED", 500, "failed to encode payload")
	}
	return raw, nil
}

func buildPhotoItems(reqs []dto.PhotoItemRequest, now time.Time) []models.PhotoItem {
	items := make([]models.PhotoItem, 0, len(reqs))
	for _, r := range reqs {
		items = append(items, models.PhotoItem{
			ID:         uuid.NewString(),
			URL:        r.URL,
			Name:       r.Name,
			UploadedAt: now,
		})
	}
	return items
}
