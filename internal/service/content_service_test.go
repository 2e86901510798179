package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nsmosa/alumni-portal-api/internal/dto"
	"github.com/nsmosa/alumni-portal-api/internal/models"
	"github.com/nsmosa/alumni-portal-api/internal/repository"
	"github.com/nsmosa/alumni-portal-api/internal/store"
	appErrors "github.com/nsmosa/alumni-portal-api/pkg/errors"
)

func newContentService(t *testing.T) *ContentService {
	t.Helper()
	return NewContentService(repository.NewContentRepository(store.NewMemoryStore()), zap.NewNop())
}

func TestPrepareSubmissionPayloadNormalizesRecords(t *testing.T) {
	svc := newContentService(t)

	raw, err := json.Marshal(dto.CreateEventPhotoRequest{
		EventName: "Homecoming 2026",
		EventDate: "2026-02-14",
		Photos:    []dto.PhotoItemRequest{{URL: "https://cdn.example.com/a.jpg", Name: "Group shot"}},
	})
	require.NoError(t, err)

	prepared, err := svc.PrepareSubmissionPayload(models.SubmissionTypeEventPhoto, raw)
	require.NoError(t, err)

	var record models.EventPhoto
	require.NoError(t, json.Unmarshal(prepared, &record))
	require.NotEmpty(t, record.ID)
	require.False(t, record.CreatedAt.IsZero())
	require.Len(t, record.Photos, 1)
	require.NotEmpty(t, record.Photos[0].ID)
	require.Equal(t, "Group shot", record.Photos[0].Name)
}

func TestPrepareSubmissionPayloadValidation(t *testing.T) {
	svc := newContentService(t)

	cases := []struct {
		name    string
		subType models.SubmissionType
		payload any
	}{
		{"unknown type", "banner", dto.CreateUpdateRequest{Title: "t", Content: "c", Date: "d"}},
		{"missing title", models.SubmissionTypeUpdate, dto.CreateUpdateRequest{Content: "c", Date: "d"}},
		{"empty photo set", models.SubmissionTypeGalleryPhoto, dto.CreateYearPhotoRequest{Year: 2026}},
		{"photo without url", models.SubmissionTypeReunionPhoto, dto.CreateYearPhotoRequest{Year: 2026, Photos: []dto.PhotoItemRequest{{Name: "n"}}}},
		{"unknown override key", models.SubmissionTypeContent, models.ContentOverride{Key: "nsm_users", Value: "v"}},
		{"empty override value", models.SubmissionTypeContent, models.ContentOverride{Key: store.KeyHeroTitle}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw, err := json.Marshal(tc.payload)
			require.NoError(t, err)
			_, err = svc.PrepareSubmissionPayload(tc.subType, raw)
			require.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
		})
	}

	_, err := svc.PrepareSubmissionPayload(models.SubmissionTypeUpdate, nil)
	require.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
}

func TestPublishSubmissionRoundtrip(t *testing.T) {
	ctx := context.Background()
	svc := newContentService(t)

	raw, err := json.Marshal(dto.CreateChapterPhotoRequest{
		ChapterType: "overseas",
		Year:        2025,
		Photos:      []dto.PhotoItemRequest{{URL: "https://cdn.example.com/c.jpg"}},
	})
	require.NoError(t, err)

	prepared, err := svc.PrepareSubmissionPayload(models.SubmissionTypeChapterPhoto, raw)
	require.NoError(t, err)
	require.NoError(t, svc.PublishSubmission(ctx, models.SubmissionTypeChapterPhoto, prepared))

	sets, err := svc.ListChapterPhotos(ctx)
	require.NoError(t, err)
	require.Len(t, sets, 1)
	require.Equal(t, "overseas", sets[0].ChapterType)
	require.Equal(t, 2025, sets[0].Year)
}

func TestCreateAndDeleteUpdate(t *testing.T) {
	ctx := context.Background()
	svc := newContentService(t)

	created, err := svc.CreateUpdate(ctx, dto.CreateUpdateRequest{Title: "New board", Content: "Elected", Date: "2026-03-01"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	require.NoError(t, svc.DeleteUpdate(ctx, created.ID))

	updates, err := svc.ListUpdates(ctx)
	require.NoError(t, err)
	require.Empty(t, updates)

	err = svc.DeleteUpdate(ctx, created.ID)
	require.Equal(t, http.StatusNotFound, appErrors.FromError(err).Status)
}

func TestOverridesAndHero(t *testing.T) {
	ctx := context.Background()
	svc := newContentService(t)

	// Unset keys read back empty instead of erroring.
	got, err := svc.GetOverride(ctx, store.KeyHeroTitle)
	require.NoError(t, err)
	require.Empty(t, got.Value)

	_, err = svc.SetOverride(ctx, store.KeyHeroTitle, dto.SetOverrideRequest{Value: "Welcome back"})
	require.NoError(t, err)
	got, err = svc.GetOverride(ctx, store.KeyHeroTitle)
	require.NoError(t, err)
	require.Equal(t, "Welcome back", got.Value)

	// The composite hero key fans out to title and quote.
	heroValue, err := json.Marshal(models.HeroContent{Title: "NSMOSA", Quote: "Forever green"})
	require.NoError(t, err)
	_, err = svc.SetOverride(ctx, store.KeyHeroContent, dto.SetOverrideRequest{Value: string(heroValue)})
	require.NoError(t, err)

	hero, err := svc.Hero(ctx)
	require.NoError(t, err)
	require.Equal(t, "NSMOSA", hero.Title)
	require.Equal(t, "Forever green", hero.Quote)

	// A hero value that is not a title/quote document stores raw under
	// the composite key instead of failing publication.
	_, err = svc.SetOverride(ctx, store.KeyHeroContent, dto.SetOverrideRequest{Value: "just a headline"})
	require.NoError(t, err)
	raw, err := svc.GetOverride(ctx, store.KeyHeroContent)
	require.NoError(t, err)
	require.Equal(t, "just a headline", raw.Value)
	hero, err = svc.Hero(ctx)
	require.NoError(t, err)
	require.Equal(t, "NSMOSA", hero.Title)

	// Keys outside the override namespace are invisible.
	_, err = svc.GetOverride(ctx, "nsm_users")
	require.Equal(t, http.StatusNotFound, appErrors.FromError(err).Status)
	_, err = svc.SetOverride(ctx, "nsm_users", dto.SetOverrideRequest{Value: "v"})
	require.Equal(t, http.StatusNotFound, appErrors.FromError(err).Status)
}
