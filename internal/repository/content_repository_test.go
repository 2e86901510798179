package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nsmosa/alumni-portal-api/internal/models"
	"github.com/nsmosa/alumni-portal-api/internal/store"
)

func TestContentRepositoryUpdates(t *testing.T) {
	ctx := context.Background()
	repo := NewContentRepository(store.NewMemoryStore())

	require.NoError(t, repo.AppendUpdate(ctx, models.Update{ID: "1", Title: "first", CreatedAt: time.Now().UTC()}))
	require.NoError(t, repo.AppendUpdate(ctx, models.Update{ID: "2", Title: "second", CreatedAt: time.Now().UTC()}))

	updates, err := repo.ListUpdates(ctx)
	require.NoError(t, err)
	require.Len(t, updates, 2)
	require.Equal(t, "first", updates[0].Title)

	require.NoError(t, repo.DeleteUpdate(ctx, "1"))
	updates, err = repo.ListUpdates(ctx)
	require.NoError(t, err)
	require.Len(t, updates, 1)
	require.Equal(t, "2", updates[0].ID)

	require.ErrorIs(t, repo.DeleteUpdate(ctx, "1"), ErrNotFound)
}

func TestContentRepositoryPhotoLists(t *testing.T) {
	ctx := context.Background()
	repo := NewContentRepository(store.NewMemoryStore())

	require.NoError(t, repo.AppendEventPhoto(ctx, models.EventPhoto{ID: "e1", EventName: "Reunion Dinner"}))
	require.NoError(t, repo.AppendGalleryPhoto(ctx, models.GalleryPhoto{ID: "g1", Year: 2001}))
	require.NoError(t, repo.AppendChapterPhoto(ctx, models.ChapterPhoto{ID: "c1", ChapterType: "dhaka", Year: 2020}))
	require.NoError(t, repo.AppendReunionPhoto(ctx, models.ReunionPhoto{ID: "r1", Year: 2019}))

	events, err := repo.ListEventPhotos(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)

	gallery, err := repo.ListGalleryPhotos(ctx)
	require.NoError(t, err)
	require.Equal(t, 2001, gallery[0].Year)

	chapters, err := repo.ListChapterPhotos(ctx)
	require.NoError(t, err)
	require.Equal(t, "dhaka", chapters[0].ChapterType)

	reunions, err := repo.ListReunionPhotos(ctx)
	require.NoError(t, err)
	require.Equal(t, 2019, reunions[0].Year)
}

func TestContentRepositoryOverrides(t *testing.T) {
	ctx := context.Background()
	repo := NewContentRepository(store.NewMemoryStore())

	_, ok, err := repo.GetOverride(ctx, store.KeyHeroTitle)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, repo.SetOverride(ctx, store.KeyHeroTitle, "Welcome back"))
	value, ok, err := repo.GetOverride(ctx, store.KeyHeroTitle)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Welcome back", value)
}

func TestIsOverrideKey(t *testing.T) {
	require.True(t, IsOverrideKey(store.KeyHeroTitle))
	require.True(t, IsOverrideKey(store.KeyHeroQuote))
	require.True(t, IsOverrideKey(store.KeyHeroContent))
	require.True(t, IsOverrideKey("nsm_content_about"))
	require.False(t, IsOverrideKey(store.KeyUpdates))
	require.False(t, IsOverrideKey(store.KeyAdminUsers))
	require.False(t, IsOverrideKey("random"))
}
