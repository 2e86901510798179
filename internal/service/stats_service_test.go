package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nsmosa/alumni-portal-api/internal/models"
	"github.com/nsmosa/alumni-portal-api/internal/repository"
	"github.com/nsmosa/alumni-portal-api/internal/store"
)

func TestStatisticsCountsAcrossStores(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	content := repository.NewContentRepository(kv)
	members := repository.NewMemberRepository(kv)
	memberships := repository.NewMembershipRepository(kv)
	donations := repository.NewDonationRepository(kv)
	pending := repository.NewApprovalRepository(kv)
	svc := NewStatsService(content, members, memberships, donations, pending, zap.NewNop())

	now := time.Now().UTC()
	require.NoError(t, content.AppendUpdate(ctx, models.Update{ID: "u1", Title: "t", CreatedAt: now}))
	require.NoError(t, content.AppendUpdate(ctx, models.Update{ID: "u2", Title: "t", CreatedAt: now}))
	require.NoError(t, content.AppendEventPhoto(ctx, models.EventPhoto{ID: "e1", EventName: "reunion"}))

	// Gallery and reunion counters sum photos across sets.
	require.NoError(t, content.AppendGalleryPhoto(ctx, models.GalleryPhoto{
		ID: "g1", Year: 2024,
		Photos: []models.PhotoItem{{ID: "p1"}, {ID: "p2"}},
	}))
	require.NoError(t, content.AppendGalleryPhoto(ctx, models.GalleryPhoto{
		ID: "g2", Year: 2025,
		Photos: []models.PhotoItem{{ID: "p3"}},
	}))
	require.NoError(t, content.AppendReunionPhoto(ctx, models.ReunionPhoto{
		ID: "r1", Year: 2025,
		Photos: []models.PhotoItem{{ID: "p4"}, {ID: "p5"}},
	}))

	// Only members who registered count as users.
	require.NoError(t, members.Append(ctx, models.Member{Email: "seeded@example.com"}))
	require.NoError(t, members.Append(ctx, models.Member{Email: "reg@example.com", UID: "uid-1"}))

	require.NoError(t, memberships.Append(ctx, models.Membership{ID: "m1"}))
	require.NoError(t, donations.Append(ctx, models.Donation{ID: "d1"}))
	require.NoError(t, donations.Append(ctx, models.Donation{ID: "d2"}))
	require.NoError(t, pending.Append(ctx, models.Submission{ID: "s1", Status: models.SubmissionStatusPending}))

	stats, err := svc.Statistics(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, stats.Updates)
	require.Equal(t, 1, stats.Events)
	require.Equal(t, 3, stats.GalleryPhotos)
	require.Equal(t, 2, stats.ReunionPhotos)
	require.Equal(t, 1, stats.RegisteredUsers)
	require.Equal(t, 1, stats.Memberships)
	require.Equal(t, 2, stats.Donations)
	require.Equal(t, 1, stats.PendingApprovals)
}

func TestStatisticsEmptyStores(t *testing.T) {
	kv := store.NewMemoryStore()
	svc := NewStatsService(
		repository.NewContentRepository(kv),
		repository.NewMemberRepository(kv),
		repository.NewMembershipRepository(kv),
		repository.NewDonationRepository(kv),
		repository.NewApprovalRepository(kv),
		zap.NewNop(),
	)

	stats, err := svc.Statistics(context.Background())
	require.NoError(t, err)
	require.Equal(t, &models.Statistics{}, stats)
}
