package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/nsmosa/alumni-portal-api/internal/models"
	appErrors "github.com/nsmosa/alumni-portal-api/pkg/errors"
)

type memberLister interface {
	List(ctx context.Context) ([]models.Member, error)
}

type pendingLister interface {
	List(ctx context.Context) ([]models.Submission, error)
}

// StatsService assembles the admin dashboard summary from the content
// lists and ledgers. Gallery and reunion counts are photo totals across
// their sets, not set counts; registered users counts only member
// documents that completed registration.
type StatsService struct {
	content     contentStore
	members     memberLister
	memberships membershipStore
	donations   donationStore
	pending     pendingLister
	logger      *zap.Logger
}

// NewStatsService creates the service.
func NewStatsService(content contentStore, members memberLister, memberships membershipStore, donations donationStore, pending pendingLister, logger *zap.Logger) *StatsService {
	return &StatsService{
		content:     content,
		members:     members,
		memberships: memberships,
		donations:   donations,
		pending:     pending,
		logger:      logger,
	}
}

// Statistics computes the dashboard counters.
func (s *StatsService) Statistics(ctx context.Context) (*models.Statistics, error) {
	stats := &models.Statistics{}

	updates, err := s.content.ListUpdates(ctx)
	if err != nil {
		return nil, s.statsErr(err)
	}
	stats.Updates = len(updates)

	events, err := s.content.ListEventPhotos(ctx)
	if err != nil {
		return nil, s.statsErr(err)
	}
	stats.Events = len(events)

	gallery, err := s.content.ListGalleryPhotos(ctx)
	if err != nil {
		return nil, s.statsErr(err)
	}
	for _, set := range gallery {
		stats.GalleryPhotos += len(set.Photos)
	}

	reunions, err := s.content.ListReunionPhotos(ctx)
	if err != nil {
		return nil, s.statsErr(err)
	}
	for _, set := range reunions {
		stats.ReunionPhotos += len(set.Photos)
	}

	members, err := s.members.List(ctx)
	if err != nil {
		return nil, s.statsErr(err)
	}
	for _, m := range members {
		if m.UID != "" {
			stats.RegisteredUsers++
		}
	}

	donations, err := s.donations.List(ctx)
	if err != nil {
		return nil, s.statsErr(err)
	}
	stats.Donations = len(donations)

	memberships, err := s.memberships.List(ctx)
	if err != nil {
		return nil, s.statsErr(err)
	}
	stats.Memberships = len(memberships)

	pending, err := s.pending.List(ctx)
	if err != nil {
		return nil, s.statsErr(err)
	}
	stats.PendingApprovals = len(pending)

	return stats, nil
}

func (s *StatsService) statsErr(err error) error {
	s.logger.Warn("statistics aggregation failed", zap.Error(err))
	return appErrors.Wrap(err, "STATS_UNAVAILABLE", 500, "failed to compute statistics")
}
