package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nsmosa/alumni-portal-api/internal/dto"
	"github.com/nsmosa/alumni-portal-api/internal/models"
	appErrors "github.com/nsmosa/alumni-portal-api/pkg/errors"
)

type membershipStore interface {
	Append(ctx context.Context, m models.Membership) error
	List(ctx context.Context) ([]models.Membership, error)
}

type donationStore interface {
	Append(ctx context.Context, d models.Donation) error
	List(ctx context.Context) ([]models.Donation, error)
}

// GivingService records membership enrollments and donations. Both are
// append-only ledgers; payment processing happens outside the portal and
// only the resulting record lands here.
type GivingService struct {
	memberships membershipStore
	donations   donationStore
	validate    *validator.Validate
	logger      *zap.Logger
}

// NewGivingService creates the service.
func NewGivingService(memberships membershipStore, donations donationStore, logger *zap.Logger) *GivingService {
	return &GivingService{
		memberships: memberships,
		donations:   donations,
		validate:    validator.New(),
		logger:      logger,
	}
}

// CreateMembership records a membership enrollment.
func (s *GivingService) CreateMembership(ctx context.Context, req dto.CreateMembershipRequest) (*models.Membership, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error())
	}
	record := models.Membership{
		ID:          uuid.NewString(),
		MemberEmail: req.MemberEmail,
		Name:        req.Name,
		BatchYear:   req.BatchYear,
		Plan:        req.Plan,
		Amount:      req.Amount,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.memberships.Append(ctx, record); err != nil {
		return nil, appErrors.Wrap(err, "GIVING_UNAVAILABLE", 500, "failed to record membership")
	}
	s.logger.Info("membership recorded", zap.String("id", record.ID), zap.String("plan", record.Plan))
	return &record, nil
}

// ListMemberships returns every recorded enrollment.
func (s *GivingService) ListMemberships(ctx context.Context) ([]models.Membership, error) {
	items, err := s.memberships.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, "GIVING_UNAVAILABLE", 500, "failed to load memberships")
	}
	return items, nil
}

// CreateDonation records a donation.
func (s *GivingService) CreateDonation(ctx context.Context, req dto.CreateDonationRequest) (*models.Donation, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error())
	}
	record := models.Donation{
		ID:        uuid.NewString(),
		DonorName: req.DonorName,
		Email:     req.Email,
		Purpose:   req.Purpose,
		Amount:    req.Amount,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.donations.Append(ctx, record); err != nil {
		return nil, appErrors.Wrap(err, "GIVING_UNAVAILABLE", 500, "failed to record donation")
	}
	s.logger.Info("donation recorded", zap.String("id", record.ID))
	return &record, nil
}

// ListDonations returns every recorded donation.
func (s *GivingService) ListDonations(ctx context.Context) ([]models.Donation, error) {
	items, err := s.donations.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, "GIVING_UNAVAILABLE", 500, "failed to load donations")
	}
	return items, nil
}
