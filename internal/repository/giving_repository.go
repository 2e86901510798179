package repository

import (
	"context"

	"github.com/nsmosa/alumni-portal-api/internal/models"
	"github.com/nsmosa/alumni-portal-api/internal/store"
)

// MembershipRepository persists membership enrollments.
type MembershipRepository struct {
	store store.Store
}

// NewMembershipRepository creates the repository.
func NewMembershipRepository(s store.Store) *MembershipRepository {
	return &MembershipRepository{store: s}
}

func (r *MembershipRepository) Append(ctx context.Context, m models.Membership) error {
	return appendItem(ctx, r.store, store.KeyMemberships, m)
}

func (r *MembershipRepository) List(ctx context.Context) ([]models.Membership, error) {
	return readList[models.Membership](ctx, r.store, store.KeyMemberships)
}

// DonationRepository persists donations.
type DonationRepository struct {
	store store.Store
}

// NewDonationRepository creates the repository.
func NewDonationRepository(s store.Store) *DonationRepository {
	return &DonationRepository{store: s}
}

func (r *DonationRepository) Append(ctx context.Context, d models.Donation) error {
	return appendItem(ctx, r.store, store.KeyDonations, d)
}

func (r *DonationRepository) List(ctx context.Context) ([]models.Donation, error) {
	return readList[models.Donation](ctx, r.store, store.KeyDonations)
}
