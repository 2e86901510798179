package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nsmosa/alumni-portal-api/internal/dto"
	"github.com/nsmosa/alumni-portal-api/internal/repository"
	"github.com/nsmosa/alumni-portal-api/internal/store"
	appErrors "github.com/nsmosa/alumni-portal-api/pkg/errors"
)

func newGivingService(t *testing.T) *GivingService {
	t.Helper()
	kv := store.NewMemoryStore()
	return NewGivingService(repository.NewMembershipRepository(kv), repository.NewDonationRepository(kv), zap.NewNop())
}

func TestCreateMembership(t *testing.T) {
	ctx := context.Background()
	svc := newGivingService(t)

	record, err := svc.CreateMembership(ctx, dto.CreateMembershipRequest{
		MemberEmail: "alum@example.com",
		Name:        "Alum One",
		BatchYear:   "1999",
		Plan:        "annual",
		Amount:      50,
	})
	require.NoError(t, err)
	require.NotEmpty(t, record.ID)
	require.False(t, record.CreatedAt.IsZero())

	list, err := svc.ListMemberships(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "annual", list[0].Plan)
}

func TestCreateMembershipValidation(t *testing.T) {
	svc := newGivingService(t)

	_, err := svc.CreateMembership(context.Background(), dto.CreateMembershipRequest{
		MemberEmail: "not-an-email",
		Name:        "Alum One",
		Plan:        "annual",
		Amount:      50,
	})
	require.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)

	_, err = svc.CreateMembership(context.Background(), dto.CreateMembershipRequest{
		MemberEmail: "alum@example.com",
		Name:        "Alum One",
		Plan:        "annual",
		Amount:      -5,
	})
	require.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
}

func TestCreateDonation(t *testing.T) {
	ctx := context.Background()
	svc := newGivingService(t)

	record, err := svc.CreateDonation(ctx, dto.CreateDonationRequest{
		DonorName: "Generous Grad",
		Email:     "grad@example.com",
		Purpose:   "scholarship fund",
		Amount:    250,
	})
	require.NoError(t, err)
	require.NotEmpty(t, record.ID)

	list, err := svc.ListDonations(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "scholarship fund", list[0].Purpose)

	_, err = svc.CreateDonation(ctx, dto.CreateDonationRequest{DonorName: "No Amount", Email: "g@example.com"})
	require.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
}
