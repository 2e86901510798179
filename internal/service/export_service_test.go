package service

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nsmosa/alumni-portal-api/internal/models"
	"github.com/nsmosa/alumni-portal-api/internal/repository"
	"github.com/nsmosa/alumni-portal-api/internal/store"
	appErrors "github.com/nsmosa/alumni-portal-api/pkg/errors"
)

func newExportFixture(t *testing.T) (*ExportService, *repository.MembershipRepository, *repository.DonationRepository) {
	t.Helper()
	kv := store.NewMemoryStore()
	memberships := repository.NewMembershipRepository(kv)
	donations := repository.NewDonationRepository(kv)
	return NewExportService(memberships, donations, zap.NewNop()), memberships, donations
}

func TestExportDonationsCSV(t *testing.T) {
	ctx := context.Background()
	svc, _, donations := newExportFixture(t)

	require.NoError(t, donations.Append(ctx, models.Donation{
		ID:        "d1",
		DonorName: "Generous Grad",
		Email:     "grad@example.com",
		Purpose:   "scholarship fund",
		Amount:    250.5,
		CreatedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}))

	result, err := svc.Export(ctx, ExportResourceDonations, ExportFormatCSV)
	require.NoError(t, err)
	require.Equal(t, "text/csv", result.ContentType)
	require.True(t, strings.HasPrefix(result.Filename, "donations-"))
	require.True(t, strings.HasSuffix(result.Filename, ".csv"))

	body := string(result.Data)
	require.Contains(t, body, "Date,Donor,Email,Purpose,Amount")
	require.Contains(t, body, "2026-03-01")
	require.Contains(t, body, "Generous Grad")
	require.Contains(t, body, "250.50")
}

func TestExportMembershipsPDF(t *testing.T) {
	ctx := context.Background()
	svc, memberships, _ := newExportFixture(t)

	require.NoError(t, memberships.Append(ctx, models.Membership{
		ID:          "m1",
		MemberEmail: "alum@example.com",
		Name:        "Alum One",
		BatchYear:   "1999",
		Plan:        "annual",
		Amount:      50,
		CreatedAt:   time.Now().UTC(),
	}))

	result, err := svc.Export(ctx, ExportResourceMemberships, ExportFormatPDF)
	require.NoError(t, err)
	require.Equal(t, "application/pdf", result.ContentType)
	require.True(t, strings.HasSuffix(result.Filename, ".pdf"))
	require.True(t, strings.HasPrefix(string(result.Data), "%PDF"))
}

func TestExportRejectsUnknownInputs(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newExportFixture(t)

	_, err := svc.Export(ctx, "members", ExportFormatCSV)
	require.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)

	_, err = svc.Export(ctx, ExportResourceDonations, "xlsx")
	require.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
}

func TestExportEmptyLedgerStillRenders(t *testing.T) {
	svc, _, _ := newExportFixture(t)

	result, err := svc.Export(context.Background(), ExportResourceMemberships, ExportFormatCSV)
	require.NoError(t, err)
	require.Contains(t, string(result.Data), "Date,Member,Email,Batch,Plan,Amount")
}
