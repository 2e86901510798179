package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	appErrors "github.com/nsmosa/alumni-portal-api/pkg/errors"
	"github.com/nsmosa/alumni-portal-api/pkg/export"
)

// Export formats and resources.
const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"

	ExportResourceDonations   = "donations"
	ExportResourceMemberships = "memberships"
)

// ExportResult is a rendered export document.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService renders the giving ledgers as downloadable CSV or PDF
// documents for the association's bookkeeping.
type ExportService struct {
	memberships membershipStore
	donations   donationStore
	csv         *export.CSVExporter
	pdf         *export.PDFExporter
	logger      *zap.Logger
}

// NewExportService creates the service.
func NewExportService(memberships membershipStore, donations donationStore, logger *zap.Logger) *ExportService {
	return &ExportService{
		memberships: memberships,
		donations:   donations,
		csv:         export.NewCSVExporter(),
		pdf:         export.NewPDFExporter(),
		logger:      logger,
	}
}

// Export renders the named resource in the requested format.
func (s *ExportService) Export(ctx context.Context, resource, format string) (*ExportResult, error) {
	var (
		dataset export.Dataset
		title   string
		err     error
	)
	switch resource {
	case ExportResourceDonations:
		dataset, err = s.donationsDataset(ctx)
		title = "Donations"
	case ExportResourceMemberships:
		dataset, err = s.membershipsDataset(ctx)
		title = "Memberships"
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown export resource")
	}
	if err != nil {
		return nil, err
	}

	stamp := time.Now().UTC().Format("20060102")
	switch format {
	case ExportFormatCSV:
		data, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, "EXPORT_FAILED", 500, "failed to render export")
		}
		return &ExportResult{
			Filename:    fmt.Sprintf("%s-%s.csv", resource, stamp),
			ContentType: "text/csv",
			Data:        data,
		}, nil
	case ExportFormatPDF:
		data, err := s.pdf.Render(dataset, title)
		if err != nil {
			return nil, appErrors.Wrap(err, "EXPORT_FAILED", 500, "failed to render export")
		}
		return &ExportResult{
			Filename:    fmt.Sprintf("%s-%s.pdf", resource, stamp),
			ContentType: "application/pdf",
			Data:        data,
		}, nil
	}
	return nil, appErrors.Clone(appErrors.ErrValidation, "unknown export format")
}

func (s *ExportService) donationsDataset(ctx context.Context) (export.Dataset, error) {
	donations, err := s.donations.List(ctx)
	if err != nil {
		return export.Dataset{}, appErrors.Wrap(err, "GIVING_UNAVAILABLE", 500, "failed to load donations")
	}
	dataset := export.Dataset{Headers: []string{"Date", "Donor", "Email", "Purpose", "Amount"}}
	for _, d := range donations {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Date":    d.CreatedAt.Format("2006-01-02"),
			"Donor":   d.DonorName,
			"Email":   d.Email,
			"Purpose": d.Purpose,
			"Amount":  strconv.FormatFloat(d.Amount, 'f', 2, 64),
		})
	}
	return dataset, nil
}

func (s *ExportService) membershipsDataset(ctx context.Context) (export.Dataset, error) {
	memberships, err := s.memberships.List(ctx)
	if err != nil {
		return export.Dataset{}, appErrors.Wrap(err, "GIVING_UNAVAILABLE", 500, "failed to load memberships")
	}
	dataset := export.Dataset{Headers: []string{"Date", "Member", "Email", "Batch", "Plan", "Amount"}}
	for _, m := range memberships {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Date":   m.CreatedAt.Format("2006-01-02"),
			"Member": m.Name,
			"Email":  m.MemberEmail,
			"Batch":  m.BatchYear,
			"Plan":   m.Plan,
			"Amount": strconv.FormatFloat(m.Amount, 'f', 2, 64),
		})
	}
	return dataset, nil
}
