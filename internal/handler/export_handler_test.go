package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsmosa/alumni-portal-api/internal/service"
)

type exportServiceMock struct {
	lastResource string
	lastFormat   string
	result       *service.ExportResult
	err          error
}

func (m *exportServiceMock) Export(ctx context.Context, resource, format string) (*service.ExportResult, error) {
	m.lastResource = resource
	m.lastFormat = format
	return m.result, m.err
}

func TestExportHandlerFormatSelection(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name     string
		param    string
		query    string
		resource string
		format   string
	}{
		{"default csv", "donations", "", "donations", "csv"},
		{"query format", "memberships", "?format=pdf", "memberships", "pdf"},
		{"suffix format", "donations.pdf", "", "donations", "pdf"},
		{"suffix beats query", "memberships.csv", "?format=pdf", "memberships", "csv"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockSvc := &exportServiceMock{
				result: &service.ExportResult{Filename: "x", ContentType: "text/csv", Data: []byte("Date\n")},
			}
			handler := NewExportHandler(mockSvc)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			req, _ := http.NewRequest(http.MethodGet, "/admin/exports/"+tc.param+tc.query, nil)
			c.Request = req
			c.Params = gin.Params{{Key: "resource", Value: tc.param}}

			handler.Export(c)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tc.resource, mockSvc.lastResource)
			assert.Equal(t, tc.format, mockSvc.lastFormat)
		})
	}
}

func TestExportHandlerSetsDisposition(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewExportHandler(&exportServiceMock{
		result: &service.ExportResult{Filename: "donations-20260301.csv", ContentType: "text/csv", Data: []byte("Date\n")},
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/admin/exports/donations", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "resource", Value: "donations"}}

	handler.Export(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "donations-20260301.csv")
}
