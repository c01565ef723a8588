package report

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/farm-tools/agro-atlas/pkg/export"
	"github.com/farm-tools/agro-atlas/pkg/models/api"
	"github.com/farm-tools/agro-atlas/pkg/models/domain"
	reportsvc "github.com/farm-tools/agro-atlas/pkg/services/report"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetReport(ctx context.Context, kind domain.Kind, start, end time.Time) (domain.Document, error) {
	args := m.Called(ctx, kind, start, end)
	if doc := args.Get(0); doc != nil {
		return doc.(domain.Document), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) GetAllReports(ctx context.Context, start, end time.Time) (map[domain.Kind]domain.Document, error) {
	args := m.Called(ctx, start, end)
	if docs := args.Get(0); docs != nil {
		return docs.(map[domain.Kind]domain.Document), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) ExportReport(ctx context.Context, kind domain.Kind, format export.Format, start, end time.Time) (*export.File, error) {
	args := m.Called(ctx, kind, format, start, end)
	if file := args.Get(0); file != nil {
		return file.(*export.File), args.Error(1)
	}
	return nil, args.Error(1)
}

func newTestRouter(svc Service) *chi.Mux {
	h := NewHandler(svc)
	router := chi.NewRouter()
	router.Get("/reports", h.GetAllReports)
	router.Get("/reports/kinds", h.ListKinds)
	router.Get("/reports/{kind}", h.GetReport)
	router.Get("/reports/{kind}/export", h.ExportReport)
	return router
}

func TestListKinds(t *testing.T) {
	router := newTestRouter(&mockService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reports/kinds", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var kinds []api.ReportKind
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&kinds))
	require.Len(t, kinds, 6)
	assert.Equal(t, "yield", kinds[0].Name)
	assert.NotEmpty(t, kinds[0].Description)
}

func TestGetReport(t *testing.T) {
	t.Run("returns the generated document", func(t *testing.T) {
		svc := &mockService{}
		svc.On("GetReport", mock.Anything, domain.KindYield, mock.Anything, mock.Anything).
			Return(&domain.YieldAnalysis{TotalYield: 24425, Summary: "3 fields"}, nil)

		rec := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(rec,
			httptest.NewRequest(http.MethodGet, "/reports/yield", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var body domain.YieldAnalysis
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, 24425.0, body.TotalYield)
		svc.AssertExpectations(t)
	})

	t.Run("passes the parsed window through", func(t *testing.T) {
		svc := &mockService{}
		start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
		svc.On("GetReport", mock.Anything, domain.KindFinancial, start, end).
			Return(&domain.FinancialReport{}, nil)

		rec := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(rec,
			httptest.NewRequest(http.MethodGet, "/reports/financial?from=2025-06-01&to=2025-06-30", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("unknown kind is a 404", func(t *testing.T) {
		svc := &mockService{}

		rec := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(rec,
			httptest.NewRequest(http.MethodGet, "/reports/bogus", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		svc.AssertNotCalled(t, "GetReport")
	})

	t.Run("malformed from date is a 400", func(t *testing.T) {
		svc := &mockService{}

		rec := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(rec,
			httptest.NewRequest(http.MethodGet, "/reports/yield?from=06-01-2025", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t,
			"invalid 'from' date format. Expected format: YYYY-MM-DD",
			strings.TrimSpace(rec.Body.String()))
		svc.AssertNotCalled(t, "GetReport")
	})

	t.Run("generation failure is a 500", func(t *testing.T) {
		svc := &mockService{}
		svc.On("GetReport", mock.Anything, domain.KindYield, mock.Anything, mock.Anything).
			Return(nil, &reportsvc.GenerationError{Kind: domain.KindYield})

		rec := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(rec,
			httptest.NewRequest(http.MethodGet, "/reports/yield", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestGetAllReports(t *testing.T) {
	svc := &mockService{}
	svc.On("GetAllReports", mock.Anything, mock.Anything, mock.Anything).
		Return(map[domain.Kind]domain.Document{
			domain.KindYield: &domain.YieldAnalysis{TotalYield: 100},
		}, nil)

	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/reports", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Contains(t, body, "yield")
	svc.AssertExpectations(t)
}

func TestExportReport(t *testing.T) {
	t.Run("sets download headers", func(t *testing.T) {
		svc := &mockService{}
		svc.On("ExportReport", mock.Anything, domain.KindYield, export.FormatCSV, mock.Anything, mock.Anything).
			Return(&export.File{
				Content:  "Field Name,Crop Type\n",
				MimeType: "text/csv",
				Filename: "yield-report-2025-06-30.csv",
			}, nil)

		rec := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(rec,
			httptest.NewRequest(http.MethodGet, "/reports/yield/export?format=csv", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
		assert.Equal(t,
			"attachment; filename=yield-report-2025-06-30.csv",
			rec.Header().Get("Content-Disposition"))
		assert.Equal(t, "Field Name,Crop Type\n", rec.Body.String())
	})

	t.Run("accepts the all pseudo-kind", func(t *testing.T) {
		svc := &mockService{}
		svc.On("ExportReport", mock.Anything, domain.KindAll, export.FormatPDF, mock.Anything, mock.Anything).
			Return(&export.File{MimeType: "application/pdf", Filename: "all-report.pdf"}, nil)

		rec := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(rec,
			httptest.NewRequest(http.MethodGet, "/reports/all/export?format=pdf", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("missing format is a 400", func(t *testing.T) {
		svc := &mockService{}

		rec := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(rec,
			httptest.NewRequest(http.MethodGet, "/reports/yield/export", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "ExportReport")
	})

	t.Run("unknown kind is a 404", func(t *testing.T) {
		svc := &mockService{}

		rec := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(rec,
			httptest.NewRequest(http.MethodGet, "/reports/bogus/export?format=csv", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
