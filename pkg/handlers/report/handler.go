package report

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/farm-tools/agro-atlas/pkg/export"
	"github.com/farm-tools/agro-atlas/pkg/models/api"
	"github.com/farm-tools/agro-atlas/pkg/models/domain"
	reportsvc "github.com/farm-tools/agro-atlas/pkg/services/report"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const defaultWindowDays = 30

// Service is the slice of the report generator the HTTP surface needs.
type Service interface {
	GetReport(ctx context.Context, kind domain.Kind, start, end time.Time) (domain.Document, error)
	GetAllReports(ctx context.Context, start, end time.Time) (map[domain.Kind]domain.Document, error)
	ExportReport(ctx context.Context, kind domain.Kind, format export.Format, start, end time.Time) (*export.File, error)
}

var kindDescriptions = map[domain.Kind]string{
	domain.KindYield:       "Field yields ranked over the window",
	domain.KindFinancial:   "Costs, revenue and net profit",
	domain.KindSeasonal:    "Year-over-year and monthly comparison",
	domain.KindPerformance: "KPIs and operational trends",
	domain.KindResources:   "Consumable usage and spend",
	domain.KindCustom:      "Available metrics and templates",
}

type Handler struct {
	reports Service
}

func NewHandler(reports Service) *Handler {
	return &Handler{reports: reports}
}

func (h *Handler) ListKinds(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var response []api.ReportKind
	for _, kind := range domain.Kinds() {
		response = append(response, api.ReportKind{
			Name:        string(kind),
			Description: kindDescriptions[kind],
		})
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode report kinds")
	}
}

func (h *Handler) GetAllReports(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	start, end, ok := parseWindow(w, r)
	if !ok {
		return
	}

	docs, err := h.reports.GetAllReports(ctx, start, end)
	if err != nil {
		logger.Error().Err(err).Msg("failed to generate reports")
		http.Error(w, "failed to generate reports", http.StatusInternalServerError)
		return
	}

	if err := json.NewEncoder(w).Encode(docs); err != nil {
		logger.Error().Err(err).Msg("failed to encode reports")
	}
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	kind, err := domain.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		http.Error(w, "unknown report kind", http.StatusNotFound)
		return
	}

	start, end, ok := parseWindow(w, r)
	if !ok {
		return
	}

	doc, err := h.reports.GetReport(ctx, kind, start, end)
	if err != nil {
		logger.Error().Err(err).Str("kind", string(kind)).Msg("failed to generate report")
		http.Error(w, "failed to generate report", http.StatusInternalServerError)
		return
	}

	if err := json.NewEncoder(w).Encode(doc); err != nil {
		logger.Error().Err(err).Str("kind", string(kind)).Msg("failed to encode report")
	}
}

func (h *Handler) ExportReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	rawKind := chi.URLParam(r, "kind")
	kind := domain.KindAll
	if rawKind != string(domain.KindAll) {
		var err error
		kind, err = domain.ParseKind(rawKind)
		if err != nil {
			http.Error(w, "unknown report kind", http.StatusNotFound)
			return
		}
	}

	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		http.Error(w, "invalid format. Expected csv or pdf", http.StatusBadRequest)
		return
	}

	start, end, ok := parseWindow(w, r)
	if !ok {
		return
	}

	file, err := h.reports.ExportReport(ctx, kind, format, start, end)
	if err != nil {
		if errors.Is(err, reportsvc.ErrInvalidKind) {
			http.Error(w, "unknown report kind", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Str("kind", string(kind)).Msg("failed to export report")
		http.Error(w, "failed to export report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", file.MimeType)
	w.Header().Set("Content-Disposition", "attachment; filename="+file.Filename)
	if _, err := w.Write([]byte(file.Content)); err != nil {
		logger.Error().Err(err).Msg("failed to write export")
	}
}

// parseWindow reads the from/to query params, defaulting to the last
// thirty days ending now. It writes the error response itself and
// returns ok=false when a date fails to parse.
func parseWindow(w http.ResponseWriter, r *http.Request) (start, end time.Time, ok bool) {
	end = time.Now()
	start = end.AddDate(0, 0, -defaultWindowDays)

	if from := r.URL.Query().Get("from"); from != "" {
		parsed, err := time.Parse("2006-01-02", from)
		if err != nil {
			http.Error(w, "invalid 'from' date format. Expected format: YYYY-MM-DD", http.StatusBadRequest)
			return start, end, false
		}
		start = parsed
	}
	if to := r.URL.Query().Get("to"); to != "" {
		parsed, err := time.Parse("2006-01-02", to)
		if err != nil {
			http.Error(w, "invalid 'to' date format. Expected format: YYYY-MM-DD", http.StatusBadRequest)
			return start, end, false
		}
		end = parsed
	}
	return start, end, true
}
