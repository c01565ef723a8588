package report

import (
	"context"
	"fmt"
	"time"

	"github.com/farm-tools/agro-atlas/pkg/export"
	"github.com/farm-tools/agro-atlas/pkg/models/domain"
	"github.com/farm-tools/agro-atlas/pkg/services/metrics"
	"github.com/farm-tools/agro-atlas/pkg/services/sources"
)

// Generator is the report orchestrator: it fans out to the entity
// readers, hands the snapshot to the right builder and optionally
// serializes the result. It holds no per-request state; every call
// recomputes from the latest source data.
type Generator struct {
	readers sources.Readers
	calc    *metrics.Calculator
}

func NewGenerator(readers sources.Readers, calc *metrics.Calculator) *Generator {
	return &Generator{readers: readers, calc: calc}
}

// GetReport builds one report kind for the inclusive [start, end]
// window. Callers are expected to pass start <= end; the engine does
// not reorder them. Any reader failure aborts the build and surfaces
// as a kind-tagged GenerationError.
func (g *Generator) GetReport(ctx context.Context, kind domain.Kind, start, end time.Time) (domain.Document, error) {
	if _, err := domain.ParseKind(string(kind)); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}

	// The custom catalog is static; it never touches the readers.
	if kind == domain.KindCustom {
		return buildCustomCatalog(), nil
	}

	snap, err := fetchSnapshot(ctx, g.readers)
	if err != nil {
		return nil, &GenerationError{Kind: kind, Err: err}
	}

	return g.build(kind, snap, domain.TimePeriod{Start: start, End: end}), nil
}

// GetAllReports builds every kind for the window. The snapshot is
// fetched once and shared; no partial aggregate is ever returned — a
// reader failure fails the whole call.
func (g *Generator) GetAllReports(ctx context.Context, start, end time.Time) (map[domain.Kind]domain.Document, error) {
	snap, err := fetchSnapshot(ctx, g.readers)
	if err != nil {
		return nil, &GenerationError{Kind: domain.KindAll, Err: err}
	}

	period := domain.TimePeriod{Start: start, End: end}
	docs := make(map[domain.Kind]domain.Document, len(domain.Kinds()))
	for _, kind := range domain.Kinds() {
		docs[kind] = g.build(kind, snap, period)
	}
	return docs, nil
}

// ExportReport builds the requested kind (or all kinds for
// domain.KindAll) and serializes it into the requested format.
func (g *Generator) ExportReport(
	ctx context.Context,
	kind domain.Kind,
	format export.Format,
	start, end time.Time,
) (*export.File, error) {
	if kind == domain.KindAll {
		docs, err := g.GetAllReports(ctx, start, end)
		if err != nil {
			return nil, err
		}
		bundle := &domain.Bundle{
			Period:  domain.TimePeriod{Start: start, End: end},
			Reports: docs,
		}
		return export.Export(kind, format, bundle)
	}

	doc, err := g.GetReport(ctx, kind, start, end)
	if err != nil {
		return nil, err
	}
	return export.Export(kind, format, doc)
}

func (g *Generator) build(kind domain.Kind, snap *Snapshot, period domain.TimePeriod) domain.Document {
	switch kind {
	case domain.KindYield:
		return buildYieldAnalysis(g.calc, snap, period)
	case domain.KindFinancial:
		return buildFinancialReport(g.calc, snap, period)
	case domain.KindSeasonal:
		return buildSeasonalComparison(g.calc, snap, period)
	case domain.KindPerformance:
		return buildPerformanceMetrics(g.calc, snap, period)
	case domain.KindResources:
		return buildResourceUsage(g.calc, snap, period)
	case domain.KindCustom:
		return buildCustomCatalog()
	default:
		// Unreachable: kind is validated before dispatch.
		return nil
	}
}
