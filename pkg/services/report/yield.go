package report

import (
	"fmt"
	"sort"

	"github.com/farm-tools/agro-atlas/pkg/models/domain"
	"github.com/farm-tools/agro-atlas/pkg/services/metrics"
)

// fieldYields derives one yield line per field from harvest and yield
// measurement activities inside the window, falling back to the
// estimator for fields with no recorded yield. The result is sorted by
// total yield, best first; ties keep field order.
func fieldYields(calc *metrics.Calculator, snap *Snapshot, period domain.TimePeriod) []domain.FieldYield {
	yields := make([]domain.FieldYield, 0, len(snap.Fields))

	for _, f := range snap.Fields {
		acts := snap.activitiesForField(f.ID, &period)

		var total float64
		for _, a := range acts {
			if a.YieldBearing() {
				total += a.YieldAmount
			}
		}

		estimated := false
		if total == 0 {
			total = calc.EstimateYield(f)
			estimated = true
		}

		yields = append(yields, domain.FieldYield{
			FieldID:      f.ID,
			FieldName:    f.Name,
			CropType:     f.CropType,
			Acres:        f.Size,
			YieldPerAcre: round1(safeDiv(total, f.Size)),
			TotalYield:   total,
			Trend:        calc.YieldTrend(acts),
			Estimated:    estimated,
		})
	}

	sort.SliceStable(yields, func(i, j int) bool {
		return yields[i].TotalYield > yields[j].TotalYield
	})
	return yields
}

func buildYieldAnalysis(calc *metrics.Calculator, snap *Snapshot, period domain.TimePeriod) *domain.YieldAnalysis {
	yields := fieldYields(calc, snap, period)

	var total float64
	for _, y := range yields {
		total += y.TotalYield
	}

	top := yields
	if len(top) > 5 {
		top = top[:5]
	}
	worst := yields
	if len(worst) > 3 {
		worst = worst[len(worst)-3:]
	}

	avg := round1(safeDiv(total, metrics.TotalAcres(snap.Fields)))

	return &domain.YieldAnalysis{
		Period:                   period,
		FieldYields:              yields,
		TopFields:                top,
		ImprovementOpportunities: worst,
		TotalYield:               total,
		AvgYieldPerAcre:          avg,
		Summary: fmt.Sprintf("%d fields produced %.0f bushels, averaging %.1f bu/acre",
			len(yields), total, avg),
	}
}
