package report

import (
	"fmt"
	"time"

	"github.com/farm-tools/agro-atlas/pkg/models/domain"
	"github.com/farm-tools/agro-atlas/pkg/services/metrics"
)

// buildSeasonalComparison totals yield-bearing activity per calendar
// year for the report year and the two before it, plus a monthly
// activity pattern across all years. Years with no recorded yield fall
// back to a quartered estimate, treating the estimator's annual figure
// as one growing season out of four calendar quarters.
func buildSeasonalComparison(calc *metrics.Calculator, snap *Snapshot, period domain.TimePeriod) *domain.SeasonalComparison {
	currentYear := period.End.Year()

	var years []domain.YearlyYield
	for y := currentYear - 2; y <= currentYear; y++ {
		var total float64
		for _, a := range snap.Activities {
			if a.YieldBearing() && a.Timestamp.Year() == y {
				total += a.YieldAmount
			}
		}

		estimated := false
		if total == 0 {
			for _, f := range snap.Fields {
				total += calc.EstimateYield(f) / 4
			}
			estimated = true
		}

		years = append(years, domain.YearlyYield{Year: y, TotalYield: total, Estimated: estimated})
	}

	for i := 1; i < len(years); i++ {
		prior := years[i-1].TotalYield
		if prior == 0 {
			years[i].ChangePct = 0
			continue
		}
		years[i].ChangePct = round1(100 * (years[i].TotalYield - prior) / prior)
	}

	var patterns []domain.MonthlyPattern
	bestSeason := ""
	bestScore := 0.0
	for m := time.January; m <= time.December; m++ {
		count := 0
		var monthYield float64
		for _, a := range snap.Activities {
			if a.Timestamp.Month() != m {
				continue
			}
			count++
			if a.YieldBearing() {
				monthYield += a.YieldAmount
			}
		}

		score := round1(float64(count)*10 + monthYield/100)
		patterns = append(patterns, domain.MonthlyPattern{
			Month:         m.String(),
			ActivityCount: count,
			Productivity:  score,
		})
		if score > bestScore {
			bestScore = score
			bestSeason = m.String()
		}
	}

	latest := years[len(years)-1]
	return &domain.SeasonalComparison{
		Period:          period,
		Years:           years,
		MonthlyPatterns: patterns,
		BestSeason:      bestSeason,
		Summary: fmt.Sprintf("%d season totaled %.0f bushels (%+.1f%% vs prior year)",
			latest.Year, latest.TotalYield, latest.ChangePct),
	}
}
