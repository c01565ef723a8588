package report

import (
	"github.com/farm-tools/agro-atlas/pkg/models/domain"
	"github.com/farm-tools/agro-atlas/pkg/services/metrics"
)

// windowCosts is the total cost figure shared by the financial and
// performance reports: windowed task spend, per-acre field supplies
// and the monthly equipment categories.
func windowCosts(calc *metrics.Calculator, snap *Snapshot, period domain.TimePeriod) float64 {
	taskCosts := calc.CalculateTaskCosts(snap.tasksInWindow(period))
	equipCosts := calc.CalculateEquipmentCosts(snap.Equipment, snap.EquipmentTCO)
	return taskCosts.Total +
		calc.FieldSupplyCosts(snap.Fields) +
		equipCosts.Maintenance + equipCosts.Depreciation + equipCosts.Fuel
}

func buildPerformanceMetrics(calc *metrics.Calculator, snap *Snapshot, period domain.TimePeriod) *domain.PerformanceMetrics {
	yields := fieldYields(calc, snap, period)

	var totalYield float64
	for _, y := range yields {
		totalYield += y.TotalYield
	}

	var revenue float64
	for _, f := range snap.Fields {
		revenue += calc.EstimateRevenue(f)
	}

	costs := windowCosts(calc, snap, period)
	netProfit := revenue - costs

	windowTasks := snap.tasksInWindow(period)
	completed := 0
	for _, t := range windowTasks {
		if t.Status == domain.TaskStatusCompleted {
			completed++
		}
	}
	completionRate := 0.0
	if len(windowTasks) > 0 {
		completionRate = round1(100 * float64(completed) / float64(len(windowTasks)))
	}

	utilization := round1(calc.AverageUtilization(snap.Equipment))
	acres := metrics.TotalAcres(snap.Fields)

	kpis := []domain.KPI{
		{Name: "Yield per Acre", Value: round1(safeDiv(totalYield, acres)), Unit: "bu/acre"},
		{Name: "Profit Margin", Value: round1(100 * safeDiv(netProfit, revenue)), Unit: "%"},
		{Name: "Task Completion", Value: completionRate, Unit: "%"},
		{Name: "Equipment Usage", Value: utilization, Unit: "%"},
		{Name: "Cost per Acre", Value: round1(safeDiv(costs, acres)), Unit: "$/acre"},
		{Name: "Revenue per Acre", Value: round1(safeDiv(revenue, acres)), Unit: "$/acre"},
	}

	// Baseline expectation: the base-yield table applied to current
	// acreage, with no variation.
	var baseline float64
	for _, f := range snap.Fields {
		baseline += calc.Config().BaseYield(f.CropType) * f.Size
	}

	return &domain.PerformanceMetrics{
		Period:               period,
		TotalYield:           totalYield,
		TotalRevenue:         revenue,
		TotalCosts:           costs,
		NetProfit:            netProfit,
		TaskCompletionRate:   completionRate,
		EquipmentUtilization: utilization,
		KPIs:                 kpis,
		Summary: domain.PerformanceSummary{
			YieldTrend:      signTrend(totalYield - baseline),
			ProfitTrend:     signTrend(netProfit),
			EfficiencyTrend: signTrend(utilization - 50),
		},
	}
}

// signTrend maps the sign of a comparison to a direction tag.
func signTrend(v float64) domain.Trend {
	switch {
	case v > 0:
		return domain.TrendUp
	case v < 0:
		return domain.TrendDown
	default:
		return domain.TrendStable
	}
}