package report

import (
	"fmt"
	"sort"

	"github.com/farm-tools/agro-atlas/pkg/models/domain"
	"github.com/farm-tools/agro-atlas/pkg/services/metrics"
)

// buildFinancialReport aggregates window-filtered costs against the
// revenue estimate. Revenue intentionally reads the current field
// snapshot without window filtering; the asymmetry is inherited from
// the dashboard this engine replaces and is preserved for parity.
func buildFinancialReport(calc *metrics.Calculator, snap *Snapshot, period domain.TimePeriod) *domain.FinancialReport {
	taskCosts := calc.CalculateTaskCosts(snap.tasksInWindow(period))
	equipCosts := calc.CalculateEquipmentCosts(snap.Equipment, snap.EquipmentTCO)
	fieldSupplies := calc.FieldSupplyCosts(snap.Fields)

	var revenue float64
	for _, f := range snap.Fields {
		revenue += calc.EstimateRevenue(f)
	}

	breakdown := []domain.CostBreakdownItem{
		{Category: "Supplies & Materials", Amount: taskCosts.Supplies + fieldSupplies},
		{Category: "Labor", Amount: taskCosts.Labor},
		{Category: "Equipment Maintenance", Amount: equipCosts.Maintenance},
		{Category: "Equipment Depreciation", Amount: equipCosts.Depreciation},
		{Category: "Fuel", Amount: equipCosts.Fuel},
	}

	var totalCosts float64
	for _, item := range breakdown {
		totalCosts += item.Amount
	}
	for i := range breakdown {
		breakdown[i].Percentage = pctOf(breakdown[i].Amount, totalCosts)
	}
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Percentage > breakdown[j].Percentage
	})

	netProfit := revenue - totalCosts

	return &domain.FinancialReport{
		Period:        period,
		TotalRevenue:  revenue,
		TotalCosts:    totalCosts,
		NetProfit:     netProfit,
		ProfitMargin:  round1(100 * safeDiv(netProfit, revenue)),
		CostBreakdown: breakdown,
		Summary: fmt.Sprintf("Estimated revenue $%.2f against $%.2f in costs leaves $%.2f net",
			revenue, totalCosts, netProfit),
	}
}
