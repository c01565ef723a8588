package export

import (
	"fmt"
	"strings"

	"github.com/farm-tools/agro-atlas/pkg/models/domain"
)

// quote wraps a value in double quotes, CSV style. Name and category
// columns are quoted universally, not just when they contain commas.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// csvContent renders the kinds that define a CSV shape; everything
// else gets blank content.
func csvContent(kind domain.Kind, doc domain.Document) string {
	switch kind {
	case domain.KindYield:
		if d, ok := doc.(*domain.YieldAnalysis); ok {
			return yieldCSV(d)
		}
	case domain.KindFinancial:
		if d, ok := doc.(*domain.FinancialReport); ok {
			return financialCSV(d)
		}
	case domain.KindAll:
		if d, ok := doc.(*domain.Bundle); ok {
			return bundleCSV(d)
		}
	}
	return ""
}

func yieldCSV(d *domain.YieldAnalysis) string {
	var b strings.Builder
	b.WriteString("Field Name,Crop Type,Acres,Yield per Acre,Total Yield,Trend\n")
	for _, y := range d.FieldYields {
		fmt.Fprintf(&b, "%s,%s,%.1f,%.1f,%.1f,%s\n",
			quote(y.FieldName), y.CropType, y.Acres, y.YieldPerAcre, y.TotalYield, y.Trend)
	}
	return b.String()
}

func financialCSV(d *domain.FinancialReport) string {
	var b strings.Builder
	b.WriteString("Category,Amount,Percentage\n")
	for _, item := range d.CostBreakdown {
		fmt.Fprintf(&b, "%s,$%.2f,%d\n", quote(item.Category), item.Amount, item.Percentage)
	}
	return b.String()
}

// bundleCSV flattens the aggregate into a Report Type / Metric / Value
// table, drawing only from the performance document.
func bundleCSV(d *domain.Bundle) string {
	perf, ok := d.Reports[domain.KindPerformance].(*domain.PerformanceMetrics)
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString("Report Type,Metric,Value\n")
	rows := []struct {
		metric string
		value  string
	}{
		{"Total Yield", fmt.Sprintf("%.1f", perf.TotalYield)},
		{"Total Revenue", fmt.Sprintf("$%.2f", perf.TotalRevenue)},
		{"Total Costs", fmt.Sprintf("$%.2f", perf.TotalCosts)},
		{"Net Profit", fmt.Sprintf("$%.2f", perf.NetProfit)},
		{"Task Completion Rate", fmt.Sprintf("%.1f%%", perf.TaskCompletionRate)},
		{"Equipment Utilization", fmt.Sprintf("%.1f%%", perf.EquipmentUtilization)},
		{"Yield Trend", string(perf.Summary.YieldTrend)},
		{"Profit Trend", string(perf.Summary.ProfitTrend)},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "Performance,%s,%s\n", quote(r.metric), r.value)
	}
	return b.String()
}
