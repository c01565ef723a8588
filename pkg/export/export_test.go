package export

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/farm-tools/agro-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleYield() *domain.YieldAnalysis {
	return &domain.YieldAnalysis{
		FieldYields: []domain.FieldYield{
			{FieldName: "North Field", CropType: "corn", Acres: 120, YieldPerAcre: 148.3, TotalYield: 17800, Trend: domain.TrendUp},
			{FieldName: "South, Lower", CropType: "wheat", Acres: 80, YieldPerAcre: 57.5, TotalYield: 4600, Trend: domain.TrendStable},
			{FieldName: `Creek "Bottom"`, CropType: "soybeans", Acres: 45, YieldPerAcre: 45.0, TotalYield: 2025, Trend: domain.TrendDown},
		},
		TotalYield:      24425,
		AvgYieldPerAcre: 99.7,
	}
}

func TestParseFormat(t *testing.T) {
	for _, valid := range []string{"csv", "pdf"} {
		got, err := ParseFormat(valid)
		require.NoError(t, err)
		assert.Equal(t, Format(valid), got)
	}

	_, err := ParseFormat("xlsx")
	assert.Error(t, err)
}

func TestYieldCSV_RoundTrip(t *testing.T) {
	file, err := Export(domain.KindYield, FormatCSV, sampleYield())
	require.NoError(t, err)
	assert.Equal(t, "text/csv", file.MimeType)
	assert.True(t, strings.HasPrefix(file.Filename, "yield-report-"))
	assert.True(t, strings.HasSuffix(file.Filename, ".csv"))

	records, err := csv.NewReader(strings.NewReader(file.Content)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, []string{"Field Name", "Crop Type", "Acres", "Yield per Acre", "Total Yield", "Trend"}, records[0])

	// Field names with commas and embedded quotes survive the trip.
	assert.Equal(t, "North Field", records[1][0])
	assert.Equal(t, "South, Lower", records[2][0])
	assert.Equal(t, `Creek "Bottom"`, records[3][0])

	assert.Equal(t, "corn", records[1][1])
	assert.Equal(t, "148.3", records[1][3])
	assert.Equal(t, "17800.0", records[1][4])
	assert.Equal(t, "up", records[1][5])
}

func TestFinancialCSV_PreservesRowOrder(t *testing.T) {
	fin := &domain.FinancialReport{
		CostBreakdown: []domain.CostBreakdownItem{
			{Category: "Supplies & Materials", Amount: 15000, Percentage: 60},
			{Category: "Fuel", Amount: 10000, Percentage: 40},
		},
	}

	file, err := Export(domain.KindFinancial, FormatCSV, fin)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(file.Content)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	// The exporter renders the breakdown as given, largest share first
	// because the builder already sorted it.
	assert.Equal(t, "Supplies & Materials", records[1][0])
	assert.Equal(t, "$15000.00", records[1][1])
	assert.Equal(t, "60", records[1][2])
	assert.Equal(t, "Fuel", records[2][0])
}

func TestBundleCSV_FlattensPerformance(t *testing.T) {
	bundle := &domain.Bundle{
		Reports: map[domain.Kind]domain.Document{
			domain.KindPerformance: &domain.PerformanceMetrics{
				TotalYield:           24425,
				TotalRevenue:         81000,
				TotalCosts:           52000,
				NetProfit:            29000,
				TaskCompletionRate:   50,
				EquipmentUtilization: 63,
				Summary: domain.PerformanceSummary{
					YieldTrend:  domain.TrendUp,
					ProfitTrend: domain.TrendUp,
				},
			},
		},
	}

	file, err := Export(domain.KindAll, FormatCSV, bundle)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(file.Content)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 9)
	assert.Equal(t, []string{"Report Type", "Metric", "Value"}, records[0])
	assert.Equal(t, []string{"Performance", "Total Yield", "24425.0"}, records[1])
	assert.Equal(t, []string{"Performance", "Net Profit", "$29000.00"}, records[4])
	assert.Equal(t, []string{"Performance", "Yield Trend", "up"}, records[7])
}

func TestBundleCSV_MissingPerformanceIsEmpty(t *testing.T) {
	file, err := Export(domain.KindAll, FormatCSV, &domain.Bundle{Reports: map[domain.Kind]domain.Document{}})
	require.NoError(t, err)
	assert.Empty(t, file.Content)
}

func TestExport_UnsupportedCSVKindIsLenient(t *testing.T) {
	doc := &domain.SeasonalComparison{}

	file, err := Export(domain.KindSeasonal, FormatCSV, doc)
	require.NoError(t, err)
	assert.Empty(t, file.Content)
	assert.Equal(t, "text/csv", file.MimeType)
}

func TestExport_UnknownFormatIsLenient(t *testing.T) {
	file, err := Export(domain.KindYield, Format("xlsx"), sampleYield())
	require.NoError(t, err)
	assert.Empty(t, file.Content)
	assert.Equal(t, "text/plain", file.MimeType)
}

func TestTextExport_YieldDocument(t *testing.T) {
	file, err := Export(domain.KindYield, FormatPDF, sampleYield())
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.MimeType)
	assert.True(t, strings.HasSuffix(file.Filename, ".pdf"))

	assert.True(t, strings.HasPrefix(file.Content, "Yield Analysis Report\n"))
	assert.Contains(t, file.Content, "Generated: ")
	assert.Contains(t, file.Content, "=== Field Yields ===")
	assert.Contains(t, file.Content, "North Field (corn, 120.0 acres)")
	assert.Contains(t, file.Content, "trend up")
}

func TestTextExport_BundleSections(t *testing.T) {
	bundle := &domain.Bundle{
		Reports: map[domain.Kind]domain.Document{
			domain.KindYield: sampleYield(),
			domain.KindCustom: &domain.CustomCatalog{
				AvailableMetrics: []string{"total_yield"},
				Templates: []domain.ReportTemplate{
					{Name: "Field Productivity", Description: "Ranked per-field output"},
				},
			},
		},
	}

	file, err := Export(domain.KindAll, FormatPDF, bundle)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(file.Content, "Farm Summary Report\n"))
	assert.Contains(t, file.Content, "--- Yield Analysis Report ---")
	assert.Contains(t, file.Content, "--- Custom Report Catalog ---")
	assert.Contains(t, file.Content, "- Field Productivity: Ranked per-field output")

	// Yield comes before custom, matching presentation order.
	assert.Less(t,
		strings.Index(file.Content, "--- Yield Analysis Report ---"),
		strings.Index(file.Content, "--- Custom Report Catalog ---"))
}
