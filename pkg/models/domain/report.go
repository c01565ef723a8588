package domain

import (
	"fmt"
	"time"
)

// Kind identifies one of the analytical views the engine can build.
type Kind string

const (
	KindYield       Kind = "yield"
	KindFinancial   Kind = "financial"
	KindSeasonal    Kind = "seasonal"
	KindPerformance Kind = "performance"
	KindResources   Kind = "resources"
	KindCustom      Kind = "custom"

	// KindAll is not a buildable report; it tags the aggregate of all
	// kinds for export purposes.
	KindAll Kind = "all"
)

// Kinds lists every buildable report kind in presentation order.
func Kinds() []Kind {
	return []Kind{KindYield, KindFinancial, KindSeasonal, KindPerformance, KindResources, KindCustom}
}

// ParseKind validates a caller-supplied kind string.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown report kind %q", s)
}

// TimePeriod is the inclusive date window a report was built for.
type TimePeriod struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the inclusive window.
func (p TimePeriod) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// Trend is a qualitative direction tag.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// Document is the tagged union of the six report shapes. Consumers
// dispatch on Kind() or on the concrete type; no report carries
// identity beyond the request that produced it.
type Document interface {
	Kind() Kind
}

// FieldYield is one field's derived yield line.
type FieldYield struct {
	FieldID      string  `json:"fieldId"`
	FieldName    string  `json:"fieldName"`
	CropType     string  `json:"cropType"`
	Acres        float64 `json:"acres"`
	YieldPerAcre float64 `json:"yieldPerAcre"` // bushels/acre, 1 decimal
	TotalYield   float64 `json:"totalYield"`   // bushels
	Trend        Trend   `json:"trend"`
	Estimated    bool    `json:"estimated"` // true when no activity yield existed
}

// CostBreakdownItem is one category row of a financial breakdown.
// Percentages across one breakdown sum to ~100 (integer rounding).
type CostBreakdownItem struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage int     `json:"percentage"`
}

// YieldAnalysis ranks fields by attributable yield over the window.
type YieldAnalysis struct {
	Period                   TimePeriod   `json:"period"`
	FieldYields              []FieldYield `json:"fieldYields"` // sorted descending by TotalYield
	TopFields                []FieldYield `json:"topFields"`
	ImprovementOpportunities []FieldYield `json:"improvementOpportunities"`
	TotalYield               float64      `json:"totalYield"`
	AvgYieldPerAcre          float64      `json:"avgYieldPerAcre"`
	Summary                  string       `json:"summary"`
}

func (*YieldAnalysis) Kind() Kind { return KindYield }

// FinancialReport aggregates costs against estimated revenue.
// Revenue is computed from current field snapshots and is not window
// filtered; costs are. The asymmetry is inherited behavior.
type FinancialReport struct {
	Period        TimePeriod          `json:"period"`
	TotalRevenue  float64             `json:"totalRevenue"`
	TotalCosts    float64             `json:"totalCosts"`
	NetProfit     float64             `json:"netProfit"`
	ProfitMargin  float64             `json:"profitMargin"`  // percent
	CostBreakdown []CostBreakdownItem `json:"costBreakdown"` // sorted descending by Percentage
	Summary       string              `json:"summary"`
}

func (*FinancialReport) Kind() Kind { return KindFinancial }

// YearlyYield is one season row of a seasonal comparison.
type YearlyYield struct {
	Year       int     `json:"year"`
	TotalYield float64 `json:"totalYield"`
	ChangePct  float64 `json:"changePct"` // vs the prior year; 0 when prior is 0
	Estimated  bool    `json:"estimated"`
}

// MonthlyPattern is one calendar-month activity bucket.
type MonthlyPattern struct {
	Month         string  `json:"month"`
	ActivityCount int     `json:"activityCount"`
	Productivity  float64 `json:"productivity"`
}

// SeasonalComparison compares the current and two preceding years.
type SeasonalComparison struct {
	Period          TimePeriod       `json:"period"`
	Years           []YearlyYield    `json:"years"` // oldest first
	MonthlyPatterns []MonthlyPattern `json:"monthlyPatterns"`
	BestSeason      string           `json:"bestSeason"`
	Summary         string           `json:"summary"`
}

func (*SeasonalComparison) Kind() Kind { return KindSeasonal }

// KPI is one row of the fixed performance indicator table.
type KPI struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// PerformanceSummary carries qualitative direction tags derived from
// sign comparisons rather than magnitude thresholds.
type PerformanceSummary struct {
	YieldTrend      Trend `json:"yieldTrend"`
	ProfitTrend     Trend `json:"profitTrend"`
	EfficiencyTrend Trend `json:"efficiencyTrend"`
}

// PerformanceMetrics is the operational overview for a window.
type PerformanceMetrics struct {
	Period               TimePeriod         `json:"period"`
	TotalYield           float64            `json:"totalYield"`
	TotalRevenue         float64            `json:"totalRevenue"`
	TotalCosts           float64            `json:"totalCosts"`
	NetProfit            float64            `json:"netProfit"`
	TaskCompletionRate   float64            `json:"taskCompletionRate"`   // percent
	EquipmentUtilization float64            `json:"equipmentUtilization"` // percent, mean
	KPIs                 []KPI              `json:"kpis"`
	Summary              PerformanceSummary `json:"summary"`
}

func (*PerformanceMetrics) Kind() Kind { return KindPerformance }

// ResourceRow is one consumable line of the resource catalog.
type ResourceRow struct {
	Name       string  `json:"name"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
	Cost       float64 `json:"cost"`
	Percentage int     `json:"percentage"` // of total resource cost
}

// ResourceUsage reports consumable spend with recommendations.
type ResourceUsage struct {
	Period          TimePeriod    `json:"period"`
	Resources       []ResourceRow `json:"resources"`
	TotalCost       float64       `json:"totalCost"`
	Recommendations []string      `json:"recommendations"`
	Summary         string        `json:"summary"`
}

func (*ResourceUsage) Kind() Kind { return KindResources }

// ReportTemplate describes one preconfigured custom report.
type ReportTemplate struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Metrics     []string `json:"metrics"`
}

// CustomCatalog lists the metrics and templates available for custom
// reports. It is a capability listing and reads no entity data.
type CustomCatalog struct {
	AvailableMetrics []string         `json:"availableMetrics"`
	Templates        []ReportTemplate `json:"templates"`
}

func (*CustomCatalog) Kind() Kind { return KindCustom }

// Bundle is the aggregate of every report kind for one window, used by
// the "all" export path.
type Bundle struct {
	Period  TimePeriod        `json:"period"`
	Reports map[Kind]Document `json:"reports"`
}

func (*Bundle) Kind() Kind { return KindAll }
