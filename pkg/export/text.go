package export

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/farm-tools/agro-atlas/pkg/models/domain"
)

var titles = map[domain.Kind]string{
	domain.KindYield:       "Yield Analysis Report",
	domain.KindFinancial:   "Financial Report",
	domain.KindSeasonal:    "Seasonal Comparison Report",
	domain.KindPerformance: "Performance Metrics Report",
	domain.KindResources:   "Resource Usage Report",
	domain.KindCustom:      "Custom Report Catalog",
	domain.KindAll:         "Farm Summary Report",
}

var textFuncs = template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("$%.2f", v) },
	"num":   func(v float64) string { return fmt.Sprintf("%.1f", v) },
	"date":  func(t time.Time) string { return t.Format("2006-01-02") },
}

const yieldTmpl = `Period: {{date .Period.Start}} to {{date .Period.End}}
Total Yield: {{num .TotalYield}} bu
Average: {{num .AvgYieldPerAcre}} bu/acre

=== Field Yields ===
{{range .FieldYields}}- {{.FieldName}} ({{.CropType}}, {{num .Acres}} acres): {{num .TotalYield}} bu at {{num .YieldPerAcre}} bu/acre, trend {{.Trend}}
{{end}}
{{.Summary}}
`

const financialTmpl = `Period: {{date .Period.Start}} to {{date .Period.End}}
Revenue: {{money .TotalRevenue}}
Costs: {{money .TotalCosts}}
Net Profit: {{money .NetProfit}} ({{num .ProfitMargin}}% margin)

=== Cost Breakdown ===
{{range .CostBreakdown}}- {{.Category}}: {{money .Amount}} ({{.Percentage}}%)
{{end}}
{{.Summary}}
`

const seasonalTmpl = `Period: {{date .Period.Start}} to {{date .Period.End}}
Best Season: {{if .BestSeason}}{{.BestSeason}}{{else}}n/a{{end}}

=== Yearly Totals ===
{{range .Years}}- {{.Year}}: {{num .TotalYield}} bu ({{num .ChangePct}}% change){{if .Estimated}} [estimated]{{end}}
{{end}}
=== Monthly Patterns ===
{{range .MonthlyPatterns}}- {{.Month}}: {{.ActivityCount}} activities, productivity {{num .Productivity}}
{{end}}
{{.Summary}}
`

const performanceTmpl = `Period: {{date .Period.Start}} to {{date .Period.End}}
Total Yield: {{num .TotalYield}} bu
Net Profit: {{money .NetProfit}}
Task Completion: {{num .TaskCompletionRate}}%
Equipment Utilization: {{num .EquipmentUtilization}}%

=== Key Performance Indicators ===
{{range .KPIs}}- {{.Name}}: {{num .Value}} {{.Unit}}
{{end}}
Trends: yield {{.Summary.YieldTrend}}, profit {{.Summary.ProfitTrend}}, efficiency {{.Summary.EfficiencyTrend}}
`

const resourcesTmpl = `Period: {{date .Period.Start}} to {{date .Period.End}}
Total Cost: {{money .TotalCost}}

=== Resources ===
{{range .Resources}}- {{.Name}}: {{num .Quantity}} {{.Unit}} for {{money .Cost}} ({{.Percentage}}%)
{{end}}
=== Recommendations ===
{{range .Recommendations}}- {{.}}
{{end}}
{{.Summary}}
`

const customTmpl = `=== Available Metrics ===
{{range .AvailableMetrics}}- {{.}}
{{end}}
=== Templates ===
{{range .Templates}}- {{.Name}}: {{.Description}}
{{end}}`

// textContent renders the printable text document for a report. The
// result is a deliberate simplification of PDF output: a structured
// text blob with a title and timestamp header, not PDF bytes.
func textContent(kind domain.Kind, doc domain.Document) (string, error) {
	var b strings.Builder

	title := titles[kind]
	if title == "" {
		title = "Farm Report"
	}
	fmt.Fprintf(&b, "%s\nGenerated: %s\n%s\n\n",
		title,
		time.Now().Format(time.RFC3339),
		strings.Repeat("=", len(title)))

	if err := writeBody(&b, doc); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeBody(b *strings.Builder, doc domain.Document) error {
	if bundle, ok := doc.(*domain.Bundle); ok {
		for _, kind := range domain.Kinds() {
			inner, ok := bundle.Reports[kind]
			if !ok {
				continue
			}
			fmt.Fprintf(b, "--- %s ---\n", titles[kind])
			if err := writeBody(b, inner); err != nil {
				return err
			}
			b.WriteString("\n")
		}
		return nil
	}

	tmplText, ok := map[domain.Kind]string{
		domain.KindYield:       yieldTmpl,
		domain.KindFinancial:   financialTmpl,
		domain.KindSeasonal:    seasonalTmpl,
		domain.KindPerformance: performanceTmpl,
		domain.KindResources:   resourcesTmpl,
		domain.KindCustom:      customTmpl,
	}[doc.Kind()]
	if !ok {
		return nil
	}

	t, err := template.New(string(doc.Kind())).Funcs(textFuncs).Parse(tmplText)
	if err != nil {
		return fmt.Errorf("failed to parse %s template: %w", doc.Kind(), err)
	}
	return t.Execute(b, doc)
}
