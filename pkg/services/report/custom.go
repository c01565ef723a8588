package report

import "github.com/farm-tools/agro-atlas/pkg/models/domain"

// buildCustomCatalog lists what a custom report could be assembled
// from. It reads no entity data: the catalog is a static capability
// listing, not a computed report.
func buildCustomCatalog() *domain.CustomCatalog {
	return &domain.CustomCatalog{
		AvailableMetrics: []string{
			"total_yield",
			"yield_per_acre",
			"total_revenue",
			"total_costs",
			"net_profit",
			"profit_margin",
			"task_completion_rate",
			"equipment_utilization",
			"resource_costs",
		},
		Templates: []domain.ReportTemplate{
			{
				ID:          "field-productivity",
				Name:        "Field Productivity",
				Description: "Yield and per-acre output ranked across fields",
				Metrics:     []string{"total_yield", "yield_per_acre"},
			},
			{
				ID:          "profit-and-loss",
				Name:        "Profit & Loss",
				Description: "Revenue, cost breakdown and net profit for a period",
				Metrics:     []string{"total_revenue", "total_costs", "net_profit", "profit_margin"},
			},
			{
				ID:          "operations-efficiency",
				Name:        "Operations Efficiency",
				Description: "Task completion and equipment utilization side by side",
				Metrics:     []string{"task_completion_rate", "equipment_utilization", "resource_costs"},
			},
		},
	}
}
