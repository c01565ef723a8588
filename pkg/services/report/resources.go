package report

import (
	"fmt"

	"github.com/farm-tools/agro-atlas/pkg/models/domain"
	"github.com/farm-tools/agro-atlas/pkg/services/metrics"
)

func buildResourceUsage(calc *metrics.Calculator, snap *Snapshot, period domain.TimePeriod) *domain.ResourceUsage {
	rows := calc.CalculateResourceUsage(snap.tasksInWindow(period), snap.Equipment, snap.Fields)

	var total float64
	for _, r := range rows {
		total += r.Cost
	}
	for i := range rows {
		rows[i].Percentage = pctOf(rows[i].Cost, total)
	}

	var recommendations []string
	if len(rows) > 0 {
		top := rows[0]
		for _, r := range rows[1:] {
			if r.Cost > top.Cost {
				top = r
			}
		}
		recommendations = append(recommendations,
			fmt.Sprintf("%s is the largest cost driver at $%.2f; review supplier pricing first", top.Name, top.Cost))

		for _, r := range rows {
			if r.Name == "Fuel" && len(recommendations) < 3 {
				recommendations = append(recommendations,
					"Consolidate machine passes to cut fuel consumption")
			}
		}
		if len(recommendations) < 3 {
			recommendations = append(recommendations,
				"Track actual usage per field to replace rate-based estimates")
		}
	}

	return &domain.ResourceUsage{
		Period:          period,
		Resources:       rows,
		TotalCost:       total,
		Recommendations: recommendations,
		Summary:         fmt.Sprintf("%d resource categories totaling $%.2f", len(rows), total),
	}
}
