package metrics

import (
	"math"
	"sort"

	"github.com/farm-tools/agro-atlas/pkg/models/domain"
	"github.com/montanaflynn/stats"
)

// Calculator derives numeric summaries from raw farm entities. Every
// method is a pure function of its inputs plus the injected policy;
// none of them fail, empty collections degrade to zeros or the
// configured fallback defaults.
type Calculator struct {
	cfg    Config
	policy EstimationPolicy
}

func NewCalculator(cfg Config, policy EstimationPolicy) *Calculator {
	if policy == nil {
		policy = FixedPolicy(1)
	}
	return &Calculator{cfg: cfg, policy: policy}
}

// TaskCosts is the supplies/labor split of windowed task spend.
type TaskCosts struct {
	Supplies  float64
	Labor     float64
	Total     float64
	Estimated bool // true when no task carried cost data
}

// EquipmentCosts is the monthly approximation of machine spend.
type EquipmentCosts struct {
	Monthly      float64
	Maintenance  float64
	Depreciation float64
	Fuel         float64
	Estimated    bool // true when category totals came from fixed shares
}

// EstimateYield produces a plausible total yield (bushels) for a field
// with no recorded yield data: base table bushels/acre times acreage,
// scaled by the policy's variation multiplier.
func (c *Calculator) EstimateYield(f domain.Field) float64 {
	return c.cfg.BaseYield(f.CropType) * f.Size * c.policy.Variation(f.ID)
}

// EstimateRevenue prices the estimated yield at the configured market
// rate for the field's crop.
func (c *Calculator) EstimateRevenue(f domain.Field) float64 {
	return c.EstimateYield(f) * c.cfg.CropPrice(f.CropType)
}

// YieldTrend classifies the direction of a field's yield-bearing
// activity history: the two most recent observations summed against
// the remainder. Fewer than two observations is always stable.
func (c *Calculator) YieldTrend(activities []domain.Activity) domain.Trend {
	bearing := make([]domain.Activity, 0, len(activities))
	for _, a := range activities {
		if a.YieldBearing() {
			bearing = append(bearing, a)
		}
	}
	if len(bearing) < 2 {
		return domain.TrendStable
	}

	sort.SliceStable(bearing, func(i, j int) bool {
		return bearing[i].Timestamp.After(bearing[j].Timestamp)
	})

	recent := bearing[0].YieldAmount + bearing[1].YieldAmount
	var earlier float64
	for _, a := range bearing[2:] {
		earlier += a.YieldAmount
	}

	ratio := recent / math.Max(earlier, 1)
	switch {
	case ratio > 1.1:
		return domain.TrendUp
	case ratio < 0.9:
		return domain.TrendDown
	default:
		return domain.TrendStable
	}
}

// CalculateTaskCosts sums supply and labor spend across tasks. A farm
// with no cost bookkeeping gets the configured fallback split instead
// of a misleading zero.
func (c *Calculator) CalculateTaskCosts(tasks []domain.Task) TaskCosts {
	var supplies, labor float64
	for _, t := range tasks {
		supplies += t.SupplyCost
		labor += t.LaborCost
	}
	if supplies+labor == 0 {
		return TaskCosts{
			Supplies:  c.cfg.DefaultSupplyCost,
			Labor:     c.cfg.DefaultLaborCost,
			Total:     c.cfg.DefaultSupplyCost + c.cfg.DefaultLaborCost,
			Estimated: true,
		}
	}
	return TaskCosts{Supplies: supplies, Labor: labor, Total: supplies + labor}
}

// CalculateEquipmentCosts approximates monthly machine spend as each
// unit's total cost of ownership over twelve months. When per-category
// totals are not recorded the monthly figure is split into the
// configured maintenance/depreciation/fuel shares.
func (c *Calculator) CalculateEquipmentCosts(equipment []domain.Equipment, tco map[string]float64) EquipmentCosts {
	var monthly, maintenance, fuel float64
	for _, eq := range equipment {
		monthly += tco[eq.ID] / 12
		maintenance += eq.MaintenanceCost / 12
		fuel += eq.FuelCost / 12
	}

	if maintenance+fuel == 0 {
		return EquipmentCosts{
			Monthly:      monthly,
			Maintenance:  monthly * c.cfg.MaintenanceShare,
			Depreciation: monthly * c.cfg.DepreciationShare,
			Fuel:         monthly * c.cfg.FuelShare,
			Estimated:    true,
		}
	}

	return EquipmentCosts{
		Monthly:      monthly,
		Maintenance:  maintenance,
		Depreciation: math.Max(monthly-maintenance-fuel, 0),
		Fuel:         fuel,
	}
}

// CalculateResourceUsage derives the fixed consumable catalog (seeds,
// fertilizer, fuel, water, labor) from task counts, acreage and
// equipment hours at the configured per-unit rates. Rows that cost
// nothing are dropped.
func (c *Calculator) CalculateResourceUsage(
	tasks []domain.Task,
	equipment []domain.Equipment,
	fields []domain.Field,
) []domain.ResourceRow {
	acres := TotalAcres(fields)

	var hours float64
	for _, eq := range equipment {
		hours += eq.TotalHours
	}
	taskCount := float64(len(tasks))

	rows := []domain.ResourceRow{
		{
			Name:     "Seeds",
			Quantity: acres * c.cfg.SeedRatePerAcre,
			Unit:     "lbs",
			Cost:     acres * c.cfg.SeedCostPerAcre,
		},
		{
			Name:     "Fertilizer",
			Quantity: acres * c.cfg.FertilizerRatePerAcre,
			Unit:     "lbs",
			Cost:     acres * c.cfg.FertilizerCostPerAcre,
		},
		{
			Name:     "Fuel",
			Quantity: hours * c.cfg.FuelPerHour,
			Unit:     "gallons",
			Cost:     hours * c.cfg.FuelPerHour * c.cfg.FuelPricePerGallon,
		},
		{
			Name:     "Water",
			Quantity: acres * c.cfg.WaterPerAcre,
			Unit:     "acre-inches",
			Cost:     acres * c.cfg.WaterCostPerAcre,
		},
		{
			Name:     "Labor",
			Quantity: taskCount * c.cfg.LaborHoursPerTask,
			Unit:     "hours",
			Cost:     taskCount * c.cfg.LaborHoursPerTask * c.cfg.LaborHourlyWage,
		},
	}

	kept := rows[:0]
	for _, r := range rows {
		if r.Cost > 0 {
			kept = append(kept, r)
		}
	}
	return kept
}

// FieldSupplyCosts attributes per-acre supply spend to the whole farm.
func (c *Calculator) FieldSupplyCosts(fields []domain.Field) float64 {
	return TotalAcres(fields) * c.cfg.FieldSupplyCostPerAcre
}

// AverageUtilization is the mean equipment utilization rate, zero for
// an empty fleet.
func (c *Calculator) AverageUtilization(equipment []domain.Equipment) float64 {
	if len(equipment) == 0 {
		return 0
	}
	rates := make(stats.Float64Data, 0, len(equipment))
	for _, eq := range equipment {
		rates = append(rates, eq.UtilizationRate)
	}
	mean, err := stats.Mean(rates)
	if err != nil {
		return 0
	}
	return mean
}

// TotalAcres sums field acreage.
func TotalAcres(fields []domain.Field) float64 {
	if len(fields) == 0 {
		return 0
	}
	sizes := make(stats.Float64Data, 0, len(fields))
	for _, f := range fields {
		sizes = append(sizes, f.Size)
	}
	sum, err := stats.Sum(sizes)
	if err != nil {
		return 0
	}
	return sum
}

// Config exposes the coefficient set the calculator was built with.
func (c *Calculator) Config() Config { return c.cfg }
