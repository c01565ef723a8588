package metrics

import (
	"testing"
	"time"

	"github.com/farm-tools/agro-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateYield(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("fixed policy matches base table exactly", func(t *testing.T) {
		calc := NewCalculator(cfg, FixedPolicy(1))

		tests := []struct {
			crop     string
			size     float64
			expected float64
		}{
			{"corn", 10, 1500},
			{"wheat", 20, 1200},
			{"soybeans", 100, 4500},
			{"barley", 10, 1000}, // unknown crop uses the default base
		}
		for _, tc := range tests {
			f := domain.Field{ID: "f1", CropType: tc.crop, Size: tc.size}
			assert.InDelta(t, tc.expected, calc.EstimateYield(f), 0.001, tc.crop)
		}
	})

	t.Run("seeded policy stays within twenty percent of base", func(t *testing.T) {
		calc := NewCalculator(cfg, NewSeededPolicy(7))

		for _, crop := range []string{"corn", "wheat", "soybeans", "oats"} {
			f := domain.Field{ID: "field-" + crop, CropType: crop, Size: 40}
			base := cfg.BaseYield(crop) * 40
			got := calc.EstimateYield(f)
			assert.GreaterOrEqual(t, got, base*0.8, crop)
			assert.LessOrEqual(t, got, base*1.2, crop)
		}
	})

	t.Run("seeded policy is deterministic per field", func(t *testing.T) {
		calc := NewCalculator(cfg, NewSeededPolicy(7))
		f := domain.Field{ID: "f1", CropType: "corn", Size: 10}
		assert.Equal(t, calc.EstimateYield(f), calc.EstimateYield(f))
	})
}

func TestEstimateRevenue(t *testing.T) {
	calc := NewCalculator(DefaultConfig(), FixedPolicy(1))

	f := domain.Field{ID: "f1", CropType: "corn", Size: 10}
	// 150 bu/acre * 10 acres * $4.50
	assert.InDelta(t, 6750, calc.EstimateRevenue(f), 0.001)

	unknown := domain.Field{ID: "f2", CropType: "quinoa", Size: 10}
	// 100 * 10 * $5.00 default price
	assert.InDelta(t, 5000, calc.EstimateRevenue(unknown), 0.001)
}

func harvestAt(daysAgo int, amount float64) domain.Activity {
	return domain.Activity{
		Type:        domain.ActivityHarvest,
		Timestamp:   time.Now().AddDate(0, 0, -daysAgo),
		YieldAmount: amount,
	}
}

func TestYieldTrend(t *testing.T) {
	calc := NewCalculator(DefaultConfig(), FixedPolicy(1))

	tests := []struct {
		name       string
		activities []domain.Activity
		expected   domain.Trend
	}{
		{
			name:       "no activities",
			activities: nil,
			expected:   domain.TrendStable,
		},
		{
			name:       "single data point",
			activities: []domain.Activity{harvestAt(1, 1500)},
			expected:   domain.TrendStable,
		},
		{
			name: "recent exceeds earlier by more than ten percent",
			activities: []domain.Activity{
				harvestAt(1, 600),
				harvestAt(5, 600),
				harvestAt(40, 500),
				harvestAt(80, 500),
			},
			expected: domain.TrendUp,
		},
		{
			name: "recent trails earlier by more than ten percent",
			activities: []domain.Activity{
				harvestAt(1, 400),
				harvestAt(5, 400),
				harvestAt(40, 500),
				harvestAt(80, 500),
			},
			expected: domain.TrendDown,
		},
		{
			name: "recent within the stable band",
			activities: []domain.Activity{
				harvestAt(1, 500),
				harvestAt(5, 500),
				harvestAt(40, 500),
				harvestAt(80, 500),
			},
			expected: domain.TrendStable,
		},
		{
			name: "non yield bearing activities are ignored",
			activities: []domain.Activity{
				{Type: "tillage", Timestamp: time.Now()},
				harvestAt(1, 1500),
			},
			expected: domain.TrendStable,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, calc.YieldTrend(tc.activities))
		})
	}
}

func TestCalculateTaskCosts(t *testing.T) {
	calc := NewCalculator(DefaultConfig(), FixedPolicy(1))

	t.Run("no cost data substitutes the configured defaults", func(t *testing.T) {
		costs := calc.CalculateTaskCosts(nil)
		assert.Equal(t, 15000.0, costs.Supplies)
		assert.Equal(t, 8000.0, costs.Labor)
		assert.Equal(t, 23000.0, costs.Total)
		assert.True(t, costs.Estimated)
	})

	t.Run("tasks without costs also fall back", func(t *testing.T) {
		costs := calc.CalculateTaskCosts([]domain.Task{{ID: "t1"}, {ID: "t2"}})
		assert.Equal(t, 23000.0, costs.Total)
		assert.True(t, costs.Estimated)
	})

	t.Run("real spend is summed", func(t *testing.T) {
		costs := calc.CalculateTaskCosts([]domain.Task{
			{SupplyCost: 1200, LaborCost: 300},
			{SupplyCost: 800, LaborCost: 700},
		})
		assert.Equal(t, 2000.0, costs.Supplies)
		assert.Equal(t, 1000.0, costs.Labor)
		assert.Equal(t, 3000.0, costs.Total)
		assert.False(t, costs.Estimated)
	})
}

func TestCalculateEquipmentCosts(t *testing.T) {
	calc := NewCalculator(DefaultConfig(), FixedPolicy(1))

	t.Run("fixed shares when category totals are missing", func(t *testing.T) {
		equipment := []domain.Equipment{{ID: "e1"}, {ID: "e2"}}
		tco := map[string]float64{"e1": 60000, "e2": 60000}

		costs := calc.CalculateEquipmentCosts(equipment, tco)
		require.InDelta(t, 10000, costs.Monthly, 0.001)
		assert.InDelta(t, 3000, costs.Maintenance, 0.001)
		assert.InDelta(t, 5000, costs.Depreciation, 0.001)
		assert.InDelta(t, 2000, costs.Fuel, 0.001)
		assert.True(t, costs.Estimated)
	})

	t.Run("recorded category costs are used directly", func(t *testing.T) {
		equipment := []domain.Equipment{{ID: "e1", MaintenanceCost: 12000, FuelCost: 6000}}
		tco := map[string]float64{"e1": 120000}

		costs := calc.CalculateEquipmentCosts(equipment, tco)
		assert.InDelta(t, 10000, costs.Monthly, 0.001)
		assert.InDelta(t, 1000, costs.Maintenance, 0.001)
		assert.InDelta(t, 500, costs.Fuel, 0.001)
		assert.InDelta(t, 8500, costs.Depreciation, 0.001)
		assert.False(t, costs.Estimated)
	})

	t.Run("empty fleet degrades to zero", func(t *testing.T) {
		costs := calc.CalculateEquipmentCosts(nil, nil)
		assert.Zero(t, costs.Monthly)
	})
}

func TestCalculateResourceUsage(t *testing.T) {
	calc := NewCalculator(DefaultConfig(), FixedPolicy(1))

	t.Run("nothing to report drops every row", func(t *testing.T) {
		rows := calc.CalculateResourceUsage(nil, nil, nil)
		assert.Empty(t, rows)
	})

	t.Run("acreage drives seeds fertilizer and water", func(t *testing.T) {
		fields := []domain.Field{{ID: "f1", Size: 100}}
		rows := calc.CalculateResourceUsage(nil, nil, fields)

		names := make([]string, 0, len(rows))
		for _, r := range rows {
			names = append(names, r.Name)
			assert.Greater(t, r.Cost, 0.0, r.Name)
		}
		assert.Equal(t, []string{"Seeds", "Fertilizer", "Water"}, names)
	})

	t.Run("full catalog with tasks and equipment", func(t *testing.T) {
		fields := []domain.Field{{ID: "f1", Size: 100}}
		tasks := []domain.Task{{ID: "t1"}, {ID: "t2"}}
		equipment := []domain.Equipment{{ID: "e1", TotalHours: 200}}

		rows := calc.CalculateResourceUsage(tasks, equipment, fields)
		require.Len(t, rows, 5)

		byName := map[string]domain.ResourceRow{}
		for _, r := range rows {
			byName[r.Name] = r
		}
		assert.InDelta(t, 700, byName["Fuel"].Quantity, 0.001)    // 200h * 3.5 gal
		assert.InDelta(t, 2660, byName["Fuel"].Cost, 0.001)       // 700 gal * $3.80
		assert.InDelta(t, 8, byName["Labor"].Quantity, 0.001)     // 2 tasks * 4h
		assert.InDelta(t, 144, byName["Labor"].Cost, 0.001)       // 8h * $18
		assert.InDelta(t, 8500, byName["Seeds"].Cost, 0.001)      // 100 acres * $85
		assert.InDelta(t, 12000, byName["Fertilizer"].Cost, 0.001)
	})
}

func TestAverageUtilization(t *testing.T) {
	calc := NewCalculator(DefaultConfig(), FixedPolicy(1))

	assert.Zero(t, calc.AverageUtilization(nil))

	equipment := []domain.Equipment{
		{UtilizationRate: 40},
		{UtilizationRate: 60},
	}
	assert.InDelta(t, 50, calc.AverageUtilization(equipment), 0.001)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig("does-not-exist.yaml")
	assert.Error(t, err)
}
