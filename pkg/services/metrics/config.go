package metrics

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config carries every coefficient the calculators use. Values that
// substitute for missing farm data (fallback costs, base yields) are
// deliberately configuration, not literals, so deployments and tests
// can override them without code edits.
type Config struct {
	// Bushels per acre assumed when a field has no recorded yield.
	BaseYields       map[string]float64 `mapstructure:"base_yields"`
	DefaultBaseYield float64            `mapstructure:"default_base_yield"`

	// Market price per bushel by crop type.
	CropPrices       map[string]float64 `mapstructure:"crop_prices"`
	DefaultCropPrice float64            `mapstructure:"default_crop_price"`

	// Substituted when tasks carry no cost bookkeeping at all.
	DefaultSupplyCost float64 `mapstructure:"default_supply_cost"`
	DefaultLaborCost  float64 `mapstructure:"default_labor_cost"`

	// Proportional split of monthly equipment spend when per-category
	// totals are unavailable.
	MaintenanceShare  float64 `mapstructure:"maintenance_share"`
	DepreciationShare float64 `mapstructure:"depreciation_share"`
	FuelShare         float64 `mapstructure:"fuel_share"`

	// Per-acre supply cost attributed to fields in financial reports.
	FieldSupplyCostPerAcre float64 `mapstructure:"field_supply_cost_per_acre"`

	// Fixed per-unit rates behind the resource catalog.
	SeedRatePerAcre       float64 `mapstructure:"seed_rate_per_acre"`        // lbs
	SeedCostPerAcre       float64 `mapstructure:"seed_cost_per_acre"`        // USD
	FertilizerRatePerAcre float64 `mapstructure:"fertilizer_rate_per_acre"`  // lbs
	FertilizerCostPerAcre float64 `mapstructure:"fertilizer_cost_per_acre"`  // USD
	FuelPerHour           float64 `mapstructure:"fuel_per_hour"`             // gallons
	FuelPricePerGallon    float64 `mapstructure:"fuel_price_per_gallon"`     // USD
	WaterPerAcre          float64 `mapstructure:"water_per_acre"`            // acre-inches
	WaterCostPerAcre      float64 `mapstructure:"water_cost_per_acre"`       // USD
	LaborHoursPerTask     float64 `mapstructure:"labor_hours_per_task"`      // hours
	LaborHourlyWage       float64 `mapstructure:"labor_hourly_wage"`         // USD
}

// DefaultConfig returns the stock coefficient set.
func DefaultConfig() Config {
	return Config{
		BaseYields: map[string]float64{
			"corn":     150,
			"wheat":    60,
			"soybeans": 45,
		},
		DefaultBaseYield: 100,
		CropPrices: map[string]float64{
			"corn":     4.50,
			"wheat":    6.20,
			"soybeans": 12.00,
		},
		DefaultCropPrice:  5.00,
		DefaultSupplyCost: 15000,
		DefaultLaborCost:  8000,
		MaintenanceShare:  0.30,
		DepreciationShare: 0.50,
		FuelShare:         0.20,

		FieldSupplyCostPerAcre: 25,

		SeedRatePerAcre:       30,
		SeedCostPerAcre:       85,
		FertilizerRatePerAcre: 150,
		FertilizerCostPerAcre: 120,
		FuelPerHour:           3.5,
		FuelPricePerGallon:    3.80,
		WaterPerAcre:          18,
		WaterCostPerAcre:      45,
		LaborHoursPerTask:     4,
		LaborHourlyWage:       18,
	}
}

// BaseYield resolves the assumed bushels/acre for a crop type.
func (c Config) BaseYield(cropType string) float64 {
	if y, ok := c.BaseYields[cropType]; ok {
		return y
	}
	return c.DefaultBaseYield
}

// CropPrice resolves the market price per bushel for a crop type.
func (c Config) CropPrice(cropType string) float64 {
	if p, ok := c.CropPrices[cropType]; ok {
		return p
	}
	return c.DefaultCropPrice
}

// LoadConfig reads coefficient overrides from a YAML file, layered on
// top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("failed to read metrics config: %w", err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse metrics config: %w", err)
	}
	return cfg, nil
}
