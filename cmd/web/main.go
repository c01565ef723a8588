package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/farm-tools/agro-atlas/pkg/server"
	"github.com/farm-tools/agro-atlas/pkg/services/metrics"
	"github.com/farm-tools/agro-atlas/pkg/services/registry"
	"github.com/farm-tools/agro-atlas/pkg/services/report"
	"github.com/farm-tools/agro-atlas/pkg/store"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	profilePath string
	farm        string
	metricsPath string
	seed        int64
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the farm reporting web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&profilePath, "profiles", "p", "profiles.ini",
		"Path to the farm profiles file")
	rootCmd.Flags().StringVarP(&farm, "farm", "f", "default",
		"Farm profile to serve")
	rootCmd.Flags().StringVarP(&metricsPath, "metrics", "m", "",
		"Path to a metrics coefficient overrides file")
	rootCmd.Flags().Int64Var(&seed, "estimation-seed", 1,
		"Seed for the yield estimation fallback policy")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	reg, err := registry.NewRegistry(profilePath)
	if err != nil {
		return fmt.Errorf("failed to load farm profiles: %w", err)
	}

	profile, err := reg.GetProfile(ctx, farm)
	if err != nil {
		return fmt.Errorf("failed to resolve farm profile: %w", err)
	}
	logger.Info().Msgf("Serving farm profile `%s` (driver: %s)", profile.Name, profile.Driver)

	readers, err := store.OpenReaders(profile)
	if err != nil {
		return fmt.Errorf("failed to open farm data source: %w", err)
	}

	cfg := metrics.DefaultConfig()
	if metricsPath != "" {
		cfg, err = metrics.LoadConfig(metricsPath)
		if err != nil {
			return fmt.Errorf("failed to load metrics config: %w", err)
		}
		logger.Info().Msgf("Metrics overrides loaded from `%s`", metricsPath)
	}

	calc := metrics.NewCalculator(cfg, metrics.NewSeededPolicy(seed))
	generator := report.NewGenerator(readers, calc)

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(server.Config{
		Addr:            net.JoinHostPort(host, port),
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Reports: generator,
			Logger:  logger,
		},
	})

	return api.Start()
}
