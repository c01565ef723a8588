package terminal

import (
	"context"
	"io"
	"os"

	"github.com/farm-tools/agro-atlas/pkg/runtime/terminal/commands"
	"github.com/farm-tools/agro-atlas/pkg/services/metrics"
	"github.com/farm-tools/agro-atlas/pkg/services/registry"
	"github.com/farm-tools/agro-atlas/pkg/services/report"
	"github.com/farm-tools/agro-atlas/pkg/store"
	"github.com/spf13/cobra"
)

// estimationSeed keeps CLI runs reproducible: the same profile and
// window always yield the same fallback estimates.
const estimationSeed = 1

// CLI represents the command-line interface.
type CLI struct {
	reporter *Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI.
type Options struct {
	Factory commands.GeneratorFactory
	Output  io.Writer
}

// NewCLI creates a new CLI instance.
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Factory == nil {
		opts.Factory = DefaultGeneratorFactory
	}

	cli := &CLI{
		reporter: NewReporter(opts.Output),
	}
	cli.rootCmd = cli.newRootCmd(opts.Factory)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd(factory commands.GeneratorFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agro",
		Short: "Farm reporting and analytics tool",
	}

	cmd.AddCommand(commands.NewReportCmd(factory, cli.reporter))
	cmd.AddCommand(commands.NewExportCmd(factory))
	cmd.AddCommand(commands.NewKindsCmd())

	return cmd
}

// DefaultGeneratorFactory wires a generator from the on-disk profile
// registry and optional metrics overrides.
func DefaultGeneratorFactory(ctx context.Context, profilePath, farm, metricsPath string) (*report.Generator, error) {
	reg, err := registry.NewRegistry(profilePath)
	if err != nil {
		return nil, err
	}

	profile, err := reg.GetProfile(ctx, farm)
	if err != nil {
		return nil, err
	}

	readers, err := store.OpenReaders(profile)
	if err != nil {
		return nil, err
	}

	cfg := metrics.DefaultConfig()
	if metricsPath != "" {
		cfg, err = metrics.LoadConfig(metricsPath)
		if err != nil {
			return nil, err
		}
	}

	calc := metrics.NewCalculator(cfg, metrics.NewSeededPolicy(estimationSeed))
	return report.NewGenerator(readers, calc), nil
}
