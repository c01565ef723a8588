package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/farm-tools/agro-atlas/pkg/export"
	"github.com/farm-tools/agro-atlas/pkg/models/domain"
	"github.com/spf13/cobra"
)

type ExportCmd struct {
	profilePath string
	farm        string
	metricsPath string
	from        string
	to          string
	format      string
	out         string
	factory     GeneratorFactory
}

func NewExportCmd(factory GeneratorFactory) *cobra.Command {
	ec := &ExportCmd{factory: factory}
	cmd := &cobra.Command{
		Use:   "export <kind>",
		Short: "Export a farm report as CSV or printable text",
		Args:  cobra.ExactArgs(1),
		RunE:  ec.run,
	}

	cmd.Flags().StringVar(&ec.profilePath, "profile", "", "Path to the farm profiles file")
	cmd.Flags().StringVar(&ec.farm, "farm", "default", "Farm profile name")
	cmd.Flags().StringVar(&ec.metricsPath, "metrics", "", "Path to a metrics coefficient overrides file")
	cmd.Flags().StringVar(&ec.from, "from", "", "Window start (YYYY-MM-DD, default 30 days ago)")
	cmd.Flags().StringVar(&ec.to, "to", "", "Window end (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&ec.format, "format", "csv", "Export format: csv or pdf")
	cmd.Flags().StringVar(&ec.out, "out", "", "Output file (default stdout)")

	_ = cmd.MarkFlagRequired("profile")

	return cmd
}

func (ec *ExportCmd) run(cmd *cobra.Command, args []string) error {
	kind := domain.Kind(args[0])
	if kind != domain.KindAll {
		var err error
		kind, err = domain.ParseKind(args[0])
		if err != nil {
			return fmt.Errorf("unsupported report kind %q. Supported kinds: %v (or 'all')", args[0], domain.Kinds())
		}
	}

	format, err := export.ParseFormat(ec.format)
	if err != nil {
		return err
	}

	start, end, err := ParseWindow(ec.from, ec.to)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	gen, err := ec.factory(ctx, ec.profilePath, ec.farm, ec.metricsPath)
	if err != nil {
		return fmt.Errorf("failed to set up farm profile %q: %w", ec.farm, err)
	}

	file, err := gen.ExportReport(ctx, kind, format, start, end)
	if err != nil {
		return fmt.Errorf("failed to export report: %w", err)
	}

	if ec.out == "" {
		_, err = fmt.Fprint(cmd.OutOrStdout(), file.Content)
		return err
	}

	if err := os.WriteFile(ec.out, []byte(file.Content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", ec.out, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%s)\n", ec.out, file.MimeType)
	return nil
}
