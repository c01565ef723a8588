package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/farm-tools/agro-atlas/pkg/models/domain"
	"github.com/farm-tools/agro-atlas/pkg/services/report"
	"github.com/spf13/cobra"
)

// GeneratorFactory builds a report generator for a named farm profile.
// The CLI injects the default wiring; tests inject fixtures.
type GeneratorFactory func(ctx context.Context, profilePath, farm, metricsPath string) (*report.Generator, error)

// DocumentHandler consumes a built report document.
type DocumentHandler interface {
	Handle(doc domain.Document) error
}

type ReportCmd struct {
	profilePath string
	farm        string
	metricsPath string
	from        string
	to          string
	factory     GeneratorFactory
	reporter    DocumentHandler
}

func NewReportCmd(factory GeneratorFactory, reporter DocumentHandler) *cobra.Command {
	rc := &ReportCmd{factory: factory, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "report <kind>",
		Short: "Generate a farm report",
		Args:  cobra.ExactArgs(1),
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.profilePath, "profile", "", "Path to the farm profiles file")
	cmd.Flags().StringVar(&rc.farm, "farm", "default", "Farm profile name")
	cmd.Flags().StringVar(&rc.metricsPath, "metrics", "", "Path to a metrics coefficient overrides file")
	cmd.Flags().StringVar(&rc.from, "from", "", "Window start (YYYY-MM-DD, default 30 days ago)")
	cmd.Flags().StringVar(&rc.to, "to", "", "Window end (YYYY-MM-DD, default today)")

	_ = cmd.MarkFlagRequired("profile")

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, args []string) error {
	kind, err := domain.ParseKind(args[0])
	if err != nil {
		return fmt.Errorf("unsupported report kind %q. Supported kinds: %v", args[0], domain.Kinds())
	}

	start, end, err := ParseWindow(rc.from, rc.to)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	gen, err := rc.factory(ctx, rc.profilePath, rc.farm, rc.metricsPath)
	if err != nil {
		return fmt.Errorf("failed to set up farm profile %q: %w", rc.farm, err)
	}

	doc, err := gen.GetReport(ctx, kind, start, end)
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	return rc.reporter.Handle(doc)
}

// ParseWindow resolves the from/to flags into an inclusive window,
// defaulting to the last thirty days.
func ParseWindow(from, to string) (time.Time, time.Time, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -30)

	if from != "" {
		parsed, err := time.Parse("2006-01-02", from)
		if err != nil {
			return start, end, fmt.Errorf("invalid 'from' date %q, expected YYYY-MM-DD", from)
		}
		start = parsed
	}
	if to != "" {
		parsed, err := time.Parse("2006-01-02", to)
		if err != nil {
			return start, end, fmt.Errorf("invalid 'to' date %q, expected YYYY-MM-DD", to)
		}
		end = parsed
	}
	return start, end, nil
}
