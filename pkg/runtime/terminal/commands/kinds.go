package commands

import (
	"fmt"

	"github.com/farm-tools/agro-atlas/pkg/models/domain"
	"github.com/spf13/cobra"
)

func NewKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List available report kinds",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, kind := range domain.Kinds() {
				fmt.Fprintln(cmd.OutOrStdout(), kind)
			}
			return nil
		},
	}
}
