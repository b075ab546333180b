package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/haul/internal/app"
)

func (c *CLI) newFetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch [variants...]",
		Short: "Materialize the manifest's artifacts into the local store",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Fetch(cmd.Context(), app.FetchOptions{
				Variants:    args,
				Parallelism: c.settings.GetInt("parallelism"),
			})
		},
	}
}
