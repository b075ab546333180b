// Package commands implements the CLI commands for the haul dependency fetcher.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.trai.ch/haul/internal/app"
	"go.trai.ch/haul/internal/build"
)

// CLI represents the command line interface for haul.
type CLI struct {
	app      *app.App
	rootCmd  *cobra.Command
	settings *viper.Viper
}

// New creates a new CLI instance with the given app.
//
// Settings resolve flag first, then HAUL_* environment variable, so
// `haul fetch -j 8` and `HAUL_PARALLELISM=8 haul fetch` are equivalent.
func New(a *app.App) *CLI {
	settings := viper.New()
	settings.SetEnvPrefix("HAUL")
	settings.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:           "haul",
		Short:         "A variant-aware dependency artifact fetcher",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().IntP("parallelism", "j", 0,
		"Concurrent fetch operations (0 means one per CPU)")
	_ = settings.BindPFlag("parallelism", rootCmd.PersistentFlags().Lookup("parallelism"))

	c := &CLI{
		app:      a,
		rootCmd:  rootCmd,
		settings: settings,
	}

	rootCmd.AddCommand(c.newFetchCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newDepsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}
