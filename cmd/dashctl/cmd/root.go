package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the dashctl command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dashctl",
		Short: "Dashboard command-line tool",
		Long: `dashctl runs and inspects the dashboard application.

Available commands:
  serve     Run the HTTP server
  routes    Print the route table
  render    Render a page to stdout
  theme     Read or change the stored theme preference
  version   Print the version

Use "dashctl [command] --help" for more information about a specific command.`,
		SilenceUsage: true,
	}
	root.AddCommand(
		newServeCmd(),
		newRoutesCmd(),
		newRenderCmd(),
		newThemeCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute executes the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
