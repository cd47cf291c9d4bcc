package cmd

import (
	"github.com/nfrund/dashboard/cmd/dashctl/internal/output"
	"github.com/nfrund/dashboard/internal/routes"
	"github.com/spf13/cobra"
)

func newRoutesCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Print the route table",
		Long: `Print every path the dashboard serves with its layout and page.

Examples:
  dashctl routes                 # table
  dashctl routes --output yaml   # YAML document
  dashctl routes -o json         # JSON document`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return output.WriteRoutes(cmd.OutOrStdout(), format, routes.Table())
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", output.FormatTable, "Output format (table, yaml, json)")
	return cmd
}
