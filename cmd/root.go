package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"table-order/config"
)

var rootCmd = &cobra.Command{
	Use:   "tableorder",
	Short: "Table Order API - QR table ordering backend",
	Long: `Table Order serves the REST API used by restaurant customers, kitchen staff and admins.

Commands:
  serve   - Start the HTTP server (default)
  migrate - Apply or roll back database migrations
  seed    - Insert demo users, categories, menus and tables`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.LoadConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
