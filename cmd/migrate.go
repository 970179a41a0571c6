package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"table-order/config"
	"table-order/database"
)

var migrateSteps int

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Run the embedded SQL migrations against the configured database.

Subcommands:
  up      - Apply pending migrations
  down    - Roll back migrations
  version - Show the current schema version`,
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return database.MigrateUp(config.AppConfig.DSN())
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back migrations",
	Long: `Roll back applied migrations.

Examples:
  tableorder migrate down            # Roll back the last migration
  tableorder migrate down --steps 2  # Roll back two migrations`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return database.MigrateDown(config.AppConfig.DSN(), migrateSteps)
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the current schema version",
	RunE: func(cmd *cobra.Command, args []string) error {
		v, dirty, err := database.Version(config.AppConfig.DSN())
		if err != nil {
			return err
		}
		log.Printf("Schema version: %d (dirty: %t)", v, dirty)
		return nil
	},
}

func init() {
	migrateDownCmd.Flags().IntVar(&migrateSteps, "steps", 1, "Number of migrations to roll back")

	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateVersionCmd)
	rootCmd.AddCommand(migrateCmd)
}
