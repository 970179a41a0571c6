package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"table-order/config"
	"table-order/database"
	"table-order/repositories"
	"table-order/services"
)

var (
	seedTables   int
	seedRandomQR bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demo data",
	Long: `Insert the admin, kitchen and customer accounts, the default categories and menus,
and restaurant tables with QR codes. Existing rows are kept.

Examples:
  tableorder seed                        # 10 tables, QR codes TABLE_QR_001..TABLE_QR_010
  tableorder seed --tables 20 --random-qr`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg := config.AppConfig

		if err := database.MigrateUp(cfg.DSN()); err != nil {
			return err
		}

		pool, err := config.ConnectDB(ctx, cfg)
		if err != nil {
			return err
		}
		defer config.CloseDB()

		seeder := services.NewSeeder(
			repositories.NewUserRepository(pool),
			repositories.NewCategoryRepository(pool),
			repositories.NewMenuRepository(pool),
			repositories.NewTableRepository(pool),
		)

		result, err := seeder.Run(ctx, services.SeedOptions{
			Password: os.Getenv("SEED_PASSWORD"),
			Tables:   seedTables,
			RandomQR: seedRandomQR,
		})
		if err != nil {
			return err
		}

		log.Printf("Seed completed: %d users, %d categories, %d menus, %d tables created",
			result.Users, result.Categories, result.Menus, result.Tables)
		if !seedRandomQR && seedTables > 0 {
			log.Printf("QR login: use qrCode %q through %q",
				services.TableQRCode(1, false), services.TableQRCode(seedTables, false))
		}
		return nil
	},
}

func init() {
	seedCmd.Flags().IntVar(&seedTables, "tables", 10, "Number of restaurant tables to create")
	seedCmd.Flags().BoolVar(&seedRandomQR, "random-qr", false, "Generate random QR tokens instead of TABLE_QR_NNN")
	rootCmd.AddCommand(seedCmd)
}
