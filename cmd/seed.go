package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/csakala/tableside/internal/factories"
	"github.com/csakala/tableside/internal/models"
	"github.com/csakala/tableside/internal/repositories/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the menu catalog into Postgres",
	Long:  `seed writes the default catalog plus a number of generated menu items into the Postgres catalog table, so a fresh deployment starts with a browsable menu.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		if cfg.DatabaseURL == "" {
			fmt.Fprintln(os.Stderr, "seed requires --database-url")
			os.Exit(1)
		}

		ctx := context.Background()
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error connecting to database: %v\n", err)
			os.Exit(1)
		}
		defer pool.Close()

		generated := viper.GetInt("generated_items")
		factory := &factories.MenuItemFactory{}

		items := factories.DefaultCatalog()
		bar := progressbar.Default(int64(len(items)+generated), "seeding menu")
		for i := 0; i < generated; i++ {
			item := factory.CreateMenuItem(cfg)
			items = append(items, &item)
		}

		repo := postgres.NewMenuItemRepository(pool)
		if err := repo.DeleteAll(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing catalog: %v\n", err)
			os.Exit(1)
		}
		for _, item := range items {
			if err := repo.Create(ctx, item); err != nil {
				fmt.Fprintf(os.Stderr, "Error inserting %q: %v\n", item.Name, err)
				os.Exit(1)
			}
			bar.Add(1)
		}

		count, err := repo.Count(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error counting catalog: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Catalog seeded: %d items\n", count)
	},
}

func init() {
	seedCmd.Flags().Int("generated-items", 0, "Number of additional faker-generated menu items")
	viper.BindPFlag("generated_items", seedCmd.Flags().Lookup("generated-items"))
	rootCmd.AddCommand(seedCmd)
}
