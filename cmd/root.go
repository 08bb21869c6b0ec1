package cmd

import (
	"fmt"
	"os"

	"github.com/csakala/tableside/internal/models"
	"github.com/csakala/tableside/internal/server"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "tableside",
	Short: "Table-ordering service for restaurants",
	Long:  `tableside runs the order state service behind a QR-code table-ordering flow: customers browse the menu and place orders, staff track and advance them through the kitchen, and analytics are derived from the order history.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		app, err := server.New(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error starting service: %v\n", err)
			os.Exit(1)
		}
		if err := app.Run(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tableside.yaml)")

	rootCmd.Flags().String("listen-addr", ":8080", "HTTP listen address")
	rootCmd.Flags().String("restaurant-name", "Tuleni Restaurant", "Restaurant display name")
	rootCmd.Flags().String("base-url", "http://localhost:8080", "Public base URL encoded into table QR codes")
	rootCmd.Flags().Int("table-count", 20, "Number of tables with QR codes")
	rootCmd.Flags().String("default-language", "en", "Default UI language")
	rootCmd.Flags().String("default-currency", "ZMW", "Default display currency")
	rootCmd.Flags().Float64("max-menu-price", 200, "Upper bound of the price range filter")
	rootCmd.Flags().Bool("kafka-enabled", false, "Publish order lifecycle events to Kafka")
	rootCmd.Flags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	rootCmd.Flags().String("event-file-path", "", "Write lifecycle events to per-topic files instead of stdout")
	rootCmd.Flags().Bool("redis-enabled", false, "Persist language/currency preferences in Redis")
	rootCmd.Flags().String("redis-addr", "localhost:6379", "Redis address")
	rootCmd.Flags().Bool("postgres-enabled", false, "Archive completed orders in Postgres")
	rootCmd.Flags().String("database-url", "", "Postgres connection string")
	rootCmd.Flags().String("export-path", "exports", "Directory for parquet order exports")
	rootCmd.Flags().String("export-destination", "local", "Export destination: local or s3")

	viper.BindPFlags(rootCmd.Flags())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".tableside")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
