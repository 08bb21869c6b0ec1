package models

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	Region     string `mapstructure:"region"`
	BucketName string `mapstructure:"bucket_name"`
}

type Config struct {
	ListenAddr      string  `mapstructure:"listen_addr"`
	RestaurantName  string  `mapstructure:"restaurant_name"`
	RestaurantID    string  `mapstructure:"restaurant_id"`
	BaseURL         string  `mapstructure:"base_url"`
	TableCount      int     `mapstructure:"table_count"`
	DefaultLanguage string  `mapstructure:"default_language"`
	DefaultCurrency string  `mapstructure:"default_currency"`
	MaxMenuPrice    float64 `mapstructure:"max_menu_price"`

	KafkaEnabled    bool   `mapstructure:"kafka_enabled"`
	KafkaBrokerList string `mapstructure:"kafka_broker_list"`
	EventFilePath   string `mapstructure:"event_file_path"`

	RedisEnabled bool   `mapstructure:"redis_enabled"`
	RedisAddr    string `mapstructure:"redis_addr"`

	PostgresEnabled bool   `mapstructure:"postgres_enabled"`
	DatabaseURL     string `mapstructure:"database_url"`

	ExportPath        string             `mapstructure:"export_path"`
	ExportDestination string             `mapstructure:"export_destination"`
	CloudStorage      CloudStorageConfig `mapstructure:"cloud_storage"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	viper.AutomaticEnv() // Read in environment variables that match

	viper.SetDefault("listen_addr", ":8080")
	viper.SetDefault("table_count", 20)
	viper.SetDefault("default_language", "en")
	viper.SetDefault("default_currency", "ZMW")
	viper.SetDefault("max_menu_price", 200)
	viper.SetDefault("export_destination", "local")

	if cfgFile != "" {
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	if config.MaxMenuPrice <= 0 {
		config.MaxMenuPrice = 200
	}

	return &config, nil
}
