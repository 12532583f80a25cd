package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Catalog backend: "memory" serves the seeded demo catalog,
	// "mongo" reads from a seeded collection.
	CatalogBackend string `mapstructure:"CATALOG_BACKEND"`
	DatabaseURL    string `mapstructure:"DATABASE_URL"`

	// Cart backend: "file", "redis" or "memory".
	CartBackend  string `mapstructure:"CART_BACKEND"`
	CartFilePath string `mapstructure:"CART_FILE_PATH"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCartDB   int    `mapstructure:"REDIS_CART_DB"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`

	// Payment backend: "simulated" or "stripe".
	PaymentBackend string `mapstructure:"PAYMENT_BACKEND"`
	StripeKey      string `mapstructure:"STRIPE_KEY"`
	PaymentDelayMs int    `mapstructure:"PAYMENT_DELAY_MS"`

	// Debounce window for search-as-you-type, in milliseconds.
	SearchDebounceMs int `mapstructure:"SEARCH_DEBOUNCE_MS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("CATALOG_BACKEND", "memory")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("CART_BACKEND", "file")
	viper.SetDefault("CART_FILE_PATH", "./data/cart.json")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CART_DB", 0)
	viper.SetDefault("REDIS_CACHE_DB", 1)
	viper.SetDefault("PAYMENT_BACKEND", "simulated")
	viper.SetDefault("STRIPE_KEY", "")
	viper.SetDefault("PAYMENT_DELAY_MS", 2000)
	viper.SetDefault("SEARCH_DEBOUNCE_MS", 300)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
