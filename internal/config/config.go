package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration for the e-cart service.
// Every value comes from the environment and has a working default,
// so the service starts with no configuration at all.
type Config struct {
	AppPort string

	DBHost     string
	DBPort     int
	DBName     string
	DBUser     string
	DBPassword string

	// Startup connection acquisition: total attempts and the fixed
	// delay between them. The readiness probe never uses these.
	ConnectRetries int
	ConnectDelay   time.Duration

	// RabbitMQURL enables order event publishing when non-empty.
	RabbitMQURL string

	// StrictInput rejects a malformed cart quantity instead of falling
	// back to 1. Product price and stock are always validated.
	StrictInput bool

	// Deployment identity, echoed by the UI and /arch.
	NodeName string
	PodName  string
}

// Load reads configuration from environment variables via Viper.
func Load() *Config {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 5432)
	viper.SetDefault("DB_NAME", "shopdb")
	viper.SetDefault("DB_USER", "shop")
	viper.SetDefault("DB_PASSWORD", "shop")
	viper.SetDefault("DB_CONNECT_RETRIES", 5)
	viper.SetDefault("DB_CONNECT_DELAY", 5)
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("STRICT_INPUT", false)
	viper.SetDefault("NODE_NAME", "unknown")
	viper.SetDefault("POD_NAME", "unknown")
	viper.AutomaticEnv()

	return &Config{
		AppPort:        viper.GetString("APP_PORT"),
		DBHost:         viper.GetString("DB_HOST"),
		DBPort:         viper.GetInt("DB_PORT"),
		DBName:         viper.GetString("DB_NAME"),
		DBUser:         viper.GetString("DB_USER"),
		DBPassword:     viper.GetString("DB_PASSWORD"),
		ConnectRetries: viper.GetInt("DB_CONNECT_RETRIES"),
		ConnectDelay:   time.Duration(viper.GetInt("DB_CONNECT_DELAY")) * time.Second,
		RabbitMQURL:    viper.GetString("RABBITMQ_URL"),
		StrictInput:    viper.GetBool("STRICT_INPUT"),
		NodeName:       viper.GetString("NODE_NAME"),
		PodName:        viper.GetString("POD_NAME"),
	}
}

// DSN builds the PostgreSQL connection string from the individual parts.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}
