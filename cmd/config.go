package cmd

import (
	"fmt"
	"time"
)

// Config carries every environment-driven setting of the service.
// Operational defaults (SLA, fallback pickup point, default fee) are
// named fields so no package ever reads the environment itself.
type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	AmqpURL string

	RestaurantServiceURL string
	UserServiceURL       string

	// DeliverySLA is the promised delivery window used to compute
	// estimated delivery times.
	DeliverySLA time.Duration

	// AgentLivenessWindow is the inactivity period after which an
	// AVAILABLE agent is swept OFFLINE.
	AgentLivenessWindow time.Duration

	// Fallback pickup point used when an order event carries no
	// restaurant coordinates.
	FallbackPickupAddress   string
	FallbackPickupLatitude  float64
	FallbackPickupLongitude float64

	DefaultDeliveryFee float64
}

// PostgresDSN renders the GORM connection string.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
