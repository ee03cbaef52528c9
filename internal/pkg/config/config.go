package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/skycab/ridepool/internal/pkg/models"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "ridepool")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 9990)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "pgx")
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 0)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "")

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "logs/ridepool.log")
	configs.Logger.Console = GetEnvAsBool("LOG_CONSOLE", true)

	// Pooling config
	configs.Pooling.SearchRadiusKm = GetEnvAsFloat("POOL_SEARCH_RADIUS_KM", 5.0)
	configs.Pooling.MaxPoolSize = GetEnvAsInt("POOL_MAX_SIZE", 4)
	configs.Pooling.PoolWindowSeconds = GetEnvAsInt("POOL_WINDOW_SECONDS", 60)
	configs.Pooling.DefaultSeats = GetEnvAsInt("POOL_DEFAULT_SEATS", 4)
	configs.Pooling.DefaultLuggage = GetEnvAsInt("POOL_DEFAULT_LUGGAGE", 4)

	// Pricing config
	configs.Pricing.BaseFarePerKm = GetEnvAsFloat("PRICING_BASE_FARE_PER_KM", 15.0)
	configs.Pricing.DiscountPerCoRider = GetEnvAsFloat("PRICING_DISCOUNT_PER_CO_RIDER", 0.10)
	configs.Pricing.MinSharingDiscount = GetEnvAsFloat("PRICING_MIN_SHARING_DISCOUNT", 0.60)
	configs.Pricing.DemandThreshold = GetEnvAsFloat("PRICING_DEMAND_THRESHOLD", 0.7)
	configs.Pricing.DemandSensitivity = GetEnvAsFloat("PRICING_DEMAND_SENSITIVITY", 0.5)
	configs.Pricing.PeakSurgeFactor = GetEnvAsFloat("PRICING_PEAK_SURGE_FACTOR", 1.5)
	configs.Pricing.OffPeakSurgeFactor = GetEnvAsFloat("PRICING_OFF_PEAK_SURGE_FACTOR", 1.0)
	configs.Pricing.PeakHoursStart = GetEnvAsInt("PRICING_PEAK_HOURS_START", 7)
	configs.Pricing.PeakHoursEnd = GetEnvAsInt("PRICING_PEAK_HOURS_END", 10)
	configs.Pricing.EveningPeakStart = GetEnvAsInt("PRICING_EVENING_PEAK_START", 17)
	configs.Pricing.EveningPeakEnd = GetEnvAsInt("PRICING_EVENING_PEAK_END", 20)
	configs.Pricing.ActiveWindowMinutes = GetEnvAsInt("PRICING_ACTIVE_WINDOW_MINUTES", 15)

	// Dispatch config
	configs.Dispatch.IntervalMs = GetEnvAsInt("DISPATCH_INTERVAL_MS", 5000)
	configs.Dispatch.SearchRadiusKm = GetEnvAsFloat("DISPATCH_SEARCH_RADIUS_KM", 5.0)
	configs.Dispatch.RetryDelaySeconds = GetEnvAsInt("DISPATCH_RETRY_DELAY_SECONDS", 10)

	// Concurrency config
	configs.Concurrency.LockTimeoutSeconds = GetEnvAsInt("LOCK_TIMEOUT_SECONDS", 10)
	configs.Concurrency.OptimisticRetryMax = GetEnvAsInt("OPTIMISTIC_RETRY_MAX", 3)

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
