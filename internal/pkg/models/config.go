package models

// Config represents application configuration
type Config struct {
	App         AppConfig
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	NATS        NATSConfig
	JWT         JWTConfig
	Logger      LoggerConfig
	Pooling     PoolingConfig
	Pricing     PricingConfig
	Dispatch    DispatchConfig
	Concurrency ConcurrencyConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Console  bool
}

// PoolingConfig contains pool formation parameters
type PoolingConfig struct {
	SearchRadiusKm    float64 // radius for candidate pool lookup around a pickup
	MaxPoolSize       int     // maximum active bookings per pool
	PoolWindowSeconds int     // formation window for a new pool
	DefaultSeats      int     // effective seat capacity before a cab is assigned
	DefaultLuggage    int     // effective luggage capacity before a cab is assigned
}

// PricingConfig contains all dynamic pricing constants
type PricingConfig struct {
	BaseFarePerKm        float64
	DiscountPerCoRider   float64
	MinSharingDiscount   float64
	DemandThreshold      float64
	DemandSensitivity    float64
	PeakSurgeFactor      float64
	OffPeakSurgeFactor   float64
	PeakHoursStart       int
	PeakHoursEnd         int
	EveningPeakStart     int
	EveningPeakEnd       int
	ActiveWindowMinutes  int // lookback window for the active-request count
}

// DispatchConfig contains dispatch scheduler parameters
type DispatchConfig struct {
	IntervalMs        int     // scheduler tick interval
	SearchRadiusKm    float64 // cab search radius around the pool anchor
	RetryDelaySeconds int     // window push-forward when no cab was found
}

// ConcurrencyConfig contains lock and retry parameters
type ConcurrencyConfig struct {
	LockTimeoutSeconds int // bounded wait for the pool/cab lock
	OptimisticRetryMax int // retries on version conflict before giving up
}
