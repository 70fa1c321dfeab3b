package models

// Config represents application configuration
type Config struct {
	App          AppConfig
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	NATS         NATSConfig
	JWT          JWTConfig
	Logger       LoggerConfig
	Reservation  ReservationConfig
	Cancellation CancellationConfig
	Sweeper      SweeperConfig
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
	Type     string // "console", "file" or "both"
}

// ReservationConfig contains reservation lifecycle knobs.
// Window hours gate how close to departure an action may still run.
type ReservationConfig struct {
	MinSeats           int     `json:"min_seats"`
	MaxSeats           int     `json:"max_seats"`
	CreateWindowHours  float64 `json:"create_window_hours"`  // no new reservations closer than this
	ApproveWindowHours float64 `json:"approve_window_hours"` // no approvals closer than this
	ExpiryWindowHours  float64 `json:"expiry_window_hours"`  // unpaid reservations expire inside this
}

// CancellationConfig contains the refund tier boundaries. The cutoffs and
// percentages come from the business policy document; the defaults here are
// only fallbacks for local runs.
type CancellationConfig struct {
	EarlyHours          float64 `json:"early_hours"`  // at or above: early tier
	MediumHours         float64 `json:"medium_hours"` // at or above: medium tier
	EarlyRefundPercent  float64 `json:"early_refund_percent"`
	MediumRefundPercent float64 `json:"medium_refund_percent"`
	LateRefundPercent   float64 `json:"late_refund_percent"`
}

// SweeperConfig contains expiration sweeper configuration
type SweeperConfig struct {
	IntervalSeconds int `json:"interval_seconds"`
	LockTTLSeconds  int `json:"lock_ttl_seconds"`
	BatchSize       int `json:"batch_size"`
}
