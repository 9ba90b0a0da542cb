package config

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

var (
	config     *Config
	configOnce sync.Once
)

// Config stores all configuration of the application
type Config struct {
	// Environment type
	EnvType     string `validate:"oneof=LOCAL SERVER"`
	ServiceName string `validate:"required"`

	// Database
	DBDriver        string `validate:"oneof=mysql postgres sqlite"`
	DBHost          string
	DBUser          string
	DBPassword      string
	DBName          string `validate:"required"`
	DBPort          string
	DBMigrationMode string `validate:"oneof=auto drop none"` // "auto"(default), "drop"(drop and recreate), "none"
	DBMaxIdleConns  int    `validate:"gte=0"`
	DBMaxOpenConns  int    `validate:"gte=0"`
	DBLogLevel      string `validate:"oneof=silent error warn info"`

	// Server
	ServerPort     string `validate:"required,numeric"`
	GinMode        string `validate:"oneof=debug release test"`
	SwaggerEnabled bool

	// Logging
	LogLevel  string
	LogFormat string `validate:"oneof=json console"`

	// Redis read cache
	RedisEnabled  bool
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration `validate:"gte=0"`

	// HTTP guards
	RateLimitRPS     float64 `validate:"gte=0"` // 0 disables the limiter
	RateLimitBurst   int     `validate:"gte=0"`
	CORSAllowOrigins []string

	// Devices
	StrictDeviceProperties bool     // surface malformed stored properties instead of returning null
	DefaultDeviceTypes     []string // seeded when the device type table is empty
}

// LoadConfig loads config from environment variables (and an optional
// CONFIG_FILE) based on ENV_TYPE
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	if file := os.Getenv("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	// Get environment type (default to LOCAL if not set)
	envType := strings.ToUpper(getString(v, "ENV_TYPE", "LOCAL"))
	prefix := ""

	// Set prefix based on environment type
	switch envType {
	case "LOCAL":
		prefix = "LOCAL_"
	case "SERVER":
		prefix = "SERVER_"
	default:
		fmt.Printf("Warning: Unknown ENV_TYPE '%s', defaulting to LOCAL environment\n", envType)
		prefix = "LOCAL_"
		envType = "LOCAL"
	}

	get := func(key, defaultValue string) string {
		return getString(v, prefix+key, getString(v, key, defaultValue))
	}

	cfg := &Config{
		EnvType:     envType,
		ServiceName: get("SERVICE_NAME", "device-inventory-service"),

		// Database config - use environment-specific variables if available
		DBDriver:        strings.ToLower(get("DB_DRIVER", "mysql")),
		DBHost:          get("DB_HOST", "localhost"),
		DBUser:          get("DB_USER", "root"),
		DBPassword:      get("DB_PASSWORD", ""),
		DBName:          get("DB_NAME", "device_inventory"),
		DBPort:          get("DB_PORT", "3306"),
		DBMigrationMode: strings.ToLower(get("DB_MIGRATION_MODE", "auto")),
		DBMaxIdleConns:  getInt(v, prefix+"DB_MAX_IDLE_CONNS", getInt(v, "DB_MAX_IDLE_CONNS", 10)),
		DBMaxOpenConns:  getInt(v, prefix+"DB_MAX_OPEN_CONNS", getInt(v, "DB_MAX_OPEN_CONNS", 100)),
		DBLogLevel:      strings.ToLower(get("DB_LOG_LEVEL", "warn")),

		// Server config
		ServerPort:     get("SERVER_PORT", "8080"),
		GinMode:        get("GIN_MODE", "release"),
		SwaggerEnabled: getBool(v, "SWAGGER_ENABLED", true),

		LogLevel:  strings.ToLower(get("LOG_LEVEL", "info")),
		LogFormat: strings.ToLower(get("LOG_FORMAT", "json")),

		// Redis config
		RedisEnabled:  getBool(v, "REDIS_ENABLED", false),
		RedisHost:     get("REDIS_HOST", "localhost"),
		RedisPort:     get("REDIS_PORT", "6379"),
		RedisPassword: get("REDIS_PASSWORD", ""),
		RedisDB:       getInt(v, "REDIS_DB", 0),
		CacheTTL:      getDuration(v, "CACHE_TTL", 30*time.Second),

		RateLimitRPS:     getFloat(v, "RATE_LIMIT_RPS", 30),
		RateLimitBurst:   getInt(v, "RATE_LIMIT_BURST", 50),
		CORSAllowOrigins: getList(v, "CORS_ALLOW_ORIGINS", []string{"*"}),

		StrictDeviceProperties: getBool(v, "STRICT_DEVICE_PROPERTIES", false),
		DefaultDeviceTypes:     getList(v, "DEFAULT_DEVICE_TYPES", []string{"PC", "Laptop", "Smartphone", "Tablet"}),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// GetConfig returns the application configuration as a singleton.
// It panics when the environment does not describe a valid configuration.
func GetConfig() *Config {
	configOnce.Do(func() {
		cfg, err := LoadConfig()
		if err != nil {
			panic(err)
		}
		config = cfg
	})
	return config
}

// GetDSN returns the database connection string for the configured driver
func (c *Config) GetDSN() string {
	switch c.DBDriver {
	case "postgres":
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
	case "sqlite":
		return c.DBName
	default:
		return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?charset=utf8mb4&parseTime=True&loc=Local"
	}
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

func getString(v *viper.Viper, key, defaultValue string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return defaultValue
}

func getInt(v *viper.Viper, key string, defaultValue int) int {
	if v.IsSet(key) {
		return v.GetInt(key)
	}
	return defaultValue
}

func getFloat(v *viper.Viper, key string, defaultValue float64) float64 {
	if v.IsSet(key) {
		return v.GetFloat64(key)
	}
	return defaultValue
}

func getBool(v *viper.Viper, key string, defaultValue bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return defaultValue
}

func getDuration(v *viper.Viper, key string, defaultValue time.Duration) time.Duration {
	if v.IsSet(key) {
		return v.GetDuration(key)
	}
	return defaultValue
}

// getList accepts a comma separated env value or a YAML sequence.
func getList(v *viper.Viper, key string, defaultValue []string) []string {
	if !v.IsSet(key) {
		return defaultValue
	}
	items := v.GetStringSlice(key)
	if raw, ok := v.Get(key).(string); ok {
		items = []string{raw}
	}

	var out []string
	for _, item := range items {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
