package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage providers accepted by STORAGE_PROVIDER.
const (
	StorageProviderLocal = "local"
	StorageProviderGCS   = "gcs"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string
	JWTSecret      string

	// DBQueryTimeout bounds every repository call; exceeding it surfaces as a retryable error.
	DBQueryTimeout time.Duration
	// ReadRetryAttempts is the number of extra attempts for idempotent reads after a retryable error.
	ReadRetryAttempts int

	RateLimit          string
	CORSAllowedOrigins []string

	StorageProvider    string
	StorageLocalDir    string
	GCSBucket          string
	GCSCredentialsJSON string
	MaxUploadSizeBytes int64
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	v.SetDefault("DB_QUERY_TIMEOUT", "5s")
	v.SetDefault("READ_RETRY_ATTEMPTS", 2)
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("STORAGE_PROVIDER", StorageProviderLocal)
	v.SetDefault("STORAGE_LOCAL_DIR", "./uploads")
	v.SetDefault("GCS_BUCKET", "")
	v.SetDefault("GCS_CREDENTIALS_JSON", "")
	v.SetDefault("MAX_UPLOAD_SIZE_MB", 20)
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")

	cfg.JWTSecret = v.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	timeoutStr := v.GetString("DB_QUERY_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = 5 * time.Second
		log.Printf("Warning: Invalid value for DB_QUERY_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.DBQueryTimeout = timeout

	cfg.ReadRetryAttempts = v.GetInt("READ_RETRY_ATTEMPTS")
	if cfg.ReadRetryAttempts < 0 {
		log.Printf("Warning: READ_RETRY_ATTEMPTS must not be negative. Defaulting to 0.\n")
		cfg.ReadRetryAttempts = 0
	}

	cfg.RateLimit = v.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	cfg.StorageProvider = strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_PROVIDER")))
	if cfg.StorageProvider != StorageProviderLocal && cfg.StorageProvider != StorageProviderGCS {
		log.Printf("Warning: Unknown STORAGE_PROVIDER ('%s'). Defaulting to %s.\n", cfg.StorageProvider, StorageProviderLocal)
		cfg.StorageProvider = StorageProviderLocal
	}
	cfg.StorageLocalDir = v.GetString("STORAGE_LOCAL_DIR")
	cfg.GCSBucket = v.GetString("GCS_BUCKET")
	cfg.GCSCredentialsJSON = v.GetString("GCS_CREDENTIALS_JSON")
	if cfg.StorageProvider == StorageProviderGCS && cfg.GCSBucket == "" {
		log.Println("Warning: STORAGE_PROVIDER is gcs but GCS_BUCKET is not set. Uploads will fail.")
	}

	maxUploadMB := v.GetInt64("MAX_UPLOAD_SIZE_MB")
	if maxUploadMB <= 0 {
		maxUploadMB = 20
	}
	cfg.MaxUploadSizeBytes = maxUploadMB << 20

	return cfg
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
