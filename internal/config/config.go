package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT
	JWTSecret        string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration

	// Media host (S3-compatible blob store)
	MediaEndpoint   string
	MediaRegion     string
	MediaAccessKey  string
	MediaSecretKey  string
	MediaBucket     string
	MediaPublicURL  string
	UploadProxyMax  int64
	UploadURLExpiry time.Duration

	// Server
	Port        string
	CORSOrigins string
}

func Load() *Config {
	// .env is optional; deployments set real env vars.
	_ = godotenv.Load()

	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "rankmaker"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret:        getEnv("JWT_SECRET", ""),
		JWTAccessExpiry:  parseDuration(getEnv("JWT_ACCESS_EXPIRY", "15m"), 15*time.Minute),
		JWTRefreshExpiry: parseDuration(getEnv("JWT_REFRESH_EXPIRY", "168h"), 168*time.Hour),

		MediaEndpoint:   getEnv("MEDIA_ENDPOINT", ""),
		MediaRegion:     getEnv("MEDIA_REGION", "auto"),
		MediaAccessKey:  getEnv("MEDIA_ACCESS_KEY", ""),
		MediaSecretKey:  getEnv("MEDIA_SECRET_KEY", ""),
		MediaBucket:     getEnv("MEDIA_BUCKET", "rankmaker-media"),
		MediaPublicURL:  getEnv("MEDIA_PUBLIC_URL", ""),
		UploadProxyMax:  4 * 1024 * 1024,
		UploadURLExpiry: parseDuration(getEnv("UPLOAD_URL_EXPIRY", "15m"), 15*time.Minute),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
