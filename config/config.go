package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string
	AppEnv  string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// shared staff credential (single fixed pair, see middlewares)
	StaffUser         string
	StaffPassword     string
	StaffPasswordHash string // optional bcrypt hash; wins over StaffPassword when set
	JWTSecret         string

	// facility local time; day keys and ETA math use this zone
	Timezone      string
	EtaDefaultMin int
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func Load() *Config {
	// .env is optional; real deployments set env directly
	_ = godotenv.Load()

	return &Config{
		AppPort: get("APP_PORT", "8080"),
		AppEnv:  get("APP_ENV", "dev"),

		DBHost:     get("DB_HOST", "localhost"),
		DBPort:     get("DB_PORT", "5432"),
		DBUser:     get("DB_USER", "postgres"),
		DBPassword: get("DB_PASSWORD", "postgres"),
		DBName:     get("DB_NAME", "dogoakiheya"),
		DBSSLMode:  get("DB_SSLMODE", "disable"),

		StaffUser:         get("APP_USER", "staff"),
		StaffPassword:     get("APP_PASSWORD", "change-me"),
		StaffPasswordHash: get("APP_PASSWORD_HASH", ""),
		JWTSecret:         get("JWT_SECRET", "dev-secret"),

		Timezone:      get("APP_TZ", "Asia/Tokyo"),
		EtaDefaultMin: getInt("ETA_DEFAULT_MIN", 105),
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode,
	)
}

// Location resolves the facility timezone. Day keys and ETA times are
// staff-facing wall-clock values, so everything goes through this zone.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("[config] warn: timezone %q not found, using local: %v", c.Timezone, err)
		return time.Local
	}
	return loc
}

func (c *Config) EtaDefault() time.Duration {
	return time.Duration(c.EtaDefaultMin) * time.Minute
}
