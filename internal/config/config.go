package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

// Config carries everything the server needs from the environment.
// DB* fields are optional: when DBHost is empty the process runs on
// the in-memory store instead of MySQL.
type Config struct {
	Port string

	DBHost string
	DBPort string
	DBUser string
	DBPass string
	DBName string

	JWTSecret          string
	AccessTokenTTLMin  int
	RefreshTokenTTLDay int
	BcryptCost         int

	AMQPURL string
}

// Load reads the process environment and fails fast on anything that
// makes the server unrunnable.
func Load() *Config {
	cfg := &Config{
		Port: getenv("PORT", "8080"),

		DBHost: os.Getenv("DB_HOST"),
		DBPort: getenv("DB_PORT", "3306"),
		DBUser: os.Getenv("DB_USER"),
		DBPass: os.Getenv("DB_PASS"),
		DBName: os.Getenv("DB_NAME"),

		JWTSecret:          must("JWT_SECRET"),
		AccessTokenTTLMin:  mustInt("ACCESS_TOKEN_TTL_MIN", 15),
		RefreshTokenTTLDay: mustInt("REFRESH_TOKEN_TTL_DAYS", 7),
		BcryptCost:         mustInt("BCRYPT_COST", 10),

		AMQPURL: os.Getenv("AMQP_URL"),
	}

	if cfg.UseMySQL() {
		if cfg.DBUser == "" || cfg.DBName == "" {
			log.Fatal("DB_HOST is set but DB_USER or DB_NAME is missing")
		}
	}
	return cfg
}

// UseMySQL reports whether the MySQL backend should be used.
func (c *Config) UseMySQL() bool {
	return c.DBHost != ""
}

// DSN builds the MySQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func must(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("missing required environment variable %s", key)
	}
	return v
}

func mustInt(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("environment variable %s must be an integer, got %q", key, raw)
	}
	return n
}
