package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	SQLitePath  string
	Port        string
	GinMode     string

	RedisAddr          string
	RedisPassword      string
	RateLimitPerMinute int

	CORSOrigins    []string
	DebugEndpoints bool
	SeedUsers      bool

	// Cron spec for the orphan favorites audit, empty disables it
	OrphanAuditSchedule string

	LogDir   string
	LogLevel string
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return &Config{
		DatabaseURL:         NormalizeDatabaseURL(os.Getenv("DATABASE_URL")),
		SQLitePath:          getenvOrDefault("SQLITE_PATH", "/tmp/test.db"),
		Port:                getenvOrDefault("PORT", "3000"),
		GinMode:             os.Getenv("GIN_MODE"),
		RedisAddr:           os.Getenv("REDIS_ADDR"),
		RedisPassword:       os.Getenv("REDIS_PASSWORD"),
		RateLimitPerMinute:  getenvInt("RATE_LIMIT_PER_MINUTE", 120),
		CORSOrigins:         splitList(getenvOrDefault("CORS_ORIGINS", "*")),
		DebugEndpoints:      getenvBool("DEBUG_ENDPOINTS", true),
		SeedUsers:           getenvBool("SEED_USERS", true),
		OrphanAuditSchedule: lookupOrDefault("ORPHAN_AUDIT_SCHEDULE", "@every 1h"),
		LogDir:              getenvOrDefault("LOG_DIR", "logs"),
		LogLevel:            getenvOrDefault("LOG_LEVEL", "info"),
	}
}

// UsesSQLite reports whether no external database was configured.
func (c *Config) UsesSQLite() bool {
	return c.DatabaseURL == ""
}

// NormalizeDatabaseURL rewrites the legacy postgres:// scheme some hosting
// providers still hand out.
func NormalizeDatabaseURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "postgres://") {
		return "postgresql://" + strings.TrimPrefix(raw, "postgres://")
	}
	return raw
}

// getenvOrDefault returns the environment variable value if set, otherwise returns def
func getenvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// lookupOrDefault differs from getenvOrDefault in that an explicitly empty
// variable is kept as empty.
func lookupOrDefault(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(v)
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

func getenvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %t", key, v, def)
		return def
	}
	return b
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
