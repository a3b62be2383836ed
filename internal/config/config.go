package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Store drivers.
const (
	DriverRedis  = "redis"
	DriverSQLite = "sqlite"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s
	RequestTimeout  time.Duration // per-request timeout

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	PublicURL    string        // origin used to build share URLs (ex: https://links.domain.ext)
	SeedFile     string        // optional homepage bookmarks.yaml/services.yaml imported when the profile has no links
	SeedInterval time.Duration // re-import the seed file this often, 0 disables
	QRSize       int           // QR code edge in pixels

	SessionIdleTTL    time.Duration // editor sessions idle longer than this are evicted
	SessionGCInterval time.Duration // how often idle sessions are collected

	StoreDriver string // "redis" | "sqlite"
	SQLitePath  string // database file when StoreDriver is sqlite

	// Redis
	RedisAddr             string        // ex: "localhost:6379"
	RedisUser             string        // optional
	RedisPassword         string        // optional
	RedisPasswordRequired bool          // true => require password
	RedisDB               int           // Redis DB number
	RedisDT               time.Duration // dial timeout
	RedisRT               time.Duration // read timeout
	RedisWT               time.Duration // write timeout
	RedisMaxWait          time.Duration // max wait between retries
	RedisPingTimeout      time.Duration // timeout for each ping attempt
	RedisPoolSize         int           // connection pool size
	RedisConnectTimeout   time.Duration // total time to retry connecting
	RedisRetryInterval    time.Duration // initial wait between retries, doubles each attempt
	RedisWarnThreshold    int           // warn after this many attempts

	AllowedHosts []string // optional, restrict editor API to these Host headers
	AllowedCIDRS []string // optional, restrict editor API to these IPs/CIDRs
	CORSOrigins  []string // optional, browser origins allowed to call the API ("*" for any)
	TrustProxy   bool     // true => trust X-Forwarded-For headers

	RateLimitBurst  int // editor API token bucket size per client IP
	RateLimitRefill int // tokens refilled per minute per client IP
}

func Load() *Config {
	cfg := &Config{
		ListenPort:      getenv("LINKHUB_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("LINKHUB_SHUTDOWN_TIMEOUT", 5*time.Second),
		RequestTimeout:  mustDuration("LINKHUB_REQUEST_TIMEOUT", 5*time.Second),

		LogLevel:  getenv("LINKHUB_LOG_LEVEL", "info"),
		PrettyLog: mustBool("LINKHUB_PRETTY_LOG", true),

		PublicURL:    strings.TrimRight(getenv("LINKHUB_PUBLIC_URL", "http://localhost:8080"), "/"),
		SeedFile:     getenv("LINKHUB_SEED_FILE", ""),
		SeedInterval: mustDuration("LINKHUB_SEED_INTERVAL", 0),
		QRSize:       getenvInt("LINKHUB_QR_SIZE", 250),

		SessionIdleTTL:    mustDuration("LINKHUB_SESSION_IDLE_TTL", 30*time.Minute),
		SessionGCInterval: mustDuration("LINKHUB_SESSION_GC_INTERVAL", 5*time.Minute),

		StoreDriver: strings.ToLower(getenv("LINKHUB_STORE_DRIVER", DriverRedis)),
		SQLitePath:  getenv("LINKHUB_SQLITE_PATH", "linkhub.db"),

		RedisUser:             getenv("LINKHUB_REDIS_USERNAME", "default"),
		RedisPasswordRequired: mustBool("LINKHUB_REDIS_PASSWORD_REQUIRED", false),
		RedisPassword:         getenv("LINKHUB_REDIS_PASSWORD", ""),
		RedisDB:               getenvInt("LINKHUB_REDIS_DB", 0),
		RedisDT:               mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:               mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:               mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:          mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:      mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:         getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout:   mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:    mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:    getenvInt("REDIS_WARN_THRESHOLD", 3),

		AllowedHosts: splitAndTrim(getenv("LINKHUB_ALLOWED_HOSTS", "")),
		AllowedCIDRS: splitAndTrim(getenv("LINKHUB_ALLOWED_CIDRS", "")),
		CORSOrigins:  splitAndTrim(getenv("LINKHUB_CORS_ORIGINS", "")),
		TrustProxy:   mustBool("LINKHUB_TRUST_PROXY", false),

		RateLimitBurst:  getenvInt("LINKHUB_RATE_LIMIT_BURST", 120),
		RateLimitRefill: getenvInt("LINKHUB_RATE_LIMIT_PER_MIN", 600),
	}

	switch cfg.StoreDriver {
	case DriverRedis:
		cfg.RedisAddr = requireEnv("LINKHUB_REDIS_ADDR")
	case DriverSQLite:
	default:
		panic(fmt.Sprintf("❌ FATAL: unknown LINKHUB_STORE_DRIVER %q (want redis or sqlite)", cfg.StoreDriver))
	}

	if cfg.StoreDriver == DriverRedis && cfg.RedisPasswordRequired && cfg.RedisPassword == "" {
		panic("❌ FATAL: LINKHUB_REDIS_PASSWORD is required when LINKHUB_REDIS_PASSWORD_REQUIRED=true")
	}

	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.RedisPassword = "***REDACTED***"
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

// splitAndTrim splits a comma separated list, dropping quotes and blanks.
func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.Trim(strings.TrimSpace(part), `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
