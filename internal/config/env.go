package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	AppEnv  string
	GinMode string

	DBDSN  string
	DBUser string
	DBPass string
	DBHost string
	DBName string

	JWTSecret string

	SessionBackend       string // memory | redis
	SessionTTL           time.Duration
	SessionWriteInterval time.Duration
	SessionReadInterval  time.Duration
	CookieSecure         bool

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	CORSAllowedOrigins  []string
	PaginationNeighbors int
}

// LoadEnv reads the process environment, after merging an optional .env file.
// Variables already set in the environment win over the file.
func LoadEnv() Env {
	_ = godotenv.Load()

	backend := strings.ToLower(envStr("SESSION_BACKEND", "memory"))
	if backend != "redis" {
		backend = "memory"
	}

	return Env{
		AppAddr: envStr("APP_ADDR", ":8080"),
		AppEnv:  strings.ToLower(envStr("APP_ENV", "development")),
		GinMode: envStr("GIN_MODE", ""),

		DBDSN:  envStr("DB_DSN", ""),
		DBUser: envStr("DB_USER", "root"),
		DBPass: os.Getenv("DB_PASS"),
		DBHost: envStr("DB_HOST", "127.0.0.1:3306"),
		DBName: envStr("DB_NAME", "goparts"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		SessionBackend:       backend,
		SessionTTL:           envDur("SESSION_TTL", 12*time.Hour),
		SessionWriteInterval: envDur("SESSION_WRITE_INTERVAL", 2*time.Second),
		SessionReadInterval:  envDur("SESSION_READ_INTERVAL", time.Second),
		CookieSecure:         envBool("COOKIE_SECURE", false),

		RedisAddr:     envStr("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       envInt("REDIS_DB", 0),

		CORSAllowedOrigins:  envList("CORS_ALLOWED_ORIGINS"),
		PaginationNeighbors: envInt("PAGINATION_NEIGHBORS", 2),
	}
}

func (e Env) IsProduction() bool {
	return e.AppEnv == "production" || e.AppEnv == "prod"
}

func envStr(k, d string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return d
}

func envBool(k string, d bool) bool {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return d
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	switch strings.ToLower(v) {
	case "yes", "on":
		return true
	case "no", "off":
		return false
	}
	return d
}

func envInt(k string, d int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	return d
}

// envList splits a comma separated value, dropping blanks.
func envList(k string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(k), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
