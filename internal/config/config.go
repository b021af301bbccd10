// Package config loads application configuration from environment
// variables, once at process start.  Handlers and repositories receive
// the resulting values through constructors and never read the
// environment themselves.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable.
type Config struct {
	Env  string // application environment (e.g. "dev", "prod")
	Port string // HTTP port to listen on

	DatabaseURL string // network backend URL; empty selects embedded SQLite
	SQLitePath  string // path of the embedded database file

	NotifyEnabled bool   // master switch for the email notifier
	SMTPHost      string // mail relay host
	SMTPPort      int    // mail relay port
	SMTPUser      string // authenticated sender mailbox
	SMTPPassword  string // relay credential; required, never defaulted
	NotifyTo      string // operator mailbox receiving inquiry notifications

	AllowOrphanInquiries bool   // accept inquiries whose car_id matches no catalog row
	AdminToken           string // bearer token guarding /api/seed; empty disables the route
	AMQPURL              string // optional RabbitMQ URL for inquiry events
}

// Load reads configuration from the environment (a .env file is applied
// first when present).  Missing required values cause the process to
// exit with a fatal log message: startup failures have no
// partial-degradation mode.
func Load() Config {
	_ = godotenv.Load() // absent .env is fine; real environments set vars directly

	cfg := Config{
		Env:                  envStr("APP_ENV", "dev"),
		Port:                 envStr("APP_PORT", "8080"),
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		SQLitePath:           envStr("SQLITE_PATH", "dealership.db"),
		NotifyEnabled:        envBool("NOTIFY_ENABLED", true),
		AllowOrphanInquiries: envBool("ALLOW_ORPHAN_INQUIRIES", true),
		AdminToken:           os.Getenv("ADMIN_TOKEN"),
		AMQPURL:              os.Getenv("RABBITMQ_URL"),
	}

	if cfg.NotifyEnabled {
		cfg.SMTPHost = must("SMTP_HOST")
		cfg.SMTPPort = envInt("SMTP_PORT", 587)
		cfg.SMTPUser = must("SMTP_USER")
		cfg.SMTPPassword = must("SMTP_PASSWORD")
		cfg.NotifyTo = envStr("NOTIFY_TO", cfg.SMTPUser)
	}
	return cfg
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and
// exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func envStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envBool(k string, d bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	}
	return d
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	return d
}
