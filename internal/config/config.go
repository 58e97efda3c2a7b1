package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
)

type Config struct {
	AppPort  string
	LogLevel string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr string
	RedisDB   int

	IdempTTLSecs int

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	SMTPFrom string

	// Review assignments are due this many hours after the handoff.
	ReviewDeadlineHours int
	// Archived documents are retained this many years before they may be purged.
	RetentionYears int
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func Load() *Config {
	return &Config{
		AppPort:  getenv("APP_PORT", "8080"),
		LogLevel: getenv("LOG_LEVEL", "info"),

		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "docflow"),
		MySQLUser: getenv("MYSQL_USER", "docflow"),
		MySQLPass: getenv("MYSQL_PASS", "docflow"),

		RedisAddr: getenv("REDIS_ADDR", "redis:6379"),
		RedisDB:   getenvInt("REDIS_DB", 0),

		IdempTTLSecs: getenvInt("IDEMPOTENCY_TTL_SECONDS", 300),

		SMTPHost: getenv("SMTP_HOST", ""),
		SMTPPort: getenv("SMTP_PORT", "587"),
		SMTPUser: getenv("SMTP_USER", ""),
		SMTPPass: getenv("SMTP_PASSWORD", ""),
		SMTPFrom: getenv("EMAIL_FROM", "docflow@localhost"),

		ReviewDeadlineHours: getenvInt("REVIEW_DEADLINE_HOURS", 72),
		RetentionYears:      getenvInt("RETENTION_YEARS", 7),
	}
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.ReviewDeadlineHours <= 0 {
		return errors.New("REVIEW_DEADLINE_HOURS must be positive")
	}
	if c.RetentionYears <= 0 {
		return errors.New("RETENTION_YEARS must be positive")
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
