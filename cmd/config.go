package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"
	"unicode"

	"wms/internal/core/application/services"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const (
	defaultHTTPPort         = "8080"
	defaultDBSslMode        = "disable"
	defaultPruneSchedule    = "0 0 3 * * *"
	defaultPruneGracePeriod = 24 * time.Hour
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	LogLevel string

	PruneSchedule    string
	PruneGracePeriod time.Duration

	// Admins are the accounts seeded at startup, from ADMIN_ACCOUNTS.
	Admins []services.AdminAccount
}

// LoadConfig reads envFile into the process environment and builds the
// config from it. A missing file is fine; variables already set win over
// the file.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	config := Config{
		HTTPPort:      envOr("HTTP_PORT", defaultHTTPPort),
		DBHost:        os.Getenv("DB_HOST"),
		DBPort:        os.Getenv("DB_PORT"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBSslMode:     envOr("DB_SSLMODE", defaultDBSslMode),
		LogLevel:      envOr("LOG_LEVEL", "info"),
		PruneSchedule: envOr("PRUNE_SCHEDULE", defaultPruneSchedule),
	}

	config.PruneGracePeriod = defaultPruneGracePeriod
	if raw := os.Getenv("PRUNE_GRACE_PERIOD"); raw != "" {
		grace, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("PRUNE_GRACE_PERIOD: %w", err)
		}
		config.PruneGracePeriod = grace
	}

	admins, err := ParseAdminAccounts(os.Getenv("ADMIN_ACCOUNTS"))
	if err != nil {
		return Config{}, fmt.Errorf("ADMIN_ACCOUNTS: %w", err)
	}
	config.Admins = admins

	return config, nil
}

// DSN is the PostgreSQL connection string for gorm's postgres driver.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// EchoLogLevel maps LogLevel to the gommon level echo logs with.
func (c Config) EchoLogLevel() log.Lvl {
	switch c.SlogLevel() {
	case slog.LevelDebug:
		return log.DEBUG
	case slog.LevelWarn:
		return log.WARN
	case slog.LevelError:
		return log.ERROR
	default:
		return log.INFO
	}
}

// ParseAdminAccounts parses "email|password|first|last|phone" entries
// separated by semicolons. Names and phone may be omitted. A literal '|', ';'
// or '\' inside a value is written with a backslash in front of it ("Pa\|ss").
// Names must hold letters and spaces only, so a password that was split on an
// unescaped '|' is reported instead of leaking into the first name.
func ParseAdminAccounts(raw string) ([]services.AdminAccount, error) {
	entries, err := splitEscaped(raw, ';', false)
	if err != nil {
		return nil, err
	}

	var admins []services.AdminAccount
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts, err := splitEscaped(entry, '|', true)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", entry, err)
		}
		if len(parts) < 2 || len(parts) > 5 {
			return nil, fmt.Errorf("entry %q: want email|password[|first|last|phone]", entry)
		}
		for len(parts) < 5 {
			parts = append(parts, "")
		}

		account := services.AdminAccount{
			Email:     strings.TrimSpace(parts[0]),
			Password:  parts[1],
			FirstName: strings.TrimSpace(parts[2]),
			LastName:  strings.TrimSpace(parts[3]),
			Phone:     strings.TrimSpace(parts[4]),
		}
		if account.Email == "" || account.Password == "" {
			return nil, fmt.Errorf("entry %q: email and password are required", entry)
		}
		if !isPersonName(account.FirstName) || !isPersonName(account.LastName) {
			return nil, fmt.Errorf("entry %q: names may contain only letters and spaces, escape '|' in the password as '\\|'", entry)
		}
		admins = append(admins, account)
	}
	return admins, nil
}

// splitEscaped splits s on unescaped sep. With unescape set the backslash
// escapes are resolved, otherwise they are kept for the next split level.
func splitEscaped(s string, sep rune, unescape bool) ([]string, error) {
	var (
		parts   []string
		current strings.Builder
		escaped bool
	)
	for _, r := range s {
		switch {
		case escaped:
			if !unescape {
				current.WriteRune('\\')
			}
			current.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == sep:
			parts = append(parts, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	if escaped {
		return nil, errors.New("dangling escape at end of value")
	}
	return append(parts, current.String()), nil
}

func isPersonName(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
