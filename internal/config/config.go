// Package config reads the operational parameters for a run from the
// process environment. All required variables are checked before any
// network call is made so that a misconfigured job fails immediately.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"sheetload/internal/errors"
)

const (
	DefaultIfExists  = "replace"
	DefaultBatchSize = 1000
	DefaultSSLMode   = "disable"
)

// Config is the full parameter set for a run, assembled once at startup
// and never mutated.
type Config struct {
	Sheet    Sheet
	Database Database

	IfExists  string
	BatchSize int
	Interval  time.Duration
}

// Sheet identifies the source worksheet and the credentials used to read it.
type Sheet struct {
	ID          string
	Worksheet   string
	Credentials string
}

// Database holds the PostgreSQL connection parameters and the destination
// table name.
type Database struct {
	User     string
	Password string
	Host     string
	Port     string
	Name     string
	Table    string
	SSLMode  string
}

// URL returns the connection URL for the database, with user info and
// database name escaped.
func (d Database) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%s", d.Host, d.Port),
		Path:     d.Name,
		RawQuery: url.Values{"sslmode": []string{d.SSLMode}}.Encode(),
	}

	return u.String()
}

// Load reads the complete configuration from the environment.
func Load() (*Config, error) {
	sheet, err := LoadSheet()
	if err != nil {
		return nil, err
	}

	database, err := LoadDatabase()
	if err != nil {
		return nil, err
	}

	batchSize, err := LoadBatchSize()
	if err != nil {
		return nil, err
	}

	interval := time.Duration(0)
	if v, ok := os.LookupEnv("RUN_INTERVAL"); ok && strings.TrimSpace(v) != "" {
		interval, err = time.ParseDuration(strings.TrimSpace(v))
		if err != nil || interval < 0 {
			return nil, errors.InvalidConfiguration("RUN_INTERVAL", v)
		}
	}

	return &Config{
		Sheet:     *sheet,
		Database:  *database,
		IfExists:  LoadIfExists(),
		BatchSize: batchSize,
		Interval:  interval,
	}, nil
}

// LoadIfExists reads the existence policy, defaulting to 'replace'.
func LoadIfExists() string {
	return optional("PG_IF_EXISTS", DefaultIfExists)
}

// LoadBatchSize reads the insert batch size, defaulting to 1000.
func LoadBatchSize() (int, error) {
	v, ok := os.LookupEnv("PG_BATCH_SIZE")
	if !ok || strings.TrimSpace(v) == "" {
		return DefaultBatchSize, nil
	}

	batchSize, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || batchSize < 1 {
		return 0, errors.InvalidNumericConfiguration("PG_BATCH_SIZE", v)
	}

	return batchSize, nil
}

// LoadSheet reads the spreadsheet parameters from the environment.
func LoadSheet() (*Sheet, error) {
	id, err := required("SHEET_ID")
	if err != nil {
		return nil, err
	}

	worksheet, err := required("WORKSHEET")
	if err != nil {
		return nil, err
	}

	credentials, err := required("GOOGLE_SA_KEY_JSON")
	if err != nil {
		return nil, err
	}

	return &Sheet{
		ID:          id,
		Worksheet:   worksheet,
		Credentials: credentials,
	}, nil
}

// LoadDatabase reads the PostgreSQL parameters from the environment.
func LoadDatabase() (*Database, error) {
	database := Database{
		SSLMode: optional("PG_SSLMODE", DefaultSSLMode),
	}

	fields := []struct {
		key   string
		field *string
	}{
		{"PG_USER", &database.User},
		{"PG_PASSWORD", &database.Password},
		{"PG_HOST", &database.Host},
		{"PG_PORT", &database.Port},
		{"PG_DB", &database.Name},
		{"PG_TABLE", &database.Table},
	}

	for _, f := range fields {
		v, err := required(f.key)
		if err != nil {
			return nil, err
		}

		*f.field = v
	}

	return &database, nil
}

func required(key string) (string, error) {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return "", errors.MissingConfiguration(key)
	}

	return v, nil
}

func optional(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}

	return fallback
}
