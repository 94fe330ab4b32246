package postgres

import (
	"net/url"
	"time"

	"bookings-backend/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

// New creates the shared connection pool from the DATABASE_URL connection
// string, retrying per the configured attempt count.
func New(cfg *config.Config) *sqlx.DB {
	descriptor := WithRequiredTLS(cfg.DatabaseURL)

	maxRetry := cfg.DB.Postgres.MaxRetry
	waitTime := cfg.DB.Postgres.RetryWaitTime

	for retry := 0; retry < maxRetry; retry++ {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			LogServerVersion(sqlDB)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	log.Fatal().Int("attempts", maxRetry).Msg("Could not connect to database")

	return nil
}

// WithRequiredTLS appends sslmode=require to a connection string that does not
// specify one. The database demands TLS but its server certificate is not
// verified, which is exactly what lib/pq's require mode does.
func WithRequiredTLS(descriptor string) string {
	parsed, err := url.Parse(descriptor)
	if err != nil {
		return descriptor
	}

	query := parsed.Query()
	if query.Get("sslmode") == "" {
		query.Set("sslmode", "require")
		parsed.RawQuery = query.Encode()
	}

	return parsed.String()
}

// LogServerVersion runs a one-off version introspection query through the pool
// and logs the result. Purely diagnostic, serving does not depend on it.
func LogServerVersion(db *sqlx.DB) {
	var version string
	if err := db.Get(&version, "SELECT version()"); err != nil {
		log.Error().Err(err).Msg("Failed to query database version")

		return
	}

	log.Info().Str("version", version).Msg("Connected to database")
}
