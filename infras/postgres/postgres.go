package postgres

//nolint:revive
import (
	"database/sql"
	"net"
	"net/url"
	"pms/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB

	txMaxRetry  int
	txIsolation sql.IsolationLevel
}

func New(config *config.Config) *Connection {
	return &Connection{
		Read:        CreatePostgresReadConn(*config),
		Write:       CreatePostgresWriteConn(*config),
		txMaxRetry:  config.DB.Postgres.Tx.MaxRetry,
		txIsolation: ParseIsolation(config.DB.Postgres.Tx.Isolation),
	}
}

// NewFromDB wraps an existing handle for both read and write access.
func NewFromDB(db *sqlx.DB, txMaxRetry int, isolation sql.IsolationLevel) *Connection {
	return &Connection{
		Read:        db,
		Write:       db,
		txMaxRetry:  txMaxRetry,
		txIsolation: isolation,
	}
}

// DBName applies the configured prefix, letting test runs share a server.
func DBName(cfg *config.Config, baseName string) string {
	return cfg.DB.Postgres.Prefix + baseName
}

// DSN builds a postgres URL. Credentials are escaped, extra params are appended
// to sslmode.
func DSN(username, password, host, port, dbName, sslMode string, params url.Values) string {
	query := url.Values{}
	for key, values := range params {
		query[key] = values
	}

	if sslMode != "" {
		query.Set("sslmode", sslMode)
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(username, password),
		Host:     net.JoinHostPort(host, port),
		Path:     "/" + dbName,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

// CreatePostgresWriteConn creates a database connection for write access.
func CreatePostgresWriteConn(config config.Config) *sqlx.DB {
	return CreatePostgresConnection(
		"write",
		config.DB.Postgres.Write.Username,
		config.DB.Postgres.Write.Password,
		config.DB.Postgres.Write.Host,
		config.DB.Postgres.Write.Port,
		DBName(&config, config.DB.Postgres.Write.Name),
		config.DB.Postgres.Write.SSLMode,
		config.DB.Postgres.MaxRetry,
		config.DB.Postgres.RetryWaitTime,
	)
}

// CreatePostgresReadConn creates a database connection for read access.
func CreatePostgresReadConn(config config.Config) *sqlx.DB {
	return CreatePostgresConnection(
		"read",
		config.DB.Postgres.Read.Username,
		config.DB.Postgres.Read.Password,
		config.DB.Postgres.Read.Host,
		config.DB.Postgres.Read.Port,
		DBName(&config, config.DB.Postgres.Read.Name),
		config.DB.Postgres.Read.SSLMode,
		config.DB.Postgres.MaxRetry,
		config.DB.Postgres.RetryWaitTime,
	)
}

// CreatePostgresConnection creates a database connection.
func CreatePostgresConnection(name, username, password, host, port, dbName, sslMode string, maxRetry, waitTime int) *sqlx.DB {
	descriptor := DSN(username, password, host, port, dbName, sslMode, nil)

	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.
				Info().
				Str("name", name).
				Str("host", host).
				Str("port", port).
				Str("dbName", dbName).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", name).
			Str("host", host).
			Str("port", port).
			Str("dbName", dbName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil
}
