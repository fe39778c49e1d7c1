// pkg/db/db.go
package db

import "fmt"

// Supported driver names. They double as the sqlx bind type lookup key.
const (
	DriverPostgres = "postgres" // github.com/lib/pq
	DriverPgx      = "pgx"      // github.com/jackc/pgx/v5/stdlib
	DriverSQLite   = "sqlite"   // modernc.org/sqlite
)

// Dialect selects the DDL flavour a schema operation emits.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// Config holds database connection configuration.
type Config struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Path     string // SQLite database file, only used by the sqlite driver
}

// Dialect reports which SQL dialect the configured driver speaks.
func (c Config) Dialect() Dialect {
	if c.Driver == DriverSQLite {
		return DialectSQLite
	}
	return DialectPostgres
}

// DataSourceName builds the driver-specific connection string.
func (c Config) DataSourceName() (string, error) {
	switch c.Driver {
	case DriverPostgres, DriverPgx:
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode), nil
	case DriverSQLite:
		if c.Path == "" {
			return "", fmt.Errorf("sqlite driver requires a database path")
		}
		// Foreign keys are off by default in SQLite and must be enabled per connection.
		return "file:" + c.Path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", c.Driver)
	}
}
