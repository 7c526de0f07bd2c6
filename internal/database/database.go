package database

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/charmbracelet/log"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

const (
	DriverSQLite   = "sqlite3"
	DriverLibSQL   = "libsql"
	DriverPostgres = "postgres"
)

//go:embed migrations
var migrations embed.FS

// Options selects the backing store.
type Options struct {
	Driver string
	// Name is the local database file (or ":memory:") for sqlite3 and local libsql.
	Name string
	// URL is the Turso primary URL for libsql or the DSN for postgres.
	URL       string
	AuthToken string
}

// InitDB opens the database and ensures the schema is up to date. The returned
// teardown closes the connection pool.
func InitDB(opts Options) (*sql.DB, func(), error) {
	driver, dsn, err := opts.dataSource()
	if err != nil {
		return nil, nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}
	if DialectFor(opts.Driver) == SQLite {
		// One user, one connection: keeps :memory: databases and per-connection pragmas coherent.
		db.SetMaxOpenConns(1)
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to connect to %s database: %w", driver, err)
	}

	if err = createTables(db, DialectFor(opts.Driver)); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to create tables: %w", err)
	}

	teardown := func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", "error", err)
		}
	}
	return db, teardown, nil
}

func (o Options) dataSource() (string, string, error) {
	switch o.Driver {
	case "", DriverSQLite:
		log.Debug("Initializing local SQLite database", "path", o.Name)
		return DriverSQLite, o.Name, nil
	case DriverLibSQL:
		// For local-only databases the name is the filename, otherwise the remote primary is used.
		if o.URL == "" {
			log.Debug("Initializing local libsql database", "path", o.Name)
			return DriverLibSQL, "file:" + o.Name, nil
		}
		log.Debug("Initializing Turso database", "url", o.URL)
		return DriverLibSQL, o.URL + "?authToken=" + o.AuthToken, nil
	case DriverPostgres:
		if o.URL == "" {
			return "", "", fmt.Errorf("postgres driver requires a connection URL")
		}
		log.Debug("Initializing PostgreSQL database")
		return DriverPostgres, o.URL, nil
	default:
		return "", "", fmt.Errorf("unsupported database driver %q", o.Driver)
	}
}

func createTables(db *sql.DB, dialect Dialect) error {
	if dialect == SQLite {
		// Foreign key support is not enabled by default in SQLite
		if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
			log.Error("Error enabling foreign keys", "error", err)
			return err
		}
	}

	goose.SetBaseFS(migrations)
	goose.SetLogger(gooseLogger{})
	if err := goose.SetDialect(dialect.String()); err != nil {
		return err
	}
	if err := goose.Up(db, dialect.migrationsDir()); err != nil {
		return err
	}
	log.Debug("Database initialized successfully", "dialect", dialect)
	return nil
}

// gooseLogger keeps schema chatter at debug level.
type gooseLogger struct{}

func (gooseLogger) Fatalf(format string, v ...any) { log.Fatalf(format, v...) }
func (gooseLogger) Printf(format string, v ...any) { log.Debugf(format, v...) }
