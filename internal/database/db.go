package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Open connects to the configured backend and verifies the connection.
// The backend is selected once from databaseURL: an empty value means the
// embedded SQLite file at sqlitePath; otherwise the URL scheme picks the
// network backend (postgres:// or mysql://).
func Open(databaseURL, sqlitePath string) (*sql.DB, Dialect, error) {
	db, dialect, err := open(databaseURL, sqlitePath)
	if err != nil {
		return nil, dialect, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, dialect, err
	}
	return db, dialect, nil
}

func open(databaseURL, sqlitePath string) (*sql.DB, Dialect, error) {
	if databaseURL == "" {
		db, err := openSQLite(sqlitePath)
		return db, SQLite, err
	}

	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		db, err := sql.Open("pgx", databaseURL)
		return db, Postgres, err
	case strings.HasPrefix(databaseURL, "mysql://"):
		dsn, err := mysqlDSN(databaseURL)
		if err != nil {
			return nil, MySQL, err
		}
		db, err := sql.Open("mysql", dsn)
		return db, MySQL, err
	default:
		return nil, SQLite, fmt.Errorf("unsupported DATABASE_URL scheme in %q", databaseURL)
	}
}

// openSQLite opens the embedded database and configures pragmas.
func openSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	// foreign_keys stays off: the inquiries.car_id reference is declared
	// but advisory, and the reference policy is enforced in the
	// repository layer, not by the engine.
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("setting pragma %q: %w", p, err)
		}
	}
	return db, nil
}

// mysqlDSN converts a mysql:// URL into the DSN format the driver expects.
// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
func mysqlDSN(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parsing mysql url: %w", err)
	}
	auth := u.User.Username()
	if pass, ok := u.User.Password(); ok && pass != "" {
		auth = fmt.Sprintf("%s:%s", auth, pass)
	}
	port := u.Port()
	if port == "" {
		port = "3306"
	}
	name := strings.TrimPrefix(u.Path, "/")
	return fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, u.Hostname(), port, name), nil
}
