package database

import (
	"fmt"
	"strings"
)

// Dialect captures the differences between the supported SQL backends so
// that repositories and handlers never branch on backend type.  The value
// is chosen once at startup (see Open) and injected into every component
// that issues SQL.
type Dialect int

const (
	SQLite Dialect = iota // embedded file database, the default
	Postgres
	MySQL
)

func (d Dialect) String() string {
	switch d {
	case Postgres:
		return "postgres"
	case MySQL:
		return "mysql"
	default:
		return "sqlite"
	}
}

// Rebind rewrites a query written with `?` placeholders into the
// positional style the backend expects.  SQLite and MySQL use `?`
// natively; PostgreSQL wants `$1, $2, ...`.  Queries in this codebase
// never contain a literal `?` outside a placeholder position.
func (d Dialect) Rebind(query string) string {
	if d != Postgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// AutoIncrementPK returns the column definition for an auto-assigned
// integer primary key.
func (d Dialect) AutoIncrementPK() string {
	switch d {
	case Postgres:
		return "SERIAL PRIMARY KEY"
	case MySQL:
		return "INTEGER AUTO_INCREMENT PRIMARY KEY"
	default:
		return "INTEGER PRIMARY KEY AUTOINCREMENT"
	}
}

// ReturningID reports whether inserts must use `RETURNING id` to obtain
// the generated key.  The pgx stdlib driver does not implement
// LastInsertId.
func (d Dialect) ReturningID() bool {
	return d == Postgres
}
