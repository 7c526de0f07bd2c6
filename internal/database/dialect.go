package database

import (
	"strconv"
	"strings"
)

// Dialect captures the few places where the supported SQL engines disagree.
type Dialect int

const (
	SQLite Dialect = iota
	Postgres
)

// DialectFor maps a configured driver name to its SQL dialect.
func DialectFor(driver string) Dialect {
	if driver == DriverPostgres {
		return Postgres
	}
	return SQLite
}

func (d Dialect) String() string {
	if d == Postgres {
		return "postgres"
	}
	return "sqlite3"
}

// Rebind rewrites '?' placeholders into the dialect's native form.
// Queries are always written with '?' and never contain literal question marks.
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
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (d Dialect) migrationsDir() string {
	return "migrations/" + d.String()
}
