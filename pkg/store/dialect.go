//go:build !wasm

package store

import (
	"strconv"
	"strings"
)

// Dialect captures the placeholder differences between SQL backends.
type Dialect int

const (
	// DialectSQLite uses '?' placeholders.
	DialectSQLite Dialect = iota
	// DialectPostgres uses '$n' placeholders.
	DialectPostgres
)

// Rebind rewrites '?' placeholders for the dialect.
// Queries in this package never contain a literal '?'.
func (d Dialect) Rebind(query string) string {
	if d != DialectPostgres {
		return query
	}

	var b strings.Builder
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

func (d Dialect) String() string {
	if d == DialectPostgres {
		return "postgres"
	}
	return "sqlite"
}
