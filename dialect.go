package sift

import (
	"strconv"
	"strings"
)

// Dialect abstracts the little the compiler needs to know about the target
// engine: how to spell a boolean literal, and how to rewrite the generic '?'
// placeholders the compiler emits into the engine's native marker.
type Dialect interface {
	// Name identifies the dialect ("sqlite", "postgres", "mysql").
	Name() string
	// BooleanStr renders a boolean literal for the engine.
	BooleanStr(b bool) string
	// Rebind rewrites '?' placeholders into the engine's native form.
	// Dialects whose native form is '?' return the query unchanged.
	Rebind(query string) string
}

// Built-in dialects.
var (
	SQLite   Dialect = sqliteDialect{}
	Postgres Dialect = postgresDialect{}
	MySQL    Dialect = mysqlDialect{}
)

// DialectByName returns the built-in dialect with the given name,
// or nil if there is none.
func DialectByName(name string) Dialect {
	switch name {
	case "sqlite", "sqlite3":
		return SQLite
	case "postgres", "postgresql":
		return Postgres
	case "mysql":
		return MySQL
	}
	return nil
}

type sqliteDialect struct{}

func (sqliteDialect) Name() string { return "sqlite" }

func (sqliteDialect) BooleanStr(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func (sqliteDialect) Rebind(query string) string { return query }

type postgresDialect struct{}

func (postgresDialect) Name() string { return "postgres" }

func (postgresDialect) BooleanStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// Rebind rewrites '?' markers into '$1', '$2', ... in textual order.
// The compiler never emits '?' inside string literals, so a plain scan with
// a quote guard is sufficient.
func (postgresDialect) Rebind(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	inLiteral := false
	for _, r := range query {
		switch {
		case r == '\'':
			inLiteral = !inLiteral
			b.WriteRune(r)
		case r == '?' && !inLiteral:
			n++
			b.WriteRune('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

type mysqlDialect struct{}

func (mysqlDialect) Name() string { return "mysql" }

func (mysqlDialect) BooleanStr(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func (mysqlDialect) Rebind(query string) string { return query }
