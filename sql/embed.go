// Package sql provides the embedded catalog schema the compiled predicates
// reference.
package sql

import (
	"context"
	"database/sql"
	_ "embed"
	"strings"
)

// CatalogSQL contains the catalog table and index definitions: dashboard,
// folder, permission, the role assignment tables, and the legacy ACL table.
// Applied via CREATE ... IF NOT EXISTS for idempotence.
//
// The SQL is embedded at compile time, so the binary carries its own schema
// and migration never depends on external files.
//
//go:embed catalog.sql
var CatalogSQL string

// Statements splits CatalogSQL into individual statements for drivers that
// reject multi-statement Exec calls. The DDL contains no literal semicolons,
// so a plain split is exact.
func Statements() []string {
	var stmts []string
	for _, s := range strings.Split(CatalogSQL, ";") {
		if strings.TrimSpace(s) == "" {
			continue
		}
		stmts = append(stmts, strings.TrimSpace(s))
	}
	return stmts
}

// Execer is the subset of database handles migration needs.
// Implemented by *sql.DB, *sql.Tx, and *sql.Conn.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Migrate applies the catalog schema. Safe to run repeatedly.
func Migrate(ctx context.Context, db Execer) error {
	for _, stmt := range Statements() {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
