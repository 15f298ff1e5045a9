package sift

import (
	"errors"
	"strings"
)

// Sentinel errors for listing failures. These indicate setup issues, never
// permission denials: a denied permission simply filters rows out.
var (
	// ErrMissingCatalog is returned when the catalog tables (dashboard,
	// folder, permission, ...) don't exist. Run `sift migrate` or apply
	// sql.CatalogSQL to create them.
	ErrMissingCatalog = errors.New("sift: catalog tables not found")

	// ErrNoDialect is returned when a dialect name doesn't match any
	// built-in dialect.
	ErrNoDialect = errors.New("sift: unknown dialect")
)

// IsMissingCatalogErr returns true if err is or wraps ErrMissingCatalog.
func IsMissingCatalogErr(err error) bool {
	return errors.Is(err, ErrMissingCatalog)
}

// pgUndefinedTable is the SQLSTATE for a reference to a missing relation.
const pgUndefinedTable = "42P01"

// sqlState extracts the SQLSTATE code from a database error.
// Works with any driver exposing it via interface detection:
//   - pgx/pgconn: SQLState() string
//   - wrappers: Code() string
//
// Returns empty string if the error doesn't carry a SQLSTATE.
func sqlState(err error) string {
	type sqlStateErr interface{ SQLState() string }
	var se sqlStateErr
	if errors.As(err, &se) {
		return se.SQLState()
	}

	type codeErr interface{ Code() string }
	var ce codeErr
	if errors.As(err, &ce) {
		return ce.Code()
	}

	// Last resort: drivers that only embed the code in the message.
	// Format: "... (SQLSTATE 42P01)" or "SQLSTATE: 42P01"
	errStr := err.Error()
	for _, prefix := range []string{"SQLSTATE ", "SQLSTATE: "} {
		if idx := strings.Index(errStr, prefix); idx >= 0 {
			start := idx + len(prefix)
			if start+5 <= len(errStr) {
				return errStr[start : start+5]
			}
		}
	}

	return ""
}

// missingTableErr reports whether err means a referenced table doesn't
// exist, across the engines the built-in dialects target.
func missingTableErr(err error) bool {
	if sqlState(err) == pgUndefinedTable {
		return true
	}
	// SQLite has no SQLSTATE; both mattn and modernc spell it this way.
	return strings.Contains(err.Error(), "no such table")
}
