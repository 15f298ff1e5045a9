// Package sift compiles a user's access-control grants into parameterized
// SQL predicate fragments that a catalog listing query embeds directly,
// so permission filtering happens inside the storage query rather than by
// fetching every candidate row and filtering in memory.
//
// # Two Filters
//
// Sift ships two predicate builders that are never combined:
//
//   - LegacyFilter works from the built-in org role and per-item ACL entries
//     only. Absence of any ACL entry falls back to an org-wide default grant
//     (fail-open), matching the behavior of catalogs that predate
//     fine-grained permissions.
//   - Filter works from the fine-grained permission index (action -> granted
//     scopes). A missing index entry for the user's org denies everything
//     (fail-closed).
//
// A deployment picks exactly one per request depending on whether the
// fine-grained index is available.
//
// # Basic Usage
//
//	f := sift.New(ident, sift.LevelView, sift.TypeMixed, sift.StandardRoleResolver{}, flags)
//	pre, preArgs := f.Preamble()
//	where, whereArgs := f.Predicate()
//
// The predicate is a boolean fragment safe to splice into a larger WHERE
// clause; its args bind positionally to its '?' placeholders. The preamble is
// empty unless nested folders are enabled and a branch needed a recursive
// closure over the folder hierarchy, in which case it is a single
// "WITH RECURSIVE" block to prefix to the final statement, its args preceding
// the predicate's.
//
// # Executing
//
// The query executor is the caller's business. For tooling and tests, Search
// assembles the full listing statement and runs it against anything that
// satisfies Querier (*sql.DB, *sql.Tx, *sql.Conn):
//
//	uids, err := sift.Search(ctx, db, sift.SQLite, orgID, f)
package sift

import (
	"context"
	"database/sql"
)

// Built-in action names. An action is an opaque token naming a capability;
// the compiler never parses them.
const (
	ActionDashboardsRead   = "dashboards:read"
	ActionDashboardsWrite  = "dashboards:write"
	ActionDashboardsCreate = "dashboards:create"
	ActionFoldersRead      = "folders:read"
	ActionAlertRulesRead   = "alert.rules:read"
	ActionAlertRulesCreate = "alert.rules:create"
)

// Scope prefixes for the two catalog artifact kinds. A concrete scope is
// prefix + identifier; a wildcard is prefix + "*".
const (
	ScopeDashboardsPrefix = "dashboards:uid:"
	ScopeFoldersPrefix    = "folders:uid:"
)

// PermissionLevel is an ordered capability tier. Threshold checks use >=,
// so an Edit grant satisfies a View requirement.
type PermissionLevel int

// Permission levels in ascending order. The gap before LevelAdmin is
// load-bearing: ACL rows store these values and existing data uses 4.
const (
	LevelView  PermissionLevel = 1
	LevelEdit  PermissionLevel = 2
	LevelAdmin PermissionLevel = 4
)

// QueryType fixes which action sets a compilation derives. The set is closed;
// the compiler has no fallback for unknown values.
type QueryType int

const (
	// TypeMixed lists both dashboards and folders.
	TypeMixed QueryType = iota
	// TypeDashboard lists leaf items only.
	TypeDashboard
	// TypeFolder lists containers only.
	TypeFolder
	// TypeAlertFolder lists folders eligible to hold alert rules.
	TypeAlertFolder
)

// Permissions indexes granted scopes by action.
// ex: { "dashboards:read": ["dashboards:uid:xHuuebS", "folders:uid:general"] }
type Permissions map[string][]string

// Identity carries the caller's resolved authentication state for the
// duration of one compilation. The compiler never mutates it, and concurrent
// compilations must each receive their own copy.
type Identity struct {
	OrgID   int64    `json:"orgId"`
	UserID  int64    `json:"userId"`
	Teams   []int64  `json:"teams,omitempty"`
	OrgRole RoleType `json:"orgRole"`
	// IsServerAdmin grants the server-wide built-in role on top of OrgRole.
	IsServerAdmin bool `json:"isServerAdmin,omitempty"`
	// Permissions is the fine-grained permission index, keyed by org.
	// A missing entry for OrgID makes every fine-grained predicate deny-all.
	Permissions map[int64]Permissions `json:"permissions,omitempty"`
}

// Querier executes queries against the catalog database.
// Implemented by *sql.DB, *sql.Tx, and *sql.Conn, so listings can run inside
// transactions and observe uncommitted catalog changes.
type Querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Execer extends Querier with ExecContext for schema migration.
// Only the migrate tooling needs it; predicate compilation and listing do not.
type Execer interface {
	Querier
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}
