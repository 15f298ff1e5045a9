// Package main provides a CLI for working with sift permission predicates.
//
// The CLI supports:
//   - compile: compile a snapshot of a user's grants into predicate SQL
//   - query: run the catalog listing for a snapshot against a database
//   - migrate: apply the catalog schema to a database
//   - version: print version information
//
// compile works entirely offline; query and migrate need a database, either
// SQLite (a file path or :memory:) or PostgreSQL (a postgres:// URL).
package main

import (
	"github.com/faxm0dem/sift/internal/cli"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		cli.ExitWithError(err)
	}
}
