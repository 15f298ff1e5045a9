package main

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"

	"github.com/faxm0dem/sift"
	"github.com/faxm0dem/sift/internal/cli"
)

var queryDB string

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Run the catalog listing for a snapshot against a database",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := loadSnapshot(snapshotPath())
		if err != nil {
			return err
		}

		db, dialect, err := openDB(dbURL())
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		f, err := compileSnapshot(snap, nestedFolders())
		if err != nil {
			return err
		}

		uids, err := sift.Search(cmd.Context(), db, dialect, snap.Identity.OrgID, f)
		if err != nil {
			if sift.IsMissingCatalogErr(err) {
				return cli.DBError("catalog tables missing, run 'sift migrate' first", err)
			}
			return cli.DBError("listing catalog", err)
		}

		for _, uid := range uids {
			fmt.Println(uid)
		}
		return nil
	},
}

// openDB opens the database named by url and picks the matching dialect:
// postgres:// URLs use the pgx stdlib driver, anything else is treated as a
// SQLite path or DSN.
func openDB(url string) (*sql.DB, sift.Dialect, error) {
	if url == "" {
		return nil, nil, cli.DBError("no database", fmt.Errorf("pass --db or set database.url in sift.yaml"))
	}
	driver, dialect := "sqlite", sift.SQLite
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		driver, dialect = "pgx", sift.Postgres
	}
	db, err := sql.Open(driver, url)
	if err != nil {
		return nil, nil, cli.DBError("opening database", err)
	}
	return db, dialect, nil
}

// dbURL resolves the database URL from flag or config.
func dbURL() string {
	if queryDB != "" {
		return queryDB
	}
	return cfg.Database.URL
}

func init() {
	queryCmd.Flags().StringVar(&queryDB, "db", "", "database URL (postgres://... or a SQLite path)")
	queryCmd.Flags().StringVar(&compileSnapshotPath, "snapshot", "", "snapshot file (YAML or JSON)")
	queryCmd.Flags().BoolVar(&compileNested, "nested-folders", false, "enable recursive folder inheritance")

	rootCmd.AddCommand(queryCmd)
}
