package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/faxm0dem/sift/internal/cli"
	siftsql "github.com/faxm0dem/sift/sql"
)

var (
	migrateDB     string
	migrateDryRun bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the catalog schema to a database",
	Long: `Apply the embedded catalog schema (dashboard, folder, permission and the
role assignment tables). Idempotent - safe to run multiple times.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if migrateDryRun {
			fmt.Fprintln(os.Stderr, "-- Dry-run mode: SQL will be output but not applied")
			fmt.Println(siftsql.CatalogSQL)
			return nil
		}

		url := migrateDB
		if url == "" {
			url = cfg.Database.URL
		}
		db, _, err := openDB(url)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		if err := siftsql.Migrate(cmd.Context(), db); err != nil {
			return cli.DBError("applying catalog schema", err)
		}
		fmt.Println("Catalog schema applied successfully.")
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateDB, "db", "", "database URL (postgres://... or a SQLite path)")
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "output schema SQL without applying")

	rootCmd.AddCommand(migrateCmd)
}
