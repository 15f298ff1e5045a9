package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faxm0dem/sift"
	"github.com/faxm0dem/sift/internal/cli"
)

var (
	compileSnapshotPath string
	compileDialect      string
	compileNested       bool
	compileLegacy       bool
	compileLevel        string
	compileType         string
)

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Compile a grants snapshot into predicate SQL",
	Long: `Compile a snapshot of a user's grants into the predicate and preamble SQL
that a catalog listing would embed, and print them with their bound values.

The snapshot is a YAML or JSON file:

    identity:
      orgId: 1
      userId: 7
      orgRole: Editor
      permissions:
        "1":
          dashboards:read: ["folders:uid:general"]
    level: view
    type: mixed`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		snap, err := loadSnapshot(snapshotPath())
		if err != nil {
			return err
		}
		if compileLevel != "" {
			snap.Level = compileLevel
		}
		if compileType != "" {
			snap.Type = compileType
		}

		dialect := sift.DialectByName(dialectName())
		if dialect == nil {
			return cli.ConfigError("unknown dialect", fmt.Errorf("%q", dialectName()))
		}

		if compileLegacy {
			level, err := sift.ParseLevel(snap.Level)
			if err != nil {
				return cli.SnapshotError("parsing snapshot", err)
			}
			f := sift.LegacyFilter{
				OrgRole: snap.Identity.OrgRole,
				Dialect: dialect,
				UserID:  snap.Identity.UserID,
				OrgID:   snap.Identity.OrgID,
				Level:   level,
			}
			where, args := f.Predicate()
			printClause("predicate", dialect.Rebind(where), args)
			return nil
		}

		f, err := compileSnapshot(snap, nestedFolders())
		if err != nil {
			return err
		}

		pre, preArgs := f.Preamble()
		where, args := f.Predicate()
		if pre != "" {
			// Placeholder numbering spans the preamble and the predicate, so
			// rebind them as one text.
			combined := dialect.Rebind(pre + "\n" + where)
			printClause("preamble and predicate", combined, append(preArgs, args...))
			return nil
		}
		printClause("predicate", dialect.Rebind(where), args)
		return nil
	},
}

func printClause(label, sql string, args []any) {
	fmt.Printf("-- %s\n%s\n", label, sql)
	for i, a := range args {
		fmt.Printf("-- arg %d: %v\n", i+1, a)
	}
}

// snapshotPath resolves the snapshot file from flag or config.
func snapshotPath() string {
	if compileSnapshotPath != "" {
		return compileSnapshotPath
	}
	return cfg.Snapshot
}

// dialectName resolves the dialect from flag or config.
func dialectName() string {
	if compileDialect != "" {
		return compileDialect
	}
	return cfg.Dialect
}

// nestedFolders resolves the nested-folders toggle from flag or config.
func nestedFolders() bool {
	return compileNested || cfg.NestedFolders
}

func init() {
	compileCmd.Flags().StringVar(&compileSnapshotPath, "snapshot", "", "snapshot file (YAML or JSON)")
	compileCmd.Flags().StringVar(&compileDialect, "dialect", "", "target dialect: sqlite, postgres, mysql")
	compileCmd.Flags().BoolVar(&compileNested, "nested-folders", false, "enable recursive folder inheritance")
	compileCmd.Flags().BoolVar(&compileLegacy, "legacy", false, "use the legacy role/ACL filter")
	compileCmd.Flags().StringVar(&compileLevel, "level", "", "override snapshot level: view, edit, admin")
	compileCmd.Flags().StringVar(&compileType, "type", "", "override snapshot type: mixed, dashboard, folder, alert-folder")

	rootCmd.AddCommand(compileCmd)
}
