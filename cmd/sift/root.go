package main

import (
	"github.com/spf13/cobra"

	"github.com/faxm0dem/sift/internal/cli"
)

var (
	// Global state set during PersistentPreRunE
	cfg        *cli.Config
	configPath string

	// Persistent flags
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "sift",
	Short: "SQL permission predicates for catalog listings",
	Long: `sift - SQL permission predicates for catalog listings

Sift compiles a user's access-control grants into parameterized SQL
predicate fragments, so catalog queries filter by permission inside the
database instead of fetching everything and filtering in memory.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "version" {
			return nil
		}

		var err error
		cfg, configPath, err = cli.LoadConfig(cfgFile)
		if err != nil {
			return cli.ConfigError("loading configuration", err)
		}

		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: auto-discover sift.yaml)")
}
