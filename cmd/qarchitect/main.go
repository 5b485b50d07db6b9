// Package main provides the qarchitect CLI: Grover searches over room
// layouts, with run history persisted between invocations.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/form-foundry/qarchitect/internal/sqlite"
	"github.com/form-foundry/qarchitect/pkg/types"
)

// version is the CLI version reported by the version command.
const version = "0.2.0"

var (
	// configDirFlag and dataDirFlag are set by the global flags.
	configDirFlag string
	dataDirFlag   string

	// store is the global run-history store, attached on startup.
	store types.Store

	// cfg holds the loaded configuration for all subcommands.
	cfg *viper.Viper
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "qarchitect",
	Short: "Quantum-search room layouts with Grover's algorithm",
	Long: `qarchitect simulates a small quantum circuit that searches a 4-room
layout space for configurations satisfying an adjacency rule, using Grover
amplitude amplification, and records every run for later inspection.`,
	SilenceUsage:       true,
	PersistentPreRunE:  initStore,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error { return closeStore() },
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "data directory (default: ./.qarchitect-db)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(historyCmd)
}

// initStore loads config and attaches the run-history store.
func initStore(cmd *cobra.Command, args []string) error {
	// Version needs no storage.
	if cmd.Name() == "version" {
		return nil
	}

	loaded, err := loadConfig(configDirFlag)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = loaded

	dataDir, err := resolveDataDir(cfg)
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	s := sqlite.NewStore()
	err = s.Attach(types.Config{
		Backend: cfg.GetString(cfgKeyBackend),
		DataDir: dataDir,
	})
	if err != nil {
		return fmt.Errorf("attach store: %w", err)
	}
	store = s
	return nil
}

// closeStore detaches the store and releases resources.
func closeStore() error {
	if store != nil {
		return store.Detach()
	}
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "qarchitect v%s\n", version)
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration and run-history storage",
	Long:  `Init creates the config directory with a default config.yaml and the run-history database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Config and store are already created by PersistentPreRunE.
		fmt.Fprintln(cmd.OutOrStdout(), "qarchitect initialized successfully")
		return nil
	},
}
