// Package main implements the pymanager CLI for tracking Python versions
// and the projects worked on under each of them.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/revego/pymanager/internal/config"
	"github.com/revego/pymanager/internal/logging"
)

var (
	cfgFile string
	verbose bool
	// version information
	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pymanager",
	Short: "Manage Python environments and projects",
	Long: `pymanager discovers the Python interpreters installed on this machine
and keeps a per-version log of the projects worked on under each one.

The log lives as one JSON file per version (default /var/log/pymanager)
and can be browsed as an interactive table with 'pymanager show-table'.`,
	Version:      version,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.config/pymanager/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(listVersionsCmd)
	rootCmd.AddCommand(listProjectsCmd)
	rootCmd.AddCommand(addProjectCmd)
	rootCmd.AddCommand(showTableCmd)
}

// setup loads configuration and builds the logger shared by all commands.
// The caller owns the returned logger and should Sync it before exiting.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}

	if verbose {
		cfg.Logging.Level = "debug"
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return cfg, logger, nil
}
