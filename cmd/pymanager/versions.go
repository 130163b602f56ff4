package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/revego/pymanager/internal/scanner"
)

var listVersionsCmd = &cobra.Command{
	Use:   "list-python-versions",
	Short: "List all Python versions available on the system",
	Long: `Scan the configured binary directories for python executables and
print every version found, in scan order.

Examples:
  pymanager list-python-versions`,
	Args: cobra.NoArgs,
	RunE: runListVersions,
}

func runListVersions(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	versions := scanner.New(logger, cfg.Scan.Dirs...).Discover()

	out := cmd.OutOrStdout()
	if len(versions) == 0 {
		fmt.Fprintln(out, "No Python versions found.")
		return nil
	}

	fmt.Fprintln(out, "Python versions found:")
	for _, v := range versions {
		fmt.Fprintln(out, v)
	}
	return nil
}
