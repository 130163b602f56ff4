package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/revego/pymanager/internal/store"
)

var listProjectsCmd = &cobra.Command{
	Use:   "list-python-projects <version>",
	Short: "List all projects worked on by a specific Python version",
	Long: `Print every project logged for the given version, in the order they
were added, with creation and last-access timestamps.

Examples:
  pymanager list-python-projects 3.11`,
	Args: cobra.ExactArgs(1),
	RunE: runListProjects,
}

func runListProjects(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	version := args[0]
	log, err := store.New(cfg.Store.Dir).Load(version)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(log.Projects) == 0 {
		fmt.Fprintf(out, "No projects found for Python version %s\n", version)
		return nil
	}

	fmt.Fprintf(out, "Projects worked on by Python version %s:\n", version)
	for _, p := range log.Projects {
		fmt.Fprintf(out, "%s (created at %d, last accessed at %d)\n",
			p.Name, p.CreatedAt, p.LastAccessed)
	}
	return nil
}
