package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/revego/pymanager/internal/store"
)

var addProjectCmd = &cobra.Command{
	Use:   "add-project <version> <project>",
	Short: "Add a project to the log for a specific Python version",
	Long: `Append a project to the given version's log. Both timestamps are set
to the current time. Adding a name that already exists is a no-op: the
existing entry is left untouched, including its last-access time.

Examples:
  pymanager add-project 3.11 myapp`,
	Args: cobra.ExactArgs(2),
	RunE: runAddProject,
}

func runAddProject(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	version, project := args[0], args[1]

	added, err := store.New(cfg.Store.Dir).AddProject(version, project)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !added {
		fmt.Fprintf(out, "Project '%s' already exists for Python version %s\n", project, version)
		return nil
	}

	logger.Debug("project added",
		zap.String("version", version), zap.String("project", project))
	fmt.Fprintf(out, "Project '%s' added to Python version %s\n", project, version)
	return nil
}
