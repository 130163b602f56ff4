package main

import (
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/revego/pymanager/internal/scanner"
	"github.com/revego/pymanager/internal/store"
	"github.com/revego/pymanager/internal/tui"
)

var showTableCmd = &cobra.Command{
	Use:   "show-table",
	Short: "Show projects in a table",
	Long: `Open an interactive full-screen table of every (version, project)
pair in the log. The row set is computed once at startup. Press q to quit.`,
	Args: cobra.NoArgs,
	RunE: runShowTable,
}

func runShowTable(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	rows, err := collectRows(cfg.Scan.Dirs, cfg.Store.Dir, logger)
	if err != nil {
		return err
	}

	return tui.Run(rows)
}

// collectRows flattens every discovered version's log into one row set,
// versions in scan order and projects in stored order.
func collectRows(scanDirs []string, storeDir string, logger *zap.Logger) ([]tui.Row, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	versions := scanner.New(logger, scanDirs...).Discover()
	s := store.New(storeDir)

	var rows []tui.Row
	for _, version := range versions {
		log, err := s.Load(version)
		if err != nil {
			return nil, err
		}
		for _, p := range log.Projects {
			rows = append(rows, tui.Row{
				Version:      version,
				Project:      p.Name,
				CreatedAt:    strconv.FormatUint(p.CreatedAt, 10),
				LastAccessed: strconv.FormatUint(p.LastAccessed, 10),
			})
		}
	}

	logger.Debug("collected table rows", zap.Int("rows", len(rows)))
	return rows, nil
}
