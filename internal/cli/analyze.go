package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Ning0612/reclaim/internal/core/scan"
	"github.com/Ning0612/reclaim/internal/domain"
	"github.com/Ning0612/reclaim/internal/logger"
	"github.com/Ning0612/reclaim/internal/progress"
	"github.com/Ning0612/reclaim/internal/state"
)

func (a *App) newAnalyzeCmd() *cobra.Command {
	var (
		minSizeMB int64
		staleDays int
		topFiles  int
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [path]",
		Short: "Scan a directory tree and report reclaimable space",
		Long: heredoc.Doc(`
			Runs the four scans (large files, duplicates, stale files, cache
			directories) against the given path and prints a consolidated
			report. Defaults to the current directory. Nothing is modified.
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}

			if info, err := os.Stat(root); err != nil {
				return fmt.Errorf("accessing path %q: %w", root, err)
			} else if !info.IsDir() {
				return fmt.Errorf("path %q: %w", root, domain.ErrNotDirectory)
			}

			cfg := a.cfg.Analysis.ScanConfig()
			if cmd.Flags().Changed("min-size") {
				cfg.MinSizeMB = minSizeMB
			}
			if cmd.Flags().Changed("days") {
				cfg.StaleDays = staleDays
			}
			if cmd.Flags().Changed("top") {
				cfg.TopFiles = topFiles
			}

			analysis, _, took, err := a.runAnalysis(cmd, root, cfg)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(analysis)
			}

			if err := RenderAnalysis(cmd.OutOrStdout(), analysis, cfg.TopFiles); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nScan took %s\n", took.Round(timeRound))
			return nil
		},
	}

	cmd.Flags().Int64Var(&minSizeMB, "min-size", 100, "Minimum large-file size in MB")
	cmd.Flags().IntVar(&staleDays, "days", 180, "Staleness threshold in days since last access")
	cmd.Flags().IntVar(&topFiles, "top", 10, "Number of large files to display")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the full analysis as JSON")

	return cmd
}

// runAnalysis executes the scan with terminal progress and records the
// run in the history store. The returned run id is 0 when the history
// store is unavailable.
func (a *App) runAnalysis(cmd *cobra.Command, root string, cfg scan.Config) (*domain.DiskAnalysis, int64, time.Duration, error) {
	log := logger.Get()

	scanner := scan.NewScanner()
	showProgress := interactive()
	if showProgress {
		scanner.SetProgress(func(u progress.Update) {
			if u.Total > 0 {
				fmt.Fprintf(os.Stderr, "\rhashing %d/%d files", u.Visited, u.Total)
				return
			}
			fmt.Fprintf(os.Stderr, "\r%d entries scanned", u.Visited)
		})
	}

	start := time.Now()
	analysis, err := scanner.Analyze(cmd.Context(), root, cfg)
	if showProgress {
		fmt.Fprint(os.Stderr, "\r\033[K")
	}
	if err != nil {
		return nil, 0, 0, fmt.Errorf("analyzing %q: %w", root, err)
	}
	took := time.Since(start)

	log.Info("analysis complete",
		"root", analysis.Root,
		"large", len(analysis.LargeFiles),
		"duplicate_groups", len(analysis.Duplicates),
		"stale", len(analysis.StaleFiles),
		"caches", len(analysis.CacheDirs),
		"reclaimable", analysis.TotalReclaimable,
		"took", took,
	)

	// History is best effort; a failed write never fails the scan
	var runID int64
	if manager, err := state.NewManager(a.cfg.StateDir); err != nil {
		log.Warn("history store unavailable", "error", err)
	} else {
		if id, err := manager.SaveRun(analysis, start, took); err != nil {
			log.Warn("failed to record run", "error", err)
		} else {
			runID = id
		}
		manager.Close()
	}

	return analysis, runID, took, nil
}
