package cli

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/Ning0612/reclaim/internal/core/clean"
	"github.com/Ning0612/reclaim/internal/domain"
	"github.com/Ning0612/reclaim/internal/lock"
	"github.com/Ning0612/reclaim/internal/logger"
	"github.com/Ning0612/reclaim/internal/state"
)

func (a *App) newCleanCmd() *cobra.Command {
	var (
		assumeYes bool
		dryRun    bool
	)

	cmd := &cobra.Command{
		Use:   "clean [path]",
		Short: "Analyze a tree, then interactively delete what you confirm",
		Long: heredoc.Doc(`
			Runs the same analysis as 'analyze', shows the report, then asks
			per category whether to remove duplicates (keeping one copy per
			group), stale files, and cache directories. Large files are shown
			for review but never deleted by category; remove those by hand.

			Every answer defaults to no. With --yes all categories are
			selected without prompting; --dry-run shows the deletion plan and
			stops.
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

			analysis, runID, _, err := a.runAnalysis(cmd, root, a.cfg.Analysis.ScanConfig())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := RenderAnalysis(out, analysis, a.cfg.Analysis.TopFiles); err != nil {
				return err
			}

			sel := a.selectCategories(cmd, analysis, assumeYes)
			plan := clean.BuildPlan(analysis, sel)
			if plan.IsEmpty() {
				fmt.Fprintln(out, "\nNothing selected, nothing deleted.")
				return nil
			}

			fmt.Fprintf(out, "\nPlanned: %d files and %d directories, %s\n",
				len(plan.Files), len(plan.Dirs), humanize.IBytes(uint64(plan.TotalBytes())))

			if dryRun {
				for _, f := range plan.Files {
					fmt.Fprintf(out, "  would delete %s\n", f.Path)
				}
				for _, d := range plan.Dirs {
					fmt.Fprintf(out, "  would delete %s (recursively)\n", d.Path)
				}
				return nil
			}

			if !assumeYes {
				reader := bufio.NewReader(cmd.InOrStdin())
				if !promptYesNo(reader, out, "Proceed with deletion?") {
					fmt.Fprintln(out, "Aborted.")
					return nil
				}
			}

			// One deletion run at a time; analysis stays unguarded
			runLock, err := lock.New(a.cfg.StateDir)
			if err != nil {
				return fmt.Errorf("preparing run lock: %w", err)
			}
			if err := runLock.Acquire(root); err != nil {
				return err
			}
			defer runLock.Release()

			results := clean.NewDefaultExecutor().Execute(cmd.Context(), plan)
			a.reportResults(cmd, results, runID)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Select all categories and skip prompts")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the deletion plan without deleting")

	return cmd
}

// selectCategories translates per-category answers into a selection.
func (a *App) selectCategories(cmd *cobra.Command, analysis *domain.DiskAnalysis, assumeYes bool) clean.Selection {
	if assumeYes {
		return clean.Selection{AllDuplicates: true, AllStale: true, AllCaches: true}
	}

	out := cmd.OutOrStdout()
	reader := bufio.NewReader(cmd.InOrStdin())
	var sel clean.Selection

	if len(analysis.Duplicates) > 0 {
		q := fmt.Sprintf("Remove duplicates, keeping one copy per group (%s)?",
			humanize.IBytes(uint64(analysis.DuplicateWaste())))
		sel.AllDuplicates = promptYesNo(reader, out, q)
	}
	if len(analysis.StaleFiles) > 0 {
		q := fmt.Sprintf("Remove %d stale files (%s)?",
			len(analysis.StaleFiles), humanize.IBytes(uint64(analysis.StaleSize())))
		sel.AllStale = promptYesNo(reader, out, q)
	}
	if len(analysis.CacheDirs) > 0 {
		q := fmt.Sprintf("Remove %d cache directories (%s)?",
			len(analysis.CacheDirs), humanize.IBytes(uint64(analysis.CacheSize())))
		sel.AllCaches = promptYesNo(reader, out, q)
	}

	return sel
}

// reportResults prints deletion outcomes and records them under the run.
func (a *App) reportResults(cmd *cobra.Command, results []clean.Result, runID int64) {
	out := cmd.OutOrStdout()
	log := logger.Get()

	var manager *state.Manager
	if runID > 0 {
		if m, err := state.NewManager(a.cfg.StateDir); err == nil {
			manager = m
			defer manager.Close()
		}
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(out, "  FAILED %s: %v\n", r.Path, r.Err)
			log.Warn("deletion failed", "path", r.Path, "error", r.Err)
		}

		if manager != nil {
			record := state.DeletionRecord{
				RunID:     runID,
				Path:      r.Path,
				Kind:      string(r.Kind),
				Bytes:     r.Bytes,
				DeletedAt: time.Now(),
			}
			if r.Err != nil {
				record.Error = r.Err.Error()
			}
			if err := manager.SaveDeletion(record); err != nil {
				log.Warn("failed to record deletion", "path", r.Path, "error", err)
			}
		}
	}

	fmt.Fprintf(out, "\nFreed %s (%d of %d items deleted)\n",
		humanize.IBytes(uint64(clean.FreedBytes(results))),
		len(results)-failed, len(results))
}
