package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/Ning0612/reclaim/internal/domain"
	"github.com/Ning0612/reclaim/internal/state"
)

const tabSpacing = 2

// RenderAnalysis prints a human-readable report of one analysis.
// topFiles caps how many large files are shown; the analysis itself
// always carries the full set.
func RenderAnalysis(w io.Writer, analysis *domain.DiskAnalysis, topFiles int) error {
	tw := tabwriter.NewWriter(w, 0, 4, tabSpacing, ' ', 0)

	fmt.Fprintf(tw, "\nAnalysis of %s\n", analysis.Root)

	fmt.Fprintf(tw, "\nLarge files (%d):\n", len(analysis.LargeFiles))
	shown := analysis.LargeFiles
	if topFiles > 0 && len(shown) > topFiles {
		shown = shown[:topFiles]
	}
	for i, f := range shown {
		fmt.Fprintf(tw, "  %d) %s\t%s\n", i+1, f.Path, humanize.IBytes(uint64(f.Size)))
	}
	if len(analysis.LargeFiles) > len(shown) {
		fmt.Fprintf(tw, "  ... and %d more\n", len(analysis.LargeFiles)-len(shown))
	}

	fmt.Fprintf(tw, "\nDuplicate groups (%d):\n", len(analysis.Duplicates))
	for i, g := range analysis.Duplicates {
		fmt.Fprintf(tw, "  %d) %d copies of %s\twastes %s\n",
			i+1, len(g.Files), humanize.IBytes(uint64(g.Size())), humanize.IBytes(uint64(g.WastedBytes())))
		for _, f := range g.Files {
			fmt.Fprintf(tw, "      %s\n", f.Path)
		}
	}

	fmt.Fprintf(tw, "\nStale files (%d), %s total\n",
		len(analysis.StaleFiles), humanize.IBytes(uint64(analysis.StaleSize())))

	fmt.Fprintf(tw, "\nCache directories (%d):\n", len(analysis.CacheDirs))
	for i, c := range analysis.CacheDirs {
		fmt.Fprintf(tw, "  %d) %s\t%s\t%s\n", i+1, c.Path, c.Label, humanize.IBytes(uint64(c.Size)))
	}

	fmt.Fprintf(tw, "\nEstimated reclaimable:\t%s\n", humanize.IBytes(uint64(analysis.TotalReclaimable)))
	fmt.Fprintln(tw, "(categories can overlap; the estimate counts overlapping files once per category)")

	return tw.Flush()
}

// RenderHistory prints past runs in a table.
func RenderHistory(w io.Writer, records []state.RunRecord) error {
	tw := tabwriter.NewWriter(w, 0, 4, tabSpacing, ' ', 0)

	fmt.Fprintln(tw, "WHEN\tROOT\tLARGE\tDUPS\tSTALE\tCACHES\tRECLAIMABLE\tTOOK")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\t%s\t%s\n",
			r.StartTime.Format("2006-01-02 15:04"),
			r.Root,
			r.LargeFiles,
			r.DuplicateGroups,
			r.StaleFiles,
			r.CacheDirs,
			humanize.IBytes(uint64(r.ReclaimableBytes)),
			r.Duration.Round(timeRound),
		)
	}

	return tw.Flush()
}
