package cli

import (
	"bufio"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Ning0612/reclaim/internal/docker"
)

func (a *App) newDockerCmd() *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "docker",
		Short: "Review Docker disk usage and prune unused data",
		Long: heredoc.Doc(`
			Lists images and containers, shows the engine's disk usage
			report, and offers to remove dangling images, stopped containers,
			and (optionally) all unused data. Requires the docker binary on
			PATH.
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDocker(cmd, docker.NewCLIEngine(), assumeYes)
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Prune without prompting (skips full system prune)")

	return cmd
}

// runDocker drives the review/prune loop against any engine
// implementation.
func (a *App) runDocker(cmd *cobra.Command, engine docker.Engine, assumeYes bool) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	reader := bufio.NewReader(cmd.InOrStdin())

	confirm := func(question string) bool {
		if assumeYes {
			return true
		}
		return promptYesNo(reader, out, question)
	}

	images, err := engine.ListImages(ctx)
	if err != nil {
		return fmt.Errorf("listing images: %w", err)
	}

	fmt.Fprintln(out, "Images:")
	if len(images) == 0 {
		fmt.Fprintln(out, "  none")
	}
	for i, img := range images {
		fmt.Fprintf(out, "  %d) %s (%s:%s) %s\n", i+1, img.ID, img.Repository, img.Tag, img.Size)
	}

	dangling, err := engine.CountDanglingImages(ctx)
	if err != nil {
		return fmt.Errorf("counting dangling images: %w", err)
	}
	if dangling > 0 {
		fmt.Fprintf(out, "\nFound %d dangling image(s) (not tagged)\n", dangling)
		if confirm("Remove dangling images?") {
			report, err := engine.PruneImages(ctx)
			if err != nil {
				return fmt.Errorf("pruning images: %w", err)
			}
			fmt.Fprint(out, report)
		}
	}

	containers, err := engine.ListContainers(ctx)
	if err != nil {
		return fmt.Errorf("listing containers: %w", err)
	}

	fmt.Fprintln(out, "\nContainers:")
	if len(containers) == 0 {
		fmt.Fprintln(out, "  none")
	}
	stopped := 0
	for i, c := range containers {
		fmt.Fprintf(out, "  %d) %s (%s) image=%s status=%s\n", i+1, c.ID, c.Name, c.Image, c.Status)
		if c.IsStopped() {
			stopped++
		}
	}

	if stopped > 0 {
		fmt.Fprintf(out, "\nFound %d stopped container(s)\n", stopped)
		if confirm("Remove stopped containers?") {
			report, err := engine.PruneContainers(ctx)
			if err != nil {
				return fmt.Errorf("pruning containers: %w", err)
			}
			fmt.Fprint(out, report)
		}
	}

	usage, err := engine.DiskUsage(ctx)
	if err != nil {
		return fmt.Errorf("reading disk usage: %w", err)
	}
	fmt.Fprintln(out, "\nDisk usage:")
	fmt.Fprint(out, usage)

	// Full prune is destructive enough to always require an explicit yes
	if !assumeYes && promptYesNo(reader, out, "Run full system prune (removes unused data)?") {
		report, err := engine.PruneSystem(ctx)
		if err != nil {
			return fmt.Errorf("system prune: %w", err)
		}
		fmt.Fprint(out, report)
	}

	return nil
}
