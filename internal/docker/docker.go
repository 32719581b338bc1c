// Package docker wraps the docker command-line client behind a
// capability interface so callers can be tested without a container
// engine.
package docker

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Ning0612/reclaim/internal/domain"
)

// Engine is the container-engine capability consumed by the CLI layer.
type Engine interface {
	ListImages(ctx context.Context) ([]domain.ImageInfo, error)
	ListContainers(ctx context.Context) ([]domain.ContainerInfo, error)
	CountDanglingImages(ctx context.Context) (int, error)
	PruneImages(ctx context.Context) (string, error)
	PruneContainers(ctx context.Context) (string, error)
	PruneSystem(ctx context.Context) (string, error)
	DiskUsage(ctx context.Context) (string, error)
}

// CLIEngine shells out to the docker binary.
type CLIEngine struct {
	// Binary overrides the docker executable name (tests)
	Binary string
}

// NewCLIEngine creates an engine backed by the docker binary on PATH.
func NewCLIEngine() *CLIEngine {
	return &CLIEngine{Binary: "docker"}
}

// run executes one docker subcommand, mapping failures to domain errors.
func (e *CLIEngine) run(ctx context.Context, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, e.Binary, args...).Output()
	if err != nil {
		if _, isExit := err.(*exec.ExitError); isExit {
			return "", fmt.Errorf("%w: docker %s", domain.ErrDockerCommand, strings.Join(args, " "))
		}
		return "", fmt.Errorf("%w: %v", domain.ErrDockerUnavailable, err)
	}
	return string(out), nil
}

// ListImages returns all images known to the engine.
func (e *CLIEngine) ListImages(ctx context.Context) ([]domain.ImageInfo, error) {
	out, err := e.run(ctx, "images", "--format", "{{.ID}}|{{.Repository}}|{{.Tag}}|{{.Size}}")
	if err != nil {
		return nil, err
	}
	return ParseImages(out), nil
}

// ListContainers returns all containers, running or not.
func (e *CLIEngine) ListContainers(ctx context.Context) ([]domain.ContainerInfo, error) {
	out, err := e.run(ctx, "ps", "-a", "--format", "{{.ID}}|{{.Names}}|{{.Image}}|{{.Status}}")
	if err != nil {
		return nil, err
	}
	return ParseContainers(out), nil
}

// CountDanglingImages returns how many untagged images exist.
func (e *CLIEngine) CountDanglingImages(ctx context.Context) (int, error) {
	out, err := e.run(ctx, "images", "-f", "dangling=true", "-q")
	if err != nil {
		return 0, err
	}
	return countLines(out), nil
}

// PruneImages removes dangling images and returns the engine's report.
func (e *CLIEngine) PruneImages(ctx context.Context) (string, error) {
	return e.run(ctx, "image", "prune", "-f")
}

// PruneContainers removes stopped containers and returns the engine's report.
func (e *CLIEngine) PruneContainers(ctx context.Context) (string, error) {
	return e.run(ctx, "container", "prune", "-f")
}

// PruneSystem removes all unused data and returns the engine's report.
func (e *CLIEngine) PruneSystem(ctx context.Context) (string, error) {
	return e.run(ctx, "system", "prune", "-f")
}

// DiskUsage returns the engine's disk usage report.
func (e *CLIEngine) DiskUsage(ctx context.Context) (string, error) {
	return e.run(ctx, "system", "df")
}

// ParseImages parses pipe-separated image lines. Malformed lines are
// dropped.
func ParseImages(out string) []domain.ImageInfo {
	var images []domain.ImageInfo
	for _, line := range strings.Split(out, "\n") {
		parts := strings.Split(line, "|")
		if len(parts) != 4 {
			continue
		}
		images = append(images, domain.ImageInfo{
			ID:         parts[0],
			Repository: parts[1],
			Tag:        parts[2],
			Size:       parts[3],
		})
	}
	return images
}

// ParseContainers parses pipe-separated container lines. Malformed
// lines are dropped.
func ParseContainers(out string) []domain.ContainerInfo {
	var containers []domain.ContainerInfo
	for _, line := range strings.Split(out, "\n") {
		parts := strings.Split(line, "|")
		if len(parts) != 4 {
			continue
		}
		containers = append(containers, domain.ContainerInfo{
			ID:     parts[0],
			Name:   parts[1],
			Image:  parts[2],
			Status: parts[3],
		})
	}
	return containers
}

func countLines(out string) int {
	count := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}
