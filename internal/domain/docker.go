package domain

// ImageInfo describes one Docker image as reported by the engine.
type ImageInfo struct {
	ID         string
	Repository string
	Tag        string
	Size       string
}

// ContainerInfo describes one Docker container as reported by the engine.
type ContainerInfo struct {
	ID     string
	Name   string
	Image  string
	Status string
}

// IsStopped reports whether the container is a cleanup candidate
// (exited or created but never started).
func (c ContainerInfo) IsStopped() bool {
	return hasStatusPrefix(c.Status, "Exited") || hasStatusPrefix(c.Status, "Created")
}

func hasStatusPrefix(status, prefix string) bool {
	return len(status) >= len(prefix) && status[:len(prefix)] == prefix
}
