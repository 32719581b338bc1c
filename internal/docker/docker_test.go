package docker

import (
	"testing"
)

func TestParseImages(t *testing.T) {
	out := "abc123|nginx|latest|142MB\n" +
		"def456|<none>|<none>|89MB\n" +
		"garbage line without pipes\n" +
		"\n"

	images := ParseImages(out)
	if len(images) != 2 {
		t.Fatalf("expected 2 images, got %d", len(images))
	}

	if images[0].ID != "abc123" || images[0].Repository != "nginx" ||
		images[0].Tag != "latest" || images[0].Size != "142MB" {
		t.Errorf("unexpected first image: %+v", images[0])
	}
	if images[1].Repository != "<none>" {
		t.Errorf("unexpected second image: %+v", images[1])
	}
}

func TestParseContainers(t *testing.T) {
	out := "c1|web|nginx:latest|Up 3 hours\n" +
		"c2|worker|redis:7|Exited (0) 2 days ago\n" +
		"c3|init|busybox|Created\n"

	containers := ParseContainers(out)
	if len(containers) != 3 {
		t.Fatalf("expected 3 containers, got %d", len(containers))
	}

	if containers[0].IsStopped() {
		t.Error("running container reported as stopped")
	}
	if !containers[1].IsStopped() {
		t.Error("exited container not reported as stopped")
	}
	if !containers[2].IsStopped() {
		t.Error("created container not reported as stopped")
	}
}

func TestParseEmptyOutput(t *testing.T) {
	if got := ParseImages(""); len(got) != 0 {
		t.Errorf("expected no images, got %d", len(got))
	}
	if got := ParseContainers("\n\n"); len(got) != 0 {
		t.Errorf("expected no containers, got %d", len(got))
	}
}

func TestCountLines(t *testing.T) {
	if got := countLines("a\nb\nc\n"); got != 3 {
		t.Errorf("countLines = %d, want 3", got)
	}
	if got := countLines(""); got != 0 {
		t.Errorf("countLines empty = %d, want 0", got)
	}
	if got := countLines("\n \n"); got != 0 {
		t.Errorf("countLines blanks = %d, want 0", got)
	}
}
