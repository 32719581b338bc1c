package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
)

const timeRound = 10 * time.Millisecond

// interactive reports whether prompts make sense for the current
// stdout.
func interactive() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// promptYesNo asks a yes/no question on w and reads the answer from r.
// Anything other than y/yes (case-insensitive) is no. The reader is
// shared across consecutive prompts so buffered input is not lost.
func promptYesNo(r *bufio.Reader, w io.Writer, question string) bool {
	fmt.Fprintf(w, "%s (y/N): ", question)

	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
