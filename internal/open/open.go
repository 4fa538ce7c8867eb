package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Zuo-Peng/chat-affinity/internal/parse"
)

// LineForDay returns the transcript line of the earliest message sent on
// day, given as YYYY-MM-DD. msgs must be in timestamp order.
func LineForDay(msgs []parse.Message, day string) (int, error) {
	if _, err := time.Parse("2006-01-02", day); err != nil {
		return 0, fmt.Errorf("invalid day %q: %w", day, err)
	}
	for _, m := range msgs {
		if m.Timestamp.Format("2006-01-02") == day {
			return m.LineNumber, nil
		}
	}
	return 0, fmt.Errorf("no messages on %s", day)
}

// OpenTranscript opens the transcript file in editor at line. An empty
// editor falls back to $EDITOR, then less.
func OpenTranscript(path string, line int, editor string) error {
	if strings.EqualFold(filepath.Ext(path), ".zip") {
		return fmt.Errorf("cannot open %s in an editor: extract the archive first", path)
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("file not found: %s", path)
	}

	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = "less"
	}

	cmd := editorCommand(editor, path, max(line, 1))
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func editorCommand(editor, path string, line int) *exec.Cmd {
	switch {
	case strings.Contains(editor, "vim") || strings.Contains(editor, "nvim"):
		return exec.Command(editor, fmt.Sprintf("+%d", line), path)
	case strings.Contains(editor, "code"):
		return exec.Command(editor, "--goto", path+":"+strconv.Itoa(line))
	case strings.Contains(editor, "less"):
		return exec.Command(editor, "+"+strconv.Itoa(line), path)
	default:
		return exec.Command(editor, path)
	}
}
