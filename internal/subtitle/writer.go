package subtitle

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Serialize renders a track as SRT text. Entries are renumbered from 1,
// blocks are separated by one blank line, and the output ends with a
// trailing newline.
func Serialize(t *Track) string {
	var sb strings.Builder
	for i, entry := range t.Entries {
		// index (1-based)
		sb.WriteString(fmt.Sprintf("%d\n", i+1))

		// timestamps: 00:00:00,000 --> 00:00:00,000
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			formatSRTTime(entry.StartTime),
			formatSRTTime(entry.EndTime)))

		// text
		sb.WriteString(entry.Text)
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// Write serializes the track to w.
func Write(w io.Writer, t *Track) error {
	if _, err := io.WriteString(w, Serialize(t)); err != nil {
		return fmt.Errorf("failed to write subtitle data: %w", err)
	}
	return nil
}

// WriteFile writes the track to path through a temp file in the same
// directory, renaming it into place once the content is fully flushed.
// A failed write never leaves a partial file at path.
func WriteFile(path string, t *Track) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".subtitle-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(Serialize(t)); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write subtitle file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to flush subtitle file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close subtitle file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace output file: %w", err)
	}
	return nil
}

func formatSRTTime(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	millis := int(d.Milliseconds()) % 1000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}
