package subtitle

import (
	"errors"
	"fmt"
	"time"
)

// represents a single timed caption
type Entry struct {
	Index     int
	StartTime time.Duration
	EndTime   time.Duration
	Text      string
}

func (e Entry) Duration() time.Duration {
	return e.EndTime - e.StartTime
}

// represents an ordered subtitle track, entries sorted by start time
type Track struct {
	Entries  []Entry
	Language string
	Title    string
}

// returned when a subtitle track unexpectedly has no entries
var ErrEmptyTrack = errors.New("subtitle track has no entries")

// describes a malformed block in SRT input
type FormatError struct {
	Block   int    // 1-based position of the block in the input
	Context string // raw text of the offending block
	Reason  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf(
		"malformed subtitle block %d: %s:\n%s",
		e.Block,
		e.Reason,
		e.Context,
	)
}
