package video

import (
	"fmt"
	"strings"
)

// reported when no subtitle stream matches the requested selector
type TrackNotFoundError struct {
	ByIndex  bool
	Index    int
	Language string
}

func (e *TrackNotFoundError) Error() string {
	if e.ByIndex {
		return fmt.Sprintf("no subtitle stream with index %d", e.Index)
	}
	if e.Language != "" {
		return fmt.Sprintf("no subtitle stream with language %q", e.Language)
	}
	return "the file has no subtitle streams"
}

// reported when a language selector matches more than one stream
type AmbiguousTrackError struct {
	Language string
	Matches  []Stream
}

func (e *AmbiguousTrackError) Error() string {
	descriptions := make([]string, len(e.Matches))
	for i, s := range e.Matches {
		if s.Title != "" {
			descriptions[i] = fmt.Sprintf("%d (%s)", s.Index, s.Title)
		} else {
			descriptions[i] = fmt.Sprintf("%d (%s)", s.Index, s.Codec)
		}
	}
	return fmt.Sprintf(
		"language %q matches %d subtitle streams: %s; pick one with --index",
		e.Language, len(e.Matches), strings.Join(descriptions, ", "),
	)
}

// reported when an ffmpeg or ffprobe invocation fails
type ExtractionError struct {
	Op     string
	Stderr string
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
