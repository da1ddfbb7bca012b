package merge

import (
	"errors"
	"sort"
	"strings"
	"time"

	"dualsub/internal/subtitle"
)

const (
	// MinOverlap is the absolute intersection at which two entries always count as overlapping
	MinOverlap = 200 * time.Millisecond

	// MinOverlapRatio is the fraction of the shorter entry's duration the
	// intersection must exceed when it stays under MinOverlap
	MinOverlapRatio = 0.5
)

// ErrNoSecondaryTracks is returned by Tracks when called without secondary tracks
var ErrNoSecondaryTracks = errors.New("no secondary tracks to merge")

// Options controls how secondary entries attach to primary entries
type Options struct {
	// FirstMatchOnly attaches each secondary entry to only the first
	// overlapping primary entry instead of all of them
	FirstMatchOnly bool
}

// Intersection returns the length of the time range shared by both entries
func Intersection(a, b subtitle.Entry) time.Duration {
	start := a.StartTime
	if b.StartTime > start {
		start = b.StartTime
	}
	end := a.EndTime
	if b.EndTime < end {
		end = b.EndTime
	}
	if end <= start {
		return 0
	}
	return end - start
}

// Overlaps reports whether two entries overlap enough to be shown together
func Overlaps(a, b subtitle.Entry) bool {
	intersection := Intersection(a, b)
	if intersection <= 0 {
		return false
	}
	if intersection >= MinOverlap {
		return true
	}

	shorter := a.Duration()
	if b.Duration() < shorter {
		shorter = b.Duration()
	}
	if shorter <= 0 {
		return false
	}
	return float64(intersection) > MinOverlapRatio*float64(shorter)
}

// Combine merges secondary texts into the primary entry, keeping the primary
// timing and skipping texts already present
func Combine(primary subtitle.Entry, secondaries []subtitle.Entry) subtitle.Entry {
	texts := []string{primary.Text}
	for _, s := range secondaries {
		if !containsText(texts, s.Text) {
			texts = append(texts, s.Text)
		}
	}
	return subtitle.Entry{
		Index:     primary.Index,
		StartTime: primary.StartTime,
		EndTime:   primary.EndTime,
		Text:      strings.Join(texts, "\n"),
	}
}

// Tracks merges one or more secondary tracks into the primary track.
// Each secondary entry is attached to every primary entry it overlaps with,
// matched against the primary's original timing. Secondary entries that
// overlap nothing are carried over as standalone entries.
func Tracks(primary *subtitle.Track, secondaries []*subtitle.Track, opts Options) (*subtitle.Track, error) {
	if len(secondaries) == 0 {
		return nil, ErrNoSecondaryTracks
	}

	attached := make([][]subtitle.Entry, len(primary.Entries))
	var standalone []subtitle.Entry

	for _, track := range secondaries {
		for _, s := range track.Entries {
			matched := false
			for i, p := range primary.Entries {
				if !Overlaps(p, s) {
					continue
				}
				matched = true
				attached[i] = append(attached[i], s)
				if opts.FirstMatchOnly {
					break
				}
			}
			if !matched {
				standalone = append(standalone, s)
			}
		}
	}

	entries := make([]subtitle.Entry, 0, len(primary.Entries)+len(standalone))
	for i, p := range primary.Entries {
		entries = append(entries, Combine(p, attached[i]))
	}
	entries = append(entries, standalone...)

	// stable sort keeps primary entries ahead of standalone ones that start
	// at the same time
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].StartTime < entries[j].StartTime
	})
	for i := range entries {
		entries[i].Index = i + 1
	}

	return &subtitle.Track{
		Entries:  entries,
		Language: primary.Language,
		Title:    primary.Title,
	}, nil
}

func containsText(texts []string, text string) bool {
	for _, t := range texts {
		if t == text {
			return true
		}
	}
	return false
}
