package subtitle

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

var timecodeRegex = regexp.MustCompile(
	`(\d+):(\d{2}):(\d{2})[,.](\d{3})\s*-->\s*(\d+):(\d{2}):(\d{2})[,.](\d{3})`,
)

var indexLineRegex = regexp.MustCompile(`^\d+$`)

// Parse reads SRT text into a Track. Blocks are separated by blank lines;
// each block holds an optional index line (ignored, re-derived on write),
// a timecode line, and the caption text. Entries come back sorted by start
// time. Malformed blocks produce a *FormatError.
func Parse(r io.Reader) (*Track, error) {
	scanner := bufio.NewScanner(r)

	var blocks [][]string
	var current []string
	first := true

	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, "﻿")
			first = false
		}
		line = strings.TrimRight(line, "\r")

		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				blocks = append(blocks, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read subtitle input: %w", err)
	}
	// trailing block without a final blank line
	if len(current) > 0 {
		blocks = append(blocks, current)
	}

	track := &Track{}
	for i, block := range blocks {
		entry, err := parseBlock(block, i+1)
		if err != nil {
			return nil, err
		}
		track.Entries = append(track.Entries, entry)
	}

	sort.SliceStable(track.Entries, func(i, j int) bool {
		return track.Entries[i].StartTime < track.Entries[j].StartTime
	})

	return track, nil
}

// ParseFile reads and parses an SRT file.
func ParseFile(path string) (*Track, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open subtitle file: %w", err)
	}
	defer file.Close()

	track, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return track, nil
}

func parseBlock(lines []string, ordinal int) (Entry, error) {
	timecodeAt := 0
	if indexLineRegex.MatchString(strings.TrimSpace(lines[0])) {
		timecodeAt = 1
	}

	if timecodeAt >= len(lines) {
		return Entry{}, &FormatError{
			Block:   ordinal,
			Context: strings.Join(lines, "\n"),
			Reason:  "missing timecode line",
		}
	}

	matches := timecodeRegex.FindStringSubmatch(lines[timecodeAt])
	if len(matches) != 9 {
		return Entry{}, &FormatError{
			Block:   ordinal,
			Context: strings.Join(lines, "\n"),
			Reason:  "missing timecode line",
		}
	}

	start, err := parseTimestamp(matches[1], matches[2], matches[3], matches[4])
	if err != nil {
		return Entry{}, &FormatError{
			Block:   ordinal,
			Context: strings.Join(lines, "\n"),
			Reason:  fmt.Sprintf("invalid start timestamp: %v", err),
		}
	}
	end, err := parseTimestamp(matches[5], matches[6], matches[7], matches[8])
	if err != nil {
		return Entry{}, &FormatError{
			Block:   ordinal,
			Context: strings.Join(lines, "\n"),
			Reason:  fmt.Sprintf("invalid end timestamp: %v", err),
		}
	}

	if end <= start {
		return Entry{}, &FormatError{
			Block:   ordinal,
			Context: strings.Join(lines, "\n"),
			Reason:  "end time is not after start time",
		}
	}

	index := 0
	if timecodeAt == 1 {
		index, _ = strconv.Atoi(strings.TrimSpace(lines[0]))
	}

	return Entry{
		Index:     index,
		StartTime: start,
		EndTime:   end,
		Text:      strings.Join(lines[timecodeAt+1:], "\n"),
	}, nil
}

func parseTimestamp(
	hours, minutes, seconds, millis string,
) (time.Duration, error) {
	h, err := strconv.Atoi(hours)
	if err != nil {
		return 0, err
	}
	m, err := strconv.Atoi(minutes)
	if err != nil {
		return 0, err
	}
	s, err := strconv.Atoi(seconds)
	if err != nil {
		return 0, err
	}
	ms, err := strconv.Atoi(millis)
	if err != nil {
		return 0, err
	}
	if m >= 60 || s >= 60 {
		return 0, fmt.Errorf("minutes and seconds must be below 60")
	}

	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(ms)*time.Millisecond, nil
}
