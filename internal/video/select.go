package video

import (
	"fmt"
	"path/filepath"
	"strings"

	"dualsub/internal/language"
)

// maps subtitle codec names to their natural file extensions
var codecExtensions = map[string]string{
	"subrip":            "srt",
	"ass":               "ass",
	"ssa":               "ssa",
	"webvtt":            "vtt",
	"mov_text":          "srt",
	"hdmv_pgs_subtitle": "sup",
}

// ExtensionForCodec returns the file extension for a subtitle codec,
// falling back to srt.
func ExtensionForCodec(codec string) string {
	if ext, ok := codecExtensions[codec]; ok {
		return ext
	}
	return "srt"
}

// DefaultExtractPath builds the output path for an extracted stream: the
// media file's name with the stream language and codec extension appended.
func DefaultExtractPath(mediaPath string, stream Stream, toSRT bool) string {
	ext := ExtensionForCodec(stream.Codec)
	if toSRT {
		ext = "srt"
	}
	base := strings.TrimSuffix(mediaPath, filepath.Ext(mediaPath))
	return fmt.Sprintf("%s.%s.%s", base, language.Code(stream.Language), ext)
}

// PickStream resolves a single stream selector. index is the position among
// subtitle streams, -1 when unset; lang may be any recognized code or word
// form and is ignored when index is set. With neither selector the first
// stream wins.
func PickStream(streams []Stream, index int, lang string) (Stream, error) {
	if index >= 0 {
		for _, s := range streams {
			if s.Index == index {
				return s, nil
			}
		}
		return Stream{}, &TrackNotFoundError{ByIndex: true, Index: index}
	}

	if lang == "" {
		if len(streams) == 0 {
			return Stream{}, &TrackNotFoundError{}
		}
		return streams[0], nil
	}

	var matches []Stream
	for _, s := range streams {
		if language.Matches(s.Language, lang) {
			matches = append(matches, s)
		}
	}
	switch len(matches) {
	case 0:
		return Stream{}, &TrackNotFoundError{Language: lang}
	case 1:
		return matches[0], nil
	default:
		return Stream{}, &AmbiguousTrackError{Language: lang, Matches: matches}
	}
}

// SelectStreams resolves the streams for a merge. Without selectors it takes
// the first two subtitle streams; explicit indices and languages are resolved
// in the order given, indices first. At least two streams must come out.
func SelectStreams(streams []Stream, indices []int, langs []string) ([]Stream, error) {
	if len(indices) == 0 && len(langs) == 0 {
		if len(streams) < 2 {
			return nil, fmt.Errorf("merging needs at least two subtitle streams, the file has %d", len(streams))
		}
		return []Stream{streams[0], streams[1]}, nil
	}

	selected := make([]Stream, 0, len(indices)+len(langs))
	for _, idx := range indices {
		s, err := PickStream(streams, idx, "")
		if err != nil {
			return nil, err
		}
		selected = append(selected, s)
	}
	for _, lang := range langs {
		s, err := PickStream(streams, -1, lang)
		if err != nil {
			return nil, err
		}
		selected = append(selected, s)
	}

	if len(selected) < 2 {
		return nil, fmt.Errorf("merging needs at least two selected streams, got %d", len(selected))
	}
	return selected, nil
}
