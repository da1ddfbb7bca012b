package video

import (
	"context"

	"dualsub/internal/subtitle"
)

// describes one subtitle stream inside a media container
type Stream struct {
	Index       int    // position among the file's subtitle streams
	GlobalIndex int    // stream index across the whole container
	Codec       string
	Language    string
	Title       string
}

// lists the subtitle streams of a media file
type Prober interface {
	ListStreams(ctx context.Context, path string) ([]Stream, error)
}

// pulls subtitle streams out of a media file
type Extractor interface {
	// decodes one subtitle stream straight into memory as SRT
	Extract(ctx context.Context, path string, stream Stream) (*subtitle.Track, error)

	// writes one subtitle stream to outputPath
	ExtractFile(ctx context.Context, path string, stream Stream, outputPath string, toSRT bool) error
}

// default implementation backed by the ffmpeg tools
type Processor struct{}

func NewProcessor() *Processor {
	return &Processor{}
}
