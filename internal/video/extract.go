package video

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	ffmpegbin "dualsub/internal/ffmpeg"
	"dualsub/internal/subtitle"
)

// Extract decodes one subtitle stream straight into memory as SRT and
// parses it. The stream's language and title tags carry over to the track.
func (p *Processor) Extract(ctx context.Context, path string, stream Stream) (*subtitle.Track, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("media file not found: %s", path)
	}

	ffmpegPath, err := ffmpegbin.FFmpegPath()
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	var errOut bytes.Buffer
	err = ffmpeg.Input(path).
		Output("pipe:", ffmpeg.KwArgs{
			"map":    fmt.Sprintf("0:s:%d", stream.Index),
			"c:s":    "srt",
			"format": "srt",
		}).
		WithOutput(&out).
		WithErrorOutput(&errOut).
		SetFfmpegPath(ffmpegPath).
		Run()
	if err != nil {
		return nil, &ExtractionError{
			Op:     "ffmpeg subtitle extraction",
			Stderr: strings.TrimSpace(errOut.String()),
			Err:    err,
		}
	}

	track, err := subtitle.Parse(&out)
	if err != nil {
		return nil, err
	}
	track.Language = stream.Language
	track.Title = stream.Title
	return track, nil
}

// ExtractFile writes one subtitle stream to outputPath, converting to SRT
// when toSRT is set and copying the stream bytes untouched otherwise.
func (p *Processor) ExtractFile(ctx context.Context, path string, stream Stream, outputPath string, toSRT bool) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("media file not found: %s", path)
	}

	outputDir := filepath.Dir(outputPath)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	ffmpegPath, err := ffmpegbin.FFmpegPath()
	if err != nil {
		return err
	}

	kwargs := ffmpeg.KwArgs{
		"map": fmt.Sprintf("0:s:%d", stream.Index),
	}
	if toSRT {
		kwargs["c:s"] = "srt"
	} else {
		kwargs["c:s"] = "copy"
	}

	var errOut bytes.Buffer
	err = ffmpeg.Input(path).
		Output(outputPath, kwargs).
		OverWriteOutput().
		WithErrorOutput(&errOut).
		SetFfmpegPath(ffmpegPath).
		Run()
	if err != nil {
		return &ExtractionError{
			Op:     "ffmpeg subtitle extraction",
			Stderr: strings.TrimSpace(errOut.String()),
			Err:    err,
		}
	}
	return nil
}
