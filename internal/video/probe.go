package video

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"

	ffmpegbin "dualsub/internal/ffmpeg"
)

// JSON output from ffprobe
type probeOutput struct {
	Streams []struct {
		Index     int    `json:"index"`
		CodecName string `json:"codec_name"`
		Tags      struct {
			Language string `json:"language"`
			Title    string `json:"title"`
		} `json:"tags"`
	} `json:"streams"`
}

// ListStreams returns the subtitle streams of the media file at path, in
// container order. Streams without a language tag are reported as "und".
func (p *Processor) ListStreams(ctx context.Context, path string) ([]Stream, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("media file not found: %s", path)
	}

	ffprobePath, err := ffmpegbin.FFprobePath()
	if err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, ffprobePath,
		"-v", "error",
		"-select_streams", "s",
		"-show_entries", "stream=index,codec_name:stream_tags=language,title",
		"-of", "json",
		path,
	)

	var out bytes.Buffer
	var errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut

	if err := cmd.Run(); err != nil {
		return nil, &ExtractionError{
			Op:     "ffprobe",
			Stderr: strings.TrimSpace(errOut.String()),
			Err:    err,
		}
	}

	return parseProbeOutput(out.Bytes())
}

func parseProbeOutput(data []byte) ([]Stream, error) {
	var probe probeOutput
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}

	streams := make([]Stream, 0, len(probe.Streams))
	for i, s := range probe.Streams {
		lang := s.Tags.Language
		if lang == "" {
			lang = "und"
		}
		streams = append(streams, Stream{
			Index:       i,
			GlobalIndex: s.Index,
			Codec:       s.CodecName,
			Language:    lang,
			Title:       s.Tags.Title,
		})
	}
	return streams, nil
}
