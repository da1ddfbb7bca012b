package ffmpeg

import (
	"errors"
	"os"
	"os/exec"
	"sync"
)

// resolved locations of the ffmpeg and ffprobe executables
type BinaryPaths struct {
	FFmpeg  string
	FFprobe string
}

var (
	mu         sync.Mutex
	configured BinaryPaths
	resolved   *BinaryPaths
)

// Configure sets explicit executable locations, typically from the config
// file. Empty values keep the default resolution order. Calling Configure
// discards any previously resolved paths.
func Configure(ffmpegPath, ffprobePath string) {
	mu.Lock()
	defer mu.Unlock()
	configured = BinaryPaths{FFmpeg: ffmpegPath, FFprobe: ffprobePath}
	resolved = nil
}

// Ensure resolves both executables, preferring configured paths, then the
// DUALSUB_FFMPEG_PATH and DUALSUB_FFPROBE_PATH environment variables, then
// the system PATH. The result is cached until the next Configure call.
func Ensure() (BinaryPaths, error) {
	mu.Lock()
	defer mu.Unlock()
	if resolved != nil {
		return *resolved, nil
	}

	paths := configured
	if paths.FFmpeg == "" {
		paths.FFmpeg = os.Getenv("DUALSUB_FFMPEG_PATH")
	}
	if paths.FFprobe == "" {
		paths.FFprobe = os.Getenv("DUALSUB_FFPROBE_PATH")
	}

	if paths.FFmpeg == "" {
		found, err := exec.LookPath("ffmpeg")
		if err != nil {
			return BinaryPaths{}, errors.New("ffmpeg not found on PATH: install it or set DUALSUB_FFMPEG_PATH")
		}
		paths.FFmpeg = found
	}
	if paths.FFprobe == "" {
		found, err := exec.LookPath("ffprobe")
		if err != nil {
			return BinaryPaths{}, errors.New("ffprobe not found on PATH: install it or set DUALSUB_FFPROBE_PATH")
		}
		paths.FFprobe = found
	}

	resolved = &paths
	return paths, nil
}

func FFmpegPath() (string, error) {
	paths, err := Ensure()
	if err != nil {
		return "", err
	}
	return paths.FFmpeg, nil
}

func FFprobePath() (string, error) {
	paths, err := Ensure()
	if err != nil {
		return "", err
	}
	return paths.FFprobe, nil
}
