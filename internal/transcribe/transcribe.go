package transcribe

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// DefaultBinary is the whisper executable looked up on PATH
const DefaultBinary = "whisper"

// transcription options
type Options struct {
	Language string    // source language hint, empty lets whisper detect
	Model    string    // whisper model name (tiny, base, small, medium, large)
	Binary   string    // whisper executable, defaults to DefaultBinary
	Progress io.Writer // receives whisper's own output when set
}

// RunFunc executes a transcription command
type RunFunc func(ctx context.Context, name string, args []string, progress io.Writer) error

// Transcriber drives a local whisper installation
type Transcriber struct {
	opts Options
	run  RunFunc
}

func New(opts Options) *Transcriber {
	if opts.Binary == "" {
		opts.Binary = DefaultBinary
	}
	return &Transcriber{opts: opts, run: runCommand}
}

// Transcribe runs whisper on the media file and returns the path of the
// generated SRT file. Whisper always names its output after the media file;
// when outputPath differs the file is moved there afterwards.
func (t *Transcriber) Transcribe(ctx context.Context, mediaPath, outputPath string) (string, error) {
	if _, err := os.Stat(mediaPath); os.IsNotExist(err) {
		return "", fmt.Errorf("media file not found: %s", mediaPath)
	}

	outputDir := filepath.Dir(mediaPath)
	if outputPath != "" {
		outputDir = filepath.Dir(outputPath)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	args := []string{
		mediaPath,
		"--output_format", "srt",
		"--output_dir", outputDir,
	}
	if t.opts.Model != "" {
		args = append(args, "--model", t.opts.Model)
	}
	if t.opts.Language != "" {
		args = append(args, "--language", t.opts.Language)
	}

	if err := t.run(ctx, t.opts.Binary, args, t.opts.Progress); err != nil {
		return "", fmt.Errorf("whisper transcription failed: %w", err)
	}

	stem := strings.TrimSuffix(filepath.Base(mediaPath), filepath.Ext(mediaPath))
	produced := filepath.Join(outputDir, stem+".srt")
	if _, err := os.Stat(produced); err != nil {
		return "", fmt.Errorf("whisper did not produce %s: %w", produced, err)
	}

	if outputPath == "" || outputPath == produced {
		return produced, nil
	}
	if err := os.Rename(produced, outputPath); err != nil {
		return "", fmt.Errorf("failed to move transcript: %w", err)
	}
	return outputPath, nil
}

func runCommand(ctx context.Context, name string, args []string, progress io.Writer) error {
	binary, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("%s not found on PATH: install openai-whisper or set transcribe.binary in the config", name)
	}
	cmd := exec.CommandContext(ctx, binary, args...)
	if progress != nil {
		cmd.Stdout = progress
		cmd.Stderr = progress
	}
	return cmd.Run()
}
