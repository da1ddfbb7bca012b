package transcribe

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeRun records the command and simulates whisper writing its SRT output
func fakeRun(t *testing.T, gotName *string, gotArgs *[]string) RunFunc {
	t.Helper()
	return func(ctx context.Context, name string, args []string, progress io.Writer) error {
		*gotName = name
		*gotArgs = args

		mediaPath := args[0]
		outputDir := ""
		for i, a := range args {
			if a == "--output_dir" && i+1 < len(args) {
				outputDir = args[i+1]
			}
		}
		stem := strings.TrimSuffix(filepath.Base(mediaPath), filepath.Ext(mediaPath))
		produced := filepath.Join(outputDir, stem+".srt")
		return os.WriteFile(produced, []byte("1\n00:00:01,000 --> 00:00:02,000\nhi\n\n"), 0644)
	}
}

func writeMedia(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "episode.mkv")
	if err := os.WriteFile(path, []byte("fake media"), 0644); err != nil {
		t.Fatalf("failed to create media file: %v", err)
	}
	return path
}

func hasArgPair(args []string, flag, value string) bool {
	for i, a := range args {
		if a == flag && i+1 < len(args) && args[i+1] == value {
			return true
		}
	}
	return false
}

func TestTranscribeRunsWhisper(t *testing.T) {
	tmpDir := t.TempDir()
	mediaPath := writeMedia(t, tmpDir)

	var gotName string
	var gotArgs []string
	tr := New(Options{Model: "base", Language: "en"})
	tr.run = fakeRun(t, &gotName, &gotArgs)

	produced, err := tr.Transcribe(context.Background(), mediaPath, "")
	if err != nil {
		t.Fatalf("Transcribe failed: %v", err)
	}

	want := filepath.Join(tmpDir, "episode.srt")
	if produced != want {
		t.Errorf("produced path = %q, want %q", produced, want)
	}
	if gotName != DefaultBinary {
		t.Errorf("binary = %q, want %q", gotName, DefaultBinary)
	}
	if gotArgs[0] != mediaPath {
		t.Errorf("first arg = %q, want media path", gotArgs[0])
	}
	if !hasArgPair(gotArgs, "--output_format", "srt") {
		t.Errorf("missing --output_format srt in %v", gotArgs)
	}
	if !hasArgPair(gotArgs, "--output_dir", tmpDir) {
		t.Errorf("missing --output_dir %s in %v", tmpDir, gotArgs)
	}
	if !hasArgPair(gotArgs, "--model", "base") {
		t.Errorf("missing --model base in %v", gotArgs)
	}
	if !hasArgPair(gotArgs, "--language", "en") {
		t.Errorf("missing --language en in %v", gotArgs)
	}
}

func TestTranscribeOmitsUnsetFlags(t *testing.T) {
	tmpDir := t.TempDir()
	mediaPath := writeMedia(t, tmpDir)

	var gotName string
	var gotArgs []string
	tr := New(Options{})
	tr.run = fakeRun(t, &gotName, &gotArgs)

	if _, err := tr.Transcribe(context.Background(), mediaPath, ""); err != nil {
		t.Fatalf("Transcribe failed: %v", err)
	}
	for _, a := range gotArgs {
		if a == "--model" || a == "--language" {
			t.Errorf("flag %s should be omitted when unset, args %v", a, gotArgs)
		}
	}
}

func TestTranscribeMovesToOutputPath(t *testing.T) {
	tmpDir := t.TempDir()
	mediaPath := writeMedia(t, tmpDir)
	outputPath := filepath.Join(tmpDir, "transcripts", "episode.en.srt")

	var gotName string
	var gotArgs []string
	tr := New(Options{})
	tr.run = fakeRun(t, &gotName, &gotArgs)

	produced, err := tr.Transcribe(context.Background(), mediaPath, outputPath)
	if err != nil {
		t.Fatalf("Transcribe failed: %v", err)
	}
	if produced != outputPath {
		t.Errorf("produced path = %q, want %q", produced, outputPath)
	}
	if _, err := os.Stat(outputPath); err != nil {
		t.Errorf("output file missing: %v", err)
	}
	// whisper's own output name should be gone after the move
	intermediate := filepath.Join(tmpDir, "transcripts", "episode.srt")
	if _, err := os.Stat(intermediate); !os.IsNotExist(err) {
		t.Errorf("intermediate file %s should have been moved", intermediate)
	}
}

func TestTranscribeCustomBinary(t *testing.T) {
	tmpDir := t.TempDir()
	mediaPath := writeMedia(t, tmpDir)

	var gotName string
	var gotArgs []string
	tr := New(Options{Binary: "whisper-ctranslate2"})
	tr.run = fakeRun(t, &gotName, &gotArgs)

	if _, err := tr.Transcribe(context.Background(), mediaPath, ""); err != nil {
		t.Fatalf("Transcribe failed: %v", err)
	}
	if gotName != "whisper-ctranslate2" {
		t.Errorf("binary = %q, want custom binary", gotName)
	}
}

func TestTranscribeMissingMedia(t *testing.T) {
	tr := New(Options{})
	tr.run = func(ctx context.Context, name string, args []string, progress io.Writer) error {
		t.Error("run should not be called for a missing media file")
		return nil
	}

	_, err := tr.Transcribe(context.Background(), filepath.Join(t.TempDir(), "missing.mkv"), "")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestTranscribeRunFailure(t *testing.T) {
	tmpDir := t.TempDir()
	mediaPath := writeMedia(t, tmpDir)

	wantErr := errors.New("boom")
	tr := New(Options{})
	tr.run = func(ctx context.Context, name string, args []string, progress io.Writer) error {
		return wantErr
	}

	_, err := tr.Transcribe(context.Background(), mediaPath, "")
	if !errors.Is(err, wantErr) {
		t.Errorf("expected wrapped run error, got %v", err)
	}
}

func TestTranscribeMissingOutput(t *testing.T) {
	tmpDir := t.TempDir()
	mediaPath := writeMedia(t, tmpDir)

	tr := New(Options{})
	tr.run = func(ctx context.Context, name string, args []string, progress io.Writer) error {
		return nil // whisper "succeeded" without writing anything
	}

	_, err := tr.Transcribe(context.Background(), mediaPath, "")
	if err == nil || !strings.Contains(err.Error(), "did not produce") {
		t.Errorf("expected missing-output error, got %v", err)
	}
}
