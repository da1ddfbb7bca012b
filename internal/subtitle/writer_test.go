package subtitle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestSerialize(t *testing.T) {
	track := &Track{
		Entries: []Entry{
			{
				StartTime: 1 * time.Second,
				EndTime:   3 * time.Second,
				Text:      "Hello",
			},
			{
				StartTime: 61*time.Second + 42*time.Millisecond,
				EndTime:   2 * time.Minute,
				Text:      "Bonjour\nle monde",
			},
		},
	}

	got := Serialize(track)
	want := "1\n00:00:01,000 --> 00:00:03,000\nHello\n\n" +
		"2\n00:01:01,042 --> 00:02:00,000\nBonjour\nle monde\n\n"
	if got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
}

func TestSerializeRenumbers(t *testing.T) {
	track := &Track{
		Entries: []Entry{
			{Index: 42, StartTime: time.Second, EndTime: 2 * time.Second, Text: "a"},
			{Index: 7, StartTime: 3 * time.Second, EndTime: 4 * time.Second, Text: "b"},
		},
	}

	got := Serialize(track)
	if !strings.HasPrefix(got, "1\n") {
		t.Errorf("first block should be numbered 1, got %q", got)
	}
	if !strings.Contains(got, "\n\n2\n") {
		t.Errorf("second block should be numbered 2, got %q", got)
	}
}

func TestSerializeEmptyTrack(t *testing.T) {
	if got := Serialize(&Track{}); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

func TestWriteFile(t *testing.T) {
	track := &Track{
		Entries: []Entry{
			{StartTime: time.Second, EndTime: 2 * time.Second, Text: "Hello"},
		},
	}

	tmpDir := t.TempDir()
	outPath := filepath.Join(tmpDir, "out.srt")

	if err := WriteFile(outPath, track); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if string(data) != Serialize(track) {
		t.Errorf("file content = %q, want %q", string(data), Serialize(track))
	}
}

func TestWriteFileReplacesExisting(t *testing.T) {
	track := &Track{
		Entries: []Entry{
			{StartTime: time.Second, EndTime: 2 * time.Second, Text: "New"},
		},
	}

	tmpDir := t.TempDir()
	outPath := filepath.Join(tmpDir, "out.srt")
	if err := os.WriteFile(outPath, []byte("old content"), 0644); err != nil {
		t.Fatalf("failed to seed output: %v", err)
	}

	if err := WriteFile(outPath, track); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if strings.Contains(string(data), "old content") {
		t.Error("old content should be replaced")
	}
}

func TestWriteFileLeavesNoTempFiles(t *testing.T) {
	track := &Track{
		Entries: []Entry{
			{StartTime: time.Second, EndTime: 2 * time.Second, Text: "x"},
		},
	}

	tmpDir := t.TempDir()
	outPath := filepath.Join(tmpDir, "out.srt")
	if err := WriteFile(outPath, track); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("failed to read dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "out.srt" {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Errorf("expected only out.srt, found %v", names)
	}
}

func TestWriteFileCreatesDirectory(t *testing.T) {
	track := &Track{
		Entries: []Entry{
			{StartTime: time.Second, EndTime: 2 * time.Second, Text: "x"},
		},
	}

	tmpDir := t.TempDir()
	outPath := filepath.Join(tmpDir, "nested", "dir", "out.srt")
	if err := WriteFile(outPath, track); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := os.Stat(outPath); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}

func TestFormatSRTTime(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00:00,000"},
		{time.Millisecond, "00:00:00,001"},
		{time.Second, "00:00:01,000"},
		{time.Minute + 2*time.Second + 3*time.Millisecond, "00:01:02,003"},
		{10*time.Hour + 42*time.Minute, "10:42:00,000"},
	}

	for _, tt := range tests {
		if got := formatSRTTime(tt.d); got != tt.want {
			t.Errorf("formatSRTTime(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
