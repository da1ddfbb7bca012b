package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"dualsub/internal/language"
	"dualsub/internal/merge"
	"dualsub/internal/subtitle"
	"dualsub/internal/video"
)

var mergeCmd = &cobra.Command{
	Use:   "merge [video file]",
	Short: "Merge two subtitle streams into one bilingual track",
	Long: `Merge subtitle streams from a video file into a single bilingual SRT
file. Entries are aligned by time overlap: secondary lines are appended
below the primary line they overlap with, and unmatched lines are kept
on their own.

Without selectors the first two subtitle streams are merged. Streams can
be picked by index or by language; the first selected stream drives the
timing of merged entries.

Examples:
  dualsub merge movie.mkv
  dualsub merge --languages en,de movie.mkv
  dualsub merge --indices 0,2 -o bilingual.srt movie.mkv`,
	Args: cobra.ExactArgs(1),
	RunE: runMerge,
}

func init() {
	rootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().IntSlice("indices", nil, "Subtitle stream indices to merge")
	mergeCmd.Flags().StringSlice("languages", nil, "Subtitle stream languages to merge")
	mergeCmd.Flags().Bool("first-match-only", false, "Attach secondary lines to a single primary entry")
}

func runMerge(cmd *cobra.Command, args []string) error {
	videoPath := args[0]
	indices, _ := cmd.Flags().GetIntSlice("indices")
	langs, _ := cmd.Flags().GetStringSlice("languages")
	firstMatchOnly, _ := cmd.Flags().GetBool("first-match-only")
	outputPath, _ := cmd.Flags().GetString("output")

	processor := video.NewProcessor()
	streams, err := processor.ListStreams(cmd.Context(), videoPath)
	if err != nil {
		return describeError(err)
	}

	selected, err := video.SelectStreams(streams, indices, language.NormalizeList(langs))
	if err != nil {
		return err
	}

	tracks := make([]*subtitle.Track, 0, len(selected))
	for _, stream := range selected {
		logger.Infow("Extracting subtitle stream",
			"video", videoPath,
			"stream", stream.Index,
			"language", stream.Language,
		)
		track, err := processor.Extract(cmd.Context(), videoPath, stream)
		if err != nil {
			return describeError(err)
		}
		tracks = append(tracks, track)
	}

	merged, err := merge.Tracks(tracks[0], tracks[1:], merge.Options{FirstMatchOnly: firstMatchOnly})
	if err != nil {
		return err
	}

	if outputPath == "" {
		outputPath = mergeOutputPath(videoPath, selected)
	}

	if err := subtitle.WriteFile(outputPath, merged); err != nil {
		return err
	}

	absOutput, err := filepath.Abs(outputPath)
	if err != nil {
		absOutput = outputPath
	}

	fmt.Printf("Subtitles merged successfully: %s\n", absOutput)
	fmt.Printf("  Streams: %d\n", len(selected))
	fmt.Printf("  Entries: %d\n", len(merged.Entries))
	return nil
}

// mergeOutputPath names the merged file after the source languages, e.g.
// movie.en-de.merged.srt
func mergeOutputPath(videoPath string, streams []video.Stream) string {
	codes := make([]string, 0, len(streams))
	for _, stream := range streams {
		codes = append(codes, language.Code(stream.Language))
	}
	base := strings.TrimSuffix(videoPath, filepath.Ext(videoPath))
	return fmt.Sprintf("%s.%s.merged.srt", base, strings.Join(codes, "-"))
}
