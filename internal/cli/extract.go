package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"dualsub/internal/video"
)

var extractCmd = &cobra.Command{
	Use:   "extract [video file]",
	Short: "Extract a subtitle stream from a video file",
	Long: `Extract a single subtitle stream from a video file into a standalone
subtitle file. Pick the stream by index (as shown by "dualsub list") or
by language; without a selector the first subtitle stream is extracted.

Text codecs are converted to SRT with --to-srt; bitmap codecs like PGS
are always copied in their native format.

Examples:
  dualsub extract movie.mkv
  dualsub extract --index 2 movie.mkv
  dualsub extract --language de --to-srt movie.mkv
  dualsub extract --language en -o english.srt movie.mkv`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().IntP("index", "i", -1, "Subtitle stream index to extract")
	extractCmd.Flags().StringP("language", "l", "", "Subtitle stream language to extract")
	extractCmd.Flags().Bool("to-srt", false, "Convert text subtitles to SRT")
}

func runExtract(cmd *cobra.Command, args []string) error {
	videoPath := args[0]
	index, _ := cmd.Flags().GetInt("index")
	lang, _ := cmd.Flags().GetString("language")
	toSRT, _ := cmd.Flags().GetBool("to-srt")
	outputPath, _ := cmd.Flags().GetString("output")

	if index >= 0 && lang != "" {
		return fmt.Errorf("use --index or --language, not both")
	}

	processor := video.NewProcessor()
	streams, err := processor.ListStreams(cmd.Context(), videoPath)
	if err != nil {
		return describeError(err)
	}

	stream, err := video.PickStream(streams, index, lang)
	if err != nil {
		return err
	}

	if outputPath == "" {
		outputPath = video.DefaultExtractPath(videoPath, stream, toSRT)
	}

	logger.Infow("Extracting subtitle stream",
		"video", videoPath,
		"stream", stream.Index,
		"language", stream.Language,
		"codec", stream.Codec,
		"output", outputPath,
	)

	if err := processor.ExtractFile(cmd.Context(), videoPath, stream, outputPath, toSRT); err != nil {
		return describeError(err)
	}

	absOutput, err := filepath.Abs(outputPath)
	if err != nil {
		absOutput = outputPath
	}

	fmt.Printf("Subtitle extracted successfully: %s\n", absOutput)
	return nil
}
