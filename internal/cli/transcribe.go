package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"dualsub/internal/language"
	"dualsub/internal/transcribe"
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe [media file]",
	Short: "Transcribe audio to an SRT file with whisper",
	Long: `Transcribe the audio of a media file into an SRT subtitle file using
a local whisper installation.

The whisper binary and model can be set in the config file; flags take
precedence.

Examples:
  dualsub transcribe movie.mkv
  dualsub transcribe --language de --model turbo recording.mp3
  dualsub transcribe -o transcript.srt movie.mkv`,
	Args: cobra.ExactArgs(1),
	RunE: runTranscribe,
}

func init() {
	rootCmd.AddCommand(transcribeCmd)

	transcribeCmd.Flags().StringP("language", "l", "", "Spoken language (detected when unset)")
	transcribeCmd.Flags().String("model", "", "Whisper model to use")
}

func runTranscribe(cmd *cobra.Command, args []string) error {
	mediaPath := args[0]
	lang, _ := cmd.Flags().GetString("language")
	model, _ := cmd.Flags().GetString("model")
	outputPath, _ := cmd.Flags().GetString("output")

	if lang != "" {
		if normalized := language.ToISO2(lang); normalized != "" {
			lang = normalized
		}
	}
	if model == "" {
		model = cfg.Transcribe.Model
	}
	if outputPath == "" {
		base := strings.TrimSuffix(mediaPath, filepath.Ext(mediaPath))
		outputPath = base + ".srt"
	}

	var progress io.Writer
	if verbose {
		progress = os.Stderr
	}

	logger.Infow("Transcribing audio",
		"media", mediaPath,
		"language", lang,
		"model", model,
		"output", outputPath,
	)

	transcriber := transcribe.New(transcribe.Options{
		Language: lang,
		Model:    model,
		Binary:   cfg.Transcribe.Binary,
		Progress: progress,
	})
	resultPath, err := transcriber.Transcribe(cmd.Context(), mediaPath, outputPath)
	if err != nil {
		return err
	}

	absOutput, err := filepath.Abs(resultPath)
	if err != nil {
		absOutput = resultPath
	}

	fmt.Printf("Audio transcribed successfully: %s\n", absOutput)
	return nil
}
