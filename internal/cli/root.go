package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"dualsub/internal/config"
	ffmpegbin "dualsub/internal/ffmpeg"
	"dualsub/internal/logging"
	"dualsub/internal/video"
)

var (
	verbose    bool
	quiet      bool
	configPath string
	logger     *logging.Logger
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "dualsub",
	Short: "Bilingual subtitle toolkit for video files",
	Long: `Dualsub inspects, extracts, and merges subtitle streams from video
files, aligning two languages into a single bilingual SRT track.

It can also transcribe audio with a local whisper installation and
translate subtitle files with AI providers.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose && quiet {
			return fmt.Errorf("--verbose and --quiet cannot be combined")
		}
		logger = logging.NewLogger(verbose, quiet)

		loaded, path, exists, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		if exists {
			logger.Debugw("Loaded config file", "path", path)
		}

		ffmpegbin.Configure(cfg.FFmpegPath, cfg.FFprobePath)
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Only log errors")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Config file path (default is the user config directory)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
}

// describeError surfaces captured tool output in debug logs before the error
// bubbles up to cobra
func describeError(err error) error {
	var extractionErr *video.ExtractionError
	if errors.As(err, &extractionErr) && extractionErr.Stderr != "" {
		logger.Debugw("Tool output", "stderr", extractionErr.Stderr)
	}
	return err
}
