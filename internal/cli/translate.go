package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"dualsub/internal/language"
	"dualsub/internal/subtitle"
	"dualsub/internal/translate"
)

var translateCmd = &cobra.Command{
	Use:   "translate [subtitle file]",
	Short: "Translate an SRT file with an AI provider",
	Long: `Translate an SRT subtitle file to another language using an AI
provider (OpenAI, Anthropic, or Gemini).

With --overlay the translation is placed above the original line in
each entry, producing a bilingual subtitle file.

The API key is read from --api-key or from the provider's environment
variable (OPENAI_API_KEY, ANTHROPIC_API_KEY, GEMINI_API_KEY).

Examples:
  dualsub translate --language de movie.en.srt
  dualsub translate --language fr --overlay movie.en.srt
  dualsub translate --language es --provider anthropic movie.en.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringP("language", "l", "", "Target language (required)")
	translateCmd.Flags().String("input-language", "", "Source language hint for the model")
	translateCmd.Flags().Bool("overlay", false, "Keep the original line below the translation")
	translateCmd.Flags().StringP("api-key", "k", "", "API key for the translation provider")
	translateCmd.Flags().String("provider", "", "Translation provider: openai, anthropic, or gemini")
	translateCmd.Flags().String("model", "", "Model to use for translation")
	translateCmd.Flags().String("base-url", "", "Override the provider API base URL")
	translateCmd.Flags().Int("batch-size", 0, "Subtitle entries per translation request")
	translateCmd.Flags().Int("concurrency", 0, "Concurrent translation requests")
	translateCmd.Flags().String("prompt", "", "Additional instructions for the model")
	translateCmd.MarkFlagRequired("language")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]
	targetLang, _ := cmd.Flags().GetString("language")
	inputLang, _ := cmd.Flags().GetString("input-language")
	overlay, _ := cmd.Flags().GetBool("overlay")
	apiKey, _ := cmd.Flags().GetString("api-key")
	provider, _ := cmd.Flags().GetString("provider")
	model, _ := cmd.Flags().GetString("model")
	baseURL, _ := cmd.Flags().GetString("base-url")
	batchSize, _ := cmd.Flags().GetInt("batch-size")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	prompt, _ := cmd.Flags().GetString("prompt")
	outputPath, _ := cmd.Flags().GetString("output")

	if provider == "" {
		provider = cfg.Translate.Provider
	}
	if model == "" {
		model = cfg.Translate.Model
	}
	if baseURL == "" {
		baseURL = cfg.Translate.BaseURL
	}
	if batchSize == 0 {
		batchSize = cfg.Translate.BatchSize
	}
	if concurrency == 0 {
		concurrency = cfg.Translate.Concurrency
	}

	if batchSize < 0 {
		return fmt.Errorf("batch size must be positive, got %d", batchSize)
	}
	if concurrency < 0 {
		return fmt.Errorf("concurrency must be positive, got %d", concurrency)
	}
	if inputLang != "" && language.Matches(inputLang, targetLang) {
		return fmt.Errorf("input and target language are the same: %s", targetLang)
	}

	if apiKey == "" {
		envVar := apiKeyEnvVar(provider)
		if envVar != "" {
			apiKey = os.Getenv(envVar)
		}
		if apiKey == "" {
			return fmt.Errorf("API key is required: use --api-key or set %s", envVar)
		}
	}

	track, err := subtitle.ParseFile(subtitlePath)
	if err != nil {
		return err
	}
	if len(track.Entries) == 0 {
		return fmt.Errorf("%s: %w", subtitlePath, subtitle.ErrEmptyTrack)
	}

	opts := translate.Options{
		InputLanguage:  promptLanguage(inputLang),
		TargetLanguage: promptLanguage(targetLang),
		Model:          model,
		Prompt:         prompt,
		BaseURL:        baseURL,
		BatchSize:      batchSize,
		Concurrency:    concurrency,
	}
	translator, err := translate.Factory(cmd.Context(), translate.Provider(provider), apiKey, opts)
	if err != nil {
		return err
	}

	items := make([]translate.Item, 0, len(track.Entries))
	for i, entry := range track.Entries {
		items = append(items, translate.Item{Index: i, Text: entry.Text})
	}

	logger.Infow("Translating subtitles",
		"file", subtitlePath,
		"entries", len(items),
		"provider", provider,
		"target", targetLang,
	)

	results, err := translator.Translate(cmd.Context(), items)
	if err != nil {
		return err
	}

	for _, result := range results {
		if result.Index < 0 || result.Index >= len(track.Entries) {
			logger.Warnw("Skipping invalid result index", "index", result.Index)
			continue
		}
		if overlay {
			track.Entries[result.Index].Text = result.Text + "\n" + track.Entries[result.Index].Text
		} else {
			track.Entries[result.Index].Text = result.Text
		}
	}

	if outputPath == "" {
		outputPath = translateOutputPath(subtitlePath, targetLang, overlay)
	}

	if err := subtitle.WriteFile(outputPath, track); err != nil {
		return err
	}

	absOutput, err := filepath.Abs(outputPath)
	if err != nil {
		absOutput = outputPath
	}

	fmt.Printf("Subtitles translated successfully: %s\n", absOutput)
	fmt.Printf("  Entries: %d\n", len(track.Entries))
	fmt.Printf("  Target language: %s\n", language.DisplayName(targetLang))
	if overlay {
		fmt.Printf("  Mode: bilingual overlay\n")
	}
	return nil
}

// apiKeyEnvVar names the environment variable holding the provider's API key
func apiKeyEnvVar(provider string) string {
	switch translate.Provider(provider) {
	case translate.ProviderOpenAI:
		return "OPENAI_API_KEY"
	case translate.ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	case translate.ProviderGemini:
		return "GEMINI_API_KEY"
	default:
		return ""
	}
}

// promptLanguage resolves a language identifier to the name used in the
// model prompt, passing unknown values through as given
func promptLanguage(lang string) string {
	if lang == "" {
		return ""
	}
	if language.Known(lang) {
		return language.DisplayName(lang)
	}
	return lang
}

// translateOutputPath names the translated file after the target language,
// e.g. movie.de.srt or movie.de.overlay.srt
func translateOutputPath(subtitlePath, targetLang string, overlay bool) string {
	base := strings.TrimSuffix(subtitlePath, filepath.Ext(subtitlePath))
	code := language.Code(targetLang)
	if overlay {
		return fmt.Sprintf("%s.%s.overlay.srt", base, code)
	}
	return fmt.Sprintf("%s.%s.srt", base, code)
}
