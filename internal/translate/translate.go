package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// single text item to translate
type Item struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// translated text item
type Result struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// interface for text translation
type Translator interface {
	Translate(ctx context.Context, items []Item) ([]Result, error)
}

// translation service provider
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
	ProviderGemini    Provider = "gemini"
)

const (
	// DefaultBatchSize is the number of items sent per API request
	DefaultBatchSize = 50

	// DefaultConcurrency is the number of parallel API requests
	DefaultConcurrency = 3
)

type Options struct {
	InputLanguage  string
	TargetLanguage string
	Model          string
	Prompt         string // extra instructions appended to the prompt
	BaseURL        string // alternate API endpoint for compatible servers
	BatchSize      int    // items per API request (default DefaultBatchSize)
	Concurrency    int    // parallel API requests (default DefaultConcurrency)
}

func (o Options) batchSize() int {
	if o.BatchSize > 0 {
		return o.BatchSize
	}
	return DefaultBatchSize
}

func (o Options) concurrency() int {
	if o.Concurrency > 0 {
		return o.Concurrency
	}
	return DefaultConcurrency
}

// creates Translator based on provider
func Factory(
	ctx context.Context,
	provider Provider,
	apiKey string,
	opts Options,
) (Translator, error) {
	if opts.TargetLanguage == "" {
		return nil, fmt.Errorf("target language is required")
	}

	switch provider {
	case ProviderOpenAI:
		return NewOpenAITranslator(ctx, apiKey, opts)
	case ProviderAnthropic:
		return NewAnthropicTranslator(ctx, apiKey, opts)
	case ProviderGemini:
		return NewGeminiTranslator(ctx, apiKey, opts)
	default:
		return nil, fmt.Errorf("unsupported translation provider: %s", provider)
	}
}

// BuildPrompt creates the translation prompt shared by all providers
func BuildPrompt(opts Options, items []Item) string {
	var sb strings.Builder

	if opts.InputLanguage != "" {
		fmt.Fprintf(&sb,
			"Translate the following %s subtitle lines to %s.\n\n",
			opts.InputLanguage, opts.TargetLanguage,
		)
	} else {
		fmt.Fprintf(&sb,
			"Translate the following subtitle lines to %s.\n\n",
			opts.TargetLanguage,
		)
	}

	sb.WriteString("Rules:\n")
	sb.WriteString("1. Translate only the text content, keeping the meaning.\n")
	sb.WriteString("2. Keep formatting tags (like {\\an8} or <i>) unchanged.\n")
	sb.WriteString("3. Keep line breaks (\\N) in the same positions.\n")
	sb.WriteString("4. Return only a JSON array with the same structure.\n")
	sb.WriteString("5. Each object must have 'index' and 'text' fields.\n")
	sb.WriteString("6. The 'index' values must match the input exactly.\n")
	sb.WriteString("7. Do not add explanations or markdown formatting.\n\n")

	if opts.Prompt != "" {
		fmt.Fprintf(&sb, "Additional instructions: %s\n\n", opts.Prompt)
	}

	sb.WriteString("Input JSON:\n")
	inputJSON, _ := json.MarshalIndent(items, "", "  ")
	sb.Write(inputJSON)
	sb.WriteString("\n\nTranslated JSON array:")

	return sb.String()
}
