package translate

import (
	"context"
	"strings"
	"testing"
)

func TestFactoryReturnsOpenAITranslator(t *testing.T) {
	ctx := context.Background()
	opts := Options{TargetLanguage: "Spanish"}
	translator, err := Factory(ctx, ProviderOpenAI, "fake-key", opts)
	if err != nil {
		t.Fatalf("Factory(ProviderOpenAI) returned error: %v", err)
	}
	if _, ok := translator.(*OpenAITranslator); !ok {
		t.Errorf("expected *OpenAITranslator, got %T", translator)
	}
}

func TestFactoryReturnsAnthropicTranslator(t *testing.T) {
	ctx := context.Background()
	opts := Options{TargetLanguage: "French"}
	translator, err := Factory(ctx, ProviderAnthropic, "fake-key", opts)
	if err != nil {
		t.Fatalf("Factory(ProviderAnthropic) returned error: %v", err)
	}
	if _, ok := translator.(*AnthropicTranslator); !ok {
		t.Errorf("expected *AnthropicTranslator, got %T", translator)
	}
}

func TestFactoryReturnsGeminiTranslator(t *testing.T) {
	ctx := context.Background()
	opts := Options{TargetLanguage: "Japanese"}
	translator, err := Factory(ctx, ProviderGemini, "fake-key", opts)
	if err != nil {
		t.Fatalf("Factory(ProviderGemini) returned error: %v", err)
	}
	if _, ok := translator.(*GeminiTranslator); !ok {
		t.Errorf("expected *GeminiTranslator, got %T", translator)
	}
}

func TestFactoryRequiresTargetLanguage(t *testing.T) {
	ctx := context.Background()
	_, err := Factory(ctx, ProviderOpenAI, "fake-key", Options{})
	if err == nil {
		t.Error("expected error for missing target language")
	}
}

func TestFactoryRejectsUnknownProvider(t *testing.T) {
	ctx := context.Background()
	opts := Options{TargetLanguage: "French"}
	_, err := Factory(ctx, Provider("unknown"), "fake-key", opts)
	if err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestFactoryRequiresAPIKey(t *testing.T) {
	ctx := context.Background()
	opts := Options{TargetLanguage: "French"}
	for _, provider := range []Provider{ProviderOpenAI, ProviderAnthropic, ProviderGemini} {
		if _, err := Factory(ctx, provider, "", opts); err == nil {
			t.Errorf("%s: expected error for missing API key", provider)
		}
	}
}

func TestBuildPromptIncludesLanguages(t *testing.T) {
	opts := Options{InputLanguage: "English", TargetLanguage: "German"}
	prompt := BuildPrompt(opts, []Item{{Index: 0, Text: "Hello"}})

	if !strings.Contains(prompt, "English") {
		t.Error("prompt should mention the input language")
	}
	if !strings.Contains(prompt, "German") {
		t.Error("prompt should mention the target language")
	}
	if !strings.Contains(prompt, `"text": "Hello"`) {
		t.Error("prompt should carry the input items as JSON")
	}
}

func TestBuildPromptWithoutInputLanguage(t *testing.T) {
	opts := Options{TargetLanguage: "German"}
	prompt := BuildPrompt(opts, []Item{{Index: 0, Text: "Hello"}})

	if !strings.Contains(prompt, "Translate the following subtitle lines to German") {
		t.Errorf("unexpected prompt opening: %s", prompt[:80])
	}
}

func TestBuildPromptAppendsExtraInstructions(t *testing.T) {
	opts := Options{TargetLanguage: "German", Prompt: "Use formal address."}
	prompt := BuildPrompt(opts, []Item{{Index: 0, Text: "Hello"}})

	if !strings.Contains(prompt, "Use formal address.") {
		t.Error("prompt should carry the extra instructions")
	}
}

func TestOptionsDefaults(t *testing.T) {
	var opts Options
	if got := opts.batchSize(); got != DefaultBatchSize {
		t.Errorf("batchSize() = %d, want %d", got, DefaultBatchSize)
	}
	if got := opts.concurrency(); got != DefaultConcurrency {
		t.Errorf("concurrency() = %d, want %d", got, DefaultConcurrency)
	}

	opts = Options{BatchSize: 10, Concurrency: 5}
	if got := opts.batchSize(); got != 10 {
		t.Errorf("batchSize() = %d, want 10", got)
	}
	if got := opts.concurrency(); got != 5 {
		t.Errorf("concurrency() = %d, want 5", got)
	}
}
