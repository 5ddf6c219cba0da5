package phonetic

import (
	"context"
	"fmt"
)

// Provider returns a raw IPA transcription for a word
type Provider interface {
	// FetchIPA asks the provider for the pronunciation of word in language
	FetchIPA(ctx context.Context, word, language string) (string, error)

	// Name returns the provider name
	Name() string
}

// Config selects and configures a provider
type Config struct {
	Provider    string // "openai" or "gemini"
	OpenAIKey   string
	OpenAIModel string
	GeminiKey   string
	GeminiModel string
}

// NewProvider creates the provider named in config
func NewProvider(ctx context.Context, config Config) (Provider, error) {
	switch config.Provider {
	case "openai", "":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return NewOpenAIProvider(config.OpenAIKey, config.OpenAIModel), nil

	case "gemini":
		return NewGeminiProvider(ctx, config.GeminiKey, config.GeminiModel)

	default:
		return nil, fmt.Errorf("unknown phonetic provider: %s", config.Provider)
	}
}

func systemPrompt(language string) string {
	return fmt.Sprintf("You are a %s phonetics expert. Reply with the broad IPA transcription of the given word only: no slashes, no brackets, no stress marks, no explanation.", language)
}

func userPrompt(word string) string {
	return fmt.Sprintf("Word: %s", word)
}
