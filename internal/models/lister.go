package models

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Lister handles listing available OpenAI models
type Lister struct {
	apiKey string
	client *openai.Client
}

// NewLister creates a new model lister
func NewLister(apiKey string) *Lister {
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
	}
}

// ChatModels returns the sorted ids of the chat models available to the key
func (l *Lister) ChatModels(ctx context.Context) ([]string, error) {
	if l.apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .espada.yaml")
	}

	models, err := l.client.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	ids := make([]string, 0, len(models.Models))
	for _, model := range models.Models {
		ids = append(ids, model.ID)
	}
	return FilterChatModels(ids), nil
}

// FilterChatModels keeps the chat-capable model ids, sorted
func FilterChatModels(ids []string) []string {
	chat := []string{}
	for _, id := range ids {
		switch {
		case strings.Contains(id, "tts"), strings.Contains(id, "audio"),
			strings.Contains(id, "realtime"), strings.Contains(id, "transcribe"):
			continue
		case strings.Contains(id, "gpt") || strings.Contains(id, "chat"):
			chat = append(chat, id)
		}
	}
	sort.Strings(chat)
	return chat
}

// PrintChatModels writes the available chat models to w
func (l *Lister) PrintChatModels(ctx context.Context, w io.Writer) error {
	chatModels, err := l.ChatModels(ctx)
	if err != nil {
		return err
	}
	return WriteModelList(w, chatModels)
}

// WriteModelList prints chat models, highlighting the current generations
// when the list is long.
func WriteModelList(w io.Writer, chatModels []string) error {
	var b strings.Builder
	b.WriteString("Chat models usable with --openai-model:\n")

	switch {
	case len(chatModels) == 0:
		b.WriteString("  No chat models found\n")
	case len(chatModels) > 10:
		relevant := 0
		for _, model := range chatModels {
			if strings.HasPrefix(model, "gpt-4") || strings.HasPrefix(model, "gpt-5") {
				fmt.Fprintf(&b, "  %s\n", model)
				relevant++
			}
		}
		fmt.Fprintf(&b, "  ... and %d more models\n", len(chatModels)-relevant)
	default:
		for _, model := range chatModels {
			fmt.Fprintf(&b, "  %s\n", model)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
