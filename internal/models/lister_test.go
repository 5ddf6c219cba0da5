package models

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"reflect"
	"strings"
	"testing"
)

func TestNewLister(t *testing.T) {
	lister := NewLister("test-api-key")

	if lister == nil {
		t.Fatal("NewLister returned nil")
	}

	if lister.apiKey != "test-api-key" {
		t.Errorf("Expected API key 'test-api-key', got '%s'", lister.apiKey)
	}

	if lister.client == nil {
		t.Error("OpenAI client not initialized")
	}
}

func TestChatModels_NoAPIKey(t *testing.T) {
	lister := NewLister("")

	_, err := lister.ChatModels(context.Background())
	if err == nil {
		t.Fatal("Expected error for missing API key")
	}

	expectedError := "OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .espada.yaml"
	if err.Error() != expectedError {
		t.Errorf("Expected error '%s', got: %v", expectedError, err)
	}
}

func TestFilterChatModels(t *testing.T) {
	ids := []string{"tts-1", "gpt-4o-mini", "dall-e-3", "gpt-4o-audio-preview", "chatgpt-4o-latest", "gpt-3.5-turbo", "whisper-1"}

	got := FilterChatModels(ids)
	want := []string{"chatgpt-4o-latest", "gpt-3.5-turbo", "gpt-4o-mini"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FilterChatModels() = %v, want %v", got, want)
	}
}

func TestWriteModelList(t *testing.T) {
	tests := []struct {
		name     string
		models   []string
		contains []string
		excludes []string
	}{
		{
			name:     "empty",
			models:   nil,
			contains: []string{"No chat models found"},
		},
		{
			name:     "short list",
			models:   []string{"gpt-3.5-turbo", "gpt-4o"},
			contains: []string{"  gpt-3.5-turbo\n", "  gpt-4o\n"},
		},
		{
			name: "long list",
			models: func() []string {
				var m []string
				for i := 0; i < 10; i++ {
					m = append(m, fmt.Sprintf("gpt-3.5-turbo-%d", i))
				}
				return append(m, "gpt-4o")
			}(),
			contains: []string{"  gpt-4o\n", "... and 10 more models"},
			excludes: []string{"gpt-3.5-turbo-0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteModelList(&buf, tt.models); err != nil {
				t.Fatalf("WriteModelList failed: %v", err)
			}
			out := buf.String()
			for _, s := range tt.contains {
				if !strings.Contains(out, s) {
					t.Errorf("output missing %q:\n%s", s, out)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(out, s) {
					t.Errorf("output unexpectedly contains %q:\n%s", s, out)
				}
			}
		})
	}
}

func TestPrintChatModels_Integration(t *testing.T) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	var buf bytes.Buffer
	if err := NewLister(apiKey).PrintChatModels(context.Background(), &buf); err != nil {
		t.Errorf("PrintChatModels failed: %v", err)
	}
}
