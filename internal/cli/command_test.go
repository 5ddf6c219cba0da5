package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags, Actions{})

	// Test basic command properties
	if cmd.Use != "espada [pronunciation...]" {
		t.Errorf("Expected Use to be 'espada [pronunciation...]', got %s", cmd.Use)
	}

	if !strings.Contains(cmd.Short, "toolkit") {
		t.Errorf("Expected Short description to mention 'toolkit'")
	}

	persistent := []string{"config", "log-level", "log-format", "output"}
	for _, name := range persistent {
		t.Run("persistent_"+name, func(t *testing.T) {
			if cmd.PersistentFlags().Lookup(name) == nil {
				t.Errorf("Expected persistent flag %s to exist", name)
			}
		})
	}

	local := []string{"table", "pronunciations", "batch", "workers", "sqlite", "archive"}
	for _, name := range local {
		t.Run("flag_"+name, func(t *testing.T) {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("Expected flag %s to exist", name)
			}
		})
	}

	subcommands := map[string][]string{
		"transcribe": {"table", "pronunciations", "batch", "workers", "sqlite", "archive"},
		"prepare":    {"dictionary", "lookup", "pronunciations", "normalize", "fetch-missing", "provider", "openai-model", "gemini-model"},
		"chunk":      {"size", "prefix"},
		"models":     nil,
	}
	for name, flagNames := range subcommands {
		t.Run("command_"+name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			if err != nil || sub == cmd {
				t.Fatalf("Expected sub-command %s to exist", name)
			}
			for _, f := range flagNames {
				if sub.Flags().Lookup(f) == nil {
					t.Errorf("Expected flag %s on %s", f, name)
				}
			}
		})
	}
}

func TestSetupFlags(t *testing.T) {
	cmd := &cobra.Command{}
	flags := NewFlags()

	setupFlags(cmd, flags)

	outputFlag := cmd.PersistentFlags().Lookup("output")
	if outputFlag == nil {
		t.Fatal("output flag not found")
	}
	if outputFlag.DefValue != "output" {
		t.Errorf("Expected default output dir to be output, got %s", outputFlag.DefValue)
	}

	workersFlag := cmd.Flags().Lookup("workers")
	if workersFlag == nil {
		t.Fatal("workers flag not found")
	}
	if workersFlag.DefValue != "1" {
		t.Errorf("Expected default workers to be 1, got %s", workersFlag.DefValue)
	}
}

func TestRunDispatch(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "root transcribes", args: []string{"kasa"}, want: "transcribe"},
		{name: "transcribe", args: []string{"transcribe", "kasa"}, want: "transcribe"},
		{name: "prepare", args: []string{"prepare"}, want: "prepare"},
		{name: "chunk", args: []string{"chunk", "words.txt"}, want: "chunk"},
		{name: "models", args: []string{"models"}, want: "models"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper(t)

			var called string
			record := func(name string) RunFunc {
				return func(cmd *cobra.Command, args []string) error {
					called = name
					return nil
				}
			}

			cmd := CreateRootCommand(NewFlags(), Actions{
				Transcribe: record("transcribe"),
				Prepare:    record("prepare"),
				Chunk:      record("chunk"),
				Models:     record("models"),
			})
			cmd.SetOut(io.Discard)
			cmd.SetErr(io.Discard)
			cmd.SetArgs(tt.args)

			if err := cmd.Execute(); err != nil {
				t.Fatalf("Execute failed: %v", err)
			}
			if called != tt.want {
				t.Errorf("Expected %s to run, got %q", tt.want, called)
			}
		})
	}
}

func TestFlagAndConfigPrecedence(t *testing.T) {
	resetViper(t)

	cfgPath := filepath.Join(t.TempDir(), "espada.yaml")
	content := `output:
  directory: /cfg/output
transcribe:
  workers: 3
  table: cfg_table.csv
`
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test config: %v", err)
	}
	viper.SetConfigFile(cfgPath)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("Failed to read config: %v", err)
	}

	flags := NewFlags()
	cmd := CreateRootCommand(flags, Actions{
		Transcribe: func(cmd *cobra.Command, args []string) error { return nil },
	})
	cmd.SetOut(io.Discard)
	cmd.SetArgs([]string{"transcribe", "--workers", "5"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if flags.Workers != 5 {
		t.Errorf("Expected flag to override config, got workers=%d", flags.Workers)
	}
	if flags.OutputDir != "/cfg/output" {
		t.Errorf("Expected output dir from config, got %s", flags.OutputDir)
	}
	if flags.TableFile != "cfg_table.csv" {
		t.Errorf("Expected table from config, got %s", flags.TableFile)
	}
	if flags.PronunciationsFile != "all_espada_mx_ipas.csv" {
		t.Errorf("Expected default pronunciations file, got %s", flags.PronunciationsFile)
	}
}
