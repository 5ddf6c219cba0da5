package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/espada/internal/mapping"
)

// configKeys maps viper keys to flag names
var configKeys = map[string]string{
	"log.level":                 "log-level",
	"log.format":                "log-format",
	"output.directory":          "output",
	"transcribe.table":          "table",
	"transcribe.pronunciations": "pronunciations",
	"transcribe.workers":        "workers",
	"transcribe.sqlite":         "sqlite",
	"prepare.dictionaries":      "dictionary",
	"prepare.lookup":            "lookup",
	"prepare.normalize":         "normalize",
	"prepare.fetch_missing":     "fetch-missing",
	"phonetic.provider":         "provider",
	"phonetic.openai_model":     "openai-model",
	"phonetic.gemini_model":     "gemini-model",
	"chunk.size":                "size",
	"chunk.prefix":              "prefix",
}

func bindFlagsToViper(cmd *cobra.Command) {
	for key, name := range configKeys {
		if flag := cmd.Flags().Lookup(name); flag != nil {
			viper.BindPFlag(key, flag)
		}
	}
}

// applyConfig copies configured values into flags. An explicitly set flag
// wins over the config file, which wins over the flag default.
func applyConfig(flags *Flags) {
	setString := func(key string, target *string) {
		if viper.IsSet(key) {
			*target = viper.GetString(key)
		}
	}
	setInt := func(key string, target *int) {
		if viper.IsSet(key) {
			*target = viper.GetInt(key)
		}
	}
	setBool := func(key string, target *bool) {
		if viper.IsSet(key) {
			*target = viper.GetBool(key)
		}
	}

	setString("log.level", &flags.LogLevel)
	setString("log.format", &flags.LogFormat)
	setString("output.directory", &flags.OutputDir)
	setString("transcribe.table", &flags.TableFile)
	setString("transcribe.pronunciations", &flags.PronunciationsFile)
	setInt("transcribe.workers", &flags.Workers)
	setString("transcribe.sqlite", &flags.SQLitePath)
	setString("prepare.lookup", &flags.LookupFile)
	setBool("prepare.normalize", &flags.Normalize)
	setBool("prepare.fetch_missing", &flags.FetchMissing)
	setString("phonetic.provider", &flags.PhoneticProvider)
	setString("phonetic.openai_model", &flags.OpenAIModel)
	setString("phonetic.gemini_model", &flags.GeminiModel)
	setInt("chunk.size", &flags.ChunkSize)
	setString("chunk.prefix", &flags.ChunkPrefix)

	if viper.IsSet("prepare.dictionaries") {
		flags.DictionaryFiles = viper.GetStringSlice("prepare.dictionaries")
	}
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".espada" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".espada")
	}

	// Environment variables, e.g. ESPADA_OUTPUT_DIRECTORY
	viper.SetEnvPrefix("ESPADA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("phonetic.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("phonetic.gemini_key")
}

// LoadRuleset returns the built-in correction ruleset with any part
// replaced by the corresponding corrections.* config key.
func LoadRuleset() (mapping.Ruleset, error) {
	rs := mapping.DefaultRuleset()

	if viper.IsSet("corrections.version") {
		rs.Version = viper.GetString("corrections.version")
	}
	if viper.IsSet("corrections.remove") {
		rs.Remove = viper.GetStringSlice("corrections.remove")
	}

	pairs := []struct {
		key    string
		target *[]mapping.Pair
	}{
		{"corrections.set", &rs.Set},
		{"corrections.prepend", &rs.Prepend},
	}
	for _, p := range pairs {
		if !viper.IsSet(p.key) {
			continue
		}
		var decoded []mapping.Pair
		if err := viper.UnmarshalKey(p.key, &decoded); err != nil {
			return mapping.Ruleset{}, fmt.Errorf("invalid %s: %w", p.key, err)
		}
		*p.target = decoded
	}

	return rs, nil
}
