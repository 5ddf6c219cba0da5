package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"codeberg.org/snonux/espada/internal"
)

// RunFunc executes a command
type RunFunc func(cmd *cobra.Command, args []string) error

// Actions are the functions run by the sub-commands
type Actions struct {
	Transcribe RunFunc
	Prepare    RunFunc
	Chunk      RunFunc
	Models     RunFunc
}

// CreateRootCommand creates and configures the root cobra command. Running
// the root command without a sub-command transcribes.
func CreateRootCommand(flags *Flags, actions Actions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "espada [pronunciation...]",
		Short: "IPA to toolkit phonetic transcriber",
		Long: `espada transcribes IPA pronunciations into the toolkit notation.

It loads the IPA → toolkit mapping table, applies the versioned corrections,
and transcribes a batch of pronunciations, reporting every symbol that has
no mapping together with the first word it failed in.

Examples:
  espada                                  # Transcribe all_espada_mx_ipas.csv
  espada ɹeɪk                             # Transcribe a single pronunciation
  espada --batch words.txt --workers 4    # Transcribe "word = ipa" lines
  espada prepare --dictionary part1.csv   # Build the pronunciation list
  espada chunk cmudict.txt                # Split a word list into chunks`,
		Args:    cobra.ArbitraryArgs,
		Version: internal.Version,
		RunE:    actions.Transcribe,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			bindFlagsToViper(cmd)
			applyConfig(flags)
			return nil
		},
		SilenceUsage: true,
	}

	setupFlags(rootCmd, flags)

	transcribeCmd := &cobra.Command{
		Use:   "transcribe [pronunciation...]",
		Short: "Transcribe pronunciations into toolkit notation",
		Args:  cobra.ArbitraryArgs,
		RunE:  actions.Transcribe,
	}
	setupTranscribeFlags(transcribeCmd.Flags(), flags)

	prepareCmd := &cobra.Command{
		Use:   "prepare",
		Short: "Join the annotated dictionary with the IPA lookup",
		Long: `prepare reads the annotated dictionary parts, drops entries not used in
Mexico and writes word,phonemes,mx_ipa rows for every word found in the
IPA lookup.`,
		Args: cobra.NoArgs,
		RunE: actions.Prepare,
	}
	setupPrepareFlags(prepareCmd.Flags(), flags)

	chunkCmd := &cobra.Command{
		Use:   "chunk WORDLIST",
		Short: "Split a pronunciation dictionary into word list chunks",
		Args:  cobra.ExactArgs(1),
		RunE:  actions.Chunk,
	}
	chunkCmd.Flags().IntVar(&flags.ChunkSize, "size", flags.ChunkSize, "Words per chunk file")
	chunkCmd.Flags().StringVar(&flags.ChunkPrefix, "prefix", flags.ChunkPrefix, "Chunk file name prefix")

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "List OpenAI chat models usable for fetching pronunciations",
		Args:  cobra.NoArgs,
		RunE:  actions.Models,
	}

	rootCmd.AddCommand(transcribeCmd, prepareCmd, chunkCmd, modelsCmd)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.espada.yaml)")
	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&flags.LogFormat, "log-format", flags.LogFormat, "Log format: text or json")
	cmd.PersistentFlags().StringVarP(&flags.OutputDir, "output", "o", flags.OutputDir, "Output directory")

	// Local flags
	setupTranscribeFlags(cmd.Flags(), flags)
}

func setupTranscribeFlags(fs *pflag.FlagSet, flags *Flags) {
	fs.StringVar(&flags.TableFile, "table", flags.TableFile, "IPA → toolkit mapping table (CSV with IPA and Toolkit columns)")
	fs.StringVar(&flags.PronunciationsFile, "pronunciations", flags.PronunciationsFile, "Pronunciation list (CSV with word, phonemes and mx_ipa columns)")
	fs.StringVar(&flags.BatchFile, "batch", "", "Transcribe pronunciations from a text file (\"word = ipa\" per line)")
	fs.IntVarP(&flags.Workers, "workers", "w", flags.Workers, "Number of parallel transcription workers")
	fs.StringVar(&flags.SQLitePath, "sqlite", "", "Also store the run in this SQLite database")
	fs.BoolVar(&flags.Archive, "archive", false, "Move an existing output directory to the archive before writing")
}

func setupPrepareFlags(fs *pflag.FlagSet, flags *Flags) {
	fs.StringSliceVar(&flags.DictionaryFiles, "dictionary", nil, "Annotated dictionary CSV parts (Entry, MainBase, MX columns), in order")
	fs.StringVar(&flags.LookupFile, "lookup", flags.LookupFile, "JSON lookup of word → IPA")
	fs.StringVar(&flags.PronunciationsFile, "pronunciations", flags.PronunciationsFile, "Pronunciation list to write")
	fs.BoolVar(&flags.Normalize, "normalize", flags.Normalize, "Clean IPA strings before writing them")
	fs.BoolVar(&flags.FetchMissing, "fetch-missing", false, "Fetch pronunciations missing from the lookup")

	fs.StringVar(&flags.PhoneticProvider, "provider", flags.PhoneticProvider, "Phonetic provider for --fetch-missing: openai or gemini")
	fs.StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model used for fetching pronunciations")
	fs.StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model used for fetching pronunciations")
}
