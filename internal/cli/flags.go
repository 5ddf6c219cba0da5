package cli

import (
	"codeberg.org/snonux/espada/internal/batch"
	"codeberg.org/snonux/espada/internal/phonetic"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile   string
	LogLevel  string
	LogFormat string
	OutputDir string

	// Transcribe flags
	TableFile          string
	PronunciationsFile string
	BatchFile          string
	Workers            int
	SQLitePath         string
	Archive            bool

	// Prepare flags
	DictionaryFiles []string
	LookupFile      string
	Normalize       bool
	FetchMissing    bool

	// Phonetic provider flags
	PhoneticProvider string
	OpenAIModel      string
	GeminiModel      string

	// Chunk flags
	ChunkSize   int
	ChunkPrefix string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		LogLevel:           "info",
		LogFormat:          "text",
		OutputDir:          "output",
		TableFile:          "english_transcriptions.csv",
		PronunciationsFile: "all_espada_mx_ipas.csv",
		Workers:            1,
		LookupFile:         "es_MX.json",
		Normalize:          true,
		PhoneticProvider:   "openai",
		OpenAIModel:        "gpt-4o-mini",
		GeminiModel:        phonetic.DefaultGeminiModel,
		ChunkSize:          batch.DefaultChunkSize,
		ChunkPrefix:        "espada_words",
	}
}
