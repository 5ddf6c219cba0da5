package processor

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"codeberg.org/snonux/espada/internal/cli"
	"codeberg.org/snonux/espada/internal/mapping"
	"codeberg.org/snonux/espada/internal/models"
	"codeberg.org/snonux/espada/internal/phonetic"
	"codeberg.org/snonux/espada/internal/transcoder"
)

// Output file names. The fetched pronunciations are written next to the
// pronunciation list, the others into the output directory.
const (
	AllTranscriptionsFile     = "mx_with_toolkit.csv"
	ValidTranscriptionsFile   = "valid_mx_transcriptions.csv"
	FetchedPronunciationsFile = "fetched_ipa.json"
)

// Processor handles the main transcription logic
type Processor struct {
	flags *cli.Flags
	log   *slog.Logger
	out   io.Writer

	// provider overrides the configured phonetic provider
	provider phonetic.Provider
}

// NewProcessor creates a new processor printing to stdout
func NewProcessor(flags *cli.Flags, log *slog.Logger) *Processor {
	return &Processor{
		flags: flags,
		log:   log,
		out:   os.Stdout,
	}
}

// SetOutput redirects console output
func (p *Processor) SetOutput(w io.Writer) {
	p.out = w
}

// SetProvider sets the phonetic provider used by Prepare with FetchMissing
func (p *Processor) SetProvider(provider phonetic.Provider) {
	p.provider = provider
}

// LoadTranscoder loads the mapping table, applies the configured ruleset
// and returns a transcoder together with the ruleset version.
func (p *Processor) LoadTranscoder() (*transcoder.Transcoder, string, error) {
	base, err := mapping.LoadCSV(p.flags.TableFile)
	if err != nil {
		return nil, "", err
	}

	rs, err := cli.LoadRuleset()
	if err != nil {
		return nil, "", err
	}

	tables := mapping.Build(base, rs)
	for _, u := range tables.Unreachable {
		p.log.Warn("override must be exactly two symbols, entry can never match",
			slog.String("ipa", u.IPA),
			slog.Int("symbols", utf8.RuneCountInString(u.IPA)),
			slog.String("toolkit", u.Toolkit),
		)
	}
	p.log.Debug("mapping table loaded",
		slog.String("table", p.flags.TableFile),
		slog.String("ruleset", tables.Version),
		slog.Int("symbols", len(tables.Symbols)),
		slog.Int("overrides", tables.Overrides.Len()),
	)

	return transcoder.FromTables(tables), tables.Version, nil
}

// ListModels prints the OpenAI chat models usable for fetching
func (p *Processor) ListModels(ctx context.Context) error {
	return models.NewLister(cli.GetOpenAIKey()).PrintChatModels(ctx, p.out)
}

func (p *Processor) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}
