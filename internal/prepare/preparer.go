package prepare

import (
	"context"
	"log/slog"

	"codeberg.org/snonux/espada/internal/batch"
	"codeberg.org/snonux/espada/internal/normalize"
)

// IPAFetcher supplies pronunciations for words missing from the lookup
type IPAFetcher interface {
	Fetch(ctx context.Context, word string) (string, error)
}

// Stats counts what happened to the entries during Prepare
type Stats struct {
	Entries int
	Matched int
	Fetched int
	Missing int
}

// Preparer turns dictionary entries into pronunciation rows
type Preparer struct {
	log       *slog.Logger
	lookup    Lookup
	fetcher   IPAFetcher
	normalize bool
}

// NewPreparer creates a preparer backed by lookup
func NewPreparer(log *slog.Logger, lookup Lookup) *Preparer {
	return &Preparer{log: log, lookup: lookup, normalize: true}
}

// WithFetcher enables fetching pronunciations missing from the lookup
func (p *Preparer) WithFetcher(f IPAFetcher) *Preparer {
	p.fetcher = f
	return p
}

// WithNormalize toggles IPA normalisation
func (p *Preparer) WithNormalize(enabled bool) *Preparer {
	p.normalize = enabled
	return p
}

// Prepare joins entries with the lookup in entry order. Entries without a
// pronunciation are skipped; a fetch failure skips only that entry.
// Words with several pronunciations keep the lookup's raw string and are
// not split. A cancelled context stops the join and returns its error.
func (p *Preparer) Prepare(ctx context.Context, entries []Entry) ([]batch.Row, Stats, error) {
	stats := Stats{Entries: len(entries)}
	rows := make([]batch.Row, 0, len(entries))

	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}

		ipa, ok := p.lookup.Get(e.Word)
		switch {
		case ok:
			stats.Matched++
		case p.fetcher != nil:
			fetched, err := p.fetcher.Fetch(ctx, e.Word)
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, stats, ctxErr
			}
			if err != nil {
				p.log.Warn("could not fetch pronunciation",
					slog.String("word", e.Word),
					slog.String("error", err.Error()),
				)
				stats.Missing++
				continue
			}
			ipa = fetched
			stats.Fetched++
		default:
			stats.Missing++
			continue
		}

		if p.normalize {
			ipa = normalize.IPA(ipa)
		}
		rows = append(rows, batch.Row{Word: e.Word, Phonemes: e.Phonemes, IPA: ipa})
	}

	return rows, stats, nil
}
