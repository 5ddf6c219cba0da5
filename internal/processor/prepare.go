package processor

import (
	"context"
	"fmt"
	"path/filepath"

	"codeberg.org/snonux/espada/internal/batch"
	"codeberg.org/snonux/espada/internal/cli"
	"codeberg.org/snonux/espada/internal/phonetic"
	"codeberg.org/snonux/espada/internal/prepare"
)

// Prepare joins the annotated dictionary with the IPA lookup and writes
// the pronunciation list that ProcessBatch reads.
func (p *Processor) Prepare(ctx context.Context) error {
	if len(p.flags.DictionaryFiles) == 0 {
		return fmt.Errorf("no dictionary files given, use --dictionary")
	}

	entries, err := prepare.ReadAnnotated(p.flags.DictionaryFiles...)
	if err != nil {
		return err
	}

	lookup, err := prepare.LoadLookup(p.flags.LookupFile)
	if err != nil {
		return err
	}

	preparer := prepare.NewPreparer(p.log, lookup).WithNormalize(p.flags.Normalize)
	var fetcher *phonetic.Fetcher
	if p.flags.FetchMissing {
		provider, err := p.phoneticProvider(ctx)
		if err != nil {
			return fmt.Errorf("failed to set up phonetic provider: %w", err)
		}
		fetcher = phonetic.NewFetcher(provider, phonetic.DefaultFetcherOptions())
		preparer.WithFetcher(fetcher)
	}

	p.printf("Preparing %d dictionary entries with %d lookup pronunciations\n", len(entries), len(lookup))
	rows, stats, err := preparer.Prepare(ctx, entries)
	if err != nil {
		return fmt.Errorf("prepare pronunciations: %w", err)
	}

	if err := batch.WritePronunciations(p.flags.PronunciationsFile, rows); err != nil {
		return err
	}

	// Fetched pronunciations use the lookup layout so they can be merged
	// into it and are not fetched again.
	if fetcher != nil && fetcher.Cache().Len() > 0 {
		path := filepath.Join(filepath.Dir(p.flags.PronunciationsFile), FetchedPronunciationsFile)
		if err := fetcher.Cache().Save(path); err != nil {
			return err
		}
		p.printf("Fetched pronunciations saved to: %s\n", path)
	}

	p.printf("\n=== Prepare Summary ===\n")
	p.printf("Dictionary entries: %d\n", stats.Entries)
	p.printf("Found in lookup: %d\n", stats.Matched)
	if p.flags.FetchMissing {
		p.printf("Fetched: %d\n", stats.Fetched)
	}
	p.printf("Without pronunciation: %d\n", stats.Missing)
	p.printf("=======================\n")
	p.printf("\nDone! Pronunciations saved to: %s\n", p.flags.PronunciationsFile)

	return nil
}

func (p *Processor) phoneticProvider(ctx context.Context) (phonetic.Provider, error) {
	if p.provider != nil {
		return p.provider, nil
	}
	return phonetic.NewProvider(ctx, phonetic.Config{
		Provider:    p.flags.PhoneticProvider,
		OpenAIKey:   cli.GetOpenAIKey(),
		OpenAIModel: p.flags.OpenAIModel,
		GeminiKey:   cli.GetGeminiKey(),
		GeminiModel: p.flags.GeminiModel,
	})
}
