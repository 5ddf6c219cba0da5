package processor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"codeberg.org/snonux/espada/internal"
	"codeberg.org/snonux/espada/internal/archive"
	"codeberg.org/snonux/espada/internal/batch"
	"codeberg.org/snonux/espada/internal/diagnostics"
	"codeberg.org/snonux/espada/internal/store"
	"codeberg.org/snonux/espada/internal/transcoder"
)

// ProcessBatch transcribes the pronunciation list, or the batch file when
// one is given, and writes the results to the output directory.
func (p *Processor) ProcessBatch(ctx context.Context) error {
	var (
		rows   []batch.Row
		err    error
		source string
	)
	if p.flags.BatchFile != "" {
		source = p.flags.BatchFile
		rows, err = batch.ReadBatchFile(source)
	} else {
		source = p.flags.PronunciationsFile
		rows, err = batch.ReadPronunciations(source)
	}
	if err != nil {
		return err
	}

	tr, version, err := p.LoadTranscoder()
	if err != nil {
		return err
	}

	if p.flags.Archive {
		archived, err := archive.ArchiveOutputs(p.flags.OutputDir)
		switch {
		case err == nil:
			p.printf("Previous outputs archived to: %s\n", archived)
		case errors.Is(err, fs.ErrNotExist):
			p.log.Debug("nothing to archive", slog.String("dir", p.flags.OutputDir))
		default:
			return fmt.Errorf("failed to archive outputs: %w", err)
		}
	}

	started := time.Now()
	p.printf("Transcribing %d pronunciations from %s (ruleset %s)\n", len(rows), source, version)

	results, err := p.transcribeAll(ctx, tr, rows)
	if err != nil {
		return err
	}

	ledger := p.record(rows, results)
	report := ledger.Report()
	p.printf("\n")
	if _, err := report.WriteTo(p.out); err != nil {
		return err
	}

	toolkit := make([]string, len(results))
	for i, res := range results {
		if res.OK() {
			toolkit[i] = res.Toolkit
		}
	}

	allPath := filepath.Join(p.flags.OutputDir, AllTranscriptionsFile)
	if err := batch.WriteAll(allPath, rows, toolkit); err != nil {
		return err
	}
	validPath := filepath.Join(p.flags.OutputDir, ValidTranscriptionsFile)
	if err := batch.WriteValid(validPath, ledger.Valid()); err != nil {
		return err
	}

	if p.flags.SQLitePath != "" {
		if err := p.saveRun(ctx, version, started, rows, results, report); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to store run in %s: %v\n", p.flags.SQLitePath, err)
		}
	}

	p.printf("\nDone! Results saved to: %s\n", p.flags.OutputDir)
	return nil
}

// ProcessArgs transcribes pronunciations given on the command line and
// prints each result. Nothing is written to disk.
func (p *Processor) ProcessArgs(ctx context.Context, args []string) error {
	tr, _, err := p.LoadTranscoder()
	if err != nil {
		return err
	}

	rows := make([]batch.Row, len(args))
	for i, a := range args {
		rows[i] = batch.Row{Word: a, IPA: a}
	}

	results, err := p.transcribeAll(ctx, tr, rows)
	if err != nil {
		return err
	}

	for _, res := range results {
		if res.OK() {
			p.printf("%s → %s\n", res.Pronunciation, res.Toolkit)
			continue
		}
		p.printf("%s → error: %v\n", res.Pronunciation, res.Err())
	}

	if len(rows) > 1 {
		p.printf("\n")
		_, err := p.record(rows, results).Report().WriteTo(p.out)
		return err
	}
	return nil
}

// record feeds the results into a fresh ledger in input order
func (p *Processor) record(rows []batch.Row, results []transcoder.Result) *diagnostics.Ledger {
	ledger := diagnostics.NewLedger()
	for i, row := range rows {
		res := results[i]
		ledger.Record(row.Word, row.IPA, res)
		if !res.OK() {
			p.log.Debug("transcription failed",
				slog.String("word", row.Word),
				slog.String("pronunciation", row.IPA),
				slog.String("symbol", res.Symbol),
				slog.Int("offset", res.Offset),
			)
		}
	}
	return ledger
}

// transcribeAll transcribes rows with the configured number of workers.
// Each worker handles a contiguous slice of rows and writes into its own
// part of the result slice, so results stay in input order.
func (p *Processor) transcribeAll(ctx context.Context, tr *transcoder.Transcoder, rows []batch.Row) ([]transcoder.Result, error) {
	results := make([]transcoder.Result, len(rows))

	workers := p.flags.Workers
	if workers <= 1 || len(rows) < 2 {
		for i, row := range rows {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results[i] = tr.Transcribe(row.IPA)
		}
		return results, nil
	}

	size := (len(rows) + workers - 1) / workers
	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < len(rows); start += size {
		end := min(start+size, len(rows))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				results[i] = tr.Transcribe(rows[i].IPA)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (p *Processor) saveRun(ctx context.Context, version string, started time.Time, rows []batch.Row, results []transcoder.Result, report diagnostics.Report) error {
	sink, err := store.OpenSQLite(p.flags.SQLitePath)
	if err != nil {
		return err
	}
	defer sink.Close()

	items := make([]store.Item, len(rows))
	for i, row := range rows {
		items[i] = store.Item{Word: row.Word, Result: results[i]}
	}

	run := store.Run{
		ID:             internal.GenerateRunID(version + p.flags.PronunciationsFile + p.flags.BatchFile),
		RulesetVersion: version,
		StartedAt:      started,
		Items:          items,
		Report:         report,
	}
	if err := sink.SaveRun(ctx, run); err != nil {
		return err
	}

	p.printf("Run %s stored in %s\n", run.ID, p.flags.SQLitePath)
	return nil
}
