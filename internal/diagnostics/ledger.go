package diagnostics

import (
	"fmt"
	"io"

	"codeberg.org/snonux/espada/internal/transcoder"
)

// Transcription is a successfully transcribed batch item
type Transcription struct {
	Word          string
	Pronunciation string
	Toolkit       string
}

// Failure is a batch item that could not be transcribed
type Failure struct {
	Word          string
	Pronunciation string
	Symbol        string
}

// Ledger accumulates outcomes for one batch run. It is owned by a single
// goroutine; parallel producers must feed it in input order.
type Ledger struct {
	successes int
	failures  int
	first     *Failure
	examples  *symbolExamples
	valid     []Transcription
}

// NewLedger creates an empty ledger
func NewLedger() *Ledger {
	return &Ledger{examples: newSymbolExamples()}
}

// Record adds the outcome of one batch item
func (l *Ledger) Record(word, pronunciation string, result transcoder.Result) {
	if result.OK() {
		l.successes++
		l.valid = append(l.valid, Transcription{
			Word:          word,
			Pronunciation: pronunciation,
			Toolkit:       result.Toolkit,
		})
		return
	}

	l.failures++
	if l.first == nil {
		l.first = &Failure{Word: word, Pronunciation: pronunciation, Symbol: result.Symbol}
	}
	l.examples.put(result.Symbol, Example{Word: word, Pronunciation: pronunciation})
}

// Valid returns the successful transcriptions in input order
func (l *Ledger) Valid() []Transcription {
	return append([]Transcription(nil), l.valid...)
}

// ExampleFor returns the recorded example for a failing symbol
func (l *Ledger) ExampleFor(symbol string) (Example, bool) {
	return l.examples.get(symbol)
}

// Report is a read-only summary of a ledger
type Report struct {
	Successes    int
	Failures     int
	FirstFailure *Failure
	Symbols      []SymbolExample
}

// Report summarises the ledger without changing it
func (l *Ledger) Report() Report {
	r := Report{
		Successes: l.successes,
		Failures:  l.failures,
		Symbols:   l.examples.list(),
	}
	if l.first != nil {
		first := *l.first
		r.FirstFailure = &first
	}
	return r
}

// Total returns the number of recorded items
func (r Report) Total() int {
	return r.Successes + r.Failures
}

// WriteTo prints the report for a human reader
func (r Report) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}

	if r.FirstFailure != nil {
		fmt.Fprintf(cw, "First transcription failure occurred for word '%s' with pronunciation '%s'. Failed on character '%s'\n",
			r.FirstFailure.Word, r.FirstFailure.Pronunciation, r.FirstFailure.Symbol)
	}

	if len(r.Symbols) > 0 {
		fmt.Fprintf(cw, "Unique characters that caused transcription failures with example words and pronunciations:\n")
		for _, s := range r.Symbols {
			fmt.Fprintf(cw, "  Character '%s' failed in word '%s' with pronunciation '%s'\n", s.Symbol, s.Word, s.Pronunciation)
		}
	}

	fmt.Fprintf(cw, "\n=== Transcription Summary ===\n")
	fmt.Fprintf(cw, "Total: %d\n", r.Total())
	fmt.Fprintf(cw, "Transcribed: %d\n", r.Successes)
	if r.Failures > 0 {
		fmt.Fprintf(cw, "Failed: %d\n", r.Failures)
	}
	fmt.Fprintf(cw, "=============================\n")

	return cw.n, cw.err
}

type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}
