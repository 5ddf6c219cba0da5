package transcoder

import (
	"fmt"
	"strings"

	"codeberg.org/snonux/espada/internal/mapping"
)

// UnmappableSymbolError reports a symbol that has no mapping and does not
// start any override rule.
type UnmappableSymbolError struct {
	Pronunciation string
	Symbol        string
	Offset        int    // rune offset of Symbol in Pronunciation
	Partial       string // toolkit output produced before the failure
}

func (e *UnmappableSymbolError) Error() string {
	return fmt.Sprintf("unmappable symbol %q at position %d in %q", e.Symbol, e.Offset, e.Pronunciation)
}

// Result is the outcome of transcribing one pronunciation
type Result struct {
	Pronunciation string
	// Toolkit is the full transcription on success and the discarded
	// partial output on failure.
	Toolkit string
	// Symbol is the offending symbol; empty on success.
	Symbol string
	Offset int
}

// OK reports whether the transcription succeeded
func (r Result) OK() bool {
	return r.Symbol == ""
}

// Err returns nil on success and an *UnmappableSymbolError otherwise
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return &UnmappableSymbolError{
		Pronunciation: r.Pronunciation,
		Symbol:        r.Symbol,
		Offset:        r.Offset,
		Partial:       r.Toolkit,
	}
}

// Transcoder is immutable once created and safe for concurrent use
type Transcoder struct {
	symbols   mapping.SymbolMapping
	overrides *mapping.Overrides
}

// New creates a transcoder from a symbol mapping and override rules
func New(symbols mapping.SymbolMapping, overrides *mapping.Overrides) *Transcoder {
	return &Transcoder{
		symbols:   symbols,
		overrides: overrides,
	}
}

// FromTables creates a transcoder from the output of mapping.Build
func FromTables(t *mapping.Tables) *Transcoder {
	return New(t.Symbols, t.Overrides)
}

// Transcribe converts one IPA pronunciation. Each step consumes two symbols
// when they match an override and one symbol otherwise; a position is
// never revisited.
func (t *Transcoder) Transcribe(pronunciation string) Result {
	p := []rune(pronunciation)
	var out strings.Builder

	for i := 0; i < len(p); {
		if i+1 < len(p) {
			if code, ok := t.overrides.Lookup(p[i], p[i+1]); ok {
				out.WriteString(code)
				i += 2
				continue
			}
		}

		code, ok := t.symbols[p[i]]
		if !ok {
			return Result{
				Pronunciation: pronunciation,
				Toolkit:       out.String(),
				Symbol:        string(p[i]),
				Offset:        i,
			}
		}
		out.WriteString(code)
		i++
	}

	return Result{Pronunciation: pronunciation, Toolkit: out.String()}
}

// TranscribeString is Transcribe with an error return
func (t *Transcoder) TranscribeString(pronunciation string) (string, error) {
	r := t.Transcribe(pronunciation)
	if err := r.Err(); err != nil {
		return "", err
	}
	return r.Toolkit, nil
}
