package diagnostics

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/espada/internal/mapping"
	"codeberg.org/snonux/espada/internal/transcoder"
)

func newTestTranscoder() *transcoder.Transcoder {
	overrides, _ := mapping.NewOverrides(mapping.Pair{IPA: "eɪ", Toolkit: "8"})
	return transcoder.New(mapping.SymbolMapping{'ɹ': "r", 'e': "ɛ", 'k': "k"}, overrides)
}

type item struct {
	word, pron string
}

func record(l *Ledger, tr *transcoder.Transcoder, items []item) {
	for _, it := range items {
		l.Record(it.word, it.pron, tr.Transcribe(it.pron))
	}
}

func TestLedgerEndToEnd(t *testing.T) {
	tr := newTestTranscoder()
	l := NewLedger()

	record(l, tr, []item{
		{"rek", "ɹek"},
		{"rake", "ɹeɪk"},
		{"resh", "ɹeʃ"},
	})

	r := l.Report()
	assert.Equal(t, 2, r.Successes)
	assert.Equal(t, 1, r.Failures)
	assert.Equal(t, 3, r.Total())
	require.NotNil(t, r.FirstFailure)
	assert.Equal(t, Failure{Word: "resh", Pronunciation: "ɹeʃ", Symbol: "ʃ"}, *r.FirstFailure)

	assert.Equal(t, []Transcription{
		{Word: "rek", Pronunciation: "ɹek", Toolkit: "rɛk"},
		{Word: "rake", Pronunciation: "ɹeɪk", Toolkit: "r8k"},
	}, l.Valid())
}

func TestFailureLocality(t *testing.T) {
	tr := newTestTranscoder()
	l := NewLedger()

	items := []item{
		{"a", "ɹek"},
		{"b", "keɪ"},
		{"bad", "kʒe"},
		{"c", "eɪɹ"},
		{"d", "ɹɹ"},
	}
	record(l, tr, items)

	r := l.Report()
	assert.Equal(t, 4, r.Successes)
	assert.Equal(t, 1, r.Failures)

	toolkit := make([]string, 0, 4)
	for _, v := range l.Valid() {
		toolkit = append(toolkit, v.Toolkit)
	}
	assert.Equal(t, []string{"rɛk", "k8", "8r", "rr"}, toolkit)
}

func TestFirstSeenStability(t *testing.T) {
	tr := newTestTranscoder()
	l := NewLedger()

	record(l, tr, []item{
		{"one", "ɹek"},
		{"two", "kek"},
		{"three", "ʃek"},
		{"four", "ɹeθ"},
		{"five", "ek"},
		{"six", "eɪk"},
		{"seven", "keʃ"},
	})

	ex, ok := l.ExampleFor("ʃ")
	require.True(t, ok)
	assert.Equal(t, Example{Word: "three", Pronunciation: "ʃek"}, ex)

	r := l.Report()
	assert.Equal(t, []SymbolExample{
		{Symbol: "ʃ", Example: Example{Word: "three", Pronunciation: "ʃek"}},
		{Symbol: "θ", Example: Example{Word: "four", Pronunciation: "ɹeθ"}},
	}, r.Symbols)
	assert.Equal(t, "three", r.FirstFailure.Word)
}

func TestReportIsIdempotent(t *testing.T) {
	tr := newTestTranscoder()
	l := NewLedger()
	record(l, tr, []item{{"x", "ʃ"}, {"y", "k"}})

	first := l.Report()
	first.FirstFailure.Word = "mutated"
	first.Symbols[0].Word = "mutated"

	second := l.Report()
	third := l.Report()
	assert.Equal(t, second, third)
	assert.Equal(t, "x", second.FirstFailure.Word)
	assert.Equal(t, "x", second.Symbols[0].Word)
}

func TestEmptyLedger(t *testing.T) {
	r := NewLedger().Report()

	assert.Zero(t, r.Total())
	assert.Nil(t, r.FirstFailure)
	assert.Empty(t, r.Symbols)
}

func TestReportWriteTo(t *testing.T) {
	tr := newTestTranscoder()
	l := NewLedger()
	record(l, tr, []item{{"rek", "ɹek"}, {"resh", "ɹeʃ"}})

	var buf bytes.Buffer
	n, err := l.Report().WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	out := buf.String()
	assert.Contains(t, out, "First transcription failure occurred for word 'resh' with pronunciation 'ɹeʃ'. Failed on character 'ʃ'")
	assert.Contains(t, out, "Character 'ʃ' failed in word 'resh' with pronunciation 'ɹeʃ'")
	assert.Contains(t, out, "Transcribed: 1")
	assert.Contains(t, out, "Failed: 1")
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestReportWriteToError(t *testing.T) {
	_, err := NewLedger().Report().WriteTo(failingWriter{})
	assert.EqualError(t, err, "disk full")
}
